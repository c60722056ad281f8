package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicore/clinic-api/internal/model"
	apperrors "github.com/clinicore/clinic-api/pkg/errors"
)

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, department, phone)
		VALUES ($1, $2, $3, $4)
	`
	doctor.ID = uuid.New()

	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.Department,
		doctor.Phone,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflict("phone number already registered", err)
		}
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT id, name, department, phone
		FROM doctors
		WHERE id = $1
	`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFound("doctor", err)
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

// List returns every doctor ordered by department then name, each with
// the count of reservations still booked for the current date.
func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `
		SELECT d.id, d.name, d.department, d.phone,
		       COUNT(r.id) FILTER (
		           WHERE r.reservation_date = CURRENT_DATE AND r.status = 'booked'
		       ) AS today_booked
		FROM doctors d
		LEFT JOIN reservations r ON r.doctor_id = d.id
		GROUP BY d.id, d.name, d.department, d.phone
		ORDER BY d.department, d.name
	`
	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListByDepartment(ctx context.Context, department string) ([]*model.Doctor, error) {
	query := `
		SELECT id, name, department, phone
		FROM doctors
		WHERE department = $1
		ORDER BY name
	`
	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query, department); err != nil {
		return nil, fmt.Errorf("failed to list doctors by department: %w", err)
	}
	return doctors, nil
}
