package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
	apperrors "github.com/clinicore/clinic-api/pkg/errors"
)

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (id, name, birth_date, phone, gender)
		VALUES ($1, $2, $3, $4, $5)
	`
	patient.ID = uuid.New()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.BirthDate,
		patient.Phone,
		patient.Gender,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflict("phone number already registered", err)
		}
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `
		SELECT id, name, birth_date, phone, gender
		FROM patients
		WHERE id = $1
	`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

// List returns every patient ordered by name, each carrying the most
// recent treatment timestamp across its reservations.
func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `
		SELECT p.id, p.name, p.birth_date, p.phone, p.gender,
		       MAX(m.treatment_timestamp) AS last_visit
		FROM patients p
		LEFT JOIN reservations r ON r.patient_id = p.id
		LEFT JOIN medical_records m ON m.reservation_id = r.id
		GROUP BY p.id, p.name, p.birth_date, p.phone, p.gender
		ORDER BY p.name
	`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Search(ctx context.Context, name string) ([]*model.Patient, error) {
	query := `
		SELECT id, name, birth_date, phone, gender
		FROM patients
		WHERE name LIKE '%' || $1 || '%'
		ORDER BY name
	`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query, name); err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	result, err := tx.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("patient", nil)
	}
	return nil
}
