package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
	apperrors "github.com/clinicore/clinic-api/pkg/errors"
)

// CreateTx inserts a booked reservation inside the caller's transaction.
// The partial unique index on (doctor_id, reservation_date,
// reservation_time) for booked rows is the authoritative guard against
// double booking; a violation surfaces as a conflict.
func (r *reservationRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, reservation *model.Reservation) error {
	query := `
		INSERT INTO reservations (id, patient_id, doctor_id, reservation_date, reservation_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	reservation.ID = uuid.New()

	_, err := tx.ExecContext(ctx, query,
		reservation.ID,
		reservation.PatientID,
		reservation.DoctorID,
		reservation.Date,
		reservation.SlotTime,
		reservation.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflict("slot already booked", err)
		}
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *reservationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	query := `
		SELECT id, patient_id, doctor_id, reservation_date, reservation_time, status
		FROM reservations
		WHERE id = $1
	`
	var reservation model.Reservation
	if err := r.db.GetContext(ctx, &reservation, query, id); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFound("reservation", err)
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return &reservation, nil
}

// BookedTimes returns the occupied slot times for a doctor on a date,
// in ascending order. Cancelled rows do not occupy slots.
func (r *reservationRepository) BookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	query := `
		SELECT reservation_time
		FROM reservations
		WHERE doctor_id = $1 AND reservation_date = $2 AND status = 'booked'
		ORDER BY reservation_time
	`
	var times []string
	if err := r.db.SelectContext(ctx, &times, query, doctorID, date); err != nil {
		return nil, fmt.Errorf("failed to get booked times: %w", err)
	}
	return times, nil
}

func (r *reservationRepository) ListByDate(ctx context.Context, date time.Time) ([]*model.Reservation, error) {
	query := `
		SELECT r.id, r.patient_id, r.doctor_id, r.reservation_date, r.reservation_time, r.status,
		       p.name AS patient_name, d.name AS doctor_name, d.department
		FROM reservations r
		JOIN patients p ON p.id = r.patient_id
		JOIN doctors d ON d.id = r.doctor_id
		WHERE r.reservation_date = $1
		ORDER BY r.reservation_time
	`
	var reservations []*model.Reservation
	if err := r.db.SelectContext(ctx, &reservations, query, date); err != nil {
		return nil, fmt.Errorf("failed to list reservations by date: %w", err)
	}
	return reservations, nil
}

func (r *reservationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Reservation, error) {
	query := `
		SELECT r.id, r.patient_id, r.doctor_id, r.reservation_date, r.reservation_time, r.status,
		       d.name AS doctor_name, d.department
		FROM reservations r
		JOIN doctors d ON d.id = r.doctor_id
		WHERE r.patient_id = $1
		ORDER BY r.reservation_date DESC, r.reservation_time DESC
	`
	var reservations []*model.Reservation
	if err := r.db.SelectContext(ctx, &reservations, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list reservations by patient: %w", err)
	}
	return reservations, nil
}

func (r *reservationRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.ReservationStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("reservation", nil)
	}
	return nil
}

func (r *reservationRepository) DeleteByPatientTx(ctx context.Context, tx *sqlx.Tx, patientID uuid.UUID) error {
	_, err := tx.ExecContext(ctx,
		`DELETE FROM reservations WHERE patient_id = $1`, patientID)
	if err != nil {
		return fmt.Errorf("failed to delete patient reservations: %w", err)
	}
	return nil
}
