package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
)

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (id, reservation_id, diagnosis, prescription, treatment_timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`
	record.ID = uuid.New()
	if record.TreatedAt.IsZero() {
		record.TreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.ReservationID,
		record.Diagnosis,
		record.Prescription,
		record.TreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.MedicalRecord, error) {
	query := `
		SELECT m.id, m.reservation_id, m.diagnosis, m.prescription, m.treatment_timestamp,
		       d.name AS doctor_name, d.department
		FROM medical_records m
		JOIN reservations r ON r.id = m.reservation_id
		JOIN doctors d ON d.id = r.doctor_id
		WHERE r.patient_id = $1
		ORDER BY m.treatment_timestamp DESC
	`
	var records []*model.MedicalRecord
	if err := r.db.SelectContext(ctx, &records, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}

// DiagnosisStats counts records whose treatment date falls in the
// inclusive range, grouped by diagnosis text. Ten highest counts,
// ties broken by diagnosis ascending for reproducible output.
func (r *medicalRecordRepository) DiagnosisStats(ctx context.Context, start, end time.Time) ([]*model.DiagnosisCount, error) {
	query := `
		SELECT diagnosis, COUNT(*) AS diagnosis_count
		FROM medical_records
		WHERE treatment_timestamp::date BETWEEN $1 AND $2
		GROUP BY diagnosis
		ORDER BY diagnosis_count DESC, diagnosis ASC
		LIMIT 10
	`
	var stats []*model.DiagnosisCount
	if err := r.db.SelectContext(ctx, &stats, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to get diagnosis statistics: %w", err)
	}
	return stats, nil
}

func (r *medicalRecordRepository) DeleteByPatientTx(ctx context.Context, tx *sqlx.Tx, patientID uuid.UUID) error {
	query := `
		DELETE FROM medical_records
		WHERE reservation_id IN (
			SELECT id FROM reservations WHERE patient_id = $1
		)
	`
	if _, err := tx.ExecContext(ctx, query, patientID); err != nil {
		return fmt.Errorf("failed to delete patient medical records: %w", err)
	}
	return nil
}
