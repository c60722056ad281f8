package medical

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
	apperrors "github.com/clinicore/clinic-api/pkg/errors"
)

// Service appends treatment records and aggregates diagnosis
// statistics. Records are append-only; attaching one does not change
// the owning reservation's status.
type Service struct {
	records  repository.MedicalRecordRepository
	resvs    repository.ReservationRepository
	patients repository.PatientRepository
}

func NewService(
	records repository.MedicalRecordRepository,
	resvs repository.ReservationRepository,
	patients repository.PatientRepository,
) *Service {
	return &Service{records: records, resvs: resvs, patients: patients}
}

// AddRecord appends a treatment record to an existing reservation. The
// treatment timestamp defaults to now.
func (s *Service) AddRecord(ctx context.Context, reservationID uuid.UUID, diagnosis string, prescription *string) (*model.MedicalRecord, error) {
	diagnosis = strings.TrimSpace(diagnosis)
	if diagnosis == "" {
		return nil, apperrors.NewValidation("diagnosis is required")
	}

	if _, err := s.resvs.Get(ctx, reservationID); err != nil {
		return nil, apperrors.Wrap(err)
	}

	record := &model.MedicalRecord{
		ReservationID: reservationID,
		Diagnosis:     diagnosis,
		Prescription:  prescription,
		TreatedAt:     time.Now(),
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, apperrors.Wrap(err)
	}
	return record, nil
}

// History lists a patient's records, most recent treatment first.
func (s *Service) History(ctx context.Context, patientID uuid.UUID) ([]*model.MedicalRecord, error) {
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		return nil, apperrors.Wrap(err)
	}
	records, err := s.records.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	return records, nil
}

// DiagnosisStatistics reports the ten most frequent diagnoses whose
// treatment date falls in the inclusive range, highest count first,
// ties by diagnosis text ascending.
func (s *Service) DiagnosisStatistics(ctx context.Context, start, end time.Time) ([]*model.DiagnosisCount, error) {
	if end.Before(start) {
		return nil, apperrors.NewValidation("end date must not precede start date")
	}

	stats, err := s.records.DiagnosisStats(ctx, start, end)
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	return stats, nil
}
