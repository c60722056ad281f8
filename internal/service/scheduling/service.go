package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
	apperrors "github.com/clinicore/clinic-api/pkg/errors"
	"github.com/clinicore/clinic-api/pkg/metrics"
)

// Service orchestrates the repositories under per-operation transaction
// boundaries and enforces the booking invariants.
type Service struct {
	txr      repository.TxRunner
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
	resvs    repository.ReservationRepository
	records  repository.MedicalRecordRepository
	schedule Schedule
	metrics  *metrics.Metrics
}

func NewService(
	txr repository.TxRunner,
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	resvs repository.ReservationRepository,
	records repository.MedicalRecordRepository,
	schedule Schedule,
	m *metrics.Metrics,
) *Service {
	return &Service{
		txr:      txr,
		patients: patients,
		doctors:  doctors,
		resvs:    resvs,
		records:  records,
		schedule: schedule,
		metrics:  m,
	}
}

// Schedule exposes the daily template.
func (s *Service) Schedule() Schedule {
	return s.schedule
}

// AvailableSlots returns the template slots still free for the doctor on
// the given date, in template order. Re-derived on every call.
func (s *Service) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	if s.metrics != nil {
		s.metrics.SlotQueries.Inc()
	}

	if _, err := s.doctors.Get(ctx, doctorID); err != nil {
		return nil, apperrors.Wrap(err)
	}

	booked, err := s.resvs.BookedTimes(ctx, doctorID, dateOnly(date))
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	return s.schedule.Available(booked), nil
}

// BookReservation validates and inserts a booked reservation. The
// availability check is advisory; the storage unique constraint decides
// races, surfacing the loser as a conflict.
func (s *Service) BookReservation(ctx context.Context, patientID, doctorID uuid.UUID, date time.Time, slot string) (*model.Reservation, error) {
	if s.metrics != nil {
		s.metrics.BookingAttempts.Inc()
	}

	if !model.ValidSlotTime(slot) {
		return nil, apperrors.NewValidation("time must be in HH:MM format")
	}

	day := dateOnly(date)
	if day.Before(dateOnly(time.Now())) {
		return nil, apperrors.NewPastDate()
	}

	if _, err := s.patients.Get(ctx, patientID); err != nil {
		return nil, apperrors.Wrap(err)
	}
	if _, err := s.doctors.Get(ctx, doctorID); err != nil {
		return nil, apperrors.Wrap(err)
	}

	booked, err := s.resvs.BookedTimes(ctx, doctorID, day)
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	if !contains(s.schedule.Available(booked), slot) {
		return nil, apperrors.NewSlotUnavailable(slot)
	}

	reservation := &model.Reservation{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      day,
		SlotTime:  slot,
		Status:    model.ReservationStatusBooked,
	}

	err = s.txr.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.resvs.CreateTx(ctx, tx, reservation)
	})
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrConflict) && s.metrics != nil {
			s.metrics.BookingConflicts.Inc()
		}
		return nil, apperrors.Wrap(err)
	}
	return reservation, nil
}

// CancelReservation transitions a booked reservation to cancelled.
// Cancelling an already-cancelled reservation is an idempotent no-op so
// a retrying caller never sees a spurious conflict.
func (s *Service) CancelReservation(ctx context.Context, id uuid.UUID) error {
	reservation, err := s.resvs.Get(ctx, id)
	if err != nil {
		return apperrors.Wrap(err)
	}
	if reservation.Status == model.ReservationStatusCancelled {
		return nil
	}

	if err := s.resvs.SetStatus(ctx, id, model.ReservationStatusCancelled); err != nil {
		return apperrors.Wrap(err)
	}
	if s.metrics != nil {
		s.metrics.Cancellations.Inc()
	}
	return nil
}

// DeletePatient removes the patient's medical records, reservations and
// the patient row in one transaction. Any failure rolls the whole
// cascade back.
func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	err := s.txr.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.records.DeleteByPatientTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.resvs.DeleteByPatientTx(ctx, tx, id); err != nil {
			return err
		}
		return s.patients.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return apperrors.Wrap(err)
	}
	if s.metrics != nil {
		s.metrics.CascadeDeletes.Inc()
	}
	return nil
}

// ReservationsByDate lists a day's reservations ordered by slot time.
func (s *Service) ReservationsByDate(ctx context.Context, date time.Time) ([]*model.Reservation, error) {
	reservations, err := s.resvs.ListByDate(ctx, dateOnly(date))
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	return reservations, nil
}

// ReservationsByPatient lists a patient's reservations, newest first.
func (s *Service) ReservationsByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Reservation, error) {
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		return nil, apperrors.Wrap(err)
	}
	reservations, err := s.resvs.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Wrap(err)
	}
	return reservations, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func contains(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
