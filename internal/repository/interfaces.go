package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/model"
)

// TxRunner executes a function within one storage transaction. Each
// service operation is exactly one unit of work.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error
}

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		List(ctx context.Context) ([]*model.Patient, error)
		Search(ctx context.Context, name string) ([]*model.Patient, error)
		DeleteTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		List(ctx context.Context) ([]*model.Doctor, error)
		ListByDepartment(ctx context.Context, department string) ([]*model.Doctor, error)
	}

	ReservationRepository interface {
		CreateTx(ctx context.Context, tx *sqlx.Tx, reservation *model.Reservation) error
		Get(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
		BookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error)
		ListByDate(ctx context.Context, date time.Time) ([]*model.Reservation, error)
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Reservation, error)
		SetStatus(ctx context.Context, id uuid.UUID, status model.ReservationStatus) error
		DeleteByPatientTx(ctx context.Context, tx *sqlx.Tx, patientID uuid.UUID) error
	}

	MedicalRecordRepository interface {
		Create(ctx context.Context, record *model.MedicalRecord) error
		ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.MedicalRecord, error)
		DiagnosisStats(ctx context.Context, start, end time.Time) ([]*model.DiagnosisCount, error)
		DeleteByPatientTx(ctx context.Context, tx *sqlx.Tx, patientID uuid.UUID) error
	}
)
