package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/clinicore/clinic-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

type doctorRepository struct {
	db *sqlx.DB
}

type reservationRepository struct {
	db *sqlx.DB
}

type medicalRecordRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func NewReservationRepository(db *sqlx.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func NewMedicalRecordRepository(db *sqlx.DB) repository.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}
