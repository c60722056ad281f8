package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is an append-only treatment entry. Records are never
// updated or deleted individually; they go away only when their owning
// patient is removed.
type MedicalRecord struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ReservationID uuid.UUID `db:"reservation_id" json:"reservation_id"`
	Diagnosis     string    `db:"diagnosis" json:"diagnosis"`
	Prescription  *string   `db:"prescription" json:"prescription,omitempty"`
	TreatedAt     time.Time `db:"treatment_timestamp" json:"treatment_timestamp"`

	// Join columns for history listings.
	DoctorName string `db:"doctor_name" json:"doctor_name,omitempty"`
	Department string `db:"department" json:"department,omitempty"`
}

type AddMedicalRecordRequest struct {
	Diagnosis    string  `json:"diagnosis" binding:"required"`
	Prescription *string `json:"prescription"`
}

// DiagnosisCount is one row of the diagnosis frequency report.
type DiagnosisCount struct {
	Diagnosis string `db:"diagnosis" json:"diagnosis"`
	Count     int    `db:"diagnosis_count" json:"count"`
}
