package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusBooked    ReservationStatus = "booked"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// DateLayout is the wire format for reservation dates.
const DateLayout = "2006-01-02"

// SlotLayout is the wire format for slot times.
const SlotLayout = "15:04"

var slotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidSlotTime reports whether t is a well-formed HH:MM time.
func ValidSlotTime(t string) bool {
	return slotPattern.MatchString(t)
}

type Reservation struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	PatientID uuid.UUID         `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID         `db:"doctor_id" json:"doctor_id"`
	Date      time.Time         `db:"reservation_date" json:"date"`
	SlotTime  string            `db:"reservation_time" json:"time"`
	Status    ReservationStatus `db:"status" json:"status"`

	// Join columns for listings.
	PatientName string `db:"patient_name" json:"patient_name,omitempty"`
	DoctorName  string `db:"doctor_name" json:"doctor_name,omitempty"`
	Department  string `db:"department" json:"department,omitempty"`
}

type BookReservationRequest struct {
	PatientID uuid.UUID `json:"patient_id" binding:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	Time      string    `json:"time" binding:"required,slottime"`
}
