package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// phonePattern is the clinic's registration format for mobile numbers.
var phonePattern = regexp.MustCompile(`^010-\d{4}-\d{4}$`)

// ValidPhone reports whether phone matches the 010-XXXX-XXXX format.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidGender reports whether g is one of the two registered genders.
func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	BirthDate time.Time `db:"birth_date" json:"birth_date"`
	Phone     string    `db:"phone" json:"phone"`
	Gender    Gender    `db:"gender" json:"gender"`

	// LastVisit is the most recent treatment timestamp across the
	// patient's reservations, populated by list queries only.
	LastVisit *time.Time `db:"last_visit" json:"last_visit,omitempty"`
}

type RegisterPatientRequest struct {
	Name      string `json:"name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	Phone     string `json:"phone" binding:"required,clinicphone"`
	Gender    string `json:"gender" binding:"required,oneof=M F"`
}
