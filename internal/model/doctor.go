package model

import (
	"github.com/google/uuid"
)

type Doctor struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Department string    `db:"department" json:"department"`
	Phone      string    `db:"phone" json:"phone"`

	// TodayBooked is the number of booked reservations for the current
	// date, populated by the roster listing only.
	TodayBooked int `db:"today_booked" json:"today_booked"`
}

type RegisterDoctorRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department" binding:"required"`
	Phone      string `json:"phone" binding:"required,clinicphone"`
}
