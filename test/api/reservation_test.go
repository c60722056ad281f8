package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationFlow(t *testing.T) {
	patientID := registerTestPatient(t)
	doctorID := registerTestDoctor(t)
	date := futureDate(7)

	// full daily template before any booking
	slotsResp := makeRequest("GET", fmt.Sprintf("/doctors/%s/slots?date=%s", doctorID, date), nil)
	require.True(t, slotsResp.IsSuccess(), slotsResp.Message)
	require.Len(t, slotsResp.DataList, 13)

	slot := slotsResp.DataList[0].(string)
	reservationID := bookTestReservation(t, patientID, doctorID, date, slot)
	assert.NotEmpty(t, reservationID)

	// the booked slot drops out of availability
	slotsResp = makeRequest("GET", fmt.Sprintf("/doctors/%s/slots?date=%s", doctorID, date), nil)
	require.True(t, slotsResp.IsSuccess(), slotsResp.Message)
	assert.Len(t, slotsResp.DataList, 12)
	assert.NotContains(t, slotsResp.DataList, slot)

	// a second booking for the same slot is rejected
	otherPatient := registerTestPatient(t)
	dupResp := makeRequest("POST", "/reservations", map[string]interface{}{
		"patient_id": otherPatient,
		"doctor_id":  doctorID,
		"date":       date,
		"time":       slot,
	})
	assert.False(t, dupResp.IsSuccess())
	assert.Equal(t, http.StatusConflict, dupResp.StatusCode)

	// cancellation frees the slot
	cancelResp := makeRequest("POST", fmt.Sprintf("/reservations/%s/cancel", reservationID), nil)
	assert.True(t, cancelResp.IsSuccess(), cancelResp.Message)

	// cancelling again is a no-op, not an error
	cancelResp = makeRequest("POST", fmt.Sprintf("/reservations/%s/cancel", reservationID), nil)
	assert.True(t, cancelResp.IsSuccess(), cancelResp.Message)

	rebookID := bookTestReservation(t, otherPatient, doctorID, date, slot)
	assert.NotEmpty(t, rebookID)
}

func TestBookReservationValidation(t *testing.T) {
	patientID := registerTestPatient(t)
	doctorID := registerTestDoctor(t)

	// past dates are rejected
	pastResp := makeRequest("POST", "/reservations", map[string]interface{}{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"date":       "2020-01-01",
		"time":       "09:00",
	})
	assert.False(t, pastResp.IsSuccess())
	assert.Equal(t, http.StatusBadRequest, pastResp.StatusCode)

	// times outside the daily template are rejected
	lunchResp := makeRequest("POST", "/reservations", map[string]interface{}{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"date":       futureDate(7),
		"time":       "12:30",
	})
	assert.False(t, lunchResp.IsSuccess())
	assert.Equal(t, http.StatusConflict, lunchResp.StatusCode)
}

func TestListReservationsByDate(t *testing.T) {
	patientID := registerTestPatient(t)
	doctorID := registerTestDoctor(t)
	date := futureDate(14)

	reservationID := bookTestReservation(t, patientID, doctorID, date, "10:00")

	listResp := makeRequest("GET", fmt.Sprintf("/reservations?date=%s", date), nil)
	require.True(t, listResp.IsSuccess(), listResp.Message)

	var found map[string]interface{}
	for _, item := range listResp.DataList {
		entry := item.(map[string]interface{})
		if entry["id"] == reservationID {
			found = entry
			break
		}
	}
	require.NotNil(t, found, "booked reservation missing from the daily listing")
	assert.NotEmpty(t, found["patient_name"])
	assert.NotEmpty(t, found["doctor_name"])
	assert.Equal(t, "booked", found["status"])
}
