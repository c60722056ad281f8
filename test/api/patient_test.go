package api_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientFlow(t *testing.T) {
	name := uniqueName("Test Patient")
	phone := uniquePhone()

	createResp := makeRequest("POST", "/patients", map[string]interface{}{
		"name":       name,
		"birth_date": "1985-11-02",
		"phone":      phone,
		"gender":     "M",
	})
	require.True(t, createResp.IsSuccess(), createResp.Message)
	patientID := createResp.GetString("id")
	require.NotEmpty(t, patientID)

	getResp := makeRequest("GET", fmt.Sprintf("/patients/%s", patientID), nil)
	require.True(t, getResp.IsSuccess(), getResp.Message)
	assert.Equal(t, name, getResp.Data["name"])
	assert.Equal(t, phone, getResp.Data["phone"])
	assert.Equal(t, "M", getResp.Data["gender"])

	searchResp := makeRequest("GET", fmt.Sprintf("/patients/search?name=%s", url.QueryEscape(name)), nil)
	require.True(t, searchResp.IsSuccess(), searchResp.Message)
	assert.NotEmpty(t, searchResp.DataList)

	// same phone number cannot be registered twice
	dupResp := makeRequest("POST", "/patients", map[string]interface{}{
		"name":       uniqueName("Another Patient"),
		"birth_date": "1991-03-09",
		"phone":      phone,
		"gender":     "F",
	})
	assert.False(t, dupResp.IsSuccess())
	assert.Equal(t, http.StatusConflict, dupResp.StatusCode)
}

func TestPatientRegistrationValidation(t *testing.T) {
	badPhone := makeRequest("POST", "/patients", map[string]interface{}{
		"name":       uniqueName("Bad Phone"),
		"birth_date": "1990-01-01",
		"phone":      "011-1234-5678",
		"gender":     "F",
	})
	assert.False(t, badPhone.IsSuccess())
	assert.Equal(t, http.StatusBadRequest, badPhone.StatusCode)

	badGender := makeRequest("POST", "/patients", map[string]interface{}{
		"name":       uniqueName("Bad Gender"),
		"birth_date": "1990-01-01",
		"phone":      uniquePhone(),
		"gender":     "X",
	})
	assert.False(t, badGender.IsSuccess())
	assert.Equal(t, http.StatusBadRequest, badGender.StatusCode)
}

func TestDeletePatientCascades(t *testing.T) {
	patientID := registerTestPatient(t)
	doctorID := registerTestDoctor(t)
	date := futureDate(10)

	reservationID := bookTestReservation(t, patientID, doctorID, date, "14:30")

	recordResp := makeRequest("POST", fmt.Sprintf("/reservations/%s/records", reservationID), map[string]interface{}{
		"diagnosis":    "Seasonal allergy",
		"prescription": "Antihistamine 10mg",
	})
	require.True(t, recordResp.IsSuccess(), recordResp.Message)

	deleteResp := makeRequest("DELETE", fmt.Sprintf("/patients/%s", patientID), nil)
	require.True(t, deleteResp.IsSuccess(), deleteResp.Message)

	getResp := makeRequest("GET", fmt.Sprintf("/patients/%s", patientID), nil)
	assert.False(t, getResp.IsSuccess())
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)

	// the reservation went with the patient, so its slot is free again
	slotsResp := makeRequest("GET", fmt.Sprintf("/doctors/%s/slots?date=%s", doctorID, date), nil)
	require.True(t, slotsResp.IsSuccess(), slotsResp.Message)
	assert.Contains(t, slotsResp.DataList, "14:30")
}
