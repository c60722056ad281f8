package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicalRecordFlow(t *testing.T) {
	patientID := registerTestPatient(t)
	doctorID := registerTestDoctor(t)

	reservationID := bookTestReservation(t, patientID, doctorID, futureDate(5), "09:30")

	diagnosis := fmt.Sprintf("Acute gastritis %d", time.Now().UnixNano()%100000)
	recordResp := makeRequest("POST", fmt.Sprintf("/reservations/%s/records", reservationID), map[string]interface{}{
		"diagnosis":    diagnosis,
		"prescription": "Omeprazole 20mg",
	})
	require.True(t, recordResp.IsSuccess(), recordResp.Message)
	assert.NotEmpty(t, recordResp.GetString("id"))
	assert.Equal(t, diagnosis, recordResp.Data["diagnosis"])

	historyResp := makeRequest("GET", fmt.Sprintf("/patients/%s/records", patientID), nil)
	require.True(t, historyResp.IsSuccess(), historyResp.Message)
	require.Len(t, historyResp.DataList, 1)

	entry := historyResp.DataList[0].(map[string]interface{})
	assert.Equal(t, diagnosis, entry["diagnosis"])
	assert.NotEmpty(t, entry["doctor_name"])

	// the visit is reflected in the diagnosis statistics for today
	today := time.Now().Format("2006-01-02")
	statsResp := makeRequest("GET", fmt.Sprintf("/statistics/diagnoses?start=%s&end=%s", today, today), nil)
	require.True(t, statsResp.IsSuccess(), statsResp.Message)

	found := false
	for _, item := range statsResp.DataList {
		row := item.(map[string]interface{})
		if row["diagnosis"] == diagnosis {
			found = true
			assert.Equal(t, float64(1), row["count"])
		}
	}
	assert.True(t, found, "diagnosis missing from statistics")
}

func TestAddMedicalRecordValidation(t *testing.T) {
	patientID := registerTestPatient(t)
	doctorID := registerTestDoctor(t)
	reservationID := bookTestReservation(t, patientID, doctorID, futureDate(6), "15:00")

	// diagnosis is mandatory
	emptyResp := makeRequest("POST", fmt.Sprintf("/reservations/%s/records", reservationID), map[string]interface{}{
		"diagnosis": "   ",
	})
	assert.False(t, emptyResp.IsSuccess())
	assert.Equal(t, http.StatusBadRequest, emptyResp.StatusCode)

	// the reservation must exist
	missingResp := makeRequest("POST", "/reservations/00000000-0000-0000-0000-000000000000/records", map[string]interface{}{
		"diagnosis": "Common cold",
	})
	assert.False(t, missingResp.IsSuccess())
	assert.Equal(t, http.StatusNotFound, missingResp.StatusCode)
}

func TestDiagnosisStatisticsRange(t *testing.T) {
	resp := makeRequest("GET", "/statistics/diagnoses?start=2026-02-01&end=2026-01-01", nil)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
