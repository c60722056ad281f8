package api_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

var phoneSeq uint32

// uniquePhone generates a distinct 010-XXXX-XXXX number per call, so
// repeated test runs against the same database do not collide on the
// phone uniqueness constraint.
func uniquePhone() string {
	n := time.Now().UnixNano()/1000 + int64(atomic.AddUint32(&phoneSeq, 1))
	return fmt.Sprintf("010-%04d-%04d", n/10000%10000, n%10000)
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, time.Now().UnixNano()%100000)
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func registerTestPatient(t *testing.T) string {
	resp := makeRequest("POST", "/patients", map[string]interface{}{
		"name":       uniqueName("Test Patient"),
		"birth_date": "1990-05-14",
		"phone":      uniquePhone(),
		"gender":     "F",
	})
	if !resp.IsSuccess() {
		t.Fatalf("failed to register test patient: %s", resp.Message)
	}
	return resp.GetString("id")
}

func registerTestDoctor(t *testing.T) string {
	resp := makeRequest("POST", "/doctors", map[string]interface{}{
		"name":       uniqueName("Test Doctor"),
		"department": "Internal Medicine",
		"phone":      uniquePhone(),
	})
	if !resp.IsSuccess() {
		t.Fatalf("failed to register test doctor: %s", resp.Message)
	}
	return resp.GetString("id")
}

func bookTestReservation(t *testing.T, patientID, doctorID, date, slot string) string {
	resp := makeRequest("POST", "/reservations", map[string]interface{}{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"date":       date,
		"time":       slot,
	})
	if !resp.IsSuccess() {
		t.Fatalf("failed to book test reservation: %s", resp.Message)
	}
	return resp.GetString("id")
}
