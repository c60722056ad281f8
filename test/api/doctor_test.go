package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorFlow(t *testing.T) {
	name := uniqueName("Test Doctor")

	createResp := makeRequest("POST", "/doctors", map[string]interface{}{
		"name":       name,
		"department": "Orthopedics",
		"phone":      uniquePhone(),
	})
	require.True(t, createResp.IsSuccess(), createResp.Message)
	doctorID := createResp.GetString("id")
	require.NotEmpty(t, doctorID)

	getResp := makeRequest("GET", fmt.Sprintf("/doctors/%s", doctorID), nil)
	require.True(t, getResp.IsSuccess(), getResp.Message)
	assert.Equal(t, name, getResp.Data["name"])
	assert.Equal(t, "Orthopedics", getResp.Data["department"])

	listResp := makeRequest("GET", "/doctors?department=Orthopedics", nil)
	require.True(t, listResp.IsSuccess(), listResp.Message)

	found := false
	for _, item := range listResp.DataList {
		if item.(map[string]interface{})["id"] == doctorID {
			found = true
		}
	}
	assert.True(t, found, "registered doctor missing from department listing")
}

func TestDoctorRegistrationValidation(t *testing.T) {
	resp := makeRequest("POST", "/doctors", map[string]interface{}{
		"name":       uniqueName("Bad Phone Doctor"),
		"department": "Pediatrics",
		"phone":      "1234-5678",
	})
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSlotsForUnknownDoctor(t *testing.T) {
	resp := makeRequest("GET", fmt.Sprintf("/doctors/%s/slots?date=%s", "00000000-0000-0000-0000-000000000000", futureDate(3)), nil)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
