package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloferraz/braseiro-api/models"
)

func TestCreateTable(t *testing.T) {
	setupTestStore(t)
	router := newTestRouter()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Successfully create table",
			requestBody:    map[string]interface{}{"number": 1, "capacity": 4},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail with duplicate number",
			requestBody:    map[string]interface{}{"number": 1, "capacity": 2},
			expectedStatus: http.StatusConflict,
			expectedError:  "DUPLICATE",
		},
		{
			name:           "Fail with missing capacity",
			requestBody:    map[string]interface{}{"number": 2},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "Fail with negative number",
			requestBody:    map[string]interface{}{"number": -1, "capacity": 2},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "Fail with unknown status",
			requestBody:    map[string]interface{}{"number": 3, "capacity": 2, "status": "broken"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := doJSON(t, router, http.MethodPost, "/api/v1/tables", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorCode(response))
			}
		})
	}
}

func TestUpdateTableStatusKeepsOtherFields(t *testing.T) {
	store := setupTestStore(t)
	router := newTestRouter()

	created, err := store.CreateTable(models.Table{Number: 5, Capacity: 6})
	require.NoError(t, err)
	assert.Equal(t, models.TableAvailable, created.Status)

	w, response := doJSON(t, router, http.MethodPut, "/api/v1/tables/1", map[string]interface{}{
		"status": "occupied",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "occupied", data["status"])
	assert.Equal(t, float64(5), data["number"])
	assert.Equal(t, float64(6), data["capacity"])
	assert.Nil(t, data["reservedBy"])
}

func TestReserveTable(t *testing.T) {
	store := setupTestStore(t)
	router := newTestRouter()

	_, err := store.CreateTable(models.Table{Number: 23, Capacity: 6})
	require.NoError(t, err)

	w, response := doJSON(t, router, http.MethodPut, "/api/v1/tables/1", map[string]interface{}{
		"status":     "reserved",
		"reservedBy": "Cliente Reserva",
		"reservedAt": "2025-06-15T19:00:00Z",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "reserved", data["status"])
	assert.Equal(t, "Cliente Reserva", data["reservedBy"])
	assert.NotEmpty(t, data["reservedAt"])
}
