package controllers

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloferraz/braseiro-api/models"
)

func TestCreateInventoryItem(t *testing.T) {
	setupTestStore(t)
	router := newTestRouter()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "Successfully create inventory item",
			requestBody: map[string]interface{}{
				"name":         "Tomate",
				"category":     "Vegetais",
				"currentStock": "5",
				"unit":         "kg",
				"minThreshold": "10",
				"maxThreshold": "50",
				"supplier":     "Fornecedor Local",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "Tomate", data["name"])
				assert.Equal(t, "5", data["currentStock"])
				assert.NotEmpty(t, data["lastUpdated"])
			},
		},
		{
			name: "Fail with duplicate name",
			requestBody: map[string]interface{}{
				"name":         "Tomate",
				"category":     "Vegetais",
				"currentStock": "3",
				"unit":         "kg",
				"minThreshold": "1",
				"maxThreshold": "10",
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "DUPLICATE",
		},
		{
			name: "Fail with missing unit",
			requestBody: map[string]interface{}{
				"name":         "Queijo",
				"category":     "Laticínios",
				"currentStock": "2",
				"minThreshold": "5",
				"maxThreshold": "20",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with negative stock",
			requestBody: map[string]interface{}{
				"name":         "Queijo",
				"category":     "Laticínios",
				"currentStock": "-1",
				"unit":         "kg",
				"minThreshold": "5",
				"maxThreshold": "20",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := doJSON(t, router, http.MethodPost, "/api/v1/inventory", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorCode(response))
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestListLowStockEndpoint(t *testing.T) {
	store := setupTestStore(t)
	router := newTestRouter()

	items := []models.Inventory{
		{Name: "Tomate", Category: "Vegetais", CurrentStock: decimal.NewFromInt(5), Unit: "kg", MinThreshold: decimal.NewFromInt(10), MaxThreshold: decimal.NewFromInt(50)},
		{Name: "Queijo", Category: "Laticínios", CurrentStock: decimal.NewFromInt(2), Unit: "kg", MinThreshold: decimal.NewFromInt(5), MaxThreshold: decimal.NewFromInt(20)},
		{Name: "Carne Bovina", Category: "Carnes", CurrentStock: decimal.NewFromInt(25), Unit: "kg", MinThreshold: decimal.NewFromInt(10), MaxThreshold: decimal.NewFromInt(50)},
	}
	for _, item := range items {
		_, err := store.CreateInventoryItem(item)
		require.NoError(t, err)
	}

	w, response := doJSON(t, router, http.MethodGet, "/api/v1/inventory/low-stock", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].([]interface{})
	require.Len(t, data, 2)
	names := []string{
		data[0].(map[string]interface{})["name"].(string),
		data[1].(map[string]interface{})["name"].(string),
	}
	assert.Contains(t, names, "Tomate")
	assert.Contains(t, names, "Queijo")
}

func TestUpdateInventoryStockRefreshesLastUpdated(t *testing.T) {
	store := setupTestStore(t)
	router := newTestRouter()

	created, err := store.CreateInventoryItem(models.Inventory{
		Name:         "Pão de Hambúrguer",
		Category:     "Padaria",
		CurrentStock: decimal.NewFromInt(15),
		Unit:         "unidades",
		MinThreshold: decimal.NewFromInt(20),
		MaxThreshold: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	w, response := doJSON(t, router, http.MethodPut, "/api/v1/inventory/1", map[string]interface{}{
		"currentStock": "30",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "30", data["currentStock"])
	assert.Equal(t, "Pão de Hambúrguer", data["name"])

	fetched, err := store.GetInventoryItem(created.ID)
	require.NoError(t, err)
	assert.False(t, fetched.LastUpdated.Before(created.LastUpdated))
}
