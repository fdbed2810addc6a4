package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pauloferraz/braseiro-api/storage"
)

// setupTestStore wires a GORM store over in-memory SQLite as the active
// store and returns it
func setupTestStore(t *testing.T) *storage.GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	store := storage.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	storage.Set(store)
	return store
}

// newTestRouter builds a router with the same route table as main
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	{
		v1.GET("/dashboard/stats", GetDashboardStats)

		v1.GET("/menu", ListMenuItems)
		v1.GET("/menu/:id", GetMenuItem)
		v1.POST("/menu", CreateMenuItem)
		v1.PUT("/menu/:id", UpdateMenuItem)
		v1.DELETE("/menu/:id", DeleteMenuItem)
		v1.POST("/menu/:id/image", UploadMenuItemImage)

		v1.GET("/tables", ListTables)
		v1.GET("/tables/:id", GetTable)
		v1.POST("/tables", CreateTable)
		v1.PUT("/tables/:id", UpdateTable)
		v1.DELETE("/tables/:id", DeleteTable)

		v1.GET("/orders", ListOrders)
		v1.GET("/orders/:id", GetOrder)
		v1.POST("/orders", CreateOrder)
		v1.PUT("/orders/:id", UpdateOrder)
		v1.DELETE("/orders/:id", DeleteOrder)

		v1.GET("/inventory", ListInventory)
		v1.GET("/inventory/low-stock", ListLowStock)
		v1.GET("/inventory/:id", GetInventoryItem)
		v1.POST("/inventory", CreateInventoryItem)
		v1.PUT("/inventory/:id", UpdateInventoryItem)
		v1.DELETE("/inventory/:id", DeleteInventoryItem)

		v1.GET("/staff", ListStaff)
		v1.POST("/staff", CreateStaffMember)
		v1.PUT("/staff/:id", UpdateStaffMember)
		v1.DELETE("/staff/:id", DeleteStaffMember)

		v1.GET("/customers", ListCustomers)
		v1.POST("/customers", CreateCustomer)
		v1.PUT("/customers/:id", UpdateCustomer)
		v1.DELETE("/customers/:id", DeleteCustomer)

		v1.GET("/sales", ListSales)
		v1.POST("/sales", CreateSale)
	}

	return router
}

// doJSON performs a request with a JSON body and decodes the JSON response
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

// errorCode digs the error code out of the error envelope
func errorCode(response map[string]interface{}) string {
	errObj, ok := response["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := errObj["code"].(string)
	return code
}
