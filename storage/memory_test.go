package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloferraz/braseiro-api/models"
)

func TestMemoryStoreMenuItemRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	desc := "Hambúrguer com queijo, alface e tomate"
	created, err := store.CreateMenuItem(models.MenuItem{
		Name:        "Hambúrguer Clássico",
		Description: &desc,
		Price:       decimal.RequireFromString("25.90"),
		Category:    "Hambúrgueres",
		Available:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	fetched, err := store.GetMenuItem(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("25.90")))
	require.NotNil(t, fetched.Description)
	assert.Equal(t, desc, *fetched.Description)

	_, err = store.GetMenuItem(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreIDsAreNeverReused(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.CreateMenuItem(models.MenuItem{Name: "A", Category: "X"})
	require.NoError(t, err)

	existed, err := store.DeleteMenuItem(first.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	second, err := store.CreateMenuItem(models.MenuItem{Name: "B", Category: "X"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestMemoryStoreTableUpdateChangesOnlyPatchedFields(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.CreateTable(models.Table{Number: 7, Capacity: 4})
	require.NoError(t, err)
	assert.Equal(t, models.TableAvailable, created.Status)

	occupied := models.TableOccupied
	updated, err := store.UpdateTable(created.ID, models.TablePatch{Status: &occupied})
	require.NoError(t, err)

	assert.Equal(t, models.TableOccupied, updated.Status)
	assert.Equal(t, created.Number, updated.Number)
	assert.Equal(t, created.Capacity, updated.Capacity)
	assert.Equal(t, created.ReservedBy, updated.ReservedBy)
	assert.Equal(t, created.ReservedAt, updated.ReservedAt)
}

func TestMemoryStoreTableNumberUnique(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateTable(models.Table{Number: 1, Capacity: 2})
	require.NoError(t, err)

	_, err = store.CreateTable(models.Table{Number: 1, Capacity: 4})
	assert.ErrorIs(t, err, ErrDuplicate)

	second, err := store.CreateTable(models.Table{Number: 2, Capacity: 4})
	require.NoError(t, err)

	one := 1
	_, err = store.UpdateTable(second.ID, models.TablePatch{Number: &one})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Re-asserting a table's own number is not a conflict
	two := 2
	_, err = store.UpdateTable(second.ID, models.TablePatch{Number: &two})
	assert.NoError(t, err)
}

func TestMemoryStoreDeleteTwice(t *testing.T) {
	store := NewMemoryStore()

	existed, err := store.DeleteCustomer(1)
	require.NoError(t, err)
	assert.False(t, existed)

	created, err := store.CreateCustomer(models.Customer{Name: "Maria"})
	require.NoError(t, err)

	existed, err = store.DeleteCustomer(created.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = store.DeleteCustomer(created.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryStoreCustomerCountersStartAtZero(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.CreateCustomer(models.Customer{
		Name:        "Maria Silva",
		TotalOrders: 10,
		TotalSpent:  decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, created.TotalOrders)
	assert.True(t, created.TotalSpent.IsZero())
}

func TestMemoryStoreOrderDefaultsAndTimestamps(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.CreateOrder(models.Order{
		TableNumber: 12,
		Total:       decimal.RequireFromString("64.30"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderPending, created.Status)
	assert.NotNil(t, created.Items)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	time.Sleep(5 * time.Millisecond)

	ready := models.OrderReady
	updated, err := store.UpdateOrder(created.ID, models.OrderPatch{Status: &ready})
	require.NoError(t, err)

	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestMemoryStoreOrdersNewestFirst(t *testing.T) {
	store := NewMemoryStore()

	for i := 1; i <= 3; i++ {
		_, err := store.CreateOrder(models.Order{TableNumber: i, Total: decimal.Zero})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	orders, err := store.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, 3, orders[0].TableNumber)
	assert.Equal(t, 2, orders[1].TableNumber)
	assert.Equal(t, 1, orders[2].TableNumber)
}

func TestMemoryStoreListOrdersByStatus(t *testing.T) {
	store := NewMemoryStore()

	statuses := []models.OrderStatus{
		models.OrderPending, models.OrderPreparing, models.OrderPending,
		models.OrderServed, models.OrderCancelled,
	}
	for i, status := range statuses {
		_, err := store.CreateOrder(models.Order{TableNumber: i + 1, Status: status, Total: decimal.Zero})
		require.NoError(t, err)
	}

	pending, err := store.ListOrdersByStatus(models.OrderPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, order := range pending {
		assert.Equal(t, models.OrderPending, order.Status)
	}

	ready, err := store.ListOrdersByStatus(models.OrderReady)
	require.NoError(t, err)
	assert.Empty(t, ready)
}

func TestMemoryStoreInventoryLastUpdatedRefreshes(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.CreateInventoryItem(models.Inventory{
		Name:         "Tomate",
		Category:     "Vegetais",
		CurrentStock: decimal.NewFromInt(5),
		Unit:         "kg",
		MinThreshold: decimal.NewFromInt(10),
		MaxThreshold: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.False(t, created.LastUpdated.IsZero())

	time.Sleep(5 * time.Millisecond)

	stock := decimal.NewFromInt(30)
	updated, err := store.UpdateInventoryItem(created.ID, models.InventoryPatch{CurrentStock: &stock})
	require.NoError(t, err)
	assert.True(t, updated.LastUpdated.After(created.LastUpdated))
}

func TestMemoryStoreListLowStock(t *testing.T) {
	store := NewMemoryStore()

	items := []models.Inventory{
		{Name: "Tomate", Category: "Vegetais", CurrentStock: decimal.NewFromInt(5), Unit: "kg", MinThreshold: decimal.NewFromInt(10), MaxThreshold: decimal.NewFromInt(50)},
		{Name: "Carne Bovina", Category: "Carnes", CurrentStock: decimal.NewFromInt(25), Unit: "kg", MinThreshold: decimal.NewFromInt(10), MaxThreshold: decimal.NewFromInt(50)},
		{Name: "Queijo Mussarela", Category: "Laticínios", CurrentStock: decimal.NewFromInt(2), Unit: "kg", MinThreshold: decimal.NewFromInt(5), MaxThreshold: decimal.NewFromInt(20)},
	}
	for _, item := range items {
		_, err := store.CreateInventoryItem(item)
		require.NoError(t, err)
	}

	low, err := store.ListLowStock()
	require.NoError(t, err)
	require.Len(t, low, 2)
	names := []string{low[0].Name, low[1].Name}
	assert.Contains(t, names, "Tomate")
	assert.Contains(t, names, "Queijo Mussarela")
}

func TestMemoryStoreSalesRangeInclusive(t *testing.T) {
	store := NewMemoryStore()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	dates := []time.Time{
		start.Add(-time.Second), // before range
		start,                   // exactly at start
		start.AddDate(0, 0, 15), // inside
		end,                     // exactly at end
		end.Add(time.Second),    // after range
	}
	for i, date := range dates {
		_, err := store.CreateSale(models.Sale{
			Date:          date,
			OrderID:       uint(i + 1),
			Amount:        decimal.RequireFromString("10.00"),
			PaymentMethod: "cash",
		})
		require.NoError(t, err)
	}

	sales, err := store.ListSalesInRange(start, end)
	require.NoError(t, err)
	require.Len(t, sales, 3)

	// Newest first
	assert.Equal(t, uint(4), sales[0].OrderID)
	assert.Equal(t, uint(3), sales[1].OrderID)
	assert.Equal(t, uint(2), sales[2].OrderID)
}

func TestMemoryStoreSaleDateDefaultsToNow(t *testing.T) {
	store := NewMemoryStore()

	before := time.Now()
	created, err := store.CreateSale(models.Sale{
		OrderID:       1,
		Amount:        decimal.RequireFromString("43.50"),
		PaymentMethod: "pix",
	})
	require.NoError(t, err)

	assert.False(t, created.Date.Before(before))
	assert.False(t, created.Date.After(time.Now()))
}

func TestMemoryStoreInventoryNameUnique(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateInventoryItem(models.Inventory{
		Name: "Tomate", Category: "Vegetais",
		CurrentStock: decimal.NewFromInt(5), Unit: "kg",
		MinThreshold: decimal.NewFromInt(10), MaxThreshold: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	_, err = store.CreateInventoryItem(models.Inventory{
		Name: "Tomate", Category: "Vegetais",
		CurrentStock: decimal.NewFromInt(1), Unit: "kg",
		MinThreshold: decimal.NewFromInt(2), MaxThreshold: decimal.NewFromInt(3),
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryStoreEmailUnique(t *testing.T) {
	store := NewMemoryStore()

	email := "ana@restaurant.com"
	_, err := store.CreateStaffMember(models.Staff{Name: "Ana Costa", Position: "Garçonete", Email: &email})
	require.NoError(t, err)

	_, err = store.CreateStaffMember(models.Staff{Name: "Outra Ana", Position: "Caixa", Email: &email})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Staff without email never collide
	_, err = store.CreateStaffMember(models.Staff{Name: "Sem Email", Position: "Caixa"})
	require.NoError(t, err)
	_, err = store.CreateStaffMember(models.Staff{Name: "Também Sem Email", Position: "Caixa"})
	require.NoError(t, err)

	_, err = store.CreateCustomer(models.Customer{Name: "João Silva", Email: &email})
	require.NoError(t, err)
	_, err = store.CreateCustomer(models.Customer{Name: "Outro João", Email: &email})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestSeedPopulatesAllCollections(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, Seed(store))

	tables, err := store.ListTables()
	require.NoError(t, err)
	assert.Len(t, tables, 25)

	menu, err := store.ListMenuItems()
	require.NoError(t, err)
	assert.Len(t, menu, 5)

	inventory, err := store.ListInventory()
	require.NoError(t, err)
	assert.Len(t, inventory, 5)

	staff, err := store.ListStaff()
	require.NoError(t, err)
	assert.Len(t, staff, 4)

	orders, err := store.ListOrders()
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}
