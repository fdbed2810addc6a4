package storage

import (
	"errors"
	"time"

	"github.com/pauloferraz/braseiro-api/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	// Handlers map it to a 404 response.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a create or update violates a
	// uniqueness rule (table number, inventory name, email).
	// Handlers map it to a 409 response.
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the entity store used by all request handlers. Two
// implementations exist: MemoryStore for development and tests, and
// GormStore backed by PostgreSQL for production. The backend is selected
// once at startup.
type Store interface {
	// Menu items
	ListMenuItems() ([]models.MenuItem, error)
	GetMenuItem(id uint) (*models.MenuItem, error)
	CreateMenuItem(draft models.MenuItem) (*models.MenuItem, error)
	UpdateMenuItem(id uint, patch models.MenuItemPatch) (*models.MenuItem, error)
	DeleteMenuItem(id uint) (bool, error)

	// Tables
	ListTables() ([]models.Table, error)
	GetTable(id uint) (*models.Table, error)
	CreateTable(draft models.Table) (*models.Table, error)
	UpdateTable(id uint, patch models.TablePatch) (*models.Table, error)
	DeleteTable(id uint) (bool, error)

	// Orders, most recent first
	ListOrders() ([]models.Order, error)
	ListOrdersByStatus(status models.OrderStatus) ([]models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	CreateOrder(draft models.Order) (*models.Order, error)
	UpdateOrder(id uint, patch models.OrderPatch) (*models.Order, error)
	DeleteOrder(id uint) (bool, error)

	// Inventory
	ListInventory() ([]models.Inventory, error)
	ListLowStock() ([]models.Inventory, error)
	GetInventoryItem(id uint) (*models.Inventory, error)
	CreateInventoryItem(draft models.Inventory) (*models.Inventory, error)
	UpdateInventoryItem(id uint, patch models.InventoryPatch) (*models.Inventory, error)
	DeleteInventoryItem(id uint) (bool, error)

	// Staff
	ListStaff() ([]models.Staff, error)
	GetStaffMember(id uint) (*models.Staff, error)
	CreateStaffMember(draft models.Staff) (*models.Staff, error)
	UpdateStaffMember(id uint, patch models.StaffPatch) (*models.Staff, error)
	DeleteStaffMember(id uint) (bool, error)

	// Customers
	ListCustomers() ([]models.Customer, error)
	GetCustomer(id uint) (*models.Customer, error)
	CreateCustomer(draft models.Customer) (*models.Customer, error)
	UpdateCustomer(id uint, patch models.CustomerPatch) (*models.Customer, error)
	DeleteCustomer(id uint) (bool, error)

	// Sales, most recent first. The range query is inclusive on both bounds.
	ListSales() ([]models.Sale, error)
	ListSalesInRange(start, end time.Time) ([]models.Sale, error)
	CreateSale(draft models.Sale) (*models.Sale, error)
}

var storeInstance Store

// Init sets the process-wide store instance selected at startup
func Init(s Store) {
	storeInstance = s
}

// Get returns the configured store instance
func Get() Store {
	return storeInstance
}

// Set replaces the store instance (primarily for testing)
func Set(s Store) {
	storeInstance = s
}
