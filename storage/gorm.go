package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pauloferraz/braseiro-api/models"
)

// GormStore is the persistent Store implementation backed by GORM
// (PostgreSQL in production, SQLite in tests). Updates fetch the record,
// merge the patch in Go and save, so merge semantics match MemoryStore
// exactly.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by the given GORM connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the schema for every entity kind
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&models.MenuItem{},
		&models.Table{},
		&models.Order{},
		&models.Inventory{},
		&models.Staff{},
		&models.Customer{},
		&models.Sale{},
	)
}

// translateErr maps GORM errors onto the store's sentinel errors
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	// Works with both PostgreSQL and SQLite error strings
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
		return ErrDuplicate
	}
	return fmt.Errorf("store failure: %w", err)
}

// Menu items

func (s *GormStore) ListMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, translateErr(err)
	}
	return items, nil
}

func (s *GormStore) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (s *GormStore) CreateMenuItem(draft models.MenuItem) (*models.MenuItem, error) {
	draft.ID = 0
	if err := s.db.Create(&draft).Error; err != nil {
		return nil, translateErr(err)
	}
	return &draft, nil
}

func (s *GormStore) UpdateMenuItem(id uint, patch models.MenuItemPatch) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translateErr(err)
	}
	applyMenuItemPatch(&item, patch)
	if err := s.db.Save(&item).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (s *GormStore) DeleteMenuItem(id uint) (bool, error) {
	result := s.db.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return false, translateErr(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Tables

func (s *GormStore) ListTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Order("number ASC").Find(&tables).Error; err != nil {
		return nil, translateErr(err)
	}
	return tables, nil
}

func (s *GormStore) GetTable(id uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &table, nil
}

func (s *GormStore) CreateTable(draft models.Table) (*models.Table, error) {
	draft.ID = 0
	if draft.Status == "" {
		draft.Status = models.TableAvailable
	}
	if err := s.db.Create(&draft).Error; err != nil {
		return nil, translateErr(err)
	}
	return &draft, nil
}

func (s *GormStore) UpdateTable(id uint, patch models.TablePatch) (*models.Table, error) {
	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		return nil, translateErr(err)
	}
	applyTablePatch(&table, patch)
	if err := s.db.Save(&table).Error; err != nil {
		return nil, translateErr(err)
	}
	return &table, nil
}

func (s *GormStore) DeleteTable(id uint) (bool, error) {
	result := s.db.Delete(&models.Table{}, id)
	if result.Error != nil {
		return false, translateErr(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Orders

func (s *GormStore) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, translateErr(err)
	}
	return orders, nil
}

func (s *GormStore) ListOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, translateErr(err)
	}
	return orders, nil
}

func (s *GormStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

func (s *GormStore) CreateOrder(draft models.Order) (*models.Order, error) {
	draft.ID = 0
	now := time.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.Status == "" {
		draft.Status = models.OrderPending
	}
	if draft.Items == nil {
		draft.Items = models.OrderItems{}
	}
	if err := s.db.Create(&draft).Error; err != nil {
		return nil, translateErr(err)
	}
	return &draft, nil
}

func (s *GormStore) UpdateOrder(id uint, patch models.OrderPatch) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, translateErr(err)
	}
	applyOrderPatch(&order, patch)
	order.UpdatedAt = time.Now()
	if err := s.db.Save(&order).Error; err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

func (s *GormStore) DeleteOrder(id uint) (bool, error) {
	result := s.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return false, translateErr(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Inventory

func (s *GormStore) ListInventory() ([]models.Inventory, error) {
	var items []models.Inventory
	if err := s.db.Find(&items).Error; err != nil {
		return nil, translateErr(err)
	}
	return items, nil
}

// ListLowStock filters in memory rather than in SQL so the threshold
// comparison stays in one place (models.Inventory.IsLowStock).
func (s *GormStore) ListLowStock() ([]models.Inventory, error) {
	items, err := s.ListInventory()
	if err != nil {
		return nil, err
	}
	low := make([]models.Inventory, 0)
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

func (s *GormStore) GetInventoryItem(id uint) (*models.Inventory, error) {
	var item models.Inventory
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (s *GormStore) CreateInventoryItem(draft models.Inventory) (*models.Inventory, error) {
	draft.ID = 0
	draft.LastUpdated = time.Now()
	if err := s.db.Create(&draft).Error; err != nil {
		return nil, translateErr(err)
	}
	return &draft, nil
}

func (s *GormStore) UpdateInventoryItem(id uint, patch models.InventoryPatch) (*models.Inventory, error) {
	var item models.Inventory
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translateErr(err)
	}
	applyInventoryPatch(&item, patch)
	item.LastUpdated = time.Now()
	if err := s.db.Save(&item).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (s *GormStore) DeleteInventoryItem(id uint) (bool, error) {
	result := s.db.Delete(&models.Inventory{}, id)
	if result.Error != nil {
		return false, translateErr(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Staff

func (s *GormStore) ListStaff() ([]models.Staff, error) {
	var members []models.Staff
	if err := s.db.Find(&members).Error; err != nil {
		return nil, translateErr(err)
	}
	return members, nil
}

func (s *GormStore) GetStaffMember(id uint) (*models.Staff, error) {
	var member models.Staff
	if err := s.db.First(&member, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &member, nil
}

func (s *GormStore) CreateStaffMember(draft models.Staff) (*models.Staff, error) {
	draft.ID = 0
	if draft.Status == "" {
		draft.Status = models.StaffActive
	}
	if err := s.db.Create(&draft).Error; err != nil {
		return nil, translateErr(err)
	}
	return &draft, nil
}

func (s *GormStore) UpdateStaffMember(id uint, patch models.StaffPatch) (*models.Staff, error) {
	var member models.Staff
	if err := s.db.First(&member, id).Error; err != nil {
		return nil, translateErr(err)
	}
	applyStaffPatch(&member, patch)
	if err := s.db.Save(&member).Error; err != nil {
		return nil, translateErr(err)
	}
	return &member, nil
}

func (s *GormStore) DeleteStaffMember(id uint) (bool, error) {
	result := s.db.Delete(&models.Staff{}, id)
	if result.Error != nil {
		return false, translateErr(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Customers

func (s *GormStore) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		return nil, translateErr(err)
	}
	return customers, nil
}

func (s *GormStore) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &customer, nil
}

func (s *GormStore) CreateCustomer(draft models.Customer) (*models.Customer, error) {
	draft.ID = 0
	draft.TotalOrders = 0
	draft.TotalSpent = decimal.Zero
	if err := s.db.Create(&draft).Error; err != nil {
		return nil, translateErr(err)
	}
	return &draft, nil
}

func (s *GormStore) UpdateCustomer(id uint, patch models.CustomerPatch) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, translateErr(err)
	}
	applyCustomerPatch(&customer, patch)
	if err := s.db.Save(&customer).Error; err != nil {
		return nil, translateErr(err)
	}
	return &customer, nil
}

func (s *GormStore) DeleteCustomer(id uint) (bool, error) {
	result := s.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return false, translateErr(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Sales

func (s *GormStore) ListSales() ([]models.Sale, error) {
	var sales []models.Sale
	if err := s.db.Order("date DESC, id DESC").Find(&sales).Error; err != nil {
		return nil, translateErr(err)
	}
	return sales, nil
}

func (s *GormStore) ListSalesInRange(start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	if err := s.db.Where("date >= ? AND date <= ?", start, end).
		Order("date DESC, id DESC").
		Find(&sales).Error; err != nil {
		return nil, translateErr(err)
	}
	return sales, nil
}

func (s *GormStore) CreateSale(draft models.Sale) (*models.Sale, error) {
	draft.ID = 0
	if draft.Date.IsZero() {
		draft.Date = time.Now()
	}
	if err := s.db.Create(&draft).Error; err != nil {
		return nil, translateErr(err)
	}
	return &draft, nil
}
