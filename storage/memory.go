package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pauloferraz/braseiro-api/models"
)

// MemoryStore keeps all entities in per-kind maps guarded by a single
// RWMutex. It backs development runs and tests; the production backend
// is GormStore.
type MemoryStore struct {
	mu sync.RWMutex

	menuItems map[uint]models.MenuItem
	tables    map[uint]models.Table
	orders    map[uint]models.Order
	inventory map[uint]models.Inventory
	staff     map[uint]models.Staff
	customers map[uint]models.Customer
	sales     map[uint]models.Sale

	menuItemID  uint
	tableID     uint
	orderID     uint
	inventoryID uint
	staffID     uint
	customerID  uint
	saleID      uint
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		menuItems: make(map[uint]models.MenuItem),
		tables:    make(map[uint]models.Table),
		orders:    make(map[uint]models.Order),
		inventory: make(map[uint]models.Inventory),
		staff:     make(map[uint]models.Staff),
		customers: make(map[uint]models.Customer),
		sales:     make(map[uint]models.Sale),
	}
}

// Menu items

func (s *MemoryStore) ListMenuItems() ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(s.menuItems))
	for _, item := range s.menuItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *MemoryStore) GetMenuItem(id uint) (*models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (s *MemoryStore) CreateMenuItem(draft models.MenuItem) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.menuItemID++
	draft.ID = s.menuItemID
	s.menuItems[draft.ID] = draft
	return &draft, nil
}

func (s *MemoryStore) UpdateMenuItem(id uint, patch models.MenuItemPatch) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyMenuItemPatch(&item, patch)
	s.menuItems[id] = item
	return &item, nil
}

func (s *MemoryStore) DeleteMenuItem(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menuItems[id]; !ok {
		return false, nil
	}
	delete(s.menuItems, id)
	return true, nil
}

// Tables

func (s *MemoryStore) ListTables() ([]models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tables := make([]models.Table, 0, len(s.tables))
	for _, table := range s.tables {
		tables = append(tables, table)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Number < tables[j].Number })
	return tables, nil
}

func (s *MemoryStore) GetTable(id uint) (*models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.tables[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &table, nil
}

func (s *MemoryStore) CreateTable(draft models.Table) (*models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tableNumberTaken(draft.Number, 0) {
		return nil, ErrDuplicate
	}
	if draft.Status == "" {
		draft.Status = models.TableAvailable
	}
	s.tableID++
	draft.ID = s.tableID
	s.tables[draft.ID] = draft
	return &draft, nil
}

func (s *MemoryStore) UpdateTable(id uint, patch models.TablePatch) (*models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Number != nil && s.tableNumberTaken(*patch.Number, id) {
		return nil, ErrDuplicate
	}
	applyTablePatch(&table, patch)
	s.tables[id] = table
	return &table, nil
}

func (s *MemoryStore) DeleteTable(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[id]; !ok {
		return false, nil
	}
	delete(s.tables, id)
	return true, nil
}

func (s *MemoryStore) tableNumberTaken(number int, selfID uint) bool {
	for _, table := range s.tables {
		if table.Number == number && table.ID != selfID {
			return true
		}
	}
	return false
}

// Orders

func (s *MemoryStore) ListOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, order)
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func (s *MemoryStore) ListOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0)
	for _, order := range s.orders {
		if order.Status == status {
			orders = append(orders, order)
		}
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func (s *MemoryStore) GetOrder(id uint) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (s *MemoryStore) CreateOrder(draft models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.Status == "" {
		draft.Status = models.OrderPending
	}
	if draft.Items == nil {
		draft.Items = models.OrderItems{}
	}
	s.orderID++
	draft.ID = s.orderID
	s.orders[draft.ID] = draft
	return &draft, nil
}

func (s *MemoryStore) UpdateOrder(id uint, patch models.OrderPatch) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyOrderPatch(&order, patch)
	order.UpdatedAt = time.Now()
	s.orders[id] = order
	return &order, nil
}

func (s *MemoryStore) DeleteOrder(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}

// Inventory

func (s *MemoryStore) ListInventory() ([]models.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Inventory, 0, len(s.inventory))
	for _, item := range s.inventory {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *MemoryStore) ListLowStock() ([]models.Inventory, error) {
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

func (s *MemoryStore) GetInventoryItem(id uint) (*models.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.inventory[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (s *MemoryStore) CreateInventoryItem(draft models.Inventory) (*models.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inventoryNameTaken(draft.Name, 0) {
		return nil, ErrDuplicate
	}
	draft.LastUpdated = time.Now()
	s.inventoryID++
	draft.ID = s.inventoryID
	s.inventory[draft.ID] = draft
	return &draft, nil
}

func (s *MemoryStore) UpdateInventoryItem(id uint, patch models.InventoryPatch) (*models.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.inventory[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil && s.inventoryNameTaken(*patch.Name, id) {
		return nil, ErrDuplicate
	}
	applyInventoryPatch(&item, patch)
	item.LastUpdated = time.Now()
	s.inventory[id] = item
	return &item, nil
}

func (s *MemoryStore) DeleteInventoryItem(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inventory[id]; !ok {
		return false, nil
	}
	delete(s.inventory, id)
	return true, nil
}

func (s *MemoryStore) inventoryNameTaken(name string, selfID uint) bool {
	for _, item := range s.inventory {
		if item.Name == name && item.ID != selfID {
			return true
		}
	}
	return false
}

// Staff

func (s *MemoryStore) ListStaff() ([]models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]models.Staff, 0, len(s.staff))
	for _, member := range s.staff {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (s *MemoryStore) GetStaffMember(id uint) (*models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.staff[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &member, nil
}

func (s *MemoryStore) CreateStaffMember(draft models.Staff) (*models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staffEmailTaken(draft.Email, 0) {
		return nil, ErrDuplicate
	}
	if draft.Status == "" {
		draft.Status = models.StaffActive
	}
	s.staffID++
	draft.ID = s.staffID
	s.staff[draft.ID] = draft
	return &draft, nil
}

func (s *MemoryStore) UpdateStaffMember(id uint, patch models.StaffPatch) (*models.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.staff[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil && s.staffEmailTaken(patch.Email, id) {
		return nil, ErrDuplicate
	}
	applyStaffPatch(&member, patch)
	s.staff[id] = member
	return &member, nil
}

func (s *MemoryStore) DeleteStaffMember(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.staff[id]; !ok {
		return false, nil
	}
	delete(s.staff, id)
	return true, nil
}

func (s *MemoryStore) staffEmailTaken(email *string, selfID uint) bool {
	if email == nil {
		return false
	}
	for _, member := range s.staff {
		if member.Email != nil && *member.Email == *email && member.ID != selfID {
			return true
		}
	}
	return false
}

// Customers

func (s *MemoryStore) ListCustomers() ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]models.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func (s *MemoryStore) GetCustomer(id uint) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &customer, nil
}

func (s *MemoryStore) CreateCustomer(draft models.Customer) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customerEmailTaken(draft.Email, 0) {
		return nil, ErrDuplicate
	}
	draft.TotalOrders = 0
	draft.TotalSpent = decimal.Zero
	s.customerID++
	draft.ID = s.customerID
	s.customers[draft.ID] = draft
	return &draft, nil
}

func (s *MemoryStore) UpdateCustomer(id uint, patch models.CustomerPatch) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil && s.customerEmailTaken(patch.Email, id) {
		return nil, ErrDuplicate
	}
	applyCustomerPatch(&customer, patch)
	s.customers[id] = customer
	return &customer, nil
}

func (s *MemoryStore) DeleteCustomer(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return false, nil
	}
	delete(s.customers, id)
	return true, nil
}

func (s *MemoryStore) customerEmailTaken(email *string, selfID uint) bool {
	if email == nil {
		return false
	}
	for _, customer := range s.customers {
		if customer.Email != nil && *customer.Email == *email && customer.ID != selfID {
			return true
		}
	}
	return false
}

// Sales

func (s *MemoryStore) ListSales() ([]models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]models.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		sales = append(sales, sale)
	}
	sortSalesNewestFirst(sales)
	return sales, nil
}

func (s *MemoryStore) ListSalesInRange(start, end time.Time) ([]models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]models.Sale, 0)
	for _, sale := range s.sales {
		if !sale.Date.Before(start) && !sale.Date.After(end) {
			sales = append(sales, sale)
		}
	}
	sortSalesNewestFirst(sales)
	return sales, nil
}

func (s *MemoryStore) CreateSale(draft models.Sale) (*models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if draft.Date.IsZero() {
		draft.Date = time.Now()
	}
	s.saleID++
	draft.ID = s.saleID
	s.sales[draft.ID] = draft
	return &draft, nil
}

func sortOrdersNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func sortSalesNewestFirst(sales []models.Sale) {
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Date.Equal(sales[j].Date) {
			return sales[i].ID > sales[j].ID
		}
		return sales[i].Date.After(sales[j].Date)
	})
}
