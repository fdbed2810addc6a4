package storage

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pauloferraz/braseiro-api/models"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Seed loads a sample floor plan, menu, inventory, staff and a few open
// orders into the store. Used for development runs on the memory backend
// so the dashboard has something to show.
func Seed(store Store) error {
	// 25 tables: small ones up front, larger towards the back
	for i := 1; i <= 25; i++ {
		capacity := 2
		if i > 10 {
			capacity = 4
		}
		if i > 20 {
			capacity = 6
		}
		status := models.TableOccupied
		if i > 18 {
			status = models.TableAvailable
		}
		table := models.Table{Number: i, Capacity: capacity, Status: status}
		if i > 22 {
			now := time.Now()
			table.Status = models.TableReserved
			table.ReservedBy = strPtr("Cliente Reserva")
			table.ReservedAt = &now
		}
		if _, err := store.CreateTable(table); err != nil {
			return fmt.Errorf("failed to seed table %d: %w", i, err)
		}
	}

	menuItems := []models.MenuItem{
		{Name: "Hambúrguer Clássico", Description: strPtr("Hambúrguer com queijo, alface e tomate"), Price: decimal.RequireFromString("25.90"), Category: "Hambúrgueres", Available: true},
		{Name: "Pizza Margherita", Description: strPtr("Pizza com molho de tomate, mussarela e manjericão"), Price: decimal.RequireFromString("32.50"), Category: "Pizzas", Available: true},
		{Name: "Salada Caesar", Description: strPtr("Salada com alface, croutons e molho caesar"), Price: decimal.RequireFromString("18.90"), Category: "Saladas", Available: true},
		{Name: "Batata Frita", Description: strPtr("Porção de batata frita crocante"), Price: decimal.RequireFromString("12.50"), Category: "Acompanhamentos", Available: true},
		{Name: "Refrigerante", Description: strPtr("Coca-Cola, Pepsi ou Guaraná"), Price: decimal.RequireFromString("5.50"), Category: "Bebidas", Available: true},
	}
	for _, item := range menuItems {
		if _, err := store.CreateMenuItem(item); err != nil {
			return fmt.Errorf("failed to seed menu item %q: %w", item.Name, err)
		}
	}

	inventoryItems := []models.Inventory{
		{Name: "Tomate", Category: "Vegetais", CurrentStock: decimal.NewFromInt(5), Unit: "kg", MinThreshold: decimal.NewFromInt(10), MaxThreshold: decimal.NewFromInt(50)},
		{Name: "Queijo Mussarela", Category: "Laticínios", CurrentStock: decimal.NewFromInt(2), Unit: "kg", MinThreshold: decimal.NewFromInt(5), MaxThreshold: decimal.NewFromInt(20)},
		{Name: "Pão de Hambúrguer", Category: "Padaria", CurrentStock: decimal.NewFromInt(15), Unit: "unidades", MinThreshold: decimal.NewFromInt(20), MaxThreshold: decimal.NewFromInt(100)},
		{Name: "Carne Bovina", Category: "Carnes", CurrentStock: decimal.NewFromInt(25), Unit: "kg", MinThreshold: decimal.NewFromInt(10), MaxThreshold: decimal.NewFromInt(50)},
		{Name: "Alface", Category: "Vegetais", CurrentStock: decimal.NewFromInt(8), Unit: "kg", MinThreshold: decimal.NewFromInt(5), MaxThreshold: decimal.NewFromInt(20)},
	}
	for _, item := range inventoryItems {
		item.PricePerUnit = decPtr("5.50")
		item.Supplier = strPtr("Fornecedor Local")
		if _, err := store.CreateInventoryItem(item); err != nil {
			return fmt.Errorf("failed to seed inventory item %q: %w", item.Name, err)
		}
	}

	staffMembers := []models.Staff{
		{Name: "Maria Silva", Position: "Gerente", Status: models.StaffActive, Email: strPtr("maria@restaurant.com")},
		{Name: "João Santos", Position: "Cozinheiro", Status: models.StaffActive, Email: strPtr("joao@restaurant.com")},
		{Name: "Ana Costa", Position: "Garçonete", Status: models.StaffActive, Email: strPtr("ana@restaurant.com")},
		{Name: "Carlos Lima", Position: "Garçom", Status: models.StaffOnBreak, Email: strPtr("carlos@restaurant.com")},
	}
	for _, member := range staffMembers {
		member.Phone = strPtr("(11) 99999-9999")
		member.ShiftStart = strPtr("08:00")
		member.ShiftEnd = strPtr("16:00")
		member.HourlyRate = decPtr("15.00")
		if _, err := store.CreateStaffMember(member); err != nil {
			return fmt.Errorf("failed to seed staff member %q: %w", member.Name, err)
		}
	}

	orders := []models.Order{
		{
			TableNumber: 12,
			Status:      models.OrderPreparing,
			Items: models.OrderItems{
				{MenuItemID: 1, Name: "Hambúrguer Clássico", Quantity: 2, Price: decimal.RequireFromString("25.90")},
				{MenuItemID: 4, Name: "Batata Frita", Quantity: 1, Price: decimal.RequireFromString("12.50")},
			},
			Total: decimal.RequireFromString("64.30"),
		},
		{
			TableNumber: 7,
			Status:      models.OrderReady,
			Items: models.OrderItems{
				{MenuItemID: 2, Name: "Pizza Margherita", Quantity: 1, Price: decimal.RequireFromString("32.50")},
				{MenuItemID: 5, Name: "Refrigerante", Quantity: 2, Price: decimal.RequireFromString("5.50")},
			},
			Total: decimal.RequireFromString("43.50"),
		},
		{
			TableNumber: 3,
			Status:      models.OrderPending,
			Items: models.OrderItems{
				{MenuItemID: 3, Name: "Salada Caesar", Quantity: 2, Price: decimal.RequireFromString("18.90")},
				{MenuItemID: 5, Name: "Refrigerante", Quantity: 1, Price: decimal.RequireFromString("5.50")},
			},
			Total: decimal.RequireFromString("43.30"),
		},
	}
	for _, order := range orders {
		order.CustomerName = strPtr(fmt.Sprintf("Cliente Mesa %d", order.TableNumber))
		if _, err := store.CreateOrder(order); err != nil {
			return fmt.Errorf("failed to seed order for table %d: %w", order.TableNumber, err)
		}
	}

	return nil
}
