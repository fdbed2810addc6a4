package storage

import (
	"github.com/pauloferraz/braseiro-api/models"
)

// Patch application shared by both store implementations. Only non-nil
// patch fields are merged onto the record; everything else is untouched.

func applyMenuItemPatch(item *models.MenuItem, patch models.MenuItemPatch) {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if patch.Image != nil {
		item.Image = patch.Image
	}
}

func applyTablePatch(table *models.Table, patch models.TablePatch) {
	if patch.Number != nil {
		table.Number = *patch.Number
	}
	if patch.Capacity != nil {
		table.Capacity = *patch.Capacity
	}
	if patch.Status != nil {
		table.Status = *patch.Status
	}
	if patch.ReservedBy != nil {
		table.ReservedBy = patch.ReservedBy
	}
	if patch.ReservedAt != nil {
		table.ReservedAt = patch.ReservedAt
	}
}

func applyOrderPatch(order *models.Order, patch models.OrderPatch) {
	if patch.TableNumber != nil {
		order.TableNumber = *patch.TableNumber
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.Items != nil {
		order.Items = *patch.Items
	}
	if patch.Total != nil {
		order.Total = *patch.Total
	}
	if patch.CustomerName != nil {
		order.CustomerName = patch.CustomerName
	}
	if patch.Notes != nil {
		order.Notes = patch.Notes
	}
}

func applyInventoryPatch(item *models.Inventory, patch models.InventoryPatch) {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.CurrentStock != nil {
		item.CurrentStock = *patch.CurrentStock
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.MinThreshold != nil {
		item.MinThreshold = *patch.MinThreshold
	}
	if patch.MaxThreshold != nil {
		item.MaxThreshold = *patch.MaxThreshold
	}
	if patch.PricePerUnit != nil {
		item.PricePerUnit = patch.PricePerUnit
	}
	if patch.Supplier != nil {
		item.Supplier = patch.Supplier
	}
}

func applyStaffPatch(member *models.Staff, patch models.StaffPatch) {
	if patch.Name != nil {
		member.Name = *patch.Name
	}
	if patch.Position != nil {
		member.Position = *patch.Position
	}
	if patch.Email != nil {
		member.Email = patch.Email
	}
	if patch.Phone != nil {
		member.Phone = patch.Phone
	}
	if patch.Status != nil {
		member.Status = *patch.Status
	}
	if patch.ShiftStart != nil {
		member.ShiftStart = patch.ShiftStart
	}
	if patch.ShiftEnd != nil {
		member.ShiftEnd = patch.ShiftEnd
	}
	if patch.HourlyRate != nil {
		member.HourlyRate = patch.HourlyRate
	}
}

func applyCustomerPatch(customer *models.Customer, patch models.CustomerPatch) {
	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Email != nil {
		customer.Email = patch.Email
	}
	if patch.Phone != nil {
		customer.Phone = patch.Phone
	}
	if patch.Address != nil {
		customer.Address = patch.Address
	}
	if patch.TotalOrders != nil {
		customer.TotalOrders = *patch.TotalOrders
	}
	if patch.TotalSpent != nil {
		customer.TotalSpent = *patch.TotalSpent
	}
	if patch.LastVisit != nil {
		customer.LastVisit = patch.LastVisit
	}
	if patch.Preferences != nil {
		customer.Preferences = patch.Preferences
	}
}
