package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pauloferraz/braseiro-api/models"
	"github.com/pauloferraz/braseiro-api/storage"
)

// DashboardStats is the point-in-time operational summary shown on the
// back-office dashboard
type DashboardStats struct {
	DailyRevenue   decimal.Decimal `json:"dailyRevenue"`
	ActiveOrders   int             `json:"activeOrders"`
	OccupiedTables int             `json:"occupiedTables"`
	TotalTables    int             `json:"totalTables"`
	StaffPresent   int             `json:"staffPresent"`
	TotalStaff     int             `json:"totalStaff"`
	LowStockItems  int             `json:"lowStockItems"`
}

// DashboardSnapshot holds the entity collections the stats are derived
// from. Compute never mutates it.
type DashboardSnapshot struct {
	Orders    []models.Order
	Tables    []models.Table
	Staff     []models.Staff
	Inventory []models.Inventory
	Sales     []models.Sale
}

// ComputeDashboardStats derives the dashboard summary from a snapshot.
// Daily revenue sums Sale.Amount for sales dated within the local day of
// now, [00:00, 24:00). Empty collections produce a complete zero-valued
// result.
func ComputeDashboardStats(snap DashboardSnapshot, now time.Time) DashboardStats {
	stats := DashboardStats{DailyRevenue: decimal.Zero}

	year, month, day := now.Date()
	for _, sale := range snap.Sales {
		saleLocal := sale.Date.In(now.Location())
		sy, sm, sd := saleLocal.Date()
		if sy == year && sm == month && sd == day {
			stats.DailyRevenue = stats.DailyRevenue.Add(sale.Amount)
		}
	}

	for _, order := range snap.Orders {
		if order.Status.IsActive() {
			stats.ActiveOrders++
		}
	}

	stats.TotalTables = len(snap.Tables)
	for _, table := range snap.Tables {
		if table.Status == models.TableOccupied {
			stats.OccupiedTables++
		}
	}

	stats.TotalStaff = len(snap.Staff)
	for _, member := range snap.Staff {
		if member.Status == models.StaffActive {
			stats.StaffPresent++
		}
	}

	for _, item := range snap.Inventory {
		if item.IsLowStock() {
			stats.LowStockItems++
		}
	}

	return stats
}

// LoadDashboardStats reads the current collections from the store and
// computes the stats for the present moment
func LoadDashboardStats(store storage.Store) (DashboardStats, error) {
	var snap DashboardSnapshot
	var err error

	if snap.Orders, err = store.ListOrders(); err != nil {
		return DashboardStats{}, fmt.Errorf("failed to load orders: %w", err)
	}
	if snap.Tables, err = store.ListTables(); err != nil {
		return DashboardStats{}, fmt.Errorf("failed to load tables: %w", err)
	}
	if snap.Staff, err = store.ListStaff(); err != nil {
		return DashboardStats{}, fmt.Errorf("failed to load staff: %w", err)
	}
	if snap.Inventory, err = store.ListInventory(); err != nil {
		return DashboardStats{}, fmt.Errorf("failed to load inventory: %w", err)
	}
	if snap.Sales, err = store.ListSales(); err != nil {
		return DashboardStats{}, fmt.Errorf("failed to load sales: %w", err)
	}

	return ComputeDashboardStats(snap, time.Now()), nil
}
