package usecase

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/dashboard"
	"github.com/fekuna/omnipos-backoffice-service/internal/dashboard/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/expense"
	"github.com/fekuna/omnipos-backoffice-service/internal/inventory"
	invdto "github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/order"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

// lowStockLimit caps the dashboard card; the inventory endpoint serves
// the full paginated list.
const lowStockLimit = 10

type dashboardUseCase struct {
	orders    order.Repository
	expenses  expense.Repository
	inventory inventory.Repository
	logger    logger.ZapLogger
}

func NewDashboardUseCase(orders order.Repository, expenses expense.Repository, inv inventory.Repository, log logger.ZapLogger) dashboard.UseCase {
	return &dashboardUseCase{
		orders:    orders,
		expenses:  expenses,
		inventory: inv,
		logger:    log,
	}
}

func (uc *dashboardUseCase) Overview(ctx context.Context, filters *dto.Filters) (*dto.Overview, error) {
	sales, err := uc.orders.SalesSummary(ctx, filters.From, filters.To, filters.StoreID)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := uc.expenses.SumByDateRange(ctx, filters.From, filters.To)
	if err != nil {
		return nil, err
	}

	var storeID *string
	if filters.StoreID != "" {
		storeID = &filters.StoreID
	}
	lowStock, lowStockCount, err := uc.inventory.FindAll(ctx, &invdto.InventoryFilters{
		StoreID:  storeID,
		LowStock: true,
		Page:     1,
		PageSize: lowStockLimit,
	})
	if err != nil {
		return nil, err
	}

	overview := &dto.Overview{
		Sales:         *sales,
		TotalExpenses: totalExpenses,
		NetIncome:     sales.TotalSales - totalExpenses,
		LowStock:      lowStock,
		LowStockCount: lowStockCount,
	}
	if sales.OrderCount > 0 {
		overview.AverageOrder = sales.TotalSales / float64(sales.OrderCount)
	}
	return overview, nil
}
