package dto

import (
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	orderdto "github.com/fekuna/omnipos-backoffice-service/internal/order/dto"
)

type Filters struct {
	From    string // yyyy-MM-dd inclusive
	To      string // yyyy-MM-dd inclusive
	StoreID string
}

type Overview struct {
	Sales         orderdto.SalesSummary `json:"sales"`
	AverageOrder  float64               `json:"average_order"`
	TotalExpenses float64               `json:"total_expenses"`
	NetIncome     float64               `json:"net_income"`
	LowStock      []model.Inventory     `json:"low_stock"`
	LowStockCount int                   `json:"low_stock_count"`
}
