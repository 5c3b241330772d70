package dto

import "github.com/fekuna/omnipos-backoffice-service/internal/model"

type OrderFilters struct {
	RegisterID string
	SessionID  string
	StoreID    string
	CustomerID string
	Status     string
	From       string // yyyy-MM-dd inclusive
	To         string // yyyy-MM-dd inclusive
	Page       int
	PageSize   int
}

type OrderInput struct {
	RegisterID      *string          `json:"register_id"`
	SessionID       *string          `json:"session_id"`
	StoreID         *string          `json:"store_id"`
	CustomerID      *string          `json:"customer_id"`
	Items           model.OrderItems `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	TaxTotal        float64          `json:"tax_total"`
	DiscountTotal   float64          `json:"discount_total"`
	Total           float64          `json:"total"`
	Status          string           `json:"status"`
	PaymentMethod   *string          `json:"payment_method"`
	PaymentReceiver *string          `json:"payment_receiver"`
}

type OrderUpdateInput struct {
	Status          string  `json:"status"`
	PaymentMethod   *string `json:"payment_method"`
	PaymentReceiver *string `json:"payment_receiver"`
}

// SalesSummary aggregates completed orders for the dashboard.
type SalesSummary struct {
	OrderCount    int     `db:"order_count" json:"order_count"`
	TotalSales    float64 `db:"total_sales" json:"total_sales"`
	TaxTotal      float64 `db:"tax_total" json:"tax_total"`
	DiscountTotal float64 `db:"discount_total" json:"discount_total"`
}
