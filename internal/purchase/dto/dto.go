package dto

type Filters struct {
	Search   string // matched against supplier and reference
	Status   string
	Page     int
	PageSize int
}

type PurchaseInput struct {
	Supplier     string  `json:"supplier"`
	Reference    string  `json:"reference"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
	PurchaseDate string  `json:"purchase_date"` // yyyy-MM-dd, defaults to today
}

type OrderInput struct {
	Supplier     string  `json:"supplier"`
	Reference    string  `json:"reference"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
	ExpectedDate *string `json:"expected_date"` // yyyy-MM-dd
}

type ReturnInput struct {
	Supplier   string  `json:"supplier"`
	Reference  string  `json:"reference"`
	PurchaseID *string `json:"purchase_id"`
	Total      float64 `json:"total"`
	Status     string  `json:"status"`
	Reason     string  `json:"reason"`
}

// HubStats backs the purchase hub overview cards.
type HubStats struct {
	PurchaseCount       int     `db:"purchase_count" json:"purchase_count"`
	PendingOrders       int     `db:"pending_orders" json:"pending_orders"`
	PendingReturns      int     `db:"pending_returns" json:"pending_returns"`
	TotalSpend          float64 `db:"total_spend" json:"total_spend"`
	MonthlySpend        float64 `db:"monthly_spend" json:"monthly_spend"`
	RecentSupplierCount int     `db:"recent_supplier_count" json:"recent_supplier_count"`
}
