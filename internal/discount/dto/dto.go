package dto

type ListFilters struct {
	Search   string
	IsActive *bool
	Page     int
	PageSize int
}

type DiscountFilters struct {
	ListFilters
	PlanID  string
	StoreID string
}

type PlanInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// DiscountInput carries the value as the raw text the form captured; the use
// case parses it.
type DiscountInput struct {
	Name         string  `json:"name"`
	Value        string  `json:"value"`
	PlanID       string  `json:"plan_id"`
	Validity     string  `json:"validity"`
	DiscountCode string  `json:"discount_code"`
	DiscountType string  `json:"discount_type"`
	StoreID      *string `json:"store_id"`
	IsActive     bool    `json:"is_active"`
}
