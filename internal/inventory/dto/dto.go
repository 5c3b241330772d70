package dto

type InventoryFilters struct {
	ProductID string
	StoreID   *string
	LowStock  bool
	Page      int
	PageSize  int
}

type MovementFilters struct {
	ProductID    string
	MovementType string
	Page         int
	PageSize     int
}

type AdjustInventoryInput struct {
	ProductID      string  `json:"product_id"`
	StoreID        *string `json:"store_id"`
	QuantityChange float64 `json:"quantity_change"`
	Reason         string  `json:"reason"`
	ReferenceID    string  `json:"reference_id"`
	ReferenceType  string  `json:"reference_type"`
	UserID         string  `json:"user_id"`
}
