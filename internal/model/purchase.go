package model

import "time"

type Purchase struct {
	BaseModel
	Supplier     string    `db:"supplier" json:"supplier"`
	Reference    string    `db:"reference" json:"reference"`
	Total        float64   `db:"total" json:"total"`
	Status       string    `db:"status" json:"status"`
	PurchaseDate time.Time `db:"purchase_date" json:"purchase_date"`
}

type PurchaseOrder struct {
	BaseModel
	Supplier     string     `db:"supplier" json:"supplier"`
	Reference    string     `db:"reference" json:"reference"`
	Total        float64    `db:"total" json:"total"`
	Status       string     `db:"status" json:"status"` // pending, approved, in_transit, received, cancelled
	ExpectedDate *time.Time `db:"expected_date" json:"expected_date"`
}

type PurchaseReturn struct {
	BaseModel
	Supplier   string  `db:"supplier" json:"supplier"`
	Reference  string  `db:"reference" json:"reference"`
	PurchaseID *string `db:"purchase_id" json:"purchase_id"`
	Total      float64 `db:"total" json:"total"`
	Status     string  `db:"status" json:"status"` // pending, approved, completed, rejected
	Reason     string  `db:"reason" json:"reason"`
}
