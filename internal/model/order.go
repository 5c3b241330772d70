package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderItems is stored as a JSONB column.
type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

func (o *OrderItems) Scan(src interface{}) error {
	if src == nil {
		*o = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return errors.New("unsupported type for OrderItems")
	}
}

type Order struct {
	BaseModel
	RegisterID          *string    `db:"register_id" json:"register_id"`
	SessionID           *string    `db:"session_id" json:"session_id"`
	StoreID             *string    `db:"store_id" json:"store_id"`
	CustomerID          *string    `db:"customer_id" json:"customer_id"`
	Items               OrderItems `db:"items" json:"items"`
	Subtotal            float64    `db:"subtotal" json:"subtotal"`
	TaxTotal            float64    `db:"tax_total" json:"tax_total"`
	DiscountTotal       float64    `db:"discount_total" json:"discount_total"`
	Total               float64    `db:"total" json:"total"`
	Status              string     `db:"status" json:"status"`
	PaymentMethod       *string    `db:"payment_method" json:"payment_method"`
	PaymentReceiver     *string    `db:"payment_receiver" json:"payment_receiver"`
	PaymentReceiverName string     `db:"payment_receiver_name" json:"payment_receiver_name"`
	Timestamp           time.Time  `db:"timestamp" json:"timestamp"`
}
