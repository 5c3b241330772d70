package model

type DiscountPlan struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	IsActive    bool    `db:"is_active" json:"is_active"`
}

type Discount struct {
	BaseModel
	Name         string  `db:"name" json:"name"`
	Value        float64 `db:"value" json:"value"`
	PlanID       string  `db:"plan_id" json:"plan_id"`
	Validity     string  `db:"validity" json:"validity"` // "yyyy-MM-dd to yyyy-MM-dd"
	DiscountCode string  `db:"discount_code" json:"discount_code"`
	DiscountType string  `db:"discount_type" json:"discount_type"` // percentage | fixed
	StoreID      *string `db:"store_id" json:"store_id"`           // nil means all stores
	IsActive     bool    `db:"is_active" json:"is_active"`
}
