package model

type Product struct {
	BaseModel
	Name              string   `db:"name" json:"name"`
	Quantity          *float64 `db:"quantity" json:"quantity"`
	Price             *float64 `db:"price" json:"price"`
	CostPrice         *float64 `db:"cost_price" json:"cost_price"`
	TaxType           *string  `db:"tax_type" json:"tax_type"` // exclusive | inclusive, nil when untaxed
	TaxPercentage     *float64 `db:"tax_percentage" json:"tax_percentage"`
	SKU               string   `db:"sku" json:"sku"`
	Barcode           string   `db:"barcode" json:"barcode"`
	StoreID           *string  `db:"store_id" json:"store_id"`
	WarehouseID       *string  `db:"warehouse_id" json:"warehouse_id"`
	CategoryID        *string  `db:"category_id" json:"category_id"`
	SubcategoryID     *string  `db:"subcategory_id" json:"subcategory_id"`
	BrandID           *string  `db:"brand_id" json:"brand_id"`
	UnitID            *string  `db:"unit_id" json:"unit_id"`
	ImageURL          *string  `db:"image_url" json:"image_url"`
	VariantAttributes JSONMap  `db:"variant_attributes" json:"variant_attributes"`
	SellingType       *string  `db:"selling_type" json:"selling_type"`
	IsActive          bool     `db:"is_active" json:"is_active"`
}
