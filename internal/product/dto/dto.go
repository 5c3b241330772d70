package dto

type ProductFilters struct {
	SearchQuery   string `json:"search_query"`
	StoreID       string `json:"store_id"`
	WarehouseID   string `json:"warehouse_id"`
	CategoryID    string `json:"category_id"`
	SubcategoryID string `json:"subcategory_id"`
	BrandID       string `json:"brand_id"`
	IsActive      *bool  `json:"is_active"`
	SortBy        string `json:"sort_by"`
	SortDir       string `json:"sort_dir"`
	Page          int    `json:"page"`
	PageSize      int    `json:"page_size"`
}

// ProductInput mirrors the editor's normalized product payload: optional
// numbers and references arrive as pointers, already null for empty form
// fields.
type ProductInput struct {
	Name              string            `json:"name"`
	Quantity          *float64          `json:"quantity"`
	Price             *float64          `json:"price"`
	CostPrice         *float64          `json:"cost_price"`
	TaxType           *string           `json:"tax_type"`
	TaxPercentage     *float64          `json:"tax_percentage"`
	SKU               string            `json:"sku"`
	StoreID           *string           `json:"store_id"`
	WarehouseID       *string           `json:"warehouse_id"`
	CategoryID        *string           `json:"category_id"`
	SubcategoryID     *string           `json:"subcategory_id"`
	BrandID           *string           `json:"brand_id"`
	UnitID            *string           `json:"unit_id"`
	Barcode           string            `json:"barcode"`
	ImageURL          string            `json:"image_url"`
	VariantAttributes map[string]string `json:"variant_attributes"`
	SellingType       []string          `json:"selling_type"`
	IsActive          bool              `json:"is_active"`
}
