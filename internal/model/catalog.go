package model

type Category struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Code        string  `db:"code" json:"code"`
	Description *string `db:"description" json:"description"`
	ImageURL    *string `db:"image_url" json:"image_url"`
	IsActive    bool    `db:"is_active" json:"is_active"`
	SortOrder   int     `db:"sort_order" json:"sort_order"`
}

type Subcategory struct {
	BaseModel
	CategoryID  string  `db:"category_id" json:"category_id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	ImageURL    *string `db:"image_url" json:"image_url"`
	IsActive    bool    `db:"is_active" json:"is_active"`
}

type Brand struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	ImageURL    *string `db:"image_url" json:"image_url"`
	IsActive    bool    `db:"is_active" json:"is_active"`
}

type Unit struct {
	BaseModel
	Name     string `db:"name" json:"name"`
	Symbol   string `db:"symbol" json:"symbol"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

// VariantAttribute holds its values as a comma-joined string, matching the
// persisted form the editor produces.
type VariantAttribute struct {
	BaseModel
	Name     string `db:"name" json:"name"`
	Values   string `db:"values" json:"values"`
	IsActive bool   `db:"is_active" json:"is_active"`
}
