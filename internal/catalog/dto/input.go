package dto

// The input structs mirror the payloads the record editor produces, so
// handlers can decode an editor payload straight into them.

type CategoryInput struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

type SubcategoryInput struct {
	Name        string `json:"name"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

type BrandInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

type UnitInput struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	IsActive bool   `json:"is_active"`
}

type VariantAttributeInput struct {
	Name     string `json:"name"`
	Values   string `json:"values"`
	IsActive bool   `json:"is_active"`
}
