package dto

type ListFilters struct {
	Search   string
	IsActive *bool
	Page     int
	PageSize int
}

type SubcategoryFilters struct {
	ListFilters
	CategoryID string
}
