package dto

type ListFilters struct {
	Search   string
	Page     int
	PageSize int
}

type ExpenseFilters struct {
	ListFilters
	CategoryID    string
	Status        string
	PaymentMethod string
	From          string // yyyy-MM-dd inclusive
	To            string // yyyy-MM-dd inclusive
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ExpenseInput carries the amount as the raw text the form captured; the use
// case parses it.
type ExpenseInput struct {
	Title             string  `json:"title"`
	Amount            string  `json:"amount"`
	ExpenseDate       string  `json:"expense_date"`
	ExpenseCategoryID *string `json:"expense_category_id"`
	PaymentMethod     string  `json:"payment_method"`
	Status            string  `json:"status"`
	Description       string  `json:"description"`
}
