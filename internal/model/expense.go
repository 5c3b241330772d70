package model

type ExpenseCategory struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

type Expense struct {
	BaseModel
	Title             string  `db:"title" json:"title"`
	Amount            float64 `db:"amount" json:"amount"`
	ExpenseDate       string  `db:"expense_date" json:"expense_date"` // yyyy-MM-dd
	ExpenseCategoryID *string `db:"expense_category_id" json:"expense_category_id"`
	PaymentMethod     string  `db:"payment_method" json:"payment_method"`
	Status            string  `db:"status" json:"status"`
	Description       *string `db:"description" json:"description"`
}
