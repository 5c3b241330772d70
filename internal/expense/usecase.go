package expense

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/expense/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CategoryInput) (*model.ExpenseCategory, error)
	GetCategory(ctx context.Context, id string) (*model.ExpenseCategory, error)
	ListCategories(ctx context.Context, filters *dto.ListFilters) ([]model.ExpenseCategory, int, error)
	UpdateCategory(ctx context.Context, id string, input *dto.CategoryInput) (*model.ExpenseCategory, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateExpense(ctx context.Context, input *dto.ExpenseInput) (*model.Expense, error)
	GetExpense(ctx context.Context, id string) (*model.Expense, error)
	ListExpenses(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, int, error)
	UpdateExpense(ctx context.Context, id string, input *dto.ExpenseInput) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}
