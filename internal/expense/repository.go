package expense

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/expense/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type Repository interface {
	CreateCategory(ctx context.Context, category *model.ExpenseCategory) error
	FindCategoryByID(ctx context.Context, id string) (*model.ExpenseCategory, error)
	FindAllCategories(ctx context.Context, filters *dto.ListFilters) ([]model.ExpenseCategory, int, error)
	UpdateCategory(ctx context.Context, category *model.ExpenseCategory) error
	DeleteCategory(ctx context.Context, id string) error

	Create(ctx context.Context, expense *model.Expense) error
	FindByID(ctx context.Context, id string) (*model.Expense, error)
	FindAll(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, int, error)
	Update(ctx context.Context, expense *model.Expense) error
	Delete(ctx context.Context, id string) error
	SumByDateRange(ctx context.Context, from, to string) (float64, error)
}
