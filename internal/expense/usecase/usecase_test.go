package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-backoffice-service/internal/expense/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type fakeRepo struct {
	categories map[string]*model.ExpenseCategory
	expenses   map[string]*model.Expense
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		categories: map[string]*model.ExpenseCategory{},
		expenses:   map[string]*model.Expense{},
	}
}

func (r *fakeRepo) CreateCategory(_ context.Context, c *model.ExpenseCategory) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeRepo) FindCategoryByID(_ context.Context, id string) (*model.ExpenseCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) FindAllCategories(_ context.Context, _ *dto.ListFilters) ([]model.ExpenseCategory, int, error) {
	var out []model.ExpenseCategory
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (r *fakeRepo) UpdateCategory(_ context.Context, c *model.ExpenseCategory) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteCategory(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeRepo) Create(_ context.Context, e *model.Expense) error {
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*model.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepo) FindAll(_ context.Context, _ *dto.ExpenseFilters) ([]model.Expense, int, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		out = append(out, *e)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, e *model.Expense) error {
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.expenses, id)
	return nil
}

func (r *fakeRepo) SumByDateRange(_ context.Context, from, to string) (float64, error) {
	var sum float64
	for _, e := range r.expenses {
		if from != "" && e.ExpenseDate < from {
			continue
		}
		if to != "" && e.ExpenseDate > to {
			continue
		}
		sum += e.Amount
	}
	return sum, nil
}

func expenseInput() *dto.ExpenseInput {
	return &dto.ExpenseInput{
		Title:         "Office Rent",
		Amount:        "1200.50",
		ExpenseDate:   "2024-06-15",
		PaymentMethod: "cash",
		Status:        "paid",
	}
}

func TestCreateExpenseParsesAmount(t *testing.T) {
	uc := NewExpenseUseCase(newFakeRepo(), logger.NewNop())

	created, err := uc.CreateExpense(context.Background(), expenseInput())
	require.NoError(t, err)
	assert.Equal(t, 1200.50, created.Amount)
	assert.Equal(t, "2024-06-15", created.ExpenseDate)
}

func TestCreateExpenseRejectsBadAmount(t *testing.T) {
	uc := NewExpenseUseCase(newFakeRepo(), logger.NewNop())

	for _, amount := range []string{"abc", "-5", "0"} {
		in := expenseInput()
		in.Amount = amount
		_, err := uc.CreateExpense(context.Background(), in)
		require.EqualError(t, err, "Amount must be a positive number", "amount %q", amount)
	}
}

func TestCreateExpenseRequiresExistingCategory(t *testing.T) {
	uc := NewExpenseUseCase(newFakeRepo(), logger.NewNop())

	in := expenseInput()
	missing := "missing-category"
	in.ExpenseCategoryID = &missing
	_, err := uc.CreateExpense(context.Background(), in)
	require.EqualError(t, err, "expense category not found")
}

func TestUpdateExpenseNotFound(t *testing.T) {
	uc := NewExpenseUseCase(newFakeRepo(), logger.NewNop())

	_, err := uc.UpdateExpense(context.Background(), "missing", expenseInput())
	require.EqualError(t, err, "expense not found")
}

func TestUpdateExpenseReparsesAmount(t *testing.T) {
	repo := newFakeRepo()
	uc := NewExpenseUseCase(repo, logger.NewNop())

	created, err := uc.CreateExpense(context.Background(), expenseInput())
	require.NoError(t, err)

	in := expenseInput()
	in.Amount = " 999 "
	updated, err := uc.UpdateExpense(context.Background(), created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 999.0, updated.Amount)
}
