package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/omnipos-backoffice-service/internal/expense"
	"github.com/fekuna/omnipos-backoffice-service/internal/expense/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type expenseUseCase struct {
	repo   expense.Repository
	logger logger.ZapLogger
}

func NewExpenseUseCase(repo expense.Repository, log logger.ZapLogger) expense.UseCase {
	return &expenseUseCase{
		repo:   repo,
		logger: log,
	}
}

func newBase() model.BaseModel {
	now := time.Now()
	return model.BaseModel{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// --- expense categories ---

func (uc *expenseUseCase) CreateCategory(ctx context.Context, input *dto.CategoryInput) (*model.ExpenseCategory, error) {
	category := &model.ExpenseCategory{
		BaseModel:   newBase(),
		Name:        input.Name,
		Description: &input.Description,
	}
	if err := uc.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *expenseUseCase) GetCategory(ctx context.Context, id string) (*model.ExpenseCategory, error) {
	return uc.repo.FindCategoryByID(ctx, id)
}

func (uc *expenseUseCase) ListCategories(ctx context.Context, filters *dto.ListFilters) ([]model.ExpenseCategory, int, error) {
	return uc.repo.FindAllCategories(ctx, filters)
}

func (uc *expenseUseCase) UpdateCategory(ctx context.Context, id string, input *dto.CategoryInput) (*model.ExpenseCategory, error) {
	category, err := uc.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("expense category not found")
	}

	category.Name = input.Name
	category.Description = &input.Description
	category.UpdatedAt = time.Now()

	if err := uc.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *expenseUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.repo.DeleteCategory(ctx, id)
}

// --- expenses ---

func (uc *expenseUseCase) CreateExpense(ctx context.Context, input *dto.ExpenseInput) (*model.Expense, error) {
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	if input.ExpenseCategoryID != nil {
		category, err := uc.repo.FindCategoryByID(ctx, *input.ExpenseCategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, errors.New("expense category not found")
		}
	}

	e := &model.Expense{
		BaseModel:         newBase(),
		Title:             input.Title,
		Amount:            amount,
		ExpenseDate:       input.ExpenseDate,
		ExpenseCategoryID: input.ExpenseCategoryID,
		PaymentMethod:     input.PaymentMethod,
		Status:            input.Status,
		Description:       &input.Description,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *expenseUseCase) GetExpense(ctx context.Context, id string) (*model.Expense, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *expenseUseCase) ListExpenses(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *expenseUseCase) UpdateExpense(ctx context.Context, id string, input *dto.ExpenseInput) (*model.Expense, error) {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errors.New("expense not found")
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	e.Title = input.Title
	e.Amount = amount
	e.ExpenseDate = input.ExpenseDate
	e.ExpenseCategoryID = input.ExpenseCategoryID
	e.PaymentMethod = input.PaymentMethod
	e.Status = input.Status
	e.Description = &input.Description
	e.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *expenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || amount <= 0 {
		return 0, errors.New("Amount must be a positive number")
	}
	return amount, nil
}
