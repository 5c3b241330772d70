package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/omnipos-backoffice-service/internal/discount"
	"github.com/fekuna/omnipos-backoffice-service/internal/discount/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type discountUseCase struct {
	repo   discount.Repository
	logger logger.ZapLogger
}

func NewDiscountUseCase(repo discount.Repository, log logger.ZapLogger) discount.UseCase {
	return &discountUseCase{
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

// --- plans ---

func (uc *discountUseCase) CreatePlan(ctx context.Context, input *dto.PlanInput) (*model.DiscountPlan, error) {
	plan := &model.DiscountPlan{
		BaseModel:   newBase(),
		Name:        input.Name,
		Description: &input.Description,
		IsActive:    input.IsActive,
	}
	if err := uc.repo.CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (uc *discountUseCase) GetPlan(ctx context.Context, id string) (*model.DiscountPlan, error) {
	return uc.repo.FindPlanByID(ctx, id)
}

func (uc *discountUseCase) ListPlans(ctx context.Context, filters *dto.ListFilters) ([]model.DiscountPlan, int, error) {
	return uc.repo.FindAllPlans(ctx, filters)
}

func (uc *discountUseCase) UpdatePlan(ctx context.Context, id string, input *dto.PlanInput) (*model.DiscountPlan, error) {
	plan, err := uc.repo.FindPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("discount plan not found")
	}

	plan.Name = input.Name
	plan.Description = &input.Description
	plan.IsActive = input.IsActive
	plan.UpdatedAt = time.Now()

	if err := uc.repo.UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (uc *discountUseCase) DeletePlan(ctx context.Context, id string) error {
	return uc.repo.DeletePlan(ctx, id)
}

// --- discounts ---

func (uc *discountUseCase) CreateDiscount(ctx context.Context, input *dto.DiscountInput) (*model.Discount, error) {
	value, err := parseValue(input.Value)
	if err != nil {
		return nil, err
	}

	plan, err := uc.repo.FindPlanByID(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("discount plan not found")
	}

	existing, err := uc.repo.FindDiscountByCode(ctx, input.DiscountCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("Discount code already exists")
	}

	d := &model.Discount{
		BaseModel:    newBase(),
		Name:         input.Name,
		Value:        value,
		PlanID:       input.PlanID,
		Validity:     input.Validity,
		DiscountCode: input.DiscountCode,
		DiscountType: input.DiscountType,
		StoreID:      input.StoreID,
		IsActive:     input.IsActive,
	}
	if err := uc.repo.CreateDiscount(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *discountUseCase) GetDiscount(ctx context.Context, id string) (*model.Discount, error) {
	return uc.repo.FindDiscountByID(ctx, id)
}

func (uc *discountUseCase) ListDiscounts(ctx context.Context, filters *dto.DiscountFilters) ([]model.Discount, int, error) {
	return uc.repo.FindAllDiscounts(ctx, filters)
}

func (uc *discountUseCase) UpdateDiscount(ctx context.Context, id string, input *dto.DiscountInput) (*model.Discount, error) {
	d, err := uc.repo.FindDiscountByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.New("discount not found")
	}

	value, err := parseValue(input.Value)
	if err != nil {
		return nil, err
	}

	if d.DiscountCode != input.DiscountCode {
		existing, err := uc.repo.FindDiscountByCode(ctx, input.DiscountCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.New("Discount code already exists")
		}
	}

	d.Name = input.Name
	d.Value = value
	d.PlanID = input.PlanID
	d.Validity = input.Validity
	d.DiscountCode = input.DiscountCode
	d.DiscountType = input.DiscountType
	d.StoreID = input.StoreID
	d.IsActive = input.IsActive
	d.UpdatedAt = time.Now()

	if err := uc.repo.UpdateDiscount(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *discountUseCase) DeleteDiscount(ctx context.Context, id string) error {
	return uc.repo.DeleteDiscount(ctx, id)
}

func parseValue(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.New("Value must be a number")
	}
	return value, nil
}
