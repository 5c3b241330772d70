package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/purchase"
	"github.com/fekuna/omnipos-backoffice-service/internal/purchase/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

const dateLayout = "2006-01-02"

type purchaseUseCase struct {
	repo   purchase.Repository
	logger logger.ZapLogger
}

func NewPurchaseUseCase(repo purchase.Repository, log logger.ZapLogger) purchase.UseCase {
	return &purchaseUseCase{
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

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errors.New("Date must be in yyyy-MM-dd format")
	}
	return t, nil
}

// --- purchases ---

func (uc *purchaseUseCase) CreatePurchase(ctx context.Context, input *dto.PurchaseInput) (*model.Purchase, error) {
	if input.Supplier == "" {
		return nil, errors.New("Supplier is required")
	}

	purchaseDate := time.Now()
	if input.PurchaseDate != "" {
		parsed, err := parseDate(input.PurchaseDate)
		if err != nil {
			return nil, err
		}
		purchaseDate = parsed
	}

	status := input.Status
	if status == "" {
		status = "completed"
	}

	p := &model.Purchase{
		BaseModel:    newBase(),
		Supplier:     input.Supplier,
		Reference:    input.Reference,
		Total:        input.Total,
		Status:       status,
		PurchaseDate: purchaseDate,
	}
	if err := uc.repo.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *purchaseUseCase) GetPurchase(ctx context.Context, id string) (*model.Purchase, error) {
	return uc.repo.FindPurchaseByID(ctx, id)
}

func (uc *purchaseUseCase) ListPurchases(ctx context.Context, filters *dto.Filters) ([]model.Purchase, int, error) {
	return uc.repo.FindAllPurchases(ctx, filters)
}

func (uc *purchaseUseCase) UpdatePurchase(ctx context.Context, id string, input *dto.PurchaseInput) (*model.Purchase, error) {
	p, err := uc.repo.FindPurchaseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("purchase not found")
	}

	if input.PurchaseDate != "" {
		parsed, err := parseDate(input.PurchaseDate)
		if err != nil {
			return nil, err
		}
		p.PurchaseDate = parsed
	}

	p.Supplier = input.Supplier
	p.Reference = input.Reference
	p.Total = input.Total
	if input.Status != "" {
		p.Status = input.Status
	}
	p.UpdatedAt = time.Now()

	if err := uc.repo.UpdatePurchase(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *purchaseUseCase) DeletePurchase(ctx context.Context, id string) error {
	return uc.repo.DeletePurchase(ctx, id)
}

// --- purchase orders ---

func (uc *purchaseUseCase) CreateOrder(ctx context.Context, input *dto.OrderInput) (*model.PurchaseOrder, error) {
	if input.Supplier == "" {
		return nil, errors.New("Supplier is required")
	}

	var expected *time.Time
	if input.ExpectedDate != nil && *input.ExpectedDate != "" {
		parsed, err := parseDate(*input.ExpectedDate)
		if err != nil {
			return nil, err
		}
		expected = &parsed
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	po := &model.PurchaseOrder{
		BaseModel:    newBase(),
		Supplier:     input.Supplier,
		Reference:    input.Reference,
		Total:        input.Total,
		Status:       status,
		ExpectedDate: expected,
	}
	if err := uc.repo.CreateOrder(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

func (uc *purchaseUseCase) GetOrder(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	return uc.repo.FindOrderByID(ctx, id)
}

func (uc *purchaseUseCase) ListOrders(ctx context.Context, filters *dto.Filters) ([]model.PurchaseOrder, int, error) {
	return uc.repo.FindAllOrders(ctx, filters)
}

func (uc *purchaseUseCase) UpdateOrder(ctx context.Context, id string, input *dto.OrderInput) (*model.PurchaseOrder, error) {
	po, err := uc.repo.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, errors.New("purchase order not found")
	}

	if input.ExpectedDate != nil && *input.ExpectedDate != "" {
		parsed, err := parseDate(*input.ExpectedDate)
		if err != nil {
			return nil, err
		}
		po.ExpectedDate = &parsed
	}

	po.Supplier = input.Supplier
	po.Reference = input.Reference
	po.Total = input.Total
	if input.Status != "" {
		po.Status = input.Status
	}
	po.UpdatedAt = time.Now()

	if err := uc.repo.UpdateOrder(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

func (uc *purchaseUseCase) DeleteOrder(ctx context.Context, id string) error {
	return uc.repo.DeleteOrder(ctx, id)
}

// --- purchase returns ---

func (uc *purchaseUseCase) CreateReturn(ctx context.Context, input *dto.ReturnInput) (*model.PurchaseReturn, error) {
	if input.Supplier == "" {
		return nil, errors.New("Supplier is required")
	}

	if input.PurchaseID != nil && *input.PurchaseID != "" {
		p, err := uc.repo.FindPurchaseByID(ctx, *input.PurchaseID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, errors.New("purchase not found")
		}
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	pr := &model.PurchaseReturn{
		BaseModel:  newBase(),
		Supplier:   input.Supplier,
		Reference:  input.Reference,
		PurchaseID: input.PurchaseID,
		Total:      input.Total,
		Status:     status,
		Reason:     input.Reason,
	}
	if err := uc.repo.CreateReturn(ctx, pr); err != nil {
		return nil, err
	}
	return pr, nil
}

func (uc *purchaseUseCase) GetReturn(ctx context.Context, id string) (*model.PurchaseReturn, error) {
	return uc.repo.FindReturnByID(ctx, id)
}

func (uc *purchaseUseCase) ListReturns(ctx context.Context, filters *dto.Filters) ([]model.PurchaseReturn, int, error) {
	return uc.repo.FindAllReturns(ctx, filters)
}

func (uc *purchaseUseCase) UpdateReturn(ctx context.Context, id string, input *dto.ReturnInput) (*model.PurchaseReturn, error) {
	pr, err := uc.repo.FindReturnByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, errors.New("purchase return not found")
	}

	pr.Supplier = input.Supplier
	pr.Reference = input.Reference
	pr.PurchaseID = input.PurchaseID
	pr.Total = input.Total
	pr.Reason = input.Reason
	if input.Status != "" {
		pr.Status = input.Status
	}
	pr.UpdatedAt = time.Now()

	if err := uc.repo.UpdateReturn(ctx, pr); err != nil {
		return nil, err
	}
	return pr, nil
}

func (uc *purchaseUseCase) DeleteReturn(ctx context.Context, id string) error {
	return uc.repo.DeleteReturn(ctx, id)
}

func (uc *purchaseUseCase) HubStats(ctx context.Context) (*dto.HubStats, error) {
	return uc.repo.HubStats(ctx)
}
