package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/order"
	"github.com/fekuna/omnipos-backoffice-service/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/pricing"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type orderUseCase struct {
	repo   order.Repository
	logger logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.OrderInput) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.New("order must contain at least one item")
	}

	now := time.Now()
	status := input.Status
	if status == "" {
		status = "completed"
	}

	subtotal := input.Subtotal
	if subtotal == 0 {
		subtotal = sumItems(input.Items)
	}
	total := input.Total
	if total == 0 {
		total = decimal.NewFromFloat(subtotal).
			Add(decimal.NewFromFloat(input.TaxTotal)).
			Sub(decimal.NewFromFloat(input.DiscountTotal)).
			Round(2).InexactFloat64()
	}

	o := &model.Order{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RegisterID:      input.RegisterID,
		SessionID:       input.SessionID,
		StoreID:         input.StoreID,
		CustomerID:      input.CustomerID,
		Items:           input.Items,
		Subtotal:        subtotal,
		TaxTotal:        input.TaxTotal,
		DiscountTotal:   input.DiscountTotal,
		Total:           total,
		Status:          status,
		PaymentMethod:   input.PaymentMethod,
		PaymentReceiver: input.PaymentReceiver,
		Timestamp:       now,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// sumItems totals the item lines with decimal arithmetic so fractional
// quantities do not accumulate float error.
func sumItems(items model.OrderItems) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(pricing.LineTotal(decimal.NewFromFloat(it.Price), decimal.NewFromFloat(it.Quantity)))
	}
	return sum.InexactFloat64()
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *orderUseCase) UpdateOrder(ctx context.Context, id string, input *dto.OrderUpdateInput) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errors.New("order not found")
	}

	if input.Status != "" {
		o.Status = input.Status
	}
	if input.PaymentMethod != nil {
		o.PaymentMethod = input.PaymentMethod
	}
	if input.PaymentReceiver != nil {
		o.PaymentReceiver = input.PaymentReceiver
	}
	o.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
