package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type fakeRepo struct {
	orders map[string]*model.Order
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: map[string]*model.Order{}}
}

func (r *fakeRepo) Create(_ context.Context, o *model.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeRepo) FindAll(_ context.Context, _ *dto.OrderFilters) ([]model.Order, int, error) {
	var out []model.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, o *model.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeRepo) SalesSummary(_ context.Context, _, _, _ string) (*dto.SalesSummary, error) {
	summary := &dto.SalesSummary{}
	for _, o := range r.orders {
		if o.Status != "completed" {
			continue
		}
		summary.OrderCount++
		summary.TotalSales += o.Total
	}
	return summary, nil
}

func orderInput() *dto.OrderInput {
	return &dto.OrderInput{
		Items: model.OrderItems{
			{ProductID: "p-1", Name: "Red Hat", Quantity: 2, Price: 25},
		},
		Subtotal: 50,
		TaxTotal: 5,
		Total:    55,
	}
}

func TestCreateOrderDefaults(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())

	created, err := uc.CreateOrder(context.Background(), orderInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "completed", created.Status)
	assert.False(t, created.Timestamp.IsZero())
}

func TestCreateOrderDerivesTotals(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())

	in := &dto.OrderInput{
		Items: model.OrderItems{
			{ProductID: "p-1", Name: "Red Hat", Quantity: 2, Price: 25},
			{ProductID: "p-2", Name: "Coffee Beans", Quantity: 0.5, Price: 12},
		},
		TaxTotal:      5,
		DiscountTotal: 2,
	}
	created, err := uc.CreateOrder(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 56.0, created.Subtotal)
	assert.Equal(t, 59.0, created.Total)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())

	in := orderInput()
	in.Items = nil
	_, err := uc.CreateOrder(context.Background(), in)
	require.EqualError(t, err, "order must contain at least one item")
}

func TestUpdateOrderPatchesStatusAndPayment(t *testing.T) {
	repo := newFakeRepo()
	uc := NewOrderUseCase(repo, logger.NewNop())

	created, err := uc.CreateOrder(context.Background(), orderInput())
	require.NoError(t, err)

	method := "card"
	updated, err := uc.UpdateOrder(context.Background(), created.ID, &dto.OrderUpdateInput{
		Status:        "refunded",
		PaymentMethod: &method,
	})
	require.NoError(t, err)
	assert.Equal(t, "refunded", updated.Status)
	require.NotNil(t, updated.PaymentMethod)
	assert.Equal(t, "card", *updated.PaymentMethod)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdateOrderNotFound(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())

	_, err := uc.UpdateOrder(context.Background(), "missing", &dto.OrderUpdateInput{Status: "void"})
	require.EqualError(t, err, "order not found")
}
