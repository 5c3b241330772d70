package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/purchase/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type fakeRepo struct {
	purchases map[string]*model.Purchase
	orders    map[string]*model.PurchaseOrder
	returns   map[string]*model.PurchaseReturn
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		purchases: map[string]*model.Purchase{},
		orders:    map[string]*model.PurchaseOrder{},
		returns:   map[string]*model.PurchaseReturn{},
	}
}

func (r *fakeRepo) CreatePurchase(_ context.Context, p *model.Purchase) error {
	cp := *p
	r.purchases[p.ID] = &cp
	return nil
}

func (r *fakeRepo) FindPurchaseByID(_ context.Context, id string) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) FindAllPurchases(_ context.Context, _ *dto.Filters) ([]model.Purchase, int, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (r *fakeRepo) UpdatePurchase(_ context.Context, p *model.Purchase) error {
	cp := *p
	r.purchases[p.ID] = &cp
	return nil
}

func (r *fakeRepo) DeletePurchase(_ context.Context, id string) error {
	delete(r.purchases, id)
	return nil
}

func (r *fakeRepo) CreateOrder(_ context.Context, po *model.PurchaseOrder) error {
	cp := *po
	r.orders[po.ID] = &cp
	return nil
}

func (r *fakeRepo) FindOrderByID(_ context.Context, id string) (*model.PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}

func (r *fakeRepo) FindAllOrders(_ context.Context, _ *dto.Filters) ([]model.PurchaseOrder, int, error) {
	var out []model.PurchaseOrder
	for _, po := range r.orders {
		out = append(out, *po)
	}
	return out, len(out), nil
}

func (r *fakeRepo) UpdateOrder(_ context.Context, po *model.PurchaseOrder) error {
	cp := *po
	r.orders[po.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteOrder(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeRepo) CreateReturn(_ context.Context, pr *model.PurchaseReturn) error {
	cp := *pr
	r.returns[pr.ID] = &cp
	return nil
}

func (r *fakeRepo) FindReturnByID(_ context.Context, id string) (*model.PurchaseReturn, error) {
	pr, ok := r.returns[id]
	if !ok {
		return nil, nil
	}
	cp := *pr
	return &cp, nil
}

func (r *fakeRepo) FindAllReturns(_ context.Context, _ *dto.Filters) ([]model.PurchaseReturn, int, error) {
	var out []model.PurchaseReturn
	for _, pr := range r.returns {
		out = append(out, *pr)
	}
	return out, len(out), nil
}

func (r *fakeRepo) UpdateReturn(_ context.Context, pr *model.PurchaseReturn) error {
	cp := *pr
	r.returns[pr.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteReturn(_ context.Context, id string) error {
	delete(r.returns, id)
	return nil
}

func (r *fakeRepo) HubStats(_ context.Context) (*dto.HubStats, error) {
	return &dto.HubStats{PurchaseCount: len(r.purchases)}, nil
}

func TestCreatePurchaseDefaults(t *testing.T) {
	uc := NewPurchaseUseCase(newFakeRepo(), logger.NewNop())

	created, err := uc.CreatePurchase(context.Background(), &dto.PurchaseInput{
		Supplier: "Acme Supplies",
		Total:    500,
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", created.Status)
	assert.False(t, created.PurchaseDate.IsZero())
}

func TestCreatePurchaseParsesDate(t *testing.T) {
	uc := NewPurchaseUseCase(newFakeRepo(), logger.NewNop())

	created, err := uc.CreatePurchase(context.Background(), &dto.PurchaseInput{
		Supplier:     "Acme Supplies",
		PurchaseDate: "2024-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), created.PurchaseDate)
}

func TestCreatePurchaseRejectsBadDate(t *testing.T) {
	uc := NewPurchaseUseCase(newFakeRepo(), logger.NewNop())

	_, err := uc.CreatePurchase(context.Background(), &dto.PurchaseInput{
		Supplier:     "Acme Supplies",
		PurchaseDate: "15/06/2024",
	})
	require.EqualError(t, err, "Date must be in yyyy-MM-dd format")
}

func TestCreatePurchaseRequiresSupplier(t *testing.T) {
	uc := NewPurchaseUseCase(newFakeRepo(), logger.NewNop())

	_, err := uc.CreatePurchase(context.Background(), &dto.PurchaseInput{})
	require.EqualError(t, err, "Supplier is required")
}

func TestCreateOrderDefaultsToPending(t *testing.T) {
	uc := NewPurchaseUseCase(newFakeRepo(), logger.NewNop())

	created, err := uc.CreateOrder(context.Background(), &dto.OrderInput{Supplier: "Acme Supplies"})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Nil(t, created.ExpectedDate)
}

func TestCreateReturnValidatesPurchaseReference(t *testing.T) {
	repo := newFakeRepo()
	uc := NewPurchaseUseCase(repo, logger.NewNop())

	missing := "missing-purchase"
	_, err := uc.CreateReturn(context.Background(), &dto.ReturnInput{
		Supplier:   "Acme Supplies",
		PurchaseID: &missing,
	})
	require.EqualError(t, err, "purchase not found")

	p, err := uc.CreatePurchase(context.Background(), &dto.PurchaseInput{Supplier: "Acme Supplies"})
	require.NoError(t, err)

	created, err := uc.CreateReturn(context.Background(), &dto.ReturnInput{
		Supplier:   "Acme Supplies",
		PurchaseID: &p.ID,
		Reason:     "damaged goods",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
}
