package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-backoffice-service/internal/discount/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type fakeRepo struct {
	plans     map[string]*model.DiscountPlan
	discounts map[string]*model.Discount
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		plans:     map[string]*model.DiscountPlan{},
		discounts: map[string]*model.Discount{},
	}
}

func (r *fakeRepo) CreatePlan(_ context.Context, plan *model.DiscountPlan) error {
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakeRepo) FindPlanByID(_ context.Context, id string) (*model.DiscountPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) FindAllPlans(_ context.Context, _ *dto.ListFilters) ([]model.DiscountPlan, int, error) {
	var out []model.DiscountPlan
	for _, p := range r.plans {
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (r *fakeRepo) UpdatePlan(_ context.Context, plan *model.DiscountPlan) error {
	cp := *plan
	r.plans[plan.ID] = &cp
	return nil
}

func (r *fakeRepo) DeletePlan(_ context.Context, id string) error {
	delete(r.plans, id)
	return nil
}

func (r *fakeRepo) CreateDiscount(_ context.Context, d *model.Discount) error {
	cp := *d
	r.discounts[d.ID] = &cp
	return nil
}

func (r *fakeRepo) FindDiscountByID(_ context.Context, id string) (*model.Discount, error) {
	d, ok := r.discounts[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeRepo) FindDiscountByCode(_ context.Context, code string) (*model.Discount, error) {
	for _, d := range r.discounts {
		if d.DiscountCode == code {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) FindAllDiscounts(_ context.Context, _ *dto.DiscountFilters) ([]model.Discount, int, error) {
	var out []model.Discount
	for _, d := range r.discounts {
		out = append(out, *d)
	}
	return out, len(out), nil
}

func (r *fakeRepo) UpdateDiscount(_ context.Context, d *model.Discount) error {
	cp := *d
	r.discounts[d.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteDiscount(_ context.Context, id string) error {
	delete(r.discounts, id)
	return nil
}

func seedPlan(t *testing.T, repo *fakeRepo) *model.DiscountPlan {
	t.Helper()
	plan := &model.DiscountPlan{Name: "Summer"}
	plan.ID = "plan-1"
	require.NoError(t, repo.CreatePlan(context.Background(), plan))
	return plan
}

func discountInput(planID string) *dto.DiscountInput {
	return &dto.DiscountInput{
		Name:         "Summer Sale",
		Value:        "10",
		PlanID:       planID,
		Validity:     "2024-06-01 to 2024-06-30",
		DiscountCode: "SUMMER10",
		DiscountType: "percentage",
		IsActive:     true,
	}
}

func TestCreateDiscountParsesValue(t *testing.T) {
	repo := newFakeRepo()
	plan := seedPlan(t, repo)
	uc := NewDiscountUseCase(repo, logger.NewNop())

	created, err := uc.CreateDiscount(context.Background(), discountInput(plan.ID))
	require.NoError(t, err)
	assert.Equal(t, 10.0, created.Value)
	assert.Equal(t, "SUMMER10", created.DiscountCode)
}

func TestCreateDiscountRejectsNonNumericValue(t *testing.T) {
	repo := newFakeRepo()
	plan := seedPlan(t, repo)
	uc := NewDiscountUseCase(repo, logger.NewNop())

	in := discountInput(plan.ID)
	in.Value = "ten"
	_, err := uc.CreateDiscount(context.Background(), in)
	require.EqualError(t, err, "Value must be a number")
}

func TestCreateDiscountRequiresExistingPlan(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDiscountUseCase(repo, logger.NewNop())

	_, err := uc.CreateDiscount(context.Background(), discountInput("missing-plan"))
	require.EqualError(t, err, "discount plan not found")
}

func TestCreateDiscountRejectsDuplicateCode(t *testing.T) {
	repo := newFakeRepo()
	plan := seedPlan(t, repo)
	uc := NewDiscountUseCase(repo, logger.NewNop())

	_, err := uc.CreateDiscount(context.Background(), discountInput(plan.ID))
	require.NoError(t, err)

	in := discountInput(plan.ID)
	in.Name = "Second"
	_, err = uc.CreateDiscount(context.Background(), in)
	require.EqualError(t, err, "Discount code already exists")
}

func TestUpdateDiscountAllowsUnchangedCode(t *testing.T) {
	repo := newFakeRepo()
	plan := seedPlan(t, repo)
	uc := NewDiscountUseCase(repo, logger.NewNop())

	created, err := uc.CreateDiscount(context.Background(), discountInput(plan.ID))
	require.NoError(t, err)

	in := discountInput(plan.ID)
	in.Value = "15"
	updated, err := uc.UpdateDiscount(context.Background(), created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 15.0, updated.Value)
}

func TestUpdateDiscountRejectsCodeTakenByOther(t *testing.T) {
	repo := newFakeRepo()
	plan := seedPlan(t, repo)
	uc := NewDiscountUseCase(repo, logger.NewNop())

	_, err := uc.CreateDiscount(context.Background(), discountInput(plan.ID))
	require.NoError(t, err)

	in2 := discountInput(plan.ID)
	in2.DiscountCode = "WINTER20"
	second, err := uc.CreateDiscount(context.Background(), in2)
	require.NoError(t, err)

	in2.DiscountCode = "SUMMER10"
	_, err = uc.UpdateDiscount(context.Background(), second.ID, in2)
	require.EqualError(t, err, "Discount code already exists")
}
