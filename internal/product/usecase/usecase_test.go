package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/product/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type fakeRepo struct {
	products  map[string]*model.Product
	createErr error
	deleteErr map[string]error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		products:  map[string]*model.Product{},
		deleteErr: map[string]error{},
	}
}

func (r *fakeRepo) Create(_ context.Context, p *model.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) FindAll(_ context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var out []model.Product
	for _, p := range r.products {
		if f.SearchQuery != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.SearchQuery)) {
			continue
		}
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, p *model.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if err := r.deleteErr[id]; err != nil {
		return err
	}
	delete(r.products, id)
	return nil
}

func (r *fakeRepo) IsSKUUnique(_ context.Context, sku, excludeID string) (bool, error) {
	for _, p := range r.products {
		if p.SKU == sku && p.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}

func (r *fakeRepo) IsBarcodeUnique(_ context.Context, barcode, excludeID string) (bool, error) {
	for _, p := range r.products {
		if p.Barcode == barcode && p.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}

func floatPtr(v float64) *float64 { return &v }

func productInput(name, sku string) *dto.ProductInput {
	return &dto.ProductInput{
		Name:     name,
		SKU:      sku,
		Price:    floatPtr(10),
		Quantity: floatPtr(5),
		IsActive: true,
	}
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, logger.NewNop())

	_, err := uc.CreateProduct(context.Background(), productInput("Red Hat", "RED-HAT-1000"))
	require.NoError(t, err)

	_, err = uc.CreateProduct(context.Background(), productInput("Other Hat", "RED-HAT-1000"))
	require.EqualError(t, err, "SKU already exists")
}

func TestCreateProductRejectsDuplicateBarcode(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, logger.NewNop())

	in := productInput("Red Hat", "RED-HAT-1000")
	in.Barcode = "123456789"
	_, err := uc.CreateProduct(context.Background(), in)
	require.NoError(t, err)

	in2 := productInput("Blue Hat", "BLUE-HAT-1000")
	in2.Barcode = "123456789"
	_, err = uc.CreateProduct(context.Background(), in2)
	require.EqualError(t, err, "Barcode already exists")
}

func TestCreateProductEncodesSellingType(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, logger.NewNop())

	in := productInput("Red Hat", "RED-HAT-1000")
	in.SellingType = []string{"online", "pos"}
	created, err := uc.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, created.SellingType)
	assert.JSONEq(t, `["online","pos"]`, *created.SellingType)

	in2 := productInput("Blue Hat", "BLUE-HAT-1000")
	created2, err := uc.CreateProduct(context.Background(), in2)
	require.NoError(t, err)
	assert.Nil(t, created2.SellingType)
}

func TestUpdateProductKeepsSKUWithoutUniquenessCheck(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, logger.NewNop())

	created, err := uc.CreateProduct(context.Background(), productInput("Red Hat", "RED-HAT-1000"))
	require.NoError(t, err)

	// Same SKU on the same record must not trip the duplicate check.
	in := productInput("Red Hat v2", "RED-HAT-1000")
	updated, err := uc.UpdateProduct(context.Background(), created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Red Hat v2", updated.Name)
}

func TestUpdateProductNotFound(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), nil, nil, logger.NewNop())

	_, err := uc.UpdateProduct(context.Background(), "missing", productInput("X", "X-1000"))
	require.EqualError(t, err, "product not found")
}

func TestDeleteProductsBestEffort(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, logger.NewNop())

	a, err := uc.CreateProduct(context.Background(), productInput("A", "A-1000"))
	require.NoError(t, err)
	b, err := uc.CreateProduct(context.Background(), productInput("B", "B-1000"))
	require.NoError(t, err)
	c, err := uc.CreateProduct(context.Background(), productInput("C", "C-1000"))
	require.NoError(t, err)

	repo.deleteErr[b.ID] = errors.New("row locked")

	deleted, err := uc.DeleteProducts(context.Background(), []string{a.ID, b.ID, c.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, _, err := uc.ListProducts(context.Background(), &dto.ProductFilters{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, b.ID, remaining[0].ID)
}

func TestDeleteProductMissingIsNoop(t *testing.T) {
	uc := NewProductUseCase(newFakeRepo(), nil, nil, logger.NewNop())
	require.NoError(t, uc.DeleteProduct(context.Background(), "missing"))
}

func TestListProductsFallsBackToRepoWithoutSearchBackends(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, logger.NewNop())

	_, err := uc.CreateProduct(context.Background(), productInput("Red Hat", "A-1000"))
	require.NoError(t, err)
	_, err = uc.CreateProduct(context.Background(), productInput("Blue Jeans", "B-1000"))
	require.NoError(t, err)

	items, total, err := uc.ListProducts(context.Background(), &dto.ProductFilters{SearchQuery: "red"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Red Hat", items[0].Name)
}

func TestExportProductsCSV(t *testing.T) {
	repo := newFakeRepo()
	uc := NewProductUseCase(repo, nil, nil, logger.NewNop())

	_, err := uc.CreateProduct(context.Background(), productInput("Red Hat", "A-1000"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportProducts(context.Background(), &dto.ProductFilters{}, "csv", &buf))

	out := buf.String()
	assert.Contains(t, out, "Red Hat")
	assert.Contains(t, out, "A-1000")
}
