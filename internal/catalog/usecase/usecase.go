package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/omnipos-backoffice-service/internal/catalog"
	"github.com/fekuna/omnipos-backoffice-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type catalogUseCase struct {
	repo   catalog.Repository
	logger logger.ZapLogger
}

func NewCatalogUseCase(repo catalog.Repository, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
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

// --- categories ---

func (uc *catalogUseCase) CreateCategory(ctx context.Context, input *dto.CategoryInput) (*model.Category, error) {
	cat := &model.Category{
		BaseModel:   newBase(),
		Name:        input.Name,
		Code:        input.Code,
		Description: &input.Description,
		ImageURL:    &input.ImageURL,
		IsActive:    input.IsActive,
	}
	if err := uc.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *catalogUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return uc.repo.FindCategoryByID(ctx, id)
}

func (uc *catalogUseCase) ListCategories(ctx context.Context, filters *dto.ListFilters) ([]model.Category, int, error) {
	return uc.repo.FindAllCategories(ctx, filters)
}

func (uc *catalogUseCase) UpdateCategory(ctx context.Context, id string, input *dto.CategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, errors.New("category not found")
	}

	cat.Name = input.Name
	cat.Code = input.Code
	cat.Description = &input.Description
	cat.ImageURL = &input.ImageURL
	cat.IsActive = input.IsActive
	cat.UpdatedAt = time.Now()

	if err := uc.repo.UpdateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *catalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.repo.DeleteCategory(ctx, id)
}

func (uc *catalogUseCase) ReorderCategories(ctx context.Context, orderedIDs []string) error {
	return uc.repo.ReorderCategories(ctx, orderedIDs)
}

// --- subcategories ---

func (uc *catalogUseCase) CreateSubcategory(ctx context.Context, input *dto.SubcategoryInput) (*model.Subcategory, error) {
	if input.CategoryID != "" {
		parent, err := uc.repo.FindCategoryByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.New("category not found")
		}
	}

	sub := &model.Subcategory{
		BaseModel:   newBase(),
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: &input.Description,
		ImageURL:    &input.ImageURL,
		IsActive:    input.IsActive,
	}
	if err := uc.repo.CreateSubcategory(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (uc *catalogUseCase) GetSubcategory(ctx context.Context, id string) (*model.Subcategory, error) {
	return uc.repo.FindSubcategoryByID(ctx, id)
}

func (uc *catalogUseCase) ListSubcategories(ctx context.Context, filters *dto.SubcategoryFilters) ([]model.Subcategory, int, error) {
	return uc.repo.FindAllSubcategories(ctx, filters)
}

func (uc *catalogUseCase) UpdateSubcategory(ctx context.Context, id string, input *dto.SubcategoryInput) (*model.Subcategory, error) {
	sub, err := uc.repo.FindSubcategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.New("subcategory not found")
	}

	sub.CategoryID = input.CategoryID
	sub.Name = input.Name
	sub.Description = &input.Description
	sub.ImageURL = &input.ImageURL
	sub.IsActive = input.IsActive
	sub.UpdatedAt = time.Now()

	if err := uc.repo.UpdateSubcategory(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (uc *catalogUseCase) DeleteSubcategory(ctx context.Context, id string) error {
	return uc.repo.DeleteSubcategory(ctx, id)
}

// --- brands ---

func (uc *catalogUseCase) CreateBrand(ctx context.Context, input *dto.BrandInput) (*model.Brand, error) {
	brand := &model.Brand{
		BaseModel:   newBase(),
		Name:        input.Name,
		Description: &input.Description,
		ImageURL:    &input.ImageURL,
		IsActive:    input.IsActive,
	}
	if err := uc.repo.CreateBrand(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (uc *catalogUseCase) GetBrand(ctx context.Context, id string) (*model.Brand, error) {
	return uc.repo.FindBrandByID(ctx, id)
}

func (uc *catalogUseCase) ListBrands(ctx context.Context, filters *dto.ListFilters) ([]model.Brand, int, error) {
	return uc.repo.FindAllBrands(ctx, filters)
}

func (uc *catalogUseCase) UpdateBrand(ctx context.Context, id string, input *dto.BrandInput) (*model.Brand, error) {
	brand, err := uc.repo.FindBrandByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, errors.New("brand not found")
	}

	brand.Name = input.Name
	brand.Description = &input.Description
	brand.ImageURL = &input.ImageURL
	brand.IsActive = input.IsActive
	brand.UpdatedAt = time.Now()

	if err := uc.repo.UpdateBrand(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (uc *catalogUseCase) DeleteBrand(ctx context.Context, id string) error {
	return uc.repo.DeleteBrand(ctx, id)
}

// --- units ---

func (uc *catalogUseCase) CreateUnit(ctx context.Context, input *dto.UnitInput) (*model.Unit, error) {
	unit := &model.Unit{
		BaseModel: newBase(),
		Name:      input.Name,
		Symbol:    input.Symbol,
		IsActive:  input.IsActive,
	}
	if err := uc.repo.CreateUnit(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (uc *catalogUseCase) GetUnit(ctx context.Context, id string) (*model.Unit, error) {
	return uc.repo.FindUnitByID(ctx, id)
}

func (uc *catalogUseCase) ListUnits(ctx context.Context, filters *dto.ListFilters) ([]model.Unit, int, error) {
	return uc.repo.FindAllUnits(ctx, filters)
}

func (uc *catalogUseCase) UpdateUnit(ctx context.Context, id string, input *dto.UnitInput) (*model.Unit, error) {
	unit, err := uc.repo.FindUnitByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, errors.New("unit not found")
	}

	unit.Name = input.Name
	unit.Symbol = input.Symbol
	unit.IsActive = input.IsActive
	unit.UpdatedAt = time.Now()

	if err := uc.repo.UpdateUnit(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (uc *catalogUseCase) DeleteUnit(ctx context.Context, id string) error {
	return uc.repo.DeleteUnit(ctx, id)
}

// --- variant attributes ---

func (uc *catalogUseCase) CreateVariantAttribute(ctx context.Context, input *dto.VariantAttributeInput) (*model.VariantAttribute, error) {
	attribute := &model.VariantAttribute{
		BaseModel: newBase(),
		Name:      input.Name,
		Values:    input.Values,
		IsActive:  input.IsActive,
	}
	if err := uc.repo.CreateVariantAttribute(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func (uc *catalogUseCase) GetVariantAttribute(ctx context.Context, id string) (*model.VariantAttribute, error) {
	return uc.repo.FindVariantAttributeByID(ctx, id)
}

func (uc *catalogUseCase) ListVariantAttributes(ctx context.Context, filters *dto.ListFilters) ([]model.VariantAttribute, int, error) {
	return uc.repo.FindAllVariantAttributes(ctx, filters)
}

func (uc *catalogUseCase) UpdateVariantAttribute(ctx context.Context, id string, input *dto.VariantAttributeInput) (*model.VariantAttribute, error) {
	attribute, err := uc.repo.FindVariantAttributeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, errors.New("variant attribute not found")
	}

	attribute.Name = input.Name
	attribute.Values = input.Values
	attribute.IsActive = input.IsActive
	attribute.UpdatedAt = time.Now()

	if err := uc.repo.UpdateVariantAttribute(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func (uc *catalogUseCase) DeleteVariantAttribute(ctx context.Context, id string) error {
	return uc.repo.DeleteVariantAttribute(ctx, id)
}
