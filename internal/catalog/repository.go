package catalog

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type Repository interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	FindCategoryByID(ctx context.Context, id string) (*model.Category, error)
	FindAllCategories(ctx context.Context, filters *dto.ListFilters) ([]model.Category, int, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id string) error
	ReorderCategories(ctx context.Context, orderedIDs []string) error

	CreateSubcategory(ctx context.Context, subcategory *model.Subcategory) error
	FindSubcategoryByID(ctx context.Context, id string) (*model.Subcategory, error)
	FindAllSubcategories(ctx context.Context, filters *dto.SubcategoryFilters) ([]model.Subcategory, int, error)
	UpdateSubcategory(ctx context.Context, subcategory *model.Subcategory) error
	DeleteSubcategory(ctx context.Context, id string) error

	CreateBrand(ctx context.Context, brand *model.Brand) error
	FindBrandByID(ctx context.Context, id string) (*model.Brand, error)
	FindAllBrands(ctx context.Context, filters *dto.ListFilters) ([]model.Brand, int, error)
	UpdateBrand(ctx context.Context, brand *model.Brand) error
	DeleteBrand(ctx context.Context, id string) error

	CreateUnit(ctx context.Context, unit *model.Unit) error
	FindUnitByID(ctx context.Context, id string) (*model.Unit, error)
	FindAllUnits(ctx context.Context, filters *dto.ListFilters) ([]model.Unit, int, error)
	UpdateUnit(ctx context.Context, unit *model.Unit) error
	DeleteUnit(ctx context.Context, id string) error

	CreateVariantAttribute(ctx context.Context, attribute *model.VariantAttribute) error
	FindVariantAttributeByID(ctx context.Context, id string) (*model.VariantAttribute, error)
	FindAllVariantAttributes(ctx context.Context, filters *dto.ListFilters) ([]model.VariantAttribute, int, error)
	UpdateVariantAttribute(ctx context.Context, attribute *model.VariantAttribute) error
	DeleteVariantAttribute(ctx context.Context, id string) error
}
