package catalog

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context, filters *dto.ListFilters) ([]model.Category, int, error)
	UpdateCategory(ctx context.Context, id string, input *dto.CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ReorderCategories(ctx context.Context, orderedIDs []string) error

	CreateSubcategory(ctx context.Context, input *dto.SubcategoryInput) (*model.Subcategory, error)
	GetSubcategory(ctx context.Context, id string) (*model.Subcategory, error)
	ListSubcategories(ctx context.Context, filters *dto.SubcategoryFilters) ([]model.Subcategory, int, error)
	UpdateSubcategory(ctx context.Context, id string, input *dto.SubcategoryInput) (*model.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error

	CreateBrand(ctx context.Context, input *dto.BrandInput) (*model.Brand, error)
	GetBrand(ctx context.Context, id string) (*model.Brand, error)
	ListBrands(ctx context.Context, filters *dto.ListFilters) ([]model.Brand, int, error)
	UpdateBrand(ctx context.Context, id string, input *dto.BrandInput) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id string) error

	CreateUnit(ctx context.Context, input *dto.UnitInput) (*model.Unit, error)
	GetUnit(ctx context.Context, id string) (*model.Unit, error)
	ListUnits(ctx context.Context, filters *dto.ListFilters) ([]model.Unit, int, error)
	UpdateUnit(ctx context.Context, id string, input *dto.UnitInput) (*model.Unit, error)
	DeleteUnit(ctx context.Context, id string) error

	CreateVariantAttribute(ctx context.Context, input *dto.VariantAttributeInput) (*model.VariantAttribute, error)
	GetVariantAttribute(ctx context.Context, id string) (*model.VariantAttribute, error)
	ListVariantAttributes(ctx context.Context, filters *dto.ListFilters) ([]model.VariantAttribute, int, error)
	UpdateVariantAttribute(ctx context.Context, id string, input *dto.VariantAttributeInput) (*model.VariantAttribute, error)
	DeleteVariantAttribute(ctx context.Context, id string) error
}
