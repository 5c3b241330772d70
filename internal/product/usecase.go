package product

import (
	"context"
	"io"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	UpdateProduct(ctx context.Context, id string, input *dto.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	DeleteProducts(ctx context.Context, ids []string) (int, error)
	ExportProducts(ctx context.Context, filters *dto.ProductFilters, format string, w io.Writer) error
}
