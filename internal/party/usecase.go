package party

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/party/dto"
)

type UseCase interface {
	CreateStore(ctx context.Context, input *dto.StoreInput) (*model.Store, error)
	GetStore(ctx context.Context, id string) (*model.Store, error)
	ListStores(ctx context.Context, filters *dto.ListFilters) ([]model.Store, int, error)
	UpdateStore(ctx context.Context, id string, input *dto.StoreInput) (*model.Store, error)
	DeleteStore(ctx context.Context, id string) error

	CreateWarehouse(ctx context.Context, input *dto.WarehouseInput) (*model.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (*model.Warehouse, error)
	ListWarehouses(ctx context.Context, filters *dto.ListFilters) ([]model.Warehouse, int, error)
	UpdateWarehouse(ctx context.Context, id string, input *dto.WarehouseInput) (*model.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id string) error

	CreateCustomer(ctx context.Context, input *dto.CustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	ListCustomers(ctx context.Context, filters *dto.ListFilters) ([]model.Customer, int, error)
	UpdateCustomer(ctx context.Context, id string, input *dto.CustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	ListUsers(ctx context.Context, filters *dto.ListFilters) ([]model.User, int, error)
}
