package party

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/party/dto"
)

type Repository interface {
	CreateStore(ctx context.Context, store *model.Store) error
	FindStoreByID(ctx context.Context, id string) (*model.Store, error)
	FindAllStores(ctx context.Context, filters *dto.ListFilters) ([]model.Store, int, error)
	UpdateStore(ctx context.Context, store *model.Store) error
	DeleteStore(ctx context.Context, id string) error

	CreateWarehouse(ctx context.Context, warehouse *model.Warehouse) error
	FindWarehouseByID(ctx context.Context, id string) (*model.Warehouse, error)
	FindAllWarehouses(ctx context.Context, filters *dto.ListFilters) ([]model.Warehouse, int, error)
	UpdateWarehouse(ctx context.Context, warehouse *model.Warehouse) error
	DeleteWarehouse(ctx context.Context, id string) error

	CreateCustomer(ctx context.Context, customer *model.Customer) error
	FindCustomerByID(ctx context.Context, id string) (*model.Customer, error)
	FindAllCustomers(ctx context.Context, filters *dto.ListFilters) ([]model.Customer, int, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
	DeleteCustomer(ctx context.Context, id string) error

	FindAllUsers(ctx context.Context, filters *dto.ListFilters) ([]model.User, int, error)
}
