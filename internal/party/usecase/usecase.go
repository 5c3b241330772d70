package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/party"
	"github.com/fekuna/omnipos-backoffice-service/internal/party/dto"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
)

type partyUseCase struct {
	repo   party.Repository
	logger logger.ZapLogger
}

func NewPartyUseCase(repo party.Repository, log logger.ZapLogger) party.UseCase {
	return &partyUseCase{
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

// --- stores ---

func (uc *partyUseCase) CreateStore(ctx context.Context, input *dto.StoreInput) (*model.Store, error) {
	store := &model.Store{
		BaseModel: newBase(),
		Name:      input.Name,
		Address:   input.Address,
		Phone:     input.Phone,
		Email:     input.Email,
		IsActive:  input.IsActive,
	}
	if err := uc.repo.CreateStore(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (uc *partyUseCase) GetStore(ctx context.Context, id string) (*model.Store, error) {
	return uc.repo.FindStoreByID(ctx, id)
}

func (uc *partyUseCase) ListStores(ctx context.Context, filters *dto.ListFilters) ([]model.Store, int, error) {
	return uc.repo.FindAllStores(ctx, filters)
}

func (uc *partyUseCase) UpdateStore(ctx context.Context, id string, input *dto.StoreInput) (*model.Store, error) {
	store, err := uc.repo.FindStoreByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("store not found")
	}

	store.Name = input.Name
	store.Address = input.Address
	store.Phone = input.Phone
	store.Email = input.Email
	store.IsActive = input.IsActive
	store.UpdatedAt = time.Now()

	if err := uc.repo.UpdateStore(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (uc *partyUseCase) DeleteStore(ctx context.Context, id string) error {
	return uc.repo.DeleteStore(ctx, id)
}

// --- warehouses ---

func (uc *partyUseCase) CreateWarehouse(ctx context.Context, input *dto.WarehouseInput) (*model.Warehouse, error) {
	warehouse := &model.Warehouse{
		BaseModel:     newBase(),
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		IsActive:      input.IsActive,
	}
	if err := uc.repo.CreateWarehouse(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (uc *partyUseCase) GetWarehouse(ctx context.Context, id string) (*model.Warehouse, error) {
	return uc.repo.FindWarehouseByID(ctx, id)
}

func (uc *partyUseCase) ListWarehouses(ctx context.Context, filters *dto.ListFilters) ([]model.Warehouse, int, error) {
	return uc.repo.FindAllWarehouses(ctx, filters)
}

func (uc *partyUseCase) UpdateWarehouse(ctx context.Context, id string, input *dto.WarehouseInput) (*model.Warehouse, error) {
	warehouse, err := uc.repo.FindWarehouseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, errors.New("warehouse not found")
	}

	warehouse.Name = input.Name
	warehouse.ContactPerson = input.ContactPerson
	warehouse.Phone = input.Phone
	warehouse.Email = input.Email
	warehouse.Address = input.Address
	warehouse.IsActive = input.IsActive
	warehouse.UpdatedAt = time.Now()

	if err := uc.repo.UpdateWarehouse(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (uc *partyUseCase) DeleteWarehouse(ctx context.Context, id string) error {
	return uc.repo.DeleteWarehouse(ctx, id)
}

// --- customers ---

func (uc *partyUseCase) CreateCustomer(ctx context.Context, input *dto.CustomerInput) (*model.Customer, error) {
	customer := &model.Customer{
		BaseModel: newBase(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		IsActive:  input.IsActive,
	}
	if err := uc.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *partyUseCase) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	return uc.repo.FindCustomerByID(ctx, id)
}

func (uc *partyUseCase) ListCustomers(ctx context.Context, filters *dto.ListFilters) ([]model.Customer, int, error) {
	return uc.repo.FindAllCustomers(ctx, filters)
}

func (uc *partyUseCase) UpdateCustomer(ctx context.Context, id string, input *dto.CustomerInput) (*model.Customer, error) {
	customer, err := uc.repo.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.New("customer not found")
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.IsActive = input.IsActive
	customer.UpdatedAt = time.Now()

	if err := uc.repo.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *partyUseCase) DeleteCustomer(ctx context.Context, id string) error {
	return uc.repo.DeleteCustomer(ctx, id)
}

// --- users ---

func (uc *partyUseCase) ListUsers(ctx context.Context, filters *dto.ListFilters) ([]model.User, int, error) {
	return uc.repo.FindAllUsers(ctx, filters)
}
