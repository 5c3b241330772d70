package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/party/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) findAll(ctx context.Context, dest interface{}, table, searchColumns string, f *dto.ListFilters) (int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Search != "" {
		parts := []string{}
		for _, col := range strings.Split(searchColumns, ",") {
			parts = append(parts, col+" ILIKE :search")
		}
		conditions = append(conditions, "("+strings.Join(parts, " OR ")+")")
		args["search"] = "%" + f.Search + "%"
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM "+table+whereClause, args)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}

	query := "SELECT * FROM " + table + whereClause + " ORDER BY name ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer nstmt.Close()

	return count, nstmt.SelectContext(ctx, dest, args)
}

// --- stores ---

func (r *PGRepository) CreateStore(ctx context.Context, s *model.Store) error {
	query := `
        INSERT INTO stores (id, name, address, phone, email, is_active, created_at, updated_at)
        VALUES (:id, :name, :address, :phone, :email, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindStoreByID(ctx context.Context, id string) (*model.Store, error) {
	var store model.Store
	err := r.DB.GetContext(ctx, &store, `SELECT * FROM stores WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *PGRepository) FindAllStores(ctx context.Context, f *dto.ListFilters) ([]model.Store, int, error) {
	var stores []model.Store
	count, err := r.findAll(ctx, &stores, "stores", "name,address,email", f)
	if err != nil {
		return nil, 0, err
	}
	return stores, count, nil
}

func (r *PGRepository) UpdateStore(ctx context.Context, s *model.Store) error {
	query := `
        UPDATE stores
        SET name = :name,
            address = :address,
            phone = :phone,
            email = :email,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) DeleteStore(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM stores WHERE id = $1", id)
	return err
}

// --- warehouses ---

func (r *PGRepository) CreateWarehouse(ctx context.Context, w *model.Warehouse) error {
	query := `
        INSERT INTO warehouses (id, name, contact_person, phone, email, address, is_active, created_at, updated_at)
        VALUES (:id, :name, :contact_person, :phone, :email, :address, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, w)
	return err
}

func (r *PGRepository) FindWarehouseByID(ctx context.Context, id string) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	err := r.DB.GetContext(ctx, &warehouse, `SELECT * FROM warehouses WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &warehouse, nil
}

func (r *PGRepository) FindAllWarehouses(ctx context.Context, f *dto.ListFilters) ([]model.Warehouse, int, error) {
	var warehouses []model.Warehouse
	count, err := r.findAll(ctx, &warehouses, "warehouses", "name,address,email", f)
	if err != nil {
		return nil, 0, err
	}
	return warehouses, count, nil
}

func (r *PGRepository) UpdateWarehouse(ctx context.Context, w *model.Warehouse) error {
	query := `
        UPDATE warehouses
        SET name = :name,
            contact_person = :contact_person,
            phone = :phone,
            email = :email,
            address = :address,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, w)
	return err
}

func (r *PGRepository) DeleteWarehouse(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM warehouses WHERE id = $1", id)
	return err
}

// --- customers ---

func (r *PGRepository) CreateCustomer(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (id, name, email, phone, address, image_url, is_active, created_at, updated_at)
        VALUES (:id, :name, :email, :phone, :address, :image_url, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindCustomerByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := r.DB.GetContext(ctx, &customer, `SELECT * FROM customers WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *PGRepository) FindAllCustomers(ctx context.Context, f *dto.ListFilters) ([]model.Customer, int, error) {
	var customers []model.Customer
	count, err := r.findAll(ctx, &customers, "customers", "name,email,phone", f)
	if err != nil {
		return nil, 0, err
	}
	return customers, count, nil
}

func (r *PGRepository) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	query := `
        UPDATE customers
        SET name = :name,
            email = :email,
            phone = :phone,
            address = :address,
            image_url = :image_url,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) DeleteCustomer(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	return err
}

// --- users ---

func (r *PGRepository) FindAllUsers(ctx context.Context, f *dto.ListFilters) ([]model.User, int, error) {
	var users []model.User
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, "(full_name ILIKE :search OR email ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM users"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM users" + whereClause + " ORDER BY full_name ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &users, args); err != nil {
		return nil, 0, err
	}
	return users, count, nil
}
