package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-backoffice-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func listClauses(f *dto.ListFilters) ([]string, map[string]interface{}) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, "name ILIKE :search")
		args["search"] = "%" + f.Search + "%"
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	return conditions, args
}

// findAll runs the shared count-then-page query pair for a simple catalog
// table. dest must be a pointer to a slice of the table's model.
func (r *PGRepository) findAll(ctx context.Context, dest interface{}, table, orderBy string, conditions []string, args map[string]interface{}, page, pageSize int) (int, error) {
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

	query := "SELECT * FROM " + table + whereClause + " ORDER BY " + orderBy
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer nstmt.Close()

	return count, nstmt.SelectContext(ctx, dest, args)
}

// --- categories ---

func (r *PGRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, name, code, description, image_url, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :name, :code, :description, :image_url, :sort_order, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	err := r.DB.GetContext(ctx, &category, `SELECT * FROM categories WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindAllCategories(ctx context.Context, f *dto.ListFilters) ([]model.Category, int, error) {
	var categories []model.Category
	conditions, args := listClauses(f)
	count, err := r.findAll(ctx, &categories, "categories", "sort_order ASC, name ASC", conditions, args, f.Page, f.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return categories, count, nil
}

func (r *PGRepository) UpdateCategory(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            code = :code,
            description = :description,
            image_url = :image_url,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) DeleteCategory(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	return err
}

func (r *PGRepository) ReorderCategories(ctx context.Context, orderedIDs []string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, id := range orderedIDs {
		if _, err := tx.ExecContext(ctx, "UPDATE categories SET sort_order = $1 WHERE id = $2", i, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// --- subcategories ---

func (r *PGRepository) CreateSubcategory(ctx context.Context, s *model.Subcategory) error {
	query := `
        INSERT INTO subcategories (id, category_id, name, description, image_url, is_active, created_at, updated_at)
        VALUES (:id, :category_id, :name, :description, :image_url, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindSubcategoryByID(ctx context.Context, id string) (*model.Subcategory, error) {
	var subcategory model.Subcategory
	err := r.DB.GetContext(ctx, &subcategory, `SELECT * FROM subcategories WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &subcategory, nil
}

func (r *PGRepository) FindAllSubcategories(ctx context.Context, f *dto.SubcategoryFilters) ([]model.Subcategory, int, error) {
	var subcategories []model.Subcategory
	conditions, args := listClauses(&f.ListFilters)
	if f.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	count, err := r.findAll(ctx, &subcategories, "subcategories", "name ASC", conditions, args, f.Page, f.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return subcategories, count, nil
}

func (r *PGRepository) UpdateSubcategory(ctx context.Context, s *model.Subcategory) error {
	query := `
        UPDATE subcategories
        SET category_id = :category_id,
            name = :name,
            description = :description,
            image_url = :image_url,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) DeleteSubcategory(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM subcategories WHERE id = $1", id)
	return err
}

// --- brands ---

func (r *PGRepository) CreateBrand(ctx context.Context, b *model.Brand) error {
	query := `
        INSERT INTO brands (id, name, description, image_url, is_active, created_at, updated_at)
        VALUES (:id, :name, :description, :image_url, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) FindBrandByID(ctx context.Context, id string) (*model.Brand, error) {
	var brand model.Brand
	err := r.DB.GetContext(ctx, &brand, `SELECT * FROM brands WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *PGRepository) FindAllBrands(ctx context.Context, f *dto.ListFilters) ([]model.Brand, int, error) {
	var brands []model.Brand
	conditions, args := listClauses(f)
	count, err := r.findAll(ctx, &brands, "brands", "name ASC", conditions, args, f.Page, f.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return brands, count, nil
}

func (r *PGRepository) UpdateBrand(ctx context.Context, b *model.Brand) error {
	query := `
        UPDATE brands
        SET name = :name,
            description = :description,
            image_url = :image_url,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) DeleteBrand(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM brands WHERE id = $1", id)
	return err
}

// --- units ---

func (r *PGRepository) CreateUnit(ctx context.Context, u *model.Unit) error {
	query := `
        INSERT INTO units (id, name, symbol, is_active, created_at, updated_at)
        VALUES (:id, :name, :symbol, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, u)
	return err
}

func (r *PGRepository) FindUnitByID(ctx context.Context, id string) (*model.Unit, error) {
	var unit model.Unit
	err := r.DB.GetContext(ctx, &unit, `SELECT * FROM units WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}

func (r *PGRepository) FindAllUnits(ctx context.Context, f *dto.ListFilters) ([]model.Unit, int, error) {
	var units []model.Unit
	conditions, args := listClauses(f)
	count, err := r.findAll(ctx, &units, "units", "name ASC", conditions, args, f.Page, f.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return units, count, nil
}

func (r *PGRepository) UpdateUnit(ctx context.Context, u *model.Unit) error {
	query := `
        UPDATE units
        SET name = :name,
            symbol = :symbol,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, u)
	return err
}

func (r *PGRepository) DeleteUnit(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM units WHERE id = $1", id)
	return err
}

// --- variant attributes ---

func (r *PGRepository) CreateVariantAttribute(ctx context.Context, a *model.VariantAttribute) error {
	query := `
        INSERT INTO variant_attributes (id, name, "values", is_active, created_at, updated_at)
        VALUES (:id, :name, :values, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, a)
	return err
}

func (r *PGRepository) FindVariantAttributeByID(ctx context.Context, id string) (*model.VariantAttribute, error) {
	var attribute model.VariantAttribute
	err := r.DB.GetContext(ctx, &attribute, `SELECT * FROM variant_attributes WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *PGRepository) FindAllVariantAttributes(ctx context.Context, f *dto.ListFilters) ([]model.VariantAttribute, int, error) {
	var attributes []model.VariantAttribute
	conditions, args := listClauses(f)
	count, err := r.findAll(ctx, &attributes, "variant_attributes", "name ASC", conditions, args, f.Page, f.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return attributes, count, nil
}

func (r *PGRepository) UpdateVariantAttribute(ctx context.Context, a *model.VariantAttribute) error {
	query := `
        UPDATE variant_attributes
        SET name = :name,
            "values" = :values,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, a)
	return err
}

func (r *PGRepository) DeleteVariantAttribute(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM variant_attributes WHERE id = $1", id)
	return err
}
