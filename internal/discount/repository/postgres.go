package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-backoffice-service/internal/discount/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// --- plans ---

func (r *PGRepository) CreatePlan(ctx context.Context, p *model.DiscountPlan) error {
	query := `
        INSERT INTO discount_plans (id, name, description, is_active, created_at, updated_at)
        VALUES (:id, :name, :description, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindPlanByID(ctx context.Context, id string) (*model.DiscountPlan, error) {
	var plan model.DiscountPlan
	err := r.DB.GetContext(ctx, &plan, `SELECT * FROM discount_plans WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PGRepository) FindAllPlans(ctx context.Context, f *dto.ListFilters) ([]model.DiscountPlan, int, error) {
	var plans []model.DiscountPlan

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

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM discount_plans"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM discount_plans" + whereClause + " ORDER BY name ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &plans, args); err != nil {
		return nil, 0, err
	}
	return plans, count, nil
}

func (r *PGRepository) UpdatePlan(ctx context.Context, p *model.DiscountPlan) error {
	query := `
        UPDATE discount_plans
        SET name = :name,
            description = :description,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) DeletePlan(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM discount_plans WHERE id = $1", id)
	return err
}

// --- discounts ---

func (r *PGRepository) CreateDiscount(ctx context.Context, d *model.Discount) error {
	query := `
        INSERT INTO discounts (id, name, value, plan_id, validity, discount_code, discount_type, store_id, is_active, created_at, updated_at)
        VALUES (:id, :name, :value, :plan_id, :validity, :discount_code, :discount_type, :store_id, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, d)
	return err
}

func (r *PGRepository) FindDiscountByID(ctx context.Context, id string) (*model.Discount, error) {
	var discount model.Discount
	err := r.DB.GetContext(ctx, &discount, `SELECT * FROM discounts WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

func (r *PGRepository) FindDiscountByCode(ctx context.Context, code string) (*model.Discount, error) {
	var discount model.Discount
	err := r.DB.GetContext(ctx, &discount, `SELECT * FROM discounts WHERE discount_code = $1 LIMIT 1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

func (r *PGRepository) FindAllDiscounts(ctx context.Context, f *dto.DiscountFilters) ([]model.Discount, int, error) {
	var discounts []model.Discount

	conditions := []string{}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, "(name ILIKE :search OR discount_code ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.PlanID != "" {
		conditions = append(conditions, "plan_id = :plan_id")
		args["plan_id"] = f.PlanID
	}
	// A store filter also matches the all-stores rows (store_id IS NULL).
	if f.StoreID != "" {
		conditions = append(conditions, "(store_id = :store_id OR store_id IS NULL)")
		args["store_id"] = f.StoreID
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM discounts"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM discounts" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &discounts, args); err != nil {
		return nil, 0, err
	}
	return discounts, count, nil
}

func (r *PGRepository) UpdateDiscount(ctx context.Context, d *model.Discount) error {
	query := `
        UPDATE discounts
        SET name = :name,
            value = :value,
            plan_id = :plan_id,
            validity = :validity,
            discount_code = :discount_code,
            discount_type = :discount_type,
            store_id = :store_id,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, d)
	return err
}

func (r *PGRepository) DeleteDiscount(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM discounts WHERE id = $1", id)
	return err
}
