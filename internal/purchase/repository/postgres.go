package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/purchase/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func filterClauses(f *dto.Filters) ([]string, map[string]interface{}) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, "(supplier ILIKE :search OR reference ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}
	if f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}
	return conditions, args
}

func (r *PGRepository) findAll(ctx context.Context, dest interface{}, table, orderBy string, f *dto.Filters) (int, error) {
	conditions, args := filterClauses(f)

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	countQuery := "SELECT count(*) FROM " + table + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM " + table + whereClause + " ORDER BY " + orderBy
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

func (r *PGRepository) findByID(ctx context.Context, dest interface{}, table, id string) error {
	return r.DB.GetContext(ctx, dest, "SELECT * FROM "+table+" WHERE id = $1", id)
}

// --- purchases ---

func (r *PGRepository) CreatePurchase(ctx context.Context, p *model.Purchase) error {
	query := `
        INSERT INTO purchases (id, supplier, reference, total, status, purchase_date, created_at, updated_at)
        VALUES (:id, :supplier, :reference, :total, :status, :purchase_date, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindPurchaseByID(ctx context.Context, id string) (*model.Purchase, error) {
	var p model.Purchase
	if err := r.findByID(ctx, &p, "purchases", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAllPurchases(ctx context.Context, f *dto.Filters) ([]model.Purchase, int, error) {
	var items []model.Purchase
	count, err := r.findAll(ctx, &items, "purchases", "purchase_date DESC, created_at DESC", f)
	return items, count, err
}

func (r *PGRepository) UpdatePurchase(ctx context.Context, p *model.Purchase) error {
	query := `
        UPDATE purchases SET
            supplier = :supplier,
            reference = :reference,
            total = :total,
            status = :status,
            purchase_date = :purchase_date,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) DeletePurchase(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM purchases WHERE id = $1", id)
	return err
}

// --- purchase orders ---

func (r *PGRepository) CreateOrder(ctx context.Context, po *model.PurchaseOrder) error {
	query := `
        INSERT INTO purchase_orders (id, supplier, reference, total, status, expected_date, created_at, updated_at)
        VALUES (:id, :supplier, :reference, :total, :status, :expected_date, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, po)
	return err
}

func (r *PGRepository) FindOrderByID(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := r.findByID(ctx, &po, "purchase_orders", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &po, nil
}

func (r *PGRepository) FindAllOrders(ctx context.Context, f *dto.Filters) ([]model.PurchaseOrder, int, error) {
	var items []model.PurchaseOrder
	count, err := r.findAll(ctx, &items, "purchase_orders", "created_at DESC", f)
	return items, count, err
}

func (r *PGRepository) UpdateOrder(ctx context.Context, po *model.PurchaseOrder) error {
	query := `
        UPDATE purchase_orders SET
            supplier = :supplier,
            reference = :reference,
            total = :total,
            status = :status,
            expected_date = :expected_date,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, po)
	return err
}

func (r *PGRepository) DeleteOrder(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM purchase_orders WHERE id = $1", id)
	return err
}

// --- purchase returns ---

func (r *PGRepository) CreateReturn(ctx context.Context, pr *model.PurchaseReturn) error {
	query := `
        INSERT INTO purchase_returns (id, supplier, reference, purchase_id, total, status, reason, created_at, updated_at)
        VALUES (:id, :supplier, :reference, :purchase_id, :total, :status, :reason, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, pr)
	return err
}

func (r *PGRepository) FindReturnByID(ctx context.Context, id string) (*model.PurchaseReturn, error) {
	var pr model.PurchaseReturn
	if err := r.findByID(ctx, &pr, "purchase_returns", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &pr, nil
}

func (r *PGRepository) FindAllReturns(ctx context.Context, f *dto.Filters) ([]model.PurchaseReturn, int, error) {
	var items []model.PurchaseReturn
	count, err := r.findAll(ctx, &items, "purchase_returns", "created_at DESC", f)
	return items, count, err
}

func (r *PGRepository) UpdateReturn(ctx context.Context, pr *model.PurchaseReturn) error {
	query := `
        UPDATE purchase_returns SET
            supplier = :supplier,
            reference = :reference,
            purchase_id = :purchase_id,
            total = :total,
            status = :status,
            reason = :reason,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, pr)
	return err
}

func (r *PGRepository) DeleteReturn(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM purchase_returns WHERE id = $1", id)
	return err
}

// --- hub stats ---

func (r *PGRepository) HubStats(ctx context.Context) (*dto.HubStats, error) {
	query := `
        SELECT
            (SELECT count(*) FROM purchases) AS purchase_count,
            (SELECT count(*) FROM purchase_orders WHERE status = 'pending') AS pending_orders,
            (SELECT count(*) FROM purchase_returns WHERE status = 'pending') AS pending_returns,
            (SELECT COALESCE(SUM(total), 0) FROM purchases) AS total_spend,
            (SELECT COALESCE(SUM(total), 0) FROM purchases
                WHERE purchase_date >= date_trunc('month', now())) AS monthly_spend,
            (SELECT count(DISTINCT supplier) FROM purchases
                WHERE purchase_date >= now() - interval '30 days') AS recent_supplier_count
    `
	var stats dto.HubStats
	if err := r.DB.GetContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}
