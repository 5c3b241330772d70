package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/order/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// payment_receiver_name is resolved from the users table so the register
// screen can show who took the payment without a second lookup.
const selectOrders = `
    SELECT o.*, COALESCE(u.full_name, '') AS payment_receiver_name
    FROM orders o
    LEFT JOIN users u ON u.id = o.payment_receiver
`

func (r *PGRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
        INSERT INTO orders (
            id, register_id, session_id, store_id, customer_id, items,
            subtotal, tax_total, discount_total, total, status,
            payment_method, payment_receiver, timestamp, created_at, updated_at
        )
        VALUES (
            :id, :register_id, :session_id, :store_id, :customer_id, :items,
            :subtotal, :tax_total, :discount_total, :total, :status,
            :payment_method, :payment_receiver, :timestamp, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, order)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.DB.GetContext(ctx, &order, selectOrders+` WHERE o.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
	var items []model.Order
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.RegisterID != "" {
		conditions = append(conditions, "o.register_id = :register_id")
		args["register_id"] = f.RegisterID
	}
	if f.SessionID != "" {
		conditions = append(conditions, "o.session_id = :session_id")
		args["session_id"] = f.SessionID
	}
	if f.StoreID != "" {
		conditions = append(conditions, "o.store_id = :store_id")
		args["store_id"] = f.StoreID
	}
	if f.CustomerID != "" {
		conditions = append(conditions, "o.customer_id = :customer_id")
		args["customer_id"] = f.CustomerID
	}
	if f.Status != "" {
		conditions = append(conditions, "o.status = :status")
		args["status"] = f.Status
	}
	if f.From != "" {
		conditions = append(conditions, "o.timestamp >= :from_date::date")
		args["from_date"] = f.From
	}
	if f.To != "" {
		conditions = append(conditions, "o.timestamp < :to_date::date + interval '1 day'")
		args["to_date"] = f.To
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM orders o" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := selectOrders + whereClause + " ORDER BY o.timestamp DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func (r *PGRepository) Update(ctx context.Context, order *model.Order) error {
	query := `
        UPDATE orders SET
            status = :status,
            payment_method = :payment_method,
            payment_receiver = :payment_receiver,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, order)
	return err
}

func (r *PGRepository) SalesSummary(ctx context.Context, from, to, storeID string) (*dto.SalesSummary, error) {
	conditions := []string{"status = 'completed'"}
	args := map[string]interface{}{}

	if storeID != "" {
		conditions = append(conditions, "store_id = :store_id")
		args["store_id"] = storeID
	}
	if from != "" {
		conditions = append(conditions, "timestamp >= :from_date::date")
		args["from_date"] = from
	}
	if to != "" {
		conditions = append(conditions, "timestamp < :to_date::date + interval '1 day'")
		args["to_date"] = to
	}

	query := `
        SELECT
            count(*) AS order_count,
            COALESCE(SUM(total), 0) AS total_sales,
            COALESCE(SUM(tax_total), 0) AS tax_total,
            COALESCE(SUM(discount_total), 0) AS discount_total
        FROM orders
        WHERE ` + strings.Join(conditions, " AND ")

	var summary dto.SalesSummary
	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	if err := nstmt.GetContext(ctx, &summary, args); err != nil {
		return nil, err
	}
	return &summary, nil
}
