package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-backoffice-service/internal/expense/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// --- expense categories ---

func (r *PGRepository) CreateCategory(ctx context.Context, c *model.ExpenseCategory) error {
	query := `
        INSERT INTO expense_categories (id, name, description, created_at, updated_at)
        VALUES (:id, :name, :description, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindCategoryByID(ctx context.Context, id string) (*model.ExpenseCategory, error) {
	var category model.ExpenseCategory
	err := r.DB.GetContext(ctx, &category, `SELECT * FROM expense_categories WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindAllCategories(ctx context.Context, f *dto.ListFilters) ([]model.ExpenseCategory, int, error) {
	var categories []model.ExpenseCategory

	conditions := []string{}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, "name ILIKE :search")
		args["search"] = "%" + f.Search + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM expense_categories"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM expense_categories" + whereClause + " ORDER BY name ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &categories, args); err != nil {
		return nil, 0, err
	}
	return categories, count, nil
}

func (r *PGRepository) UpdateCategory(ctx context.Context, c *model.ExpenseCategory) error {
	query := `
        UPDATE expense_categories
        SET name = :name,
            description = :description,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) DeleteCategory(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM expense_categories WHERE id = $1", id)
	return err
}

// --- expenses ---

func (r *PGRepository) Create(ctx context.Context, e *model.Expense) error {
	query := `
        INSERT INTO expenses (id, title, amount, expense_date, expense_category_id, payment_method, status, description, created_at, updated_at)
        VALUES (:id, :title, :amount, :expense_date, :expense_category_id, :payment_method, :status, :description, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, e)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Expense, error) {
	var expense model.Expense
	err := r.DB.GetContext(ctx, &expense, `SELECT * FROM expenses WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ExpenseFilters) ([]model.Expense, int, error) {
	var expenses []model.Expense

	conditions := []string{}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, "title ILIKE :search")
		args["search"] = "%" + f.Search + "%"
	}
	if f.CategoryID != "" {
		conditions = append(conditions, "expense_category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}
	if f.PaymentMethod != "" {
		conditions = append(conditions, "payment_method = :payment_method")
		args["payment_method"] = f.PaymentMethod
	}
	if f.From != "" {
		conditions = append(conditions, "expense_date >= :from")
		args["from"] = f.From
	}
	if f.To != "" {
		conditions = append(conditions, "expense_date <= :to")
		args["to"] = f.To
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM expenses"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM expenses" + whereClause + " ORDER BY expense_date DESC, created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &expenses, args); err != nil {
		return nil, 0, err
	}
	return expenses, count, nil
}

func (r *PGRepository) Update(ctx context.Context, e *model.Expense) error {
	query := `
        UPDATE expenses
        SET title = :title,
            amount = :amount,
            expense_date = :expense_date,
            expense_category_id = :expense_category_id,
            payment_method = :payment_method,
            status = :status,
            description = :description,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, e)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM expenses WHERE id = $1", id)
	return err
}

func (r *PGRepository) SumByDateRange(ctx context.Context, from, to string) (float64, error) {
	// Empty bounds mean an open-ended range.
	query := `SELECT SUM(amount) FROM expenses WHERE ($1 = '' OR expense_date >= $1) AND ($2 = '' OR expense_date <= $2)`

	var total sql.NullFloat64
	if err := r.DB.GetContext(ctx, &total, query, from, to); err != nil {
		return 0, err
	}
	return total.Float64, nil
}
