package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gomart-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetProducts(ctx context.Context, opts ListOptions) ([]*Product, int64, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	AddProduct(ctx context.Context, input CreateProductInput) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProducts(ctx context.Context, opts ListOptions) ([]*Product, int64, error) {
	// ---------- DEFAULTS ----------
	finalLimit := int32(20)
	finalPage := int32(1)

	if opts.Limit != nil && *opts.Limit > 0 {
		finalLimit = *opts.Limit
	}
	if opts.Page != nil && *opts.Page > 0 {
		finalPage = *opts.Page
	}

	finalOffset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)
	log.Debug("GetProducts query started")

	where := []string{}
	args := []interface{}{}

	// ---------- FILTERS ----------
	if opts.Filter != nil && *opts.Filter != "" {
		where = append(where, fmt.Sprintf("p.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*opts.Filter+"%")
	}
	if opts.CategoryID != nil {
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, *opts.CategoryID)
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	// ---------- COUNT ----------
	var total int64
	countQuery := "SELECT COUNT(*) FROM products p" + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}

	// ---------- DATA ----------
	query := `SELECT p.id, p.name, p.description, p.price, p.unit, p.category_id, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id` + whereClause
	query += " ORDER BY p.name ASC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, finalLimit, finalOffset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed GetProducts", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]*Product, 0, finalLimit)

	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Unit, &p.CategoryID, &p.CategoryName); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, 0, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, 0, err
	}

	return products, total, nil
}

func (r *repository) GetProduct(ctx context.Context, id int64) (*Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.unit, p.category_id, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Unit, &p.CategoryID, &p.CategoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product failed: %w", err)
	}

	return &p, nil
}

func (r *repository) AddProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("product_name", input.Name),
		zap.Int64("category_id", input.CategoryID),
	)

	query := `
		INSERT INTO products (name, description, price, unit, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, price, unit, category_id
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query,
		input.Name, input.Description, input.Price, input.Unit, input.CategoryID,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Unit, &p.CategoryID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			log.Warn("unknown category for product")
			return nil, ErrCategoryNotFound
		}
		log.Error("AddProduct DB query failed", zap.Error(err))
		return nil, fmt.Errorf("add product failed: %w", err)
	}

	log.Info("AddProduct success", zap.Int64("product_id", p.ID))
	return &p, nil
}
