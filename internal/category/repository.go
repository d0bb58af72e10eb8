package category

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
	GetCategories(ctx context.Context, filter *string, limit, page *int32) ([]*Category, int64, error)
	GetCategory(ctx context.Context, id int64) (*Category, error)
	AddCategory(ctx context.Context, input CreateCategoryInput) (*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCategories(
	ctx context.Context,
	filter *string,
	limit *int32,
	page *int32,
) ([]*Category, int64, error) {

	// ---------- DEFAULTS ----------
	finalLimit := int32(20)
	finalPage := int32(1)

	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if page != nil && *page > 0 {
		finalPage = *page
	}

	finalOffset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)
	log.Debug("GetCategories query started")

	where := []string{}
	args := []interface{}{}

	// ---------- FILTER ----------
	if filter != nil && *filter != "" {
		where = append(where, fmt.Sprintf("c.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*filter+"%")
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	// ---------- COUNT ----------
	var total int64
	countQuery := "SELECT COUNT(*) FROM categories c" + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}

	// ---------- DATA ----------
	query := "SELECT c.id, c.name, c.description FROM categories c" + whereClause
	query += " ORDER BY c.name ASC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, finalLimit, finalOffset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed GetCategories", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	categories := make([]*Category, 0, finalLimit)

	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, 0, err
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *repository) GetCategory(ctx context.Context, id int64) (*Category, error) {
	query := `
		SELECT c.id, c.name, c.description
		FROM categories c
		WHERE c.id = $1
	`

	var c Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category failed: %w", err)
	}

	return &c, nil
}

func (r *repository) AddCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("category_name", input.Name),
	)

	if input.Name == "" {
		log.Warn("AddCategory validation failed: empty name")
		return nil, ErrEmptyName
	}

	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`

	var c Category
	err := r.db.QueryRowContext(ctx, query, input.Name, input.Description).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			log.Warn("duplicate category name")
			return nil, ErrDuplicateName
		}
		log.Error("AddCategory DB query failed", zap.Error(err))
		return nil, fmt.Errorf("add category failed: %w", err)
	}

	log.Info("AddCategory success", zap.Int64("category_id", c.ID))
	return &c, nil
}
