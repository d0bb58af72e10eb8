package category

import (
	"context"
	"strings"

	"gomart-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for catalog categories.
type Service interface {
	GetCategories(ctx context.Context, filter *string, limit, page *int32) ([]*Category, int64, error)
	GetCategory(ctx context.Context, id int64) (*Category, error)
	AddCategory(ctx context.Context, input CreateCategoryInput) (*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCategories(ctx context.Context, filter *string, limit, page *int32) ([]*Category, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCategories"),
	)
	log.Info("GetCategories started")

	categories, total, err := s.repo.GetCategories(ctx, filter, limit, page)
	if err != nil {
		log.Error("failed to get categories", zap.Error(err))
		return nil, 0, err
	}

	log.Info("GetCategories success", zap.Int("count", len(categories)))
	return categories, total, nil
}

func (s *service) GetCategory(ctx context.Context, id int64) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCategory"),
		zap.Int64("category_id", id),
	)

	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		log.Warn("failed to get category", zap.Error(err))
		return nil, err
	}

	return c, nil
}

func (s *service) AddCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddCategory"),
		zap.String("name", input.Name),
	)
	log.Info("AddCategory started")

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrEmptyName
	}

	c, err := s.repo.AddCategory(ctx, input)
	if err != nil {
		log.Error("failed to add category", zap.Error(err))
		return nil, err
	}

	log.Info("AddCategory success", zap.Int64("category_id", c.ID))
	return c, nil
}
