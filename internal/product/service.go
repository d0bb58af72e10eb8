package product

import (
	"context"
	"strings"

	"gomart-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for catalog products.
type Service interface {
	GetProducts(ctx context.Context, opts ListOptions) ([]*Product, int64, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	AddProduct(ctx context.Context, input CreateProductInput) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProducts(ctx context.Context, opts ListOptions) ([]*Product, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProducts"),
	)
	log.Info("GetProducts started")

	products, total, err := s.repo.GetProducts(ctx, opts)
	if err != nil {
		log.Error("failed to get products", zap.Error(err))
		return nil, 0, err
	}

	log.Info("GetProducts success", zap.Int("count", len(products)))
	return products, total, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProduct"),
		zap.Int64("product_id", id),
	)

	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		log.Warn("failed to get product", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *service) AddProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddProduct"),
		zap.String("name", input.Name),
	)
	log.Info("AddProduct started")

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrEmptyName
	}
	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	p, err := s.repo.AddProduct(ctx, input)
	if err != nil {
		log.Error("failed to add product", zap.Error(err))
		return nil, err
	}

	log.Info("AddProduct success", zap.Int64("product_id", p.ID))
	return p, nil
}
