package order

import (
	"context"
	"time"

	"gomart-be/internal/logger"
	"gomart-be/internal/metrics"

	"go.uber.org/zap"
)

// Service defines the business logic for orders. Orders are create-only:
// there is no update path.
type Service interface {
	SubmitOrder(ctx context.Context, sub Submission) (*Receipt, error)
	GetOrder(ctx context.Context, orderID string) (*Receipt, error)
}

type service struct {
	repo     Repository
	pipeline *Pipeline
	stats    *metrics.OrderStats
}

func NewService(repo Repository, stats *metrics.OrderStats) Service {
	return &service{
		repo:     repo,
		pipeline: NewPipeline(),
		stats:    stats,
	}
}

// SubmitOrder is the persistence gate: the order is written only when the
// pipeline reaches its final stage, and a rejection is returned to the
// caller unchanged. Duplicate-id errors are not retried here; the caller
// regenerates the id and resubmits.
func (s *service) SubmitOrder(ctx context.Context, sub Submission) (*Receipt, error) {
	o := FromSubmission(sub)
	if o.OrderID == "" {
		o.OrderID = NewOrderID()
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitOrder"),
		zap.String("order_id", o.OrderID),
		zap.Int("line_count", len(o.Products)),
	)
	log.Info("SubmitOrder started")
	s.stats.Submitted.Inc()

	validated, err := s.pipeline.Run(ctx, o)
	if err != nil {
		s.stats.Rejected.Inc()
		log.Warn("order rejected", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	if validated.OrderDate.IsZero() {
		validated.OrderDate = now
	}
	validated.CreatedAt = now
	validated.UpdatedAt = now

	timer := metrics.StartTimer()
	if err := s.repo.Insert(ctx, &validated); err != nil {
		s.stats.Rejected.Inc()
		log.Error("failed to persist order", zap.Error(err))
		return nil, err
	}
	s.stats.Persisted.Inc()

	log.Info("SubmitOrder success",
		zap.Int("total_items", validated.OrderSummary.TotalItems),
		zap.Float64("total_amount", validated.OrderSummary.TotalAmount),
		zap.Duration("save_duration", timer.Duration()),
	)

	return ToReceipt(&validated), nil
}

func (s *service) GetOrder(ctx context.Context, orderID string) (*Receipt, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetOrder"),
		zap.String("order_id", orderID),
	)

	o, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Warn("failed to get order", zap.Error(err))
		return nil, err
	}

	return ToReceipt(o), nil
}
