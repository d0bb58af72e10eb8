package order

import (
	"context"
	"strings"

	"gomart-be/internal/logger"

	"go.uber.org/zap"
)

// Stage identifies one step of the order validation pipeline.
type Stage string

const (
	StageReceived            Stage = "received"
	StageLinesCalculated     Stage = "lines_calculated"
	StageSummaryComputed     Stage = "summary_computed"
	StageCustomerValidated   Stage = "customer_validated"
	StageLinesValidated      Stage = "lines_validated"
	StageSummaryCrossChecked Stage = "summary_cross_checked"
	StagePersistable         Stage = "persistable"
	StageRejected            Stage = "rejected"
)

// Pipeline normalizes and validates a submitted order in a fixed stage
// sequence. Later stages assume earlier stages' invariants hold (the summary
// cross-check assumes every line already carries a correct total), so the
// order of stages is not negotiable.
//
// Each stage takes the order value and returns either the transformed value
// or a tagged error; the caller's copy is never mutated.
type Pipeline struct{}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Run takes a submitted order through the full sequence and returns the
// normalized, persistable order or the first rejection. Re-invocation with
// the same input is deterministic.
func (p *Pipeline) Run(ctx context.Context, o Order) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "pipeline"),
		zap.String("order_id", o.OrderID),
	)

	// Received → LinesCalculated
	if len(o.Products) == 0 {
		p.reject(log, StageReceived, ErrEmptyOrder)
		return o, ErrEmptyOrder
	}

	o = normalize(o)

	lines := make([]OrderLine, len(o.Products))
	copy(lines, o.Products)
	for i := range lines {
		if lines[i].TotalPrice == 0 {
			lines[i].TotalPrice = LineTotal(lines[i].Quantity, lines[i].UnitPrice)
		}
	}
	o.Products = lines
	p.advance(log, StageLinesCalculated, zap.Int("line_count", len(lines)))

	// LinesCalculated → SummaryComputed
	computed, err := ComputeTotals(o.Products)
	if err != nil {
		p.reject(log, StageLinesCalculated, err)
		return o, err
	}
	if (o.OrderSummary == OrderSummary{}) {
		o.OrderSummary = computed
	}
	p.advance(log, StageSummaryComputed,
		zap.Int("total_items", o.OrderSummary.TotalItems),
		zap.Float64("total_amount", o.OrderSummary.TotalAmount),
	)

	// SummaryComputed → CustomerValidated
	if errs := ValidateCustomer(o.Customer); len(errs) > 0 {
		verr := &CustomerValidationError{Errors: errs}
		p.reject(log, StageSummaryComputed, verr)
		return o, verr
	}
	p.advance(log, StageCustomerValidated)

	// CustomerValidated → LinesValidated: fail fast at the first invalid
	// line, remaining lines are not evaluated.
	for i := range o.Products {
		if errs := ValidateLine(o.Products[i]); len(errs) > 0 {
			verr := &ProductValidationError{Position: i + 1, Errors: errs}
			p.reject(log, StageCustomerValidated, verr)
			return o, verr
		}
	}
	p.advance(log, StageLinesValidated)

	// LinesValidated → SummaryCrossChecked
	if mismatches := ValidateSummary(o.OrderSummary, o.Products); len(mismatches) > 0 {
		verr := &SummaryValidationError{Mismatches: mismatches}
		p.reject(log, StageLinesValidated, verr)
		return o, verr
	}
	p.advance(log, StageSummaryCrossChecked)

	p.advance(log, StagePersistable)
	return o, nil
}

func (p *Pipeline) advance(log *zap.Logger, to Stage, fields ...zap.Field) {
	log.Debug("pipeline stage complete",
		append([]zap.Field{zap.String("stage", string(to)), zap.String("outcome", "ok")}, fields...)...,
	)
}

func (p *Pipeline) reject(log *zap.Logger, at Stage, err error) {
	log.Warn("pipeline rejected order",
		zap.String("stage", string(at)),
		zap.String("outcome", "rejected"),
		zap.Error(err),
	)
}

// normalize trims embedded string fields and lowercases the customer email
// before any rule runs.
func normalize(o Order) Order {
	o.Customer.Name = strings.TrimSpace(o.Customer.Name)
	o.Customer.Email = strings.ToLower(strings.TrimSpace(o.Customer.Email))
	o.Customer.Address = strings.TrimSpace(o.Customer.Address)
	o.Notes = strings.TrimSpace(o.Notes)

	lines := make([]OrderLine, len(o.Products))
	copy(lines, o.Products)
	for i := range lines {
		lines[i].ProductID = strings.TrimSpace(lines[i].ProductID)
		lines[i].ProductName = strings.TrimSpace(lines[i].ProductName)
		lines[i].CategoryID = strings.TrimSpace(lines[i].CategoryID)
		lines[i].CategoryName = strings.TrimSpace(lines[i].CategoryName)
	}
	o.Products = lines

	return o
}
