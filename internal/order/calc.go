package order

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// LineTotal computes quantity × unitPrice rounded half-up to two decimal
// places. Inputs are bounds-checked by the field validators; the function
// itself is pure and deterministic.
func LineTotal(quantity int, unitPrice float64) float64 {
	total := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
	return total.Round(2).InexactFloat64()
}

// ComputeTotals aggregates line items into an order summary. A line whose
// total is still zero gets it computed on demand before summing.
func ComputeTotals(lines []OrderLine) (OrderSummary, error) {
	if len(lines) == 0 {
		return OrderSummary{}, ErrEmptyOrder
	}

	totalItems := 0
	totalAmount := decimal.Zero

	for i := range lines {
		if lines[i].TotalPrice == 0 {
			lines[i].TotalPrice = LineTotal(lines[i].Quantity, lines[i].UnitPrice)
		}
		totalItems += lines[i].Quantity
		totalAmount = totalAmount.Add(decimal.NewFromFloat(lines[i].TotalPrice))
	}

	return OrderSummary{
		TotalItems:  totalItems,
		TotalAmount: totalAmount.Round(2).InexactFloat64(),
	}, nil
}

// ValidateSummary compares a stored summary against a fresh recomputation.
// TotalItems must match exactly; TotalAmount within 0.01 to absorb floating
// rounding. Returns human-readable mismatch descriptions, empty when valid.
func ValidateSummary(stored OrderSummary, lines []OrderLine) []string {
	expected, err := ComputeTotals(lines)
	if err != nil {
		return []string{"Products array is required for validation"}
	}

	var mismatches []string

	if stored.TotalItems != expected.TotalItems {
		mismatches = append(mismatches, fmt.Sprintf(
			"Total items mismatch. Expected: %d, Got: %d",
			expected.TotalItems, stored.TotalItems,
		))
	}

	if math.Abs(stored.TotalAmount-expected.TotalAmount) > 0.01 {
		mismatches = append(mismatches, fmt.Sprintf(
			"Total amount mismatch. Expected: %.2f, Got: %.2f",
			expected.TotalAmount, stored.TotalAmount,
		))
	}

	return mismatches
}
