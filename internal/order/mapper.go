package order

// FromSubmission builds the working order from an inbound payload. A supplied
// summary is carried over for the cross-check stage; an omitted one stays
// zero so the pipeline computes it.
func FromSubmission(sub Submission) Order {
	o := Order{
		OrderID:  sub.OrderID,
		Customer: sub.Customer,
		Products: sub.Products,
		Notes:    sub.Notes,
	}
	if sub.OrderSummary != nil {
		o.OrderSummary = *sub.OrderSummary
	}
	return o
}

func ToReceipt(o *Order) *Receipt {
	if o == nil {
		return nil
	}

	return &Receipt{
		OrderID:       o.OrderID,
		CustomerName:  o.Customer.Name,
		CustomerEmail: o.Customer.Email,
		TotalItems:    o.OrderSummary.TotalItems,
		TotalAmount:   o.OrderSummary.TotalAmount,
		OrderDate:     o.OrderDate,
	}
}
