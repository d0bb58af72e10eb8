package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is embedded in an Order and has no independent lifecycle.
type Customer struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address" json:"address"`
}

// OrderLine is one purchased product inside an order. TotalPrice is derived
// from Quantity and UnitPrice and filled in by the pipeline when absent.
type OrderLine struct {
	ProductID    string  `bson:"productId" json:"productId"`
	ProductName  string  `bson:"productName" json:"productName"`
	CategoryID   string  `bson:"categoryId" json:"categoryId"`
	CategoryName string  `bson:"categoryName" json:"categoryName"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	UnitPrice    float64 `bson:"unitPrice" json:"unitPrice"`
	TotalPrice   float64 `bson:"totalPrice" json:"totalPrice,omitempty"`
}

// OrderSummary mirrors the aggregation of the products array and must match
// it at persistence time.
type OrderSummary struct {
	TotalItems  int     `bson:"totalItems" json:"totalItems"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
}

type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OrderID        string             `bson:"orderId" json:"orderId"`
	Customer       Customer           `bson:"customer" json:"customer"`
	Products       []OrderLine        `bson:"products" json:"products"`
	OrderSummary   OrderSummary       `bson:"orderSummary" json:"orderSummary"`
	OrderDate      time.Time          `bson:"orderDate" json:"orderDate"`
	TrackingNumber string             `bson:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	DeliveryDate   *time.Time         `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Submission is the inbound create-order payload. OrderSummary is optional:
// when omitted it is computed, when present it is cross-checked.
type Submission struct {
	OrderID      string        `json:"orderId,omitempty"`
	Customer     Customer      `json:"customer"`
	Products     []OrderLine   `json:"products"`
	OrderSummary *OrderSummary `json:"orderSummary,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}

// Receipt is the summary projection returned to the caller after a
// successful submission.
type Receipt struct {
	OrderID       string    `json:"orderId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	TotalItems    int       `json:"totalItems"`
	TotalAmount   float64   `json:"totalAmount"`
	OrderDate     time.Time `json:"orderDate"`
}

// NewOrderID generates a unique order identifier: ORD-<unix-ms>-<suffix>.
func NewOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
