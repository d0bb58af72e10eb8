package order

import (
	"context"
	"errors"
	"fmt"

	"gomart-be/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "orders"

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, o *Order) error
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(database *mongo.Database) Repository {
	return &repository{coll: database.Collection(collectionName)}
}

// EnsureIndexes creates the orders indexes; the unique index on orderId is
// what enforces the duplicate-id contract.
func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "orderId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_orderId_unique"),
		},
		{
			Keys:    bson.D{{Key: "customer.email", Value: 1}},
			Options: options.Index().SetName("idx_customer_email"),
		},
		{
			Keys:    bson.D{{Key: "orderDate", Value: -1}},
			Options: options.Index().SetName("idx_orderDate_desc"),
		},
		{
			Keys:    bson.D{{Key: "customer.email", Value: 1}, {Key: "orderDate", Value: -1}},
			Options: options.Index().SetName("idx_customer_orderDate"),
		},
	})
	if err != nil {
		return fmt.Errorf("ensure order indexes: %w", err)
	}
	return nil
}

// Insert writes the order as one atomic document.
func (r *repository) Insert(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("order_id", o.OrderID),
	)

	res, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		translated := translateInsertError(err)
		if errors.Is(translated, ErrDuplicateOrderID) {
			log.Warn("duplicate order id", zap.Error(err))
		} else {
			log.Error("insert order failed", zap.Error(err))
		}
		return translated
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}

	log.Info("order inserted")
	return nil
}

func (r *repository) GetByOrderID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := r.coll.FindOne(ctx, bson.D{{Key: "orderId", Value: orderID}}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, &PersistenceError{Err: err}
	}
	return &o, nil
}

// translateInsertError maps driver errors into the package taxonomy so no
// storage error type crosses the repository boundary.
func translateInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateOrderID
	}
	return &PersistenceError{Err: err}
}
