// File: internal/payment/repository.go
package payment

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the payments collection in the document store.
const CollectionName = "payments"

// Repository defines the interface for payment data operations.
type Repository interface {
	Create(ctx context.Context, payment *Payment) (primitive.ObjectID, error)
	SumAmounts(ctx context.Context) (float64, error)
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a new Mongo-backed payment repository.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(CollectionName)}
}

func (r *mongoRepository) Create(ctx context.Context, payment *Payment) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("store returned a non-ObjectID insertion id")
	}
	return id, nil
}

// SumAmounts aggregates the total funding across all payments, returning 0
// when the collection is empty.
func (r *mongoRepository) SumAmounts(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
