// File: internal/donation/repository.go
package donation

import (
	"context"
	"errors"

	"blood_donation_backend/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the donation requests collection in the document store.
const CollectionName = "donationRequests"

// Repository defines the interface for donation request data operations.
type Repository interface {
	Create(ctx context.Context, request *DonationRequest) (primitive.ObjectID, error)
	FindByRequester(ctx context.Context, email, status string, size, page int64) ([]DonationRequest, error)
	CountByRequester(ctx context.Context, email, status string) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*DonationRequest, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	Search(ctx context.Context, bloodGroup, district, upazila string) ([]DonationRequest, error)
	FindRecent(ctx context.Context, limit int64) ([]DonationRequest, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a new Mongo-backed donation request repository.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(CollectionName)}
}

// requesterFilter builds the ownership filter, adding the status clause only
// when a status is present and is not the `all` sentinel.
func requesterFilter(email, status string) bson.M {
	filter := bson.M{"requesterEmail": email}
	if status != "" && status != StatusAll {
		filter["status"] = status
	}
	return filter
}

func (r *mongoRepository) Create(ctx context.Context, request *DonationRequest) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, request)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("store returned a non-ObjectID insertion id")
	}
	return id, nil
}

func (r *mongoRepository) FindByRequester(ctx context.Context, email, status string, size, page int64) ([]DonationRequest, error) {
	findOptions := options.Find().
		SetLimit(size).
		SetSkip(size * page)

	cur, err := r.coll.Find(ctx, requesterFilter(email, status), findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := make([]DonationRequest, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// CountByRequester counts over the same filter as FindByRequester, ignoring
// pagination.
func (r *mongoRepository) CountByRequester(ctx context.Context, email, status string) (int64, error) {
	return r.coll.CountDocuments(ctx, requesterFilter(email, status))
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*DonationRequest, error) {
	var request DonationRequest
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound.WithDetails("Donation request not found with this ID.")
		}
		return nil, err
	}
	return &request, nil
}

func (r *mongoRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

func (r *mongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, bson.M{"_id": id})
}

// Search surfaces requests across all requesters and statuses; that is the
// feature, not a leak.
func (r *mongoRepository) Search(ctx context.Context, bloodGroup, district, upazila string) ([]DonationRequest, error) {
	filter := bson.M{"bloodGroup": bloodGroup}
	if district != "" {
		filter["recipientDistrict"] = district
	}
	if upazila != "" {
		filter["recipientUpazila"] = upazila
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := make([]DonationRequest, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *mongoRepository) FindRecent(ctx context.Context, limit int64) ([]DonationRequest, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := make([]DonationRequest, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *mongoRepository) CountAll(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *mongoRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}
