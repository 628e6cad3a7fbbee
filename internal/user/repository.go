// File: internal/user/repository.go
package user

import (
	"context"
	"errors"
	"strings"

	"blood_donation_backend/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the users collection in the document store.
const CollectionName = "users"

// Repository defines the interface for user data operations.
type Repository interface {
	Create(ctx context.Context, user *User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	UpdateStatusByEmail(ctx context.Context, email, status string) (*mongo.UpdateResult, error)
	UpdateRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
	CountAll(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a new Mongo-backed user repository.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(CollectionName)}
}

// Create inserts a new user document. Uniqueness of email is not enforced
// here; duplicates are possible unless the store carries a unique index.
func (r *mongoRepository) Create(ctx context.Context, user *User) (primitive.ObjectID, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("store returned a non-ObjectID insertion id")
	}
	return id, nil
}

// FindByEmail retrieves a user by exact email match.
func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	var userDoc User
	err := r.coll.FindOne(ctx, bson.M{"email": normalizedEmail}).Decode(&userDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound.WithDetails("User not found with this email.")
		}
		return nil, err
	}
	return &userDoc, nil
}

// FindAll returns every user document, unfiltered and unpaginated.
func (r *mongoRepository) FindAll(ctx context.Context) ([]User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoRepository) UpdateStatusByEmail(ctx context.Context, email, status string) (*mongo.UpdateResult, error) {
	return r.setFieldByEmail(ctx, email, "status", status)
}

func (r *mongoRepository) UpdateRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return r.setFieldByEmail(ctx, email, "role", role)
}

func (r *mongoRepository) setFieldByEmail(ctx context.Context, email, field, value string) (*mongo.UpdateResult, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	update := bson.M{"$set": bson.M{field: value}}
	return r.coll.UpdateOne(ctx, bson.M{"email": normalizedEmail}, update)
}

func (r *mongoRepository) CountAll(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *mongoRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"role": role})
}
