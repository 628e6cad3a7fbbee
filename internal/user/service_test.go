package user

import (
	"context"
	"errors"
	"testing"

	"blood_donation_backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// mockRepository is a hand-written mock of the user Repository interface.
type mockRepository struct {
	createFunc              func(ctx context.Context, user *User) (primitive.ObjectID, error)
	findByEmailFunc         func(ctx context.Context, email string) (*User, error)
	findAllFunc             func(ctx context.Context) ([]User, error)
	updateStatusByEmailFunc func(ctx context.Context, email, status string) (*mongo.UpdateResult, error)
	updateRoleByEmailFunc   func(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
}

func (m *mockRepository) Create(ctx context.Context, user *User) (primitive.ObjectID, error) {
	return m.createFunc(ctx, user)
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return m.findByEmailFunc(ctx, email)
}

func (m *mockRepository) FindAll(ctx context.Context) ([]User, error) {
	return m.findAllFunc(ctx)
}

func (m *mockRepository) UpdateStatusByEmail(ctx context.Context, email, status string) (*mongo.UpdateResult, error) {
	return m.updateStatusByEmailFunc(ctx, email, status)
}

func (m *mockRepository) UpdateRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return m.updateRoleByEmailFunc(ctx, email, role)
}

func (m *mockRepository) CountAll(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return 0, nil
}

func TestCreateUser_ForcesServerAssignedFields(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	wantID := primitive.NewObjectID()

	var captured *User
	repo := &mockRepository{
		createFunc: func(ctx context.Context, user *User) (primitive.ObjectID, error) {
			captured = user
			return wantID, nil
		},
	}
	svc := NewService(repo, logger)

	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{
			name: "plain registration",
			req: CreateUserRequest{
				Email:      "donor@example.com",
				Name:       "Donor One",
				BloodGroup: "A+",
				District:   "Dhaka",
				Upazila:    "Savar",
			},
		},
		{
			name: "client-supplied role and status are discarded",
			req: CreateUserRequest{
				Email:  "sneaky@example.com",
				Role:   common.RoleAdmin,
				Status: common.StatusBlocked,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured = nil
			id, err := svc.CreateUser(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, wantID, id)

			require.NotNil(t, captured)
			assert.Equal(t, tt.req.Email, captured.Email)
			assert.Equal(t, common.RoleDonor, captured.Role)
			assert.Equal(t, common.StatusActive, captured.Status)
			assert.False(t, captured.CreatedAt.IsZero())
		})
	}
}

func TestCreateUser_RepositoryError(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	wantErr := errors.New("insert failed")
	repo := &mockRepository{
		createFunc: func(ctx context.Context, user *User) (primitive.ObjectID, error) {
			return primitive.NilObjectID, wantErr
		},
	}
	svc := NewService(repo, logger)

	id, err := svc.CreateUser(context.Background(), CreateUserRequest{Email: "x@example.com"})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, primitive.NilObjectID, id)
}

func TestGetUserByEmail_NotFoundPassesThrough(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	repo := &mockRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return nil, common.ErrNotFound.WithDetails("User not found with this email.")
		},
	}
	svc := NewService(repo, logger)

	usr, err := svc.GetUserByEmail(context.Background(), "missing@example.com")
	assert.Nil(t, usr)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateUserStatus_MapsAck(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	var gotEmail, gotStatus string
	repo := &mockRepository{
		updateStatusByEmailFunc: func(ctx context.Context, email, status string) (*mongo.UpdateResult, error) {
			gotEmail, gotStatus = email, status
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	svc := NewService(repo, logger)

	ack, err := svc.UpdateUserStatus(context.Background(), "donor@example.com", common.StatusBlocked)
	require.NoError(t, err)
	assert.Equal(t, "donor@example.com", gotEmail)
	assert.Equal(t, common.StatusBlocked, gotStatus)
	assert.Equal(t, int64(1), ack.MatchedCount)
	assert.Equal(t, int64(1), ack.ModifiedCount)
}

func TestUpdateUserRole_MissingUserYieldsZeroMatched(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	repo := &mockRepository{
		updateRoleByEmailFunc: func(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
			return &mongo.UpdateResult{MatchedCount: 0, ModifiedCount: 0}, nil
		},
	}
	svc := NewService(repo, logger)

	ack, err := svc.UpdateUserRole(context.Background(), "missing@example.com", common.RoleVolunteer)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ack.MatchedCount)
	assert.Equal(t, int64(0), ack.ModifiedCount)
}

func TestListUsers_ReturnsAll(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	repo := &mockRepository{
		findAllFunc: func(ctx context.Context) ([]User, error) {
			return []User{
				{Email: "a@example.com", Role: common.RoleDonor},
				{Email: "b@example.com", Role: common.RoleAdmin},
			}, nil
		},
	}
	svc := NewService(repo, logger)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
