// File: internal/user/service.go
package user

import (
	"context"
	"time"

	"blood_donation_backend/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Service defines the user directory operations exposed to handlers and to
// other modules (the donation service consults it for admin bypass checks).
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (primitive.ObjectID, error)
	ListUsers(ctx context.Context) ([]User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUserStatus(ctx context.Context, email, status string) (*UpdateAck, error)
	UpdateUserRole(ctx context.Context, email, role string) (*UpdateAck, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// CreateUser registers a new user. Role, status, and creation time are always
// assigned server-side; whatever the client supplied for them is discarded.
func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (primitive.ObjectID, error) {
	if req.Role != "" || req.Status != "" {
		s.logger.Debug("Ignoring client-supplied role/status on registration",
			zap.String("email", req.Email),
			zap.String("role", req.Role),
			zap.String("status", req.Status),
		)
	}

	newUser := &User{
		Email:      req.Email,
		Name:       req.Name,
		Avatar:     req.Avatar,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
		Role:       common.RoleDonor,
		Status:     common.StatusActive,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, newUser)
	if err != nil {
		s.logger.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return primitive.NilObjectID, err
	}

	s.logger.Info("User registered successfully", zap.String("email", newUser.Email), zap.String("userID", id.Hex()))
	return id, nil
}

// ListUsers returns all users. Pagination is a client-side concern here.
func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	usr, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return usr, nil
}

func (s *service) UpdateUserStatus(ctx context.Context, email, status string) (*UpdateAck, error) {
	res, err := s.repo.UpdateStatusByEmail(ctx, email, status)
	if err != nil {
		s.logger.Error("Failed to update user status", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	s.logger.Info("User status updated",
		zap.String("email", email),
		zap.String("status", status),
		zap.Int64("matched", res.MatchedCount),
	)
	return &UpdateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *service) UpdateUserRole(ctx context.Context, email, role string) (*UpdateAck, error) {
	res, err := s.repo.UpdateRoleByEmail(ctx, email, role)
	if err != nil {
		s.logger.Error("Failed to update user role", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	s.logger.Info("User role updated",
		zap.String("email", email),
		zap.String("role", role),
		zap.Int64("matched", res.MatchedCount),
	)
	return &UpdateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
