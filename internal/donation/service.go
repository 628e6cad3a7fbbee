// File: internal/donation/service.go
package donation

import (
	"context"
	"errors"
	"time"

	"blood_donation_backend/internal/common"
	"blood_donation_backend/internal/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// RoleResolver resolves the role of a principal for admin bypass checks.
// Satisfied by user.Service.
type RoleResolver interface {
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
}

// Service defines the donation request lifecycle operations.
type Service interface {
	CreateRequest(ctx context.Context, principalEmail string, req CreateDonationRequest) (primitive.ObjectID, error)
	ListMyRequests(ctx context.Context, principalEmail string, q ListQuery) (*ListResponse, error)
	GetRequestByID(ctx context.Context, id string) (*DonationRequest, error)
	UpdateRequest(ctx context.Context, principalEmail, id string, req UpdateDonationRequest) (*UpdateAck, error)
	DeleteRequest(ctx context.Context, principalEmail, id string) (*DeleteAck, error)
	Search(ctx context.Context, q SearchQuery) ([]DonationRequest, error)
}

type service struct {
	repo   Repository
	users  RoleResolver
	logger *zap.Logger
}

// NewService creates a new donation request service.
func NewService(repo Repository, users RoleResolver, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		users:  users,
		logger: logger,
	}
}

// CreateRequest inserts a new donation request owned by the verified
// principal. The owner email, status, and creation time are always assigned
// server-side regardless of what the body carried.
func (s *service) CreateRequest(ctx context.Context, principalEmail string, req CreateDonationRequest) (primitive.ObjectID, error) {
	if req.RequesterEmail != "" && req.RequesterEmail != principalEmail {
		s.logger.Debug("Ignoring client-supplied requester email on create",
			zap.String("principal", principalEmail),
			zap.String("supplied", req.RequesterEmail),
		)
	}

	request := &DonationRequest{
		RequesterEmail:    principalEmail,
		RequesterName:     req.RequesterName,
		RecipientName:     req.RecipientName,
		RecipientDistrict: req.RecipientDistrict,
		RecipientUpazila:  req.RecipientUpazila,
		HospitalName:      req.HospitalName,
		FullAddress:       req.FullAddress,
		BloodGroup:        req.BloodGroup,
		DonationDate:      req.DonationDate,
		DonationTime:      req.DonationTime,
		RequestMessage:    req.RequestMessage,
		Status:            StatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, request)
	if err != nil {
		s.logger.Error("Failed to create donation request", zap.Error(err), zap.String("requester", principalEmail))
		return primitive.NilObjectID, err
	}

	s.logger.Info("Donation request created",
		zap.String("requestID", id.Hex()),
		zap.String("requester", principalEmail),
		zap.String("bloodGroup", request.BloodGroup),
	)
	return id, nil
}

// ListMyRequests returns one page of the principal's own requests together
// with the total count over the same filter. A total computed without the
// pagination options keeps the reported page count stable across pages.
func (s *service) ListMyRequests(ctx context.Context, principalEmail string, q ListQuery) (*ListResponse, error) {
	if q.Size <= 0 {
		q.Size = common.DefaultPageSize
	}
	if q.Page < 0 {
		q.Page = 0
	}

	requests, err := s.repo.FindByRequester(ctx, principalEmail, q.Status, q.Size, q.Page)
	if err != nil {
		s.logger.Error("Failed to list donation requests", zap.Error(err), zap.String("requester", principalEmail))
		return nil, err
	}

	total, err := s.repo.CountByRequester(ctx, principalEmail, q.Status)
	if err != nil {
		s.logger.Error("Failed to count donation requests", zap.Error(err), zap.String("requester", principalEmail))
		return nil, err
	}

	return &ListResponse{Requests: requests, TotalRequest: total}, nil
}

func (s *service) GetRequestByID(ctx context.Context, id string) (*DonationRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrBadRequest.WithDetails("Invalid donation request ID format.")
	}
	return s.repo.FindByID(ctx, objectID)
}

// UpdateRequest applies a typed partial update after an ownership check. Only
// the allow-listed fields can change; ownership and creation time cannot.
func (s *service) UpdateRequest(ctx context.Context, principalEmail, id string, req UpdateDonationRequest) (*UpdateAck, error) {
	objectID, err := s.authorizeMutation(ctx, principalEmail, id)
	if err != nil {
		return nil, err
	}

	set := buildUpdateSet(req)
	if len(set) == 0 {
		return nil, common.ErrBadRequest.WithDetails("No updatable fields were provided.")
	}

	res, err := s.repo.UpdateByID(ctx, objectID, set)
	if err != nil {
		s.logger.Error("Failed to update donation request", zap.Error(err), zap.String("requestID", id))
		return nil, err
	}

	s.logger.Info("Donation request updated",
		zap.String("requestID", id),
		zap.String("principal", principalEmail),
		zap.Int64("modified", res.ModifiedCount),
	)
	return &UpdateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// DeleteRequest removes a request by id after an ownership check.
func (s *service) DeleteRequest(ctx context.Context, principalEmail, id string) (*DeleteAck, error) {
	objectID, err := s.authorizeMutation(ctx, principalEmail, id)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.DeleteByID(ctx, objectID)
	if err != nil {
		s.logger.Error("Failed to delete donation request", zap.Error(err), zap.String("requestID", id))
		return nil, err
	}

	s.logger.Info("Donation request deleted",
		zap.String("requestID", id),
		zap.String("principal", principalEmail),
	)
	return &DeleteAck{DeletedCount: res.DeletedCount}, nil
}

// Search is the public cross-user lookup: who needs blood of this group, and
// optionally where.
func (s *service) Search(ctx context.Context, q SearchQuery) ([]DonationRequest, error) {
	if q.BloodGroup == "" {
		return nil, common.ErrBadRequest.WithDetails("The bloodGroup query parameter is required.")
	}
	requests, err := s.repo.Search(ctx, q.BloodGroup, q.District, q.Upazila)
	if err != nil {
		s.logger.Error("Failed to search donation requests", zap.Error(err), zap.String("bloodGroup", q.BloodGroup))
		return nil, err
	}
	return requests, nil
}

// authorizeMutation parses the id, loads the record, and requires the caller
// to be the owner or an admin before any mutation proceeds.
func (s *service) authorizeMutation(ctx context.Context, principalEmail, id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrBadRequest.WithDetails("Invalid donation request ID format.")
	}

	request, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if request.RequesterEmail == principalEmail {
		return objectID, nil
	}

	principal, err := s.users.GetUserByEmail(ctx, principalEmail)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return primitive.NilObjectID, common.ErrForbidden.WithDetails("You may only modify your own donation requests.")
		}
		return primitive.NilObjectID, err
	}
	if principal.Role != common.RoleAdmin {
		s.logger.Warn("Rejected mutation of another user's donation request",
			zap.String("requestID", id),
			zap.String("principal", principalEmail),
			zap.String("owner", request.RequesterEmail),
		)
		return primitive.NilObjectID, common.ErrForbidden.WithDetails("You may only modify your own donation requests.")
	}
	return objectID, nil
}

// buildUpdateSet maps the non-nil fields of the typed update payload onto a
// $set document.
func buildUpdateSet(req UpdateDonationRequest) bson.M {
	set := bson.M{}
	setIfPresent := func(field string, value *string) {
		if value != nil {
			set[field] = *value
		}
	}
	setIfPresent("requesterName", req.RequesterName)
	setIfPresent("recipientName", req.RecipientName)
	setIfPresent("recipientDistrict", req.RecipientDistrict)
	setIfPresent("recipientUpazila", req.RecipientUpazila)
	setIfPresent("hospitalName", req.HospitalName)
	setIfPresent("fullAddress", req.FullAddress)
	setIfPresent("bloodGroup", req.BloodGroup)
	setIfPresent("donationDate", req.DonationDate)
	setIfPresent("donationTime", req.DonationTime)
	setIfPresent("requestMessage", req.RequestMessage)
	setIfPresent("status", req.Status)
	return set
}
