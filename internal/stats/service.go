// File: internal/stats/service.go
package stats

import (
	"context"

	"blood_donation_backend/internal/common"
	"blood_donation_backend/internal/donation"

	"go.uber.org/zap"
)

// recentDonationsLimit caps the dashboard's recent-requests list.
const recentDonationsLimit = 5

// UserCounter is the slice of the user repository the aggregator needs.
type UserCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// RequestCounter is the slice of the donation repository the aggregator needs.
type RequestCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	FindRecent(ctx context.Context, limit int64) ([]donation.DonationRequest, error)
}

// FundingSummer is the slice of the payment repository the aggregator needs.
type FundingSummer interface {
	SumAmounts(ctx context.Context) (float64, error)
}

// Service computes the dashboard aggregation.
type Service interface {
	ComputeStats(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	users    UserCounter
	requests RequestCounter
	payments FundingSummer
	logger   *zap.Logger
}

// NewService creates a new stats service.
func NewService(users UserCounter, requests RequestCounter, payments FundingSummer, logger *zap.Logger) Service {
	return &service{
		users:    users,
		requests: requests,
		payments: payments,
		logger:   logger,
	}
}

// ComputeStats runs one query per metric. The queries are independent
// point-in-time reads; no transaction spans them.
func (s *service) ComputeStats(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := s.users.CountAll(ctx)
	if err != nil {
		s.logger.Error("Failed to count users", zap.Error(err))
		return nil, err
	}

	totalDonors, err := s.users.CountByRole(ctx, common.RoleDonor)
	if err != nil {
		s.logger.Error("Failed to count donors", zap.Error(err))
		return nil, err
	}

	totalRequests, err := s.requests.CountAll(ctx)
	if err != nil {
		s.logger.Error("Failed to count donation requests", zap.Error(err))
		return nil, err
	}

	pendingRequests, err := s.requests.CountByStatus(ctx, donation.StatusPending)
	if err != nil {
		s.logger.Error("Failed to count pending donation requests", zap.Error(err))
		return nil, err
	}

	doneRequests, err := s.requests.CountByStatus(ctx, donation.StatusDone)
	if err != nil {
		s.logger.Error("Failed to count done donation requests", zap.Error(err))
		return nil, err
	}

	totalFunding, err := s.payments.SumAmounts(ctx)
	if err != nil {
		s.logger.Error("Failed to sum payment amounts", zap.Error(err))
		return nil, err
	}

	recentDonations, err := s.requests.FindRecent(ctx, recentDonationsLimit)
	if err != nil {
		s.logger.Error("Failed to fetch recent donation requests", zap.Error(err))
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:      totalUsers,
		TotalDonors:     totalDonors,
		TotalRequests:   totalRequests,
		PendingRequests: pendingRequests,
		DoneRequests:    doneRequests,
		TotalFunding:    totalFunding,
		RecentDonations: recentDonations,
	}, nil
}
