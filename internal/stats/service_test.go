package stats

import (
	"context"
	"errors"
	"testing"

	"blood_donation_backend/internal/common"
	"blood_donation_backend/internal/donation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserCounter struct {
	total      int64
	byRole     map[string]int64
	countErr   error
	byRoleErrs map[string]error
}

func (s *stubUserCounter) CountAll(ctx context.Context) (int64, error) {
	return s.total, s.countErr
}

func (s *stubUserCounter) CountByRole(ctx context.Context, role string) (int64, error) {
	if err, ok := s.byRoleErrs[role]; ok {
		return 0, err
	}
	return s.byRole[role], nil
}

type stubRequestCounter struct {
	total    int64
	byStatus map[string]int64
	recent   []donation.DonationRequest
}

func (s *stubRequestCounter) CountAll(ctx context.Context) (int64, error) {
	return s.total, nil
}

func (s *stubRequestCounter) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.byStatus[status], nil
}

func (s *stubRequestCounter) FindRecent(ctx context.Context, limit int64) ([]donation.DonationRequest, error) {
	if int64(len(s.recent)) > limit {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

type stubFundingSummer struct {
	total float64
	err   error
}

func (s *stubFundingSummer) SumAmounts(ctx context.Context) (float64, error) {
	return s.total, s.err
}

func TestComputeStats_AggregatesAllMetrics(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	recent := make([]donation.DonationRequest, 8)
	for i := range recent {
		recent[i].RecipientName = "Patient"
	}

	users := &stubUserCounter{
		total:  12,
		byRole: map[string]int64{common.RoleDonor: 9},
	}
	requests := &stubRequestCounter{
		total: 20,
		byStatus: map[string]int64{
			donation.StatusPending: 7,
			donation.StatusDone:    5,
		},
		recent: recent,
	}
	payments := &stubFundingSummer{total: 312.75}

	svc := NewService(users, requests, payments, logger)
	dashboard, err := svc.ComputeStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), dashboard.TotalUsers)
	assert.Equal(t, int64(9), dashboard.TotalDonors)
	assert.Equal(t, int64(20), dashboard.TotalRequests)
	assert.Equal(t, int64(7), dashboard.PendingRequests)
	assert.Equal(t, int64(5), dashboard.DoneRequests)
	assert.Equal(t, 312.75, dashboard.TotalFunding)
	assert.Len(t, dashboard.RecentDonations, 5, "recent list is capped")
}

func TestComputeStats_EmptyStore(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	svc := NewService(
		&stubUserCounter{byRole: map[string]int64{}},
		&stubRequestCounter{byStatus: map[string]int64{}},
		&stubFundingSummer{},
		logger,
	)

	dashboard, err := svc.ComputeStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dashboard.TotalUsers)
	assert.Equal(t, float64(0), dashboard.TotalFunding)
	assert.Empty(t, dashboard.RecentDonations)
}

func TestComputeStats_PropagatesErrors(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	wantErr := errors.New("store unavailable")

	tests := []struct {
		name string
		svc  Service
	}{
		{
			name: "user count fails",
			svc: NewService(
				&stubUserCounter{countErr: wantErr},
				&stubRequestCounter{},
				&stubFundingSummer{},
				logger,
			),
		},
		{
			name: "donor count fails",
			svc: NewService(
				&stubUserCounter{byRoleErrs: map[string]error{common.RoleDonor: wantErr}},
				&stubRequestCounter{},
				&stubFundingSummer{},
				logger,
			),
		},
		{
			name: "funding sum fails",
			svc: NewService(
				&stubUserCounter{byRole: map[string]int64{}},
				&stubRequestCounter{byStatus: map[string]int64{}},
				&stubFundingSummer{err: wantErr},
				logger,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard, err := tt.svc.ComputeStats(context.Background())
			assert.Nil(t, dashboard)
			assert.ErrorIs(t, err, wantErr)
		})
	}
}
