// File: internal/stats/model.go
package stats

import "blood_donation_backend/internal/donation"

// DashboardStats is the admin dashboard aggregation. Each metric is read
// independently (no cross-collection snapshot), so concurrent writes may
// skew metrics against each other slightly; that is accepted.
type DashboardStats struct {
	TotalUsers      int64                      `json:"totalUsers"`
	TotalDonors     int64                      `json:"totalDonors"`
	TotalRequests   int64                      `json:"totalRequests"`
	PendingRequests int64                      `json:"pendingRequests"`
	DoneRequests    int64                      `json:"doneRequests"`
	TotalFunding    float64                    `json:"totalFunding"`
	RecentDonations []donation.DonationRequest `json:"recentDonations"`
}
