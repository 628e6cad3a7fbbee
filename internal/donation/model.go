// File: internal/donation/model.go
package donation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation request statuses. A request is created `pending` and only moves
// through explicit update calls; nothing transitions automatically.
const (
	StatusPending    = "pending"
	StatusInProgress = "inprogress"
	StatusDone       = "done"
	StatusCanceled   = "canceled"
)

// StatusAll is the query sentinel meaning "do not filter by status".
const StatusAll = "all"

// DonationRequest represents a document in the `donationRequests` collection.
// RequesterEmail is always the verified principal that created the record and
// never changes afterwards.
type DonationRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RequesterEmail    string             `bson:"requesterEmail" json:"requesterEmail"`
	RequesterName     string             `bson:"requesterName,omitempty" json:"requesterName,omitempty"`
	RecipientName     string             `bson:"recipientName" json:"recipientName"`
	RecipientDistrict string             `bson:"recipientDistrict,omitempty" json:"recipientDistrict,omitempty"`
	RecipientUpazila  string             `bson:"recipientUpazila,omitempty" json:"recipientUpazila,omitempty"`
	HospitalName      string             `bson:"hospitalName,omitempty" json:"hospitalName,omitempty"`
	FullAddress       string             `bson:"fullAddress,omitempty" json:"fullAddress,omitempty"`
	BloodGroup        string             `bson:"bloodGroup" json:"bloodGroup"`
	DonationDate      string             `bson:"donationDate,omitempty" json:"donationDate,omitempty"`
	DonationTime      string             `bson:"donationTime,omitempty" json:"donationTime,omitempty"`
	RequestMessage    string             `bson:"requestMessage,omitempty" json:"requestMessage,omitempty"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateDonationRequest is the creation payload. RequesterEmail and Status
// are bound so clients may send them, but the service discards both: the
// owner is always the verified principal and the status always starts pending.
type CreateDonationRequest struct {
	RequesterEmail    string `json:"requesterEmail,omitempty"`
	RequesterName     string `json:"requesterName,omitempty" binding:"omitempty,max=100"`
	RecipientName     string `json:"recipientName" binding:"required,max=100"`
	RecipientDistrict string `json:"recipientDistrict,omitempty"`
	RecipientUpazila  string `json:"recipientUpazila,omitempty"`
	HospitalName      string `json:"hospitalName,omitempty"`
	FullAddress       string `json:"fullAddress,omitempty"`
	BloodGroup        string `json:"bloodGroup" binding:"required"`
	DonationDate      string `json:"donationDate,omitempty"`
	DonationTime      string `json:"donationTime,omitempty"`
	RequestMessage    string `json:"requestMessage,omitempty"`
	Status            string `json:"status,omitempty"`
}

// UpdateDonationRequest is the typed partial-update payload. Only the fields
// listed here are mutable; requesterEmail and createdAt are deliberately not
// bindable, so ownership and creation time cannot be rewritten.
type UpdateDonationRequest struct {
	RequesterName     *string `json:"requesterName,omitempty" binding:"omitempty,max=100"`
	RecipientName     *string `json:"recipientName,omitempty" binding:"omitempty,max=100"`
	RecipientDistrict *string `json:"recipientDistrict,omitempty"`
	RecipientUpazila  *string `json:"recipientUpazila,omitempty"`
	HospitalName      *string `json:"hospitalName,omitempty"`
	FullAddress       *string `json:"fullAddress,omitempty"`
	BloodGroup        *string `json:"bloodGroup,omitempty"`
	DonationDate      *string `json:"donationDate,omitempty"`
	DonationTime      *string `json:"donationTime,omitempty"`
	RequestMessage    *string `json:"requestMessage,omitempty"`
	Status            *string `json:"status,omitempty"`
}

// ListQuery holds the paginated list parameters for a requester's own
// requests. Page is zero-indexed; skip = Size × Page.
type ListQuery struct {
	Size   int64
	Page   int64
	Status string
}

// ListResponse carries one page of requests plus the total matching count
// over the same filter ignoring pagination, which callers use to compute
// page counts.
type ListResponse struct {
	Requests     []DonationRequest `json:"requests"`
	TotalRequest int64             `json:"totalRequest"`
}

// SearchQuery holds the public search parameters. BloodGroup is mandatory;
// the location fields are applied only when non-empty.
type SearchQuery struct {
	BloodGroup string `form:"bloodGroup" binding:"required"`
	District   string `form:"district"`
	Upazila    string `form:"upazila"`
}

// DeleteAck mirrors the document store's delete acknowledgment.
type DeleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateAck mirrors the document store's update acknowledgment.
type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
