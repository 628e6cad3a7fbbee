// File: internal/payment/model.go
package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatusPaid is the provider-reported status that permits recording.
const PaymentStatusPaid = "paid"

// Payment represents a completed donation payment in the `payments`
// collection. A document is written exactly once per paid checkout session
// and never updated or deleted afterwards.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	DonorName     string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail    string             `bson:"donorEmail" json:"donorEmail"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PaymentStatus string             `bson:"payment_status" json:"payment_status"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}

// CreateCheckoutRequest is the payload for starting a hosted checkout
// session. DonateAmount is in major currency units.
type CreateCheckoutRequest struct {
	DonateAmount float64 `json:"donateAmount" binding:"required,gt=0"`
	DonorName    string  `json:"donorName,omitempty" binding:"omitempty,max=100"`
	DonorEmail   string  `json:"donorEmail,omitempty" binding:"omitempty,email"`
}
