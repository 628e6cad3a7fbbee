// File: internal/payment/service.go
package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"blood_donation_backend/internal/common"
	"blood_donation_backend/internal/config"

	stripe "github.com/stripe/stripe-go/v81"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Service defines the payment recording operations.
type Service interface {
	CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (string, error)
	RecordPayment(ctx context.Context, sessionID string) (primitive.ObjectID, error)
}

type service struct {
	repo     Repository
	checkout CheckoutAPI
	cfg      *config.Config
	logger   *zap.Logger
}

// NewService creates a new payment service.
func NewService(repo Repository, checkout CheckoutAPI, cfg *config.Config, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		checkout: checkout,
		cfg:      cfg,
		logger:   logger,
	}
}

// CreateCheckout converts the donated amount to minor units and opens a
// single-line-item hosted checkout session, returning its redirect URL.
func (s *service) CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (string, error) {
	unitAmount := int64(math.Round(req.DonateAmount * 100))
	if unitAmount <= 0 {
		return "", common.ErrBadRequest.WithDetails("donateAmount must be greater than zero.")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Blood donation fund"),
					},
					UnitAmount: stripe.Int64(unitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.cfg.PaymentSuccessURL),
		CancelURL:  stripe.String(s.cfg.PaymentCancelURL),
	}
	params.Context = ctx
	if req.DonorEmail != "" {
		params.CustomerEmail = stripe.String(req.DonorEmail)
	}
	if req.DonorName != "" {
		params.AddMetadata("donor_name", req.DonorName)
	}

	session, err := s.checkout.NewSession(params)
	if err != nil {
		s.logger.Error("Failed to create checkout session", zap.Error(err))
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.logger.Info("Checkout session created",
		zap.String("sessionID", session.ID),
		zap.Int64("unitAmount", unitAmount),
	)
	return session.URL, nil
}

// RecordPayment retrieves the checkout session and, if and only if the
// provider reports it as paid, records the payment exactly once. Any other
// provider status produces an explicit PAYMENT_NOT_COMPLETED outcome.
func (s *service) RecordPayment(ctx context.Context, sessionID string) (primitive.ObjectID, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := s.checkout.GetSession(sessionID, params)
	if err != nil {
		s.logger.Error("Failed to retrieve checkout session", zap.Error(err), zap.String("sessionID", sessionID))
		return primitive.NilObjectID, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		s.logger.Info("Checkout session not paid; nothing recorded",
			zap.String("sessionID", sessionID),
			zap.String("paymentStatus", string(session.PaymentStatus)),
		)
		return primitive.NilObjectID, common.ErrPaymentNotCompleted.WithDetails(
			fmt.Sprintf("Checkout session status is %q.", session.PaymentStatus))
	}

	donorEmail := session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		donorEmail = session.CustomerDetails.Email
	}
	transactionID := ""
	if session.PaymentIntent != nil {
		transactionID = session.PaymentIntent.ID
	}

	record := &Payment{
		Amount:        float64(session.AmountTotal) / 100,
		Currency:      string(session.Currency),
		DonorName:     session.Metadata["donor_name"],
		DonorEmail:    donorEmail,
		TransactionID: transactionID,
		PaymentStatus: string(session.PaymentStatus),
		PaidAt:        time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, record)
	if err != nil {
		s.logger.Error("Failed to record payment", zap.Error(err), zap.String("sessionID", sessionID))
		return primitive.NilObjectID, err
	}

	s.logger.Info("Payment recorded",
		zap.String("paymentID", id.Hex()),
		zap.String("transactionID", transactionID),
		zap.Float64("amount", record.Amount),
	)
	return id, nil
}
