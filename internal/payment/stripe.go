// File: internal/payment/stripe.go
package payment

import (
	"blood_donation_backend/internal/config"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// CheckoutAPI is the slice of the payment provider the service needs:
// creating a hosted checkout session and retrieving it by id.
type CheckoutAPI interface {
	NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeCheckout struct {
	api *client.API
}

// NewStripeCheckout builds the Stripe-backed CheckoutAPI from the configured
// secret key.
func NewStripeCheckout(cfg *config.Config) CheckoutAPI {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &stripeCheckout{api: api}
}

func (s *stripeCheckout) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return s.api.CheckoutSessions.New(params)
}

func (s *stripeCheckout) GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return s.api.CheckoutSessions.Get(id, params)
}
