package payment

import (
	"context"
	"testing"

	"blood_donation_backend/internal/common"
	"blood_donation_backend/internal/config"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// mockRepository is a hand-written mock of the payment Repository interface.
type mockRepository struct {
	createFunc     func(ctx context.Context, payment *Payment) (primitive.ObjectID, error)
	sumAmountsFunc func(ctx context.Context) (float64, error)
}

func (m *mockRepository) Create(ctx context.Context, payment *Payment) (primitive.ObjectID, error) {
	return m.createFunc(ctx, payment)
}

func (m *mockRepository) SumAmounts(ctx context.Context) (float64, error) {
	return m.sumAmountsFunc(ctx)
}

// mockCheckout is a hand-written mock of the CheckoutAPI interface.
type mockCheckout struct {
	newSessionFunc func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	getSessionFunc func(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func (m *mockCheckout) NewSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return m.newSessionFunc(params)
}

func (m *mockCheckout) GetSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return m.getSessionFunc(id, params)
}

func newTestService(repo Repository, checkout CheckoutAPI) Service {
	logger, _ := zap.NewDevelopment()
	cfg := &config.Config{
		PaymentSuccessURL: "https://example.com/success?session_id={CHECKOUT_SESSION_ID}",
		PaymentCancelURL:  "https://example.com/cancel",
	}
	return NewService(repo, checkout, cfg, logger)
}

func TestCreateCheckout_ConvertsToMinorUnits(t *testing.T) {
	var captured *stripe.CheckoutSessionParams
	checkout := &mockCheckout{
		newSessionFunc: func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			captured = params
			return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example.com/cs_test_1"}, nil
		},
	}
	svc := newTestService(&mockRepository{}, checkout)

	url, err := svc.CreateCheckout(context.Background(), CreateCheckoutRequest{
		DonateAmount: 25.50,
		DonorName:    "Jordan Donor",
		DonorEmail:   "jordan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/cs_test_1", url)

	require.NotNil(t, captured)
	require.Len(t, captured.LineItems, 1)
	assert.Equal(t, int64(2550), *captured.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "jordan@example.com", *captured.CustomerEmail)
	assert.Equal(t, "Jordan Donor", captured.Metadata["donor_name"])
	assert.Equal(t, "https://example.com/success?session_id={CHECKOUT_SESSION_ID}", *captured.SuccessURL)
}

func TestCreateCheckout_RejectsNonPositiveAmount(t *testing.T) {
	called := false
	checkout := &mockCheckout{
		newSessionFunc: func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			called = true
			return nil, nil
		},
	}
	svc := newTestService(&mockRepository{}, checkout)

	_, err := svc.CreateCheckout(context.Background(), CreateCheckoutRequest{DonateAmount: 0})
	assert.ErrorIs(t, err, common.ErrBadRequest)
	assert.False(t, called)
}

func TestRecordPayment_PaidSessionRecordsOnce(t *testing.T) {
	wantID := primitive.NewObjectID()
	checkout := &mockCheckout{
		getSessionFunc: func(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			assert.Equal(t, "cs_test_paid", id)
			return &stripe.CheckoutSession{
				ID:            "cs_test_paid",
				PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
				AmountTotal:   2550,
				Currency:      stripe.CurrencyUSD,
				CustomerEmail: "fallback@example.com",
				CustomerDetails: &stripe.CheckoutSessionCustomerDetails{
					Email: "jordan@example.com",
				},
				PaymentIntent: &stripe.PaymentIntent{ID: "pi_test_1"},
				Metadata:      map[string]string{"donor_name": "Jordan Donor"},
			}, nil
		},
	}

	inserts := 0
	var captured *Payment
	repo := &mockRepository{
		createFunc: func(ctx context.Context, payment *Payment) (primitive.ObjectID, error) {
			inserts++
			captured = payment
			return wantID, nil
		},
	}
	svc := newTestService(repo, checkout)

	id, err := svc.RecordPayment(context.Background(), "cs_test_paid")
	require.NoError(t, err)
	assert.Equal(t, wantID, id)
	assert.Equal(t, 1, inserts)

	require.NotNil(t, captured)
	assert.Equal(t, 25.50, captured.Amount)
	assert.Equal(t, "usd", captured.Currency)
	assert.Equal(t, "jordan@example.com", captured.DonorEmail)
	assert.Equal(t, "Jordan Donor", captured.DonorName)
	assert.Equal(t, "pi_test_1", captured.TransactionID)
	assert.Equal(t, PaymentStatusPaid, captured.PaymentStatus)
	assert.False(t, captured.PaidAt.IsZero())
}

func TestRecordPayment_UnpaidSessionRecordsNothing(t *testing.T) {
	tests := []struct {
		name   string
		status stripe.CheckoutSessionPaymentStatus
	}{
		{name: "unpaid", status: stripe.CheckoutSessionPaymentStatusUnpaid},
		{name: "no payment required", status: stripe.CheckoutSessionPaymentStatusNoPaymentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkout := &mockCheckout{
				getSessionFunc: func(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
					return &stripe.CheckoutSession{ID: id, PaymentStatus: tt.status}, nil
				},
			}
			inserted := false
			repo := &mockRepository{
				createFunc: func(ctx context.Context, payment *Payment) (primitive.ObjectID, error) {
					inserted = true
					return primitive.NilObjectID, nil
				},
			}
			svc := newTestService(repo, checkout)

			id, err := svc.RecordPayment(context.Background(), "cs_test_unpaid")
			assert.ErrorIs(t, err, common.ErrPaymentNotCompleted)
			assert.Equal(t, primitive.NilObjectID, id)
			assert.False(t, inserted, "nothing may be written for a non-paid session")
		})
	}
}

func TestRecordPayment_FallsBackToCustomerEmail(t *testing.T) {
	checkout := &mockCheckout{
		getSessionFunc: func(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			return &stripe.CheckoutSession{
				ID:            id,
				PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
				AmountTotal:   1000,
				Currency:      stripe.CurrencyUSD,
				CustomerEmail: "fallback@example.com",
			}, nil
		},
	}
	var captured *Payment
	repo := &mockRepository{
		createFunc: func(ctx context.Context, payment *Payment) (primitive.ObjectID, error) {
			captured = payment
			return primitive.NewObjectID(), nil
		},
	}
	svc := newTestService(repo, checkout)

	_, err := svc.RecordPayment(context.Background(), "cs_test_fallback")
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "fallback@example.com", captured.DonorEmail)
	assert.Equal(t, float64(10), captured.Amount)
	assert.Empty(t, captured.TransactionID)
}
