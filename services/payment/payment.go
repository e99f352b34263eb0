// Package payment settles bookings through Stripe payment intents.
package payment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	bookingRepo "github.com/odacaict/domee.ro/database/repository/booking"
	paymentRepo "github.com/odacaict/domee.ro/database/repository/payment"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/services/booking"
	"github.com/odacaict/domee.ro/utils"
)

const (
	defaultCurrency = "ron"
	// Marketplace commission withheld from the provider payout.
	platformFeeRate = 0.10
)

// IntentResponse carries what the client needs to complete a card payment.
type IntentResponse struct {
	PaymentID    string  `json:"payment_id"`
	IntentID     string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// PaymentService creates Stripe payment intents for bookings and settles
// bookings when the intent succeeds.
type PaymentService interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*IntentResponse, error)
	// HandleIntentSucceeded confirms the booking tied to a succeeded intent.
	HandleIntentSucceeded(ctx context.Context, intentID string) error
	GetBookingPayments(bookingID string) ([]models.Payment, error)
}

type DefaultPaymentService struct {
	Repo        paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
	Engine      booking.SchedulingEngine
}

// CreateIntent opens a Stripe payment intent for the booking's total price and
// records a pending settlement row.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*IntentResponse, error) {
	bk, err := s.BookingRepo.GetByID(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", req.BookingID, err)
	}
	if bk.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("booking %s is not awaiting payment", bk.ID)
	}
	if bk.PaymentStatus == models.PaymentStatusPaid {
		return nil, fmt.Errorf("booking %s is already paid", bk.ID)
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(bk.TotalPrice)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", bk.ID)
	params.AddMetadata("providerId", bk.ProviderID)

	intent, err := paymentintent.New(params)
	if err != nil {
		utils.GetLogger().Error("failed to create payment intent",
			zap.String("bookingId", bk.ID), zap.Error(err))
		return nil, fmt.Errorf("payment could not be initiated, please try again")
	}

	fee := round2(bk.TotalPrice * platformFeeRate)
	rec := &models.Payment{
		ID:             uuid.New().String(),
		BookingID:      bk.ID,
		Amount:         bk.TotalPrice,
		Currency:       currency,
		Method:         "card",
		Status:         models.PaymentStatusPending,
		IntentID:       intent.ID,
		PlatformFee:    fee,
		ProviderPayout: round2(bk.TotalPrice - fee),
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.Create(rec); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return &IntentResponse{
		PaymentID:    rec.ID,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       bk.TotalPrice,
		Currency:     currency,
	}, nil
}

// HandleIntentSucceeded marks the settlement paid and confirms the booking.
// Called from the Stripe webhook; already-settled intents are a no-op.
func (s *DefaultPaymentService) HandleIntentSucceeded(ctx context.Context, intentID string) error {
	rec, err := s.Repo.GetByIntent(intentID)
	if err != nil {
		return fmt.Errorf("failed to resolve intent %s: %w", intentID, err)
	}
	if rec.Status == models.PaymentStatusPaid {
		return nil
	}

	if err := s.Repo.SetStatus(rec.ID, models.PaymentStatusPaid, intentID); err != nil {
		return fmt.Errorf("failed to mark payment %s paid: %w", rec.ID, err)
	}
	if _, err := s.Engine.Confirm(ctx, rec.BookingID); err != nil {
		utils.GetLogger().Error("payment settled but booking confirmation failed",
			zap.String("bookingId", rec.BookingID), zap.Error(err))
		return fmt.Errorf("failed to confirm booking %s: %w", rec.BookingID, err)
	}

	utils.GetLogger().Info("booking paid",
		zap.String("bookingId", rec.BookingID), zap.String("intentId", intentID))
	return nil
}

func (s *DefaultPaymentService) GetBookingPayments(bookingID string) ([]models.Payment, error) {
	payments, err := s.Repo.GetByBooking(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for booking %s: %w", bookingID, err)
	}
	return payments, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
