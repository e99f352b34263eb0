package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"github.com/odacaict/domee.ro/config"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/services/payment"
	"github.com/odacaict/domee.ro/utils"
)

// PaymentHandler exposes payment intents and the Stripe webhook.
type PaymentHandler struct {
	Svc payment.PaymentService
}

// CreateIntent opens a Stripe payment intent for a pending booking.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Svc.CreateIntent(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PaymentHandler) GetBookingPayments(c *gin.Context) {
	payments, err := h.Svc.GetBookingPayments(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// StripeWebhook verifies the event signature and settles bookings on
// payment_intent.succeeded. Unhandled event types are acknowledged.
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		utils.GetLogger().Warn("stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event payload"})
			return
		}
		if err := h.Svc.HandleIntentSucceeded(c.Request.Context(), intent.ID); err != nil {
			utils.GetLogger().Error("failed to settle payment intent",
				zap.String("intentId", intent.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement failed"})
			return
		}
	default:
		// Acknowledge so Stripe stops retrying.
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
