package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odacaict/domee.ro/middleware"
	"github.com/odacaict/domee.ro/services/review"
)

// errForbidden marks ownership failures where the HTTP response has already
// been written.
var errForbidden = errors.New("forbidden")

// ReviewHandler exposes customer reviews and provider responses.
type ReviewHandler struct {
	Svc review.ReviewService
}

func (h *ReviewHandler) GetProviderReviews(c *gin.Context) {
	reviews, err := h.Svc.GetByProvider(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Create stores a review for one of the caller's completed bookings.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req review.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.UserID = c.GetString(middleware.CtxUserID)

	r, err := h.Svc.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// Respond records the salon's public reply to a review.
func (h *ReviewHandler) Respond(c *gin.Context) {
	var req struct {
		Response string `json:"response" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.Respond(c.Param("id"), c.GetString(middleware.CtxProviderID), req.Response); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Response published"})
}
