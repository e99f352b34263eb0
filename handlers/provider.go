package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/odacaict/domee.ro/middleware"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/services/provider"
	"github.com/odacaict/domee.ro/utils"
)

// ProviderHandler exposes the salon directory and profile management.
type ProviderHandler struct {
	Svc provider.ProviderService
}

// Search runs a filtered directory search.
// GET /api/providers/search?q=..&city=..&salon_type=..
func (h *ProviderHandler) Search(c *gin.Context) {
	var req provider.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	results, err := h.Svc.Search(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": results})
}

// Nearby returns salons around a coordinate, nearest first.
// GET /api/providers/nearby?lat=..&lng=..&radius_km=..
func (h *ProviderHandler) Nearby(c *gin.Context) {
	var req provider.NearbyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	results, err := h.Svc.Nearby(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": results})
}

func (h *ProviderHandler) GetProvider(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Register creates the salon profile for the signed-in provider account.
func (h *ProviderHandler) Register(c *gin.Context) {
	var req provider.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.UserID = c.GetString(middleware.CtxUserID)

	p, err := h.Svc.Register(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetMyProfile returns the signed-in provider's salon profile.
func (h *ProviderHandler) GetMyProfile(c *gin.Context) {
	p, err := h.Svc.GetByID(c.GetString(middleware.CtxProviderID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	var p models.Provider
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	p.ID = c.GetString(middleware.CtxProviderID)

	updated, err := h.Svc.Update(&p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateSchedule replaces the weekly working hours.
func (h *ProviderHandler) UpdateSchedule(c *gin.Context) {
	var schedule models.WeeklySchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Svc.UpdateSchedule(c.GetString(middleware.CtxProviderID), schedule)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) UpdatePaymentMethods(c *gin.Context) {
	var pm models.ProviderPaymentMethods
	if err := c.ShouldBindJSON(&pm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Svc.UpdatePaymentMethods(c.GetString(middleware.CtxProviderID), pm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) Delete(c *gin.Context) {
	id := c.GetString(middleware.CtxProviderID)
	if err := h.Svc.Delete(id); err != nil {
		utils.GetLogger().Error("failed to delete provider", zap.String("providerId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}
