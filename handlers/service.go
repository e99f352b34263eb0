package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/odacaict/domee.ro/middleware"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/services/catalog"
)

// ServiceHandler exposes the per-salon service catalogue.
type ServiceHandler struct {
	Svc catalog.CatalogService
}

// GetProviderServices lists a salon's bookable services. Providers managing
// their own catalogue pass include_inactive=true.
func (h *ServiceHandler) GetProviderServices(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	list, err := h.Svc.GetByProvider(c.Param("id"), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": list})
}

// Search matches active services by text and optional price bounds.
// GET /api/services/search?q=..&min_price=..&max_price=..
func (h *ServiceHandler) Search(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)

	list, err := h.Svc.Search(c.Query("q"), minPrice, maxPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": list})
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req catalog.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ProviderID = c.GetString(middleware.CtxProviderID)

	svc, err := h.Svc.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc.ID = c.Param("id")
	svc.ProviderID = c.GetString(middleware.CtxProviderID)

	if err := h.ownedByCaller(c, svc.ID); err != nil {
		return
	}

	updated, err := h.Svc.Update(&svc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetActive toggles whether a service can be booked.
func (h *ServiceHandler) SetActive(c *gin.Context) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.ownedByCaller(c, c.Param("id")); err != nil {
		return
	}

	svc, err := h.Svc.SetActive(c.Param("id"), req.Active)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.ownedByCaller(c, c.Param("id")); err != nil {
		return
	}

	if err := h.Svc.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ownedByCaller aborts with 403 unless the service belongs to the signed-in
// provider. The response has already been written when an error is returned.
func (h *ServiceHandler) ownedByCaller(c *gin.Context, serviceID string) error {
	svc, err := h.Svc.GetByID(serviceID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return err
	}
	if svc.ProviderID != c.GetString(middleware.CtxProviderID) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Service belongs to another salon"})
		return errForbidden
	}
	return nil
}
