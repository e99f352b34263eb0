package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	"github.com/odacaict/domee.ro/middleware"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/services/availability"
	"github.com/odacaict/domee.ro/services/booking"
	"github.com/odacaict/domee.ro/utils"
)

// BookingHandler exposes the slot grid and the reservation lifecycle.
type BookingHandler struct {
	Engine booking.SchedulingEngine
	// Providers resolves a signed-in salon owner to their salon so they can
	// manage their own book from the customer endpoints.
	Providers providerRepo.ProviderRepository
}

// GetSlots returns the availability grid for one provider/service/date.
// GET /api/bookings/slots?providerId=..&serviceId=..&date=2006-01-02
func (h *BookingHandler) GetSlots(c *gin.Context) {
	var query models.SlotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	slots, err := h.Engine.GetAvailableSlots(c.Request.Context(), query.ProviderID, query.ServiceID, query.Date)
	if err != nil {
		h.writeBookingError(c, err, "failed to compute slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": query.Date, "slots": slots})
}

// Reserve commits a pending booking for the requested slot.
func (h *BookingHandler) Reserve(c *gin.Context) {
	var req booking.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.UserID = c.GetString(middleware.CtxUserID)

	bk, err := h.Engine.Reserve(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, err, "failed to reserve slot")
		return
	}
	c.JSON(http.StatusCreated, bk)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	bk, err := h.bookingForCaller(c, c.Param("id"))
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, bk)
}

// GetMyBookings lists the signed-in user's bookings, newest first.
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	bookings, err := h.Engine.GetUserBookings(c.GetString(middleware.CtxUserID))
	if err != nil {
		h.writeBookingError(c, err, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetProviderBookings lists the salon's booking book.
func (h *BookingHandler) GetProviderBookings(c *gin.Context) {
	bookings, err := h.Engine.GetProviderBookings(c.GetString(middleware.CtxProviderID))
	if err != nil {
		h.writeBookingError(c, err, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Cancel is open to the booking's customer and to its salon.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if _, err := h.bookingForCaller(c, c.Param("id")); err != nil {
		return
	}

	bk, err := h.Engine.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err, "failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, bk)
}

// Confirm is the salon's manual confirmation for cash-on-site bookings; card
// bookings confirm through the payment webhook instead.
func (h *BookingHandler) Confirm(c *gin.Context) {
	if _, err := h.bookingForSalon(c, c.Param("id")); err != nil {
		return
	}

	bk, err := h.Engine.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err, "failed to confirm booking")
		return
	}
	c.JSON(http.StatusOK, bk)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	if _, err := h.bookingForSalon(c, c.Param("id")); err != nil {
		return
	}

	bk, err := h.Engine.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err, "failed to complete booking")
		return
	}
	c.JSON(http.StatusOK, bk)
}

// bookingForCaller loads the booking and aborts with 403 unless the caller is
// its customer or owns its salon. The response has already been written when
// an error is returned.
func (h *BookingHandler) bookingForCaller(c *gin.Context, id string) (*models.Booking, error) {
	bk, err := h.Engine.GetBooking(id)
	if err != nil {
		h.writeBookingError(c, err, "failed to fetch booking")
		c.Abort()
		return nil, err
	}

	if bk.UserID == c.GetString(middleware.CtxUserID) {
		return bk, nil
	}
	if pid := c.GetString(middleware.CtxProviderID); pid != "" && pid == bk.ProviderID {
		return bk, nil
	}
	if h.Providers != nil && c.GetString(middleware.CtxUserType) == models.UserTypeProvider {
		if prov, err := h.Providers.GetByUserID(c.GetString(middleware.CtxUserID)); err == nil && prov.ID == bk.ProviderID {
			return bk, nil
		}
	}

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Booking belongs to another account"})
	return nil, errForbidden
}

// bookingForSalon aborts with 403 unless the booking belongs to the signed-in
// provider's salon.
func (h *BookingHandler) bookingForSalon(c *gin.Context, id string) (*models.Booking, error) {
	bk, err := h.Engine.GetBooking(id)
	if err != nil {
		h.writeBookingError(c, err, "failed to fetch booking")
		c.Abort()
		return nil, err
	}
	if bk.ProviderID != c.GetString(middleware.CtxProviderID) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Booking belongs to another salon"})
		return nil, errForbidden
	}
	return bk, nil
}

// writeBookingError maps engine errors onto HTTP statuses.
func (h *BookingHandler) writeBookingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrServiceInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "This slot was just taken, please pick another"})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrLockBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "This slot is being booked right now, please retry"})
	case errors.Is(err, availability.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
