package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	"github.com/odacaict/domee.ro/middleware"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/services/booking"
)

// stubEngine serves canned bookings and records which lifecycle transitions
// actually reached it.
type stubEngine struct {
	bookings  map[string]*models.Booking
	cancelled []string
	confirmed []string
	completed []string
}

func (e *stubEngine) GetAvailableSlots(context.Context, string, string, string) ([]models.TimeSlot, error) {
	return nil, nil
}

func (e *stubEngine) Reserve(context.Context, booking.ReserveRequest) (*models.Booking, error) {
	return nil, nil
}

func (e *stubEngine) GetBooking(id string) (*models.Booking, error) {
	bk, ok := e.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return bk, nil
}

func (e *stubEngine) GetUserBookings(string) ([]models.Booking, error)     { return nil, nil }
func (e *stubEngine) GetProviderBookings(string) ([]models.Booking, error) { return nil, nil }

func (e *stubEngine) Cancel(_ context.Context, id string) (*models.Booking, error) {
	e.cancelled = append(e.cancelled, id)
	return e.GetBooking(id)
}

func (e *stubEngine) Confirm(_ context.Context, id string) (*models.Booking, error) {
	e.confirmed = append(e.confirmed, id)
	return e.GetBooking(id)
}

func (e *stubEngine) Complete(_ context.Context, id string) (*models.Booking, error) {
	e.completed = append(e.completed, id)
	return e.GetBooking(id)
}

type stubProviderRepo struct {
	byUser map[string]*models.Provider
}

func (r *stubProviderRepo) GetByID(string) (*models.Provider, error) {
	return nil, providerRepo.ErrNotFound
}

func (r *stubProviderRepo) GetByUserID(userID string) (*models.Provider, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	return p, nil
}

func (r *stubProviderRepo) GetByEmail(string) (*models.Provider, error) {
	return nil, providerRepo.ErrNotFound
}

func (r *stubProviderRepo) GetAll() ([]models.Provider, error) { return nil, nil }
func (r *stubProviderRepo) Create(*models.Provider) error      { return nil }
func (r *stubProviderRepo) Update(*models.Provider) error      { return nil }
func (r *stubProviderRepo) Delete(string) error                { return nil }
func (r *stubProviderRepo) Search(providerRepo.SearchCriteria) ([]models.Provider, error) {
	return nil, nil
}
func (r *stubProviderRepo) GetNearby(float64, float64, float64) ([]models.Provider, error) {
	return nil, nil
}
func (r *stubProviderRepo) ApplyReviewAggregate(string, int) error { return nil }

func newBookingTestHandler() (*BookingHandler, *stubEngine) {
	engine := &stubEngine{bookings: map[string]*models.Booking{
		"bk-1": {
			ID: "bk-1", UserID: "user-1", ProviderID: "prov-1",
			Date: "2026-01-05", Time: "10:00", Status: models.BookingStatusPending,
		},
	}}
	h := &BookingHandler{
		Engine: engine,
		Providers: &stubProviderRepo{byUser: map[string]*models.Provider{
			"owner-1": {ID: "prov-1", UserID: "owner-1"},
		}},
	}
	return h, engine
}

func bookingRequest(t *testing.T, bookingID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: bookingID}}
	return c, w
}

func TestGetBooking_OwnerSeesIt(t *testing.T) {
	h, _ := newBookingTestHandler()

	c, w := bookingRequest(t, "bk-1")
	c.Set(middleware.CtxUserID, "user-1")
	h.GetBooking(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bk-1")
}

func TestGetBooking_OtherCustomerForbidden(t *testing.T) {
	h, _ := newBookingTestHandler()

	c, w := bookingRequest(t, "bk-1")
	c.Set(middleware.CtxUserID, "user-2")
	c.Set(middleware.CtxUserType, models.UserTypeCustomer)
	h.GetBooking(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "prov-1")
}

func TestCancel_OtherCustomerForbidden(t *testing.T) {
	h, engine := newBookingTestHandler()

	c, w := bookingRequest(t, "bk-1")
	c.Set(middleware.CtxUserID, "user-2")
	c.Set(middleware.CtxUserType, models.UserTypeCustomer)
	h.Cancel(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, engine.cancelled)
}

func TestCancel_SalonOwnerAllowed(t *testing.T) {
	h, engine := newBookingTestHandler()

	// The owner cancels from the customer endpoint; their salon is resolved
	// through the provider repository.
	c, w := bookingRequest(t, "bk-1")
	c.Set(middleware.CtxUserID, "owner-1")
	c.Set(middleware.CtxUserType, models.UserTypeProvider)
	h.Cancel(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"bk-1"}, engine.cancelled)
}

func TestConfirm_SameSalonConfirms(t *testing.T) {
	h, engine := newBookingTestHandler()

	c, w := bookingRequest(t, "bk-1")
	c.Set(middleware.CtxUserID, "owner-1")
	c.Set(middleware.CtxProviderID, "prov-1")
	h.Confirm(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"bk-1"}, engine.confirmed)
}

func TestComplete_OtherSalonForbidden(t *testing.T) {
	h, engine := newBookingTestHandler()

	c, w := bookingRequest(t, "bk-1")
	c.Set(middleware.CtxUserID, "owner-2")
	c.Set(middleware.CtxProviderID, "prov-2")
	h.Complete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, engine.completed)
}

func TestGetBooking_UnknownBookingNotFound(t *testing.T) {
	h, _ := newBookingTestHandler()

	c, w := bookingRequest(t, "missing")
	c.Set(middleware.CtxUserID, "user-1")
	h.GetBooking(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
