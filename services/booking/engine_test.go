package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "github.com/odacaict/domee.ro/database/repository/booking"
	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	serviceRepo "github.com/odacaict/domee.ro/database/repository/service"
	"github.com/odacaict/domee.ro/models"
)

// fakeBookingRepo is an in-memory BookingRepository that enforces the same
// non-cancelled slot uniqueness the Mongo partial index provides.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) GetLiveByProviderDate(providerID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && b.Active {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByProvider(providerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Reserve(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Active && b.ProviderID == booking.ProviderID && b.Date == booking.Date && b.Time == booking.Time {
			return bookingRepo.ErrSlotTaken
		}
	}
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id, status string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	b.Status = status
	b.Active = status != models.BookingStatusCancelled
	b.UpdatedAt = time.Now()
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) SetPaymentState(id, paymentStatus, paymentIntentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.PaymentStatus = paymentStatus
	if paymentIntentID != "" {
		b.PaymentIntent = paymentIntentID
	}
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func (r *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	return p, nil
}

func (r *fakeProviderRepo) GetByUserID(string) (*models.Provider, error) { return nil, providerRepo.ErrNotFound }
func (r *fakeProviderRepo) GetByEmail(string) (*models.Provider, error) { return nil, providerRepo.ErrNotFound }
func (r *fakeProviderRepo) GetAll() ([]models.Provider, error)          { return nil, nil }
func (r *fakeProviderRepo) Create(*models.Provider) error               { return nil }
func (r *fakeProviderRepo) Update(*models.Provider) error               { return nil }
func (r *fakeProviderRepo) Delete(string) error                         { return nil }
func (r *fakeProviderRepo) Search(providerRepo.SearchCriteria) ([]models.Provider, error) {
	return nil, nil
}
func (r *fakeProviderRepo) GetNearby(float64, float64, float64) ([]models.Provider, error) {
	return nil, nil
}
func (r *fakeProviderRepo) ApplyReviewAggregate(string, int) error { return nil }

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	return s, nil
}

func (r *fakeServiceRepo) GetActiveByProvider(string) ([]models.Service, error) { return nil, nil }
func (r *fakeServiceRepo) GetByProvider(string) ([]models.Service, error)       { return nil, nil }
func (r *fakeServiceRepo) SearchActive(string, float64, float64) ([]models.Service, error) {
	return nil, nil
}
func (r *fakeServiceRepo) Create(*models.Service) error { return nil }
func (r *fakeServiceRepo) Update(*models.Service) error { return nil }
func (r *fakeServiceRepo) Delete(string) error          { return nil }

const (
	testProviderID = "prov-1"
	testServiceID  = "svc-1"
	testDate       = "2026-01-05" // a Monday
)

func openAllWeek() models.WeeklySchedule {
	day := models.DaySchedule{Open: "09:00", Close: "17:00"}
	return models.WeeklySchedule{
		Monday: day, Tuesday: day, Wednesday: day,
		Thursday: day, Friday: day, Saturday: day, Sunday: day,
	}
}

func newTestEngine(t *testing.T) (*DefaultSchedulingEngine, *fakeBookingRepo) {
	t.Helper()

	bookings := newFakeBookingRepo()
	engine := &DefaultSchedulingEngine{
		Repo: bookings,
		ProviderRepo: &fakeProviderRepo{providers: map[string]*models.Provider{
			testProviderID: {ID: testProviderID, SalonName: "Studio Unu", WorkingHours: openAllWeek()},
		}},
		ServiceRepo: &fakeServiceRepo{services: map[string]*models.Service{
			testServiceID: {
				ID: testServiceID, ProviderID: testProviderID,
				Name: "Tuns", Price: 80, Duration: 60, Active: true,
			},
		}},
		Locks: NewLocalSlotLocker(),
		Now: func() time.Time {
			return time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
		},
	}
	return engine, bookings
}

func reserveReq(slot string) ReserveRequest {
	return ReserveRequest{
		ProviderID: testProviderID,
		ServiceID:  testServiceID,
		UserID:     "user-1",
		Date:       testDate,
		Time:       slot,
	}
}

func TestReserve_CreatesPendingBooking(t *testing.T) {
	engine, _ := newTestEngine(t)

	bk, err := engine.Reserve(context.Background(), reserveReq("10:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, bk.ID)
	assert.Equal(t, models.BookingStatusPending, bk.Status)
	assert.Equal(t, models.PaymentStatusPending, bk.PaymentStatus)
	assert.Equal(t, 60, bk.Duration)
	assert.Equal(t, 80.0, bk.TotalPrice)
	assert.True(t, bk.Active)
}

func TestReserve_UnknownService(t *testing.T) {
	engine, _ := newTestEngine(t)

	req := reserveReq("10:00")
	req.ServiceID = "nope"
	_, err := engine.Reserve(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReserve_UnknownProvider(t *testing.T) {
	engine, _ := newTestEngine(t)

	req := reserveReq("10:00")
	req.ProviderID = "nope"
	_, err := engine.Reserve(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReserve_InactiveService(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.ServiceRepo.(*fakeServiceRepo).services[testServiceID].Active = false

	_, err := engine.Reserve(context.Background(), reserveReq("10:00"))
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestReserve_ServiceOfAnotherProvider(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.ServiceRepo.(*fakeServiceRepo).services[testServiceID].ProviderID = "prov-2"

	_, err := engine.Reserve(context.Background(), reserveReq("10:00"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReserve_TakenSlotConflicts(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Reserve(ctx, reserveReq("10:00"))
	require.NoError(t, err)

	_, err = engine.Reserve(ctx, reserveReq("10:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Overlap without identical start also conflicts: 10:30 falls inside the
	// 10:00-11:00 appointment.
	_, err = engine.Reserve(ctx, reserveReq("10:30"))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestReserve_CancelledBookingFreesSlot(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	first, err := engine.Reserve(ctx, reserveReq("10:00"))
	require.NoError(t, err)

	cancelled, err := engine.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.False(t, cancelled.Active)

	second, err := engine.Reserve(ctx, reserveReq("10:00"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestReserve_ConcurrentCallersOneWinner(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Reserve(ctx, reserveReq("11:00"))
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, ErrSlotConflict)
			conflicts++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, conflicts)
}

func TestLifecycle_ConfirmThenComplete(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	bk, err := engine.Reserve(ctx, reserveReq("12:00"))
	require.NoError(t, err)

	confirmed, err := engine.Confirm(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)
	assert.True(t, confirmed.Active)

	stored, err := engine.GetBooking(bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, stored.PaymentStatus)

	completed, err := engine.Complete(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, completed.Status)
	assert.True(t, completed.Active)
}

func TestReserve_CompletedBookingStillBlocksSlot(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	first, err := engine.Reserve(ctx, reserveReq("10:00"))
	require.NoError(t, err)
	_, err = engine.Confirm(ctx, first.ID)
	require.NoError(t, err)
	completed, err := engine.Complete(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusCompleted, completed.Status)

	_, err = engine.Reserve(ctx, reserveReq("10:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	slots, err := engine.GetAvailableSlots(ctx, testProviderID, testServiceID, testDate)
	require.NoError(t, err)
	for _, s := range slots {
		if s.Time == "10:00" || s.Time == "10:30" {
			assert.False(t, s.Available, "slot %s should stay blocked", s.Time)
		}
	}
}

func TestLifecycle_InvalidTransitions(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	bk, err := engine.Reserve(ctx, reserveReq("13:00"))
	require.NoError(t, err)

	// Completing a pending booking skips confirmation.
	_, err = engine.Complete(ctx, bk.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = engine.Cancel(ctx, bk.ID)
	require.NoError(t, err)

	// Cancelled bookings are terminal.
	_, err = engine.Cancel(ctx, bk.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = engine.Confirm(ctx, bk.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestLifecycle_UnknownBooking(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.GetBooking("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = engine.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAvailableSlots_ReflectsReservations(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Reserve(ctx, reserveReq("10:00"))
	require.NoError(t, err)

	slots, err := engine.GetAvailableSlots(ctx, testProviderID, testServiceID, testDate)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	bySlot := make(map[string]bool, len(slots))
	for _, s := range slots {
		bySlot[s.Time] = s.Available
	}

	assert.True(t, bySlot["09:00"])
	// 09:30 would run into the 10:00 appointment; 10:00/10:30 sit inside it.
	assert.False(t, bySlot["09:30"])
	assert.False(t, bySlot["10:00"])
	assert.False(t, bySlot["10:30"])
	assert.True(t, bySlot["11:00"])
}
