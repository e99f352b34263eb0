package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	"github.com/odacaict/domee.ro/models"
)

// fakeProviderStore is an in-memory ProviderRepository for service tests.
type fakeProviderStore struct {
	byID    map[string]*models.Provider
	updated *models.Provider
}

func (r *fakeProviderStore) GetByID(id string) (*models.Provider, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	return p, nil
}

func (r *fakeProviderStore) GetByUserID(string) (*models.Provider, error) {
	return nil, providerRepo.ErrNotFound
}

func (r *fakeProviderStore) GetByEmail(string) (*models.Provider, error) {
	return nil, providerRepo.ErrNotFound
}

func (r *fakeProviderStore) GetAll() ([]models.Provider, error) { return nil, nil }
func (r *fakeProviderStore) Create(*models.Provider) error      { return nil }
func (r *fakeProviderStore) Update(p *models.Provider) error {
	r.updated = p
	return nil
}
func (r *fakeProviderStore) Delete(string) error { return nil }
func (r *fakeProviderStore) Search(providerRepo.SearchCriteria) ([]models.Provider, error) {
	return nil, nil
}
func (r *fakeProviderStore) GetNearby(float64, float64, float64) ([]models.Provider, error) {
	return nil, nil
}
func (r *fakeProviderStore) ApplyReviewAggregate(string, int) error { return nil }

func newScheduleService() (*DefaultProviderService, *fakeProviderStore) {
	store := &fakeProviderStore{byID: map[string]*models.Provider{
		"prov-1": {ID: "prov-1", SalonName: "Studio Unu"},
	}}
	return &DefaultProviderService{Repo: store}, store
}

func weekOf(day models.DaySchedule) models.WeeklySchedule {
	closed := models.DaySchedule{Closed: true}
	return models.WeeklySchedule{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day,
		Saturday: closed, Sunday: closed,
	}
}

func TestUpdateSchedule_AcceptsContainedBreaks(t *testing.T) {
	svc, store := newScheduleService()

	day := models.DaySchedule{
		Open: "09:00", Close: "17:00",
		Breaks: []models.BreakInterval{
			{Start: "12:00", End: "13:00"},
			{Start: "15:00", End: "15:30"},
		},
	}
	updated, err := svc.UpdateSchedule("prov-1", weekOf(day))
	require.NoError(t, err)
	require.NotNil(t, store.updated)
	assert.Equal(t, day.Breaks, updated.WorkingHours.Monday.Breaks)
}

func TestUpdateSchedule_RejectsBreakOutsideOpeningHours(t *testing.T) {
	svc, store := newScheduleService()

	cases := []models.BreakInterval{
		{Start: "08:00", End: "09:30"}, // starts before opening
		{Start: "16:30", End: "17:30"}, // runs past closing
		{Start: "07:00", End: "08:00"}, // entirely outside
	}
	for _, br := range cases {
		day := models.DaySchedule{Open: "09:00", Close: "17:00", Breaks: []models.BreakInterval{br}}
		_, err := svc.UpdateSchedule("prov-1", weekOf(day))
		require.Error(t, err, "break %s-%s", br.Start, br.End)
		assert.Contains(t, err.Error(), "outside opening hours")
	}
	assert.Nil(t, store.updated)
}

func TestUpdateSchedule_RejectsOverlappingBreaks(t *testing.T) {
	svc, store := newScheduleService()

	day := models.DaySchedule{
		Open: "09:00", Close: "17:00",
		Breaks: []models.BreakInterval{
			{Start: "12:00", End: "13:00"},
			{Start: "12:30", End: "14:00"},
		},
	}
	_, err := svc.UpdateSchedule("prov-1", weekOf(day))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
	assert.Nil(t, store.updated)

	// Back-to-back breaks share only an endpoint and are fine.
	day.Breaks = []models.BreakInterval{
		{Start: "12:00", End: "13:00"},
		{Start: "13:00", End: "13:30"},
	}
	_, err = svc.UpdateSchedule("prov-1", weekOf(day))
	assert.NoError(t, err)
}

func TestUpdateSchedule_RejectsInvertedOpeningHours(t *testing.T) {
	svc, _ := newScheduleService()

	day := models.DaySchedule{Open: "17:00", Close: "09:00"}
	_, err := svc.UpdateSchedule("prov-1", weekOf(day))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must precede")
}
