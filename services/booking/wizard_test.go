// File: services/booking/wizard_test.go
package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	serviceRepo "nafis/database/repository/service"
	"nafis/models"
	"nafis/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSessionStore struct {
	sessions map[string]models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.BookingSession)}
}

func (m *memSessionStore) Get(_ context.Context, id string) (*models.BookingSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := s
	return &cp, nil
}

func (m *memSessionStore) Save(_ context.Context, session *models.BookingSession) error {
	session.UpdatedAt = time.Now()
	m.sessions[session.ID] = *session
	return nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

type memBookingSink struct {
	bookings   []models.Booking
	failCreate bool
}

func (m *memBookingSink) List(_ context.Context) ([]models.Booking, error) {
	return append([]models.Booking{}, m.bookings...), nil
}

func (m *memBookingSink) GetByID(_ context.Context, id string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			cp := m.bookings[i]
			return &cp, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memBookingSink) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingSink) Create(_ context.Context, booking models.Booking) error {
	if m.failCreate {
		return errors.New("write failed")
	}
	m.bookings = append(m.bookings, booking)
	return nil
}

func (m *memBookingSink) UpdateStatus(_ context.Context, id, status string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			cp := m.bookings[i]
			return &cp, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memBookingSink) Delete(_ context.Context, id string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type memCatalog struct {
	services map[string]models.Service
}

func (m *memCatalog) List(_ context.Context, _ models.ServiceFilter) ([]models.Service, int, error) {
	return nil, 0, nil
}

func (m *memCatalog) GetByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	return &svc, nil
}

func (m *memCatalog) Create(_ context.Context, _ models.Service) error { return nil }

func (m *memCatalog) Update(_ context.Context, _ models.Service) (*models.Service, error) {
	return nil, nil
}

func (m *memCatalog) Delete(_ context.Context, _ string) error { return nil }

func (m *memCatalog) Count(_ context.Context) (int64, error) { return 0, nil }

type recordingNotifier struct {
	sent chan string
}

func (r *recordingNotifier) SendBookingConfirmation(_ context.Context, b models.Booking) error {
	r.sent <- b.ID
	return nil
}

var testNow = time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

func newTestWizard(sink *memBookingSink, notifier ConfirmationSender) (*DefaultWizardService, *memSessionStore) {
	store := newMemSessionStore()
	catalog := &memCatalog{services: map[string]models.Service{
		"svc-relax": {
			ID:              "svc-relax",
			Name:            "Relaxation Reflexology",
			DurationMinutes: 60,
			Price:           75,
			Category:        models.CategoryRelaxation,
			IsActive:        true,
		},
		"svc-deep": {
			ID:              "svc-deep",
			Name:            "Deep Tissue Foot Work",
			DurationMinutes: 90,
			Price:           95,
			Category:        models.CategoryTherapeutic,
			IsActive:        true,
		},
	}}
	calc := availability.NewCalculator(availability.BusinessHours{OpenHour: 9, CloseHour: 18})
	svc := NewDefaultWizardService(store, sink, catalog, calc, 30, notifier, nil)
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func str(s string) *string { return &s }

func completeDraft(t *testing.T, svc *DefaultWizardService, date, slot string) string {
	t.Helper()
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := view.Session.ID

	_, err = svc.Update(ctx, id, UpdateInput{ServiceID: str("svc-relax")})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.Update(ctx, id, UpdateInput{Date: str(date)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, id, UpdateInput{Time: str(slot)})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.Update(ctx, id, UpdateInput{Contact: &models.ContactInfo{
		Name:  "Jordan Miles",
		Email: "jordan@example.com",
		Phone: "555-0134",
	}})
	require.NoError(t, err)
	view, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.StepReview, view.Session.Step)

	return id
}

func TestWizardHappyPath(t *testing.T) {
	sink := &memBookingSink{}
	notifier := &recordingNotifier{sent: make(chan string, 1)}
	svc, store := newTestWizard(sink, notifier)
	ctx := context.Background()

	id := completeDraft(t, svc, "2024-06-05", "10:00")

	b, err := svc.Confirm(ctx, id)
	require.NoError(t, err)

	require.Len(t, sink.bookings, 1)
	assert.Equal(t, b.ID, sink.bookings[0].ID)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, "Relaxation Reflexology", b.Service.Name)
	assert.Equal(t, 75.0, b.Amount)
	assert.Equal(t, "2024-06-05", b.Date)
	assert.Equal(t, "10:00", b.Time)

	// Session is discarded once the booking lands.
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, store.sessions)

	select {
	case sentID := <-notifier.sent:
		assert.Equal(t, b.ID, sentID)
	case <-time.After(time.Second):
		t.Fatal("confirmation email never sent")
	}
}

func TestAdvanceRequiresService(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, view.Session.ID)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "service", verr.Field)
}

func TestAdvanceRequiresDateAndTime(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := view.Session.ID

	_, err = svc.Update(ctx, id, UpdateInput{ServiceID: str("svc-relax")})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.Update(ctx, id, UpdateInput{Date: str("2024-06-05")})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "datetime", verr.Field)
}

func TestAdvanceValidatesContact(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := view.Session.ID

	_, err = svc.Update(ctx, id, UpdateInput{ServiceID: str("svc-relax")})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.Update(ctx, id, UpdateInput{Date: str("2024-06-05"), Time: str("10:00")})
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.Update(ctx, id, UpdateInput{Contact: &models.ContactInfo{
		Name:  "Jordan Miles",
		Email: "not-an-email",
		Phone: "555-0134",
	}})
	require.NoError(t, err)

	_, err = svc.Advance(ctx, id)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestNewDateClearsTime(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := view.Session.ID

	_, err = svc.Update(ctx, id, UpdateInput{ServiceID: str("svc-relax")})
	require.NoError(t, err)
	_, err = svc.Update(ctx, id, UpdateInput{Date: str("2024-06-05"), Time: str("10:00")})
	require.NoError(t, err)

	view, err = svc.Update(ctx, id, UpdateInput{Date: str("2024-06-06")})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-06", view.Session.Draft.Date)
	assert.Empty(t, view.Session.Draft.Time)
}

func TestNewServiceClearsSchedule(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := view.Session.ID

	_, err = svc.Update(ctx, id, UpdateInput{ServiceID: str("svc-relax")})
	require.NoError(t, err)
	_, err = svc.Update(ctx, id, UpdateInput{Date: str("2024-06-05"), Time: str("10:00")})
	require.NoError(t, err)

	view, err = svc.Update(ctx, id, UpdateInput{ServiceID: str("svc-deep")})
	require.NoError(t, err)
	assert.Equal(t, "svc-deep", view.Session.Draft.Service.ID)
	assert.Empty(t, view.Session.Draft.Date)
	assert.Empty(t, view.Session.Draft.Time)
}

func TestBookedSlotIsNotOffered(t *testing.T) {
	sink := &memBookingSink{bookings: []models.Booking{{
		ID:     "existing",
		Date:   "2024-06-05",
		Time:   "10:00",
		Status: models.BookingStatusConfirmed,
	}}}
	svc, _ := newTestWizard(sink, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := view.Session.ID

	_, err = svc.Update(ctx, id, UpdateInput{ServiceID: str("svc-relax")})
	require.NoError(t, err)
	view, err = svc.Update(ctx, id, UpdateInput{Date: str("2024-06-05")})
	require.NoError(t, err)
	assert.NotContains(t, view.AvailableSlots, "10:00")
	assert.Contains(t, view.AvailableSlots, "10:30")

	_, err = svc.Update(ctx, id, UpdateInput{Time: str("10:00")})
	var serr *SlotUnavailableError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "10:00", serr.Time)
}

func TestCancelledBookingReleasesSlot(t *testing.T) {
	sink := &memBookingSink{bookings: []models.Booking{{
		ID:     "cancelled",
		Date:   "2024-06-05",
		Time:   "10:00",
		Status: models.BookingStatusCancelled,
	}}}
	svc, _ := newTestWizard(sink, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := view.Session.ID

	_, err = svc.Update(ctx, id, UpdateInput{ServiceID: str("svc-relax")})
	require.NoError(t, err)
	view, err = svc.Update(ctx, id, UpdateInput{Date: str("2024-06-05")})
	require.NoError(t, err)
	assert.Contains(t, view.AvailableSlots, "10:00")
}

func TestConfirmRacingSlotLoss(t *testing.T) {
	sink := &memBookingSink{}
	svc, _ := newTestWizard(sink, nil)
	ctx := context.Background()

	id := completeDraft(t, svc, "2024-06-05", "10:00")

	// A competitor lands the same slot between review and confirm.
	sink.bookings = append(sink.bookings, models.Booking{
		ID:     "rival",
		Date:   "2024-06-05",
		Time:   "10:00",
		Status: models.BookingStatusConfirmed,
	})

	_, err := svc.Confirm(ctx, id)
	var serr *SlotUnavailableError
	require.ErrorAs(t, err, &serr)

	// The session survives, pulled back to slot selection with time cleared.
	view, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTimeSelection, view.Session.Step)
	assert.Empty(t, view.Session.Draft.Time)
	assert.Equal(t, "2024-06-05", view.Session.Draft.Date)
	require.Len(t, sink.bookings, 1)
}

func TestConfirmSubmissionFailureKeepsSession(t *testing.T) {
	sink := &memBookingSink{failCreate: true}
	svc, _ := newTestWizard(sink, nil)
	ctx := context.Background()

	id := completeDraft(t, svc, "2024-06-05", "10:00")

	_, err := svc.Confirm(ctx, id)
	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)

	// Retry succeeds once the sink recovers, from the untouched session.
	view, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.StepReview, view.Session.Step)

	sink.failCreate = false
	b, err := svc.Confirm(ctx, id)
	require.NoError(t, err)
	require.Len(t, sink.bookings, 1)
	assert.Equal(t, b.ID, sink.bookings[0].ID)
}

func TestBackPreservesDraft(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	id := completeDraft(t, svc, "2024-06-05", "10:00")

	view, err := svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepContactInfo, view.Session.Step)
	assert.Equal(t, "Jordan Miles", view.Session.Draft.Contact.Name)
	assert.Equal(t, "10:00", view.Session.Draft.Time)

	// Back at the first step is a no-op.
	for i := 0; i < 5; i++ {
		view, err = svc.Back(ctx, id)
		require.NoError(t, err)
	}
	assert.Equal(t, models.StepServiceSelection, view.Session.Step)
	assert.Equal(t, "svc-relax", view.Session.Draft.Service.ID)
}

func TestAdvanceAtReviewRequiresConfirm(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	id := completeDraft(t, svc, "2024-06-05", "10:00")

	_, err := svc.Advance(ctx, id)
	assert.ErrorIs(t, err, ErrConfirmRequired)
}

func TestConfirmOutsideReviewRejected(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, view.Session.ID)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "step", verr.Field)
}

func TestViewClearsLapsedSlot(t *testing.T) {
	sink := &memBookingSink{}
	svc, _ := newTestWizard(sink, nil)
	ctx := context.Background()

	id := completeDraft(t, svc, "2024-06-05", "10:00")

	// Time moves past the drafted slot's day start; 10:00 lapses once the
	// clock reads 2024-06-05 10:30.
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 5, 10, 30, 0, 0, time.UTC)
	}

	view, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, view.SlotCleared)
	assert.Empty(t, view.Session.Draft.Time)
	assert.Equal(t, models.StepDateTimeSelection, view.Session.Step)
	assert.NotContains(t, view.AvailableSlots, "10:00")
}

func TestCancelDiscardsSession(t *testing.T) {
	svc, store := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, view.Session.ID))
	assert.Empty(t, store.sessions)

	err = svc.Cancel(ctx, view.Session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUnknownSessionID(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Advance(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Confirm(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUnknownServiceRejected(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)

	_, err = svc.Update(ctx, view.Session.ID, UpdateInput{ServiceID: str("svc-ghost")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "service", verr.Field)
}

func TestAvailableSlots(t *testing.T) {
	sink := &memBookingSink{bookings: []models.Booking{{
		ID:     "existing",
		Date:   "2024-06-05",
		Time:   "09:00",
		Status: models.BookingStatusConfirmed,
	}}}
	svc, _ := newTestWizard(sink, nil)
	ctx := context.Background()

	slots, err := svc.AvailableSlots(ctx, "2024-06-05")
	require.NoError(t, err)
	assert.Len(t, slots, 18)
	assert.NotContains(t, slots, "09:00")
	assert.Contains(t, slots, "09:30")

	_, err = svc.AvailableSlots(ctx, "2025-01-01")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.AvailableSlots(ctx, "not-a-date")
	require.ErrorAs(t, err, &verr)
}

func TestDateOutsideWindowRejected(t *testing.T) {
	svc, _ := newTestWizard(&memBookingSink{}, nil)
	ctx := context.Background()

	view, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := view.Session.ID

	_, err = svc.Update(ctx, id, UpdateInput{ServiceID: str("svc-relax")})
	require.NoError(t, err)

	for _, date := range []string{"2024-05-31", "2024-07-02"} {
		_, err = svc.Update(ctx, id, UpdateInput{Date: str(date)})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "date %s", date)
		assert.Equal(t, "date", verr.Field)
	}

	// The last day of the 30-day window is still bookable.
	_, err = svc.Update(ctx, id, UpdateInput{Date: str("2024-06-30")})
	require.NoError(t, err)
}
