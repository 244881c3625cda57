package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nafis/models"
	"nafis/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWizard returns canned results per method, enough to drive the HTTP
// mapping without Redis or Mongo.
type stubWizard struct {
	session    *booking.SessionView
	booking    *models.Booking
	slots      []string
	initiate   error
	get        error
	update     error
	advance    error
	back       error
	confirm    error
	cancel     error
	availError error
}

func (s *stubWizard) Initiate(context.Context) (*booking.SessionView, error) {
	return s.session, s.initiate
}

func (s *stubWizard) AvailableSlots(context.Context, string) ([]string, error) {
	return s.slots, s.availError
}

func (s *stubWizard) Get(context.Context, string) (*booking.SessionView, error) {
	return s.session, s.get
}

func (s *stubWizard) Update(context.Context, string, booking.UpdateInput) (*booking.SessionView, error) {
	return s.session, s.update
}

func (s *stubWizard) Advance(context.Context, string) (*booking.SessionView, error) {
	return s.session, s.advance
}

func (s *stubWizard) Back(context.Context, string) (*booking.SessionView, error) {
	return s.session, s.back
}

func (s *stubWizard) Confirm(context.Context, string) (*models.Booking, error) {
	return s.booking, s.confirm
}

func (s *stubWizard) Cancel(context.Context, string) error {
	return s.cancel
}

func wizardRouter(w *stubWizard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/booking/session", InitiateSessionHandler(w))
	r.GET("/api/booking/session/:sessionID", GetSessionHandler(w))
	r.PUT("/api/booking/session/:sessionID", UpdateSessionHandler(w))
	r.POST("/api/booking/session/:sessionID/confirm", ConfirmBookingHandler(w))
	r.GET("/api/booking/availability", AvailabilityHandler(w))
	return r
}

func TestInitiateSessionCreated(t *testing.T) {
	w := &stubWizard{session: &booking.SessionView{
		Session: models.BookingSession{ID: "abc", Step: models.StepServiceSelection},
	}}
	r := wizardRouter(w)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/booking/session", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body booking.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc", body.Session.ID)
	assert.Equal(t, models.StepServiceSelection, body.Session.Step)
}

func TestGetSessionNotFound(t *testing.T) {
	w := &stubWizard{get: booking.ErrSessionNotFound}
	r := wizardRouter(w)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/booking/session/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateSessionBadJSON(t *testing.T) {
	w := &stubWizard{}
	r := wizardRouter(w)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/booking/session/abc", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSessionValidationError(t *testing.T) {
	w := &stubWizard{update: &booking.ValidationError{Field: "date", Message: "outside the booking window"}}
	r := wizardRouter(w)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/booking/session/abc", strings.NewReader(`{"date":"2030-01-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "date")
}

func TestConfirmSlotConflict(t *testing.T) {
	w := &stubWizard{confirm: &booking.SlotUnavailableError{Date: "2024-06-05", Time: "10:00"}}
	r := wizardRouter(w)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/booking/session/abc/confirm", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestConfirmSubmissionFailure(t *testing.T) {
	w := &stubWizard{confirm: &booking.SubmissionError{Err: assert.AnError}}
	r := wizardRouter(w)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/booking/session/abc/confirm", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestConfirmReturnsBooking(t *testing.T) {
	w := &stubWizard{booking: &models.Booking{ID: "b1", Status: models.BookingStatusConfirmed}}
	r := wizardRouter(w)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/booking/session/abc/confirm", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"b1"`)
}

func TestAvailabilityRequiresDate(t *testing.T) {
	w := &stubWizard{}
	r := wizardRouter(w)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/booking/availability", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailabilityReturnsSlots(t *testing.T) {
	w := &stubWizard{slots: []string{"09:00", "09:30"}}
	r := wizardRouter(w)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/booking/availability?date=2024-06-05", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "09:30")
}
