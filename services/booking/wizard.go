// File: services/booking/wizard.go
package booking

import (
	"context"
	"regexp"
	"time"

	bookingRepo "nafis/database/repository/booking"
	serviceRepo "nafis/database/repository/service"
	"nafis/models"
	"nafis/services/availability"
	"nafis/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultWizardService implements WizardService over a session store, the
// booking sink, and the treatment catalog.
type DefaultWizardService struct {
	store      SessionStore
	bookings   bookingRepo.BookingRepository
	catalog    serviceRepo.ServiceRepository
	calc       availability.Calculator
	windowDays int
	notifier   ConfirmationSender
	scheduler  ReminderScheduler

	// now is swapped out in tests.
	now func() time.Time
}

// NewDefaultWizardService wires the wizard. notifier and scheduler may be nil;
// confirmation then completes without email or reminder.
func NewDefaultWizardService(
	store SessionStore,
	bookings bookingRepo.BookingRepository,
	catalog serviceRepo.ServiceRepository,
	calc availability.Calculator,
	windowDays int,
	notifier ConfirmationSender,
	scheduler ReminderScheduler,
) *DefaultWizardService {
	return &DefaultWizardService{
		store:      store,
		bookings:   bookings,
		catalog:    catalog,
		calc:       calc,
		windowDays: windowDays,
		notifier:   notifier,
		scheduler:  scheduler,
		now:        time.Now,
	}
}

func (s *DefaultWizardService) Initiate(ctx context.Context) (*SessionView, error) {
	session := &models.BookingSession{
		ID:        uuid.NewString(),
		Step:      models.StepServiceSelection,
		CreatedAt: time.Now(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return &SessionView{Session: *session}, nil
}

// AvailableSlots returns the currently bookable slots for a calendar date,
// independent of any session.
func (s *DefaultWizardService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	target, err := time.ParseInLocation("2006-01-02", date, s.now().Location())
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	if !s.calc.InWindow(target, s.now(), s.windowDays) {
		return nil, &ValidationError{Field: "date", Message: "outside the booking window"}
	}
	return s.openSlots(ctx, date)
}

func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

func (s *DefaultWizardService) Update(ctx context.Context, sessionID string, input UpdateInput) (*SessionView, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmed {
		return nil, ErrSessionComplete
	}

	if input.ServiceID != nil {
		svc, err := s.catalog.GetByID(ctx, *input.ServiceID)
		if err == serviceRepo.ErrNotFound {
			return nil, &ValidationError{Field: "service", Message: "unknown service"}
		}
		if err != nil {
			return nil, err
		}
		if session.Draft.Service == nil || session.Draft.Service.ID != svc.ID {
			// Picking a different treatment invalidates the scheduled slot.
			session.Draft.Date = ""
			session.Draft.Time = ""
		}
		snapshot := svc.Snapshot()
		session.Draft.Service = &snapshot
	}

	if input.Date != nil {
		target, err := time.ParseInLocation("2006-01-02", *input.Date, s.now().Location())
		if err != nil {
			return nil, &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
		}
		if !s.calc.InWindow(target, s.now(), s.windowDays) {
			return nil, &ValidationError{Field: "date", Message: "outside the booking window"}
		}
		if session.Draft.Date != *input.Date {
			session.Draft.Time = ""
		}
		session.Draft.Date = *input.Date
	}

	if input.Time != nil {
		if session.Draft.Date == "" {
			return nil, &ValidationError{Field: "time", Message: "pick a date first"}
		}
		open, err := s.openSlots(ctx, session.Draft.Date)
		if err != nil {
			return nil, err
		}
		if !contains(open, *input.Time) {
			return nil, &SlotUnavailableError{Date: session.Draft.Date, Time: *input.Time}
		}
		session.Draft.Time = *input.Time
	}

	if input.Contact != nil {
		session.Draft.Contact = *input.Contact
	}
	if input.Preferences != nil {
		session.Draft.Preferences = *input.Preferences
	}
	if input.Attachments != nil {
		session.Draft.Attachments = *input.Attachments
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepServiceSelection:
		if session.Draft.Service == nil {
			return nil, &ValidationError{Field: "service", Message: "select a service"}
		}
	case models.StepDateTimeSelection:
		if session.Draft.Date == "" || session.Draft.Time == "" {
			return nil, &ValidationError{Field: "datetime", Message: "select a date and time"}
		}
	case models.StepContactInfo:
		if err := validateContact(session.Draft.Contact); err != nil {
			return nil, err
		}
	case models.StepReview:
		return nil, ErrConfirmRequired
	case models.StepConfirmed:
		return nil, ErrSessionComplete
	}

	session.Step = session.Step.Next()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmed {
		return nil, ErrSessionComplete
	}

	// Draft data survives going back; only the step moves.
	session.Step = session.Step.Prev()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmed {
		return nil, ErrSessionComplete
	}
	if session.Step != models.StepReview {
		return nil, &ValidationError{Field: "step", Message: "booking can only be confirmed from the review step"}
	}
	if session.Draft.Service == nil || session.Draft.Date == "" || session.Draft.Time == "" {
		return nil, &ValidationError{Field: "draft", Message: "incomplete booking"}
	}
	if err := validateContact(session.Draft.Contact); err != nil {
		return nil, err
	}

	// The slot may have lapsed or been taken since review was entered.
	open, err := s.openSlots(ctx, session.Draft.Date)
	if err != nil {
		return nil, err
	}
	if !contains(open, session.Draft.Time) {
		stale := &SlotUnavailableError{Date: session.Draft.Date, Time: session.Draft.Time}
		session.Draft.Time = ""
		session.Step = models.StepDateTimeSelection
		if saveErr := s.store.Save(ctx, session); saveErr != nil {
			utils.GetLogger().Warn("Failed to save session after slot invalidation", zap.Error(saveErr))
		}
		return nil, stale
	}

	now := time.Now()
	b := models.Booking{
		ID:          uuid.NewString(),
		Service:     *session.Draft.Service,
		Date:        session.Draft.Date,
		Time:        session.Draft.Time,
		Contact:     session.Draft.Contact,
		Preferences: session.Draft.Preferences,
		Attachments: session.Draft.Attachments,
		Amount:      session.Draft.Service.Price,
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// Session stays at review so the client can retry the submission.
		return nil, &SubmissionError{Err: err}
	}

	s.afterConfirm(b)

	session.Step = models.StepConfirmed
	if err := s.store.Delete(ctx, session.ID); err != nil {
		utils.GetLogger().Warn("Failed to discard confirmed session", zap.String("session_id", session.ID), zap.Error(err))
	}
	return &b, nil
}

func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	if _, err := s.store.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.store.Delete(ctx, sessionID)
}

// afterConfirm runs the best-effort side effects of a successful booking.
// Failures are logged and dropped; the booking itself already stands.
func (s *DefaultWizardService) afterConfirm(b models.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if s.notifier != nil {
			if err := s.notifier.SendBookingConfirmation(ctx, b); err != nil {
				utils.GetLogger().Warn("Confirmation email failed", zap.String("booking_id", b.ID), zap.Error(err))
			}
		}
		if s.scheduler != nil {
			if err := s.scheduler.ScheduleReminder(ctx, b); err != nil {
				utils.GetLogger().Warn("Reminder scheduling failed", zap.String("booking_id", b.ID), zap.Error(err))
			}
		}
	}()
}

// view recomputes the slot list for the drafted date and clears a drafted
// time that is no longer offered, mirroring the periodic client refresh.
func (s *DefaultWizardService) view(ctx context.Context, session *models.BookingSession) (*SessionView, error) {
	v := &SessionView{Session: *session}
	if session.Draft.Date == "" || session.Step == models.StepConfirmed {
		return v, nil
	}

	open, err := s.openSlots(ctx, session.Draft.Date)
	if err != nil {
		return nil, err
	}
	v.AvailableSlots = open

	if session.Draft.Time != "" && !contains(open, session.Draft.Time) {
		session.Draft.Time = ""
		if stepAfter(session.Step, models.StepDateTimeSelection) {
			session.Step = models.StepDateTimeSelection
		}
		if err := s.store.Save(ctx, session); err != nil {
			return nil, err
		}
		v.Session = *session
		v.SlotCleared = true
	}
	return v, nil
}

// openSlots is the availability sequence for date minus slots already held by
// live bookings. Cancelled bookings release their slot.
func (s *DefaultWizardService) openSlots(ctx context.Context, date string) ([]string, error) {
	now := s.now()
	target, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}

	slots, err := s.calc.SlotsFor(target, now)
	if err == availability.ErrPastDate {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	booked, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		if b.Status != models.BookingStatusCancelled {
			taken[b.Time] = true
		}
	}

	open := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !taken[slot] {
			open = append(open, slot)
		}
	}
	return open, nil
}

func validateContact(c models.ContactInfo) error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if !emailPattern.MatchString(c.Email) {
		return &ValidationError{Field: "email", Message: "valid email is required"}
	}
	if c.Phone == "" {
		return &ValidationError{Field: "phone", Message: "phone is required"}
	}
	return nil
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// stepAfter reports whether a comes after b in the wizard order.
func stepAfter(a, b models.WizardStep) bool {
	for cur := b; ; {
		next := cur.Next()
		if next == cur {
			return false
		}
		if next == a {
			return true
		}
		cur = next
	}
}
