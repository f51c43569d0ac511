package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ayurclinic/portal/internal/observability/metrics"
	"github.com/ayurclinic/portal/pkg/logging"
)

var bookingTracer = otel.Tracer("ayurclinic/booking")

// User-facing messages reproduced from the booking form.
const (
	MsgMissingFields = "Please fill all required fields"
	MsgBooked        = "Appointment booked successfully! You will receive a confirmation shortly."
	MsgConfirmed     = "Appointment confirmed successfully!"
	MsgCancelled     = "Appointment cancelled successfully!"
)

// ErrValidation wraps booking form rejections.
var ErrValidation = errors.New("booking: invalid request")

const dateLayout = "2006-01-02"

// Request carries the booking form fields. Doctor, date, time, and symptoms
// are required; type is optional.
type Request struct {
	Doctor   string
	Type     string
	Date     string // 2006-01-02
	Time     string // 15:04
	Symptoms string
}

// Service books appointments and drives the doctor-dashboard confirm and
// cancel actions.
type Service struct {
	repo    *Repository
	metrics *metrics.PortalMetrics
	logger  *logging.Logger
	// now is swappable in tests for the min-date check.
	now func() time.Time
}

// NewService constructs a booking service.
func NewService(repo *Repository, m *metrics.PortalMetrics, logger *logging.Logger) *Service {
	if repo == nil {
		panic("booking: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, metrics: m, logger: logger, now: time.Now}
}

// MinDate returns the earliest bookable date, today.
func (s *Service) MinDate() string {
	return s.now().Format(dateLayout)
}

// Book validates the request and stores a scheduled appointment. The
// returned message is the user-facing confirmation.
func (s *Service) Book(ctx context.Context, req Request) (Appointment, string, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.book")
	defer span.End()

	if req.Doctor == "" || req.Date == "" || req.Time == "" || req.Symptoms == "" {
		span.SetAttributes(attribute.Bool("booking.valid", false))
		return Appointment{}, "", errorf(MsgMissingFields)
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		span.SetAttributes(attribute.Bool("booking.valid", false))
		return Appointment{}, "", errorf("Invalid appointment date")
	}
	if date.Before(truncateToDay(s.now())) {
		span.SetAttributes(attribute.Bool("booking.valid", false))
		return Appointment{}, "", errorf("Appointment date cannot be in the past")
	}

	appt := Appointment{
		ID:        uuid.NewString(),
		Doctor:    req.Doctor,
		Type:      req.Type,
		Date:      req.Date,
		Time:      req.Time,
		Symptoms:  req.Symptoms,
		Status:    StatusScheduled,
		CreatedAt: s.now(),
	}
	s.repo.Insert(appt)

	span.SetAttributes(attribute.String("booking.id", appt.ID))
	s.metrics.ObserveBooking(string(StatusScheduled))
	s.logger.Info("appointment booked", "appointment_id", appt.ID, "doctor", appt.Doctor, "date", appt.Date)
	return appt, MsgBooked, nil
}

// Confirm marks a scheduled appointment confirmed.
func (s *Service) Confirm(ctx context.Context, id string) (string, error) {
	return s.transition(ctx, id, StatusConfirmed, MsgConfirmed)
}

// Cancel marks an appointment cancelled.
func (s *Service) Cancel(ctx context.Context, id string) (string, error) {
	return s.transition(ctx, id, StatusCancelled, MsgCancelled)
}

func (s *Service) transition(ctx context.Context, id string, status Status, msg string) (string, error) {
	_, span := bookingTracer.Start(ctx, "booking."+string(status))
	defer span.End()
	span.SetAttributes(attribute.String("booking.id", id))

	if err := s.repo.UpdateStatus(id, status); err != nil {
		span.RecordError(err)
		return "", err
	}
	s.metrics.ObserveBooking(string(status))
	s.logger.Info("appointment status updated", "appointment_id", id, "status", status)
	return msg, nil
}

// Appointments lists everything booked so far, newest last.
func (s *Service) Appointments() []Appointment {
	return s.repo.List()
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func errorf(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }
func (e *validationError) Unwrap() error { return ErrValidation }
