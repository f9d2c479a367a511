package usecase

import (
	"context"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/property"
	"estate-booking/internal/domain/user"

	"github.com/google/uuid"
)

type AvailabilityAPI interface {
	FetchUnavailable(ctx context.Context, propertyID string, start, end calendar.Date) (*availability.Window, error)
	CheckRange(ctx context.Context, propertyID string, checkIn, checkOut calendar.Date) (*availability.CheckResult, error)
}

type BookingAPI interface {
	CreateBooking(ctx context.Context, req booking.Request) (booking.Record, error)
	ListMyBookings(ctx context.Context) ([]booking.Record, error)
}

type ProfileAPI interface {
	GetProfile(ctx context.Context) (*user.Profile, error)
}

type PropertyAPI interface {
	GetProperty(ctx context.Context, propertyID string) (*property.Property, error)
}

type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, evt booking.CreatedEvent) error
}

type SessionStore interface {
	Put(id uuid.UUID, s *WizardSession)
	Get(id uuid.UUID) (*WizardSession, bool)
	Delete(id uuid.UUID) (*WizardSession, bool)
	Len() int
	Sweep() []*WizardSession
}

type ProfileCache interface {
	Put(userID string, p *user.Profile)
	Get(userID string) (*user.Profile, bool)
	Delete(userID string) (*user.Profile, bool)
}

type WindowCache interface {
	Put(propertyID string, w *availability.Window)
	Peek(propertyID string) (*availability.Window, bool)
}

// Recorder receives wizard metrics.
type Recorder interface {
	SetWizardsOpen(n int)
	WizardEvent(event string)
	AvailabilityCheck(result string)
	Submission(outcome string)
}
