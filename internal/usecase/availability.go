package usecase

import (
	"context"
	"log/slog"
	"time"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
)

// maxCalendarDays bounds a single calendar request.
const maxCalendarDays = 366

type AvailabilityQueries interface {
	// Calendar fetches the unavailable dates of [start, end]; zero bounds
	// default to the rolling window starting today.
	Calendar(ctx context.Context, propertyID string, start, end calendar.Date) (*availability.Window, error)
	Prefetch(ctx context.Context, propertyID string) (*availability.Window, error)
	Cached(propertyID string) *availability.Window
}

type availabilityQueriesImpl struct {
	api        AvailabilityAPI
	cache      WindowCache
	clock      clock.Clock
	loc        *time.Location
	windowDays int
	logger     *slog.Logger
}

func NewAvailabilityQueries(api AvailabilityAPI, cache WindowCache, clk clock.Clock, cfg config.WizardConfig, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		api:        api,
		cache:      cache,
		clock:      clk,
		loc:        cfg.Location(),
		windowDays: cfg.AvailabilityWindowDays,
		logger:     logger,
	}
}

func (a *availabilityQueriesImpl) Calendar(ctx context.Context, propertyID string, start, end calendar.Date) (*availability.Window, error) {
	if start.IsZero() {
		start = calendar.Today(a.clock.Now(), a.loc)
	}
	if end.IsZero() {
		end = start.AddDays(a.windowDays)
	}
	if end.Before(start) || start.DaysUntil(end) > maxCalendarDays {
		return nil, ErrInvalidDateRange
	}

	w, err := a.api.FetchUnavailable(ctx, propertyID, start, end)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	// Whole-window replacement: a window is never patched.
	a.cache.Put(propertyID, w)
	return w, nil
}

func (a *availabilityQueriesImpl) Prefetch(ctx context.Context, propertyID string) (*availability.Window, error) {
	return a.Calendar(ctx, propertyID, calendar.Date{}, calendar.Date{})
}

func (a *availabilityQueriesImpl) Cached(propertyID string) *availability.Window {
	w, ok := a.cache.Peek(propertyID)
	if !ok {
		return nil
	}
	return w
}
