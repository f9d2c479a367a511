package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/coupon"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/authctx"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type GuestInfoParams struct {
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

type InspectionParams struct {
	Date  calendar.Date
	Time  string
	Guest GuestInfoParams
}

// WizardUseCase drives booking wizards on behalf of the signed-in user.
// Methods that find the wizard return its view even when they fail, unless
// the failure discarded it.
type WizardUseCase interface {
	Open(ctx context.Context, propertyID string) (*WizardView, error)
	Get(ctx context.Context, id uuid.UUID) (*WizardView, error)
	SelectDates(ctx context.Context, id uuid.UUID, checkIn, checkOut calendar.Date) (*WizardView, error)
	RetryAvailability(ctx context.Context, id uuid.UUID) (*WizardView, error)
	SetGuests(ctx context.Context, id uuid.UUID, n int) (*WizardView, error)
	SetGuestInfo(ctx context.Context, id uuid.UUID, p GuestInfoParams) (*WizardView, error)
	SetInspection(ctx context.Context, id uuid.UUID, p InspectionParams) (*WizardView, error)
	ApplyCoupon(ctx context.Context, id uuid.UUID, code string) (*WizardView, error)
	RemoveCoupon(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Next(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Back(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Submit(ctx context.Context, id uuid.UUID) (*WizardView, error)
	Close(ctx context.Context, id uuid.UUID) error
	ExpireIdle() int
}

type wizardUseCaseImpl struct {
	sessions     SessionStore
	profiles     ProfileCache
	profileAPI   ProfileAPI
	propertyAPI  PropertyAPI
	availability AvailabilityQueries
	validator    *ConflictValidator
	submitter    *SubmissionController
	catalog      *coupon.Catalog
	calc         *pricing.Calculator
	recorder     Recorder
	clock        clock.Clock
	loc          *time.Location
	logger       *slog.Logger
}

func NewWizardUseCase(
	sessions SessionStore,
	profiles ProfileCache,
	profileAPI ProfileAPI,
	propertyAPI PropertyAPI,
	availability AvailabilityQueries,
	validator *ConflictValidator,
	submitter *SubmissionController,
	catalog *coupon.Catalog,
	calc *pricing.Calculator,
	recorder Recorder,
	clk clock.Clock,
	cfg config.WizardConfig,
	logger *slog.Logger,
) WizardUseCase {
	return &wizardUseCaseImpl{
		sessions:     sessions,
		profiles:     profiles,
		profileAPI:   profileAPI,
		propertyAPI:  propertyAPI,
		availability: availability,
		validator:    validator,
		submitter:    submitter,
		catalog:      catalog,
		calc:         calc,
		recorder:     recorder,
		clock:        clk,
		loc:          cfg.Location(),
		logger:       logger,
	}
}

// Open requires a session and a loaded profile; nothing is created otherwise.
func (u *wizardUseCaseImpl) Open(ctx context.Context, propertyID string) (*WizardView, error) {
	sess, ok := authctx.FromContext(ctx)
	if !ok {
		return nil, ErrAuthRequired
	}
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return nil, ErrPropertyNotFound
	}

	profile, err := u.profile(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	prop, err := u.propertyAPI.GetProperty(ctx, propertyID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrAuth):
			u.profiles.Delete(sess.UserID)
			return nil, err
		case errs.Is(err, errs.ErrNotFound):
			return nil, ErrPropertyNotFound
		default:
			return nil, err
		}
	}

	w := booking.NewWizard(uuid.New(), profile, prop, u.calc, u.clock.Now())
	if w.Kind() == booking.KindStay {
		if _, err := u.availability.Prefetch(ctx, prop.ID()); err != nil {
			// The range check stays authoritative; only calendar hints are lost.
			u.logger.Warn("Availability window prefetch failed",
				slog.String("property_id", prop.ID()),
				slog.Any("error", err))
		}
	}

	ws := NewWizardSession(w)
	u.sessions.Put(w.ID(), ws)
	u.recorder.WizardEvent("opened")
	u.recorder.SetWizardsOpen(u.sessions.Len())
	u.logger.Info("Booking wizard opened",
		slog.String("wizard_id", w.ID().String()),
		slog.String("property_id", prop.ID()),
		slog.String("kind", string(w.Kind())))

	return u.view(ws), nil
}

// profile returns the cached profile or blocks on one fetch. Any failure to
// load it is an auth failure.
func (u *wizardUseCaseImpl) profile(ctx context.Context, userID string) (*user.Profile, error) {
	if p, ok := u.profiles.Get(userID); ok {
		return p, nil
	}
	p, err := u.profileAPI.GetProfile(ctx)
	if err != nil {
		u.logger.Warn("Profile load failed", slog.String("user_id", userID), slog.Any("error", err))
		if errs.Is(err, errs.ErrAuth) {
			return nil, ErrAuthRequired
		}
		return nil, ErrProfileUnavailable
	}
	if p.ID() != userID {
		return nil, ErrProfileUnavailable
	}
	u.profiles.Put(userID, p)
	return p, nil
}

func (u *wizardUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	ws, err := u.session(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.view(ws), nil
}

func (u *wizardUseCaseImpl) SelectDates(ctx context.Context, id uuid.UUID, checkIn, checkOut calendar.Date) (*WizardView, error) {
	ws, err := u.session(ctx, id)
	if err != nil {
		return nil, err
	}
	err = u.validator.Validate(ctx, ws, checkIn, checkOut)
	return u.result(ctx, id, ws, err)
}

func (u *wizardUseCaseImpl) RetryAvailability(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	ws, err := u.session(ctx, id)
	if err != nil {
		return nil, err
	}
	err = u.validator.Retry(ctx, ws)
	return u.result(ctx, id, ws, err)
}

func (u *wizardUseCaseImpl) SetGuests(ctx context.Context, id uuid.UUID, n int) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *booking.Wizard, now time.Time) error {
		return w.SetGuests(n, now)
	})
}

func (u *wizardUseCaseImpl) SetGuestInfo(ctx context.Context, id uuid.UUID, p GuestInfoParams) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *booking.Wizard, now time.Time) error {
		return w.SetGuestInfo(p.toDomain(), now)
	})
}

func (u *wizardUseCaseImpl) SetInspection(ctx context.Context, id uuid.UUID, p InspectionParams) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *booking.Wizard, now time.Time) error {
		insp := booking.Inspection{Date: p.Date, Time: p.Time}
		return w.SetInspection(insp, p.Guest.toDomain(), calendar.Today(now, u.loc), now)
	})
}

// ApplyCoupon leaves the draft untouched when the code is unknown.
func (u *wizardUseCaseImpl) ApplyCoupon(ctx context.Context, id uuid.UUID, code string) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *booking.Wizard, now time.Time) error {
		c, err := u.catalog.Resolve(code)
		if err != nil {
			return errs.Mark(err, ErrInvalidCoupon)
		}
		return w.ApplyCoupon(c, now)
	})
}

func (u *wizardUseCaseImpl) RemoveCoupon(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *booking.Wizard, now time.Time) error {
		return w.RemoveCoupon(now)
	})
}

func (u *wizardUseCaseImpl) Next(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *booking.Wizard, now time.Time) error {
		return w.Advance(now)
	})
}

func (u *wizardUseCaseImpl) Back(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	return u.mutate(ctx, id, func(w *booking.Wizard, now time.Time) error {
		return w.Back(now)
	})
}

func (u *wizardUseCaseImpl) Submit(ctx context.Context, id uuid.UUID) (*WizardView, error) {
	ws, err := u.session(ctx, id)
	if err != nil {
		return nil, err
	}
	err = u.submitter.Submit(ctx, ws, func(ctx context.Context, userID string) (*user.Profile, error) {
		return u.profile(ctx, userID)
	})
	return u.result(ctx, id, ws, err)
}

func (u *wizardUseCaseImpl) Close(ctx context.Context, id uuid.UUID) error {
	ws, err := u.session(ctx, id)
	if err != nil {
		return err
	}
	u.discard(id, ws, "closed")
	return nil
}

// ExpireIdle closes wizards whose idle time exceeded the session TTL.
func (u *wizardUseCaseImpl) ExpireIdle() int {
	expired := u.sessions.Sweep()
	now := u.clock.Now()
	for _, ws := range expired {
		_ = ws.with(func(w *booking.Wizard) error {
			w.Close(now)
			return nil
		})
		u.recorder.WizardEvent("expired")
	}
	if len(expired) > 0 {
		u.recorder.SetWizardsOpen(u.sessions.Len())
		u.logger.Info("Expired idle booking wizards", slog.Int("count", len(expired)))
	}
	return len(expired)
}

// session finds the caller's wizard. Wizards of other users are reported as
// missing.
func (u *wizardUseCaseImpl) session(ctx context.Context, id uuid.UUID) (*WizardSession, error) {
	sess, ok := authctx.FromContext(ctx)
	if !ok {
		return nil, ErrAuthRequired
	}
	ws, ok := u.sessions.Get(id)
	if !ok || ws.UserID() != sess.UserID {
		return nil, ErrWizardNotFound
	}
	return ws, nil
}

func (u *wizardUseCaseImpl) mutate(ctx context.Context, id uuid.UUID, fn func(w *booking.Wizard, now time.Time) error) (*WizardView, error) {
	ws, err := u.session(ctx, id)
	if err != nil {
		return nil, err
	}
	err = ws.with(func(w *booking.Wizard) error {
		return fn(w, u.clock.Now())
	})
	return u.result(ctx, id, ws, err)
}

// result discards the wizard on auth failures and otherwise pairs err with
// the current view.
func (u *wizardUseCaseImpl) result(ctx context.Context, id uuid.UUID, ws *WizardSession, err error) (*WizardView, error) {
	if err != nil && errs.Is(err, errs.ErrAuth) {
		if sess, ok := authctx.FromContext(ctx); ok {
			u.profiles.Delete(sess.UserID)
		}
		u.discard(id, ws, "auth_discarded")
		return nil, err
	}
	return u.view(ws), err
}

func (u *wizardUseCaseImpl) discard(id uuid.UUID, ws *WizardSession, event string) {
	_ = ws.with(func(w *booking.Wizard) error {
		w.Close(u.clock.Now())
		return nil
	})
	u.sessions.Delete(id)
	u.recorder.WizardEvent(event)
	u.recorder.SetWizardsOpen(u.sessions.Len())
	u.logger.Info("Booking wizard discarded", slog.String("wizard_id", id.String()), slog.String("reason", event))
}

func (u *wizardUseCaseImpl) view(ws *WizardSession) *WizardView {
	var v *WizardView
	_ = ws.with(func(w *booking.Wizard) error {
		v = newWizardView(w, u.availability.Cached(w.Property().ID()))
		return nil
	})
	return v
}

func (p GuestInfoParams) toDomain() booking.GuestInfo {
	return booking.GuestInfo{
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		SpecialRequests: p.SpecialRequests,
	}
}
