package components

import (
	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/infra/memstore"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewSessionStore,
			fx.As(new(usecase.SessionStore)),
		),
		fx.Annotate(
			NewProfileCache,
			fx.As(new(usecase.ProfileCache)),
		),
		fx.Annotate(
			NewWindowCache,
			fx.As(new(usecase.WindowCache)),
		),
	),
)

func NewSessionStore(cfg config.Config, clk clock.Clock) *memstore.Store[uuid.UUID, *usecase.WizardSession] {
	return memstore.New[uuid.UUID, *usecase.WizardSession](cfg.Wizard.SessionTTL, clk)
}

// Profiles live as long as an idle wizard would.
func NewProfileCache(cfg config.Config, clk clock.Clock) *memstore.Store[string, *user.Profile] {
	return memstore.New[string, *user.Profile](cfg.Wizard.SessionTTL, clk)
}

// Windows are replaced by every fetch and never expire on their own.
func NewWindowCache(clk clock.Clock) *memstore.Store[string, *availability.Window] {
	return memstore.New[string, *availability.Window](0, clk)
}
