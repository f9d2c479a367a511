package components

import (
	"context"
	"log/slog"

	"estate-booking/internal/domain/coupon"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(RunSweeper),
)

var usecaseBaseOption = fx.Provide(
	coupon.DefaultCatalog,
	func(cfg config.Config) (*pricing.Calculator, error) {
		return pricing.NewCalculator(pricing.Rates{
			ServiceFeePercent: cfg.Wizard.ServiceFeePercent,
			TaxPercent:        cfg.Wizard.TaxPercent,
		})
	},
	func(cfg config.Config) config.WizardConfig {
		return cfg.Wizard
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		usecase.NewAvailabilityQueries,
		usecase.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewConflictValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewSubmissionController,
		usecase.NewWizardUseCase,
	),
)

// RunSweeper expires idle wizards in the background for the app's lifetime.
func RunSweeper(lc fx.Lifecycle, wizards usecase.WizardUseCase, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sweeper := usecase.NewSweeper(wizards, cfg.Wizard.SweepInterval)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			logger.Info("Wizard sweeper started", "interval", cfg.Wizard.SweepInterval, "ttl", cfg.Wizard.SessionTTL)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
