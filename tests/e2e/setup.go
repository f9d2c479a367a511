//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"estate-booking/cmd/bootstrap"
	"estate-booking/cmd/bootstrap/components"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/config"
	"estate-booking/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const (
	ShortletID = "prop-shortlet"
	RentalID   = "prop-rental"

	GuestUserID = "user-1"
)

// ------------------------------------------------------------
// Per-suite environment: fake marketplace plus the full fx graph
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*FakeMarketplace, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	market := NewFakeMarketplace()
	t.Cleanup(market.Close)
	seedMarketplace(market)

	router, cfg, app := buildE2EApp(market.URL())
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx app", "error", err.Error())
		}
	})

	return market, router, cfg
}

func seedMarketplace(m *FakeMarketplace) {
	m.AddProperty(FakeProperty{
		ID:            ShortletID,
		Title:         "Lekki Phase 1 Apartment",
		ListingType:   "shortlet",
		PricePerNight: pricing.Naira(20000),
		MaxGuests:     4,
	})
	m.AddProperty(FakeProperty{
		ID:            RentalID,
		Title:         "Yaba 2-Bedroom Flat",
		ListingType:   "rental",
		InspectionFee: pricing.Naira(5000),
	})
}

// ------------------------------------------------------------
// Builds the app the way main does, minus the HTTP listener
// ------------------------------------------------------------
func buildE2EApp(marketplaceURL string) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(marketplaceURL)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.StoreModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, cfg, app
}

func createTestConfig(marketplaceURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Marketplace.BaseURL = marketplaceURL
	return testConfig
}

// ------------------------------------------------------------
// Common setup shared by the e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router      *gin.Engine
	Marketplace *FakeMarketplace
	Config      config.Config
	Token       string
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	market, router, cfg := setupE2EEnvironment(t)
	s.Marketplace = market
	s.Router = router
	s.Config = cfg
	s.Token = authtest.NewJWTHelper(cfg.JWT).GenerateToken(t, GuestUserID, user.RoleGuest)
	market.AddUser(s.Token, GuestUserID, "Ada", "Obi", "ada@example.com", "+2348012345678")
	require.NotEmpty(t, s.Config, "config was not populated")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Marketplace.Reset()
}
