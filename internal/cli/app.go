package cli

import (
	"github.com/rs/zerolog"

	"github.com/rshade/greencart/internal/cart"
	"github.com/rshade/greencart/internal/catalog"
	"github.com/rshade/greencart/internal/config"
	"github.com/rshade/greencart/internal/dashboard"
	"github.com/rshade/greencart/internal/httpapi"
	"github.com/rshade/greencart/internal/loyalty"
	"github.com/rshade/greencart/internal/vendor"
)

// newStore builds the product store, seeded with the demo catalog unless
// the config turns seeding off.
func newStore(cfg *config.Config) *catalog.Store {
	opts := []catalog.Option{
		catalog.WithLatency(cfg.Store.QueryLatency, cfg.Store.SaveLatency),
	}
	if cfg.Store.Seed {
		opts = append(opts, catalog.WithProducts(catalog.SeedProducts()))
	}
	return catalog.NewStore(opts...)
}

func newVendorClient(cfg *config.Config) *vendor.Client {
	return vendor.New(
		vendor.WithDelays(cfg.Vendor.FetchDelay, cfg.Vendor.CategoryDelay),
		vendor.WithMaxItems(cfg.Vendor.MaxItems),
		vendor.WithPriceJitter(cfg.Vendor.PriceJitter),
	)
}

// newAPIServer wires every service behind the HTTP API.
func newAPIServer(cfg *config.Config, log zerolog.Logger) *httpapi.Server {
	store := newStore(cfg)
	ledger := loyalty.NewLedger(loyalty.WithStartingBalance(cfg.Loyalty.StartingBalance))

	return httpapi.New(httpapi.Deps{
		Store:     store,
		Vendor:    newVendorClient(cfg),
		Carts:     cart.NewService(store, ledger),
		Ledger:    ledger,
		Dashboard: dashboard.New(store),
		Logger:    log,
	})
}
