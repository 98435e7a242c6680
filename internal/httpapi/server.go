// Package httpapi serves the storefront JSON API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/greencart/internal/cart"
	"github.com/rshade/greencart/internal/catalog"
	"github.com/rshade/greencart/internal/dashboard"
	"github.com/rshade/greencart/internal/logging"
	"github.com/rshade/greencart/internal/loyalty"
	"github.com/rshade/greencart/internal/vendor"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// ProductStore is the catalog the API reads and writes.
type ProductStore interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id string) (catalog.Product, error)
	Save(ctx context.Context, items []catalog.NewProduct) ([]catalog.Product, error)
}

// VendorFeed is the external product source used by scraping and the empty
// catalog fallback.
type VendorFeed interface {
	FetchAll(ctx context.Context) ([]vendor.Item, error)
	FetchByCategory(ctx context.Context, slug string) ([]vendor.Item, error)
}

// Deps are the services the API is wired to.
type Deps struct {
	Store     ProductStore
	Vendor    VendorFeed
	Carts     *cart.Service
	Ledger    *loyalty.Ledger
	Dashboard *dashboard.Service
	Logger    zerolog.Logger

	// Now is the clock used for fallback product timestamps.
	Now func() time.Time
}

// Server is the HTTP front end.
type Server struct {
	deps Deps
	log  zerolog.Logger
}

// New returns a server over deps.
func New(deps Deps) *Server {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Server{
		deps: deps,
		log:  logging.ComponentLogger(deps.Logger, "httpapi"),
	}
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /api/products", s.handleListProducts)
	mux.HandleFunc("GET /api/products/{id}/footprint", s.handleProductFootprint)
	mux.HandleFunc("POST /api/scrape", s.handleScrape)

	mux.HandleFunc("POST /api/footprint", s.handleFootprint)
	mux.HandleFunc("POST /api/footprint/compare", s.handleCompare)

	mux.HandleFunc("GET /api/cart", s.handleGetCart)
	mux.HandleFunc("POST /api/cart/items", s.handleAddItem)
	mux.HandleFunc("PATCH /api/cart/items/{id}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", s.handleRemoveItem)
	mux.HandleFunc("GET /api/cart/items/{id}/alternative", s.handleAlternative)
	mux.HandleFunc("POST /api/cart/items/{id}/swap", s.handleSwap)
	mux.HandleFunc("GET /api/cart/delivery", s.handleDeliveryOptions)
	mux.HandleFunc("POST /api/cart/delivery", s.handleSelectDelivery)
	mux.HandleFunc("POST /api/cart/checkout", s.handleCheckout)

	mux.HandleFunc("GET /api/points", s.handlePoints)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)

	return s.recoverMiddleware(s.loggingMiddleware(mux))
}

// Options are the listener settings for Run.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Run serves until ctx is cancelled, then shuts down gracefully. ready, if
// non-nil, receives the bound address once the listener is up.
func (s *Server) Run(ctx context.Context, opts Options, ready func(addr string)) error {
	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", opts.Addr, err)
	}

	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return s.log.WithContext(context.Background()) },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	addr := ln.Addr().String()
	s.log.Info().Str("addr", addr).Msg("greencart API listening")
	if ready != nil {
		ready(addr)
	}

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
