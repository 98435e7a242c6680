package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rshade/greencart/internal/carbon"
	"github.com/rshade/greencart/internal/catalog"
	"github.com/rshade/greencart/internal/logging"
	"github.com/rshade/greencart/internal/vendor"
)

type productsResponse struct {
	Products []catalog.EnrichedProduct `json:"products"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type productFootprintResponse struct {
	Product     catalog.EnrichedProduct `json:"product"`
	Footprint   carbon.Footprint        `json:"footprint"`
	Rating      carbon.Rating           `json:"rating"`
	Suggestions []string                `json:"suggestions"`
	Equivalency carbon.Equivalency      `json:"equivalency"`
	Formatted   string                  `json:"formatted"`
}

// handleListProducts returns the catalog filtered by ?category. An empty
// catalog falls back to the vendor feed.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx)

	slug := r.URL.Query().Get("category")
	if slug == "" {
		slug = catalog.SlugAll
	}

	products, err := s.deps.Store.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch products")
		writeError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	if len(products) == 0 {
		log.Info().Str("category", slug).Msg("no products in store, fetching from vendor")
		items, fetchErr := s.deps.Vendor.FetchByCategory(ctx, slug)
		if fetchErr != nil {
			log.Error().Err(fetchErr).Msg("failed to fetch products")
			writeError(w, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		products = s.fallbackProducts(items)
	} else {
		products = catalog.FilterByCategory(products, slug)
	}

	writeJSON(w, http.StatusOK, productsResponse{Products: catalog.EnrichAll(products)})
}

// fallbackProducts turns vendor items into unsaved catalog products with
// IDs target-1, target-2, ...
func (s *Server) fallbackProducts(items []vendor.Item) []catalog.Product {
	now := s.deps.Now().UTC()
	out := make([]catalog.Product, len(items))
	for i, it := range items {
		np := it.NewProduct()
		out[i] = catalog.Product{
			ID:          fmt.Sprintf("target-%d", i+1),
			Name:        np.Name,
			Description: np.Description,
			Price:       np.Price,
			ImageURL:    np.ImageURL,
			StoreURL:    np.StoreURL,
			Category:    np.Category,
			Brand:       np.Brand,
			CreatedAt:   now,
		}
	}
	return out
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx)
	log.Info().Msg("starting product scraping")

	items, err := s.deps.Vendor.FetchAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("scraping failed")
		writeError(w, http.StatusInternalServerError, "Failed to scrape products")
		return
	}
	if len(items) == 0 {
		writeError(w, http.StatusBadRequest, "No products were scraped")
		return
	}

	if _, err = s.deps.Store.Save(ctx, vendor.NewProducts(items)); err != nil {
		log.Error().Err(err).Msg("saving scraped products failed")
		writeError(w, http.StatusInternalServerError, "Failed to scrape products")
		return
	}

	log.Info().Int("count", len(items)).Msg("scraped and saved products")
	writeJSON(w, http.StatusOK, scrapeResponse{
		Success: true,
		Count:   len(items),
		Message: fmt.Sprintf("Successfully scraped %d products", len(items)),
	})
}

func (s *Server) handleProductFootprint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := s.deps.Store.Get(ctx, r.PathValue("id"))
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Product not found")
		return
	case err != nil:
		logging.FromContext(ctx).Error().Err(err).Msg("failed to fetch product")
		writeError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	enriched := catalog.Enrich(p)
	fp := *enriched.CarbonFootprint
	eq, err := carbon.Equivalencies(fp)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, productFootprintResponse{
		Product:     enriched,
		Footprint:   enriched.Estimate,
		Rating:      enriched.Rating,
		Suggestions: enriched.Suggestions,
		Equivalency: eq,
		Formatted:   carbon.FormatKg(fp),
	})
}
