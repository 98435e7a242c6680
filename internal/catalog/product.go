// Package catalog holds the storefront's product list.
//
// The Store is an in-memory stand-in for a database: an insertion-ordered,
// append-only list of products with optional artificial latency so callers
// exercise the same loading paths a real backend would.
package catalog

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rshade/greencart/internal/carbon"
)

// Product is a catalog entry.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	StoreURL    string          `json:"walmartUrl"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`

	// Weight in kg, when known.
	Weight *float64 `json:"weight,omitempty"`

	// CarbonFootprint is the stored kg CO2e figure, if any.
	CarbonFootprint *float64 `json:"carbonFootprint,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewProduct is a product before it has been assigned an ID.
type NewProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	StoreURL    string
	Category    string
	Brand       string
	Weight      *float64
}

// MarshalJSON renders Price as a JSON number rather than decimal's default
// quoted string.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias

		Price float64 `json:"price"`
	}{
		alias: alias(p),
		Price: p.Price.InexactFloat64(),
	})
}

// EstimatorInput converts p into the carbon estimator's input.
func (p Product) EstimatorInput() carbon.Product {
	return carbon.Product{
		Name:     p.Name,
		Category: p.Category,
		Weight:   p.Weight,
		Price:    p.Price.InexactFloat64(),
		Brand:    p.Brand,
	}
}

// Footprint returns the stored footprint, or the estimator's total when the
// product has none.
func (p Product) Footprint() float64 {
	if p.CarbonFootprint != nil {
		return *p.CarbonFootprint
	}
	return carbon.CalculateFootprint(p.EstimatorInput()).Total
}

// EnrichedProduct is a product with its carbon analysis attached.
type EnrichedProduct struct {
	Product

	Estimate    carbon.Footprint `json:"estimate"`
	Rating      carbon.Rating    `json:"rating"`
	Class       carbon.Class     `json:"footprintClass"`
	Suggestions []string         `json:"suggestions"`
}

// MarshalJSON keeps the embedded Product's price encoding while adding the
// analysis fields.
func (e EnrichedProduct) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(e.Product)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	extra := map[string]any{
		"estimate":       e.Estimate,
		"rating":         e.Rating,
		"footprintClass": e.Class,
		"suggestions":    e.Suggestions,
	}
	for k, v := range extra {
		raw, marshalErr := json.Marshal(v)
		if marshalErr != nil {
			return nil, marshalErr
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}

// Enrich runs the estimator over p. A product without a stored footprint
// gets the estimated total as its CarbonFootprint.
func Enrich(p Product) EnrichedProduct {
	input := p.EstimatorInput()
	est := carbon.CalculateFootprint(input)

	if p.CarbonFootprint == nil {
		total := est.Total
		p.CarbonFootprint = &total
	}
	fp := *p.CarbonFootprint

	suggestions := carbon.SuggestAlternatives(input)
	if suggestions == nil {
		suggestions = []string{}
	}

	return EnrichedProduct{
		Product:     p,
		Estimate:    est,
		Rating:      carbon.RatingFor(fp),
		Class:       carbon.FootprintClass(fp),
		Suggestions: suggestions,
	}
}

// EnrichAll enriches every product, preserving order.
func EnrichAll(products []Product) []EnrichedProduct {
	out := make([]EnrichedProduct, len(products))
	for i, p := range products {
		out[i] = Enrich(p)
	}
	return out
}
