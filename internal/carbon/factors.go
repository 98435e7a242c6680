package carbon

import "strings"

// Category names recognised by the factor tables.
const (
	CategoryFreshProduce = "Fresh Produce"
	CategoryDairy        = "Dairy"
	CategoryMeatSeafood  = "Meat & Seafood"
	CategoryPantry       = "Pantry"
	CategoryBakery       = "Bakery"
	CategoryHomeGarden   = "Home & Garden"
	CategoryElectronics  = "Electronics"
	CategoryClothing     = "Clothing"
)

// DefaultCategory is the factor row used for unrecognised categories.
const DefaultCategory = CategoryPantry

// DefaultPriceToWeightRatio is the kg-per-currency-unit ratio used for
// unrecognised categories. It is deliberately not the Pantry ratio.
const DefaultPriceToWeightRatio = 0.3

// Factors are the per-kg emission coefficients of one category, in kg CO2e
// per kg of product.
type Factors struct {
	Base      float64 `json:"baseFactor"`
	Transport float64 `json:"transportFactor"`
	Packaging float64 `json:"packagingFactor"`
}

//nolint:gochecknoglobals // Read-only lookup table.
var carbonFactors = map[string]Factors{
	CategoryFreshProduce: {Base: 0.5, Transport: 0.2, Packaging: 0.1},
	CategoryDairy:        {Base: 3.2, Transport: 0.3, Packaging: 0.2},
	CategoryMeatSeafood:  {Base: 15.0, Transport: 0.5, Packaging: 0.3},
	CategoryPantry:       {Base: 1.8, Transport: 0.4, Packaging: 0.3},
	CategoryBakery:       {Base: 2.1, Transport: 0.2, Packaging: 0.2},
	CategoryHomeGarden:   {Base: 5.0, Transport: 0.8, Packaging: 0.5},
	CategoryElectronics:  {Base: 25.0, Transport: 1.0, Packaging: 1.5},
	CategoryClothing:     {Base: 8.0, Transport: 0.6, Packaging: 0.4},
}

// priceToWeightRatios are rough kg-per-currency-unit ratios, e.g. Dairy at
// 0.3 means about 3.33 per kg.
//
//nolint:gochecknoglobals // Read-only lookup table.
var priceToWeightRatios = map[string]float64{
	CategoryFreshProduce: 0.5,
	CategoryDairy:        0.3,
	CategoryMeatSeafood:  0.1,
	CategoryPantry:       0.4,
	CategoryBakery:       0.2,
	CategoryHomeGarden:   0.05,
	CategoryElectronics:  0.01,
	CategoryClothing:     0.02,
}

// categoryOrder fixes the listing order of Categories.
//
//nolint:gochecknoglobals // Read-only lookup table.
var categoryOrder = []string{
	CategoryFreshProduce,
	CategoryDairy,
	CategoryMeatSeafood,
	CategoryPantry,
	CategoryBakery,
	CategoryHomeGarden,
	CategoryElectronics,
	CategoryClothing,
}

// FactorsFor returns the factor row for category, falling back to the
// DefaultCategory row. The boolean reports whether category was recognised.
func FactorsFor(category string) (Factors, bool) {
	if f, ok := carbonFactors[category]; ok {
		return f, true
	}
	return carbonFactors[DefaultCategory], false
}

// PriceToWeightRatio returns the ratio used to infer weight from price,
// falling back to DefaultPriceToWeightRatio.
func PriceToWeightRatio(category string) float64 {
	if r, ok := priceToWeightRatios[category]; ok {
		return r
	}
	return DefaultPriceToWeightRatio
}

// Categories returns the recognised category names in display order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory resolves a user-supplied category name case-insensitively.
// It returns the canonical name and true, or the input unchanged and false.
func ParseCategory(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	for _, c := range categoryOrder {
		if strings.EqualFold(c, trimmed) {
			return c, true
		}
	}
	return s, false
}
