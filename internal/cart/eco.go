package cart

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rshade/greencart/internal/carbon"
)

// EcoBrand marks a line that is itself an eco-friendly alternative.
const EcoBrand = "Eco-Friendly"

// Generated alternatives cost a little more and emit 40% less, with a floor.
const (
	ecoFootprintShare = 0.6
	ecoSavingShare    = 0.4
	ecoMinFootprint   = 0.5
	ecoPointsPerKg    = 2
	ecoIDPrefix       = "eco-"
)

var ecoPremium = decimal.RequireFromString("0.50") //nolint:gochecknoglobals // constant decimal

// Alternative is the eco-friendly replacement offered for a cart line.
type Alternative struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	ImageURL          string          `json:"imageUrl"`
	CarbonFootprint   float64         `json:"carbonFootprint"`
	CarbonSaving      float64         `json:"carbonSaving"`
	GreenPointsReward int             `json:"greenPointsReward"`
}

// curated holds hand-picked alternatives for the first demo products.
//
//nolint:gochecknoglobals // immutable lookup table
var curated = map[string]Alternative{
	"1": {
		ID:                "eco-1",
		Name:              "Organic Bananas, 2 lb (Local Farm)",
		Price:             decimal.RequireFromString("3.48"),
		ImageURL:          "/banana.png",
		CarbonFootprint:   1.2,
		CarbonSaving:      0.9,
		GreenPointsReward: 15,
	},
	"2": {
		ID:                "eco-2",
		Name:              "Energy Star LED Bulb, 60W",
		Price:             decimal.RequireFromString("4.97"),
		ImageURL:          "/led.png",
		CarbonFootprint:   4.2,
		CarbonSaving:      4.3,
		GreenPointsReward: 25,
	},
	"3": {
		ID:                "eco-3",
		Name:              "Organic Whole Milk, 1 Gallon (Local Dairy)",
		Price:             decimal.RequireFromString("4.29"),
		ImageURL:          "/milk.png",
		CarbonFootprint:   8.5,
		CarbonSaving:      3.8,
		GreenPointsReward: 20,
	},
	"4": {
		ID:                "eco-4",
		Name:              "Organic Baby Spinach, 5 oz (Locally Grown)",
		Price:             decimal.RequireFromString("3.29"),
		ImageURL:          "/spinach.png",
		CarbonFootprint:   1.0,
		CarbonSaving:      0.8,
		GreenPointsReward: 12,
	},
	"5": {
		ID:                "eco-5",
		Name:              "100% Whole Wheat Bread, 20 oz (Organic)",
		Price:             decimal.RequireFromString("2.79"),
		ImageURL:          "/bread.png",
		CarbonFootprint:   2.1,
		CarbonSaving:      1.1,
		GreenPointsReward: 15,
	},
}

// Swappable reports whether a line can still be exchanged for an
// eco-friendly alternative.
func Swappable(it Item) bool {
	return it.Brand != EcoBrand
}

// EcoAlternative returns the curated alternative for the item, or generates
// one from its footprint.
func EcoAlternative(it Item) Alternative {
	if alt, ok := curated[it.ProductID]; ok {
		return alt
	}
	fp := it.CarbonFootprint
	return Alternative{
		ID:                ecoIDPrefix + it.ProductID,
		Name:              EcoBrand + " " + it.Name,
		Price:             it.Price.Add(ecoPremium),
		ImageURL:          productImage(it.Name),
		CarbonFootprint:   carbon.Round2(math.Max(ecoMinFootprint, fp*ecoFootprintShare)),
		CarbonSaving:      carbon.Round2(fp * ecoSavingShare),
		GreenPointsReward: int(math.Floor(fp * ecoPointsPerKg)),
	}
}

// productImage picks a stock image by keyword.
func productImage(name string) string {
	lower := strings.ToLower(name)
	for _, m := range []struct {
		keywords []string
		image    string
	}{
		{[]string{"banana"}, "/banana.png"},
		{[]string{"milk"}, "/milk.png"},
		{[]string{"led", "bulb"}, "/led.png"},
		{[]string{"spinach"}, "/spinach.png"},
		{[]string{"bread"}, "/bread.png"},
		{[]string{"detergent", "cleaner"}, "/cleaner.png"},
		{[]string{"t-shirt", "shirt"}, "/shirt.png"},
		{[]string{"earbuds", "headphones"}, "/headphones.png"},
		{[]string{"quinoa"}, "/quinoa.png"},
	} {
		for _, kw := range m.keywords {
			if strings.Contains(lower, kw) {
				return m.image
			}
		}
	}
	return "/placeholder.svg"
}
