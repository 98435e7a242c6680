package carbon

import (
	"math"
	"sort"
)

// CalculateFootprint estimates the carbon footprint of p.
//
// The factor row is looked up by category (unknown categories use Pantry).
// When p.Weight is set it is used as-is and the confidence is high; otherwise
// the weight is inferred as price times the category's price-to-weight ratio
// and the confidence is medium. Inputs are not validated: zero or negative
// prices and weights flow through the arithmetic unchanged.
//
// Example:
//
//	fp := CalculateFootprint(Product{Category: "Dairy", Price: 3.48})
//	// fp.Total == 3.86, fp.Breakdown.Production == 3.34
func CalculateFootprint(p Product) Footprint {
	factors, _ := FactorsFor(p.Category)

	weight, confidence := resolveWeight(p)

	production := weight * factors.Base
	transport := weight * factors.Transport
	packaging := weight * factors.Packaging

	// The total is taken from the raw components, not the rounded ones.
	total := production + transport + packaging

	return Footprint{
		Total: Round2(total),
		Breakdown: Breakdown{
			Production: Round2(production),
			Transport:  Round2(transport),
			Packaging:  Round2(packaging),
		},
		Category:   p.Category,
		Confidence: confidence,
	}
}

// EstimateWeight returns the weight CalculateFootprint would use for p.
func EstimateWeight(p Product) float64 {
	w, _ := resolveWeight(p)
	return w
}

func resolveWeight(p Product) (float64, Confidence) {
	if p.Weight != nil {
		return *p.Weight, ConfidenceHigh
	}
	return p.Price * PriceToWeightRatio(p.Category), ConfidenceMedium
}

// Round2 rounds v to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	const scale = 100
	return math.Round(v*scale) / scale
}

// Compare estimates every product and ranks them by ascending total footprint.
//
// Best is the lowest-footprint product and Worst the highest. Average is the
// mean of the (already rounded) per-product totals, rounded to two places.
// The relative order of products with equal footprints is unspecified.
// Compare returns ErrNoProducts for an empty slice.
func Compare(products []Product) (Comparison, error) {
	if len(products) == 0 {
		return Comparison{}, ErrNoProducts
	}

	ranked := make([]ScoredProduct, len(products))
	var sum float64
	for i, p := range products {
		total := CalculateFootprint(p).Total
		ranked[i] = ScoredProduct{Product: p, Footprint: total}
		sum += total
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Footprint < ranked[j].Footprint
	})

	return Comparison{
		Best:    ranked[0],
		Worst:   ranked[len(ranked)-1],
		Average: Round2(sum / float64(len(products))),
		Ranked:  ranked,
	}, nil
}
