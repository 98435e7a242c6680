package carbon

// Advisory texts returned by SuggestAlternatives.
const (
	SuggestBuyLocal          = "Consider buying local or organic alternatives"
	SuggestMinimalPackaging  = "Look for products with minimal packaging"
	SuggestPlantProtein      = "Try plant-based protein alternatives"
	SuggestSustainableSource = "Choose sustainably sourced options"
	SuggestRefurbished       = "Buy refurbished or second-hand when possible"
	SuggestEnergyEfficient   = "Look for energy-efficient models"
	SuggestRecyclablePack    = "Choose products with recyclable packaging"
	SuggestBulk              = "Buy in bulk to reduce packaging per unit"
)

const (
	highFootprintKg = 10.0
	heavyPackKg     = 1.0
)

// SuggestAlternatives returns advisory strings for p in a fixed rule order:
// high total footprint, meat and seafood, electronics, heavy packaging. Each
// rule contributes two distinct strings, so the result holds 0 to 8 entries.
// The result is nil when no rule applies.
func SuggestAlternatives(p Product) []string {
	fp := CalculateFootprint(p)

	var suggestions []string

	if fp.Total > highFootprintKg {
		suggestions = append(suggestions, SuggestBuyLocal, SuggestMinimalPackaging)
	}

	switch p.Category {
	case CategoryMeatSeafood:
		suggestions = append(suggestions, SuggestPlantProtein, SuggestSustainableSource)
	case CategoryElectronics:
		suggestions = append(suggestions, SuggestRefurbished, SuggestEnergyEfficient)
	}

	if fp.Breakdown.Packaging > heavyPackKg {
		suggestions = append(suggestions, SuggestRecyclablePack, SuggestBulk)
	}

	return suggestions
}
