package catalog

import (
	"slices"

	"github.com/rshade/greencart/internal/carbon"
)

// Category filter slugs used by the storefront navigation.
const (
	SlugAll         = "all"
	SlugGrocery     = "grocery"
	SlugElectronics = "electronics"
	SlugClothing    = "clothing"
	SlugHomeGarden  = "home-garden"
)

//nolint:gochecknoglobals // immutable lookup table
var slugCategories = map[string][]string{
	SlugGrocery: {
		carbon.CategoryFreshProduce,
		carbon.CategoryDairy,
		carbon.CategoryPantry,
		carbon.CategoryBakery,
	},
	SlugElectronics: {carbon.CategoryElectronics},
	SlugClothing:    {carbon.CategoryClothing},
	SlugHomeGarden:  {carbon.CategoryHomeGarden},
}

// Slugs lists the navigation slugs in display order.
func Slugs() []string {
	return []string{SlugAll, SlugGrocery, SlugElectronics, SlugClothing, SlugHomeGarden}
}

// MatchesCategory reports whether category belongs under slug. "all", the
// empty slug and unknown slugs match everything; a slug equal to a category
// name matches that category.
func MatchesCategory(slug, category string) bool {
	if slug == "" || slug == SlugAll || slug == category {
		return true
	}
	cats, ok := slugCategories[slug]
	if !ok {
		return !isCategoryName(slug)
	}
	return slices.Contains(cats, category)
}

func isCategoryName(s string) bool {
	_, ok := carbon.FactorsFor(s)
	return ok
}

// FilterByCategory returns the products matching slug, preserving order.
func FilterByCategory(products []Product, slug string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if MatchesCategory(slug, p.Category) {
			out = append(out, p)
		}
	}
	return out
}
