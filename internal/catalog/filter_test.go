package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/greencart/internal/catalog"
)

func TestFilterByCategory(t *testing.T) {
	seed := catalog.SeedProducts()

	tests := []struct {
		slug string
		want int
	}{
		{slug: "", want: 16},
		{slug: catalog.SlugAll, want: 16},
		{slug: catalog.SlugGrocery, want: 9},
		{slug: catalog.SlugElectronics, want: 1},
		{slug: catalog.SlugClothing, want: 1},
		{slug: catalog.SlugHomeGarden, want: 5},
		{slug: "garden-gnomes", want: 16},
		{slug: "Dairy", want: 2},
		{slug: "Meat & Seafood", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Len(t, catalog.FilterByCategory(seed, tt.slug), tt.want)
		})
	}
}

func TestFilterByCategory_PreservesOrder(t *testing.T) {
	got := catalog.FilterByCategory(catalog.SeedProducts(), catalog.SlugHomeGarden)
	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"2", "6", "8", "12", "16"}, ids)
}

func TestSlugs(t *testing.T) {
	assert.Equal(t, catalog.SlugAll, catalog.Slugs()[0])
	assert.Len(t, catalog.Slugs(), 5)
}
