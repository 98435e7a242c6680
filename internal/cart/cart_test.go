package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greencart/internal/cart"
	"github.com/rshade/greencart/internal/catalog"
)

// seedProduct returns the demo catalog entry with the given ID.
func seedProduct(t *testing.T, id string) catalog.Product {
	t.Helper()
	for _, p := range catalog.SeedProducts() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("no seed product %s", id)
	return catalog.Product{}
}

func TestAdd_IncrementsExistingLine(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(seedProduct(t, "1"), 1))
	require.NoError(t, c.Add(seedProduct(t, "1"), 2))
	require.NoError(t, c.Add(seedProduct(t, "3"), 1))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.InDelta(t, 2.1, items[0].CarbonFootprint, 1e-9)
}

func TestAdd_RejectsBadQuantity(t *testing.T) {
	c := cart.New()
	require.ErrorIs(t, c.Add(seedProduct(t, "1"), 0), cart.ErrInvalidQuantity)
	assert.Empty(t, c.Items())
}

func TestUpdateQuantity(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(seedProduct(t, "1"), 1))

	require.NoError(t, c.UpdateQuantity("1", 4))
	assert.Equal(t, 4, c.Items()[0].Quantity)

	require.NoError(t, c.UpdateQuantity("1", 0))
	assert.Empty(t, c.Items())

	require.ErrorIs(t, c.UpdateQuantity("1", 1), cart.ErrItemNotFound)
	require.ErrorIs(t, c.UpdateQuantity("1", -1), cart.ErrInvalidQuantity)
}

func TestRemove(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(seedProduct(t, "1"), 1))
	require.NoError(t, c.Remove("1"))
	assert.Empty(t, c.Items())
	require.ErrorIs(t, c.Remove("1"), cart.ErrItemNotFound)
}

func TestTotals(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(seedProduct(t, "1"), 2)) // 2.98, 2.1 kg
	require.NoError(t, c.Add(seedProduct(t, "3"), 1)) // 3.48, 12.3 kg

	got := c.Totals()
	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("9.44")), got.Subtotal.String())
	assert.True(t, got.Total.Equal(got.Subtotal))
	assert.InDelta(t, 16.5, got.ItemsCarbon, 1e-9)
	assert.InDelta(t, 18.6, got.TotalCarbon, 1e-9)
	assert.Equal(t, 3, got.ItemCount)
	assert.Equal(t, 2, got.Lines)
	assert.Equal(t, cart.DeliveryStandard, got.Delivery)
}

func TestTotals_EcoDelayDiscount(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(seedProduct(t, "5"), 1)) // 1.98
	require.NoError(t, c.SelectDelivery(cart.DeliveryEcoDelay))

	got := c.Totals()
	assert.True(t, got.DeliveryPrice.Equal(decimal.RequireFromString("-2")))
	assert.True(t, got.Total.IsZero(), "total is clamped at zero, got %s", got.Total)
	assert.InDelta(t, 4.0, got.TotalCarbon, 1e-9)
}

func TestSelectDelivery_Unknown(t *testing.T) {
	c := cart.New()
	require.ErrorIs(t, c.SelectDelivery("drone"), cart.ErrUnknownDelivery)
	assert.Equal(t, cart.DeliveryStandard, c.Delivery().ID)
}

func TestEcoAlternative_Curated(t *testing.T) {
	alt := cart.EcoAlternative(cart.Item{ProductID: "2", CarbonFootprint: 8.5})
	assert.Equal(t, "eco-2", alt.ID)
	assert.Equal(t, "Energy Star LED Bulb, 60W", alt.Name)
	assert.Equal(t, 25, alt.GreenPointsReward)
	assert.InDelta(t, 4.3, alt.CarbonSaving, 1e-9)
}

func TestEcoAlternative_Generated(t *testing.T) {
	tests := []struct {
		name       string
		item       cart.Item
		wantFP     float64
		wantSaving float64
		wantPoints int
		wantImage  string
	}{
		{
			name:       "earbuds",
			item:       cart.Item{ProductID: "14", Name: "Heyday Wireless Earbuds", Price: decimal.RequireFromString("29.99"), CarbonFootprint: 15.3},
			wantFP:     9.18,
			wantSaving: 6.12,
			wantPoints: 30,
			wantImage:  "/headphones.png",
		},
		{
			name:       "footprint floor",
			item:       cart.Item{ProductID: "x", Name: "Paper Straws", Price: decimal.NewFromInt(1), CarbonFootprint: 0.5},
			wantFP:     0.5,
			wantSaving: 0.2,
			wantPoints: 1,
			wantImage:  "/placeholder.svg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alt := cart.EcoAlternative(tt.item)
			assert.Equal(t, "eco-"+tt.item.ProductID, alt.ID)
			assert.Equal(t, "Eco-Friendly "+tt.item.Name, alt.Name)
			assert.True(t, alt.Price.Equal(tt.item.Price.Add(decimal.RequireFromString("0.5"))))
			assert.InDelta(t, tt.wantFP, alt.CarbonFootprint, 1e-9)
			assert.InDelta(t, tt.wantSaving, alt.CarbonSaving, 1e-9)
			assert.Equal(t, tt.wantPoints, alt.GreenPointsReward)
			assert.Equal(t, tt.wantImage, alt.ImageURL)
		})
	}
}

func TestSwap(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(seedProduct(t, "1"), 3))
	require.NoError(t, c.Add(seedProduct(t, "3"), 1))

	reward, err := c.Swap("1")
	require.NoError(t, err)
	assert.Equal(t, 15, reward)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "3", items[0].ProductID, "the swapped line moves to the end")
	swapped := items[1]
	assert.Equal(t, "eco-1", swapped.ProductID)
	assert.Equal(t, 3, swapped.Quantity)
	assert.Equal(t, cart.EcoBrand, swapped.Brand)
	assert.Equal(t, "1", swapped.SwappedFrom)
	assert.Equal(t, "Fresh Produce", swapped.Category)
	assert.Equal(t, 45, c.Totals().PendingPoints)
}

func TestSwap_Twice(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(seedProduct(t, "1"), 1))
	_, err := c.Swap("1")
	require.NoError(t, err)

	_, err = c.Swap("1")
	require.ErrorIs(t, err, cart.ErrAlreadySwapped)

	require.NoError(t, c.Add(seedProduct(t, "1"), 1))
	_, err = c.Swap("1")
	require.ErrorIs(t, err, cart.ErrAlreadySwapped, "re-adding the original does not reset the swap")
}

func TestSwap_EcoItemNotSwappable(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(seedProduct(t, "1"), 1))
	_, err := c.Swap("1")
	require.NoError(t, err)

	_, err = c.Swap("eco-1")
	require.ErrorIs(t, err, cart.ErrNotSwappable)
	_, err = c.Alternative("eco-1")
	require.ErrorIs(t, err, cart.ErrNotSwappable)
}

func TestSwap_Missing(t *testing.T) {
	_, err := cart.New().Swap("42")
	require.ErrorIs(t, err, cart.ErrItemNotFound)
}

func TestDeliveryOptions(t *testing.T) {
	opts := cart.DeliveryOptions()
	require.Len(t, opts, 3)
	assert.Equal(t, cart.DeliveryStandard, opts[0].ID)

	eco, ok := cart.DeliveryOptionByID(cart.DeliveryEcoLocal)
	require.True(t, ok)
	assert.Equal(t, 10, eco.GreenPoints)
	assert.InDelta(t, 1.2, eco.CarbonImpact, 1e-9)

	_, ok = cart.DeliveryOptionByID("teleport")
	assert.False(t, ok)
}
