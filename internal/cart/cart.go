// Package cart implements the shopping cart: line items, eco-friendly swaps,
// delivery choice and checkout into the GreenPoints ledger.
package cart

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/rshade/greencart/internal/carbon"
	"github.com/rshade/greencart/internal/catalog"
)

type constError string

func (e constError) Error() string { return string(e) }

// Cart errors.
const (
	ErrItemNotFound    = constError("item not in cart")
	ErrInvalidQuantity = constError("invalid quantity")
	ErrAlreadySwapped  = constError("item has already been swapped")
	ErrNotSwappable    = constError("item is already an eco-friendly alternative")
	ErrUnknownDelivery = constError("unknown delivery option")
	ErrEmptyCart       = constError("cart is empty")
)

// Item is a cart line.
type Item struct {
	ProductID       string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	ImageURL        string          `json:"imageUrl"`
	CarbonFootprint float64         `json:"carbonFootprint"`
	Category        string          `json:"category"`
	Brand           string          `json:"brand"`

	// SwappedFrom is the product this line replaced, if any.
	SwappedFrom string `json:"swappedFrom,omitempty"`

	// PendingPoints is the per-unit swap reward credited at checkout.
	PendingPoints int `json:"pendingPoints,omitempty"`
}

// Cart holds one shopper's line items. A Cart is not safe for concurrent
// use; Service serialises access.
type Cart struct {
	items    []Item
	swapped  map[string]bool
	delivery DeliveryOption
}

// New returns an empty cart with standard delivery.
func New() *Cart {
	return &Cart{
		swapped:  make(map[string]bool),
		delivery: deliveryOptions[0],
	}
}

// Items returns a copy of the cart lines in the order they were added.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Add puts qty units of p in the cart, incrementing an existing line.
func (c *Cart) Add(p catalog.Product, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity += qty
		return nil
	}
	c.items = append(c.items, Item{
		ProductID:       p.ID,
		Name:            p.Name,
		Price:           p.Price,
		Quantity:        qty,
		ImageURL:        p.ImageURL,
		CarbonFootprint: p.Footprint(),
		Category:        p.Category,
		Brand:           p.Brand,
	})
	return nil
}

// UpdateQuantity sets a line's quantity. Zero removes the line.
func (c *Cart) UpdateQuantity(productID string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}
	i := c.index(productID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, productID)
	}
	if qty == 0 {
		c.items = slices.Delete(c.items, i, i+1)
		return nil
	}
	c.items[i].Quantity = qty
	return nil
}

// Remove drops a line from the cart.
func (c *Cart) Remove(productID string) error {
	return c.UpdateQuantity(productID, 0)
}

// Alternative returns the eco-friendly alternative offered for a line.
func (c *Cart) Alternative(productID string) (Alternative, error) {
	i := c.index(productID)
	if i < 0 {
		return Alternative{}, fmt.Errorf("%w: %s", ErrItemNotFound, productID)
	}
	if !Swappable(c.items[i]) {
		return Alternative{}, ErrNotSwappable
	}
	return EcoAlternative(c.items[i]), nil
}

// Swap replaces a line with its eco-friendly alternative, keeping the
// quantity, and returns the per-unit GreenPoints reward. The new line moves
// to the end of the cart. Each original product can be swapped once.
func (c *Cart) Swap(productID string) (int, error) {
	if c.swapped[productID] {
		return 0, fmt.Errorf("%w: %s", ErrAlreadySwapped, productID)
	}
	i := c.index(productID)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s", ErrItemNotFound, productID)
	}
	orig := c.items[i]
	if !Swappable(orig) {
		return 0, ErrNotSwappable
	}

	alt := EcoAlternative(orig)
	c.items = slices.Delete(c.items, i, i+1)
	c.swapped[productID] = true
	if j := c.index(alt.ID); j >= 0 {
		c.items[j].Quantity += orig.Quantity
		return alt.GreenPointsReward, nil
	}
	c.items = append(c.items, Item{
		ProductID:       alt.ID,
		Name:            alt.Name,
		Price:           alt.Price,
		Quantity:        orig.Quantity,
		ImageURL:        alt.ImageURL,
		CarbonFootprint: alt.CarbonFootprint,
		Category:        orig.Category,
		Brand:           EcoBrand,
		SwappedFrom:     orig.ProductID,
		PendingPoints:   alt.GreenPointsReward,
	})
	return alt.GreenPointsReward, nil
}

// Delivery returns the selected delivery option.
func (c *Cart) Delivery() DeliveryOption { return c.delivery }

// SelectDelivery changes the delivery option.
func (c *Cart) SelectDelivery(id string) error {
	opt, ok := DeliveryOptionByID(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDelivery, id)
	}
	c.delivery = opt
	return nil
}

// Totals is the cart summary.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryPrice  decimal.Decimal `json:"deliveryPrice"`
	Total          decimal.Decimal `json:"total"`
	ItemsCarbon    float64         `json:"itemsCarbon"`
	DeliveryCarbon float64         `json:"deliveryCarbon"`
	TotalCarbon    float64         `json:"totalCarbon"`
	ItemCount      int             `json:"itemCount"`
	Lines          int             `json:"lines"`
	PendingPoints  int             `json:"pendingPoints"`
	Delivery       string          `json:"delivery"`
}

// Totals sums the cart. The order total never drops below zero.
func (c *Cart) Totals() Totals {
	t := Totals{
		Subtotal:       decimal.Zero,
		DeliveryPrice:  c.delivery.Price,
		DeliveryCarbon: c.delivery.CarbonImpact,
		Lines:          len(c.items),
		Delivery:       c.delivery.ID,
	}
	var carbonSum float64
	for _, it := range c.items {
		t.Subtotal = t.Subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		carbonSum += it.CarbonFootprint * float64(it.Quantity)
		t.ItemCount += it.Quantity
		t.PendingPoints += it.PendingPoints * it.Quantity
	}
	t.ItemsCarbon = carbon.Round2(carbonSum)
	t.TotalCarbon = carbon.Round2(carbonSum + c.delivery.CarbonImpact)
	t.Total = decimal.Max(decimal.Zero, t.Subtotal.Add(t.DeliveryPrice))
	return t
}

func (c *Cart) index(productID string) int {
	return slices.IndexFunc(c.items, func(it Item) bool { return it.ProductID == productID })
}
