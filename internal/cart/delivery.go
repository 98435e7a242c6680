package cart

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Delivery option IDs.
const (
	DeliveryStandard = "standard"
	DeliveryEcoLocal = "eco-local"
	DeliveryEcoDelay = "eco-delay"
)

// DeliveryOption is a shipping choice with its carbon impact in kg CO2e.
type DeliveryOption struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Time         string          `json:"time"`
	Price        decimal.Decimal `json:"price"`
	CarbonImpact float64         `json:"carbonImpact"`
	Vehicle      string          `json:"vehicle"`
	GreenPoints  int             `json:"greenPoints,omitempty"`
	Discount     bool            `json:"discount,omitempty"`
}

//nolint:gochecknoglobals // immutable option list; the first entry is the default
var deliveryOptions = []DeliveryOption{
	{
		ID:           DeliveryStandard,
		Name:         "Standard Delivery",
		Time:         "3-5 days",
		Price:        decimal.Zero,
		CarbonImpact: 2.1,
		Vehicle:      "Standard truck",
	},
	{
		ID:           DeliveryEcoLocal,
		Name:         "Eco-Local Delivery",
		Time:         "2-3 days",
		Price:        decimal.Zero,
		CarbonImpact: 1.2,
		Vehicle:      "Electric vehicle",
		GreenPoints:  10,
	},
	{
		ID:           DeliveryEcoDelay,
		Name:         "Eco-Delay Delivery",
		Time:         "5-7 days",
		Price:        decimal.RequireFromString("-2.00"),
		CarbonImpact: 0.8,
		Vehicle:      "Batch delivery",
		GreenPoints:  20,
		Discount:     true,
	},
}

// DeliveryOptions lists every delivery option, standard first.
func DeliveryOptions() []DeliveryOption {
	return slices.Clone(deliveryOptions)
}

// DeliveryOptionByID looks up a delivery option.
func DeliveryOptionByID(id string) (DeliveryOption, bool) {
	i := slices.IndexFunc(deliveryOptions, func(o DeliveryOption) bool { return o.ID == id })
	if i < 0 {
		return DeliveryOption{}, false
	}
	return deliveryOptions[i], true
}
