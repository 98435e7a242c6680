// Package carbon estimates the carbon footprint of storefront products.
//
// The estimate is derived from a product's category and either its weight or,
// when the weight is unknown, a weight inferred from its price. Results are
// broken down into production, transport and packaging components and can be
// graded on an A-F scale, compared across products and turned into advisory
// suggestions for lower-carbon shopping.
//
// Every function in this package is pure and safe for concurrent use; the
// factor tables are read-only after program start.
package carbon

import "fmt"

// Product is the estimator input. It carries no identity; callers build one
// from whatever catalog or cart item they hold.
type Product struct {
	// Name is informational only.
	Name string `json:"name" yaml:"name"`

	// Category selects the factor row. Unknown categories fall back to Pantry.
	Category string `json:"category" yaml:"category"`

	// Weight in kilograms. Nil means "unknown" and triggers price-based inference.
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`

	// Price in currency units. Not validated.
	Price float64 `json:"price" yaml:"price"`

	// Brand is carried through but unused by the estimate.
	Brand string `json:"brand,omitempty" yaml:"brand,omitempty"`
}

// WithWeight returns a copy of p with the weight set to kg.
func (p Product) WithWeight(kg float64) Product {
	p.Weight = &kg
	return p
}

// Confidence describes how the weight used in an estimate was obtained.
type Confidence string

const (
	// ConfidenceHigh means the weight was supplied directly.
	ConfidenceHigh Confidence = "high"

	// ConfidenceMedium means the weight was inferred from the price.
	ConfidenceMedium Confidence = "medium"

	// ConfidenceLow is part of the published vocabulary but no estimation
	// rule currently produces it.
	ConfidenceLow Confidence = "low"
)

// Breakdown splits a footprint into its three components, in kg CO2e.
type Breakdown struct {
	Production float64 `json:"production"`
	Transport  float64 `json:"transport"`
	Packaging  float64 `json:"packaging"`
}

// Footprint is the result of CalculateFootprint.
//
// Total is rounded from the unrounded component sum, while each Breakdown
// field is rounded on its own, so Total may differ from the sum of the
// rounded components by up to 0.01.
type Footprint struct {
	Total      float64    `json:"totalFootprint"`
	Breakdown  Breakdown  `json:"breakdown"`
	Category   string     `json:"category"`
	Confidence Confidence `json:"confidence"`
}

// Grade is a letter rating on the A-F scale. There is no E.
type Grade string

// Grades in ascending order of footprint.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Rating is the qualitative grade for a footprint value.
type Rating struct {
	Grade Grade  `json:"rating"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// String returns e.g. "D (Poor)".
func (r Rating) String() string {
	return fmt.Sprintf("%s (%s)", r.Grade, r.Label)
}

// ScoredProduct is a product tagged with its estimated total footprint.
type ScoredProduct struct {
	Product

	Footprint float64 `json:"footprint"`
}

// Comparison summarises a set of products by footprint.
type Comparison struct {
	Best    ScoredProduct   `json:"bestProduct"`
	Worst   ScoredProduct   `json:"worstProduct"`
	Average float64         `json:"averageFootprint"`
	Ranked  []ScoredProduct `json:"ranked"`
}
