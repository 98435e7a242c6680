package carbon

// Rating thresholds in kg CO2e. Each bound is exclusive: a footprint equal to
// a threshold falls into the next band.
const (
	thresholdExcellent = 1.0
	thresholdGood      = 3.0
	thresholdFair      = 7.0
	thresholdPoor      = 15.0
)

// RatingFor grades a footprint. It is total over all finite values; negative
// footprints grade as A.
func RatingFor(footprint float64) Rating {
	switch {
	case footprint < thresholdExcellent:
		return Rating{Grade: GradeA, Label: "Excellent", Color: "green"}
	case footprint < thresholdGood:
		return Rating{Grade: GradeB, Label: "Good", Color: "lime"}
	case footprint < thresholdFair:
		return Rating{Grade: GradeC, Label: "Fair", Color: "yellow"}
	case footprint < thresholdPoor:
		return Rating{Grade: GradeD, Label: "Poor", Color: "orange"}
	default:
		return Rating{Grade: GradeF, Label: "Very Poor", Color: "red"}
	}
}

// Class is the coarse low/medium/high badge shown next to cart items.
type Class string

// Footprint classes.
const (
	ClassLow    Class = "low"
	ClassMedium Class = "medium"
	ClassHigh   Class = "high"
)

// FootprintClass buckets a footprint for the cart badge: below 3 kg is low,
// below 8 kg medium, anything else high.
func FootprintClass(kg float64) Class {
	const (
		lowBound    = 3.0
		mediumBound = 8.0
	)
	switch {
	case kg < lowBound:
		return ClassLow
	case kg < mediumBound:
		return ClassMedium
	default:
		return ClassHigh
	}
}
