package carbon

import (
	"fmt"
	"math"
)

// EPA greenhouse-gas equivalency divisors, kg CO2e per unit of activity.
const (
	EPAMilesDrivenFactor      = 0.192
	EPASmartphoneChargeFactor = 0.00822
)

// MinEquivalencyKg is the smallest footprint for which equivalencies are
// worth showing; below it the numbers round to nothing meaningful.
const MinEquivalencyKg = 1.0

// Equivalency restates a footprint as everyday activities.
type Equivalency struct {
	InputKg            float64 `json:"inputKg"`
	MilesDriven        float64 `json:"milesDriven,omitempty"`
	SmartphonesCharged float64 `json:"smartphonesCharged,omitempty"`
	Text               string  `json:"text,omitempty"`
	Empty              bool    `json:"empty"`
}

// Equivalencies converts kg CO2e into miles driven and smartphones charged.
// Values under MinEquivalencyKg yield an Empty result with no error.
func Equivalencies(kg float64) (Equivalency, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Equivalency{Empty: true}, ErrInvalidValue
	}
	if kg < 0 {
		return Equivalency{Empty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyKg {
		return Equivalency{InputKg: kg, Empty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor

	return Equivalency{
		InputKg:            kg,
		MilesDriven:        miles,
		SmartphonesCharged: phones,
		Text: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			FormatInt(int64(math.Round(miles))), FormatInt(int64(math.Round(phones)))),
	}, nil
}
