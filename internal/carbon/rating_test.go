package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingFor(t *testing.T) {
	tests := []struct {
		footprint float64
		want      Grade
		label     string
		color     string
	}{
		{footprint: -5, want: GradeA, label: "Excellent", color: "green"},
		{footprint: 0, want: GradeA, label: "Excellent", color: "green"},
		{footprint: 0.99, want: GradeA, label: "Excellent", color: "green"},
		{footprint: 1.0, want: GradeB, label: "Good", color: "lime"},
		{footprint: 2.99, want: GradeB, label: "Good", color: "lime"},
		{footprint: 3.0, want: GradeC, label: "Fair", color: "yellow"},
		{footprint: 6.99, want: GradeC, label: "Fair", color: "yellow"},
		{footprint: 7.0, want: GradeD, label: "Poor", color: "orange"},
		{footprint: 12.3, want: GradeD, label: "Poor", color: "orange"},
		{footprint: 14.99, want: GradeD, label: "Poor", color: "orange"},
		{footprint: 15.0, want: GradeF, label: "Very Poor", color: "red"},
		{footprint: 1e6, want: GradeF, label: "Very Poor", color: "red"},
	}

	for _, tt := range tests {
		got := RatingFor(tt.footprint)
		assert.Equal(t, Rating{Grade: tt.want, Label: tt.label, Color: tt.color}, got,
			"footprint %v", tt.footprint)
	}
}

func TestRating_String(t *testing.T) {
	assert.Equal(t, "D (Poor)", RatingFor(12.3).String())
}

func TestFootprintClass(t *testing.T) {
	assert.Equal(t, ClassLow, FootprintClass(2.99))
	assert.Equal(t, ClassMedium, FootprintClass(3))
	assert.Equal(t, ClassMedium, FootprintClass(7.99))
	assert.Equal(t, ClassHigh, FootprintClass(8))
}
