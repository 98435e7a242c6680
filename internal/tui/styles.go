package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/greencart/internal/carbon"
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("240"))

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// gradeColors maps each letter grade to a 256-colour code that matches the
// rating's colour name.
//
//nolint:gochecknoglobals // Read-only lookup table.
var gradeColors = map[carbon.Grade]lipgloss.Color{
	carbon.GradeA: lipgloss.Color("34"),  // green
	carbon.GradeB: lipgloss.Color("118"), // lime
	carbon.GradeC: lipgloss.Color("226"), // yellow
	carbon.GradeD: lipgloss.Color("208"), // orange
	carbon.GradeF: lipgloss.Color("196"), // red
}

// classColors maps footprint classes to badge colours.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classColors = map[carbon.Class]lipgloss.Color{
	carbon.ClassLow:    lipgloss.Color("34"),
	carbon.ClassMedium: lipgloss.Color("226"),
	carbon.ClassHigh:   lipgloss.Color("196"),
}

// RenderGrade renders a rating as a coloured badge, e.g. " B " on lime.
// With styled false it falls back to the plain "B (Good)" form for pipes
// and files.
func RenderGrade(r carbon.Rating, styled bool) string {
	if !styled {
		return r.String()
	}
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("16")).
		Background(gradeColors[r.Grade]).
		Padding(0, 1).
		Render(string(r.Grade))
	return badge + " " + r.Label
}

// RenderClass colours a footprint class label.
func RenderClass(c carbon.Class, styled bool) string {
	if !styled {
		return string(c)
	}
	return lipgloss.NewStyle().Foreground(classColors[c]).Render(string(c))
}
