package carbon

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatInt formats n with thousand separators, e.g. 18248 -> "18,248".
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatKg formats a footprint for display, e.g. 1234.5 -> "1,234.50 kg CO₂e".
func FormatKg(kg float64) string {
	const scale = 100
	cents := int64(math.Round(math.Abs(kg) * scale))
	sign := ""
	if kg < 0 && cents != 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d kg CO₂e", sign, FormatInt(cents/scale), cents%scale)
}
