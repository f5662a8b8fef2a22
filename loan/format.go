package loan

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display formatting is en-GB throughout; the engine computes in raw floats
// and only rounds here.
var printer = message.NewPrinter(language.BritishEnglish)

// FormatCurrency renders a pound amount for display, e.g. 25000 -> "£25,000"
// and 618.372 -> "£618.37". Whole-pound values carry no decimal places.
func FormatCurrency(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("£%d", int64(v))
	}
	return printer.Sprintf("£%.2f", v)
}

// ParseCurrency is the inverse of FormatCurrency: it accepts a formatted
// pound string (currency symbol, grouping separators and surrounding space
// tolerated) and returns the numeric value.
func ParseCurrency(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "£")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("parse currency: empty input %q", s)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse currency %q: %w", s, err)
	}
	return v, nil
}

// FormatPercentage renders an annual rate for display, e.g. 8.9 -> "8.9%".
func FormatPercentage(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}
