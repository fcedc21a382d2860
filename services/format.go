package services

import (
	"fmt"
	"strings"
)

// CurrencySymbol is a display-only prefix applied when formatting amounts.
const CurrencySymbol = "$"

// FormatUSD formats a float64 amount into US dollar notation with thousands
// separators (e.g., $12,345,678.90). The result always includes exactly
// 2 decimal places.
func FormatUSD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	// Format with 2 decimal places.
	raw := fmt.Sprintf("%.2f", amount)

	// Split into integer and decimal parts.
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	formatted := applyThousandsGrouping(intPart)

	result := CurrencySymbol + formatted + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// applyThousandsGrouping inserts commas into an integer string every three
// digits from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}

// FormatHours renders labor hours with one decimal place, the precision used
// throughout quote displays and exports.
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1f", hours)
}
