package services

import (
	"fmt"
	"strings"
)

// FormatGBP formats a float64 amount into pound sterling notation with
// thousands separators and exactly 2 decimal places, e.g. £1,234,567.89.
func FormatGBP(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "£" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every 3 digits from the right.
func groupThousands(s string) string {
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
	return remaining + "," + result
}

// FormatQty formats a quantity: whole numbers without decimals, others
// with up to 2 decimals and no trailing zeros.
func FormatQty(val float64) string {
	if val == float64(int64(val)) {
		return fmt.Sprintf("%.0f", val)
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", val), "0"), ".")
}

// FormatPercent renders a percentage with one decimal place, or "N/A"
// when the value is undefined (sell price or cost missing).
func FormatPercent(pct float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatCost renders a CostResult for display: the formatted amount for
// computed costs, an explicit dash for unknown ones. Unknown must never
// render as £0.00 — that reads as a free ingredient.
func FormatCost(r CostResult) string {
	if !r.Computed() {
		return "—"
	}
	return FormatGBP(r.Amount)
}
