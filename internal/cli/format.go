// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cardworth/internal/model"
)

// FormatCents formats a cent amount as dollars, e.g. 123456 -> "$1,234.56".
// Negative amounts render as "-$1,234.56".
func FormatCents(cents int64) string {
	if cents < 0 {
		return "-" + FormatCents(-cents)
	}
	return fmt.Sprintf("$%s.%02d", groupThousands(cents/100), cents%100)
}

// FormatDollars formats a cent amount as whole dollars, e.g. 123456 -> "$1,235".
// Used where cents add noise (spend levels, breakeven points).
func FormatDollars(cents int64) string {
	if cents < 0 {
		return "-" + FormatDollars(-cents)
	}
	dollars := (cents + 50) / 100
	return "$" + groupThousands(dollars)
}

// FormatRate formats a percentage rate, e.g. 2.5 -> "2.50%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// FormatProportion formats a 0-1 proportion as a percentage, e.g. 0.75 -> "75%".
func FormatProportion(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

// FormatMultiplier formats a reward multiplier, e.g. 3 -> "3x", 1.5 -> "1.5x".
func FormatMultiplier(m float64) string {
	if m == float64(int64(m)) {
		return fmt.Sprintf("%.0fx", m)
	}
	return fmt.Sprintf("%.1fx", m)
}

// FormatDelta formats a cent delta with an explicit sign.
func FormatDelta(current, previous int64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatCents(delta)
	}
	return "-" + FormatCents(-delta)
}

// FormatFrequency renders a frequency with its per-year period count,
// e.g. "monthly (12/yr)". Unspecified renders as a dash.
func FormatFrequency(f model.Frequency) string {
	if f == model.FrequencyUnspecified {
		return "—"
	}
	return fmt.Sprintf("%s (%d/yr)", f, f.PeriodsPerYear())
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(n)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
