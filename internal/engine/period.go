// Package engine implements the card valuation and breakeven computations.
// Every function is pure: immutable inputs, no I/O, no hidden state, and
// degenerate algebra is encoded in result values instead of errors.
package engine

import "cardworth/internal/model"

// RawAnnualCents resolves a recurring schedule to its raw annual total.
// Periods without an override use the default period value; overrides
// outside [1, periodsPerYear] are ignored.
func RawAnnualCents(rv model.RecurringValue) int64 {
	periods := rv.Frequency.PeriodsPerYear()
	if periods == 0 {
		return 0
	}

	if len(rv.Overrides) == 0 {
		return rv.DefaultPeriodCents * int64(periods)
	}

	byPeriod := make(map[int]int64, len(rv.Overrides))
	for _, o := range rv.Overrides {
		byPeriod[o.Period] = o.ValueCents
	}

	var total int64
	for p := 1; p <= periods; p++ {
		if v, ok := byPeriod[p]; ok {
			total += v
		} else {
			total += rv.DefaultPeriodCents
		}
	}
	return total
}
