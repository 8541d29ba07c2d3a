// Package config handles cardworth configuration and reward program tables.
package config

import (
	"strings"
	"time"
)

// ProgramValuation holds the assumed value of one reward unit for a program.
type ProgramValuation struct {
	CentsPerPoint float64
}

type programValuationVersion struct {
	EffectiveFrom time.Time
	Valuation     ProgramValuation
}

// DefaultValuations maps reward program slugs to their baseline
// cents-per-point. Cashback is fixed at 1.0 by definition; point and mile
// programs carry commonly published transfer-value estimates.
var DefaultValuations = map[string]ProgramValuation{
	"cashback":            {CentsPerPoint: 1.0},
	"amex-mr":             {CentsPerPoint: 2.0},
	"chase-ur":            {CentsPerPoint: 2.05},
	"citi-ty":             {CentsPerPoint: 1.8},
	"capitalone-miles":    {CentsPerPoint: 1.85},
	"bilt-rewards":        {CentsPerPoint: 2.05},
	"wells-fargo-rewards": {CentsPerPoint: 1.0},
	"marriott-bonvoy":     {CentsPerPoint: 0.85},
	"hilton-honors":       {CentsPerPoint: 0.6},
	"delta-skymiles":      {CentsPerPoint: 1.2},
	"united-mileageplus":  {CentsPerPoint: 1.35},
}

// defaultValuationHistory stores effective-dated valuations per program.
// Entries must be sorted by EffectiveFrom ascending.
var defaultValuationHistory = makeDefaultValuationHistory(DefaultValuations)

func makeDefaultValuationHistory(base map[string]ProgramValuation) map[string][]programValuationVersion {
	history := make(map[string][]programValuationVersion, len(base))
	for program, v := range base {
		history[program] = []programValuationVersion{
			{Valuation: v},
		}
	}
	return history
}

func hasProgram(program string) bool {
	if _, ok := defaultValuationHistory[program]; ok {
		return true
	}
	_, ok := DefaultValuations[program]
	return ok
}

// programAliases maps short user-entered names to canonical slugs.
var programAliases = map[string]string{
	"mr":       "amex-mr",
	"ur":       "chase-ur",
	"ty":       "citi-ty",
	"bonvoy":   "marriott-bonvoy",
	"honors":   "hilton-honors",
	"miles":    "capitalone-miles",
	"bilt":     "bilt-rewards",
	"cash":     "cashback",
	"cashback": "cashback",
}

// NormalizeProgramName maps user-entered program identifiers to the
// canonical slug: lowercased, with common short aliases resolved.
// Unknown names are returned lowercased unchanged.
func NormalizeProgramName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if hasProgram(name) {
		return name
	}
	if canonical, ok := programAliases[name]; ok {
		return canonical
	}
	return name
}

// LookupValuation returns the current valuation for a program,
// normalizing the name first. Returns zero and false if unknown.
func LookupValuation(program string) (ProgramValuation, bool) {
	return LookupValuationAt(program, time.Now())
}

// LookupValuationAt returns the valuation for a program at the given
// timestamp. If at is zero, the latest known entry is used.
func LookupValuationAt(program string, at time.Time) (ProgramValuation, bool) {
	normalized := NormalizeProgramName(program)
	versions, ok := defaultValuationHistory[normalized]
	if !ok || len(versions) == 0 {
		v, fallback := DefaultValuations[normalized]
		return v, fallback
	}

	if at.IsZero() {
		return versions[len(versions)-1].Valuation, true
	}

	at = at.UTC()
	selected := versions[0].Valuation
	for _, v := range versions {
		if v.EffectiveFrom.IsZero() || !at.Before(v.EffectiveFrom.UTC()) {
			selected = v.Valuation
			continue
		}
		break
	}
	return selected, true
}

// CentsPerPoint resolves the cents-per-point for a program, in order:
// per-card explicit value > config override > built-in table > 1.0.
// A cardValue of 0 means "not set on the card".
func CentsPerPoint(cfg Config, program string, cardValue float64) float64 {
	if cardValue > 0 {
		return cardValue
	}
	normalized := NormalizeProgramName(program)
	if cfg.Valuations.Overrides != nil {
		if v, ok := cfg.Valuations.Overrides[normalized]; ok && v > 0 {
			return v
		}
	}
	if v, ok := LookupValuation(normalized); ok {
		return v.CentsPerPoint
	}
	return 1.0
}
