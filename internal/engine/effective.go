package engine

import (
	"math"

	"cardworth/internal/model"
)

// applyValuation resolves a Valuation against a raw annual value.
// The second return is false when the valuation is unset.
func applyValuation(v model.Valuation, rawCents int64) (int64, bool) {
	switch v.Kind {
	case model.ValuationCents:
		return v.Cents, true
	case model.ValuationProportion:
		// Proportions are not clamped: >1 legitimately values a benefit
		// above its face value.
		return int64(math.Round(float64(rawCents) * v.Proportion)), true
	case model.ValuationUnset:
		return 0, false
	default:
		return 0, false
	}
}

// EffectiveAnnualCents blends the issuer's default valuation with the
// user's override. Precedence: user override, then issuer default,
// then zero.
func EffectiveAnnualCents(b model.BenefitItem) int64 {
	raw := RawAnnualCents(b.Value)

	if v, ok := applyValuation(b.UserOverride, raw); ok {
		return v
	}
	if v, ok := applyValuation(b.DefaultEffective, raw); ok {
		return v
	}
	return 0
}
