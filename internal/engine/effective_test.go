package engine

import (
	"testing"

	"cardworth/internal/model"
)

// quarterlyBenefit returns a benefit worth 100 cents per quarter (raw 400).
func quarterlyBenefit() model.BenefitItem {
	return model.BenefitItem{
		ID:   "test-credit",
		Name: "Test credit",
		Value: model.RecurringValue{
			Frequency:          model.FrequencyQuarterly,
			DefaultPeriodCents: 100,
		},
	}
}

func TestEffectiveAnnualCents_UserCentsWins(t *testing.T) {
	b := model.BenefitItem{
		Value: model.RecurringValue{
			Frequency:          model.FrequencyAnnual,
			DefaultPeriodCents: 10000,
		},
		DefaultEffective: model.ProportionValuation(0.5),
		UserOverride:     model.CentsValuation(3000),
	}

	if got := EffectiveAnnualCents(b); got != 3000 {
		t.Errorf("EffectiveAnnualCents = %d, want 3000 (user cents beats issuer default)", got)
	}
}

func TestEffectiveAnnualCents_UserProportion(t *testing.T) {
	b := quarterlyBenefit()
	b.DefaultEffective = model.CentsValuation(999)
	b.UserOverride = model.ProportionValuation(0.25)

	if got := EffectiveAnnualCents(b); got != 100 {
		t.Errorf("EffectiveAnnualCents = %d, want 100 (0.25 of raw 400)", got)
	}
}

func TestEffectiveAnnualCents_DefaultProportionFallback(t *testing.T) {
	b := quarterlyBenefit()
	b.DefaultEffective = model.ProportionValuation(0.75)

	if got := EffectiveAnnualCents(b); got != 300 {
		t.Errorf("EffectiveAnnualCents = %d, want 300 (0.75 of raw 400)", got)
	}
}

func TestEffectiveAnnualCents_DefaultCentsFallback(t *testing.T) {
	b := quarterlyBenefit()
	b.DefaultEffective = model.CentsValuation(123)

	if got := EffectiveAnnualCents(b); got != 123 {
		t.Errorf("EffectiveAnnualCents = %d, want 123", got)
	}
}

func TestEffectiveAnnualCents_NothingSet(t *testing.T) {
	b := quarterlyBenefit()

	if got := EffectiveAnnualCents(b); got != 0 {
		t.Errorf("EffectiveAnnualCents = %d, want 0 when no valuation is set", got)
	}
}

func TestEffectiveAnnualCents_ProportionAboveOneNotClamped(t *testing.T) {
	b := quarterlyBenefit()
	b.UserOverride = model.ProportionValuation(1.5)

	if got := EffectiveAnnualCents(b); got != 600 {
		t.Errorf("EffectiveAnnualCents = %d, want 600 (1.5 of raw 400, unclamped)", got)
	}
}

func TestEffectiveAnnualCents_ProportionRounds(t *testing.T) {
	b := model.BenefitItem{
		Value: model.RecurringValue{
			Frequency:          model.FrequencyAnnual,
			DefaultPeriodCents: 333,
		},
		DefaultEffective: model.ProportionValuation(0.5),
	}

	// 333 * 0.5 = 166.5, rounds to 167
	if got := EffectiveAnnualCents(b); got != 167 {
		t.Errorf("EffectiveAnnualCents = %d, want 167 (rounded)", got)
	}
}
