package engine

import (
	"testing"

	"cardworth/internal/model"
)

func TestNetValue_FeeExceedsBenefits(t *testing.T) {
	card := model.CardSnapshot{
		AnnualFeeCents: 59500,
		Benefits: []model.BenefitItem{
			{
				ID: "travel",
				Value: model.RecurringValue{
					Frequency:          model.FrequencyAnnual,
					DefaultPeriodCents: 30000,
				},
				DefaultEffective: model.CentsValuation(30000),
			},
		},
		Adjustments: []model.CustomAdjustment{
			{
				ID:         "lounge-guest",
				Frequency:  model.FrequencyMonthly,
				ValueCents: -500,
			},
		},
	}

	s := NetValue(card)

	if s.BenefitCents != 30000 {
		t.Errorf("BenefitCents = %d, want 30000", s.BenefitCents)
	}
	if s.AdjustmentCents != -6000 {
		t.Errorf("AdjustmentCents = %d, want -6000", s.AdjustmentCents)
	}
	if s.NetAnnualCents != -35500 {
		t.Errorf("NetAnnualCents = %d, want -35500", s.NetAnnualCents)
	}
}

func TestNetValue_EmptyCard(t *testing.T) {
	s := NetValue(model.CardSnapshot{})
	if s.NetAnnualCents != 0 {
		t.Errorf("NetAnnualCents = %d, want 0 for empty card", s.NetAnnualCents)
	}
}

func TestNetValue_BreakdownMarksOverrides(t *testing.T) {
	card := model.CardSnapshot{
		Benefits: []model.BenefitItem{
			{
				ID: "dining",
				Value: model.RecurringValue{
					Frequency:          model.FrequencyMonthly,
					DefaultPeriodCents: 1000,
				},
				DefaultEffective: model.ProportionValuation(1.0),
				UserOverride:     model.CentsValuation(6000),
			},
			{
				ID: "streaming",
				Value: model.RecurringValue{
					Frequency:          model.FrequencyMonthly,
					DefaultPeriodCents: 500,
				},
				DefaultEffective: model.ProportionValuation(1.0),
			},
		},
	}

	s := NetValue(card)

	if len(s.Benefits) != 2 {
		t.Fatalf("len(Benefits) = %d, want 2", len(s.Benefits))
	}
	if !s.Benefits[0].Overridden {
		t.Error("dining line should be marked overridden")
	}
	if s.Benefits[0].EffectiveCents != 6000 {
		t.Errorf("dining EffectiveCents = %d, want 6000", s.Benefits[0].EffectiveCents)
	}
	if s.Benefits[1].Overridden {
		t.Error("streaming line should not be marked overridden")
	}
	if s.Benefits[1].RawAnnualCents != 6000 {
		t.Errorf("streaming RawAnnualCents = %d, want 6000", s.Benefits[1].RawAnnualCents)
	}
	if s.NetAnnualCents != 12000 {
		t.Errorf("NetAnnualCents = %d, want 12000", s.NetAnnualCents)
	}
}
