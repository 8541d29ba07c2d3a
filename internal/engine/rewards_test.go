package engine

import (
	"math"
	"testing"

	"cardworth/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestRewards_SingleLinearItem(t *testing.T) {
	items := []model.PlannedSpendingItem{
		{
			Category:    "dining",
			AmountCents: 100000,
			Frequency:   model.FrequencyMonthly,
			Multiplier:  2,
			Mode:        model.SpendLinear,
		},
	}

	s := Rewards(items, 1.5, 0)

	if s.TotalAnnualSpend != 1200000 {
		t.Errorf("TotalAnnualSpend = %d, want 1200000", s.TotalAnnualSpend)
	}
	// 1200000 * 2 * 1.5 / 100 = 36000 cents of rewards
	if !almostEqual(s.TotalRewards, 36000) {
		t.Errorf("TotalRewards = %f, want 36000", s.TotalRewards)
	}
	if !almostEqual(s.SpendReturnRate, 3) {
		t.Errorf("SpendReturnRate = %f, want 3", s.SpendReturnRate)
	}
	if !almostEqual(s.EffectiveReturnRate, 3) {
		t.Errorf("EffectiveReturnRate = %f, want 3", s.EffectiveReturnRate)
	}
	if s.ZeroSpend {
		t.Error("ZeroSpend should be false")
	}
}

func TestRewards_NetWorthEffect(t *testing.T) {
	items := []model.PlannedSpendingItem{
		{
			Category:    "everything",
			AmountCents: 100000,
			Frequency:   model.FrequencyMonthly,
			Multiplier:  1,
			Mode:        model.SpendLinear,
		},
	}

	// Net value -12000 cents on 1200000 cents of spend: -1% net worth effect.
	s := Rewards(items, 1.0, -12000)

	if !almostEqual(s.SpendReturnRate, 1) {
		t.Errorf("SpendReturnRate = %f, want 1", s.SpendReturnRate)
	}
	if !almostEqual(s.NetWorthEffectRate, -1) {
		t.Errorf("NetWorthEffectRate = %f, want -1", s.NetWorthEffectRate)
	}
	if !almostEqual(s.EffectiveReturnRate, 0) {
		t.Errorf("EffectiveReturnRate = %f, want 0", s.EffectiveReturnRate)
	}
}

func TestRewards_ZeroSpendZeroNet(t *testing.T) {
	s := Rewards(nil, 1.5, 0)

	if !s.ZeroSpend {
		t.Error("ZeroSpend should be true")
	}
	if s.SpendReturnRate != 0 || s.NetWorthEffectRate != 0 || s.EffectiveReturnRate != 0 {
		t.Errorf("rates = %f/%f/%f, want all 0",
			s.SpendReturnRate, s.NetWorthEffectRate, s.EffectiveReturnRate)
	}
}

func TestRewards_ZeroSpendNonzeroNet(t *testing.T) {
	s := Rewards(nil, 1.5, 25000)

	if !s.ZeroSpend {
		t.Error("ZeroSpend should be true")
	}
	// Net value alone, rebased to dollars: 25000 cents -> 250.
	if !almostEqual(s.EffectiveReturnRate, 250) {
		t.Errorf("EffectiveReturnRate = %f, want 250 (net value indicator)", s.EffectiveReturnRate)
	}
	if s.SpendReturnRate != 0 {
		t.Errorf("SpendReturnRate = %f, want 0", s.SpendReturnRate)
	}
}

func TestRewards_PerCategoryLines(t *testing.T) {
	items := []model.PlannedSpendingItem{
		{Category: "gas", AmountCents: 20000, Frequency: model.FrequencyMonthly, Multiplier: 4, Mode: model.SpendLinear},
		{Category: "rent", AmountCents: 150000, Frequency: model.FrequencyMonthly, Multiplier: 1, Mode: model.SpendFixed},
	}

	s := Rewards(items, 1.0, 0)

	if len(s.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(s.Lines))
	}
	if !almostEqual(s.Lines[0].ReturnRate, 4) {
		t.Errorf("gas ReturnRate = %f, want 4", s.Lines[0].ReturnRate)
	}
	if !almostEqual(s.Lines[1].ReturnRate, 1) {
		t.Errorf("rent ReturnRate = %f, want 1", s.Lines[1].ReturnRate)
	}
	if s.TotalAnnualSpend != 2040000 {
		t.Errorf("TotalAnnualSpend = %d, want 2040000", s.TotalAnnualSpend)
	}
}

func TestRewards_UnspecifiedFrequencyContributesNothing(t *testing.T) {
	items := []model.PlannedSpendingItem{
		{Category: "ghost", AmountCents: 99999, Frequency: model.FrequencyUnspecified, Multiplier: 10},
	}

	s := Rewards(items, 2.0, 0)

	if s.TotalAnnualSpend != 0 {
		t.Errorf("TotalAnnualSpend = %d, want 0", s.TotalAnnualSpend)
	}
	if !s.ZeroSpend {
		t.Error("ZeroSpend should be true")
	}
}
