package engine

import "cardworth/internal/model"

// annualSpendCents annualizes one spending item via its own frequency.
func annualSpendCents(it model.PlannedSpendingItem) int64 {
	return it.AmountCents * int64(it.Frequency.PeriodsPerYear())
}

// annualRewardCents converts annual spend into reward value in cents.
// Multiplier is reward units per spend dollar; centsPerPoint turns units
// into cents, and /100 rebases from per-dollar to per-cent spend.
func annualRewardCents(it model.PlannedSpendingItem, centsPerPoint float64) float64 {
	return float64(annualSpendCents(it)) * it.Multiplier * centsPerPoint / 100
}

// Rewards computes total spend, total rewards, and the three derived rates
// from planned spending and the card's net annual value.
func Rewards(
	items []model.PlannedSpendingItem,
	centsPerPoint float64,
	netAnnualCents int64,
) model.RewardSummary {
	var s model.RewardSummary

	for _, it := range items {
		spend := annualSpendCents(it)
		reward := annualRewardCents(it, centsPerPoint)

		line := model.RewardLine{
			Category:     it.Category,
			Mode:         it.Mode,
			Multiplier:   it.Multiplier,
			AnnualSpend:  spend,
			AnnualReward: reward,
		}
		if spend > 0 {
			line.ReturnRate = reward / float64(spend) * 100
		}
		s.Lines = append(s.Lines, line)

		s.TotalAnnualSpend += spend
		s.TotalRewards += reward
	}

	if s.TotalAnnualSpend > 0 {
		s.SpendReturnRate = s.TotalRewards / float64(s.TotalAnnualSpend) * 100
		s.NetWorthEffectRate = float64(netAnnualCents) / float64(s.TotalAnnualSpend) * 100
		s.EffectiveReturnRate = s.SpendReturnRate + s.NetWorthEffectRate
		return s
	}

	// No spend: the rates above are all zero. A non-zero net value still
	// matters, so surface it as a flagged indicator (net value in dollars)
	// rather than a true percentage of spend.
	s.ZeroSpend = true
	if netAnnualCents != 0 {
		s.EffectiveReturnRate = float64(netAnnualCents) / 100
	}
	return s
}
