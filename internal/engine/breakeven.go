package engine

import (
	"math"

	"cardworth/internal/model"
)

// rateEpsilon bounds "numerically negligible" when inverting the rate
// equation; denominators below it are treated as zero.
const rateEpsilon = 1e-9

// defaultCurveSpanMultiple controls how far past current spend the
// sampled curve extends.
const defaultCurveSpanMultiple = 4

// spendTotals splits planned spending into its fixed and linear parts.
type spendTotals struct {
	fixedSpend    int64
	fixedRewards  float64
	linearSpend   int64
	linearRewards float64
}

func tallySpending(items []model.PlannedSpendingItem, centsPerPoint float64) spendTotals {
	var t spendTotals
	for _, it := range items {
		spend := annualSpendCents(it)
		reward := annualRewardCents(it, centsPerPoint)
		if it.Mode == model.SpendFixed {
			t.fixedSpend += spend
			t.fixedRewards += reward
		} else {
			t.linearSpend += spend
			t.linearRewards += reward
		}
	}
	return t
}

// marginalLinearRate is reward cents earned per linear spend cent,
// assumed constant as linear spend scales.
func marginalLinearRate(t spendTotals) float64 {
	if t.linearSpend == 0 {
		return 0
	}
	return t.linearRewards / float64(t.linearSpend)
}

// SolveBreakeven finds, for each target effective return rate (percent),
// the minimum total annual spend that reaches it. Unreachable targets get
// a nil required spend; mathematically degenerate input never errors.
func SolveBreakeven(
	items []model.PlannedSpendingItem,
	centsPerPoint float64,
	netAnnualCents int64,
	targets []float64,
) model.BreakevenResult {
	t := tallySpending(items, centsPerPoint)

	res := model.BreakevenResult{
		TotalFixedSpend:   t.fixedSpend,
		TotalFixedRewards: t.fixedRewards,
		BaseLinearSpend:   t.linearSpend,
		LinearRate:        marginalLinearRate(t),
	}

	// Pure linear with no net-value offset: the effective rate is the
	// same at every spend level, so "breakeven spend" is undefined.
	if netAnnualCents == 0 && t.fixedSpend == 0 {
		constant := res.LinearRate * 100
		res.ConstantRate = &constant
		return res
	}

	for _, target := range targets {
		res.Rows = append(res.Rows, solveTarget(items, t, res.LinearRate, netAnnualCents, target))
	}
	return res
}

// solveTarget inverts the effective-rate equation for one target.
//
//	rate = (fixedRewards + linear*linearRate + netValue) / (fixed + linear)
func solveTarget(
	items []model.PlannedSpendingItem,
	t spendTotals,
	linearRate float64,
	netAnnualCents int64,
	target float64,
) model.BreakevenRow {
	row := model.BreakevenRow{TargetRate: target}

	numerator := t.fixedRewards + float64(netAnnualCents) - target/100*float64(t.fixedSpend)
	denominator := target/100 - linearRate

	var linear float64
	switch {
	case math.Abs(denominator) < rateEpsilon:
		if math.Abs(numerator) >= rateEpsilon {
			return row // unreachable: parallel to the marginal rate
		}
		linear = 0
	default:
		linear = numerator / denominator
		if linear < 0 {
			return row // negative spend has no meaning
		}
	}

	linearCents := int64(math.Round(linear))
	total := linearCents + t.fixedSpend
	row.RequiredLinearCents = linearCents
	row.RequiredTotalCents = &total
	row.Categories = splitCategories(items, t, linearCents)
	return row
}

// splitCategories allocates a solved linear spend level across categories:
// fixed categories keep their own annual spend, linear categories scale by
// their share of the base linear spend.
func splitCategories(
	items []model.PlannedSpendingItem,
	t spendTotals,
	linearCents int64,
) []model.CategorySpend {
	out := make([]model.CategorySpend, 0, len(items))
	for _, it := range items {
		cs := model.CategorySpend{Category: it.Category, Mode: it.Mode}
		switch {
		case it.Mode == model.SpendFixed:
			cs.SpendCents = annualSpendCents(it)
		case t.linearSpend > 0:
			share := float64(annualSpendCents(it)) / float64(t.linearSpend)
			cs.SpendCents = int64(math.Round(float64(linearCents) * share))
		}
		out = append(out, cs)
	}
	return out
}

// RateAt computes the instantaneous effective return rate (percent) at a
// hypothetical total annual spend, holding fixed categories constant.
func RateAt(
	items []model.PlannedSpendingItem,
	centsPerPoint float64,
	netAnnualCents int64,
	totalSpendCents int64,
) float64 {
	t := tallySpending(items, centsPerPoint)
	return rateAt(t, marginalLinearRate(t), netAnnualCents, totalSpendCents)
}

func rateAt(t spendTotals, linearRate float64, netAnnualCents int64, totalSpendCents int64) float64 {
	if totalSpendCents <= 0 {
		return 0
	}
	linear := totalSpendCents - t.fixedSpend
	if linear < 0 {
		linear = 0
	}
	rewards := t.fixedRewards + float64(linear)*linearRate
	return (rewards + float64(netAnnualCents)) / float64(totalSpendCents) * 100
}

// SampleCurve generates a monotonic spend → rate series for charting. It
// spans from the first reachable breakeven among targets (or current total
// spend if none) to several multiples of current spend. Returns nil for
// the constant-rate degenerate case and when no meaningful span exists.
func SampleCurve(
	items []model.PlannedSpendingItem,
	centsPerPoint float64,
	netAnnualCents int64,
	targets []float64,
	samples int,
) []model.CurvePoint {
	if samples < 2 {
		samples = 2
	}

	t := tallySpending(items, centsPerPoint)
	if netAnnualCents == 0 && t.fixedSpend == 0 {
		return nil
	}
	linearRate := marginalLinearRate(t)

	current := t.fixedSpend + t.linearSpend

	start := current
	solved := SolveBreakeven(items, centsPerPoint, netAnnualCents, targets)
	found := false
	for _, row := range solved.Rows {
		if row.RequiredTotalCents == nil {
			continue
		}
		if !found || *row.RequiredTotalCents < start {
			start = *row.RequiredTotalCents
			found = true
		}
	}

	end := current * defaultCurveSpanMultiple
	if end <= start {
		end = start * 2
	}
	if end <= start {
		return nil
	}

	points := make([]model.CurvePoint, 0, samples)
	step := float64(end-start) / float64(samples-1)
	for i := 0; i < samples; i++ {
		spend := start + int64(math.Round(step*float64(i)))
		linear := spend - t.fixedSpend
		if linear < 0 {
			linear = 0
		}
		points = append(points, model.CurvePoint{
			TotalSpendCents: spend,
			EffectiveRate:   rateAt(t, linearRate, netAnnualCents, spend),
			Categories:      splitCategories(items, t, linear),
		})
	}
	return points
}
