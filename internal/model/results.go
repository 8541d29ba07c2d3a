package model

// ValueLine is one row of the net-value breakdown.
type ValueLine struct {
	ID             string
	Name           string
	RawAnnualCents int64
	EffectiveCents int64
	Overridden     bool // user override in effect
}

// ValueSummary holds the card's net annual value and its breakdown.
type ValueSummary struct {
	Benefits        []ValueLine
	Adjustments     []ValueLine
	BenefitCents    int64
	AdjustmentCents int64
	AnnualFeeCents  int64
	NetAnnualCents  int64
}

// RewardLine holds per-category annualized spend and rewards.
type RewardLine struct {
	Category     string
	Mode         SpendMode
	Multiplier   float64
	AnnualSpend  int64
	AnnualReward float64 // cents; fractional because of multiplier math
	ReturnRate   float64 // percent of this category's spend
}

// RewardSummary holds the aggregate reward-rate figures.
type RewardSummary struct {
	Lines            []RewardLine
	TotalAnnualSpend int64
	TotalRewards     float64 // cents

	SpendReturnRate     float64 // percent
	NetWorthEffectRate  float64 // percent
	EffectiveReturnRate float64 // percent

	// ZeroSpend marks the degenerate no-spend case: EffectiveReturnRate
	// then carries the net value in dollars, not a true percentage.
	ZeroSpend bool
}

// CategorySpend is one category's share of a solved spend level.
type CategorySpend struct {
	Category   string
	Mode       SpendMode
	SpendCents int64
}

// BreakevenRow is the solved spend requirement for one target rate.
// RequiredTotalCents is nil when the target is unreachable.
type BreakevenRow struct {
	TargetRate          float64
	RequiredTotalCents  *int64
	RequiredLinearCents int64
	Categories          []CategorySpend
}

// BreakevenResult is the full solver output for one card.
type BreakevenResult struct {
	// ConstantRate is set for the pure-linear degenerate case where the
	// effective rate never changes with spend; Rows is then empty.
	ConstantRate *float64

	Rows []BreakevenRow

	TotalFixedSpend   int64
	TotalFixedRewards float64
	BaseLinearSpend   int64
	LinearRate        float64 // reward cents per spend cent
}

// CurvePoint is one sample of the spend → effective-rate curve.
type CurvePoint struct {
	TotalSpendCents int64
	EffectiveRate   float64 // percent
	Categories      []CategorySpend
}
