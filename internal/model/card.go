// Package model defines domain types for cardworth cards and valuation results.
package model

import "fmt"

// Frequency describes how often a recurring value repeats within a year.
type Frequency int

const (
	FrequencyUnspecified Frequency = iota
	FrequencyAnnual
	FrequencySemiannual
	FrequencyQuarterly
	FrequencyMonthly
)

// PeriodsPerYear returns how many periods a frequency produces in one year.
// Unspecified is always 0 so a value with no frequency contributes nothing.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case FrequencyAnnual:
		return 1
	case FrequencySemiannual:
		return 2
	case FrequencyQuarterly:
		return 4
	case FrequencyMonthly:
		return 12
	case FrequencyUnspecified:
		return 0
	default:
		return 0
	}
}

// String returns the TOML/display form of the frequency.
func (f Frequency) String() string {
	switch f {
	case FrequencyAnnual:
		return "annual"
	case FrequencySemiannual:
		return "semiannual"
	case FrequencyQuarterly:
		return "quarterly"
	case FrequencyMonthly:
		return "monthly"
	case FrequencyUnspecified:
		return "unspecified"
	default:
		return "unspecified"
	}
}

// ParseFrequency converts a card-file string into a Frequency.
// Empty strings map to FrequencyUnspecified; anything else is an error.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "":
		return FrequencyUnspecified, nil
	case "annual", "yearly":
		return FrequencyAnnual, nil
	case "semiannual":
		return FrequencySemiannual, nil
	case "quarterly":
		return FrequencyQuarterly, nil
	case "monthly":
		return FrequencyMonthly, nil
	default:
		return FrequencyUnspecified, fmt.Errorf("unknown frequency %q", s)
	}
}

// ValuationKind tags the Valuation sum type.
type ValuationKind int

const (
	ValuationUnset ValuationKind = iota
	ValuationCents
	ValuationProportion
)

// Valuation is "a value given as cents OR as a proportion of face value,
// or not given at all". Used for both issuer default valuations and
// per-benefit user overrides; the two variants are mutually exclusive
// by construction.
type Valuation struct {
	Kind       ValuationKind
	Cents      int64
	Proportion float64
}

// CentsValuation returns a Valuation fixed at an absolute cent amount.
func CentsValuation(cents int64) Valuation {
	return Valuation{Kind: ValuationCents, Cents: cents}
}

// ProportionValuation returns a Valuation expressed as a fraction of the
// raw annual value. Proportions outside [0,1] are legal and computed
// through unchanged.
func ProportionValuation(p float64) Valuation {
	return Valuation{Kind: ValuationProportion, Proportion: p}
}

// IsSet reports whether the valuation carries a value.
func (v Valuation) IsSet() bool {
	return v.Kind != ValuationUnset
}

// PeriodOverride replaces the default value for one period of a
// recurring schedule. Period indices are 1-based.
type PeriodOverride struct {
	Period     int
	ValueCents int64
}

// RecurringValue is a per-period value plus optional per-period overrides.
type RecurringValue struct {
	Frequency          Frequency
	DefaultPeriodCents int64
	Overrides          []PeriodOverride
}

// BenefitItem is a credit or benefit on a card: a recurring face value,
// the issuer's default estimate of realized value, and an optional
// user override of that estimate.
type BenefitItem struct {
	ID    string
	Name  string
	Value RecurringValue

	// DefaultEffective is the issuer's realism discount (absolute or
	// proportional). Unset means the raw value counts for nothing.
	DefaultEffective Valuation

	// UserOverride replaces DefaultEffective when set.
	UserOverride Valuation
	UserNote     string
}

// CustomAdjustment is a signed recurring amount with no face value:
// it IS its effective value. Negative amounts model recurring costs.
type CustomAdjustment struct {
	ID          string
	Description string
	Frequency   Frequency
	ValueCents  int64
	Notes       string
}

// SpendMode controls how a spending category behaves in breakeven analysis.
type SpendMode int

const (
	// SpendLinear categories scale with the spend level being solved for.
	SpendLinear SpendMode = iota
	// SpendFixed categories are held constant.
	SpendFixed
)

// String returns the TOML/display form of the mode.
func (m SpendMode) String() string {
	if m == SpendFixed {
		return "fixed"
	}
	return "linear"
}

// ParseSpendMode converts a card-file string into a SpendMode.
// Empty defaults to linear.
func ParseSpendMode(s string) (SpendMode, error) {
	switch s {
	case "", "linear":
		return SpendLinear, nil
	case "fixed":
		return SpendFixed, nil
	default:
		return SpendLinear, fmt.Errorf("unknown spend mode %q", s)
	}
}

// PlannedSpendingItem is one reward category of planned spend.
type PlannedSpendingItem struct {
	Category   string
	AmountCents int64 // spend per period
	Frequency  Frequency
	Multiplier float64 // reward units earned per dollar
	Mode       SpendMode
}

// PointValuation converts earned reward units into cents.
type PointValuation struct {
	Program       string
	CentsPerPoint float64
}

// CardSnapshot is the engine's sole input: one card, fully assembled.
type CardSnapshot struct {
	ID             string
	Name           string
	Issuer         string
	AnnualFeeCents int64

	Benefits    []BenefitItem
	Adjustments []CustomAdjustment
	Spending    []PlannedSpendingItem
	Valuation   PointValuation

	FilePath string
}
