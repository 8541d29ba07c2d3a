package source

// rawCard mirrors the TOML layout of a card definition file.
type rawCard struct {
	Name           string  `toml:"name"`
	Issuer         string  `toml:"issuer"`
	Program        string  `toml:"program"`
	AnnualFeeCents int64   `toml:"annual_fee_cents"`
	CentsPerPoint  float64 `toml:"cents_per_point"`

	Benefits    []rawBenefit    `toml:"benefit"`
	Adjustments []rawAdjustment `toml:"adjustment"`
	Spending    []rawSpending   `toml:"spending"`
}

type rawBenefit struct {
	ID                 string  `toml:"id"`
	Name               string  `toml:"name"`
	Frequency          string  `toml:"frequency"`
	PeriodValueCents   int64   `toml:"period_value_cents"`
	Overrides          []rawPeriodOverride `toml:"override"`

	// Issuer default valuation: at most one of the two.
	DefaultValueCents  *int64   `toml:"default_value_cents"`
	DefaultProportion  *float64 `toml:"default_proportion"`

	// User override: at most one of the two.
	UserValueCents *int64   `toml:"user_value_cents"`
	UserProportion *float64 `toml:"user_proportion"`
	UserNote       string   `toml:"user_note"`
}

type rawPeriodOverride struct {
	Period     int   `toml:"period"`
	ValueCents int64 `toml:"value_cents"`
}

type rawAdjustment struct {
	ID          string `toml:"id"`
	Description string `toml:"description"`
	Frequency   string `toml:"frequency"`
	ValueCents  int64  `toml:"value_cents"`
	Notes       string `toml:"notes"`
}

type rawSpending struct {
	Category    string  `toml:"category"`
	AmountCents int64   `toml:"amount_cents"`
	Frequency   string  `toml:"frequency"`
	Multiplier  float64 `toml:"multiplier"`
	Mode        string  `toml:"mode"`
}

// DiscoveredFile represents a card TOML file found during directory scanning.
type DiscoveredFile struct {
	Path   string
	CardID string // filename without extension
}
