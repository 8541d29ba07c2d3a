// Package source discovers and parses cardworth card definition files.
package source

import (
	"fmt"
	"os"

	"cardworth/internal/model"

	"github.com/BurntSushi/toml"
)

// ParsedCard holds the outcome of parsing a single card file.
type ParsedCard struct {
	File DiscoveredFile
	Card model.CardSnapshot
	Err  error
}

// ParseFile reads one card TOML file into a CardSnapshot. Structural
// problems (bad TOML, unknown frequency, an override given both as cents
// and proportion) are reported here, upstream of the engine; absent
// numeric fields simply become zero.
func ParseFile(df DiscoveredFile) ParsedCard {
	data, err := os.ReadFile(df.Path)
	if err != nil {
		return ParsedCard{File: df, Err: err}
	}

	var raw rawCard
	if err := toml.Unmarshal(data, &raw); err != nil {
		return ParsedCard{File: df, Err: fmt.Errorf("parsing %s: %w", df.Path, err)}
	}

	card := model.CardSnapshot{
		ID:             df.CardID,
		Name:           raw.Name,
		Issuer:         raw.Issuer,
		AnnualFeeCents: raw.AnnualFeeCents,
		Valuation: model.PointValuation{
			Program:       raw.Program,
			CentsPerPoint: raw.CentsPerPoint,
		},
		FilePath: df.Path,
	}
	if card.Name == "" {
		card.Name = df.CardID
	}

	for i, rb := range raw.Benefits {
		b, err := convertBenefit(rb)
		if err != nil {
			return ParsedCard{File: df, Err: fmt.Errorf("%s: benefit %d: %w", df.Path, i+1, err)}
		}
		card.Benefits = append(card.Benefits, b)
	}

	for i, ra := range raw.Adjustments {
		freq, err := model.ParseFrequency(ra.Frequency)
		if err != nil {
			return ParsedCard{File: df, Err: fmt.Errorf("%s: adjustment %d: %w", df.Path, i+1, err)}
		}
		card.Adjustments = append(card.Adjustments, model.CustomAdjustment{
			ID:          ra.ID,
			Description: ra.Description,
			Frequency:   freq,
			ValueCents:  ra.ValueCents,
			Notes:       ra.Notes,
		})
	}

	for i, rs := range raw.Spending {
		freq, err := model.ParseFrequency(rs.Frequency)
		if err != nil {
			return ParsedCard{File: df, Err: fmt.Errorf("%s: spending %d: %w", df.Path, i+1, err)}
		}
		mode, err := model.ParseSpendMode(rs.Mode)
		if err != nil {
			return ParsedCard{File: df, Err: fmt.Errorf("%s: spending %d: %w", df.Path, i+1, err)}
		}
		card.Spending = append(card.Spending, model.PlannedSpendingItem{
			Category:    rs.Category,
			AmountCents: rs.AmountCents,
			Frequency:   freq,
			Multiplier:  rs.Multiplier,
			Mode:        mode,
		})
	}

	return ParsedCard{File: df, Card: card}
}

func convertBenefit(rb rawBenefit) (model.BenefitItem, error) {
	freq, err := model.ParseFrequency(rb.Frequency)
	if err != nil {
		return model.BenefitItem{}, err
	}

	b := model.BenefitItem{
		ID:   rb.ID,
		Name: rb.Name,
		Value: model.RecurringValue{
			Frequency:          freq,
			DefaultPeriodCents: rb.PeriodValueCents,
		},
		UserNote: rb.UserNote,
	}
	if b.Name == "" {
		b.Name = rb.ID
	}

	for _, o := range rb.Overrides {
		b.Value.Overrides = append(b.Value.Overrides, model.PeriodOverride{
			Period:     o.Period,
			ValueCents: o.ValueCents,
		})
	}

	b.DefaultEffective, err = exclusiveValuation(rb.DefaultValueCents, rb.DefaultProportion)
	if err != nil {
		return model.BenefitItem{}, fmt.Errorf("issuer default: %w", err)
	}

	b.UserOverride, err = exclusiveValuation(rb.UserValueCents, rb.UserProportion)
	if err != nil {
		return model.BenefitItem{}, fmt.Errorf("user override: %w", err)
	}

	return b, nil
}

// exclusiveValuation enforces the cents-or-proportion-never-both schema rule.
func exclusiveValuation(cents *int64, proportion *float64) (model.Valuation, error) {
	switch {
	case cents != nil && proportion != nil:
		return model.Valuation{}, fmt.Errorf("cents and proportion are mutually exclusive")
	case cents != nil:
		return model.CentsValuation(*cents), nil
	case proportion != nil:
		return model.ProportionValuation(*proportion), nil
	default:
		return model.Valuation{}, nil
	}
}

// LoadAll scans and parses every card in the directory. Per-file parse
// failures are carried in the result rather than aborting the load.
func LoadAll(cardsDir string) ([]ParsedCard, error) {
	files, err := ScanDir(cardsDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", cardsDir, err)
	}

	cards := make([]ParsedCard, 0, len(files))
	for _, df := range files {
		cards = append(cards, ParseFile(df))
	}
	return cards, nil
}
