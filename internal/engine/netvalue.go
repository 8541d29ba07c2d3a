package engine

import "cardworth/internal/model"

// NetValue computes the card's net annual value: effective benefits plus
// annualized adjustments minus the annual fee. The result may be negative.
func NetValue(card model.CardSnapshot) model.ValueSummary {
	s := model.ValueSummary{AnnualFeeCents: card.AnnualFeeCents}

	for _, b := range card.Benefits {
		eff := EffectiveAnnualCents(b)
		s.Benefits = append(s.Benefits, model.ValueLine{
			ID:             b.ID,
			Name:           b.Name,
			RawAnnualCents: RawAnnualCents(b.Value),
			EffectiveCents: eff,
			Overridden:     b.UserOverride.IsSet(),
		})
		s.BenefitCents += eff
	}

	for _, a := range card.Adjustments {
		annual := a.ValueCents * int64(a.Frequency.PeriodsPerYear())
		s.Adjustments = append(s.Adjustments, model.ValueLine{
			ID:             a.ID,
			Name:           a.Description,
			RawAnnualCents: annual,
			EffectiveCents: annual,
		})
		s.AdjustmentCents += annual
	}

	s.NetAnnualCents = s.BenefitCents + s.AdjustmentCents - s.AnnualFeeCents
	return s
}
