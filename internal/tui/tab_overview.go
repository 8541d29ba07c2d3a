package tui

import (
	"fmt"
	"strings"

	"cardworth/internal/cli"
	"cardworth/internal/tui/components"
	"cardworth/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.figures) == 0 {
		return a.renderNoCards(cw)
	}

	// Portfolio totals
	var totalNet, totalSpend, totalFees int64
	var totalRewards float64
	bestRate := a.figures[0].Rewards.EffectiveReturnRate
	bestCard := a.figures[0].Card.Name
	for _, f := range a.figures {
		totalNet += f.Value.NetAnnualCents
		totalSpend += f.Rewards.TotalAnnualSpend
		totalFees += f.Card.AnnualFeeCents
		totalRewards += f.Rewards.TotalRewards
		if f.Rewards.EffectiveReturnRate > bestRate {
			bestRate = f.Rewards.EffectiveReturnRate
			bestCard = f.Card.Name
		}
	}

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Delta string }{
		{"Net Value", cli.FormatCents(totalNet), "per year across all cards"},
		{"Annual Fees", cli.FormatCents(totalFees), ""},
		{"Rewards", cli.FormatCents(int64(totalRewards)), "on " + cli.FormatCents(totalSpend) + " spend"},
		{"Best Rate", cli.FormatRate(bestRate), truncStr(bestCard, 20)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Net value per card, signed horizontal bars
	innerW := components.CardInnerWidth(cw)

	nameW := innerW / 3
	if nameW < 12 {
		nameW = 12
	}
	maxAbs := int64(1)
	for _, f := range a.figures {
		v := f.Value.NetAnnualCents
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}
	barMax := innerW - nameW - 14
	if barMax < 1 {
		barMax = 1
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var netBody strings.Builder
	for i, f := range a.figures {
		v := f.Value.NetAnnualCents
		abs := v
		style := posStyle
		if v < 0 {
			abs = -v
			style = negStyle
		}
		barLen := int(abs * int64(barMax) / maxAbs)
		marker := "  "
		if i == a.selected {
			marker = "▸ "
		}
		fmt.Fprintf(&netBody, "%s%s %s %s\n",
			marker,
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(f.Card.Name, nameW))),
			numStyle.Render(fmt.Sprintf("%11s", cli.FormatCents(v))),
			style.Render(strings.Repeat("█", barLen)))
	}
	b.WriteString(components.ContentCard("Net Annual Value", netBody.String(), cw))
	b.WriteString("\n")

	// Row 3: Reward earnings chart + headline rates for the selected card
	halves := components.LayoutRow(cw, 2)

	rewardVals := make([]float64, len(a.figures))
	rewardLabels := make([]string, len(a.figures))
	for i, f := range a.figures {
		rewardVals[i] = f.Rewards.TotalRewards / 100 // dollars for axis labels
		rewardLabels[i] = truncStr(f.Card.ID, 8)
	}
	chartCard := components.ContentCard(
		"Rewards per Card ($/yr)",
		components.BarChart(rewardVals, rewardLabels, t.Blue, components.CardInnerWidth(halves[0]), 8),
		halves[0],
	)

	var ratesBody strings.Builder
	if f, ok := a.current(); ok {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
		ratesBody.WriteString(labelStyle.Render("Card:              ") + valStyle.Render(truncStr(f.Card.Name, 28)) + "\n")
		if f.Rewards.ZeroSpend {
			ratesBody.WriteString(labelStyle.Render("No planned spending") + "\n")
			ratesBody.WriteString(labelStyle.Render("Net per year:      ") + valStyle.Render(cli.FormatCents(f.Value.NetAnnualCents)) + "\n")
		} else {
			ratesBody.WriteString(labelStyle.Render("Spend return:      ") + valStyle.Render(cli.FormatRate(f.Rewards.SpendReturnRate)) + "\n")
			ratesBody.WriteString(labelStyle.Render("Net worth effect:  ") + valStyle.Render(cli.FormatRate(f.Rewards.NetWorthEffectRate)) + "\n")
			ratesBody.WriteString(labelStyle.Render("Effective return:  ") + valStyle.Render(cli.FormatRate(f.Rewards.EffectiveReturnRate)) + "\n")
		}
		ratesBody.WriteString(labelStyle.Render("Point value:       ") + valStyle.Render(fmt.Sprintf("%.2f¢/pt", f.CentsPerPoint)))
	}
	ratesCard := components.ContentCard("Selected Card", ratesBody.String(), halves[1])

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Rewards per Card ($/yr)",
			components.BarChart(rewardVals, rewardLabels, t.Blue, components.CardInnerWidth(cw), 8), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Selected Card", ratesBody.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{chartCard, ratesCard}))
	}

	if len(a.parseErrs) > 0 {
		b.WriteString("\n")
		b.WriteString(a.renderParseErrors(cw))
	}

	return b.String()
}

func (a App) renderNoCards(cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var body strings.Builder
	body.WriteString(labelStyle.Render("No card files found in " + a.cardsDir))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Run `cardworth setup` to create your first card."))

	if len(a.parseErrs) > 0 {
		return components.ContentCard("No Cards", body.String(), cw) + "\n" + a.renderParseErrors(cw)
	}
	return components.ContentCard("No Cards", body.String(), cw)
}

func (a App) renderParseErrors(cw int) string {
	t := theme.Active
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var body strings.Builder
	for _, e := range a.parseErrs {
		body.WriteString(warnStyle.Render(truncStr(e, components.CardInnerWidth(cw))))
		body.WriteString("\n")
	}
	return components.ContentCard("Parse Problems", strings.TrimRight(body.String(), "\n"), cw)
}
