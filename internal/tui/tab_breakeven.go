package tui

import (
	"fmt"
	"strings"

	"cardworth/internal/cli"
	"cardworth/internal/tui/components"
	"cardworth/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBreakevenTab(cw int) string {
	t := theme.Active

	f, ok := a.current()
	if !ok {
		return a.renderNoCards(cw)
	}

	var b strings.Builder

	cards := []struct{ Label, Value, Delta string }{
		{"Card", truncStr(f.Card.Name, 24), fmt.Sprintf("%d of %d", a.selected+1, len(a.figures))},
		{"Current Spend", cli.FormatCents(f.Rewards.TotalAnnualSpend), "per year"},
		{"Effective Rate", cli.FormatRate(f.Rewards.EffectiveReturnRate), ""},
		{"Net Value", cli.FormatCents(f.Value.NetAnnualCents), "per year"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if f.Breakeven.ConstantRate != nil {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		body := labelStyle.Render(fmt.Sprintf(
			"Effective rate is a constant %s at any spend level.\nTargets above or below that are never crossed.",
			cli.FormatRate(*f.Breakeven.ConstantRate)))
		b.WriteString(components.ContentCard("Breakeven", body, cw))
		return b.String()
	}

	// Target progress bars
	innerW := components.CardInnerWidth(cw)
	labelW := 8
	barW := innerW - labelW - 30
	if barW < 10 {
		barW = 10
	}

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var targetsBody strings.Builder
	for _, row := range f.Breakeven.Rows {
		label := cli.FormatRate(row.TargetRate)
		if row.RequiredTotalCents == nil {
			targetsBody.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf("%-*s ", labelW, label)))
			targetsBody.WriteString(dimStyle.Render("unreachable at any spend level"))
			targetsBody.WriteString("\n")
			continue
		}

		required := *row.RequiredTotalCents
		pct := 0.0
		if required > 0 {
			pct = float64(f.Rewards.TotalAnnualSpend) / float64(required)
		} else {
			pct = 1
		}

		note := "needs " + cli.FormatCents(required) + "/yr"
		if pct >= 1 {
			note = "met at " + cli.FormatCents(required) + "/yr"
		}
		targetsBody.WriteString(components.TargetBar(label, pct, note, labelW, barW))
		targetsBody.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Targets", strings.TrimRight(targetsBody.String(), "\n"), cw))
	b.WriteString("\n")

	// Rate curve
	if len(f.Curve) > 0 {
		vals := make([]float64, len(f.Curve))
		labels := make([]string, len(f.Curve))
		for i, p := range f.Curve {
			vals[i] = p.EffectiveRate
			labels[i] = cli.FormatDollars(p.TotalSpendCents)
		}
		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		b.WriteString(components.ContentCard(
			"Effective Rate vs Annual Spend (%)",
			components.BarChart(vals, labels, t.Blue, innerW, chartH),
			cw,
		))
	}

	return b.String()
}
