package tui

import (
	"fmt"
	"strings"

	"cardworth/internal/cli"
	"cardworth/internal/model"
	"cardworth/internal/tui/components"
	"cardworth/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRewardsTab(cw int) string {
	t := theme.Active

	f, ok := a.current()
	if !ok {
		return a.renderNoCards(cw)
	}

	var b strings.Builder

	// Row 1: headline rates for the selected card
	if f.Rewards.ZeroSpend {
		net := f.Value.NetAnnualCents
		cards := []struct{ Label, Value, Delta string }{
			{"Card", truncStr(f.Card.Name, 24), fmt.Sprintf("%d of %d", a.selected+1, len(a.figures))},
			{"Spend", "$0.00", "no planned spending"},
			{"Net Value", cli.FormatCents(net), "per year regardless"},
			{"Point Value", fmt.Sprintf("%.2f¢/pt", f.CentsPerPoint), f.Card.Valuation.Program},
		}
		b.WriteString(components.MetricCardRow(cards, cw))
		b.WriteString("\n")
		return b.String()
	}

	cards := []struct{ Label, Value, Delta string }{
		{"Card", truncStr(f.Card.Name, 24), fmt.Sprintf("%d of %d", a.selected+1, len(a.figures))},
		{"Spend Return", cli.FormatRate(f.Rewards.SpendReturnRate), "rewards / spend"},
		{"Net Worth Effect", cli.FormatRate(f.Rewards.NetWorthEffectRate), "incl. fee and benefits"},
		{"Effective Return", cli.FormatRate(f.Rewards.EffectiveReturnRate), "the headline number"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: per-category breakdown with share bars
	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Spending Categories", a.renderRewardLines(f, innerW), cw))
	b.WriteString("\n")

	// Row 3: totals
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var totals strings.Builder
	totals.WriteString(labelStyle.Render("Annual spend:   ") + valStyle.Render(cli.FormatCents(f.Rewards.TotalAnnualSpend)) + "\n")
	totals.WriteString(labelStyle.Render("Annual rewards: ") + valStyle.Render(cli.FormatCents(int64(f.Rewards.TotalRewards))) + "\n")
	totals.WriteString(labelStyle.Render("Point value:    ") + valStyle.Render(fmt.Sprintf("%.2f¢/pt (%s)", f.CentsPerPoint, f.Card.Valuation.Program)))
	b.WriteString(components.ContentCard("Totals", totals.String(), cw))

	return b.String()
}

func (a App) renderRewardLines(f cardFigures, innerW int) string {
	t := theme.Active

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	fixedStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	nameW := innerW / 4
	if nameW < 12 {
		nameW = 12
	}
	// name + spend(11) + mult(6) + rewards(11) + rate(8) + spaces
	barMax := innerW - nameW - 42
	if barMax < 1 {
		barMax = 1
	}

	var maxReward float64
	for _, line := range f.Rewards.Lines {
		if line.AnnualReward > maxReward {
			maxReward = line.AnnualReward
		}
	}

	var b strings.Builder
	for _, line := range f.Rewards.Lines {
		barLen := 0
		if maxReward > 0 {
			barLen = int(line.AnnualReward / maxReward * float64(barMax))
		}
		name := truncStr(line.Category, nameW)
		if line.Mode == model.SpendFixed {
			name = truncStr(line.Category+" ◆", nameW)
		}
		fmt.Fprintf(&b, "%s %s %s %s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, name)),
			numStyle.Render(fmt.Sprintf("%11s", cli.FormatCents(line.AnnualSpend))),
			numStyle.Render(fmt.Sprintf("%5s", cli.FormatMultiplier(line.Multiplier))),
			numStyle.Render(fmt.Sprintf("%11s", cli.FormatCents(int64(line.AnnualReward)))),
			numStyle.Render(fmt.Sprintf("%7s", cli.FormatRate(line.ReturnRate))),
			barStyle.Render(strings.Repeat("█", barLen)))
	}
	b.WriteString(fixedStyle.Render("◆ fixed spend (does not scale)"))
	return b.String()
}
