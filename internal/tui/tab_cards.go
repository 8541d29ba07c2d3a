package tui

import (
	"fmt"
	"strings"

	"cardworth/internal/cli"
	"cardworth/internal/tui/components"
	"cardworth/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCardsTab(cw, contentH int) string {
	if len(a.figures) == 0 {
		return a.renderNoCards(cw)
	}

	if a.isCompactLayout() {
		return a.renderCardList(cw) + "\n" + a.renderCardDetail(cw)
	}

	// Split view: list left, detail right
	widths := components.LayoutRow(cw, 2)
	list := a.renderCardList(widths[0])
	detail := a.renderCardDetail(widths[1])
	return components.CardRow([]string{list, detail})
}

func (a App) renderCardList(w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	nameW := innerW - 14
	if nameW < 10 {
		nameW = 10
	}

	var b strings.Builder
	for i, f := range a.figures {
		name := truncStr(f.Card.Name, nameW)
		net := cli.FormatCents(f.Value.NetAnnualCents)
		if i == a.selected {
			line := fmt.Sprintf("%-*s %11s", nameW, name, net)
			b.WriteString(markStyle.Render("▸ "))
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s ", nameW, name)))
			b.WriteString(numStyle.Render(fmt.Sprintf("%11s", net)))
		}
		b.WriteString("\n")
	}
	b.WriteString(numStyle.Render("[j/k] select"))

	return components.ContentCard("Cards", b.String(), w)
}

func (a App) renderCardDetail(w int) string {
	t := theme.Active

	f, ok := a.current()
	if !ok {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	signed := func(cents int64) string {
		s := cli.FormatCents(cents)
		if cents < 0 {
			return negStyle.Render(s)
		}
		return posStyle.Render(s)
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Issuer:     ") + valStyle.Render(f.Card.Issuer) + "\n")
	b.WriteString(labelStyle.Render("Annual fee: ") + valStyle.Render(cli.FormatCents(f.Card.AnnualFeeCents)) + "\n")
	b.WriteString(labelStyle.Render("File:       ") + dimStyle.Render(truncStr(f.Card.FilePath, components.CardInnerWidth(w)-12)) + "\n\n")

	b.WriteString(labelStyle.Render("Benefits") + "\n")
	for _, line := range f.Value.Benefits {
		name := line.Name
		if line.Overridden {
			name += " *"
		}
		fmt.Fprintf(&b, "  %s %s\n",
			valStyle.Render(fmt.Sprintf("%-24s", truncStr(name, 24))),
			signed(line.EffectiveCents))
	}

	if len(f.Value.Adjustments) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Adjustments") + "\n")
		for _, line := range f.Value.Adjustments {
			fmt.Fprintf(&b, "  %s %s\n",
				valStyle.Render(fmt.Sprintf("%-24s", truncStr(line.Name, 24))),
				signed(line.EffectiveCents))
		}
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Net annual value: ") + signed(f.Value.NetAnnualCents))
	if hasUserOverrides(f) {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("* user-adjusted valuation"))
	}

	return components.ContentCard(f.Card.Name, b.String(), w)
}

func hasUserOverrides(f cardFigures) bool {
	for _, bn := range f.Card.Benefits {
		if bn.UserOverride.IsSet() {
			return true
		}
	}
	return false
}
