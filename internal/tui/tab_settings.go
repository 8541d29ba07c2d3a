package tui

import (
	"fmt"
	"strconv"
	"strings"

	"cardworth/internal/cli"
	"cardworth/internal/config"
	"cardworth/internal/tui/components"
	"cardworth/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldCardsDir = iota
	settingsFieldTargets
	settingsFieldTheme
	settingsFieldRecordHistory
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldCardsDir:
		ti.Placeholder = config.DefaultCardsDir()
		ti.SetValue(cfg.General.CardsDir)
	case settingsFieldTargets:
		ti.Placeholder = "1, 2, 3, 5"
		ti.SetValue(formatTargetList(config.TargetRates(cfg)))
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldRecordHistory:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(cfg.General.RecordHistory))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldCardsDir:
		cfg.General.CardsDir = val
	case settingsFieldTargets:
		if rates, err := parseTargetList(val); err == nil && len(rates) > 0 {
			cfg.General.DefaultTargets = rates
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldRecordHistory:
		cfg.General.RecordHistory = val == "true" || val == "1" || val == "yes"
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr == nil {
		a.recompute()
	}
}

func parseTargetList(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func formatTargetList(rates []float64) string {
	parts := make([]string, len(rates))
	for i, r := range rates {
		parts[i] = strconv.FormatFloat(r, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	cardsDirDisplay := cfg.General.CardsDir
	if cardsDirDisplay == "" {
		cardsDirDisplay = config.DefaultCardsDir() + " (default)"
	}

	fields := []field{
		{"Cards Directory", cardsDirDisplay},
		{"Target Rates", formatTargetList(config.TargetRates(cfg)) + "%"},
		{"Theme", cfg.Appearance.Theme},
		{"Record History", strconv.FormatBool(cfg.General.RecordHistory)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Point valuations card: effective cents-per-point for each program in use
	var valBody strings.Builder
	seen := map[string]bool{}
	for _, f := range a.figures {
		program := config.NormalizeProgramName(f.Card.Valuation.Program)
		if seen[program] {
			continue
		}
		seen[program] = true
		valBody.WriteString(labelStyle.Render(fmt.Sprintf("%-22s ", program)))
		valBody.WriteString(valueStyle.Render(fmt.Sprintf("%.2f¢/pt", f.CentsPerPoint)))
		valBody.WriteString("\n")
	}
	if valBody.Len() == 0 {
		valBody.WriteString(labelStyle.Render("No cards loaded"))
	}

	// General info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Cards directory: ") + valueStyle.Render(a.cardsDir) + "\n")
	infoBody.WriteString(labelStyle.Render("Cards loaded:    ") + valueStyle.Render(cli.FormatNumber(int64(len(a.cards)))) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Point Valuations", strings.TrimRight(valBody.String(), "\n"), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
