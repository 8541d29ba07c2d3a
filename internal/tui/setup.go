package tui

import (
	"fmt"
	"strings"

	"cardworth/internal/config"
	"cardworth/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the answers collected by the first-run form.
type setupValues struct {
	CardsDir      string
	Theme         string
	RecordHistory bool
}

// newSetupForm builds the first-run huh form. cardCount is what the
// initial scan found, shown so the user knows the directory is right.
func newSetupForm(cardsDir string, cardCount int, vals *setupValues) *huh.Form {
	vals.CardsDir = cardsDir
	vals.Theme = theme.FlexokiDark.Name
	vals.RecordHistory = true

	themeOptions := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOptions[i] = huh.NewOption(t.Name, t.Name)
	}

	found := "No card files found yet; you can add them later."
	if cardCount > 0 {
		found = fmt.Sprintf("Found %d card file(s).", cardCount)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to cardworth!").
				Description("A couple of questions before the dashboard starts.\n"+found),

			huh.NewInput().
				Title("Cards directory").
				Description("Where your card .toml files live").
				Value(&vals.CardsDir),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&vals.Theme),

			huh.NewConfirm().
				Title("Record valuation history?").
				Description("Keeps a local SQLite log of each run for deltas and charts").
				Value(&vals.RecordHistory),
		),
	)
}

func (a *App) saveSetupConfig() error {
	cfg, _ := config.Load()

	if dir := strings.TrimSpace(a.setupVals.CardsDir); dir != "" {
		cfg.General.CardsDir = dir
		a.cardsDir = dir
	}

	cfg.Appearance.Theme = a.setupVals.Theme
	theme.SetActive(cfg.Appearance.Theme)

	cfg.General.RecordHistory = a.setupVals.RecordHistory

	return config.Save(cfg)
}
