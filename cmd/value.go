package cmd

import (
	"fmt"

	"cardworth/internal/cli"
	"cardworth/internal/config"
	"cardworth/internal/model"
	"cardworth/internal/store"

	"github.com/spf13/cobra"
)

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Net annual value breakdown per card",
	RunE:  runValue,
}

func init() {
	rootCmd.AddCommand(valueCmd)
}

func runValue(cmd *cobra.Command, args []string) error {
	cards, cfg, err := loadCards()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		noCardsMessage()
		return nil
	}

	previous := latestRuns(cfg)

	for _, card := range cards {
		f := computeCard(cfg, card)
		printValueBreakdown(f, previous)
		recordRun(cfg, f)
	}

	if len(cards) > 1 {
		printValueTotals(cfg, cards)
	}
	return nil
}

// latestRuns loads the most recent recorded run per card, for deltas.
// Missing or broken history just means no deltas.
func latestRuns(cfg config.Config) map[string]store.Run {
	if flagNoHistory || !cfg.General.RecordHistory {
		return nil
	}
	h, err := store.Open(config.HistoryPath())
	if err != nil {
		return nil
	}
	defer func() { _ = h.Close() }()

	latest, err := h.Latest()
	if err != nil {
		return nil
	}
	return latest
}

func printValueBreakdown(f cardFigures, previous map[string]store.Run) {
	fmt.Println(cli.RenderTitle(f.Card.Name))

	var rows [][]string
	for _, line := range f.Value.Benefits {
		label := line.Name
		if line.Overridden {
			label += " *"
		}
		rows = append(rows, []string{label, cli.Signed(cli.FormatCents(line.EffectiveCents), line.EffectiveCents)})
	}
	for _, line := range f.Value.Adjustments {
		rows = append(rows, []string{line.Name, cli.Signed(cli.FormatCents(line.EffectiveCents), line.EffectiveCents)})
	}
	rows = append(rows, []string{cli.SeparatorRow})
	rows = append(rows, []string{"Benefits", cli.FormatCents(f.Value.BenefitCents)})
	if f.Value.AdjustmentCents != 0 {
		rows = append(rows, []string{"Adjustments", cli.Signed(cli.FormatCents(f.Value.AdjustmentCents), f.Value.AdjustmentCents)})
	}
	fee := -f.Card.AnnualFeeCents
	rows = append(rows, []string{"Annual fee", cli.Signed(cli.FormatCents(fee), fee)})
	rows = append(rows, []string{cli.SeparatorRow})

	net := cli.Signed(cli.FormatCents(f.Value.NetAnnualCents), f.Value.NetAnnualCents)
	if prev, ok := previous[f.Card.ID]; ok {
		net += "  " + cli.FormatDelta(f.Value.NetAnnualCents, prev.NetValueCents)
	}
	rows = append(rows, []string{"Net annual value", net})

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Item", "Annual"},
		Rows:    rows,
	}))

	if hasOverrides(f.Card) {
		fmt.Println("  * user-adjusted valuation")
	}
}

func hasOverrides(card model.CardSnapshot) bool {
	for _, b := range card.Benefits {
		if b.UserOverride.IsSet() {
			return true
		}
	}
	return false
}

func printValueTotals(cfg config.Config, cards []model.CardSnapshot) {
	var total int64
	for _, card := range cards {
		f := computeCard(cfg, card)
		total += f.Value.NetAnnualCents
	}
	fmt.Println(cli.RenderTitle("Portfolio"))
	fmt.Printf("  %d cards, combined net annual value: %s\n\n",
		len(cards), cli.Signed(cli.FormatCents(total), total))
}
