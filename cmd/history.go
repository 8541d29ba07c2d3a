package cmd

import (
	"fmt"
	"time"

	"cardworth/internal/cli"
	"cardworth/internal/config"
	"cardworth/internal/store"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyPrune string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recorded valuation runs over time",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum runs to show per card")
	historyCmd.Flags().StringVar(&historyPrune, "prune", "", "Delete runs older than this duration (e.g. 720h)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cards, _, err := loadCards()
	if err != nil {
		return err
	}

	h, err := store.Open(config.HistoryPath())
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = h.Close() }()

	if historyPrune != "" {
		d, err := time.ParseDuration(historyPrune)
		if err != nil {
			return fmt.Errorf("invalid prune duration %q: %w", historyPrune, err)
		}
		n, err := h.Prune(time.Now().Add(-d))
		if err != nil {
			return err
		}
		fmt.Printf("  Pruned %d runs older than %s\n", n, historyPrune)
		return nil
	}

	if len(cards) == 0 {
		noCardsMessage()
		return nil
	}

	for _, card := range cards {
		runs, err := h.ForCard(card.ID, historyLimit)
		if err != nil {
			return err
		}
		printHistory(card.Name, runs)
	}
	return nil
}

func printHistory(cardName string, runs []store.Run) {
	fmt.Println(cli.RenderTitle(cardName + " — history"))

	if len(runs) == 0 {
		fmt.Println("  No recorded runs yet.")
		fmt.Println()
		return
	}

	// Runs come back newest-first; chart oldest-first.
	nets := make([]float64, len(runs))
	for i, r := range runs {
		nets[len(runs)-1-i] = float64(r.NetValueCents)
	}
	fmt.Printf("  net value: %s\n\n", cli.RenderSparkline(nets))

	var rows [][]string
	for _, r := range runs {
		rows = append(rows, []string{
			r.At.Local().Format("2006-01-02 15:04"),
			cli.Signed(cli.FormatCents(r.NetValueCents), r.NetValueCents),
			cli.FormatCents(r.TotalSpendCents),
			cli.FormatRate(r.EffectiveRate),
		})
	}
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"When", "Net/yr", "Spend/yr", "Effective"},
		Rows:    rows,
	}))
}
