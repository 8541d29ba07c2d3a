package cmd

import (
	"fmt"

	"cardworth/internal/cli"

	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Reward rates for planned spending",
	Long:  "Shows per-category reward earnings and the three headline rates: spend return, net worth effect, and effective return.",
	RunE:  runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, args []string) error {
	cards, cfg, err := loadCards()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		noCardsMessage()
		return nil
	}

	for _, card := range cards {
		f := computeCard(cfg, card)
		printRates(f)
		recordRun(cfg, f)
	}
	return nil
}

func printRates(f cardFigures) {
	fmt.Println(cli.RenderTitle(f.Card.Name + " — rewards"))

	var rows [][]string
	for _, line := range f.Rewards.Lines {
		rows = append(rows, []string{
			line.Category,
			cli.FormatCents(line.AnnualSpend),
			cli.FormatMultiplier(line.Multiplier),
			cli.FormatCents(int64(line.AnnualReward)),
			cli.FormatRate(line.ReturnRate),
		})
	}
	rows = append(rows, []string{cli.SeparatorRow})
	rows = append(rows, []string{
		"Total",
		cli.FormatCents(f.Rewards.TotalAnnualSpend),
		"",
		cli.FormatCents(int64(f.Rewards.TotalRewards)),
		"",
	})

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Spend/yr", "Mult", "Rewards/yr", "Rate"},
		Rows:    rows,
	}))

	fmt.Printf("  Point value: %.2f¢/pt\n\n", f.CentsPerPoint)

	if f.Rewards.ZeroSpend {
		fmt.Printf("  No planned spending. Net value works out to %s per year regardless.\n\n",
			cli.Signed(cli.FormatCents(int64(f.Rewards.EffectiveReturnRate*100)), int64(f.Rewards.EffectiveReturnRate*100)))
		return
	}

	fmt.Printf("  Spend return:      %s\n", cli.FormatRate(f.Rewards.SpendReturnRate))
	fmt.Printf("  Net worth effect:  %s\n", cli.FormatRate(f.Rewards.NetWorthEffectRate))
	fmt.Printf("  Effective return:  %s\n\n", cli.FormatRate(f.Rewards.EffectiveReturnRate))
}
