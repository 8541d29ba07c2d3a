package cmd

import (
	"fmt"

	"cardworth/internal/cli"
	"cardworth/internal/engine"
	"cardworth/internal/model"

	"github.com/spf13/cobra"
)

var breakevenDetail bool

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Spend required to hit target effective rates",
	RunE:  runBreakeven,
}

func init() {
	breakevenCmd.Flags().BoolVar(&breakevenDetail, "detail", false, "Show per-category spend split for each target")
	rootCmd.AddCommand(breakevenCmd)
}

func runBreakeven(cmd *cobra.Command, args []string) error {
	cards, cfg, err := loadCards()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		noCardsMessage()
		return nil
	}

	targets := targetRates(cfg)
	for _, card := range cards {
		f := computeCard(cfg, card)
		result := engine.SolveBreakeven(card.Spending, f.CentsPerPoint, f.Value.NetAnnualCents, targets)
		printBreakeven(f, result)
	}
	return nil
}

func printBreakeven(f cardFigures, result model.BreakevenResult) {
	fmt.Println(cli.RenderTitle(f.Card.Name + " — breakeven"))

	if result.ConstantRate != nil {
		fmt.Printf("  Effective rate is a constant %s at any spend level.\n", cli.FormatRate(*result.ConstantRate))
		fmt.Println("  Targets above or below that are never crossed.")
		fmt.Println()
		return
	}

	var rows [][]string
	for _, row := range result.Rows {
		if row.RequiredTotalCents == nil {
			rows = append(rows, []string{cli.FormatRate(row.TargetRate), "unreachable", ""})
			continue
		}
		rows = append(rows, []string{
			cli.FormatRate(row.TargetRate),
			cli.FormatCents(*row.RequiredTotalCents),
			cli.FormatDelta(*row.RequiredTotalCents, f.Rewards.TotalAnnualSpend),
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Target", "Spend needed/yr", "vs current"},
		Rows:    rows,
	}))

	fmt.Printf("  Current: %s spend at %s effective\n\n",
		cli.FormatCents(f.Rewards.TotalAnnualSpend),
		cli.FormatRate(f.Rewards.EffectiveReturnRate))

	if breakevenDetail {
		for _, row := range result.Rows {
			if row.RequiredTotalCents == nil {
				continue
			}
			printCategorySplit(row)
		}
	}
}

func printCategorySplit(row model.BreakevenRow) {
	fmt.Printf("  At %s:\n", cli.FormatRate(row.TargetRate))
	for _, cat := range row.Categories {
		tag := ""
		if cat.Mode == model.SpendFixed {
			tag = " (fixed)"
		}
		fmt.Printf("    %-20s %s%s\n", cat.Category, cli.FormatCents(cat.SpendCents), tag)
	}
	fmt.Println()
}
