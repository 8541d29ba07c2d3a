package cmd

import (
	"fmt"

	"cardworth/internal/cli"
	"cardworth/internal/source"

	"github.com/spf13/cobra"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List card files and their headline numbers",
	RunE:  runCards,
}

func init() {
	rootCmd.AddCommand(cardsCmd)
}

func runCards(cmd *cobra.Command, args []string) error {
	cards, cfg, err := loadCards()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		noCardsMessage()
		return nil
	}

	fmt.Println(cli.RenderTitle("Cards"))

	var rows [][]string
	for _, card := range cards {
		f := computeCard(cfg, card)
		rows = append(rows, []string{
			card.ID,
			card.Issuer,
			cli.FormatCents(card.AnnualFeeCents),
			cli.Signed(cli.FormatCents(f.Value.NetAnnualCents), f.Value.NetAnnualCents),
			cli.FormatRate(f.Rewards.EffectiveReturnRate),
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Card", "Issuer", "Fee", "Net/yr", "Effective"},
		Rows:    rows,
	}))

	fmt.Printf("  %d cards across %d issuers\n\n", len(cards), source.CountIssuers(cards))
	return nil
}
