package cmd

import (
	"fmt"

	"cardworth/internal/cli"
	"cardworth/internal/engine"
	"cardworth/internal/model"

	"github.com/spf13/cobra"
)

var curveSamples int

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Effective rate as a function of annual spend",
	RunE:  runCurve,
}

func init() {
	curveCmd.Flags().IntVar(&curveSamples, "samples", 24, "Number of points to sample")
	rootCmd.AddCommand(curveCmd)
}

func runCurve(cmd *cobra.Command, args []string) error {
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
		points := engine.SampleCurve(card.Spending, f.CentsPerPoint, f.Value.NetAnnualCents, targets, curveSamples)
		printCurve(f, points)
	}
	return nil
}

func printCurve(f cardFigures, points []model.CurvePoint) {
	fmt.Println(cli.RenderTitle(f.Card.Name + " — rate curve"))

	if len(points) == 0 {
		fmt.Println("  No curve to draw: rate does not vary with spend here.")
		fmt.Println()
		return
	}

	rates := make([]float64, len(points))
	maxRate := points[0].EffectiveRate
	for i, p := range points {
		rates[i] = p.EffectiveRate
		if p.EffectiveRate > maxRate {
			maxRate = p.EffectiveRate
		}
	}

	fmt.Printf("  %s\n\n", cli.RenderSparkline(rates))

	first, last := points[0], points[len(points)-1]
	fmt.Printf("  %s @ %s  →  %s @ %s\n",
		cli.FormatRate(first.EffectiveRate), cli.FormatCents(first.TotalSpendCents),
		cli.FormatRate(last.EffectiveRate), cli.FormatCents(last.TotalSpendCents))

	// A handful of labelled rows so the sparkline has an axis.
	stride := len(points) / 6
	if stride < 1 {
		stride = 1
	}
	fmt.Println()
	for i := 0; i < len(points); i += stride {
		p := points[i]
		bar := cli.RenderHorizontalBar(p.EffectiveRate, maxRate, 30)
		fmt.Printf("  %12s  %s %s\n", cli.FormatCents(p.TotalSpendCents), bar, cli.FormatRate(p.EffectiveRate))
	}
	fmt.Println()
}
