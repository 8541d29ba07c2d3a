// Package cmd implements the cardworth CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"cardworth/internal/config"
	"cardworth/internal/engine"
	"cardworth/internal/model"
	"cardworth/internal/source"
	"cardworth/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagCardsDir  string
	flagCard      string
	flagTargets   []float64
	flagQuiet     bool
	flagNoHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "cardworth",
	Short: "Credit card value analyzer",
	Long:  "Model what your credit cards are actually worth: net annual value, reward rates, and breakeven spend.",
	RunE:  runValue,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCardsDir, "cards-dir", "d", "", "Card definitions directory (default: config dir)")
	rootCmd.PersistentFlags().StringVarP(&flagCard, "card", "c", "", "Filter to card (substring match on id or name)")
	rootCmd.PersistentFlags().Float64SliceVarP(&flagTargets, "targets", "t", nil, "Breakeven target rates in percent")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this run to the history database")
}

// loadCards is the shared loading path used by all commands. Parse
// failures are reported to stderr but do not abort the run.
func loadCards() ([]model.CardSnapshot, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config problem (%v), using defaults\n", err)
	}

	dir := flagCardsDir
	if dir == "" {
		dir = config.CardsDir(cfg)
	}

	parsed, err := source.LoadAll(dir)
	if err != nil {
		return nil, cfg, err
	}

	var cards []model.CardSnapshot
	for _, pc := range parsed {
		if pc.Err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Skipping %s: %v\n", pc.File.CardID, pc.Err)
			}
			continue
		}
		cards = append(cards, pc.Card)
	}

	if flagCard != "" {
		cards = filterCards(cards, flagCard)
	}

	return cards, cfg, nil
}

// filterCards matches cards by id or name substring, case-insensitively.
func filterCards(cards []model.CardSnapshot, query string) []model.CardSnapshot {
	q := strings.ToLower(query)
	var out []model.CardSnapshot
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.ID), q) ||
			strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// cardFigures bundles everything computed for one card in one pass.
type cardFigures struct {
	Card          model.CardSnapshot
	CentsPerPoint float64
	Value         model.ValueSummary
	Rewards       model.RewardSummary
}

func computeCard(cfg config.Config, card model.CardSnapshot) cardFigures {
	cpp := config.CentsPerPoint(cfg, card.Valuation.Program, card.Valuation.CentsPerPoint)
	value := engine.NetValue(card)
	rewards := engine.Rewards(card.Spending, cpp, value.NetAnnualCents)
	return cardFigures{Card: card, CentsPerPoint: cpp, Value: value, Rewards: rewards}
}

func targetRates(cfg config.Config) []float64 {
	if len(flagTargets) > 0 {
		return flagTargets
	}
	return config.TargetRates(cfg)
}

// recordRun appends this computation to the history database unless
// disabled. History failures never break the command.
func recordRun(cfg config.Config, f cardFigures) {
	if flagNoHistory || !cfg.General.RecordHistory {
		return
	}

	h, err := store.Open(config.HistoryPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  History unavailable: %v\n", err)
		}
		return
	}
	defer func() { _ = h.Close() }()

	_ = h.Record(store.Run{
		CardID:            f.Card.ID,
		CardName:          f.Card.Name,
		NetValueCents:     f.Value.NetAnnualCents,
		TotalSpendCents:   f.Rewards.TotalAnnualSpend,
		TotalRewardsCents: f.Rewards.TotalRewards,
		EffectiveRate:     f.Rewards.EffectiveReturnRate,
	})
}

func noCardsMessage() {
	fmt.Println("\n  No card files found.")
	fmt.Println("  Run `cardworth setup` to create your first card.")
}
