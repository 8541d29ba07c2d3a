package cmd

import (
	"fmt"
	"sort"

	"cardworth/internal/config"
	"cardworth/internal/pointhub"

	"github.com/spf13/cobra"
)

var (
	flagValuationsFetch string
	flagValuationsDry   bool
)

var valuationsCmd = &cobra.Command{
	Use:   "valuations",
	Short: "Show or update point valuations",
	Long:  "Lists the effective cents-per-point for each reward program. With --fetch, downloads a published valuation feed and saves the values as config overrides.",
	RunE:  runValuations,
}

func init() {
	valuationsCmd.Flags().StringVar(&flagValuationsFetch, "fetch", "", "Feed URL to fetch valuations from")
	valuationsCmd.Flags().BoolVar(&flagValuationsDry, "dry-run", false, "With --fetch, show fetched values without saving")
	rootCmd.AddCommand(valuationsCmd)
}

func runValuations(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if flagValuationsFetch != "" {
		return fetchValuations(cmd, cfg)
	}

	printValuationTable(cfg)
	return nil
}

func fetchValuations(cmd *cobra.Command, cfg config.Config) error {
	client := pointhub.NewClient(flagValuationsFetch)
	if client == nil {
		return fmt.Errorf("invalid feed URL %q (must be http or https)", flagValuationsFetch)
	}

	set, err := client.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	if set.Source != "" {
		fmt.Printf("  Feed: %s\n", set.Source)
	}
	if !set.UpdatedAt.IsZero() {
		fmt.Printf("  Published: %s\n", set.UpdatedAt.Format("2006-01-02"))
	}
	if set.Skipped > 0 {
		fmt.Printf("  Skipped %d entries with missing or invalid values\n", set.Skipped)
	}
	fmt.Println()

	programs := make([]string, 0, len(set.Values))
	for p := range set.Values {
		programs = append(programs, p)
	}
	sort.Strings(programs)

	changed := 0
	for _, p := range programs {
		cents := set.Values[p]
		current := config.CentsPerPoint(cfg, p, 0)
		if cents == current {
			fmt.Printf("    %-22s %.2f¢/pt\n", p, cents)
			continue
		}
		fmt.Printf("    %-22s %.2f¢/pt (was %.2f)\n", p, cents, current)
		changed++
	}
	fmt.Println()

	if flagValuationsDry {
		fmt.Printf("  Dry run: %d values would change. Re-run without --dry-run to save.\n", changed)
		return nil
	}

	if cfg.Valuations.Overrides == nil {
		cfg.Valuations.Overrides = make(map[string]float64, len(set.Values))
	}
	for p, cents := range set.Values {
		cfg.Valuations.Overrides[p] = cents
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved %d valuations to %s\n", len(set.Values), config.Path())
	return nil
}

func printValuationTable(cfg config.Config) {
	programs := make([]string, 0, len(config.DefaultValuations))
	for p := range config.DefaultValuations {
		programs = append(programs, p)
	}
	for p := range cfg.Valuations.Overrides {
		if _, ok := config.DefaultValuations[p]; !ok {
			programs = append(programs, p)
		}
	}
	sort.Strings(programs)

	fmt.Println("  Point Valuations")
	fmt.Println()
	for _, p := range programs {
		cents := config.CentsPerPoint(cfg, p, 0)
		marker := ""
		if _, ok := cfg.Valuations.Overrides[p]; ok {
			marker = "  (override)"
		}
		fmt.Printf("    %-22s %.2f¢/pt%s\n", p, cents, marker)
	}
	fmt.Println()
	fmt.Println("  Update from a feed: cardworth valuations --fetch <url>")
}
