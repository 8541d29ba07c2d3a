package cmd

import (
	"fmt"
	"sort"

	"cardworth/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Cards directory: %s\n", config.CardsDir(cfg))
	fmt.Printf("    Target rates:    %v\n", config.TargetRates(cfg))
	fmt.Printf("    Record history:  %v\n", cfg.General.RecordHistory)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Valuations]")
	if len(cfg.Valuations.Overrides) == 0 {
		fmt.Println("    No overrides (using built-in point values)")
	} else {
		programs := make([]string, 0, len(cfg.Valuations.Overrides))
		for p := range cfg.Valuations.Overrides {
			programs = append(programs, p)
		}
		sort.Strings(programs)
		for _, p := range programs {
			fmt.Printf("    %-22s %.2f¢/pt\n", p, cfg.Valuations.Overrides[p])
		}
	}
	fmt.Println()

	fmt.Println("  Run `cardworth setup` to reconfigure.")
	return nil
}
