package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cardworth/internal/config"
	"cardworth/internal/source"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to cardworth!")
	fmt.Println()

	// 1. Cards directory
	fmt.Println("  1. Cards directory")
	fmt.Printf("     Where your card .toml files live [%s]\n", config.CardsDir(cfg))
	fmt.Print("     > ")
	dir, _ := reader.ReadString('\n')
	dir = strings.TrimSpace(dir)
	if dir != "" {
		cfg.General.CardsDir = dir
	}
	fmt.Println()

	// 2. Breakeven targets
	fmt.Println("  2. Breakeven target rates")
	fmt.Printf("     Comma-separated percentages [%s]\n", formatTargets(config.TargetRates(cfg)))
	fmt.Print("     > ")
	targets, _ := reader.ReadString('\n')
	targets = strings.TrimSpace(targets)
	if targets != "" {
		parsed, err := parseTargets(targets)
		if err != nil {
			fmt.Printf("     Could not parse (%v), keeping current\n", err)
		} else {
			cfg.General.DefaultTargets = parsed
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.Path())

	// Offer a starter card if none exist yet
	files, _ := source.ScanDir(config.CardsDir(cfg))
	if len(files) == 0 {
		fmt.Println()
		fmt.Println("  4. No card files found. Create a starter card? (y/N)")
		fmt.Print("     > ")
		answer, _ := reader.ReadString('\n')
		if strings.EqualFold(strings.TrimSpace(answer), "y") {
			path, err := writeStarterCard(config.CardsDir(cfg))
			if err != nil {
				return fmt.Errorf("writing starter card: %w", err)
			}
			fmt.Printf("     Created %s, edit it to match your card.\n", path)
		}
	}

	fmt.Println()
	fmt.Println("  Run `cardworth setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func parseTargets(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func formatTargets(targets []float64) string {
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = strconv.FormatFloat(t, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

const starterCard = `name = "My Card"
issuer = "My Bank"
program = "cashback"
annual_fee_cents = 9500

[[benefit]]
id = "travel-credit"
name = "Annual travel credit"
frequency = "annual"
period_value_cents = 5000

[[spending]]
category = "dining"
amount_cents = 40000
frequency = "monthly"
multiplier = 3.0

[[spending]]
category = "everything-else"
amount_cents = 100000
frequency = "monthly"
multiplier = 1.0
`

func writeStarterCard(cardsDir string) (string, error) {
	if err := os.MkdirAll(cardsDir, 0o750); err != nil {
		return "", err
	}
	path := filepath.Join(cardsDir, "my-card.toml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, []byte(starterCard), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
