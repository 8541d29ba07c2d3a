package source

import (
	"os"
	"path/filepath"
	"testing"

	"cardworth/internal/model"
)

// writeCard creates a temp card file and returns a DiscoveredFile for it.
func writeCard(t *testing.T, body string) DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test-card.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return DiscoveredFile{Path: path, CardID: "test-card"}
}

func TestParseFile_FullCard(t *testing.T) {
	df := writeCard(t, `
name = "Sapphire Preferred"
issuer = "Chase"
program = "chase-ur"
annual_fee_cents = 9500

[[benefit]]
id = "hotel-credit"
name = "Annual hotel credit"
frequency = "annual"
period_value_cents = 5000
default_proportion = 0.8

[[benefit]]
id = "doordash"
frequency = "monthly"
period_value_cents = 1000
default_value_cents = 6000
user_value_cents = 3000
user_note = "only order half the months"

  [[benefit.override]]
  period = 12
  value_cents = 2000

[[adjustment]]
id = "av-credit"
description = "Travel portal leftover"
frequency = "quarterly"
value_cents = -250

[[spending]]
category = "dining"
amount_cents = 40000
frequency = "monthly"
multiplier = 3
mode = "linear"

[[spending]]
category = "rent"
amount_cents = 150000
frequency = "monthly"
multiplier = 1
mode = "fixed"
`)

	pc := ParseFile(df)
	if pc.Err != nil {
		t.Fatalf("unexpected error: %v", pc.Err)
	}
	card := pc.Card

	if card.Name != "Sapphire Preferred" || card.Issuer != "Chase" {
		t.Errorf("identity = %q/%q", card.Name, card.Issuer)
	}
	if card.AnnualFeeCents != 9500 {
		t.Errorf("AnnualFeeCents = %d, want 9500", card.AnnualFeeCents)
	}
	if card.Valuation.Program != "chase-ur" {
		t.Errorf("Program = %q, want chase-ur", card.Valuation.Program)
	}

	if len(card.Benefits) != 2 {
		t.Fatalf("len(Benefits) = %d, want 2", len(card.Benefits))
	}
	hotel := card.Benefits[0]
	if hotel.DefaultEffective.Kind != model.ValuationProportion || hotel.DefaultEffective.Proportion != 0.8 {
		t.Errorf("hotel DefaultEffective = %+v, want proportion 0.8", hotel.DefaultEffective)
	}
	if hotel.UserOverride.IsSet() {
		t.Error("hotel UserOverride should be unset")
	}

	dd := card.Benefits[1]
	if dd.Name != "doordash" {
		t.Errorf("benefit name fallback = %q, want id", dd.Name)
	}
	if dd.UserOverride.Kind != model.ValuationCents || dd.UserOverride.Cents != 3000 {
		t.Errorf("doordash UserOverride = %+v, want cents 3000", dd.UserOverride)
	}
	if len(dd.Value.Overrides) != 1 || dd.Value.Overrides[0].Period != 12 {
		t.Errorf("doordash period overrides = %+v", dd.Value.Overrides)
	}

	if len(card.Adjustments) != 1 {
		t.Fatalf("len(Adjustments) = %d, want 1", len(card.Adjustments))
	}
	if card.Adjustments[0].Frequency != model.FrequencyQuarterly {
		t.Errorf("adjustment frequency = %v, want quarterly", card.Adjustments[0].Frequency)
	}

	if len(card.Spending) != 2 {
		t.Fatalf("len(Spending) = %d, want 2", len(card.Spending))
	}
	if card.Spending[0].Mode != model.SpendLinear {
		t.Error("dining should be linear")
	}
	if card.Spending[1].Mode != model.SpendFixed {
		t.Error("rent should be fixed")
	}
}

func TestParseFile_RejectsBothCentsAndProportion(t *testing.T) {
	df := writeCard(t, `
name = "Bad Card"

[[benefit]]
id = "broken"
frequency = "annual"
period_value_cents = 100
user_value_cents = 50
user_proportion = 0.5
`)

	pc := ParseFile(df)
	if pc.Err == nil {
		t.Fatal("expected error for benefit with both user cents and proportion")
	}
}

func TestParseFile_RejectsUnknownFrequency(t *testing.T) {
	df := writeCard(t, `
[[benefit]]
id = "weekly-thing"
frequency = "weekly"
period_value_cents = 100
`)

	pc := ParseFile(df)
	if pc.Err == nil {
		t.Fatal("expected error for unknown frequency")
	}
}

func TestParseFile_DefaultsAbsentFieldsToZero(t *testing.T) {
	df := writeCard(t, `
name = "Bare Card"
`)

	pc := ParseFile(df)
	if pc.Err != nil {
		t.Fatalf("unexpected error: %v", pc.Err)
	}
	if pc.Card.AnnualFeeCents != 0 {
		t.Errorf("AnnualFeeCents = %d, want 0", pc.Card.AnnualFeeCents)
	}
	if pc.Card.ID != "test-card" {
		t.Errorf("ID = %q, want test-card", pc.Card.ID)
	}
}

func TestScanDir_MissingDirIsEmpty(t *testing.T) {
	files, err := ScanDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != nil {
		t.Errorf("files = %v, want nil", files)
	}
}

func TestScanDir_FindsAndSortsCards(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.toml", "alpha.toml", "config.toml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("name = \"x\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len(files) = %d, want 2 (config.toml and notes.txt skipped)", len(files))
	}
	if files[0].CardID != "alpha" || files[1].CardID != "zeta" {
		t.Errorf("order = %s, %s; want alpha, zeta", files[0].CardID, files[1].CardID)
	}
}
