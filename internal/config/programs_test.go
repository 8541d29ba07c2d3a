package config

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestLookupValuationAt_UsesEffectiveDate(t *testing.T) {
	program := "test-program-windowed"
	orig, had := defaultValuationHistory[program]
	if had {
		defer func() { defaultValuationHistory[program] = orig }()
	} else {
		defer delete(defaultValuationHistory, program)
	}

	defaultValuationHistory[program] = []programValuationVersion{
		{
			EffectiveFrom: mustDate(t, "2025-01-01"),
			Valuation:     ProgramValuation{CentsPerPoint: 1.0},
		},
		{
			EffectiveFrom: mustDate(t, "2025-07-01"),
			Valuation:     ProgramValuation{CentsPerPoint: 0.8},
		},
	}

	aprVal, ok := LookupValuationAt(program, mustDate(t, "2025-04-15"))
	if !ok {
		t.Fatal("LookupValuationAt returned !ok for historical program")
	}
	if aprVal.CentsPerPoint != 1.0 {
		t.Fatalf("April CentsPerPoint = %.2f, want 1.0", aprVal.CentsPerPoint)
	}

	augVal, ok := LookupValuationAt(program, mustDate(t, "2025-08-15"))
	if !ok {
		t.Fatal("LookupValuationAt returned !ok for historical program in later window")
	}
	if augVal.CentsPerPoint != 0.8 {
		t.Fatalf("August CentsPerPoint = %.2f, want 0.8", augVal.CentsPerPoint)
	}
}

func TestLookupValuationAt_UsesLatestWhenTimeZero(t *testing.T) {
	program := "test-program-latest"
	orig, had := defaultValuationHistory[program]
	if had {
		defer func() { defaultValuationHistory[program] = orig }()
	} else {
		defer delete(defaultValuationHistory, program)
	}

	defaultValuationHistory[program] = []programValuationVersion{
		{
			EffectiveFrom: mustDate(t, "2025-01-01"),
			Valuation:     ProgramValuation{CentsPerPoint: 1.0},
		},
		{
			EffectiveFrom: mustDate(t, "2025-09-01"),
			Valuation:     ProgramValuation{CentsPerPoint: 1.5},
		},
	}

	v, ok := LookupValuationAt(program, time.Time{})
	if !ok {
		t.Fatal("LookupValuationAt returned !ok for program with history")
	}
	if v.CentsPerPoint != 1.5 {
		t.Fatalf("zero-time lookup CentsPerPoint = %.2f, want 1.5", v.CentsPerPoint)
	}
}

func TestNormalizeProgramName_Aliases(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"UR", "chase-ur"},
		{"mr", "amex-mr"},
		{"chase-ur", "chase-ur"},
		{"  Cash  ", "cashback"},
		{"mystery-program", "mystery-program"},
	}

	for _, tt := range tests {
		if got := NormalizeProgramName(tt.raw); got != tt.want {
			t.Errorf("NormalizeProgramName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCentsPerPoint_Precedence(t *testing.T) {
	cfg := Config{
		Valuations: ValuationOverrides{
			Overrides: map[string]float64{"chase-ur": 1.6},
		},
	}

	// Card-level value wins over everything.
	if got := CentsPerPoint(cfg, "chase-ur", 2.5); got != 2.5 {
		t.Errorf("card value: got %.2f, want 2.5", got)
	}

	// Config override beats the built-in table.
	if got := CentsPerPoint(cfg, "chase-ur", 0); got != 1.6 {
		t.Errorf("config override: got %.2f, want 1.6", got)
	}

	// Built-in table when nothing else is set.
	if got := CentsPerPoint(Config{}, "cashback", 0); got != 1.0 {
		t.Errorf("built-in: got %.2f, want 1.0", got)
	}

	// Unknown program defaults to 1.0.
	if got := CentsPerPoint(Config{}, "mystery-program", 0); got != 1.0 {
		t.Errorf("unknown program: got %.2f, want 1.0", got)
	}
}
