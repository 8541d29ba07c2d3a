package cli

import (
	"testing"

	"cardworth/internal/model"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{123456, "$1,234.56"},
		{-35500, "-$355.00"},
		{100000000, "$1,000,000.00"},
	}

	for _, tt := range tests {
		if got := FormatCents(tt.cents); got != tt.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatDollars_Rounds(t *testing.T) {
	if got := FormatDollars(3550049); got != "$35,500" {
		t.Errorf("FormatDollars(3550049) = %q, want $35,500", got)
	}
	if got := FormatDollars(3550050); got != "$35,501" {
		t.Errorf("FormatDollars(3550050) = %q, want $35,501", got)
	}
}

func TestFormatMultiplier(t *testing.T) {
	if got := FormatMultiplier(3); got != "3x" {
		t.Errorf("FormatMultiplier(3) = %q, want 3x", got)
	}
	if got := FormatMultiplier(1.5); got != "1.5x" {
		t.Errorf("FormatMultiplier(1.5) = %q, want 1.5x", got)
	}
}

func TestFormatFrequency(t *testing.T) {
	if got := FormatFrequency(model.FrequencyMonthly); got != "monthly (12/yr)" {
		t.Errorf("FormatFrequency(monthly) = %q", got)
	}
	if got := FormatFrequency(model.FrequencyUnspecified); got != "—" {
		t.Errorf("FormatFrequency(unspecified) = %q, want dash", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(1000, 400); got != "+$6.00" {
		t.Errorf("FormatDelta = %q, want +$6.00", got)
	}
	if got := FormatDelta(400, 1000); got != "-$6.00" {
		t.Errorf("FormatDelta = %q, want -$6.00", got)
	}
}
