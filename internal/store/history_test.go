package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistory_RecordAndReadBack(t *testing.T) {
	h := openTestHistory(t)

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{CardID: "csr", CardName: "Sapphire Reserve", At: base, NetValueCents: -5000, TotalSpendCents: 1200000, TotalRewardsCents: 36000, EffectiveRate: 2.58},
		{CardID: "csr", CardName: "Sapphire Reserve", At: base.AddDate(0, 1, 0), NetValueCents: 2000, TotalSpendCents: 1300000, TotalRewardsCents: 39000, EffectiveRate: 3.15},
		{CardID: "gold", CardName: "Gold Card", At: base, NetValueCents: 10000, TotalSpendCents: 600000, TotalRewardsCents: 24000, EffectiveRate: 5.67},
	}
	for _, r := range runs {
		if err := h.Record(r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := h.ForCard("csr", 10)
	if err != nil {
		t.Fatalf("ForCard: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].NetValueCents != 2000 || got[1].NetValueCents != -5000 {
		t.Errorf("order wrong: %d then %d", got[0].NetValueCents, got[1].NetValueCents)
	}
}

func TestHistory_Latest(t *testing.T) {
	h := openTestHistory(t)

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	_ = h.Record(Run{CardID: "csr", At: base, NetValueCents: 1})
	_ = h.Record(Run{CardID: "csr", At: base.AddDate(0, 0, 1), NetValueCents: 2})
	_ = h.Record(Run{CardID: "gold", At: base, NetValueCents: 3})

	latest, err := h.Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(latest) != 2 {
		t.Fatalf("len = %d, want 2", len(latest))
	}
	if latest["csr"].NetValueCents != 2 {
		t.Errorf("csr latest = %d, want 2", latest["csr"].NetValueCents)
	}
	if latest["gold"].NetValueCents != 3 {
		t.Errorf("gold latest = %d, want 3", latest["gold"].NetValueCents)
	}
}

func TestHistory_Prune(t *testing.T) {
	h := openTestHistory(t)

	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_ = h.Record(Run{CardID: "csr", At: old})
	_ = h.Record(Run{CardID: "csr", At: recent})

	n, err := h.Prune(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned = %d, want 1", n)
	}

	left, _ := h.ForCard("csr", 10)
	if len(left) != 1 {
		t.Errorf("remaining = %d, want 1", len(left))
	}
}
