package daemon

import (
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		Cards:             3,
		NetValueCents:     -12_000,
		TotalSpendCents:   1_000_000,
		TotalRewardsCents: 25_000,
	}
	curr := Snapshot{
		Cards:             4,
		NetValueCents:     8_500,
		TotalSpendCents:   1_250_000,
		TotalRewardsCents: 31_500,
	}

	delta := diffSnapshots(prev, curr)
	if delta.Cards != 1 {
		t.Fatalf("Cards delta = %d, want 1", delta.Cards)
	}
	if delta.NetValueCents != 20_500 {
		t.Fatalf("NetValueCents delta = %d, want 20500", delta.NetValueCents)
	}
	if delta.TotalSpendCents != 250_000 {
		t.Fatalf("TotalSpendCents delta = %d, want 250000", delta.TotalSpendCents)
	}
	if delta.TotalRewardsCents != 6_500 {
		t.Fatalf("TotalRewardsCents delta = %.0f, want 6500", delta.TotalRewardsCents)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}
}

func TestDiffSnapshotsUnchanged(t *testing.T) {
	snap := Snapshot{Cards: 2, NetValueCents: 5_000, TotalSpendCents: 600_000, TotalRewardsCents: 12_000}
	if !diffSnapshots(snap, snap).isZero() {
		t.Fatal("identical snapshots should produce a zero delta")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		CardsDir:     ".",
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}
