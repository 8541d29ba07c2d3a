// Package store provides the SQLite-backed valuation history database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History provides SQLite-backed recording of valuation runs.
type History struct {
	db *sql.DB
}

// Run is one recorded valuation of a card.
type Run struct {
	CardID            string
	CardName          string
	At                time.Time
	NetValueCents     int64
	TotalSpendCents   int64
	TotalRewardsCents float64
	EffectiveRate     float64
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record stores one valuation run.
func (h *History) Record(r Run) error {
	at := r.At
	if at.IsZero() {
		at = time.Now()
	}

	_, err := h.db.Exec(`INSERT INTO runs
		(card_id, card_name, run_at, net_value_cents, total_spend_cents,
		 total_rewards_cents, effective_return_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.CardID, r.CardName, at.UTC().Format(time.RFC3339),
		r.NetValueCents, r.TotalSpendCents, r.TotalRewardsCents, r.EffectiveRate,
	)
	return err
}

// ForCard returns up to limit most recent runs for a card, newest first.
func (h *History) ForCard(cardID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := h.db.Query(`SELECT
		card_id, card_name, run_at, net_value_cents, total_spend_cents,
		total_rewards_cents, effective_return_rate
		FROM runs WHERE card_id = ?
		ORDER BY run_at DESC LIMIT ?`, cardID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanRuns(rows)
}

// Latest returns the most recent run per card, for delta display.
func (h *History) Latest() (map[string]Run, error) {
	rows, err := h.db.Query(`SELECT
		card_id, card_name, run_at, net_value_cents, total_spend_cents,
		total_rewards_cents, effective_return_rate
		FROM runs r1
		WHERE run_at = (SELECT MAX(run_at) FROM runs r2 WHERE r2.card_id = r1.card_id)`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]Run, len(runs))
	for _, r := range runs {
		latest[r.CardID] = r
	}
	return latest, nil
}

// Prune deletes runs older than the cutoff.
func (h *History) Prune(olderThan time.Time) (int64, error) {
	res, err := h.db.Exec(`DELETE FROM runs WHERE run_at < ?`,
		olderThan.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var at string
		if err := rows.Scan(&r.CardID, &r.CardName, &at, &r.NetValueCents,
			&r.TotalSpendCents, &r.TotalRewardsCents, &r.EffectiveRate); err != nil {
			return nil, err
		}
		r.At, _ = time.Parse(time.RFC3339, at)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
