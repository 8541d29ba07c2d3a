package pointhub

import (
	"encoding/json"
	"time"
)

// Feed is the raw JSON document published by a valuation feed.
type Feed struct {
	Source    string           `json:"source"`
	UpdatedAt *string          `json:"updated_at"`
	Programs  []ProgramListing `json:"programs"`
}

// ProgramListing is a single program entry from the feed.
// CentsPerPoint varies across publishers (number, "1.25", or "1.25¢"),
// so it is kept as raw JSON for defensive parsing.
type ProgramListing struct {
	Program       string          `json:"program"`
	CentsPerPoint json.RawMessage `json:"cents_per_point"`
}

// ValuationSet is the parsed, merge-ready result of a feed fetch.
type ValuationSet struct {
	// Values maps canonical program slugs to cents per point.
	Values    map[string]float64
	Source    string
	UpdatedAt time.Time
	FetchedAt time.Time
	// Skipped counts feed entries dropped for missing or unparseable values.
	Skipped int
}
