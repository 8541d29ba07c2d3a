// Package daemon provides the long-running background portfolio monitor service.
// It polls the cards directory, recomputes valuations, and serves the results
// over a small local HTTP API with SSE change events.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"cardworth/internal/config"
	"cardworth/internal/engine"
	"cardworth/internal/source"
)

// Config controls the daemon runtime behavior.
type Config struct {
	CardsDir     string
	Targets      []float64
	Interval     time.Duration
	Addr         string
	EventsBuffer int
}

// Snapshot is a compact portfolio state for status/event payloads.
type Snapshot struct {
	At                time.Time `json:"at"`
	Cards             int       `json:"cards"`
	ParseErrors       int       `json:"parse_errors"`
	NetValueCents     int64     `json:"net_value_cents"`
	AnnualFeeCents    int64     `json:"annual_fee_cents"`
	TotalSpendCents   int64     `json:"total_spend_cents"`
	TotalRewardsCents float64   `json:"total_rewards_cents"`
	BestEffectiveRate float64   `json:"best_effective_rate"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	Cards             int     `json:"cards"`
	NetValueCents     int64   `json:"net_value_cents"`
	TotalSpendCents   int64   `json:"total_spend_cents"`
	TotalRewardsCents float64 `json:"total_rewards_cents"`
}

func (d Delta) isZero() bool {
	return d.Cards == 0 &&
		d.NetValueCents == 0 &&
		d.TotalSpendCents == 0 &&
		d.TotalRewardsCents == 0
}

// Event is emitted whenever the portfolio snapshot changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// CardStatus is one card's figures as served at /v1/cards.
type CardStatus struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Issuer             string   `json:"issuer"`
	AnnualFeeCents     int64    `json:"annual_fee_cents"`
	NetValueCents      int64    `json:"net_value_cents"`
	TotalSpendCents    int64    `json:"total_spend_cents"`
	TotalRewardsCents  float64  `json:"total_rewards_cents"`
	EffectiveRate      float64  `json:"effective_rate"`
	ZeroSpend          bool     `json:"zero_spend,omitempty"`
	BreakevenReachable []bool   `json:"breakeven_reachable"`
	TargetRates        []float64 `json:"target_rates"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	CardsDir        string    `json:"cards_dir"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	cards       []CardStatus
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = config.DefaultTargetRates
	}

	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/cards", s.handleCards)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	now := time.Now()

	parsed, err := source.LoadAll(s.cfg.CardsDir)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		log.Printf("cardworth daemon poll error: %v", err)
		return
	}

	cfg, _ := config.Load()
	snap, cards := computePortfolio(cfg, parsed, s.cfg.Targets, now)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.cards = cards
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
			Delta:     Delta{},
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      "portfolio_delta",
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
	}
}

// computePortfolio runs the full valuation over parsed card files.
func computePortfolio(cfg config.Config, parsed []source.ParsedCard, targets []float64, at time.Time) (Snapshot, []CardStatus) {
	snap := Snapshot{At: at}
	var cards []CardStatus

	for _, pc := range parsed {
		if pc.Err != nil {
			snap.ParseErrors++
			continue
		}
		card := pc.Card

		cpp := config.CentsPerPoint(cfg, card.Valuation.Program, card.Valuation.CentsPerPoint)
		value := engine.NetValue(card)
		rewards := engine.Rewards(card.Spending, cpp, value.NetAnnualCents)
		be := engine.SolveBreakeven(card.Spending, cpp, value.NetAnnualCents, targets)

		reachable := make([]bool, len(be.Rows))
		for i, row := range be.Rows {
			reachable[i] = row.RequiredTotalCents != nil
		}

		cards = append(cards, CardStatus{
			ID:                 card.ID,
			Name:               card.Name,
			Issuer:             card.Issuer,
			AnnualFeeCents:     card.AnnualFeeCents,
			NetValueCents:      value.NetAnnualCents,
			TotalSpendCents:    rewards.TotalAnnualSpend,
			TotalRewardsCents:  rewards.TotalRewards,
			EffectiveRate:      rewards.EffectiveReturnRate,
			ZeroSpend:          rewards.ZeroSpend,
			BreakevenReachable: reachable,
			TargetRates:        targets,
		})

		snap.Cards++
		snap.NetValueCents += value.NetAnnualCents
		snap.AnnualFeeCents += card.AnnualFeeCents
		snap.TotalSpendCents += rewards.TotalAnnualSpend
		snap.TotalRewardsCents += rewards.TotalRewards
		if !rewards.ZeroSpend && rewards.EffectiveReturnRate > snap.BestEffectiveRate {
			snap.BestEffectiveRate = rewards.EffectiveReturnRate
		}
	}

	return snap, cards
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Cards:             curr.Cards - prev.Cards,
		NetValueCents:     curr.NetValueCents - prev.NetValueCents,
		TotalSpendCents:   curr.TotalSpendCents - prev.TotalSpendCents,
		TotalRewardsCents: curr.TotalRewardsCents - prev.TotalRewardsCents,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		CardsDir:        s.cfg.CardsDir,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleCards(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	cards := make([]CardStatus, len(s.cards))
	copy(cards, s.cards)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cards)
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
