package pointhub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientRejectsBadURLs(t *testing.T) {
	cases := []string{"", "   ", "ftp://feed.example.com/points.json", "not a url at all\x00"}
	for _, u := range cases {
		if c := NewClient(u); c != nil {
			t.Errorf("NewClient(%q) = client, want nil", u)
		}
	}
	if c := NewClient("https://feed.example.com/points.json"); c == nil {
		t.Error("NewClient rejected a valid https URL")
	}
}

func TestFetchParsesAndNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"source": "points-weekly",
			"updated_at": "2026-08-01T00:00:00Z",
			"programs": [
				{"program": "MR", "cents_per_point": 2.0},
				{"program": "chase-ur", "cents_per_point": "1.25"},
				{"program": "Bilt", "cents_per_point": "1.8¢"},
				{"program": "mystery", "cents_per_point": "n/a"},
				{"program": "freebies", "cents_per_point": 0}
			]
		}`))
	}))
	defer srv.Close()

	set, err := NewClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if set.Source != "points-weekly" {
		t.Errorf("Source = %q, want points-weekly", set.Source)
	}
	if set.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not parsed")
	}
	if set.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", set.Skipped)
	}

	want := map[string]float64{
		"amex-mr":      2.0,
		"chase-ur":     1.25,
		"bilt-rewards": 1.8,
	}
	if len(set.Values) != len(want) {
		t.Fatalf("Values has %d entries, want %d: %v", len(set.Values), len(want), set.Values)
	}
	for prog, cents := range want {
		if got := set.Values[prog]; got != cents {
			t.Errorf("Values[%q] = %v, want %v", prog, got, cents)
		}
	}
}

func TestFetchStatusErrors(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusTooManyRequests, ErrRateLimited},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))
		_, err := NewClient(srv.URL).Fetch(context.Background())
		srv.Close()
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestFetchEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"source": "empty", "programs": []}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	if !errors.Is(err, ErrEmptyFeed) {
		t.Errorf("err = %v, want ErrEmptyFeed", err)
	}
}

func TestParseCents(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{`1.5`, 1.5, true},
		{`2`, 2, true},
		{`"1.25"`, 1.25, true},
		{`"1.8¢"`, 1.8, true},
		{`"2.2c"`, 2.2, true},
		{`"garbage"`, 0, false},
		{`-1`, 0, false},
		{`null`, 0, false},
	}
	for _, tc := range cases {
		got, ok := parseCents(json.RawMessage(tc.raw))
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseCents(%s) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}
