// Package testutil provides common utility functions for testing.
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/iwvelando/price-projection/internal/projection"
)

// StubClient is a quote.Client returning a fixed price or error.
type StubClient struct {
	Quote float64
	Err   error

	calls atomic.Int32
}

// Price implements quote.Client.
func (s *StubClient) Price(context.Context) (float64, error) {
	s.calls.Add(1)
	return s.Quote, s.Err
}

// Calls reports how many times Price was called.
func (s *StubClient) Calls() int {
	return int(s.calls.Load())
}

// CoinGeckoServer starts a server answering simple price requests for asset
// in currency with price. A zero price answers 503.
func CoinGeckoServer(t *testing.T, asset, currency string, price float64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if price == 0 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]map[string]float64{
			asset: {currency: price},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// FindPoint finds the point for year in series.
// Returns a pointer to the point if found, nil otherwise.
func FindPoint(series projection.Series, year int) *projection.Point {
	for i := range series.Points {
		if series.Points[i].Year == year {
			return &series.Points[i]
		}
	}
	return nil
}
