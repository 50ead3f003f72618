package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTickerServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/price", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestBinancePrice(t *testing.T) {
	server := newTickerServer(t, http.StatusOK, `{"symbol":"BTCUSDT","price":"64000.12000000"}`)

	price, err := NewBinance(server.URL, "btcusdt", time.Second).Price(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 64000.12, price, 1e-9)
}

func TestBinancePriceFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"API error", http.StatusBadRequest, `{"code":-1121,"msg":"Invalid symbol."}`},
		{"Unparsable price", http.StatusOK, `{"symbol":"BTCUSDT","price":"n/a"}`},
		{"Other symbol", http.StatusOK, `{"symbol":"ETHUSDT","price":"3000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTickerServer(t, tt.status, tt.body)
			_, err := NewBinance(server.URL, "BTCUSDT", time.Second).Price(context.Background())
			assert.Error(t, err)
		})
	}
}
