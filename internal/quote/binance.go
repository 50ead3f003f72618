package quote

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/iwvelando/price-projection/pkg/constants"
	"github.com/iwvelando/price-projection/pkg/mathutil"
)

// Binance reads the last traded price of a spot pair. Public ticker
// endpoints need no credentials.
type Binance struct {
	client *binance.Client
	symbol string
}

// NewBinance creates a Binance ticker client. An empty baseURL keeps the
// library's production endpoint.
func NewBinance(baseURL, symbol string, timeout time.Duration) *Binance {
	if symbol == "" {
		symbol = constants.DefaultBinanceSymbol
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := binance.NewClient("", "")
	if baseURL != "" {
		client.BaseURL = strings.TrimRight(baseURL, "/")
	}
	client.HTTPClient = &http.Client{Timeout: timeout}

	return &Binance{client: client, symbol: strings.ToUpper(symbol)}
}

// Price retrieves the last price of the configured pair.
func (b *Binance) Price(ctx context.Context) (float64, error) {
	prices, err := b.client.NewListPricesService().Symbol(b.symbol).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("error fetching Binance ticker for %s: %w", b.symbol, err)
	}

	for _, p := range prices {
		if p == nil || p.Symbol != b.symbol {
			continue
		}
		price, err := strconv.ParseFloat(p.Price, 64)
		if err != nil {
			return 0, fmt.Errorf("error parsing Binance price %q: %w", p.Price, err)
		}
		if !mathutil.IsFinite(price) || price <= 0 {
			return 0, fmt.Errorf("invalid Binance price for %s: %v", b.symbol, price)
		}
		return price, nil
	}

	return 0, fmt.Errorf("no Binance ticker returned for %s", b.symbol)
}
