// Package quote looks up the live spot price of the projected asset.
package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/price-projection/pkg/constants"
)

// ErrUnknownProvider is returned by NewClient for unsupported providers.
var ErrUnknownProvider = errors.New("unknown quote provider")

// Client performs a single spot price lookup.
type Client interface {
	Price(ctx context.Context) (float64, error)
}

// Settings selects and parameterises a Client.
type Settings struct {
	Provider string
	Endpoint string
	Asset    string
	Currency string
	Symbol   string
	Timeout  time.Duration
}

// NewClient builds the Client named by settings.Provider.
func NewClient(settings Settings) (Client, error) {
	switch settings.Provider {
	case "", constants.ProviderCoinGecko:
		return NewCoinGecko(settings.Endpoint, settings.Asset, settings.Currency, settings.Timeout), nil
	case constants.ProviderBinance:
		return NewBinance(settings.Endpoint, settings.Symbol, settings.Timeout), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, settings.Provider)
}
