package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iwvelando/price-projection/pkg/constants"
	"github.com/iwvelando/price-projection/pkg/mathutil"
)

const simplePricePath = "/api/v3/simple/price"

// CoinGecko is the CoinGecko simple price API client
type CoinGecko struct {
	baseURL    string
	asset      string
	currency   string
	httpClient *http.Client
}

// NewCoinGecko creates a new CoinGecko API client. Empty arguments take the
// package defaults.
func NewCoinGecko(baseURL, asset, currency string, timeout time.Duration) *CoinGecko {
	if baseURL == "" {
		baseURL = constants.DefaultCoinGeckoEndpoint
	}
	if asset == "" {
		asset = constants.DefaultAsset
	}
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &CoinGecko{
		baseURL:  strings.TrimRight(baseURL, "/"),
		asset:    asset,
		currency: currency,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Price retrieves the spot price of the configured asset
func (c *CoinGecko) Price(ctx context.Context) (float64, error) {
	params := url.Values{}
	params.Add("ids", c.asset)
	params.Add("vs_currencies", c.currency)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, simplePricePath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("error building CoinGecko request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("error making request to CoinGecko: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("CoinGecko API error (status code %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("error decoding CoinGecko response: %w", err)
	}

	prices, ok := result[c.asset]
	if !ok {
		return 0, fmt.Errorf("no %s entry in CoinGecko response", c.asset)
	}
	price, ok := prices[c.currency]
	if !ok {
		return 0, fmt.Errorf("no %s price for %s in CoinGecko response", c.currency, c.asset)
	}
	if !mathutil.IsFinite(price) || price <= 0 {
		return 0, fmt.Errorf("invalid %s price for %s: %v", c.currency, c.asset, price)
	}

	return price, nil
}
