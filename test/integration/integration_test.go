package integration

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iwvelando/price-projection/internal/chart"
	"github.com/iwvelando/price-projection/internal/config"
	"github.com/iwvelando/price-projection/internal/projection"
	"github.com/iwvelando/price-projection/internal/quote"
	"github.com/iwvelando/price-projection/internal/render"
	"github.com/iwvelando/price-projection/pkg/datetime"
	"github.com/iwvelando/price-projection/pkg/output"
	"github.com/iwvelando/price-projection/pkg/testutil"
	"github.com/iwvelando/price-projection/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// run loads the test configuration, points it at endpoint and performs one
// refresh the way main() does.
func run(t *testing.T, endpoint string, currentYear int, scenario *projection.Scenario) (render.Result, string, string) {
	t.Helper()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	require.NoError(t, err)
	conf.Quote.Endpoint = endpoint

	require.NoError(t, conf.Validate())
	require.NoError(t, validation.ValidateOutputFormat(conf.Output.Format))

	selected, err := conf.Scenario()
	require.NoError(t, err)
	if scenario != nil {
		selected = *scenario
	}

	client, err := quote.NewClient(conf.QuoteSettings())
	require.NoError(t, err)
	logger := zap.NewNop()
	source := quote.NewSource(logger, client, conf.SourceConfig())

	var chartOut, statusOut bytes.Buffer
	orchestrator := render.New(logger, source,
		output.NewRenderer(&chartOut, conf.Output.Format),
		output.NewStatusPrinter(&statusOut, logger),
		conf.RenderSettings(),
		render.WithClock(datetime.FixedYear(currentYear)),
	)
	defer orchestrator.Close()

	result := orchestrator.Refresh(context.Background(), render.Input{Scenario: selected})
	require.NoError(t, result.Err)
	return result, chartOut.String(), statusOut.String()
}

func csvLines(t *testing.T, out string) []string {
	t.Helper()
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func TestMainIntegrationCustomRate(t *testing.T) {
	srv := testutil.CoinGeckoServer(t, "bitcoin", "usd", 64000)

	result, out, status := run(t, srv.URL, 2026, nil)

	lines := csvLines(t, out)
	require.Len(t, lines, 23, "header plus 22 rows")
	assert.Equal(t, "year,Price Projection,Current Price (2026)", lines[0])

	expectedRows := map[int]string{
		1: "2024,69420.00,",
		2: "2025,76362.00,",
		3: "2026,83998.20,64000.00",
	}
	for i, expected := range expectedRows {
		assert.Equal(t, expected, lines[i], "line %d", i)
	}

	assert.Equal(t, quote.OriginLive, result.Quote.Origin)
	require.NotNil(t, result.Comparison)
	assert.Equal(t, projection.AtOrBelow, result.Comparison.Direction)
	assert.Contains(t, status, "Current Bitcoin Price: $64,000.00")
}

func TestMainIntegrationPresetRoundTrip(t *testing.T) {
	srv := testutil.CoinGeckoServer(t, "bitcoin", "usd", 64000)

	for _, kind := range []projection.Kind{projection.Bear, projection.Base, projection.Bull} {
		t.Run(string(kind), func(t *testing.T) {
			scenario := projection.Preset(kind)
			result, _, _ := run(t, srv.URL, 2026, &scenario)

			final := testutil.FindPoint(result.Series, 2045)
			require.NotNil(t, final, "missing horizon year")
			assert.InEpsilon(t, projection.DefaultTargets()[kind], final.Price, 1e-6)
		})
	}
}

func TestMainIntegrationFetchFailure(t *testing.T) {
	srv := testutil.CoinGeckoServer(t, "bitcoin", "usd", 0)

	result, out, status := run(t, srv.URL, 2026, nil)

	assert.Equal(t, quote.Quote{Year: 2026, Price: 27000, Origin: quote.OriginFallback}, result.Quote)
	assert.Equal(t, render.StateFetchFailed, result.Status.State)
	assert.Contains(t, out, "2026,83998.20,27000.00")
	assert.NotEmpty(t, status)
}

func TestMainIntegrationOutOfRange(t *testing.T) {
	srv := testutil.CoinGeckoServer(t, "bitcoin", "usd", 64000)

	result, out, _ := run(t, srv.URL, 2050, nil)

	assert.Nil(t, result.Comparison)
	assert.Equal(t, render.StateOutOfRange, result.Status.State)
	lines := csvLines(t, out)
	require.NotEmpty(t, lines)
	assert.Equal(t, "year,Price Projection", lines[0])
}

func TestMainIntegrationBaselineYear(t *testing.T) {
	client := &testutil.StubClient{Quote: 64000}
	conf, err := config.Default()
	require.NoError(t, err)
	source := quote.NewSource(zap.NewNop(), client, conf.SourceConfig())

	got := source.Lookup(context.Background(), 2024)
	assert.Equal(t, quote.Quote{Year: 2024, Price: 69420, Origin: quote.OriginBaseline}, got)
	assert.Zero(t, client.Calls(), "no quote calls for the baseline year")
}

func TestPrettyOutputFormat(t *testing.T) {
	series, err := projection.Project(69420, projection.Preset(projection.Base), nil, 2024, 2045)
	require.NoError(t, err)

	var buf bytes.Buffer
	handle, err := output.NewRenderer(&buf, "pretty").Draw(chart.Build("bitcoin", series, nil))
	require.NoError(t, err)
	assert.NotEmpty(t, handle.ID())
	assert.Contains(t, buf.String(), "$69,420.00")
	assert.Contains(t, buf.String(), "$13,000,000.00")
}
