package marketdata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trading-auto-pilot/astra-web-sub001/internal/errors"
	"github.com/Trading-auto-pilot/astra-web-sub001/marketdata"
)

func TestFundamentals(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/fundamentals/AAPL.US", r.URL.Path)
		require.Equal(t, "demo", r.URL.Query().Get("api_token"))
		require.Equal(t, "json", r.URL.Query().Get("fmt"))

		_, _ = w.Write([]byte(`{
			"General": {"Code": "AAPL", "Name": "Apple Inc", "Sector": "Technology", "Industry": "Consumer Electronics"},
			"Highlights": {"MarketCapitalization": 2750000000000, "PERatio": 28.5, "EarningsShare": 6.42, "DividendYield": 0.0055},
			"Technicals": {"52WeekHigh": 199.62, "52WeekLow": 124.17}
		}`))
	}))
	defer provider.Close()

	client := marketdata.NewClient(provider.URL, "demo", zerolog.Nop())
	fundamentals, err := client.Fundamentals(context.Background(), "AAPL.US")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", fundamentals.Symbol)
	assert.Equal(t, "Apple Inc", fundamentals.Name)
	assert.Equal(t, "Technology", fundamentals.Sector)
	assert.True(t, fundamentals.PERatio.Equal(decimal.NewFromFloat(28.5)))
	assert.True(t, fundamentals.High52Week.Equal(decimal.NewFromFloat(199.62)))
}

func TestFundamentalsUnknownSymbol(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer provider.Close()

	client := marketdata.NewClient(provider.URL, "demo", zerolog.Nop())
	_, err := client.Fundamentals(context.Background(), "NOPE")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSymbolNotFound))
}

func TestNews(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/news", r.URL.Path)
		require.Equal(t, "AAPL.US", r.URL.Query().Get("s"))
		require.Equal(t, "5", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`[
			{"date": "2026-08-29", "title": "Apple ships", "content": "...", "link": "https://example.com/a", "symbols": ["AAPL.US"]},
			{"date": "2026-08-28", "title": "Apple dips", "content": "...", "link": "https://example.com/b", "symbols": ["AAPL.US"]}
		]`))
	}))
	defer provider.Close()

	client := marketdata.NewClient(provider.URL, "demo", zerolog.Nop())
	news, err := client.News(context.Background(), "AAPL.US", 5)
	require.NoError(t, err)

	require.Len(t, news, 2)
	assert.Equal(t, "Apple ships", news[0].Title)
	assert.Equal(t, []string{"AAPL.US"}, news[0].Symbols)
}

func TestNewsDefaultLimit(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer provider.Close()

	client := marketdata.NewClient(provider.URL, "demo", zerolog.Nop())
	news, err := client.News(context.Background(), "AAPL.US", 0)
	require.NoError(t, err)
	assert.Empty(t, news)
}

func TestSegments(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/segments/AAPL.US", r.URL.Path)
		_, _ = w.Write([]byte(`{"segments": [{"label": "iPhone", "value": 51.3}]}`))
	}))
	defer provider.Close()

	client := marketdata.NewClient(provider.URL, "demo", zerolog.Nop())
	table, err := client.Segments(context.Background(), "AAPL.US")
	require.NoError(t, err)

	assert.Equal(t, []string{"segment", "value"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"iPhone", "51.3"}, table.Rows[0])
}

func TestSegmentsMalformed(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected": true}`))
	}))
	defer provider.Close()

	client := marketdata.NewClient(provider.URL, "demo", zerolog.Nop())
	_, err := client.Segments(context.Background(), "AAPL.US")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedData))
}
