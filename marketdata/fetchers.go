package marketdata

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// Fundamentals are the headline figures shown on a ticker's dashboard card.
type Fundamentals struct {
	Symbol        string
	Name          string
	Sector        string
	Industry      string
	MarketCap     decimal.Decimal
	PERatio       decimal.Decimal
	EPS           decimal.Decimal
	DividendYield decimal.Decimal
	High52Week    decimal.Decimal
	Low52Week     decimal.Decimal
}

// Fundamentals fetches the provider's fundamentals document for symbol.
func (c *Client) Fundamentals(ctx context.Context, symbol string) (Fundamentals, error) {
	// https://eodhd.com/api/fundamentals/AAPL.US?api_token=demo&fmt=json
	type payload struct {
		General struct {
			Code     string `json:"Code"`
			Name     string `json:"Name"`
			Sector   string `json:"Sector"`
			Industry string `json:"Industry"`
		} `json:"General"`
		Highlights struct {
			MarketCapitalization decimal.Decimal `json:"MarketCapitalization"`
			PERatio              decimal.Decimal `json:"PERatio"`
			EarningsShare        decimal.Decimal `json:"EarningsShare"`
			DividendYield        decimal.Decimal `json:"DividendYield"`
		} `json:"Highlights"`
		Technicals struct {
			High52Week decimal.Decimal `json:"52WeekHigh"`
			Low52Week  decimal.Decimal `json:"52WeekLow"`
		} `json:"Technicals"`
	}

	var content payload
	addr := c.url("/fundamentals/"+url.PathEscape(symbol), "")
	if err := c.getJSON(ctx, addr, &content); err != nil {
		return Fundamentals{}, fmt.Errorf("fundamentals %q: %w", symbol, err)
	}

	return Fundamentals{
		Symbol:        content.General.Code,
		Name:          content.General.Name,
		Sector:        content.General.Sector,
		Industry:      content.General.Industry,
		MarketCap:     content.Highlights.MarketCapitalization,
		PERatio:       content.Highlights.PERatio,
		EPS:           content.Highlights.EarningsShare,
		DividendYield: content.Highlights.DividendYield,
		High52Week:    content.Technicals.High52Week,
		Low52Week:     content.Technicals.Low52Week,
	}, nil
}

// NewsItem is one article attached to a ticker.
type NewsItem struct {
	Date    string   `json:"date"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Link    string   `json:"link"`
	Symbols []string `json:"symbols"`
}

// News fetches up to limit recent articles for symbol, newest first.
func (c *Client) News(ctx context.Context, symbol string, limit int) ([]NewsItem, error) {
	// https://eodhd.com/api/news?s=AAPL.US&limit=10&api_token=demo&fmt=json
	if limit <= 0 {
		limit = 10
	}
	addr := c.url("/news", fmt.Sprintf("s=%s&limit=%d", url.QueryEscape(symbol), limit))

	content := make([]NewsItem, 0)
	if err := c.getJSON(ctx, addr, &content); err != nil {
		return nil, fmt.Errorf("news %q: %w", symbol, err)
	}
	return content, nil
}

// Segments fetches the segmentation survey for symbol and normalizes it
// into a chart-ready table. Survey documents are heterogeneous across
// providers, so normalization goes through jsonpath rather than a fixed
// payload struct.
func (c *Client) Segments(ctx context.Context, symbol string) (Table, error) {
	addr := c.url("/segments/"+url.PathEscape(symbol), "")

	var doc any
	if err := c.getJSON(ctx, addr, &doc); err != nil {
		return Table{}, fmt.Errorf("segments %q: %w", symbol, err)
	}
	table, err := NormalizeSegments(doc)
	if err != nil {
		return Table{}, fmt.Errorf("segments %q: %w", symbol, err)
	}
	return table, nil
}
