package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Trading-auto-pilot/astra-web-sub001/internal/errors"
)

// Client fetches ticker fundamentals, news and segmentation data from the
// third-party financial data provider.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a provider client rooted at baseURL.
func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 20 * time.Second},
		log:     log,
	}
}

// getJSON performs an HTTP GET request and unmarshals the JSON response
// into the provided data structure.
func (c *Client) getJSON(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.Debug().Str("path", req.URL.Path).Str("status", resp.Status).Msg("provider request")

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(errors.ErrSymbolNotFound, "GET %s", req.URL.Path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot GET %s%s: %s", req.URL.Host, req.URL.Path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return errors.Wrapf(errors.ErrMalformedData, "decoding %s: %v", req.URL.Path, err)
	}
	return nil
}

func (c *Client) url(path, query string) string {
	addr := c.baseURL + path + "?fmt=json&api_token=" + c.apiKey
	if query != "" {
		addr += "&" + query
	}
	return addr
}
