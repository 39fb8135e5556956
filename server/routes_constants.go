package server

// Route path constants
// All facade routes are defined here to ensure consistency and prevent typos
const (
	// Shell Routes - session and navigation state
	RouteShellState    = "/shell/state"
	RouteShellNavigate = "/shell/navigate"
	RouteShellLogin    = "/shell/login"
	RouteShellLogout   = "/shell/logout"

	// Ticker Routes - market data proxied from the provider
	RouteTickerFundamentals = "/api/tickers/{symbol}/fundamentals"
	RouteTickerNews         = "/api/tickers/{symbol}/news"
	RouteTickerSegments     = "/api/tickers/{symbol}/segments"
)
