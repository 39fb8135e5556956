package server

import (
	"net/http"
	"strconv"

	"github.com/Trading-auto-pilot/astra-web-sub001/internal/errors"
)

// FundamentalsHandler proxies the provider's fundamentals for one symbol.
func (s *Server) FundamentalsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := r.PathValue("symbol")
		fundamentals, err := s.market.Fundamentals(r.Context(), symbol)
		if err != nil {
			s.writeMarketError(w, symbol, err)
			return
		}
		writeJSON(w, http.StatusOK, fundamentals)
	}
}

// NewsHandler proxies recent articles for one symbol. The limit query
// parameter caps the article count; malformed values fall back silently.
func (s *Server) NewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := r.PathValue("symbol")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		news, err := s.market.News(r.Context(), symbol, limit)
		if err != nil {
			s.writeMarketError(w, symbol, err)
			return
		}
		writeJSON(w, http.StatusOK, news)
	}
}

// SegmentsHandler proxies the normalized segmentation table for one symbol.
func (s *Server) SegmentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := r.PathValue("symbol")
		segments, err := s.market.Segments(r.Context(), symbol)
		if err != nil {
			s.writeMarketError(w, symbol, err)
			return
		}
		writeJSON(w, http.StatusOK, segments)
	}
}

func (s *Server) writeMarketError(w http.ResponseWriter, symbol string, err error) {
	s.log.Warn().Err(err).Str("symbol", symbol).Msg("market data request failed")
	switch {
	case errors.Is(err, errors.ErrSymbolNotFound):
		writeError(w, http.StatusNotFound, "unknown symbol")
	case errors.Is(err, errors.ErrMalformedData):
		writeError(w, http.StatusBadGateway, "provider returned malformed data")
	default:
		writeError(w, http.StatusBadGateway, "provider unavailable")
	}
}
