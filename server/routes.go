package server

func (s *Server) initRoutes() {
	// Shell routes
	s.RegisterRouteFunc("GET "+RouteShellState, ChainMiddleware(s.StateHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteShellNavigate, ChainMiddleware(s.NavigateHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteShellLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteShellLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// Ticker routes
	s.RegisterRouteFunc("GET "+RouteTickerFundamentals, ChainMiddleware(s.FundamentalsHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteTickerNews, ChainMiddleware(s.NewsHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteTickerSegments, ChainMiddleware(s.SegmentsHandler(), s.APIMiddleware()...))
}
