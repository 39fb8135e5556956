package routes

import "strings"

// Resolve maps a raw location fragment (e.g. a hash string such as
// "#/dashboard/tickers/AAPL") to a RouteID. Pure and deterministic: the same
// input always yields the same output.
//
// A single leading "#" marker is stripped if present, then any leading
// slashes. An empty remainder resolves to the landing page. Only the first
// path segment participates in matching; anything after the first "/" or "?"
// is page-level sub-path state consumed downstream.
func Resolve(fragment string) RouteID {
	fragment = strings.TrimPrefix(fragment, "#")
	fragment = strings.TrimLeft(fragment, "/")
	if fragment == "" {
		return RouteLanding
	}

	segment := fragment
	if idx := strings.IndexAny(segment, "/?"); idx != -1 {
		segment = segment[:idx]
	}
	if segment == "" {
		return RouteLanding
	}

	route, ok := known[segment]
	if !ok {
		return RouteNotFound
	}
	return route
}
