package routes

// RouteID identifies one of the shell's navigable views.
type RouteID string

// All navigable views are defined here to ensure consistency and prevent typos
const (
	RouteLanding     RouteID = "landing"
	RouteMaintenance RouteID = "maintenance"
	RouteContact     RouteID = "contact"
	RouteLogin       RouteID = "login"
	RouteDashboard   RouteID = "dashboard"
	RouteNotFound    RouteID = "not_found"
)

// known maps a location fragment's first path segment to its route.
// RouteNotFound is deliberately absent: it is a resolution result, not an
// addressable page.
var known = map[string]RouteID{
	"landing":     RouteLanding,
	"maintenance": RouteMaintenance,
	"contact":     RouteContact,
	"login":       RouteLogin,
	"dashboard":   RouteDashboard,
}

// protected routes require an authenticated, authorized session to enter.
// Static configuration, never mutated at runtime.
var protected = map[RouteID]bool{
	RouteDashboard: true,
}

// Protected reports whether entering r requires a verified session.
func Protected(r RouteID) bool {
	return protected[r]
}

// Known reports whether r is a member of the closed route set.
func Known(r RouteID) bool {
	if r == RouteNotFound {
		return true
	}
	for _, id := range known {
		if id == r {
			return true
		}
	}
	return false
}
