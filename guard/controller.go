package guard

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Trading-auto-pilot/astra-web-sub001/identity"
	"github.com/Trading-auto-pilot/astra-web-sub001/routes"
	"github.com/Trading-auto-pilot/astra-web-sub001/session"
)

// CommitFunc delivers a committed route to the render boundary.
type CommitFunc func(route routes.RouteID)

// PushLocationFunc pushes a route identifier to the location so a reload
// preserves it. Purely a side effect at the render boundary; the controller
// never reads it back.
type PushLocationFunc func(route routes.RouteID)

// LocationFunc reads the current raw location fragment.
type LocationFunc func() string

// State is the controller's transient navigation state. Checking true with
// PendingRoute set means a permission check is in flight.
type State struct {
	ActiveRoute  routes.RouteID
	PendingRoute routes.RouteID
	Checking     bool
}

// Snapshot is the render-boundary view of the session and navigation state.
type Snapshot struct {
	ActiveRoute routes.RouteID             `json:"activeRoute"`
	Checking    bool                       `json:"isChecking"`
	UserName    string                     `json:"sessionDisplayName"`
	Navigation  []identity.NavigationEntry `json:"navigationEntries"`
}

// permissionMemo is the at-most-once-per-session permission computation,
// keyed by the token it was derived from. A token change makes it stale;
// it is never trusted across sessions.
type permissionMemo struct {
	token string
	pages map[string]bool
}

// Controller gates navigation between routes. Unprotected routes commit
// immediately; protected routes commit only after the user's permitted
// pages are resolved from the memo, the session cache, or the identity
// gateway. All collaborators are injected; the controller never reaches
// into ambient storage.
type Controller struct {
	store        session.Store
	gateway      identity.Gateway
	commit       CommitFunc
	pushLocation PushLocationFunc
	location     LocationFunc
	log          zerolog.Logger

	lock       sync.Mutex
	state      State
	generation uint64
	memo       *permissionMemo
}

// Option configures optional controller collaborators.
type Option func(*Controller)

// WithPushLocation wires the location push side effect.
func WithPushLocation(push PushLocationFunc) Option {
	return func(c *Controller) { c.pushLocation = push }
}

// WithLocation wires the location accessor used by Start and
// OnLocationChange.
func WithLocation(loc LocationFunc) Option {
	return func(c *Controller) { c.location = loc }
}

// New creates a navigation guard controller.
func New(store session.Store, gateway identity.Gateway, commit CommitFunc, log zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		gateway: gateway,
		commit:  commit,
		log:     log,
		state:   State{ActiveRoute: routes.RouteLanding},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start resolves the current location fragment and runs the initial
// navigation, as if an external location change had just arrived.
func (c *Controller) Start(ctx context.Context) {
	target := routes.RouteLanding
	if c.location != nil {
		target = routes.Resolve(c.location())
	}
	c.Navigate(ctx, target, true)
}

// OnLocationChange re-reads the location fragment and navigates to it.
// External location signals carry no payload.
func (c *Controller) OnLocationChange(ctx context.Context) {
	c.Start(ctx)
}

// State returns a copy of the controller's navigation state.
func (c *Controller) State() State {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.state
}

// Snapshot returns the render-boundary view. The display name falls back to
// the remember-me slot when no session name is cached.
func (c *Controller) Snapshot() Snapshot {
	c.lock.Lock()
	state := c.state
	c.lock.Unlock()

	name := c.store.UserName()
	if name == "" {
		name = c.store.RememberedName()
	}
	return Snapshot{
		ActiveRoute: state.ActiveRoute,
		Checking:    state.Checking,
		UserName:    name,
		Navigation:  c.store.Navigation().Entries,
	}
}

// Navigate drives one navigation request to a terminal committed route.
// fromExternal marks requests that originated from a location change (the
// route is already in the location, so nothing is pushed back).
//
// When several Navigate calls overlap, the most recently issued call wins:
// earlier calls that resolve later discard their result instead of
// overwriting state produced by a newer call.
func (c *Controller) Navigate(ctx context.Context, target routes.RouteID, fromExternal bool) {
	c.lock.Lock()
	c.generation++
	gen := c.generation

	if !routes.Protected(target) {
		c.state = State{ActiveRoute: target}
		c.lock.Unlock()
		c.log.Debug().Str("route", string(target)).Msg("route committed")
		c.commit(target)
		if !fromExternal && c.pushLocation != nil {
			c.pushLocation(target)
		}
		return
	}

	c.state.Checking = true
	c.state.PendingRoute = target
	c.lock.Unlock()

	pages, err := c.resolveAllowedPages(ctx)

	switch {
	case err != nil:
		// Gateway rejected the token or could not be reached. Tear the
		// session down and drop to login; no automatic retry.
		c.log.Warn().Err(err).Str("route", string(target)).Msg("permission check failed, session teardown")
		c.store.ClearToken()
		c.invalidateMemo()
		c.finish(gen, routes.RouteLogin, true)
	case pages[string(target)]:
		c.finish(gen, target, !fromExternal)
	default:
		c.log.Debug().Str("route", string(target)).Msg("route not permitted")
		c.finish(gen, routes.RouteNotFound, true)
	}
}

// Login exchanges credentials for a session token, resets the cached
// session data for the new token, and navigates to the dashboard. When
// remember is set the display name is also kept in the remember-me slot.
func (c *Controller) Login(ctx context.Context, creds identity.Credentials, remember bool) error {
	result, err := c.gateway.Login(ctx, creds)
	if err != nil {
		return err
	}

	// A session swap must never inherit the previous token's grants.
	c.store.ClearNavigation()
	c.store.SetToken(result.Token)
	c.store.SetUserName(result.UserName)
	if remember {
		c.store.SetRememberedName(result.UserName)
	}
	c.invalidateMemo()

	c.Navigate(ctx, routes.RouteDashboard, false)
	return nil
}

// Logout tears down the session and commits the login route.
func (c *Controller) Logout() {
	c.store.ClearToken()
	c.invalidateMemo()

	c.lock.Lock()
	c.generation++
	gen := c.generation
	c.lock.Unlock()
	c.finish(gen, routes.RouteLogin, true)
}

// resolveAllowedPages produces the permitted page set for the current
// token: memo first, then the fetched session cache, then one gateway
// call. Only the gateway call can fail.
func (c *Controller) resolveAllowedPages(ctx context.Context) (map[string]bool, error) {
	token := c.store.Token()
	if token == "" {
		// Without a token there is nothing to verify; the gateway is not
		// consulted. The caller's teardown path handles the rest.
		return nil, identity.ErrNotAuthenticated
	}

	c.lock.Lock()
	if c.memo != nil && c.memo.token == token {
		pages := c.memo.pages
		c.lock.Unlock()
		return pages, nil
	}
	c.lock.Unlock()

	if cache := c.store.Navigation(); cache.Fetched {
		return c.memoize(token, identity.Pages(cache.Entries)), nil
	}

	profile, err := c.gateway.FetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	// Cache writes from superseded checks are allowed to land: they are
	// idempotent for a given token.
	c.store.SetNavigation(session.NavigationCache{Fetched: true, Entries: profile.Navigation})
	c.store.SetUserName(profile.UserName)
	return c.memoize(token, identity.Pages(profile.Navigation)), nil
}

// memoize records the permitted page set for token, unless the session has
// moved to a different token since the computation began.
func (c *Controller) memoize(token string, pages []string) map[string]bool {
	set := make(map[string]bool, len(pages))
	for _, p := range pages {
		set[p] = true
	}
	if c.store.Token() == token {
		c.lock.Lock()
		c.memo = &permissionMemo{token: token, pages: set}
		c.lock.Unlock()
	}
	return set
}

func (c *Controller) invalidateMemo() {
	c.lock.Lock()
	c.memo = nil
	c.lock.Unlock()
}

// finish leaves the checking state and commits route, unless a newer
// navigation has been issued since gen was captured, in which case the
// result is discarded silently. push is set for redirects (the location
// must follow the committed route) and for internally initiated requests.
func (c *Controller) finish(gen uint64, route routes.RouteID, push bool) {
	c.lock.Lock()
	if c.generation != gen {
		c.lock.Unlock()
		c.log.Debug().Str("route", string(route)).Msg("stale navigation result discarded")
		return
	}
	c.state = State{ActiveRoute: route}
	c.lock.Unlock()

	c.commit(route)
	if push && c.pushLocation != nil {
		c.pushLocation(route)
	}
}
