package session

import "github.com/Trading-auto-pilot/astra-web-sub001/identity"

// NavigationCache is the persisted permission-grant list. Fetched records
// that the gateway has answered at least once for the current session, so a
// legitimately empty grant list is not mistaken for "never fetched".
type NavigationCache struct {
	Fetched bool                       `json:"fetched"`
	Entries []identity.NavigationEntry `json:"entries"`
}

// Store persists the shell's session slots: the auth token, the cached
// navigation grants, the session display name, and the remember-me name
// used to pre-fill the login form.
//
// All operations are synchronous and never fail outward: writes are
// best-effort, and unreadable persisted data degrades to zero values.
type Store interface {
	Token() string
	SetToken(token string)
	// ClearToken tears down the session: token, navigation cache and the
	// session username are cleared in one logical operation. The remember-me
	// name survives.
	ClearToken()

	Navigation() NavigationCache
	SetNavigation(cache NavigationCache)
	ClearNavigation()

	UserName() string
	SetUserName(name string)

	RememberedName() string
	SetRememberedName(name string)
}
