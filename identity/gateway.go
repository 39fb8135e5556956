package identity

import "context"

// NavigationEntry is one permission grant: the user may visit the named page.
// Extra presentation fields travel with it but only Page is load-bearing for
// access decisions.
type NavigationEntry struct {
	Page  string `json:"page"`
	Label string `json:"label,omitempty"`
	Order int    `json:"order,omitempty"`
}

// Profile is the authenticated user's identity as reported by the backend.
type Profile struct {
	UserName   string
	Navigation []NavigationEntry
}

// Credentials are the login form fields posted to the backend.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned by a successful credential login.
type LoginResult struct {
	Token    string
	UserName string
}

// Gateway is the identity boundary of the shell. It produces profile and
// navigation data but never owns or caches it beyond the call.
type Gateway interface {
	// FetchProfile returns the current user's profile and permitted pages.
	// token may be empty; the backend decides whether anonymous access is
	// meaningful. Fails with *AuthError or *NetworkError.
	FetchProfile(ctx context.Context, token string) (Profile, error)

	// Login exchanges credentials for a session token.
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
}

// Pages extracts the set of permitted page names from a grant list.
// Entries without a page name are filtered out silently.
func Pages(entries []NavigationEntry) []string {
	pages := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Page == "" {
			continue
		}
		pages = append(pages, e.Page)
	}
	return pages
}
