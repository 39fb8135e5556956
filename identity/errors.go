package identity

import "errors"

// ErrNotAuthenticated means no session token exists, so no gateway call was
// attempted.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthError means the backend explicitly rejected the token or credentials.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication rejected"
	}
	return e.Message
}

// NetworkError means the backend was unreachable, responded with an
// unexpected status, or returned a body that could not be decoded.
type NetworkError struct {
	Message string
	Cause   error
}

func (e *NetworkError) Error() string {
	if e.Message == "" {
		return "identity gateway unreachable"
	}
	return e.Message
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// IsAuthError reports whether err is an explicit rejection rather than a
// transport failure.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
