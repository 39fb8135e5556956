package gatewayfakes

import (
	"context"
	"sync"

	"github.com/Trading-auto-pilot/astra-web-sub001/identity"
)

var _ identity.Gateway = (*FakeGateway)(nil)

// FakeGateway is a scripted in-memory Gateway for tests. Set Profile/Err
// before use; every FetchProfile call is counted so tests can assert on
// cache reuse.
type FakeGateway struct {
	lock sync.Mutex

	Profile    identity.Profile
	ProfileErr error

	LoginResult identity.LoginResult
	LoginErr    error

	fetchCalls int
	loginCalls int

	// Release, when set, blocks FetchProfile until the channel is closed.
	// Used to interleave concurrent navigation checks deterministically.
	Release chan struct{}
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) FetchProfile(ctx context.Context, token string) (identity.Profile, error) {
	g.lock.Lock()
	g.fetchCalls++
	release := g.Release
	profile, err := g.Profile, g.ProfileErr
	g.lock.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return identity.Profile{}, &identity.NetworkError{Message: "context canceled", Cause: ctx.Err()}
		}
	}
	return profile, err
}

func (g *FakeGateway) Login(ctx context.Context, creds identity.Credentials) (identity.LoginResult, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.loginCalls++
	return g.LoginResult, g.LoginErr
}

func (g *FakeGateway) FetchCalls() int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.fetchCalls
}

func (g *FakeGateway) LoginCalls() int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.loginCalls
}
