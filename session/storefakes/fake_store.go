package storefakes

import (
	"sync"

	"github.com/Trading-auto-pilot/astra-web-sub001/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory Store for tests and for running the shell
// without persistence.
type FakeStore struct {
	lock sync.RWMutex

	token          string
	navigation     session.NavigationCache
	userName       string
	rememberedName string
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (s *FakeStore) Token() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.token
}

func (s *FakeStore) SetToken(token string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.token = token
}

func (s *FakeStore) ClearToken() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.token = ""
	s.navigation = session.NavigationCache{}
	s.userName = ""
}

func (s *FakeStore) Navigation() session.NavigationCache {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.navigation
}

func (s *FakeStore) SetNavigation(cache session.NavigationCache) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.navigation = cache
}

func (s *FakeStore) ClearNavigation() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.navigation = session.NavigationCache{}
}

func (s *FakeStore) UserName() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.userName
}

func (s *FakeStore) SetUserName(name string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.userName = name
}

func (s *FakeStore) RememberedName() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.rememberedName
}

func (s *FakeStore) SetRememberedName(name string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.rememberedName = name
}
