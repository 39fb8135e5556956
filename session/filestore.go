package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// document is the on-disk shape of the session. One JSON file stands in for
// the browser's local storage.
type document struct {
	Token          string          `json:"token,omitempty"`
	Navigation     NavigationCache `json:"navigation"`
	UserName       string          `json:"username,omitempty"`
	RememberedName string          `json:"rememberedName,omitempty"`
}

// FileStore is the persisted Store implementation. Reads come from an
// in-memory copy loaded once at construction; every mutation rewrites the
// file best-effort. A file that cannot be read or parsed is treated as an
// empty session rather than an error.
type FileStore struct {
	path string
	log  zerolog.Logger

	lock sync.RWMutex
	doc  document
}

var _ Store = (*FileStore)(nil)

// NewFileStore loads the session document at path, creating parent
// directories on first write.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	s := &FileStore{path: path, log: log}
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(raw, &s.doc); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("session file corrupt, starting empty")
			s.doc = document{}
		}
	}
	return s
}

func (s *FileStore) Token() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.doc.Token
}

func (s *FileStore) SetToken(token string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.doc.Token = token
	s.persist()
}

func (s *FileStore) ClearToken() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.doc.Token = ""
	s.doc.Navigation = NavigationCache{}
	s.doc.UserName = ""
	s.persist()
}

func (s *FileStore) Navigation() NavigationCache {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.doc.Navigation
}

func (s *FileStore) SetNavigation(cache NavigationCache) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.doc.Navigation = cache
	s.persist()
}

func (s *FileStore) ClearNavigation() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.doc.Navigation = NavigationCache{}
	s.persist()
}

func (s *FileStore) UserName() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.doc.UserName
}

func (s *FileStore) SetUserName(name string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.doc.UserName = name
	s.persist()
}

func (s *FileStore) RememberedName() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.doc.RememberedName
}

func (s *FileStore) SetRememberedName(name string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.doc.RememberedName = name
	s.persist()
}

// persist writes the document to disk. Failures are logged and swallowed:
// caching is best-effort and must never surface to the caller. Callers hold
// the write lock.
func (s *FileStore) persist() {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		s.log.Warn().Err(err).Msg("session serialize failed (ignored)")
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("session write failed (ignored)")
		return
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("session write failed (ignored)")
	}
}
