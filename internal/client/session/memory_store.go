package session

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// MemoryStore keeps sessions in memory with the same expiry rules as
// CookieStore. Tests use it in place of the SQLite jar.
type MemoryStore struct {
	mu      sync.Mutex
	cookies map[string]*http.Cookie
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cookies: make(map[string]*http.Cookie), now: time.Now}
}

// WithClock replaces the store's time source.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

func (s *MemoryStore) Get(_ context.Context, role Role) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cookies[role.CookieName()]
	if !ok {
		return "", nil
	}
	if !c.Expires.After(s.now()) {
		delete(s.cookies, c.Name)
		return "", nil
	}
	return c.Value, nil
}

func (s *MemoryStore) Set(_ context.Context, role Role, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Cookie(role, id)
	c.Expires = expiresAt(s.now())
	s.cookies[c.Name] = c
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cookies, role.CookieName())
	return nil
}

// Cookie exposes the stored cookie for inspection, or nil.
func (s *MemoryStore) Cookie(role Role) *http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cookies[role.CookieName()]
	if !ok {
		return nil
	}
	cp := *c
	return &cp
}
