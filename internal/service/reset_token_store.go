package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type resetTokenEntry struct {
	email     string
	expiresAt time.Time
}

// ResetTokenStore bridges a verified OTP to the final password write. Tokens
// live only in process memory; a restart invalidates everything outstanding,
// which is acceptable at a five minute TTL. The store is shared across
// request goroutines, so every access goes through the mutex.
type ResetTokenStore struct {
	mu      sync.RWMutex
	entries map[string]resetTokenEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewResetTokenStore(ttl time.Duration) *ResetTokenStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ResetTokenStore{
		entries: make(map[string]resetTokenEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue mints an opaque token bound to email and returns it. Only called
// after OTP verification has succeeded.
func (s *ResetTokenStore) Issue(email string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.entries[token] = resetTokenEntry{
		email:     email,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

// Lookup returns the email bound to token. Expired entries are deleted on
// discovery; "expired" and "never existed" are indistinguishable to callers.
func (s *ResetTokenStore) Lookup(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return "", false
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, token)
		return "", false
	}
	return entry.email, true
}

// Consume removes token unconditionally, enforcing single use.
func (s *ResetTokenStore) Consume(token string) {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
}
