package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"
)

type otpEntry struct {
	Code      string
	ExpiresAt time.Time
}

// OTPStore holds password-reset codes in process memory. Codes are scoped to
// a single instance and vanish on restart; nothing here is persisted.
type OTPStore struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewOTPStore(ttl time.Duration) *OTPStore {
	return &OTPStore{
		entries: make(map[string]otpEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Generate issues a fresh 6-digit code for the email, replacing any code
// already outstanding for it.
func (s *OTPStore) Generate(email string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		n = big.NewInt(time.Now().UnixNano() % 1000000)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[normalizeEmail(email)] = otpEntry{
		Code:      code,
		ExpiresAt: s.now().Add(s.ttl),
	}
	return code
}

// Verify checks the code for the email and consumes it on success. Expired
// entries are removed on sight.
func (s *OTPStore) Verify(email, code string) bool {
	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return false
	}
	if s.now().After(entry.ExpiresAt) {
		delete(s.entries, key)
		return false
	}
	if entry.Code != code {
		return false
	}
	delete(s.entries, key)
	return true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
