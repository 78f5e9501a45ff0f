package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPStore_GenerateAndVerify(t *testing.T) {
	store := NewOTPStore(5 * time.Minute)

	code := store.Generate("jane@example.com")
	require.Len(t, code, 6)

	// Wrong code leaves the entry in place.
	assert.False(t, store.Verify("jane@example.com", "999999x"))

	// The right code succeeds once and is consumed.
	assert.True(t, store.Verify("jane@example.com", code))
	assert.False(t, store.Verify("jane@example.com", code))
}

func TestOTPStore_EmailNormalization(t *testing.T) {
	store := NewOTPStore(5 * time.Minute)

	code := store.Generate("Jane@Example.com")
	assert.True(t, store.Verify("  jane@example.com ", code))
}

func TestOTPStore_Regenerate_ReplacesOutstandingCode(t *testing.T) {
	store := NewOTPStore(5 * time.Minute)

	first := store.Generate("jane@example.com")
	second := store.Generate("jane@example.com")

	if first != second {
		assert.False(t, store.Verify("jane@example.com", first))
	}
	assert.True(t, store.Verify("jane@example.com", second))
}

func TestOTPStore_Expiry(t *testing.T) {
	store := NewOTPStore(5 * time.Minute)

	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	code := store.Generate("jane@example.com")

	current = current.Add(4 * time.Minute)
	assert.True(t, store.Verify("jane@example.com", code))

	code = store.Generate("jane@example.com")
	current = current.Add(5*time.Minute + time.Second)
	assert.False(t, store.Verify("jane@example.com", code))
}

func TestOTPStore_UnknownEmail(t *testing.T) {
	store := NewOTPStore(5 * time.Minute)
	assert.False(t, store.Verify("nobody@example.com", "123456"))
}
