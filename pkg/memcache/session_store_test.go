package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate(t *testing.T) {
	store := NewSessionStore(time.Hour)

	session, created := store.GetOrCreate("s1")
	require.True(t, created)
	assert.Equal(t, "s1", session.ID)

	again, created := store.GetOrCreate("s1")
	assert.False(t, created)
	assert.Same(t, session, again)
}

func TestMutationsVisibleWithoutPut(t *testing.T) {
	store := NewSessionStore(time.Hour)

	session, _ := store.GetOrCreate("s1")
	session.Destination = "Bali"

	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "Bali", got.Destination)
}

func TestGetUnknownKey(t *testing.T) {
	store := NewSessionStore(time.Hour)

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestIdleSessionExpires(t *testing.T) {
	store := NewSessionStore(30 * time.Millisecond)

	store.GetOrCreate("s1")
	time.Sleep(60 * time.Millisecond)

	_, ok := store.Get("s1")
	assert.False(t, ok)
}
