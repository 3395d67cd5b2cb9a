package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	s := New(time.Minute)
	s.Set("dashboard:empresa1", 42)

	v, ok := s.Get("dashboard:empresa1")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = s.Get("inexistente")
	assert.False(t, ok)
}

// TestStore_Expiracao: entrada some após o TTL (relógio injetado no teste).
func TestStore_Expiracao(t *testing.T) {
	s := New(time.Minute)
	agora := time.Now()
	s.now = func() time.Time { return agora }

	s.Set("k", "v")
	_, ok := s.Get("k")
	require.True(t, ok)

	agora = agora.Add(2 * time.Minute)
	_, ok = s.Get("k")
	assert.False(t, ok)
	assert.Empty(t, s.Entries(), "entrada expirada não aparece na listagem")
}

func TestStore_Clear(t *testing.T) {
	s := New(time.Minute)
	s.Set("a", 1)
	s.Set("b", 2)

	assert.Equal(t, 2, s.Clear())
	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Clear())
}

func TestStore_Entries(t *testing.T) {
	s := New(time.Minute)
	s.Set("a", 1)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Key)
	assert.True(t, entries[0].ExpiresAt.After(time.Now()))
}
