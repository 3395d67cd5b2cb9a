// Package memcache é um cache em memória com TTL para os agregados do
// dashboard. A administração do cache (inspecionar e limpar) é exposta por
// endpoints próprios.
package memcache

import (
	"sync"
	"time"
)

// Entry metadados de uma entrada viva do cache.
type Entry struct {
	Key       string
	ExpiresAt time.Time
}

type item struct {
	value     any
	expiresAt time.Time
}

// Store cache chave-valor com expiração por entrada.
type Store struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]item
	now   func() time.Time
}

// New cria o cache com o TTL padrão das entradas.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:   ttl,
		items: make(map[string]item),
		now:   time.Now,
	}
}

// Get devolve o valor se presente e ainda válido.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || s.now().After(it.expiresAt) {
		return nil, false
	}
	return it.value, true
}

// Set grava o valor com o TTL padrão.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	s.items[key] = item{value: value, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
}

// Delete remove uma chave específica.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}

// Clear esvazia o cache inteiro e devolve quantas entradas foram removidas.
func (s *Store) Clear() int {
	s.mu.Lock()
	n := len(s.items)
	s.items = make(map[string]item)
	s.mu.Unlock()
	return n
}

// Entries lista as entradas ainda válidas (para a tela de administração).
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	var out []Entry
	for k, it := range s.items {
		if now.After(it.expiresAt) {
			continue
		}
		out = append(out, Entry{Key: k, ExpiresAt: it.expiresAt})
	}
	return out
}
