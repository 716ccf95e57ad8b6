// internal/cache/memoria.go
package cache

import (
	"context"
	"sync"
	"time"
)

type itemMemoria struct {
	valor  string
	expira time.Time
}

// MemoriaCache é um Cache em memória para testes e execução sem Redis.
type MemoriaCache struct {
	mu    sync.RWMutex
	itens map[string]itemMemoria
}

// NewMemoriaCache instancia um cache vazio.
func NewMemoriaCache() *MemoriaCache {
	return &MemoriaCache{itens: make(map[string]itemMemoria)}
}

func (m *MemoriaCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.itens[key]
	if !ok {
		return "", false
	}
	if !item.expira.IsZero() && time.Now().After(item.expira) {
		return "", false
	}
	return item.valor, true
}

func (m *MemoriaCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var expira time.Time
	if ttl > 0 {
		expira = time.Now().Add(ttl)
	}
	m.itens[key] = itemMemoria{valor: value, expira: expira}
	return nil
}

func (m *MemoriaCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.itens, key)
	return nil
}
