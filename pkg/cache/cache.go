package cache

import (
	"sync"
	"time"
)

// Cache define um cache chave-valor com expiração por entrada.
// Os resultados das integrações são cacheados por um TTL curto para
// evitar chamadas remotas redundantes a cada renderização do dashboard.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	GetOrLoad(key string, ttl time.Duration, load func() (interface{}, error)) (interface{}, error)
	Delete(key string)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Memory é um cache em memória, local ao processo, seguro para uso concorrente
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemory cria um cache em memória vazio
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || m.now().After(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

func (m *Memory) Set(key string, value interface{}, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
}

// GetOrLoad retorna o valor cacheado ou executa load e guarda o resultado.
// A carga acontece sob o lock para garantir uma única execução por chave expirada.
func (m *Memory) GetOrLoad(key string, ttl time.Duration, load func() (interface{}, error)) (interface{}, error) {
	if value, ok := m.Get(key); ok {
		return value, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Revalida depois de adquirir o lock exclusivo
	if e, ok := m.entries[key]; ok && m.now().Before(e.expiresAt) {
		return e.value, nil
	}

	value, err := load()
	if err != nil {
		return nil, err
	}

	m.entries[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	return value, nil
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// Nop é um cache que nunca guarda nada, usado em testes
type Nop struct{}

func NewNop() *Nop { return &Nop{} }

func (Nop) Get(string) (interface{}, bool) { return nil, false }

func (Nop) Set(string, interface{}, time.Duration) {}

func (Nop) GetOrLoad(_ string, _ time.Duration, load func() (interface{}, error)) (interface{}, error) {
	return load()
}

func (Nop) Delete(string) {}
