package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"horse-medical-records/internal/ports/kv"
)

// KV es un substrate en memoria del proceso. Se usa en dev y en tests.
type KV struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ kv.Substrate = (*KV)(nil)

func NewKV() *KV {
	return &KV{data: make(map[string]string)}
}

func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *KV) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *KV) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Keys devuelve las keys con el prefijo dado, ordenadas (debug/tests).
func (s *KV) Keys(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.data))
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
