package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"pet-care-journal/internal/ports/images"
)

type imageStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewImageStore guarda los objetos en memoria; para dev y tests.
func NewImageStore() images.Store {
	return &imageStore{
		objects: make(map[string][]byte),
	}
}

func (s *imageStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.objects[key]
	if !ok {
		return nil, images.ErrNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (s *imageStore) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, len(data))
	copy(b, data)
	s.objects[key] = b
	return nil
}

// PresignedURL devuelve una URL ficticia pero estable; alcanza para
// que el flujo completo funcione sin un object store real.
func (s *imageStore) PresignedURL(ctx context.Context, method images.Method, key string, ttl time.Duration) (string, error) {
	if _, err := images.ParseMethod(string(method)); err != nil {
		return "", err
	}
	return "memory://" + string(method) + "/" + strings.TrimPrefix(key, "/"), nil
}
