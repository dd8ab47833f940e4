package images

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("image not found")

// Method es la operación que autoriza una URL firmada.
type Method string

const (
	MethodGet Method = "get"
	MethodPut Method = "put"
)

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodGet, MethodPut:
		return Method(s), nil
	default:
		return "", errors.New("method must be get or put")
	}
}

// Store es el object store de imágenes.
// Las claves tienen la forma "{pet_id}/{file_name}".
// Put sobreescribe sin preguntar: el pipeline de creación de mascota
// re-escribe el avatar en cada reintento y eso es intencional.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	PresignedURL(ctx context.Context, method Method, key string, ttl time.Duration) (string, error)
}
