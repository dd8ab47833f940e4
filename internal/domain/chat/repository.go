package chat

import "context"

// Repository guarda el historial por mascota en orden de llegada.
// GetHistory devuelve la lista vacía (no error) cuando la mascota
// todavía no conversó.
type Repository interface {
	AppendMessage(ctx context.Context, petID string, m Message) error
	GetHistory(ctx context.Context, petID string) ([]Message, error)
}
