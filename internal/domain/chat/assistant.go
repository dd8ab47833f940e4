package chat

import "context"

// Assistant produce la respuesta del asistente para el próximo turno.
// history llega en orden cronológico e incluye el mensaje recién
// enviado por el usuario como último elemento.
type Assistant interface {
	Converse(ctx context.Context, petID string, history []Message) (string, error)
}
