package chat

import (
	"errors"
	"strings"
	"time"
)

// Role identifica al emisor de un mensaje del chat.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message es un turno de la conversación con el asistente de una mascota.
// El historial es append-only: los mensajes nunca se editan ni se borran.
type Message struct {
	Role      Role
	Content   string
	CreatedAt time.Time
}

func (m Message) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return errors.New("message role must be user or assistant")
	}
	if strings.TrimSpace(m.Content) == "" {
		return errors.New("message content is required")
	}
	return nil
}
