package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyHistory: la mascota existe pero todavía no tiene conversación.
	ErrEmptyHistory = errors.New("chat history is empty")

	// ErrAssistantFailed: el asistente no pudo responder el turno.
	// El mensaje del usuario ya quedó en el historial cuando esto pasa.
	ErrAssistantFailed = errors.New("assistant failed to respond")
)

const converseTimeout = 60 * time.Second

type Service struct {
	repo      Repository
	assistant Assistant

	log *zap.Logger
	now func() time.Time
}

func NewService(repo Repository, assistant Assistant, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:      repo,
		assistant: assistant,
		log:       log,
		now:       time.Now,
	}
}

// SendTurn corre un turno completo: registra el mensaje del usuario,
// consulta al asistente y registra la respuesta. Sin reintentos: si el
// asistente falla, el mensaje del usuario igual queda persistido y el
// cliente puede volver a intentar con un turno nuevo.
func (s *Service) SendTurn(ctx context.Context, petID, content string) (Message, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" || strings.TrimSpace(content) == "" {
		return Message{}, ErrInvalidInput
	}

	userMsg := Message{
		Role:      RoleUser,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.AppendMessage(ctx, petID, userMsg); err != nil {
		return Message{}, fmt.Errorf("persist user message: %w", err)
	}

	history, err := s.repo.GetHistory(ctx, petID)
	if err != nil {
		return Message{}, fmt.Errorf("load history: %w", err)
	}

	reply, err := s.converse(ctx, petID, history)
	if err != nil {
		s.log.Warn("assistant turn failed",
			zap.String("pet_id", petID),
			zap.Error(err),
		)
		return Message{}, fmt.Errorf("%w: %v", ErrAssistantFailed, err)
	}
	if strings.TrimSpace(reply) == "" {
		return Message{}, fmt.Errorf("%w: empty reply", ErrAssistantFailed)
	}

	assistantMsg := Message{
		Role:      RoleAssistant,
		Content:   reply,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.AppendMessage(ctx, petID, assistantMsg); err != nil {
		return Message{}, fmt.Errorf("persist assistant message: %w", err)
	}

	return assistantMsg, nil
}

func (s *Service) converse(ctx context.Context, petID string, history []Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, converseTimeout)
	defer cancel()
	return s.assistant.Converse(ctx, petID, history)
}

// GetHistory devuelve la conversación completa en orden cronológico.
func (s *Service) GetHistory(ctx context.Context, petID string) ([]Message, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}

	history, err := s.repo.GetHistory(ctx, petID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}
	return history, nil
}
