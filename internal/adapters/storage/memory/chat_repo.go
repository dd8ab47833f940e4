package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-journal/internal/domain/chat"
)

type chatRepo struct {
	mu    sync.RWMutex
	byPet map[string][]chat.Message
}

func NewChatRepo() chat.Repository {
	return &chatRepo{
		byPet: make(map[string][]chat.Message),
	}
}

func (r *chatRepo) AppendMessage(ctx context.Context, petID string, m chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(petID) == "" {
		return errors.New("pet id required")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	r.byPet[petID] = append(r.byPet[petID], m)
	return nil
}

func (r *chatRepo) GetHistory(ctx context.Context, petID string) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.byPet[petID]
	out := make([]chat.Message, len(history))
	copy(out, history)
	return out, nil
}
