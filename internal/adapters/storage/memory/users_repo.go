package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-journal/internal/domain/users"
)

type userRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID: make(map[string]users.User),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.UserID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.UserID]; exists {
		return errors.New("user already exists")
	}
	r.byID[u.UserID] = u
	return nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.UserID]; !exists {
		return ErrNotFound
	}
	r.byID[u.UserID] = u
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, userID string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[userID]
	if !ok {
		return users.User{}, ErrNotFound
	}
	return u, nil
}
