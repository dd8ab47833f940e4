package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-journal/internal/domain/pets"
)

var ErrNotFound = errors.New("not found")

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.PetID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.PetID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.PetID] = p
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.PetID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.PetID]; !exists {
		return ErrNotFound
	}
	r.byID[p.PetID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, petID string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[petID]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return p, nil
}
