package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-care-journal/internal/domain/diaries"
)

type diaryRepo struct {
	mu    sync.RWMutex
	byKey map[string]diaries.Diary
}

func NewDiaryRepo() diaries.Repository {
	return &diaryRepo{
		byKey: make(map[string]diaries.Diary),
	}
}

// Clave compuesta (pet_id, fecha); solo la parte fecha cuenta.
func diaryKey(petID string, date time.Time) string {
	return petID + "|" + date.Format("2006-01-02")
}

func (r *diaryRepo) Create(ctx context.Context, d diaries.Diary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.PetID) == "" || d.Date.IsZero() {
		return errors.New("pet id and date required")
	}
	// Create sobre una clave existente pisa la entrada anterior,
	// igual que un upsert por (pet_id, date).
	r.byKey[diaryKey(d.PetID, d.Date)] = d
	return nil
}

func (r *diaryRepo) Update(ctx context.Context, d diaries.Diary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := diaryKey(d.PetID, d.Date)
	if _, exists := r.byKey[key]; !exists {
		return ErrNotFound
	}
	r.byKey[key] = d
	return nil
}

func (r *diaryRepo) GetByID(ctx context.Context, petID string, date time.Time) (diaries.Diary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byKey[diaryKey(petID, date)]
	if !ok {
		return diaries.Diary{}, ErrNotFound
	}
	return d, nil
}
