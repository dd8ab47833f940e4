package diaries

import (
	"context"
	"time"
)

// Repository persiste diarios bajo la clave compuesta (pet_id, date).
// Create para una clave ya existente sigue la semántica del backend
// (típicamente overwrite); este core no lo diagnostica.
type Repository interface {
	Create(ctx context.Context, d Diary) error
	Update(ctx context.Context, d Diary) error
	GetByID(ctx context.Context, petID string, date time.Time) (Diary, error)
}
