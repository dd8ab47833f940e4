package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pet-care-journal/internal/domain/diaries"
)

type DiariesRepo struct {
	db *sql.DB
}

func NewDiariesRepo(db *sql.DB) *DiariesRepo {
	return &DiariesRepo{db: db}
}

// Create hace upsert sobre la clave (pet_id, date): recrear el diario
// del día pisa la entrada anterior.
func (r *DiariesRepo) Create(ctx context.Context, d diaries.Diary) error {
	tasks, err := json.Marshal(d.Tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO diaries (
			pet_id, date, picture_name,
			reacted, advice, comment,
			weather, temperature, tasks,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (pet_id, date) DO UPDATE SET
			picture_name = EXCLUDED.picture_name,
			reacted = EXCLUDED.reacted,
			advice = EXCLUDED.advice,
			comment = EXCLUDED.comment,
			weather = EXCLUDED.weather,
			temperature = EXCLUDED.temperature,
			tasks = EXCLUDED.tasks,
			updated_at = EXCLUDED.updated_at
	`,
		d.PetID,
		d.Date,
		d.PictureName,
		d.Reacted,
		d.Advice,
		d.Comment,
		d.Weather,
		d.Temperature,
		tasks,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DiariesRepo) Update(ctx context.Context, d diaries.Diary) error {
	tasks, err := json.Marshal(d.Tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE diaries
		SET
			reacted = $3,
			comment = $4,
			tasks = $5,
			updated_at = $6
		WHERE pet_id = $1 AND date = $2
	`,
		d.PetID,
		d.Date,
		d.Reacted,
		d.Comment,
		tasks,
		d.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DiariesRepo) GetByID(ctx context.Context, petID string, date time.Time) (diaries.Diary, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return diaries.Diary{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			pet_id, date, picture_name,
			reacted, advice, comment,
			weather, temperature, tasks,
			created_at, updated_at
		FROM diaries
		WHERE pet_id = $1 AND date = $2
	`, petID, date)

	var d diaries.Diary
	var tasks []byte
	if err := row.Scan(
		&d.PetID,
		&d.Date,
		&d.PictureName,
		&d.Reacted,
		&d.Advice,
		&d.Comment,
		&d.Weather,
		&d.Temperature,
		&tasks,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return diaries.Diary{}, ErrNotFound
		}
		return diaries.Diary{}, err
	}

	// tasks es JSONB
	if len(tasks) > 0 {
		if err := json.Unmarshal(tasks, &d.Tasks); err != nil {
			return diaries.Diary{}, fmt.Errorf("unmarshal tasks: %w", err)
		}
	}

	return d, nil
}
