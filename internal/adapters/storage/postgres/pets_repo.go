package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"pet-care-journal/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	notes, err := json.Marshal(p.CareNotes)
	if err != nil {
		return fmt.Errorf("marshal care notes: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (
			pet_id, name, category,
			birth_date, gender,
			care_notes, image_name,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.PetID,
		p.Name,
		p.Category,
		p.BirthDate,
		p.Gender,
		notes,
		p.ImageName,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	notes, err := json.Marshal(p.CareNotes)
	if err != nil {
		return fmt.Errorf("marshal care notes: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			category = $3,
			birth_date = $4,
			gender = $5,
			care_notes = $6,
			image_name = $7,
			updated_at = $8
		WHERE pet_id = $1
	`,
		p.PetID,
		p.Name,
		p.Category,
		p.BirthDate,
		p.Gender,
		notes,
		p.ImageName,
		p.UpdatedAt,
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

func (r *PetsRepo) GetByID(ctx context.Context, petID string) (pets.Pet, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			pet_id, name, category,
			birth_date, gender,
			care_notes, image_name,
			created_at, updated_at
		FROM pets
		WHERE pet_id = $1
	`, petID)

	var p pets.Pet
	var notes []byte
	if err := row.Scan(
		&p.PetID,
		&p.Name,
		&p.Category,
		&p.BirthDate,
		&p.Gender,
		&notes,
		&p.ImageName,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}

	// care_notes es JSONB
	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &p.CareNotes); err != nil {
			return pets.Pet{}, fmt.Errorf("unmarshal care notes: %w", err)
		}
	}

	return p, nil
}
