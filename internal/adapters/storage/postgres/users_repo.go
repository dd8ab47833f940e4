package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-journal/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			user_id, pet_id, user_name, user_role, password,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		u.UserID,
		u.PetID,
		u.UserName,
		u.Role,
		u.Password,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			user_name = $2,
			user_role = $3,
			password = $4,
			updated_at = $5
		WHERE user_id = $1
	`,
		u.UserID,
		u.UserName,
		u.Role,
		u.Password,
		u.UpdatedAt,
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

func (r *UsersRepo) GetByID(ctx context.Context, userID string) (users.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return users.User{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			user_id, pet_id, user_name, user_role, password,
			created_at, updated_at
		FROM users
		WHERE user_id = $1
	`, userID)

	var u users.User
	if err := row.Scan(
		&u.UserID,
		&u.PetID,
		&u.UserName,
		&u.Role,
		&u.Password,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, ErrNotFound
		}
		return users.User{}, err
	}

	return u, nil
}
