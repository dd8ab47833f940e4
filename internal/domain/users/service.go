package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository

	log *zap.Logger
	now func() time.Time
}

func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

type CreateInput struct {
	UserID   string
	PetID    string
	UserName string
	Role     Role
	Password string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	if strings.TrimSpace(in.UserID) == "" ||
		strings.TrimSpace(in.PetID) == "" ||
		strings.TrimSpace(in.UserName) == "" ||
		strings.TrimSpace(in.Password) == "" {
		return User{}, ErrInvalidInput
	}
	if _, err := ParseRole(string(in.Role)); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now().UTC()
	u := User{
		UserID:    in.UserID,
		PetID:     in.PetID,
		UserName:  in.UserName,
		Role:      in.Role,
		Password:  in.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}

	s.log.Info("user created",
		zap.String("user_id", u.UserID),
		zap.String("pet_id", u.PetID),
	)
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, userID)
}

// UpdateInput: punteros para update parcial; nil = no tocar.
type UpdateInput struct {
	UserName *string
	Role     *Role
	Password *string
}

func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return User{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	if in.UserName != nil {
		if strings.TrimSpace(*in.UserName) == "" {
			return User{}, ErrInvalidInput
		}
		current.UserName = *in.UserName
	}
	if in.Role != nil {
		if _, err := ParseRole(string(*in.Role)); err != nil {
			return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		current.Role = *in.Role
	}
	if in.Password != nil {
		if strings.TrimSpace(*in.Password) == "" {
			return User{}, ErrInvalidInput
		}
		current.Password = *in.Password
	}
	current.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, current); err != nil {
		return User{}, err
	}
	return current, nil
}
