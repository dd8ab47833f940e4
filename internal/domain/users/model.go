package users

import (
	"errors"
	"strings"
	"time"
)

// Role define el rol del usuario dentro del hogar.
// @Enum child, parent, general
type Role string

const (
	RoleChild   Role = "child"
	RoleParent  Role = "parent"
	RoleGeneral Role = "general"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleChild, RoleParent, RoleGeneral:
		return Role(strings.TrimSpace(s)), nil
	default:
		return "", errors.New("role must be child, parent or general")
	}
}

// User es una cuenta asociada a una mascota del hogar.
type User struct {
	UserID   string
	PetID    string
	UserName string
	Role     Role
	Password string

	CreatedAt time.Time
	UpdatedAt time.Time
}
