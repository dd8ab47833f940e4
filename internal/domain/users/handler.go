package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/{userID}", createUserHandler(svc))
		ur.Get("/{userID}", getUserHandler(svc))
		ur.Put("/{userID}", updateUserHandler(svc))
	})
}

type createUserRequest struct {
	PetID    string `json:"pet_id"`
	UserName string `json:"user_name"`
	UserRole string `json:"user_role"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	UserName *string `json:"user_name"`
	UserRole *string `json:"user_role"`
	Password *string `json:"password"`
}

// La contraseña nunca sale en las respuestas.
type userResponse struct {
	UserID    string    `json:"user_id"`
	PetID     string    `json:"pet_id"`
	UserName  string    `json:"user_name"`
	UserRole  Role      `json:"user_role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createUserHandler godoc
// @Summary Crear usuario
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param body body createUserRequest true "Datos del usuario"
// @Success 201 {object} userResponse
// @Failure 400 {string} string "invalid input"
// @Router /users/{userID} [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		role, err := ParseRole(req.UserRole)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			UserID:   userID,
			PetID:    req.PetID,
			UserName: req.UserName,
			Role:     role,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 404 {string} string "user not found"
// @Router /users/{userID} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// updateUserHandler godoc
// @Summary Actualizar usuario
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param body body updateUserRequest true "Campos a actualizar"
// @Success 200 {object} userResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "user not found"
// @Router /users/{userID} [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var role *Role
		if req.UserRole != nil {
			parsed, err := ParseRole(*req.UserRole)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			role = &parsed
		}

		u, err := svc.Update(r.Context(), userID, UpdateInput{
			UserName: req.UserName,
			Role:     role,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		UserID:    u.UserID,
		PetID:     u.PetID,
		UserName:  u.UserName,
		UserRole:  u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
