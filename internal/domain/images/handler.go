package images

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/images/presigned-url", presignHandler(svc))
}

type presignRequest struct {
	Method   string `json:"method"` // get | put
	PetID    string `json:"pet_id"`
	FileName string `json:"file_name"`
}

type presignResponse struct {
	URL string `json:"url"`
}

// presignHandler godoc
// @Summary Emitir URL prefirmada
// @Description Devuelve una URL prefirmada (1 hora) para subir o bajar una imagen de la mascota directo contra el almacén de objetos.
// @Tags images
// @Accept json
// @Produce json
// @Param body body presignRequest true "Método (get|put), mascota y nombre de archivo"
// @Success 200 {object} presignResponse
// @Failure 400 {string} string "invalid input"
// @Router /images/presigned-url [post]
func presignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req presignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		url, err := svc.Presign(r.Context(), PresignInput{
			Method:   req.Method,
			PetID:    req.PetID,
			FileName: req.FileName,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, presignResponse{URL: url})
	}
}

// writeJSON duplicado a propósito por módulo (ver pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
