package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-care-journal/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/chat", func(cr chi.Router) {
		cr.Get("/", getHistoryHandler(svc, petsSvc))
		cr.Post("/", sendTurnHandler(svc, petsSvc))
	})
}

type sendTurnRequest struct {
	Content string `json:"content"`
}

type messageResponse struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type historyResponse struct {
	PetID    string            `json:"pet_id"`
	Messages []messageResponse `json:"messages"`
}

// getHistoryHandler godoc
// @Summary Historial del chat
// @Description Devuelve la conversación completa con el asistente de la mascota, en orden cronológico.
// @Tags chat
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} historyResponse
// @Failure 400 {string} string "pet not found"
// @Failure 404 {string} string "no chat history"
// @Router /pets/{petID}/chat [get]
func getHistoryHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		// Mascota inexistente es un pedido mal formado para el chat,
		// no un historial vacío.
		if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
			http.Error(w, "pet not found", http.StatusBadRequest)
			return
		}

		history, err := svc.GetHistory(r.Context(), petID)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyHistory):
				http.Error(w, "no chat history", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		msgs := make([]messageResponse, 0, len(history))
		for _, m := range history {
			msgs = append(msgs, messageResponse{Role: m.Role, Content: m.Content, CreatedAt: m.CreatedAt})
		}
		writeJSON(w, http.StatusOK, historyResponse{PetID: petID, Messages: msgs})
	}
}

// sendTurnHandler godoc
// @Summary Enviar mensaje al asistente
// @Description Registra el mensaje del usuario, consulta al asistente y devuelve la respuesta. Si el asistente falla, el mensaje del usuario ya quedó en el historial.
// @Tags chat
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param body body sendTurnRequest true "Mensaje del usuario"
// @Success 200 {object} messageResponse
// @Failure 400 {string} string "invalid input / pet not found"
// @Failure 502 {string} string "assistant failed"
// @Router /pets/{petID}/chat [post]
func sendTurnHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
			http.Error(w, "pet not found", http.StatusBadRequest)
			return
		}

		var req sendTurnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		reply, err := svc.SendTurn(r.Context(), petID, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrAssistantFailed):
				http.Error(w, "assistant failed", http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{
			Role:      reply.Role,
			Content:   reply.Content,
			CreatedAt: reply.CreatedAt,
		})
	}
}

// writeJSON duplicado a propósito por módulo (ver pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
