package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/{petID}", createPetHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
	})
}

type createPetRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD
	Gender      string `json:"gender"`
	PictureName string `json:"picture_name"` // foto ya subida a {pet_id}/{picture_name}
}

type careNoteBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type updatePetRequest struct {
	CareNotes []careNoteBody `json:"care_notes"`
}

type petResponse struct {
	PetID     string         `json:"pet_id"`
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	BirthDate string         `json:"birth_date"`
	Gender    Gender         `json:"gender"`
	CareNotes []careNoteBody `json:"care_notes"`
	ImageName string         `json:"image_name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea el perfil de la mascota: describe la foto subida, genera y guarda el avatar, genera las notas de cuidado y persiste todo. Corre bajo el driver de reintentos (3 intentos).
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param body body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid input"
// @Failure 500 {string} string "pet creation failed"
// @Router /pets/{petID} [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		gender, err := ParseGender(req.Gender)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			PetID:       petID,
			Name:        req.Name,
			Category:    req.Category,
			BirthDate:   birthDate,
			Gender:      gender,
			PictureName: req.PictureName,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrCreationFailed):
				// Genérico a propósito: el caller no distingue qué etapa
				// falló, eso vive en los logs.
				http.Error(w, "pet creation failed", http.StatusInternalServerError)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar notas de cuidado
// @Description Reemplaza la lista completa de care_notes. No hay patch parcial.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param body body updatePetRequest true "Notas de cuidado completas"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		notes := make([]CareNote, 0, len(req.CareNotes))
		for _, n := range req.CareNotes {
			notes = append(notes, CareNote{
				Title:       n.Title,
				Description: n.Description,
				Icon:        CareNoteIcon(n.Icon),
			})
		}

		p, err := svc.UpdateCareNotes(r.Context(), petID, notes)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "pet not found", http.StatusNotFound)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	notes := make([]careNoteBody, 0, len(p.CareNotes))
	for _, n := range p.CareNotes {
		notes = append(notes, careNoteBody{
			Title:       n.Title,
			Description: n.Description,
			Icon:        string(n.Icon),
		})
	}
	return petResponse{
		PetID:     p.PetID,
		Name:      p.Name,
		Category:  p.Category,
		BirthDate: p.BirthDate.Format("2006-01-02"),
		Gender:    p.Gender,
		CareNotes: notes,
		ImageName: p.ImageName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que en el resto del proyecto: todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
