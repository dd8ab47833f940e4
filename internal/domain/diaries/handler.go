package diaries

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/diaries", func(dr chi.Router) {
		dr.Post("/{date}", createDiaryHandler(svc))
		dr.Get("/{date}", getDiaryHandler(svc))
		dr.Put("/{date}", updateDiaryHandler(svc))
	})
}

type createDiaryRequest struct {
	Category    string `json:"category"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD
	PictureName string `json:"picture_name"`
	Weather     string `json:"weather"`
	Temperature string `json:"temperature"`
}

type updateDiaryRequest struct {
	// Punteros para update real: nil = no tocar.
	Reacted *bool       `json:"reacted"`
	Comment *string     `json:"comment"`
	Tasks   []DiaryTask `json:"tasks"`
}

type diaryResponse struct {
	PetID       string      `json:"pet_id"`
	Date        string      `json:"date"`
	PictureName string      `json:"picture_name"`
	Reacted     bool        `json:"reacted"`
	Advice      string      `json:"advice"`
	Comment     string      `json:"comment"`
	Weather     Weather     `json:"weather"`
	Temperature string      `json:"temperature"`
	Tasks       []DiaryTask `json:"tasks"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// createDiaryHandler godoc
// @Summary Crear diario
// @Description Crea la entrada del día: genera tareas y consejo con IA y persiste el diario. Una entrada por (mascota, fecha). Corre bajo el driver de reintentos (3 intentos).
// @Tags diaries
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param date path string true "Fecha YYYY-MM-DD"
// @Param body body createDiaryRequest true "Datos del día"
// @Success 201 {object} diaryResponse
// @Failure 400 {string} string "invalid input"
// @Failure 500 {string} string "diary creation failed"
// @Router /pets/{petID}/diaries/{date} [post]
func createDiaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var req createDiaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		weather, err := ParseWeather(req.Weather)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			PetID:       petID,
			Category:    req.Category,
			BirthDate:   birthDate,
			Date:        date,
			PictureName: req.PictureName,
			Weather:     weather,
			Temperature: req.Temperature,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrCreationFailed):
				http.Error(w, "diary creation failed", http.StatusInternalServerError)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toDiaryResponse(d))
	}
}

// getDiaryHandler godoc
// @Summary Obtener diario
// @Tags diaries
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param date path string true "Fecha YYYY-MM-DD"
// @Success 200 {object} diaryResponse
// @Failure 404 {string} string "diary not found"
// @Router /pets/{petID}/diaries/{date} [get]
func getDiaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		d, err := svc.GetByID(r.Context(), petID, date)
		if err != nil {
			http.Error(w, "diary not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toDiaryResponse(d))
	}
}

// updateDiaryHandler godoc
// @Summary Actualizar diario
// @Description Actualiza reacted, comment y el estado de las tareas. advice y el resto de los campos generados son inmutables.
// @Tags diaries
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param date path string true "Fecha YYYY-MM-DD"
// @Param body body updateDiaryRequest true "Campos a actualizar"
// @Success 200 {object} diaryResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "diary not found"
// @Router /pets/{petID}/diaries/{date} [put]
func updateDiaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var req updateDiaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Update(r.Context(), petID, date, UpdateInput{
			Reacted: req.Reacted,
			Comment: req.Comment,
			Tasks:   req.Tasks,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "diary not found", http.StatusNotFound)
			}
			return
		}

		writeJSON(w, http.StatusOK, toDiaryResponse(d))
	}
}

func toDiaryResponse(d Diary) diaryResponse {
	tasks := d.Tasks
	if tasks == nil {
		tasks = []DiaryTask{}
	}
	return diaryResponse{
		PetID:       d.PetID,
		Date:        d.Date.Format("2006-01-02"),
		PictureName: d.PictureName,
		Reacted:     d.Reacted,
		Advice:      d.Advice,
		Comment:     d.Comment,
		Weather:     d.Weather,
		Temperature: d.Temperature,
		Tasks:       tasks,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
