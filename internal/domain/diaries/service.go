package diaries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-journal/internal/platform/retry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrCreationFailed: se agotaron los reintentos del pipeline.
	ErrCreationFailed = errors.New("diary creation failed")
)

const (
	maxAttempts  = retry.DefaultAttempts
	stageTimeout = 60 * time.Second
)

type Service struct {
	repo   Repository
	tasks  CareTasksClient
	advice CareAdviceClient

	log *zap.Logger
	now func() time.Time
}

func NewService(repo Repository, tasks CareTasksClient, advice CareAdviceClient, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		tasks:  tasks,
		advice: advice,
		log:    log,
		now:    time.Now,
	}
}

type CreateInput struct {
	PetID       string
	Category    string
	BirthDate   time.Time
	Date        time.Time
	PictureName string
	Weather     Weather
	Temperature string
}

func (in CreateInput) pictureKey() string {
	return in.PetID + "/" + in.PictureName
}

// Create corre el pipeline del diario bajo el driver de reintentos.
// Igual que en mascotas: cada intento re-ejecuta todas las etapas.
func (s *Service) Create(ctx context.Context, in CreateInput) (Diary, error) {
	if strings.TrimSpace(in.PetID) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.PictureName) == "" {
		return Diary{}, ErrInvalidInput
	}
	if in.BirthDate.IsZero() || in.Date.IsZero() {
		return Diary{}, ErrInvalidInput
	}
	if _, err := ParseWeather(string(in.Weather)); err != nil {
		return Diary{}, ErrInvalidInput
	}

	runLog := s.log.With(
		zap.String("pet_id", in.PetID),
		zap.String("date", in.Date.Format("2006-01-02")),
		zap.String("run_id", uuid.NewString()),
	)

	diary, err := retry.Do(ctx, maxAttempts, runLog, func(ctx context.Context) (Diary, error) {
		return s.tryCreate(ctx, in)
	})
	if err != nil {
		runLog.Error("diary creation exhausted all attempts", zap.Error(err))
		return Diary{}, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	runLog.Info("diary created", zap.Int("tasks", len(diary.Tasks)))
	return diary, nil
}

// tryCreate: tareas → consejo → persistir. Las dos generaciones no
// dependen entre sí, pero las corremos en secuencia como siempre se hizo;
// paralelizarlas sería una optimización, no un requisito.
func (s *Service) tryCreate(ctx context.Context, in CreateInput) (Diary, error) {
	// 1. Tareas de cuidado del día.
	tasks, err := s.generateTasks(ctx, in)
	if err != nil {
		return Diary{}, fmt.Errorf("generate care tasks: %w", err)
	}
	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			return Diary{}, fmt.Errorf("generated tasks: %w", err)
		}
	}

	// 2. Consejo del día.
	advice, err := s.generateAdvice(ctx, in)
	if err != nil {
		return Diary{}, fmt.Errorf("generate care advice: %w", err)
	}
	if strings.TrimSpace(advice) == "" {
		return Diary{}, errors.New("generated advice is empty")
	}

	// 3. Crear el diario.
	now := s.now().UTC()
	diary := Diary{
		PetID:       in.PetID,
		Date:        in.Date,
		PictureName: in.PictureName,
		Reacted:     false,
		Advice:      advice,
		Comment:     "",
		Weather:     in.Weather,
		Temperature: in.Temperature,
		Tasks:       tasks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, diary); err != nil {
		return Diary{}, fmt.Errorf("persist diary: %w", err)
	}

	return diary, nil
}

func (s *Service) generateTasks(ctx context.Context, in CreateInput) ([]DiaryTask, error) {
	ctx, cancel := context.WithTimeout(ctx, stageTimeout)
	defer cancel()
	return s.tasks.Generate(ctx, CareTasksVars{
		Category:  in.Category,
		BirthDate: in.BirthDate,
	}, in.pictureKey())
}

func (s *Service) generateAdvice(ctx context.Context, in CreateInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, stageTimeout)
	defer cancel()
	return s.advice.Generate(ctx, CareAdviceVars{
		BirthDate:   in.BirthDate,
		Category:    in.Category,
		Date:        in.Date,
		Weather:     in.Weather,
		Temperature: in.Temperature,
	}, in.pictureKey())
}

func (s *Service) GetByID(ctx context.Context, petID string, date time.Time) (Diary, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" || date.IsZero() {
		return Diary{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, petID, date)
}

// UpdateInput: punteros para update parcial; nil = no tocar.
// advice, weather, temperature y picture_name son inmutables después
// de la creación, por eso no aparecen acá.
type UpdateInput struct {
	Reacted *bool
	Comment *string
	Tasks   []DiaryTask // reemplazo completo (toggles de completado)
}

func (s *Service) Update(ctx context.Context, petID string, date time.Time, in UpdateInput) (Diary, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" || date.IsZero() {
		return Diary{}, ErrInvalidInput
	}
	if in.Tasks != nil {
		for _, task := range in.Tasks {
			if err := task.Validate(); err != nil {
				return Diary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
	}

	current, err := s.repo.GetByID(ctx, petID, date)
	if err != nil {
		return Diary{}, err
	}

	if in.Reacted != nil {
		current.Reacted = *in.Reacted
	}
	if in.Comment != nil {
		current.Comment = *in.Comment
	}
	if in.Tasks != nil {
		current.Tasks = in.Tasks
	}
	current.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, current); err != nil {
		return Diary{}, err
	}
	return current, nil
}
