package pets

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-journal/internal/platform/retry"
	"pet-care-journal/internal/ports/images"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrCreationFailed es el error terminal del pipeline: se agotaron los
	// reintentos. A propósito es genérico; el detalle de qué etapa falló
	// queda solo en los logs.
	ErrCreationFailed = errors.New("pet creation failed")
)

const (
	// AvatarImageName es el nombre fijo bajo el que se guarda el avatar.
	// Se sobreescribe el anterior si existe.
	AvatarImageName = "avatar.jpg"

	maxAttempts  = retry.DefaultAttempts
	stageTimeout = 60 * time.Second
)

type Service struct {
	repo   Repository
	images images.Store

	describer PictureDescriptionClient
	avatar    AvatarImageClient
	notes     CareNotesClient

	log *zap.Logger
	now func() time.Time
}

func NewService(
	repo Repository,
	imageStore images.Store,
	describer PictureDescriptionClient,
	avatar AvatarImageClient,
	notes CareNotesClient,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:      repo,
		images:    imageStore,
		describer: describer,
		avatar:    avatar,
		notes:     notes,
		log:       log,
		now:       time.Now,
	}
}

type CreateInput struct {
	PetID       string
	Name        string
	Category    string
	BirthDate   time.Time
	Gender      Gender
	PictureName string // ya subida por el cliente vía presigned URL
}

func (in CreateInput) pictureKey() string {
	return in.PetID + "/" + in.PictureName
}

// Create corre el pipeline completo de creación bajo el driver de
// reintentos: cada intento fallido re-ejecuta TODAS las etapas desde la
// primera. Efectos colaterales (escritura del avatar, llamadas de
// generación) pueden repetirse entre intentos: modelo at-least-once.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.PetID) == "" ||
		strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.PictureName) == "" {
		return Pet{}, ErrInvalidInput
	}
	if _, err := ParseGender(string(in.Gender)); err != nil {
		return Pet{}, ErrInvalidInput
	}
	if in.BirthDate.IsZero() {
		return Pet{}, ErrInvalidInput
	}

	// run_id correlaciona los logs de todos los intentos de esta creación.
	runLog := s.log.With(
		zap.String("pet_id", in.PetID),
		zap.String("run_id", uuid.NewString()),
	)

	pet, err := retry.Do(ctx, maxAttempts, runLog, func(ctx context.Context) (Pet, error) {
		return s.tryCreate(ctx, in)
	})
	if err != nil {
		runLog.Error("pet creation exhausted all attempts", zap.Error(err))
		return Pet{}, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	runLog.Info("pet created", zap.Int("care_notes", len(pet.CareNotes)))
	return pet, nil
}

// tryCreate es un intento del pipeline: etapas en orden estricto, cada una
// depende de que la anterior haya terminado bien.
func (s *Service) tryCreate(ctx context.Context, in CreateInput) (Pet, error) {
	// 1. Describir la foto original.
	description, err := s.describePicture(ctx, in.pictureKey())
	if err != nil {
		return Pet{}, fmt.Errorf("describe picture: %w", err)
	}

	// 2. Generar el avatar a partir de la descripción (prompts truncados
	// a MaxPromptLength antes de llamar al generador).
	avatarBase64, err := s.generateAvatar(ctx, description.Truncated())
	if err != nil {
		return Pet{}, fmt.Errorf("generate avatar: %w", err)
	}
	avatarBytes, err := base64.StdEncoding.DecodeString(avatarBase64)
	if err != nil {
		return Pet{}, fmt.Errorf("decode avatar image: %w", err)
	}
	if len(avatarBytes) == 0 {
		return Pet{}, errors.New("avatar image is empty")
	}

	// 3. Persistir el avatar bajo el nombre fijo (sobreescribe).
	avatarKey := in.PetID + "/" + AvatarImageName
	if err := s.putImage(ctx, avatarKey, avatarBytes); err != nil {
		return Pet{}, fmt.Errorf("save avatar image: %w", err)
	}

	// 4. Generar las notas de cuidado y validar el contrato de datos.
	careNotes, err := s.generateCareNotes(ctx, CareNotesVars{
		Category:  in.Category,
		BirthDate: in.BirthDate,
		Gender:    in.Gender,
	})
	if err != nil {
		return Pet{}, fmt.Errorf("generate care notes: %w", err)
	}
	for _, note := range careNotes {
		if err := note.Validate(); err != nil {
			return Pet{}, fmt.Errorf("generated care notes: %w", err)
		}
	}

	// 5. Crear la mascota.
	now := s.now().UTC()
	pet := Pet{
		PetID:     in.PetID,
		Name:      strings.TrimSpace(in.Name),
		Category:  strings.TrimSpace(in.Category),
		BirthDate: in.BirthDate,
		Gender:    in.Gender,
		CareNotes: careNotes,
		ImageName: AvatarImageName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, pet); err != nil {
		return Pet{}, fmt.Errorf("persist pet: %w", err)
	}

	return pet, nil
}

// Cada etapa lleva su propio timeout; un timeout es un fallo de etapa
// común y corriente, sujeto al driver de reintentos.

func (s *Service) describePicture(ctx context.Context, key string) (PictureDescription, error) {
	ctx, cancel := context.WithTimeout(ctx, stageTimeout)
	defer cancel()
	return s.describer.Describe(ctx, key)
}

func (s *Service) generateAvatar(ctx context.Context, d PictureDescription) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, stageTimeout)
	defer cancel()
	return s.avatar.Generate(ctx, d)
}

func (s *Service) putImage(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, stageTimeout)
	defer cancel()
	return s.images.Put(ctx, key, data)
}

func (s *Service) generateCareNotes(ctx context.Context, vars CareNotesVars) ([]CareNote, error) {
	ctx, cancel := context.WithTimeout(ctx, stageTimeout)
	defer cancel()
	return s.notes.Generate(ctx, vars)
}

func (s *Service) GetByID(ctx context.Context, petID string) (Pet, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, petID)
}

// UpdateCareNotes reemplaza las notas de cuidado COMPLETAS.
// No hay patch parcial de notas: o llega la lista entera o es inválido.
func (s *Service) UpdateCareNotes(ctx context.Context, petID string, notes []CareNote) (Pet, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" || len(notes) == 0 {
		return Pet{}, ErrInvalidInput
	}
	for _, note := range notes {
		if err := note.Validate(); err != nil {
			return Pet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	current, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	current.CareNotes = notes
	current.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}
