package images

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-journal/internal/ports/images"

	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("invalid input")

// URLTTL es la vigencia de las URLs prefirmadas que emite el servicio.
const URLTTL = time.Hour

type Service struct {
	store images.Store
	log   *zap.Logger
}

func NewService(store images.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

type PresignInput struct {
	Method   string
	PetID    string
	FileName string
}

// Presign emite una URL prefirmada para subir o bajar la imagen
// {pet_id}/{file_name} directo contra el almacén de objetos.
func (s *Service) Presign(ctx context.Context, in PresignInput) (string, error) {
	petID := strings.TrimSpace(in.PetID)
	fileName := strings.TrimSpace(in.FileName)
	if petID == "" || fileName == "" {
		return "", ErrInvalidInput
	}
	// El nombre no puede escapar del prefijo de la mascota.
	if strings.Contains(fileName, "/") || strings.Contains(fileName, "..") {
		return "", fmt.Errorf("%w: invalid file name", ErrInvalidInput)
	}

	method, err := images.ParseMethod(in.Method)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	key := petID + "/" + fileName
	url, err := s.store.PresignedURL(ctx, method, key, URLTTL)
	if err != nil {
		return "", fmt.Errorf("presign %s %s: %w", method, key, err)
	}

	s.log.Debug("presigned url issued",
		zap.String("method", string(method)),
		zap.String("key", key),
	)
	return url, nil
}
