package pets

import (
	"context"
	"time"
)

// Puertos de generación que consume el pipeline de creación.
// Una implementación por servicio (gemini) más stubs locales para dev/tests.

// PictureDescriptionClient genera los prompts (positivo/negativo) a partir
// de la foto original subida por el usuario.
type PictureDescriptionClient interface {
	Describe(ctx context.Context, imageKey string) (PictureDescription, error)
}

// AvatarImageClient genera el avatar y lo retorna como imagen codificada
// en base64. El llamador decodifica antes de persistir.
type AvatarImageClient interface {
	Generate(ctx context.Context, description PictureDescription) (string, error)
}

// CareNotesVars son las variables del prompt de notas de cuidado.
type CareNotesVars struct {
	Category  string
	BirthDate time.Time
	Gender    Gender
}

// CareNotesClient genera el set inicial de notas de cuidado.
type CareNotesClient interface {
	Generate(ctx context.Context, vars CareNotesVars) ([]CareNote, error)
}
