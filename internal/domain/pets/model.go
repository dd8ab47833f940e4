package pets

import (
	"errors"
	"strings"
	"time"
)

// Gender define el sexo de la mascota.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(strings.TrimSpace(s)) {
	case GenderMale, GenderFemale:
		return Gender(strings.TrimSpace(s)), nil
	default:
		return "", errors.New("gender must be male or female")
	}
}

// CareNoteIcon es el set fijo de íconos que la IA puede asignar a una nota.
// @Enum Dog, Bone, Smile, Frown, Utensils, Cookie
type CareNoteIcon string

const (
	IconDog      CareNoteIcon = "Dog"
	IconBone     CareNoteIcon = "Bone"
	IconSmile    CareNoteIcon = "Smile"
	IconFrown    CareNoteIcon = "Frown"
	IconUtensils CareNoteIcon = "Utensils"
	IconCookie   CareNoteIcon = "Cookie"
)

// CareNoteIcons lista los íconos válidos, en el orden que se le presenta
// al generador.
var CareNoteIcons = []CareNoteIcon{
	IconDog, IconBone, IconSmile, IconFrown, IconUtensils, IconCookie,
}

func (i CareNoteIcon) Valid() bool {
	for _, known := range CareNoteIcons {
		if i == known {
			return true
		}
	}
	return false
}

// CareNote es un consejo corto de cuidado generado en bloque al crear la
// mascota. Un ícono fuera del enum es una violación de contrato de datos:
// se rechaza, nunca se acepta en silencio.
type CareNote struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Icon        CareNoteIcon `json:"icon"`
}

func (n CareNote) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("care note title is required")
	}
	if strings.TrimSpace(n.Description) == "" {
		return errors.New("care note description is required")
	}
	if !n.Icon.Valid() {
		return errors.New("care note icon " + string(n.Icon) + " is not in the icon set")
	}
	return nil
}

// Pet es el perfil de una mascota.
// care_notes se setea una sola vez al crear (por el pipeline) y solo puede
// reemplazarse completo vía update, nunca parchearse parcialmente.
type Pet struct {
	PetID    string
	Name     string
	Category string

	BirthDate time.Time // solo fecha
	Gender    Gender

	CareNotes []CareNote
	ImageName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
