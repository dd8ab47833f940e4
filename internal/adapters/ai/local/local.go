// Package local implementa los clientes de IA con respuestas fijas.
// Sirve para correr el backend sin credenciales y para los tests del
// router.
package local

import (
	"context"
	"encoding/base64"
	"fmt"

	"pet-care-journal/internal/domain/chat"
	"pet-care-journal/internal/domain/diaries"
	"pet-care-journal/internal/domain/pets"
)

type PictureDescriber struct{}

func (PictureDescriber) Describe(ctx context.Context, imageKey string) (pets.PictureDescription, error) {
	return pets.PictureDescription{
		PositivePrompt: "a friendly cartoon pet avatar, soft colors, big eyes",
		NegativePrompt: "humans, text, watermarks, extra limbs",
	}, nil
}

type AvatarGenerator struct{}

// Un JPEG mínimo no hace falta: alcanza con bytes estables.
func (AvatarGenerator) Generate(ctx context.Context, d pets.PictureDescription) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte("local-avatar-bytes")), nil
}

type CareNotesGenerator struct{}

func (CareNotesGenerator) Generate(ctx context.Context, vars pets.CareNotesVars) ([]pets.CareNote, error) {
	return []pets.CareNote{
		{Title: "Alimentación", Description: "Dos comidas al día, porciones según peso.", Icon: pets.IconUtensils},
		{Title: "Ejercicio", Description: "Paseo diario de al menos 30 minutos.", Icon: pets.IconDog},
		{Title: "Premios", Description: "Con moderación, nunca chocolate.", Icon: pets.IconCookie},
	}, nil
}

type CareTasksGenerator struct{}

func (CareTasksGenerator) Generate(ctx context.Context, vars diaries.CareTasksVars, pictureKey string) ([]diaries.DiaryTask, error) {
	walk := "08:00"
	return []diaries.DiaryTask{
		{Title: "Paseo matutino", Description: "Vuelta por el barrio.", ScheduledTime: &walk, Repeat: true},
		{Title: "Comidas", Description: "Raciones del día.", SubTasks: []diaries.DiarySubtask{
			{Title: "Desayuno", ScheduledTime: "08:30"},
			{Title: "Cena", ScheduledTime: "19:00"},
		}},
	}, nil
}

type CareAdviceGenerator struct{}

func (CareAdviceGenerator) Generate(ctx context.Context, vars diaries.CareAdviceVars, pictureKey string) (string, error) {
	return fmt.Sprintf("Hoy está %s con %s grados: ajustá el paseo y dejá agua fresca.", vars.Weather, vars.Temperature), nil
}

type ChatAssistant struct{}

func (ChatAssistant) Converse(ctx context.Context, petID string, history []chat.Message) (string, error) {
	if len(history) == 0 {
		return "¡Hola! Soy el asistente de tu mascota.", nil
	}
	last := history[len(history)-1]
	return fmt.Sprintf("Sobre %q: consultá las notas de cuidado de tu mascota.", last.Content), nil
}
