package diaries

import (
	"context"
	"time"
)

// CareTasksVars son las variables del prompt de tareas de cuidado.
type CareTasksVars struct {
	Category  string
	BirthDate time.Time
}

// CareTasksClient genera la lista ordenada de tareas del día.
// pictureKey apunta a la foto del día ({pet_id}/{picture_name}); el
// cliente decide cómo usarla.
type CareTasksClient interface {
	Generate(ctx context.Context, vars CareTasksVars, pictureKey string) ([]DiaryTask, error)
}

// CareAdviceVars son las variables del prompt de consejo de cuidado.
type CareAdviceVars struct {
	BirthDate   time.Time
	Category    string
	Date        time.Time
	Weather     Weather
	Temperature string
}

// CareAdviceClient genera el consejo del día en texto libre.
// El cliente busca y codifica la imagen por su cuenta; este pipeline
// no la duplica.
type CareAdviceClient interface {
	Generate(ctx context.Context, vars CareAdviceVars, pictureKey string) (string, error)
}
