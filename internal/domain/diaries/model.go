package diaries

import (
	"errors"
	"strings"
	"time"
)

// Weather define el clima registrado en el diario.
// @Enum sunny, cloudy, rainy, snowy
type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherSnowy  Weather = "snowy"
)

func ParseWeather(s string) (Weather, error) {
	switch Weather(strings.TrimSpace(s)) {
	case WeatherSunny, WeatherCloudy, WeatherRainy, WeatherSnowy:
		return Weather(strings.TrimSpace(s)), nil
	default:
		return "", errors.New("weather must be sunny, cloudy, rainy or snowy")
	}
}

// DiarySubtask es una descomposición de una tarea en pasos con horario.
type DiarySubtask struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	ScheduledTime string `json:"scheduled_time"` // HH:MM
	Completed     bool   `json:"completed"`
}

// DiaryTask es una acción de cuidado para la fecha del diario.
// Invariante: si tiene sub_tasks, NO lleva scheduled_time propio
// (el horario vive en cada subtarea).
type DiaryTask struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ScheduledTime *string        `json:"scheduled_time"` // nil cuando hay sub_tasks
	Completed     bool           `json:"completed"`
	Repeat        bool           `json:"repeat"`
	SubTasks      []DiarySubtask `json:"sub_tasks"`
}

func (t DiaryTask) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("task title is required")
	}
	if len(t.SubTasks) > 0 && t.ScheduledTime != nil {
		return errors.New("task with sub tasks must not carry a scheduled_time")
	}
	for _, st := range t.SubTasks {
		if strings.TrimSpace(st.Title) == "" {
			return errors.New("sub task title is required")
		}
	}
	return nil
}

// Diary es la entrada diaria de una mascota: una por (pet_id, fecha).
// advice y tasks son inmutables después de la creación; solo reacted,
// comment y el estado de completado de las tareas se tocan después.
type Diary struct {
	PetID string
	Date  time.Time // solo fecha

	PictureName string
	Reacted     bool
	Advice      string
	Comment     string
	Weather     Weather
	Temperature string
	Tasks       []DiaryTask

	CreatedAt time.Time
	UpdatedAt time.Time
}
