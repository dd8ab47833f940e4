package gemini

import (
	"context"
	"fmt"

	"pet-care-journal/internal/domain/diaries"

	genai "google.golang.org/genai"
)

// CareTasksGenerator implementa diaries.CareTasksClient.
type CareTasksGenerator struct {
	c *Client
}

func NewCareTasksGenerator(c *Client) *CareTasksGenerator {
	return &CareTasksGenerator{c: c}
}

func (g *CareTasksGenerator) Generate(ctx context.Context, vars diaries.CareTasksVars, pictureKey string) ([]diaries.DiaryTask, error) {
	img, err := g.c.imagePart(ctx, pictureKey)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(careTasksPrompt,
		vars.Category,
		vars.BirthDate.Format("2006-01-02"),
	)

	var out []struct {
		Title         string  `json:"title"`
		Description   string  `json:"description"`
		ScheduledTime *string `json:"scheduled_time"`
		Repeat        bool    `json:"repeat"`
		SubTasks      []struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			ScheduledTime string `json:"scheduled_time"`
		} `json:"sub_tasks"`
	}
	if err := g.c.generateJSON(ctx, prompt, []*genai.Part{img}, &out); err != nil {
		return nil, err
	}

	tasks := make([]diaries.DiaryTask, 0, len(out))
	for _, t := range out {
		task := diaries.DiaryTask{
			Title:         t.Title,
			Description:   t.Description,
			ScheduledTime: t.ScheduledTime,
			Completed:     false,
			Repeat:        t.Repeat,
		}
		for _, st := range t.SubTasks {
			task.SubTasks = append(task.SubTasks, diaries.DiarySubtask{
				Title:         st.Title,
				Description:   st.Description,
				ScheduledTime: st.ScheduledTime,
				Completed:     false,
			})
		}
		if err := task.Validate(); err != nil {
			return nil, fmt.Errorf("model care task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
