package gemini

import (
	"context"
	"fmt"
	"strings"

	"pet-care-journal/internal/domain/diaries"

	genai "google.golang.org/genai"
)

// CareAdviceGenerator implementa diaries.CareAdviceClient.
type CareAdviceGenerator struct {
	c *Client
}

func NewCareAdviceGenerator(c *Client) *CareAdviceGenerator {
	return &CareAdviceGenerator{c: c}
}

func (g *CareAdviceGenerator) Generate(ctx context.Context, vars diaries.CareAdviceVars, pictureKey string) (string, error) {
	img, err := g.c.imagePart(ctx, pictureKey)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(careAdvicePrompt,
		vars.Category,
		vars.BirthDate.Format("2006-01-02"),
		vars.Date.Format("2006-01-02"),
		vars.Weather,
		vars.Temperature,
	)

	text, err := g.c.generateText(ctx, []*genai.Content{
		{Parts: []*genai.Part{{Text: prompt}, img}},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
