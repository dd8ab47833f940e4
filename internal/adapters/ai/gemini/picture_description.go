package gemini

import (
	"context"

	"pet-care-journal/internal/domain/pets"

	genai "google.golang.org/genai"
)

// PictureDescriber implementa pets.PictureDescriptionClient.
type PictureDescriber struct {
	c *Client
}

func NewPictureDescriber(c *Client) *PictureDescriber {
	return &PictureDescriber{c: c}
}

func (d *PictureDescriber) Describe(ctx context.Context, imageKey string) (pets.PictureDescription, error) {
	img, err := d.c.imagePart(ctx, imageKey)
	if err != nil {
		return pets.PictureDescription{}, err
	}

	var out struct {
		PositivePrompt string `json:"positive_prompt"`
		NegativePrompt string `json:"negative_prompt"`
	}
	if err := d.c.generateJSON(ctx, pictureDescriptionPrompt, []*genai.Part{img}, &out); err != nil {
		return pets.PictureDescription{}, err
	}

	return pets.PictureDescription{
		PositivePrompt: out.PositivePrompt,
		NegativePrompt: out.NegativePrompt,
	}, nil
}
