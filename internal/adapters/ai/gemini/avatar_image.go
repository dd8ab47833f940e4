package gemini

import (
	"context"
	"encoding/base64"
	"errors"

	"pet-care-journal/internal/domain/pets"

	genai "google.golang.org/genai"
)

// AvatarGenerator implementa pets.AvatarImageClient con el modelo de
// imágenes. Devuelve la imagen como base64, igual que el resto de los
// generadores de avatar.
type AvatarGenerator struct {
	c *Client
}

func NewAvatarGenerator(c *Client) *AvatarGenerator {
	return &AvatarGenerator{c: c}
}

func (g *AvatarGenerator) Generate(ctx context.Context, d pets.PictureDescription) (string, error) {
	resp, err := g.c.cli.Models.GenerateImages(ctx, g.c.imageModel, d.PositivePrompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		NegativePrompt: d.NegativePrompt,
	})
	if err != nil {
		return "", err
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return "", errors.New("gemini: no image generated")
	}

	return base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes), nil
}
