package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pet-care-journal/internal/ports/images"

	"go.uber.org/zap"
	genai "google.golang.org/genai"
)

var ErrInvalidJSON = errors.New("gemini: invalid JSON from model")

type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

// Client es un wrapper fino sobre el cliente oficial de genai.
// Solo se ocupa de la llamada; reintentos y timeouts los maneja
// quien lo consume.
type Client struct {
	cli        *genai.Client
	textModel  string
	imageModel string
	store      images.Store
	log        *zap.Logger
}

func NewClient(ctx context.Context, cfg Config, store images.Store, log *zap.Logger) (*Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		cli:        cli,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		store:      store,
		log:        log,
	}, nil
}

// generateJSON manda el prompt (más partes extra, típicamente una
// imagen inline) pidiendo application/json y decodifica en out.
func (c *Client) generateJSON(ctx context.Context, prompt string, extra []*genai.Part, out any) error {
	parts := append([]*genai.Part{{Text: prompt}}, extra...)

	resp, err := c.cli.Models.GenerateContent(ctx, c.textModel,
		[]*genai.Content{{Parts: parts}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ErrInvalidJSON
	}

	txt := resp.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(txt), out); err != nil {
		c.log.Warn("model returned malformed json", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

// generateText manda contenidos arbitrarios y devuelve el texto plano
// del primer candidato.
func (c *Client) generateText(ctx context.Context, contents []*genai.Content) (string, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.textModel, contents, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// imagePart baja la imagen del object store y la arma como parte inline.
func (c *Client) imagePart(ctx context.Context, key string) (*genai.Part, error) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", key, err)
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: data}}, nil
}
