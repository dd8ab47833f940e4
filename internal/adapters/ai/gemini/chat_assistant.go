package gemini

import (
	"context"
	"fmt"
	"strings"

	"pet-care-journal/internal/domain/chat"

	genai "google.golang.org/genai"
)

// ChatAssistant implementa chat.Assistant armando el historial como
// contenidos alternados user/model.
type ChatAssistant struct {
	c *Client
}

func NewChatAssistant(c *Client) *ChatAssistant {
	return &ChatAssistant{c: c}
}

func (a *ChatAssistant) Converse(ctx context.Context, petID string, history []chat.Message) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: fmt.Sprintf(chatSystemPrompt, petID)}},
	})

	for _, m := range history {
		role := genai.RoleUser
		if m.Role == chat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	text, err := a.c.generateText(ctx, contents)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
