package gemini

import (
	"context"
	"fmt"
	"strings"

	"pet-care-journal/internal/domain/pets"
)

// CareNotesGenerator implementa pets.CareNotesClient.
type CareNotesGenerator struct {
	c *Client
}

func NewCareNotesGenerator(c *Client) *CareNotesGenerator {
	return &CareNotesGenerator{c: c}
}

func (g *CareNotesGenerator) Generate(ctx context.Context, vars pets.CareNotesVars) ([]pets.CareNote, error) {
	icons := make([]string, 0, len(pets.CareNoteIcons))
	for _, ic := range pets.CareNoteIcons {
		icons = append(icons, string(ic))
	}

	prompt := fmt.Sprintf(careNotesPrompt,
		vars.Category,
		vars.BirthDate.Format("2006-01-02"),
		vars.Gender,
		strings.Join(icons, ", "),
	)

	var out []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}
	if err := g.c.generateJSON(ctx, prompt, nil, &out); err != nil {
		return nil, err
	}

	notes := make([]pets.CareNote, 0, len(out))
	for _, n := range out {
		note := pets.CareNote{
			Title:       n.Title,
			Description: n.Description,
			Icon:        pets.CareNoteIcon(n.Icon),
		}
		// El modelo puede inventar íconos; contrato roto = error,
		// nunca se acepta en silencio.
		if err := note.Validate(); err != nil {
			return nil, fmt.Errorf("model care note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, nil
}
