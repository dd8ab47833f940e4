package pets

// MaxPromptLength es el largo máximo (en caracteres) que acepta el
// generador de imágenes por prompt. Los prompts más largos se truncan,
// no se rechazan.
const MaxPromptLength = 512

// PictureDescription es el par de prompts que describe la foto original
// de la mascota, y que alimenta la generación del avatar.
type PictureDescription struct {
	PositivePrompt string
	NegativePrompt string
}

// Truncated retorna una copia con ambos prompts recortados a
// MaxPromptLength caracteres. Un prompt de exactamente 512 pasa intacto.
func (d PictureDescription) Truncated() PictureDescription {
	return PictureDescription{
		PositivePrompt: truncate(d.PositivePrompt, MaxPromptLength),
		NegativePrompt: truncate(d.NegativePrompt, MaxPromptLength),
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
