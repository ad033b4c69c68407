// Package media produces the media stub attached to each result. It is
// a placeholder for a future generation backend.
package media

import (
	"strings"

	"github.com/hawsadev/hawsa/internal/core"
)

const (
	TypeDiagram = "diagram_description"
	TypeNone    = "none"

	diagramContent = "مخطط نصي يشرح العلاقة بين وحدات النظام المقترح."
)

var diagramTerms = []string{"رسم", "diagram", "مخطط"}

func Generate(message string) core.Media {
	low := strings.ToLower(message)
	for _, term := range diagramTerms {
		if strings.Contains(low, term) {
			return core.Media{Type: TypeDiagram, Content: diagramContent}
		}
	}
	return core.Media{Type: TypeNone, Content: ""}
}
