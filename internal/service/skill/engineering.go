package skill

import (
	"context"
	"strings"

	"github.com/hawsadev/hawsa/internal/service/engineering"
)

var engineeringTerms = []string{
	"ecu", "برمجة", "تشخيص", "dtc", "كود", "رمز", "خريطة", "boost", "توربو", "خرائط",
}

// Engineering claims diagnostic and ECU-related messages and renders
// the recommendation table into a formatted block.
type Engineering struct {
	recs *engineering.Service
}

func NewEngineering(recs *engineering.Service) *Engineering {
	return &Engineering{recs: recs}
}

func (e *Engineering) Name() string { return "engineering" }

func (e *Engineering) CanHandle(message string) bool {
	return containsAny(strings.ToLower(message), engineeringTerms)
}

func (e *Engineering) Handle(ctx context.Context, message string) (string, error) {
	lines := []string{
		"🛠 *معالجة هندسية متقدمة للطلب:*",
		"- الوصف: " + message,
		"",
	}

	recs := e.recs.Recommendations(message)
	if len(recs) > 0 {
		lines = append(lines, "*توصيات Hawsa AI:*")
		for _, r := range recs {
			lines = append(lines, "• "+r.Description)
		}
	} else {
		lines = append(lines, "لم يتم العثور على توصيات محددة، سيتم تحليل الطلب نظريًا.")
	}

	return strings.Join(lines, "\n"), nil
}

func containsAny(low string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(low, term) {
			return true
		}
	}
	return false
}
