// Package engineering holds the ECU diagnostic knowledge base: a small
// rule table mapping description vocabulary to literal recommendations.
package engineering

import (
	"strings"

	"github.com/hawsadev/hawsa/internal/core"
)

type rule struct {
	terms          []string
	recommendation core.Recommendation
}

type Service struct {
	rules []rule
}

func New() *Service {
	return &Service{
		rules: []rule{
			{
				terms: []string{"boost", "توربو"},
				recommendation: core.Recommendation{
					Code:        "BOOST_MAP_TUNE",
					Description: "ضبط خرائط البوست مع مراعاة حدود الأمان للـ AFR والحرارة.",
				},
			},
			{
				terms: []string{"dtc", "رمز"},
				recommendation: core.Recommendation{
					Code:        "DTC_ANALYSIS",
					Description: "تحليل رموز الأعطال وربطها بحالات فعلية من سجلات سابقة.",
				},
			},
		},
	}
}

// Recommendations returns every rule whose vocabulary appears in the
// description, in table order. Matching is case-insensitive substring.
func (s *Service) Recommendations(description string) []core.Recommendation {
	low := strings.ToLower(description)

	var recs []core.Recommendation
	for _, r := range s.rules {
		for _, term := range r.terms {
			if strings.Contains(low, term) {
				recs = append(recs, r.recommendation)
				break
			}
		}
	}
	return recs
}
