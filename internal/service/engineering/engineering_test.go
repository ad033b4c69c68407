package engineering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendations(t *testing.T) {
	svc := New()

	tests := []struct {
		name        string
		description string
		codes       []string
	}{
		{name: "boost keyword", description: "need more BOOST on the dyno", codes: []string{"BOOST_MAP_TUNE"}},
		{name: "arabic turbo keyword", description: "مشكلة في التوربو", codes: []string{"BOOST_MAP_TUNE"}},
		{name: "dtc keyword", description: "reading a DTC from the scanner", codes: []string{"DTC_ANALYSIS"}},
		{name: "arabic code keyword", description: "ظهر رمز عطل جديد", codes: []string{"DTC_ANALYSIS"}},
		{name: "both rules in table order", description: "boost issue and a dtc code", codes: []string{"BOOST_MAP_TUNE", "DTC_ANALYSIS"}},
		{name: "no match", description: "عام سؤال", codes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := svc.Recommendations(tt.description)

			var codes []string
			for _, r := range recs {
				codes = append(codes, r.Code)
				assert.NotEmpty(t, r.Description)
			}
			assert.Equal(t, tt.codes, codes)
		})
	}
}
