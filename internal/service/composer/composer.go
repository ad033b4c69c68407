// Package composer builds the final response text: a generic analysis
// preamble, an optional skill block, and a personality-driven tone
// prefix.
package composer

import "github.com/hawsadev/hawsa/internal/core"

const (
	introAnalytical = "أشوف إن أسلوبك تحليلي وموجه للمنطق 👨‍💻، فبحاول أكون مباشر ومنظم.\n"
	introCreative   = "أسلوبك فيه لمسة إبداع 🎨، فبحاول أفتح لك أفكار وتفرعات.\n"
	introPractical  = "واضح إنك تحب النتائج العملية 👊، فبنركز على خطوات واضحة وسريعة.\n"
)

// BaseResponse is the fixed analysis preamble embedding the message.
func BaseResponse(message string) string {
	return "🔍 تحليل أولي لرسالتك:\n" +
		"- المحتوى: " + message + "\n" +
		"- سيتم الآن دمج خبرة Hawsa AI مع أسلوبك الشخصي في البرمجة والتحليل.\n"
}

// Personalize prepends the tone sentence chosen solely by personality
// type, separated from the base text by a blank line.
func Personalize(base string, profile core.UserProfile) string {
	var intro string
	switch profile.Personality {
	case core.PersonalityAnalytical:
		intro = introAnalytical
	case core.PersonalityCreative:
		intro = introCreative
	default:
		intro = introPractical
	}
	return intro + "\n" + base
}
