package skill

import (
	"context"
	"strings"
)

var creativeTerms = []string{
	"فكرة", "تصميم", "منصة", "واجهة", "system", "platform", "ui", "ux",
}

// Creative claims design and platform-idea messages and answers with a
// fixed structural breakdown of the request.
type Creative struct{}

func NewCreative() *Creative {
	return &Creative{}
}

func (c *Creative) Name() string { return "creative" }

func (c *Creative) CanHandle(message string) bool {
	return containsAny(strings.ToLower(message), creativeTerms)
}

func (c *Creative) Handle(ctx context.Context, message string) (string, error) {
	return "🎨 *تحليل وتصميم إبداعي للطلب:*\n" +
		"النص المدخل: " + message + "\n\n" +
		"- تقسيم الفكرة لوحدات (Modules)\n" +
		"- اقتراح بنية System Architecture\n" +
		"- تحديد نقاط التكامل مع Hawsa AI Core\n", nil
}
