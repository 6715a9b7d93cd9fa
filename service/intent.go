package service

import (
	"strings"

	"github.com/tieubaoca/answer-engine/utils"
)

// IntentCategory is one coarse question category with its trigger keywords.
// The set is static configuration, checked in declaration order.
type IntentCategory struct {
	Name     string
	Keywords []string
}

var defaultIntents = []IntentCategory{
	{Name: "size", Keywords: []string{"사이즈", "크기", "규격", "치수"}},
	{Name: "covering", Keywords: []string{"커버링", "씌우", "교체방법"}},
	{Name: "laundry", Keywords: []string{"세탁", "빨래", "건조"}},
	{Name: "delivery", Keywords: []string{"배송", "배달", "수령"}},
	{Name: "refund", Keywords: []string{"환불", "반품", "교환"}},
	// "as" alone would match inside English words, so the repair triggers
	// are the unambiguous spellings only.
	{Name: "service", Keywords: []string{"에이에스", "a/s", "수리", "고장", "불량"}},
}

type IntentClassifier struct {
	categories []IntentCategory
}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{categories: defaultIntents}
}

// Classify returns the first category whose keyword appears in the
// normalized text, or "". A miss is fine: the result is only a scoring
// hint, never a filter.
func (c *IntentClassifier) Classify(text string) string {
	clean := utils.Normalize(text)
	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(clean, keyword) {
				return category.Name
			}
		}
	}
	return ""
}
