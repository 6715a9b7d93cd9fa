package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var punctReplacer = strings.NewReplacer("?", "", "!", "", "！", "", "？", "", ".", "")

var orderNumberRe = regexp.MustCompile(`\d{8}-\d{7}`)

// Normalize lower-cases text and strips all whitespace and sentence
// punctuation. Both queries and candidate questions go through this before
// any comparison.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), "")
	return punctReplacer.Replace(s)
}

// NormalizeSentence is the lighter cleanup the rule engine works on:
// punctuation stripped but word boundaries kept.
func NormalizeSentence(s string) string {
	s = punctReplacer.Replace(s)
	s = strings.ReplaceAll(s, "없나요", "없어요")
	return strings.TrimSpace(s)
}

// Keywords returns the query tokens longer than one rune, lower-cased.
func Keywords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		if utf8.RuneCountInString(w) > 1 {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}

// OrderNumber extracts the first Cafe24 order number from the text, or "".
func OrderNumber(s string) string {
	return orderNumberRe.FindString(s)
}

func ContainsOrderNumber(s string) bool {
	return orderNumberRe.MatchString(s)
}

// IsLoggedIn reports whether the storefront passed a real member id. The
// widget sends the literal strings "null" and "undefined" for guests.
func IsLoggedIn(memberID string) bool {
	id := strings.TrimSpace(memberID)
	return id != "" && id != "null" && id != "undefined"
}
