package template

import (
	"regexp"
	"strings"
)

var wordSeparators = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler derives a display label from a field name. It splits on
// underscores, dashes, and camelCase boundaries, then title-cases each word:
// "document_number" -> "Document Number", "clientName" -> "Client Name".
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	var words []string
	for _, chunk := range wordSeparators.Split(name, -1) {
		if chunk == "" {
			continue
		}
		for _, word := range splitCamelCase(chunk) {
			words = append(words, titleWord(word))
		}
	}
	return strings.Join(words, " ")
}

func splitCamelCase(input string) []string {
	var words []string
	start := 0
	runes := []rune(input)
	for i := 1; i < len(runes); i++ {
		prev, curr := runes[i-1], runes[i]
		lowerToUpper := isLowerRune(prev) && isUpperRune(curr)
		letterDigit := isLetterRune(prev) != isLetterRune(curr) && isAlnumRune(prev) && isAlnumRune(curr)
		if lowerToUpper || letterDigit {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}

func isUpperRune(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLowerRune(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigitRune(r rune) bool  { return r >= '0' && r <= '9' }
func isLetterRune(r rune) bool { return isUpperRune(r) || isLowerRune(r) }
func isAlnumRune(r rune) bool  { return isLetterRune(r) || isDigitRune(r) }

func titleWord(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
