package intelligence

import (
	"strings"
	"unicode"
)

// Tokenize splits text on whitespace and emits every punctuation or symbol
// rune as a token of its own, so "¿cómo" yields "¿", "cómo" and "pase?"
// yields "pase", "?". Letters, digits and marks stay together ("3er",
// "49ers", "1º").
func Tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
