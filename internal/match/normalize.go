package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier to lowercase with separators and case
// boundaries removed, so "font_size", "fontSize" and "FontSize" compare equal.
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(splitIdent(s), ""))
}

// TokenizeIdent splits an identifier into lowercase tokens:
// "backgroundColor" -> [background color], "avatarURL" -> [avatar url].
func TokenizeIdent(s string) []string {
	tokens := splitIdent(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// HasLeadingToken reports whether the first token of s is tok and more
// tokens follow: "onClick" has leading "on", "online" does not.
func HasLeadingToken(s, tok string) bool {
	tokens := TokenizeIdent(s)

	return len(tokens) > 1 && tokens[0] == tok
}

// LastToken returns the final lowercase token of s, or "".
func LastToken(s string) string {
	tokens := TokenizeIdent(s)
	if len(tokens) == 0 {
		return ""
	}

	return tokens[len(tokens)-1]
}

// splitIdent cuts s at separators and case boundaries. A run of capitals
// stays one token unless its last capital starts a lowercase word:
//
//	"onItemTap"    -> on Item Tap
//	"HTMLTextView" -> HTML Text View
//	"cell_id"      -> cell id
func splitIdent(s string) []string {
	var tokens []string

	runes := []rune(s)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			tokens = append(tokens, string(runes[start:end]))
		}

		start = -1
	}

	for i, r := range runes {
		switch {
		case isSeparator(r):
			flush(i)
		case start < 0:
			start = i
		case caseBoundary(runes, i):
			flush(i)
			start = i
		}
	}

	flush(len(runes))

	return tokens
}

func caseBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
