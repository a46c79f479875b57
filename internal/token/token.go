package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fields splits s into words on maximal runs of non-alphanumeric runes.
// Letters and digits belong to the same word, so "nguyen2023" and
// "AWSFoo" each stay a single word. Empty words from leading, trailing,
// or consecutive separators are dropped.
func Fields(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

// Words splits s into words, breaking on separator runs like Fields and
// additionally at two implicit boundaries:
//
//  1. between a lowercase-or-digit rune and a following uppercase rune
//     ("nguyenAWS" -> "nguyen", "AWS");
//  2. between an uppercase run and a following uppercase rune that
//     starts a capitalized word, i.e. one followed by a lowercase rune
//     ("AWSFoo" -> "AWS", "Foo").
//
// Digits never break an uppercase run: "AWS2" and "AWSF1" each stay one
// word.
func Words(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 4)
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return words
}

// IsAcronym reports whether word equals its own uppercase form. This
// holds for true acronyms like "AWS" but also trivially for single
// uppercase letters and all-digit words, which is exactly the behavior
// the camelCase joiner wants: such words pass through verbatim.
func IsAcronym(word string) bool {
	return word == strings.ToUpper(word)
}

// Capitalize uppercases the first rune of word and lowercases the rest.
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
