package caseconv

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/caseconv/internal/token"
)

// Style identifies a built-in casing convention for Convert.
type Style string

const (
	// StyleCamel produces camelCase ("andyNguyenAWS").
	StyleCamel Style = "camel"

	// StylePascal produces PascalCase ("AndyNguyenAWS").
	StylePascal Style = "pascal"

	// StyleSnake produces snake_case ("andy_nguyen_aws").
	StyleSnake Style = "snake"

	// StyleScreamingSnake produces SCREAMING_SNAKE_CASE ("ANDY_NGUYEN_AWS").
	StyleScreamingSnake Style = "screaming-snake"

	// StyleKebab produces kebab-case ("andy-nguyen-aws").
	StyleKebab Style = "kebab"

	// StyleDot produces dot.case ("andy.nguyen.aws").
	StyleDot Style = "dot"

	// StyleTitle produces Title Case ("Andy Nguyen AWS").
	StyleTitle Style = "title"
)

// String returns the style name, e.g. "screaming-snake".
func (s Style) String() string {
	return string(s)
}

// ValidStyles returns the names of all built-in styles.
func ValidStyles() []string {
	return []string{
		string(StyleCamel),
		string(StylePascal),
		string(StyleSnake),
		string(StyleScreamingSnake),
		string(StyleKebab),
		string(StyleDot),
		string(StyleTitle),
	}
}

// IsValidStyle reports whether name is a valid style name.
func IsValidStyle(name string) bool {
	switch Style(name) {
	case StyleCamel, StylePascal, StyleSnake, StyleScreamingSnake, StyleKebab, StyleDot, StyleTitle:
		return true
	}
	return false
}

// ParseStyle converts a style name to a Style. An unknown name returns
// an *InvalidInputError carrying the offending value.
func ParseStyle(name string) (Style, error) {
	if !IsValidStyle(name) {
		return "", &InvalidInputError{
			Value:   name,
			Message: fmt.Sprintf("unknown case style %q (valid styles: %v)", name, ValidStyles()),
		}
	}
	return Style(name), nil
}

// Convert applies the named style to input. It dispatches to the same
// functions the per-style API exposes, so Convert(x, StyleKebab) and
// KebabCase(x) are interchangeable.
func Convert(input any, style Style) (string, error) {
	switch style {
	case StyleCamel:
		return CamelCase(input)
	case StylePascal:
		return PascalCase(input)
	case StyleSnake:
		return SnakeCase(input)
	case StyleScreamingSnake:
		return ScreamingSnakeCase(input)
	case StyleKebab:
		return KebabCase(input)
	case StyleDot:
		return DotCase(input)
	case StyleTitle:
		return TitleCase(input)
	default:
		return "", &InvalidInputError{
			Value:   string(style),
			Message: fmt.Sprintf("unknown case style %q (valid styles: %v)", style, ValidStyles()),
		}
	}
}

// PascalCase converts input to PascalCase using boundary-aware
// tokenization. Every word is capitalized; acronyms pass through
// verbatim, so "API_response_data" becomes "APIResponseData".
//
// Absent input (untyped nil, or a nil *string) yields "" with no error.
// Any other non-string argument returns an *InvalidInputError.
func PascalCase(input any) (string, error) {
	s, absent, err := coerce(input)
	if err != nil || absent {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, w := range token.Words(s) {
		if token.IsAcronym(w) {
			b.WriteString(w)
		} else {
			b.WriteString(token.Capitalize(w))
		}
	}
	return b.String(), nil
}

// SnakeCase converts input to snake_case using boundary-aware
// tokenization, lowercasing every word.
//
// Example: "Andy Nguyen AWS" -> "andy_nguyen_aws"
func SnakeCase(input any) (string, error) {
	return Delimit(input, '_')
}

// ScreamingSnakeCase converts input to SCREAMING_SNAKE_CASE.
//
// Example: "API_response_data" -> "API_RESPONSE_DATA"
func ScreamingSnakeCase(input any) (string, error) {
	s, err := Delimit(input, '_')
	if err != nil {
		return "", err
	}
	return strings.ToUpper(s), nil
}

// TitleCase converts input to space-separated Title Case. Acronyms pass
// through verbatim; other words are title-cased per English casing rules.
//
// Example: "API_response_data" -> "API Response Data"
func TitleCase(input any) (string, error) {
	s, absent, err := coerce(input)
	if err != nil || absent {
		return "", err
	}

	// strings.Title is deprecated; use golang.org/x/text/cases instead.
	titleCaser := cases.Title(language.English)
	words := token.Words(s)
	for i, w := range words {
		if !token.IsAcronym(w) {
			words[i] = titleCaser.String(strings.ToLower(w))
		}
	}
	return strings.Join(words, " "), nil
}

// Delimit joins the boundary-aware words of input with sep, lowercasing
// every word. DotCase, KebabCase, and SnakeCase are Delimit with '.',
// '-', and '_'. Output is stable: re-delimiting an already delimited
// string with the same separator returns it unchanged.
func Delimit(input any, sep rune) (string, error) {
	s, absent, err := coerce(input)
	if err != nil || absent {
		return "", err
	}

	words := token.Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, string(sep)), nil
}
