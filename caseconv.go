package caseconv

import (
	"strings"

	"github.com/erraggy/caseconv/internal/token"
)

// CamelCase converts input to camelCase.
//
// Words are split on runs of non-alphanumeric characters only, so
// mixed-case runs like "AWSFoo" and letter-digit runs like "nguyen2023"
// are kept intact. The first word is lowercased entirely. Later words
// are capitalized, except acronyms (words equal to their own uppercase
// form), which pass through verbatim.
//
// Example: "Andy Nguyen AWS" -> "andyNguyenAWS"
// Example: "API_response_data" -> "apiResponseData"
//
// Absent input (untyped nil, or a nil *string) yields "" with no error.
// Any other non-string argument returns an *InvalidInputError.
func CamelCase(input any) (string, error) {
	s, absent, err := coerce(input)
	if err != nil || absent {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, w := range token.Fields(s) {
		switch {
		case i == 0:
			b.WriteString(strings.ToLower(w))
		case token.IsAcronym(w):
			b.WriteString(w)
		default:
			b.WriteString(token.Capitalize(w))
		}
	}
	return b.String(), nil
}

// DotCase converts input to dot.case.
//
// Unlike CamelCase, tokenization here also breaks implicit camelCase and
// acronym boundaries, so "andyNguyenAWS" becomes "andy.nguyen.aws".
// Every word is lowercased; acronyms get no special treatment. Applying
// DotCase to its own output returns the same string.
//
// Example: "Andy Nguyen AWS" -> "andy.nguyen.aws"
// Example: "API_response_data" -> "api.response.data"
//
// Absent input (untyped nil, or a nil *string) yields "" with no error.
// Any other non-string argument returns an *InvalidInputError.
func DotCase(input any) (string, error) {
	return Delimit(input, '.')
}

// KebabCase converts input to kebab-case using the same boundary-aware
// tokenization as DotCase. Applying KebabCase to its own output returns
// the same string.
//
// Example: "Andy Nguyen AWS" -> "andy-nguyen-aws"
// Example: "API_response_data" -> "api-response-data"
//
// Absent input (untyped nil, or a nil *string) yields "" with no error.
// Any other non-string argument returns an *InvalidInputError.
// For a simpler variant that never splits camelCase, see Slugify.
func KebabCase(input any) (string, error) {
	return Delimit(input, '-')
}

// Slugify converts input to a lowercase hyphenated slug: the string is
// lowercased, every run of non-alphanumeric characters collapses to a
// single hyphen, and leading or trailing separators are dropped.
//
// Slugify deliberately diverges from KebabCase in two ways: it never
// splits camelCase boundaries ("andyNguyenAWS" -> "andynguyenaws"), and
// it requires text input, so absent markers return an *InvalidInputError
// instead of "".
//
// Example: "andy_nguyen+AWS" -> "andy-nguyen-aws"
func Slugify(input any) (string, error) {
	s, absent, err := coerce(input)
	if err != nil {
		return "", err
	}
	if absent {
		return "", &InvalidInputError{Value: input, Message: "absent input is not allowed"}
	}
	return strings.Join(token.Fields(strings.ToLower(strings.TrimSpace(s))), "-"), nil
}

// coerce normalizes a conversion argument. It returns the text to
// convert, or absent=true for the two absent-value markers: an untyped
// nil ("no value provided") and a typed nil *string ("value explicitly
// omitted"). A non-nil *string is dereferenced. Everything else is an
// *InvalidInputError.
func coerce(input any) (s string, absent bool, err error) {
	switch v := input.(type) {
	case nil:
		return "", true, nil
	case string:
		return v, false, nil
	case *string:
		if v == nil {
			return "", true, nil
		}
		return *v, false, nil
	default:
		return "", false, &InvalidInputError{Value: input}
	}
}
