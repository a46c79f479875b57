// Package caseconv converts identifier-style strings between casing
// conventions: camelCase, PascalCase, snake_case, SCREAMING_SNAKE_CASE,
// kebab-case, dot.case, and Title Case.
//
// # Overview
//
// Every conversion is a pure function over a short string. The work is
// in the tokenization: splitting mixed camelCase, snake_case,
// space-separated, and acronym-laden input into words. Two tokenizers
// are used:
//
//   - CamelCase splits only on explicit separators (runs of
//     non-alphanumeric characters), so "AWSFoo" stays a single word.
//   - The delimiter-producing conversions (KebabCase, DotCase,
//     SnakeCase, and the rest) additionally break implicit camelCase and
//     acronym boundaries, so "andyNguyenAWS" becomes three words.
//
// Slugify is a deliberately simpler second kebab-case routine: it
// lowercases and hyphenates without ever splitting camelCase, and it
// rejects absent input. It is kept separate from KebabCase because the
// two disagree on camelCase-only input.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/caseconv
//
// # Quick Start
//
// Convert a label to camelCase:
//
//	s, err := caseconv.CamelCase("API_response_data")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(s) // apiResponseData
//
// Or dispatch by style name:
//
//	style, err := caseconv.ParseStyle("kebab")
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, err = caseconv.Convert("API_response_data", style)
//
// # Input Contract
//
// Conversions take any value. Strings and non-nil *string arguments are
// converted. An untyped nil or a typed nil *string is an absent-value
// marker: the delimiter-aware conversions return "" for it, while
// Slugify rejects it. Every other argument type produces an
// *InvalidInputError, which callers can detect with
// errors.Is(err, ErrInvalidInput).
//
// # Concurrency
//
// All functions are stateless and safe for concurrent use.
package caseconv
