// Package token provides the word tokenizers shared by the caseconv
// conversion functions.
//
// Two tokenizers are exposed. Fields splits only on runs of
// non-alphanumeric runes and is what camelCase conversion uses: it keeps
// mixed-case runs like "AWSFoo" and letter-digit runs like "nguyen2023"
// intact. Words additionally breaks camelCase and acronym boundaries
// that carry no explicit separator and backs the delimiter-producing
// conversions (kebab-case, dot.case, snake_case and friends).
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package token
