package caseconv

import (
	"strings"
	"testing"
	"unicode"
)

// FuzzConversions is a Go Fuzz Test targeting every conversion function.
// It mutates the input string to try and find inputs that cause crashes
// (panics) or violate structural output invariants.
func FuzzConversions(f *testing.F) {
	// Seed corpus: known shapes plus edge cases the tokenizers care about.
	seedCorpus := []string{
		"",
		"andy",
		"Andy Nguyen AWS",
		"andy_nguyen+AWS",
		"API_response_data",
		"andyNguyenAWS",
		"XMLHttpRequest",
		"nguyen2023Model",
		"AWS2",
		"a -- b ++ c",
		"---",
		"über_user",
		"日本語_test",
		"\x00\x01\x02",
		strings.Repeat("aA", 100),
	}
	for _, seed := range seedCorpus {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		for _, name := range ValidStyles() {
			style, err := ParseStyle(name)
			if err != nil {
				t.Fatalf("ParseStyle(%q): %v", name, err)
			}
			out, err := Convert(s, style)
			if err != nil {
				t.Fatalf("Convert(%q, %s): %v", s, style, err)
			}

			// Delimiter-producing styles must never emit the raw
			// separators they split on.
			switch style {
			case StyleKebab:
				checkNoEdgeSep(t, out, '-')
			case StyleDot:
				checkNoEdgeSep(t, out, '.')
			case StyleSnake, StyleScreamingSnake:
				checkNoEdgeSep(t, out, '_')
			}
		}

		if _, err := Slugify(s); err != nil {
			t.Fatalf("Slugify(%q): %v", s, err)
		}

		// Idempotence of the delimiter-aware kebab and dot conversions.
		// Restricted to ASCII output: a handful of Unicode code points
		// lowercase to multi-rune sequences containing combining marks,
		// which re-tokenize differently.
		kebab, err := KebabCase(s)
		if err != nil {
			t.Fatalf("KebabCase(%q): %v", s, err)
		}
		if isASCII(kebab) {
			again, err := KebabCase(kebab)
			if err != nil {
				t.Fatalf("KebabCase(%q): %v", kebab, err)
			}
			if again != kebab {
				t.Errorf("KebabCase not idempotent: %q -> %q -> %q", s, kebab, again)
			}
		}
		dot, err := DotCase(s)
		if err != nil {
			t.Fatalf("DotCase(%q): %v", s, err)
		}
		if isASCII(dot) {
			again, err := DotCase(dot)
			if err != nil {
				t.Fatalf("DotCase(%q): %v", dot, err)
			}
			if again != dot {
				t.Errorf("DotCase not idempotent: %q -> %q -> %q", s, dot, again)
			}
		}
	})
}

// checkNoEdgeSep verifies out neither starts nor ends with sep and has
// no consecutive separator runs.
func checkNoEdgeSep(t *testing.T, out string, sep rune) {
	t.Helper()
	if out == "" {
		return
	}
	run := string([]rune{sep, sep})
	if strings.HasPrefix(out, string(sep)) || strings.HasSuffix(out, string(sep)) || strings.Contains(out, run) {
		t.Errorf("output %q has a leading, trailing, or doubled %q separator", out, sep)
	}
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
