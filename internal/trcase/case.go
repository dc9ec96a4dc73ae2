// Package trcase provides Turkish case conversion and alphabet membership.
//
// Turkish uses dotted/dotless I variants:
//   - I (U+0049) lowercases to ı (U+0131, dotless small i)
//   - İ (U+0130, dotted capital I) lowercases to i (U+0069)
//
// All other runes use standard Unicode lowercase mapping.
//
// All functions are safe for concurrent use.
package trcase

import (
	"strings"
	"unicode"
)

// Lower returns the Turkish-aware lowercase form of r.
func Lower(r rune) rune {
	switch r {
	case 'I':
		return 'ı' // I -> ı
	case 'İ':
		return 'i' // İ -> i
	default:
		return unicode.ToLower(r)
	}
}

// ToLower returns s with Turkish-aware lowercasing applied to every rune.
func ToLower(s string) string {
	// Fast path: nothing to change.
	changed := false
	for _, r := range s {
		if Lower(r) != r {
			changed = true
			break
		}
	}
	if !changed {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(Lower(r))
	}
	return b.String()
}
