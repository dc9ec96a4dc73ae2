// Package charfix canonicalizes raw Turkish text before classification.
//
// Fix applies a fixed pipeline:
//
//  1. Unicode NFC composition.
//  2. Mojibake repair (double-encoded UTF-8, Windows-1254 text read as
//     Latin-1, OCR artifacts, Cyrillic homoglyphs, literal \uXXXX escapes).
//  3. Removal of control, zero-width, and directional characters.
//  4. HTML entity decoding (named Turkish-relevant entities, then decimal
//     and hexadecimal numeric references).
//  5. Quote canonicalization: curly, guillemet, and backtick variants
//     collapse to plain " or '.
//
// Each substitution step is a single pass over the string with one compiled
// multi-pattern matcher. The pipeline is repeated until the output stops
// changing (at most maxPasses times), so Fix(Fix(s)) == Fix(s) for all
// practical input.
//
// Fix never fails: a step that errors or panics is skipped and the
// remaining steps still run.
//
// All functions are safe for concurrent use by multiple goroutines.
package charfix

import (
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/az-ai-labs/ts-tokenizer/internal/trcase"
)

// maxPasses caps the fixed-point iteration of the pipeline.
const maxPasses = 8

// step is one stage of the pipeline.
type step struct {
	name string
	fn   func(string) string
}

// pipeline lists the stages in their fixed order.
var pipeline = [...]step{
	{"nfc", norm.NFC.String},
	{"mojibake", mojibake.Replace},
	{"invisible", stripInvisible},
	{"entities", decodeEntities},
	{"quotes", quotes.Replace},
}

// Fix returns the canonical form of s.
func Fix(s string) string {
	if s == "" || isPlain(s) {
		return s
	}
	for range maxPasses {
		next := fixOnce(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

// Lower returns s lowercased with Turkish I/İ rules.
func Lower(s string) string {
	return trcase.ToLower(s)
}

// fixOnce runs every pipeline stage once.
func fixOnce(s string) string {
	s = strings.ToValidUTF8(s, "")
	for _, st := range pipeline {
		s = apply(st, s)
	}
	return s
}

// apply runs a single stage, returning the input unchanged if the stage panics.
func apply(st step, s string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Str("step", st.name).Interface("panic", r).Msg("charfix step skipped")
			out = s
		}
	}()
	return st.fn(s)
}

// isPlain reports whether s is printable ASCII that no stage can change.
func isPlain(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7e {
			return false
		}
		switch c {
		case '&', '\'', '`', '\\':
			return false
		}
	}
	return true
}
