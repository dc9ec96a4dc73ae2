package classify

import (
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/ts-tokenizer/lexicon"
	"github.com/az-ai-labs/ts-tokenizer/pattern"
	"github.com/az-ai-labs/ts-tokenizer/punct"
)

// glyphSpan is one emoticon or smiley found inside a token.
type glyphSpan struct {
	start, end int
	emoticon   bool
}

// glyphs is the emoticon/smiley stage. It runs before punctuation routing
// so ASCII smileys are not torn apart as punctuation. It fires on two or
// more glyphs, or on one glyph next to non-punctuation content.
// A token made only of glyphs is tagged MultipleSmiley/MultipleEmoticon
// per glyph; glyphs mixed with text are tagged Smiley/Emoticon and the
// text between them is classified on its own.
func (c *Classifier) glyphs(s string, depth int) ([]piece, bool) {
	if c.pat.Match(pattern.ThreeOrMore, s) {
		return nil, false
	}

	spans := c.findGlyphs(s)
	if len(spans) == 0 {
		return nil, false
	}

	covered := 0
	for _, g := range spans {
		covered += g.end - g.start
	}
	pure := covered == len(s)

	if len(spans) == 1 {
		rest := s[:spans[0].start] + s[spans[0].end:]
		if pure || punct.IsAll(rest) {
			return nil, false
		}
	}

	var out []piece
	prev := 0
	for _, g := range spans {
		if g.start > prev {
			out = append(out, c.segment(s[prev:g.start], depth+1)...)
		}
		out = append(out, piece{s[g.start:g.end], glyphTag(g.emoticon, pure)})
		prev = g.end
	}
	if prev < len(s) {
		out = append(out, c.segment(s[prev:], depth+1)...)
	}
	return out, true
}

// findGlyphs scans s left to right for the longest glyph at each position.
// A glyph whose edge is a letter or digit only counts when it does not
// run into another letter or digit, so xD inside a word is not a smiley.
func (c *Classifier) findGlyphs(s string) []glyphSpan {
	var spans []glyphSpan
	for i := 0; i < len(s); {
		if g, ok := c.lex.GlyphAt(s[i:]); ok && glyphIsolated(s, i, g) {
			spans = append(spans, glyphSpan{i, i + len(g.Text), g.Emoticon})
			i += len(g.Text)
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return spans
}

func glyphIsolated(s string, at int, g lexicon.Glyph) bool {
	first, _ := utf8.DecodeRuneInString(g.Text)
	if isAlnum(first) && at > 0 {
		if before, _ := utf8.DecodeLastRuneInString(s[:at]); isAlnum(before) {
			return false
		}
	}
	last, _ := utf8.DecodeLastRuneInString(g.Text)
	end := at + len(g.Text)
	if isAlnum(last) && end < len(s) {
		if after, _ := utf8.DecodeRuneInString(s[end:]); isAlnum(after) {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func glyphTag(emoticon, pure bool) Category {
	switch {
	case emoticon && pure:
		return MultipleEmoticon
	case emoticon:
		return Emoticon
	case pure:
		return MultipleSmiley
	}
	return Smiley
}
