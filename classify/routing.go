package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/ts-tokenizer/pattern"
	"github.com/az-ai-labs/ts-tokenizer/punct"
)

// atomicPunct are all-punctuation tokens kept as one Punctuation piece.
var atomicPunct = map[string]struct{}{
	"(!)":   {},
	"...":   {},
	"!!!":   {},
	"[...]": {},
}

// route is the punctuation stage. It handles every token that contains
// punctuation and declines the rest.
func (c *Classifier) route(s string, depth int) ([]piece, bool) {
	if punct.IsAll(s) {
		return c.allPunct(s), true
	}

	switch punct.ShapeOf(s) {
	case punct.None:
		return nil, false

	case punct.TrailingOnly:
		return c.stripTrailing(s, depth), true

	case punct.LeadingOnly:
		return c.stripLeading(s, depth), true

	case punct.BothEnds:
		lead, trail := punct.LeadingRun(s), punct.TrailingRun(s)
		out := []piece{c.runPiece(s[:lead])}
		out = append(out, c.segment(s[lead:len(s)-trail], depth+1)...)
		return append(out, c.runPiece(s[len(s)-trail:])), true

	case punct.InteriorOnly:
		return c.interior(s, depth), true

	case punct.Mixed:
		if punct.TrailingRun(s) > 0 {
			return c.stripTrailing(s, depth), true
		}
		return c.stripLeading(s, depth), true
	}
	return nil, false
}

func (c *Classifier) allPunct(s string) []piece {
	if _, ok := atomicPunct[s]; ok {
		return []piece{{s, Punctuation}}
	}
	if c.pat.Match(pattern.ThreeOrMore, s) {
		return []piece{{s, ThreeOrMore}}
	}
	return []piece{{s, Punctuation}}
}

func (c *Classifier) stripTrailing(s string, depth int) []piece {
	n := punct.TrailingRun(s)
	out := c.segment(s[:len(s)-n], depth+1)
	return append(out, c.runPiece(s[len(s)-n:]))
}

func (c *Classifier) stripLeading(s string, depth int) []piece {
	n := punct.LeadingRun(s)
	return append([]piece{c.runPiece(s[:n])}, c.segment(s[n:], depth+1)...)
}

// joinMarks may be removed to reveal a word split by a stray mark.
const joinMarks = "-_·"

// interior handles punctuation that touches neither boundary.
func (c *Classifier) interior(s string, depth int) []piece {
	pos := punct.Positions(s)

	if len(pos) == 1 {
		mark, size := utf8.DecodeRuneInString(s[pos[0]:])
		left, right := s[:pos[0]], s[pos[0]+size:]

		switch mark {
		case '\'':
			if c.pat.Match(pattern.Apostrophed, s) {
				return []piece{{s, Apostrophed}}
			}
		case '-', '_':
			if c.lex.Word(left) && c.lex.Word(right) {
				return []piece{{s, compoundTag(mark)}}
			}
		}
		if strings.ContainsRune(joinMarks, mark) && c.lex.Word(left+right) {
			return []piece{{s, OneCharFixed}}
		}

		out := c.segment(left, depth+1)
		out = append(out, piece{string(mark), Punctuation})
		return append(out, c.segment(right, depth+1)...)
	}

	if tag, ok := c.chain(s); ok {
		return []piece{{s, tag}}
	}

	var out []piece
	for _, run := range punct.Runs(s) {
		if run.Punct {
			out = append(out, c.runPiece(run.Text))
			continue
		}
		out = append(out, c.segment(run.Text, depth+1)...)
	}
	return out
}

// chain reports whether s is a compound of word list entries joined by
// one repeated hyphen or underscore, such as anne-baba-çocuk.
func (c *Classifier) chain(s string) (Category, bool) {
	for _, j := range [...]struct {
		mark byte
		span punct.Joiner
	}{
		{'-', punct.HyphenSpan(s)},
		{'_', punct.UnderscoreSpan(s)},
	} {
		if j.span.Kind != punct.Chain || j.span.Count != punct.Count(s) {
			continue
		}
		for _, part := range strings.Split(s, string(j.mark)) {
			if !c.lex.Word(part) {
				return OOV, false
			}
		}
		return compoundTag(rune(j.mark)), true
	}
	return OOV, false
}

func compoundTag(mark rune) Category {
	if mark == '_' {
		return Underscored
	}
	return Hyphenated
}
