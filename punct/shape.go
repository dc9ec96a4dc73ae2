package punct

import "unicode/utf8"

// Shape is the coarse placement of punctuation within a token.
type Shape int

const (
	None         Shape = iota // no punctuation
	LeadingOnly               // all punctuation in one run touching the start
	TrailingOnly              // all punctuation in one run touching the end
	BothEnds                  // first and last rune are punctuation
	InteriorOnly              // punctuation touches neither boundary
	Mixed                     // a boundary run plus interior punctuation
)

var shapeNames = [...]string{
	None:         "None",
	LeadingOnly:  "LeadingOnly",
	TrailingOnly: "TrailingOnly",
	BothEnds:     "BothEnds",
	InteriorOnly: "InteriorOnly",
	Mixed:        "Mixed",
}

// String returns the shape name.
func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "Shape(?)"
}

// ShapeOf classifies the punctuation placement in s.
// If both the first and the last rune are punctuation the shape is
// BothEnds, whatever the interior holds.
func ShapeOf(s string) Shape {
	total := Count(s)
	if total == 0 {
		return None
	}

	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	startsPunct, endsPunct := IsPunct(first), IsPunct(last)

	switch {
	case startsPunct && endsPunct:
		return BothEnds
	case startsPunct:
		if Count(s[:LeadingRun(s)]) == total {
			return LeadingOnly
		}
		return Mixed
	case endsPunct:
		if Count(s[len(s)-TrailingRun(s):]) == total {
			return TrailingOnly
		}
		return Mixed
	}
	return InteriorOnly
}

// JoinerKind describes how a joining mark (hyphen, underscore) occurs.
type JoinerKind int

const (
	NoJoiner  JoinerKind = iota
	Single               // exactly one, interior
	Chain                // several, all interior, none adjacent
	Irregular            // touches a boundary, or two are adjacent
)

// Joiner reports the occurrences of one joining mark in a token.
type Joiner struct {
	Kind  JoinerKind
	Count int
	Index int // byte offset of the first occurrence, -1 if none
}

// HyphenSpan inspects the hyphens in s.
func HyphenSpan(s string) Joiner { return span(s, '-') }

// UnderscoreSpan inspects the underscores in s.
func UnderscoreSpan(s string) Joiner { return span(s, '_') }

func span(s string, mark byte) Joiner {
	j := Joiner{Index: -1}
	prev := -2
	for i := 0; i < len(s); i++ {
		if s[i] != mark {
			continue
		}
		if j.Count == 0 {
			j.Index = i
		}
		j.Count++
		if i == 0 || i == len(s)-1 || i == prev+1 {
			j.Kind = Irregular
		}
		prev = i
	}
	if j.Count == 0 || j.Kind == Irregular {
		return j
	}
	if j.Count == 1 {
		j.Kind = Single
	} else {
		j.Kind = Chain
	}
	return j
}
