// Package punct analyzes the punctuation content of a single token.
//
// The punctuation set is ASCII punctuation plus marks observed in Turkish
// corpora: en and em dashes, degree sign, ellipsis, middle dot, bullet,
// guillemets, curly quotes, inverted marks, section and pilcrow signs,
// primes.
//
// Offsets are byte offsets into the analyzed string. All functions are pure.
package punct

import "unicode/utf8"

const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var asciiTable = func() (t [utf8.RuneSelf]bool) {
	for i := 0; i < len(asciiPunct); i++ {
		t[asciiPunct[i]] = true
	}
	return t
}()

// IsPunct reports whether r belongs to the punctuation set.
func IsPunct(r rune) bool {
	if r < utf8.RuneSelf {
		return asciiTable[r]
	}
	switch r {
	case '–', '—', '°', '…', '·', '•',
		'«', '»', '“', '”', '‘', '’', '‹', '›', '„', '‚',
		'¡', '¿', '§', '¶', '′', '″':
		return true
	}
	return false
}

// Count returns the number of punctuation runes in s.
func Count(s string) int {
	n := 0
	for _, r := range s {
		if IsPunct(r) {
			n++
		}
	}
	return n
}

// Positions returns the byte offsets of punctuation runes in s, ascending.
func Positions(s string) []int {
	var pos []int
	for i, r := range s {
		if IsPunct(r) {
			pos = append(pos, i)
		}
	}
	return pos
}

// IsAll reports whether s is non-empty and consists only of punctuation.
func IsAll(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsPunct(r) {
			return false
		}
	}
	return true
}

// LeadingRun returns the byte length of the punctuation run that s starts with.
func LeadingRun(s string) int {
	for i, r := range s {
		if !IsPunct(r) {
			return i
		}
	}
	return len(s)
}

// TrailingRun returns the byte length of the punctuation run that s ends with.
func TrailingRun(s string) int {
	end := len(s)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if !IsPunct(r) {
			break
		}
		end -= size
	}
	return len(s) - end
}

// Run is a maximal stretch of punctuation or non-punctuation runes.
type Run struct {
	Text  string
	Punct bool
}

// Runs splits s into alternating punctuation and non-punctuation runs.
// Concatenating the Text fields reproduces s.
func Runs(s string) []Run {
	var runs []Run
	start := 0
	inPunct := false
	for i, r := range s {
		p := IsPunct(r)
		if i == 0 {
			inPunct = p
			continue
		}
		if p != inPunct {
			runs = append(runs, Run{Text: s[start:i], Punct: inPunct})
			start = i
			inPunct = p
		}
	}
	if start < len(s) {
		runs = append(runs, Run{Text: s[start:], Punct: inPunct})
	}
	return runs
}
