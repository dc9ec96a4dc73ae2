package classify

import (
	"strings"
	"unicode"

	"github.com/az-ai-labs/ts-tokenizer/internal/trcase"
	"github.com/az-ai-labs/ts-tokenizer/punct"
)

// lexical is the lexicon stage. Abbreviations and exceptions may carry
// punctuation (Dr., dvd-rom) and are checked on every token; a punctuated
// token may also be a smiley. The remaining lists only hold
// punctuation-free entries.
func (c *Classifier) lexical(s string) ([]piece, bool) {
	switch {
	case c.lex.Abbreviation(s):
		return single(s, Abbreviation)
	case c.lex.Exception(s):
		return single(s, Exception)
	}

	if punct.Count(s) > 0 {
		if c.lex.Smiley(s) {
			return single(s, Smiley)
		}
		return nil, false
	}

	switch {
	case c.lex.Word(s):
		return single(s, ValidWord)
	case c.lex.EnglishWord(s):
		return single(s, EnglishWord)
	case c.lex.Emoticon(s):
		return single(s, Emoticon)
	case c.lex.Smiley(s):
		return single(s, Smiley)
	case isDigits(s):
		return single(s, Number)
	}
	return nil, false
}

// strayMarks are dropped when checking whether a token is a word with
// one spurious character.
const strayMarks = "¬º·"

// fallback is the terminal stage.
func (c *Classifier) fallback(s string) Category {
	if strings.ContainsAny(s, strayMarks) {
		stripped := strings.Map(func(r rune) rune {
			if strings.ContainsRune(strayMarks, r) {
				return -1
			}
			return r
		}, s)
		if stripped != "" && c.lex.Word(stripped) {
			return OneCharFixed
		}
	}
	if isNonLatin(s) {
		return NonLatin
	}
	return OOV
}

// isNonLatin reports whether s has a letter outside the Turkish/Latin
// alphabet and no punctuation or digits. Whitespace decoded from entities
// such as &nbsp; is ignored.
func isNonLatin(s string) bool {
	foreign := false
	for _, r := range s {
		if punct.IsPunct(r) || unicode.IsDigit(r) {
			return false
		}
		if unicode.IsSpace(r) {
			continue
		}
		if !trcase.InAlphabet(r) {
			foreign = true
		}
	}
	return foreign
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
