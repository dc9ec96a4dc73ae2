package charfix

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// isInvisible reports whether r is a control, zero-width, or bidi mark.
func isInvisible(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return false
	case r < 0x20 || r == 0x7f:
		return true
	case r >= 0x80 && r <= 0x9f: // C1 controls
		return true
	case r == 0x00ad: // soft hyphen
		return true
	case r >= 0x200b && r <= 0x200f: // ZWSP, ZWNJ, ZWJ, LRM, RLM
		return true
	case r >= 0x202a && r <= 0x202e: // bidi embeddings and overrides
		return true
	case r >= 0x2060 && r <= 0x2064: // word joiner, invisible operators
		return true
	case r == 0xfeff: // BOM / ZWNBSP
		return true
	}
	return false
}

// removerPool holds transformers; a transform.Transformer is not shared
// between goroutines.
var removerPool = sync.Pool{
	New: func() any {
		return runes.Remove(runes.Predicate(isInvisible))
	},
}

// stripInvisible removes invisible runes from s.
func stripInvisible(s string) string {
	found := false
	for _, r := range s {
		if isInvisible(r) {
			found = true
			break
		}
	}
	if !found {
		return s
	}

	tr := removerPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	removerPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

// reNumericEntity matches decimal (&#351;) and hexadecimal (&#x15F;) references.
var reNumericEntity = regexp.MustCompile(`&#(?:[xX]([0-9a-fA-F]{1,6})|([0-9]{1,7}));`)

// decodeEntities decodes entity references until none are left, so nested
// escapes such as "&amp;amp;lt;" collapse in one call. Every decoding round
// shortens s, which bounds the loop by its length.
func decodeEntities(s string) string {
	for range len(s) {
		next := decodeEntitiesOnce(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// decodeEntitiesOnce decodes named entities, then numeric references.
// References to invalid code points are left as written.
func decodeEntitiesOnce(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	s = namedEntities.Replace(s)
	if !strings.Contains(s, "&#") {
		return s
	}
	return reNumericEntity.ReplaceAllStringFunc(s, func(m string) string {
		var (
			n   uint64
			err error
		)
		if m[2] == 'x' || m[2] == 'X' {
			n, err = strconv.ParseUint(m[3:len(m)-1], 16, 32)
		} else {
			n, err = strconv.ParseUint(m[2:len(m)-1], 10, 32)
		}
		if err != nil || n == 0 || n > utf8.MaxRune {
			return m
		}
		r := rune(n)
		if !utf8.ValidRune(r) {
			return m
		}
		return string(r)
	})
}
