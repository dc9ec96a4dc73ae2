// Package tokenizer drives the classifier over lines and documents.
//
// A line is split on whitespace and every field is classified; the
// classified sub-tokens carry byte offsets into the line. A line that is a
// single markup tag (for example "<doc id=3>") is kept whole as one XMLTag
// token.
//
// Process streams a document through a pool of workers and writes the
// rendered lines in input order.
//
// A Tokenizer is safe for concurrent use by multiple goroutines.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/az-ai-labs/ts-tokenizer/classify"
)

const (
	// DefaultCacheSize is the number of classified tokens kept in memory.
	DefaultCacheSize = 100_000

	// maxCachedTokenBytes keeps unusually long tokens out of the cache.
	maxCachedTokenBytes = 256
)

// reMarkup matches a line that is one markup tag.
var reMarkup = regexp.MustCompile(`^\s*<.*>\s*$`)

// Options configures a Tokenizer.
type Options struct {
	// CacheSize is the LRU cache capacity. Zero or negative disables caching.
	CacheSize int
}

// Tokenizer classifies lines of text.
type Tokenizer struct {
	c     *classify.Classifier
	cache *lru.Cache[string, classify.Result]
}

// New returns a Tokenizer that classifies with c.
func New(c *classify.Classifier, opts Options) *Tokenizer {
	t := &Tokenizer{c: c}
	if opts.CacheSize > 0 {
		cache, err := lru.New[string, classify.Result](opts.CacheSize)
		if err != nil {
			log.Warn().Err(err).Int("size", opts.CacheSize).Msg("token cache disabled")
		} else {
			t.cache = cache
		}
	}
	return t
}

// Classify classifies one whitespace-free token, consulting the cache.
func (t *Tokenizer) Classify(token string) classify.Result {
	if t.cache == nil || len(token) > maxCachedTokenBytes {
		return t.c.Classify(token)
	}
	if r, ok := t.cache.Get(token); ok {
		return r
	}
	r := t.c.Classify(token)
	t.cache.Add(token, r)
	return r
}

// Line classifies every whitespace-delimited field of line. Token offsets
// are byte offsets into line. Sub-tokens of a field whose normalization
// could not be mapped back span the whole field.
func (t *Tokenizer) Line(line string) []classify.Token {
	if reMarkup.MatchString(line) {
		start, end := trimSpan(line)
		text := line[start:end]
		return []classify.Token{{Text: text, Norm: text, Start: start, End: end, Tag: classify.XMLTag}}
	}

	var out []classify.Token
	for _, f := range fields(line) {
		res := t.Classify(line[f.start:f.end])
		for _, tok := range res.Tokens {
			if res.Aligned {
				tok.Start += f.start
				tok.End += f.start
			} else {
				tok.Start, tok.End = f.start, f.end
			}
			out = append(out, tok)
		}
	}
	return out
}

type span struct{ start, end int }

// fields returns the spans of whitespace-delimited fields in s.
func fields(s string) []span {
	var out []span
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, span{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, span{start, len(s)})
	}
	return out
}

// trimSpan returns the bounds of s without surrounding whitespace.
func trimSpan(s string) (start, end int) {
	end = len(strings.TrimRightFunc(s, unicode.IsSpace))
	for start < end {
		r, size := utf8.DecodeRuneInString(s[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	return start, end
}
