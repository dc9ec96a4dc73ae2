// Package classify tags whitespace-delimited Turkish tokens and splits
// tokens that carry punctuation into classified sub-tokens.
//
// Classification is an ordered cascade, first match wins:
//
//   - lexicon lookups (abbreviations, exceptions, words, English words,
//     emoticons, smileys, plain numbers)
//   - structural patterns (tags, URLs, e-mail, dates, hours, currency,
//     mentions, hashtags, symbol marks, numerals), also retried with
//     boundary punctuation removed
//   - emoticon and smiley runs
//   - punctuation routing, which strips wrapper and boundary punctuation
//     and re-classifies what is left
//   - fallbacks: OneCharFixed, NonLatin, then OOV
//
// Every recursive step works on a strictly shorter string, and recursion
// stops at MaxDepth. Classify never fails: a rule that panics or errors is
// treated as not matching.
//
// A Classifier is immutable after New and safe for concurrent use.
package classify

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/az-ai-labs/ts-tokenizer/charfix"
	"github.com/az-ai-labs/ts-tokenizer/lexicon"
	"github.com/az-ai-labs/ts-tokenizer/pattern"
)

const (
	// MaxDepth is the recursion ceiling; text still unclassified there is OOV.
	MaxDepth = 100

	// DefaultMaxTokenBytes is the largest token that is classified.
	// Longer tokens are returned whole as OOV.
	DefaultMaxTokenBytes = 64 << 10
)

// Classifier holds the lexicon and compiled patterns.
type Classifier struct {
	lex           *lexicon.Lexicon
	pat           *pattern.Table
	maxTokenBytes int
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithMaxTokenBytes sets the size limit above which tokens are not classified.
// Non-positive values keep the default.
func WithMaxTokenBytes(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.maxTokenBytes = n
		}
	}
}

// New builds a Classifier over lex.
func New(lex *lexicon.Lexicon, opts ...Option) (*Classifier, error) {
	if lex == nil {
		return nil, errors.New("classify: nil lexicon")
	}
	pat, err := pattern.New(lex.Domains, lex.Currencies)
	if err != nil {
		return nil, errors.Wrap(err, "classify: building pattern table")
	}
	c := &Classifier{lex: lex, pat: pat, maxTokenBytes: DefaultMaxTokenBytes}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var loadDefault = sync.OnceValues(func() (*Classifier, error) {
	lex, err := lexicon.Default()
	if err != nil {
		return nil, err
	}
	return New(lex)
})

// Default returns a Classifier over the embedded lexicon. It is built once.
func Default() (*Classifier, error) {
	return loadDefault()
}

// Lexicon returns the lexicon the classifier consults.
func (c *Classifier) Lexicon() *lexicon.Lexicon { return c.lex }

// Classify tags token. The token must not contain whitespace; the driver
// splits lines before calling. An empty token yields an empty Result.
func (c *Classifier) Classify(token string) Result {
	if token == "" {
		return Result{Aligned: true}
	}
	if len(token) > c.maxTokenBytes {
		return Result{
			Input:      token,
			Normalized: token,
			Tokens:     []Token{{Text: token, Norm: token, End: len(token), Tag: OOV}},
			Aligned:    true,
		}
	}

	normalized := charfix.Fix(token)
	if normalized == "" {
		// Nothing but invisible characters.
		return Result{
			Input:   token,
			Tokens:  []Token{{Text: token, End: len(token), Tag: OOV}},
			Aligned: true,
		}
	}

	return assemble(token, normalized, c.segment(normalized, 0))
}

// piece is a classified span of the normalized token.
type piece struct {
	text string
	tag  Category
}

// stage is one step of the cascade.
type stage int

const (
	stageLexical stage = iota
	stageStructural
	stageGlyphs
	stagePunctuation
	numStages
)

var stageNames = [...]string{
	stageLexical:     "lexical",
	stageStructural:  "structural",
	stageGlyphs:      "glyphs",
	stagePunctuation: "punctuation",
}

// segment classifies s, recursing into sub-strings where a stage splits it.
func (c *Classifier) segment(s string, depth int) []piece {
	if s == "" {
		return nil
	}
	if depth >= MaxDepth {
		log.Debug().Str("text", s).Int("depth", depth).Msg("recursion ceiling reached")
		return []piece{{s, OOV}}
	}
	for st := stage(0); st < numStages; st++ {
		if out, ok := c.run(st, s, depth); ok {
			return out
		}
	}
	return []piece{{s, c.fallback(s)}}
}

// run evaluates one stage. A panic inside a stage counts as no match.
func (c *Classifier) run(st stage, s string, depth int) (out []piece, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Str("stage", stageNames[st]).Str("text", s).Interface("panic", r).Msg("rule skipped")
			out, ok = nil, false
		}
	}()

	switch st {
	case stageLexical:
		return c.lexical(s)
	case stageStructural:
		return c.structural(s)
	case stageGlyphs:
		return c.glyphs(s, depth)
	case stagePunctuation:
		return c.route(s, depth)
	}
	return nil, false
}

// single wraps one whole-token match.
func single(s string, tag Category) ([]piece, bool) {
	return []piece{{s, tag}}, true
}
