package tokenizer

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/az-ai-labs/ts-tokenizer/classify"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
var ErrUnknownFormat = errors.New("tokenizer: unknown output format")

// Format selects how a classified line is rendered.
type Format int

const (
	Tokenized   Format = iota // one surface per output line
	Tagged                    // surface<TAB>Tag per output line
	Lines                     // surfaces of an input line joined by spaces
	TaggedLines               // one JSON array of [surface, tag] pairs per input line
)

var formatNames = [...]string{
	Tokenized:   "tokenized",
	Tagged:      "tagged",
	Lines:       "lines",
	TaggedLines: "tagged_lines",
}

// String returns the format name.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return Tokenized, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// FormatNames returns the names of all formats.
func FormatNames() []string {
	return append([]string(nil), formatNames[:]...)
}

// keepsBlankLines reports whether a blank input line produces an output line.
func (f Format) keepsBlankLines() bool {
	return f == Lines || f == TaggedLines
}

// Render formats classified tokens of one line. The result has no
// trailing newline.
func Render(tokens []classify.Token, f Format) string {
	var b strings.Builder
	switch f {
	case Tagged:
		for i, t := range tokens {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(t.Text)
			b.WriteByte('\t')
			b.WriteString(t.Tag.String())
		}
	case Lines:
		for i, t := range tokens {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.Text)
		}
	case TaggedLines:
		pairs := make([][2]string, len(tokens))
		for i, t := range tokens {
			pairs[i] = [2]string{t.Text, t.Tag.String()}
		}
		enc := json.NewEncoder(&b)
		enc.SetEscapeHTML(false)
		// Encoding a slice of string pairs cannot fail.
		_ = enc.Encode(pairs)
		return strings.TrimSuffix(b.String(), "\n")
	default:
		for i, t := range tokens {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

// FormatLine classifies line and renders it in format f.
func (t *Tokenizer) FormatLine(line string, f Format) string {
	return Render(t.Line(line), f)
}
