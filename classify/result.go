package classify

import "strings"

// Token is one classified piece of an input token.
type Token struct {
	Text  string   `json:"text"`  // surface form
	Norm  string   `json:"norm"`  // normalized form of the same span
	Start int      `json:"start"` // byte offset of Text in Result.Input (Result.Normalized when not aligned)
	End   int      `json:"end"`   // byte offset past Text
	Tag   Category `json:"tag"`
}

// Result is the classification of one whitespace-delimited token.
//
// When Aligned is true, Input[t.Start:t.End] == t.Text for every token and
// the Text fields concatenate to Input. Otherwise Text equals Norm and the
// offsets index Normalized. In both cases the Norm fields concatenate to
// Normalized.
type Result struct {
	Input      string  `json:"input"`
	Normalized string  `json:"normalized"`
	Tokens     []Token `json:"tokens"`
	Aligned    bool    `json:"aligned"`
}

// Tag returns the tag of the whole input: the single token's tag, Complex
// when the input was decomposed, or OOV for an empty result.
func (r Result) Tag() Category {
	switch len(r.Tokens) {
	case 0:
		return OOV
	case 1:
		return r.Tokens[0].Tag
	}
	return Complex
}

// Surfaces returns the Text of every token.
func (r Result) Surfaces() []string {
	out := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		out[i] = t.Text
	}
	return out
}

// String renders the result as text/Tag pairs separated by spaces.
func (r Result) String() string {
	var b strings.Builder
	for i, t := range r.Tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
		b.WriteByte('/')
		b.WriteString(t.Tag.String())
	}
	return b.String()
}
