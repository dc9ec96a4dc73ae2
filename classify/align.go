package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/ts-tokenizer/charfix"
)

// maxAlignBytes bounds the raw tokens whose pieces are mapped back onto
// the raw text. Mapping re-normalizes raw prefixes, so its cost grows
// quadratically with token length.
const maxAlignBytes = 512

// assemble turns pieces of the normalized token into Tokens carrying
// both the raw and the normalized surface.
func assemble(raw, normalized string, pieces []piece) Result {
	res := Result{
		Input:      raw,
		Normalized: normalized,
		Tokens:     make([]Token, len(pieces)),
	}

	bounds := make([]int, len(pieces)+1)
	for i, p := range pieces {
		bounds[i+1] = bounds[i] + len(p.text)
	}

	var cuts []int
	switch {
	case raw == normalized:
		cuts = bounds
		res.Aligned = true
	case len(raw) <= maxAlignBytes:
		cuts = align(raw, normalized, bounds)
		res.Aligned = true
	default:
		cuts = bounds
	}

	surface := normalized
	if res.Aligned {
		surface = raw
	}
	for i, p := range pieces {
		res.Tokens[i] = Token{
			Text:  surface[cuts[i]:cuts[i+1]],
			Norm:  p.text,
			Start: cuts[i],
			End:   cuts[i+1],
			Tag:   p.tag,
		}
	}
	return res
}

// align maps each boundary of normalized onto raw. A boundary b goes to
// the shortest raw prefix whose normalization equals normalized[:b]. When
// no prefix normalizes exactly, the first prefix whose normalization
// covers normalized[:b] is used. The last cut is always len(raw), so the
// raw spans always reassemble raw.
func align(raw, normalized string, bounds []int) []int {
	cuts := make([]int, len(bounds))
	last := len(bounds) - 1
	cuts[last] = len(raw)

	p := 0
	for i := 1; i < last; i++ {
		want := normalized[:bounds[i]]
		q := p
		for q < len(raw) {
			_, size := utf8.DecodeRuneInString(raw[q:])
			q += size
			got := charfix.Fix(raw[:q])
			if got == want || (len(got) >= len(want) && strings.HasPrefix(got, want)) {
				break
			}
		}
		cuts[i] = q
		p = q
	}
	return cuts
}
