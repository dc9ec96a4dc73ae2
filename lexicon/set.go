package lexicon

import (
	"sort"
	"strings"
)

// Set is an immutable membership set of normalized strings.
// The zero value is an empty set.
type Set struct {
	m map[string]struct{}
}

func newSet(entries []string, normalize func(string) string) Set {
	m := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		e = normalize(strings.TrimSpace(e))
		if e != "" {
			m[e] = struct{}{}
		}
	}
	return Set{m: m}
}

// Has reports whether k is a member. k must already be normalized the
// same way the set's entries were.
func (s Set) Has(k string) bool {
	_, ok := s.m[k]
	return ok
}

// Len returns the number of entries.
func (s Set) Len() int { return len(s.m) }

// Sorted returns the entries in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
