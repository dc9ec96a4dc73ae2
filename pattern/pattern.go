// Package pattern holds the named, precompiled matchers used by the
// classifier: structural shapes such as URLs, e-mail addresses, dates,
// hours, currency amounts, numbers and symbol-marked words.
//
// Every matcher is anchored on the whole input. A Table is built once from
// the lexicon-derived domain and currency lists and is immutable afterwards,
// so it is safe for concurrent use.
package pattern

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Name identifies a matcher in a Table.
type Name string

// Matcher names.
const (
	XMLTag        Name = "xml_tag"
	URL           Name = "url"
	Email         Name = "email"
	Date          Name = "date"
	DateRange     Name = "date_range"
	YearRange     Name = "year_range"
	NumberRange   Name = "number_range"
	Hour          Name = "hour"
	Currency      Name = "currency"
	Mention       Name = "mention"
	Hashtag       Name = "hashtag"
	Copyright     Name = "copyright"
	Registered    Name = "registered"
	Trademark     Name = "trademark"
	Bullet        Name = "bullet"
	NumberedTitle Name = "numbered_title"
	RomanNumeral  Name = "roman_numeral"
	Percentage    Name = "percentage"
	ThreeOrMore   Name = "three_or_more"
	Apostrophed   Name = "apostrophed"
	DecimalNumber Name = "decimal_number"
	OrdinalNumber Name = "ordinal_number"
	NumberSuffix  Name = "number_suffix"
)

const (
	// maxMatchBytes bounds the input any matcher will look at.
	maxMatchBytes = 8 << 10

	// maxEmailLen is the maximum length of an email address per RFC 5321.
	maxEmailLen = 254

	// matchTimeout bounds a single backtracking match.
	matchTimeout = 100 * time.Millisecond
)

// matcher is one compiled pattern.
type matcher interface {
	match(s string) bool
}

type reMatcher struct{ re *regexp.Regexp }

func (m reMatcher) match(s string) bool { return m.re.MatchString(s) }

// re2Matcher wraps a backtracking expression. Match errors, including
// timeouts, count as no match.
type re2Matcher struct{ re *regexp2.Regexp }

func (m re2Matcher) match(s string) bool {
	ok, err := m.re.MatchString(s)
	if err != nil {
		log.Debug().Err(err).Str("pattern", m.re.String()).Msg("backtracking match failed")
		return false
	}
	return ok
}

type funcMatcher func(string) bool

func (f funcMatcher) match(s string) bool { return f(s) }

// Table maps matcher names to compiled matchers.
type Table struct {
	matchers map[Name]matcher
}

// New compiles the full matcher table. domains are URL suffixes with a
// leading dot; currencies are currency symbols.
func New(domains, currencies []string) (*Table, error) {
	t := &Table{matchers: make(map[Name]matcher, 32)}

	for name, re := range staticRegexps {
		t.matchers[name] = reMatcher{re}
	}
	for name, fn := range staticFuncs {
		t.matchers[name] = fn
	}

	threeOrMore, err := compileBacktracking(threeOrMoreExpr())
	if err != nil {
		return nil, errors.Wrap(err, "compile three_or_more")
	}
	t.matchers[ThreeOrMore] = threeOrMore

	apostrophed, err := compileBacktracking(apostrophedExpr)
	if err != nil {
		return nil, errors.Wrap(err, "compile apostrophed")
	}
	t.matchers[Apostrophed] = apostrophed

	url, err := compileURL(domains)
	if err != nil {
		return nil, errors.Wrap(err, "compile url")
	}
	t.matchers[URL] = url

	cur, err := compileCurrency(currencies)
	if err != nil {
		return nil, errors.Wrap(err, "compile currency")
	}
	t.matchers[Currency] = cur

	return t, nil
}

// Match reports whether s matches the named pattern in full. Unknown
// names, oversized input and matcher failures all report false.
func (t *Table) Match(name Name, s string) (ok bool) {
	if s == "" || len(s) > maxMatchBytes {
		return false
	}
	m, found := t.matchers[name]
	if !found {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Str("pattern", string(name)).Interface("panic", r).Msg("matcher panicked")
			ok = false
		}
	}()
	return m.match(s)
}

// Names returns the names of all matchers in the table, sorted.
func (t *Table) Names() []Name {
	names := make([]Name, 0, len(t.matchers))
	for n := range t.matchers {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func compileBacktracking(expr string) (re2Matcher, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return re2Matcher{}, err
	}
	re.MatchTimeout = matchTimeout
	return re2Matcher{re}, nil
}

// alternation quotes each literal and joins them longest first.
func alternation(literals []string) string {
	quoted := make([]string, 0, len(literals))
	for _, l := range literals {
		if l != "" {
			quoted = append(quoted, regexp.QuoteMeta(l))
		}
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return strings.Join(quoted, "|")
}

// never matches nothing; used when a list-driven pattern has an empty list.
var never = funcMatcher(func(string) bool { return false })
