package classify

import (
	"strings"

	"github.com/az-ai-labs/ts-tokenizer/pattern"
	"github.com/az-ai-labs/ts-tokenizer/punct"
)

// structuralRules lists the shape patterns in priority order.
var structuralRules = [...]struct {
	name pattern.Name
	tag  Category
}{
	{pattern.XMLTag, XMLTag},
	{pattern.URL, URL},
	{pattern.Email, Email},
	{pattern.Date, Date},
	{pattern.DateRange, DateRange},
	{pattern.YearRange, DateRange},
	{pattern.NumberRange, NumberRange},
	{pattern.Hour, Hour},
	{pattern.Currency, Currency},
	{pattern.Mention, Mention},
	{pattern.Hashtag, Hashtag},
	{pattern.Copyright, Copyright},
	{pattern.Registered, Registered},
	{pattern.Trademark, Trademark},
	{pattern.Bullet, Bullet},
	{pattern.NumberedTitle, NumberedTitle},
	{pattern.RomanNumeral, RomanNumeral},
	{pattern.Percentage, Percentage},
	{pattern.DecimalNumber, Number},
	{pattern.OrdinalNumber, OrdinalNumber},
	{pattern.NumberSuffix, NumberWithSuffix},
}

// match returns the first structural category s matches in full.
// Word list entries are never read as Roman numerals.
func (c *Classifier) match(s string) (Category, bool) {
	for _, r := range structuralRules {
		if !c.pat.Match(r.name, s) {
			continue
		}
		if r.tag == RomanNumeral && c.lex.Word(strings.TrimSuffix(s, ".")) {
			continue
		}
		return r.tag, true
	}
	return OOV, false
}

// matchBody is match for a token with its boundary punctuation removed.
// A body the lexicon stage recognizes is left to punctuation routing so
// lexicon precedence holds for punctuated tokens too.
func (c *Classifier) matchBody(body string) (Category, bool) {
	if _, ok := c.lexical(body); ok {
		return OOV, false
	}
	return c.match(body)
}

// structural is the pattern stage. The whole token is tried first, then
// the token without its trailing run, without its leading run, and
// without both. Stripped runs become their own pieces.
func (c *Classifier) structural(s string) ([]piece, bool) {
	if tag, ok := c.match(s); ok {
		return single(s, tag)
	}

	lead, trail := punct.LeadingRun(s), punct.TrailingRun(s)
	if lead == len(s) || (lead == 0 && trail == 0) {
		return nil, false
	}

	if trail > 0 {
		body, run := s[:len(s)-trail], s[len(s)-trail:]
		if tag, ok := c.matchBody(body); ok {
			return []piece{{body, tag}, c.runPiece(run)}, true
		}
	}
	if lead > 0 {
		run, body := s[:lead], s[lead:]
		if tag, ok := c.matchBody(body); ok {
			return []piece{c.runPiece(run), {body, tag}}, true
		}
	}
	if lead > 0 && trail > 0 && lead+trail < len(s) {
		open, body, closing := s[:lead], s[lead:len(s)-trail], s[len(s)-trail:]
		if tag, ok := c.matchBody(body); ok {
			return []piece{c.runPiece(open), {body, tag}, c.runPiece(closing)}, true
		}
	}
	return nil, false
}

// runPiece tags a stripped boundary run: a smiley, or punctuation.
func (c *Classifier) runPiece(run string) piece {
	if c.lex.Smiley(run) {
		return piece{run, Smiley}
	}
	return piece{run, Punctuation}
}
