package pattern

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Static expressions. Each is anchored on the whole token.
var (
	// XML/SGML tag: <tag>, </tag>, <tag attr="x">
	reXMLTag = regexp.MustCompile(`^<[^<>]+>$`)

	// Email: alphanumeric start, dotted domain, alphabetic TLD
	reEmail = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._%+\-]*@[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?)*\.[A-Za-z]{2,}$`)

	// Date: D.M.YYYY or M.D.YYYY, and YYYY-M-D
	reDateDMY = regexp.MustCompile(`^(\d{1,2})([./-])(\d{1,2})([./-])(\d{4})$`)
	reDateYMD = regexp.MustCompile(`^(\d{4})([./-])(\d{1,2})([./-])(\d{1,2})$`)

	reYearRange   = regexp.MustCompile(`^\d{4}-\d{4}$`)
	reNumberRange = regexp.MustCompile(`^\d+(?:[.,]\d+)?-\d+(?:[.,]\d+)?$`)

	// Hour: HH:MM or HH.MM with an optional AM/PM marker or locative suffix
	reHour = regexp.MustCompile(`^(?:[01][0-9]|2[0-3])[:.][0-5][0-9](?:[AaPp][Mm])?(?:'(?:te|de|da|den|dan|ten|tan|deki|daki))?$`)

	reMention = regexp.MustCompile(`^@[\p{L}\p{N}_]{1,15}$`)
	reHashtag = regexp.MustCompile(`^#[\p{L}\p{N}_]{1,143}$`)

	reCopyright  = regexp.MustCompile(`^(?:©[\p{L}\p{N}]+|[\p{L}\p{N}]+©)$`)
	reRegistered = regexp.MustCompile(`^(?:®[\p{L}\p{N}]+|[\p{L}\p{N}]+®)$`)
	reTrademark  = regexp.MustCompile(`^(?:™[\p{L}\p{N}]+|[\p{L}\p{N}]+™)$`)
	reBullet     = regexp.MustCompile(`^•[\p{L}\p{N}]+$`)

	// Numbered title: (1), [2], {3}
	reNumberedTitle = regexp.MustCompile(`^(?:\(\d+\)|\[\d+\]|\{\d+\})$`)

	// Roman numeral body; the empty match is rejected by isRoman.
	reRoman = regexp.MustCompile(`^M{0,4}(?:CM|CD|D?C{0,3})(?:XC|XL|L?X{0,3})(?:IX|IV|V?I{0,3})$`)

	// Percentage: %50, %12,5, %50'si, 50%
	rePercentage = regexp.MustCompile(`^(?:%\d+(?:[.,]\d+)*(?:'\p{L}+)?|\d+(?:[.,]\d+)*%)$`)

	// Decimal: 1.000.000, 1,250.50, 3,14
	reDecimal = regexp.MustCompile(`^(?:\d{1,3}(?:\.\d{3})+(?:,\d+)?|\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+[.,]\d+)$`)

	// Ordinal: 3'üncü, 21'inci
	reOrdinal = regexp.MustCompile(`^\d+'(?:ıncı|inci|uncu|üncü|ncı|nci|ncu|ncü)$`)

	// Number with a case suffix: 1990'da, 3,5'te
	reNumberSuffix = regexp.MustCompile(`^\d+(?:[.,]\d+)*'\p{L}+$`)
)

var staticRegexps = map[Name]*regexp.Regexp{
	XMLTag:        reXMLTag,
	YearRange:     reYearRange,
	NumberRange:   reNumberRange,
	Hour:          reHour,
	Mention:       reMention,
	Hashtag:       reHashtag,
	Copyright:     reCopyright,
	Registered:    reRegistered,
	Trademark:     reTrademark,
	Bullet:        reBullet,
	NumberedTitle: reNumberedTitle,
	Percentage:    rePercentage,
	DecimalNumber: reDecimal,
	OrdinalNumber: reOrdinal,
	NumberSuffix:  reNumberSuffix,
}

var staticFuncs = map[Name]funcMatcher{
	Email:        isEmail,
	Date:         isDate,
	DateRange:    isDateRange,
	RomanNumeral: isRoman,
}

// apostrophedExpr matches word'suffix with no other punctuation and a
// non-numeric stem.
const apostrophedExpr = `^(?!\p{N})[\p{L}\p{N}]+'\p{L}+$`

// repeatable is the set of marks three_or_more accepts.
const repeatable = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~–—°…·•«»“”‘’‹›„‚¡¿§¶′″"

// threeOrMoreExpr builds ^([marks])\1{2,}$ over the repeatable set.
func threeOrMoreExpr() string {
	var b strings.Builder
	b.WriteString(`^([`)
	for _, r := range repeatable {
		if strings.ContainsRune(`\]^-[`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteString(`])\1{2,}$`)
	return b.String()
}

// compileURL builds the URL matcher around the known domain suffixes.
// A host that does not end in one of them is not a URL.
func compileURL(domains []string) (matcher, error) {
	alt := alternation(domains)
	if alt == "" {
		return never, nil
	}
	const (
		scheme = `(?:(?:https?|ftp)://)?(?:www\.)?`
		label  = `[a-z0-9](?:[a-z0-9\-]*[a-z0-9])?`
		port   = `(?::\d{1,5})?`
		path   = `(?:/(?:[a-z0-9\-._~:/?#\[\]@!$&()*+,;=%]*[a-z0-9/_~#=&%+\-])?)?`
		suffix = `(?:'\p{L}+)?`
	)
	re, err := regexp.Compile(`(?i)^` + scheme + label + `(?:\.` + label + `)*?(?:` + alt + `)` + port + path + suffix + `$`)
	if err != nil {
		return nil, err
	}
	return reMatcher{re}, nil
}

// compileCurrency builds the currency matcher: a symbol directly before or
// after a number.
func compileCurrency(symbols []string) (matcher, error) {
	alt := alternation(symbols)
	if alt == "" {
		return never, nil
	}
	// Thousands groups use one separator and the decimal part the other.
	const num = `(?:\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?|\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?|\d+(?:[.,]\d+)?)`
	re, err := regexp.Compile(`^(?:(?:` + alt + `)` + num + `|` + num + `(?:` + alt + `))$`)
	if err != nil {
		return nil, err
	}
	return reMatcher{re}, nil
}

func isEmail(s string) bool {
	return len(s) <= maxEmailLen && reEmail.MatchString(s)
}

func isRoman(s string) bool {
	body := strings.TrimSuffix(s, ".")
	return body != "" && reRoman.MatchString(body)
}

// isDate accepts D.M.YYYY (tried first), M.D.YYYY and YYYY-M-D with one
// consistent separator.
func isDate(s string) bool {
	return matchDate(s, "./-")
}

func matchDate(s, seps string) bool {
	if m := reDateDMY.FindStringSubmatch(s); m != nil {
		if m[2] != m[4] || !strings.Contains(seps, m[2]) {
			return false
		}
		return validDate(m[5], m[3], m[1]) || validDate(m[5], m[1], m[3])
	}
	if m := reDateYMD.FindStringSubmatch(s); m != nil {
		if m[2] != m[4] || !strings.Contains(seps, m[2]) {
			return false
		}
		return validDate(m[1], m[3], m[5])
	}
	return false
}

// isDateRange accepts two dates joined by a hyphen. The dates themselves
// must use '.' or '/' so the joining hyphen is unambiguous.
func isDateRange(s string) bool {
	if strings.Count(s, "-") != 1 {
		return false
	}
	left, right, _ := strings.Cut(s, "-")
	return matchDate(left, "./") && matchDate(right, "./")
}

// validDate reports whether the parts name a real Gregorian calendar day.
func validDate(yearStr, monthStr, dayStr string) bool {
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return false
	}
	// time.Date normalizes overflows, so a mismatch means the date does
	// not exist (Feb 30, Feb 29 outside leap years).
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && t.Month() == time.Month(month)
}
