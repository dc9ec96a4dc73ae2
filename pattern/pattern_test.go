package pattern

import (
	"strings"
	"testing"
	"time"
)

var (
	testDomains    = []string{".com", ".com.tr", ".org", ".net", ".tr"}
	testCurrencies = []string{"₺", "$", "€"}
)

func newTestTable(t testing.TB) *Table {
	t.Helper()
	tbl, err := New(testDomains, testCurrencies)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tbl
}

type matchCase struct {
	in   string
	want bool
}

func runCases(t *testing.T, name Name, cases []matchCase) {
	t.Helper()
	tbl := newTestTable(t)
	for _, tc := range cases {
		if got := tbl.Match(name, tc.in); got != tc.want {
			t.Errorf("Match(%s, %q) = %v, want %v", name, tc.in, got, tc.want)
		}
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  Name
		cases []matchCase
	}{
		{XMLTag, []matchCase{
			{"<doc>", true}, {"</p>", true}, {`<a href="x">`, true},
			{"<3", false}, {"<>", false}, {"<a><b>", false},
		}},
		{URL, []matchCase{
			{"google.com", true},
			{"https://www.google.com.tr/arama?q=x", true},
			{"www.milliyet.com.tr", true},
			{"http://site.org:8080/a/b", true},
			{"google.com'da", true},
			{"Google.COM", true},
			{"example.xyz", false},
			{"google.com.", false},
			{".com", false},
			{"google", false},
		}},
		{Email, []matchCase{
			{"info@example.com", true},
			{"ali.veli@firma.com.tr", true},
			{"a+b@mail.co", true},
			{".ali@x.com", false},
			{"a@b", false},
			{"a@b.c", false},
			{"info@example.com.", false},
			{strings.Repeat("a", 250) + "@b.com", false},
		}},
		{Date, []matchCase{
			{"29.02.2020", true},
			{"29.02.2000", true},
			{"29.02.2021", false},
			{"29.02.1900", false},
			{"31.04.2020", false},
			{"12/25/2020", true},
			{"01-01-2020", true},
			{"1.1.2020", true},
			{"2020-12-31", true},
			{"01.01/2020", false},
			{"32.01.2020", false},
			{"01.01.20", false},
		}},
		{DateRange, []matchCase{
			{"01.01.2020-31.12.2020", true},
			{"01/01/2020-02/01/2020", true},
			{"01.01.2020-31.02.2020", false},
			{"01-01-2020-02-01-2020", false},
		}},
		{YearRange, []matchCase{{"1990-1995", true}, {"1990-95", false}, {"199-1995", false}}},
		{NumberRange, []matchCase{{"10-20", true}, {"1,5-2,5", true}, {"10-", false}, {"a-b", false}}},
		{Hour, []matchCase{
			{"12:30", true}, {"00.00", true}, {"23:59", true},
			{"12:30'da", true}, {"09:15'te", true}, {"10:30PM", true},
			{"25:00", false}, {"12:60", false}, {"9:30", false}, {"12:30'xy", false},
		}},
		{Currency, []matchCase{
			{"₺100", true}, {"100₺", true}, {"$1,250.50", true}, {"€3,14", true},
			{"₺1.000.000", true}, {"₺1.250,50", true}, {"₺", false}, {"100", false}, {"£100", false},
			{"₺1.000.50", false}, {"₺1,000,50", false}, {"₺1.000,000", false}, {"$1,000.000", false},
			{"₺1.000,000.5", false},
		}},
		{Mention, []matchCase{
			{"@ali", true}, {"@şükrü_1", true}, {"@", false}, {"@ali@veli", false},
			{"@" + strings.Repeat("a", 16), false},
		}},
		{Hashtag, []matchCase{{"#gündem", true}, {"#2024", true}, {"#a#b", false}, {"#", false}}},
		{Copyright, []matchCase{{"©2024", true}, {"Şirket©", true}, {"©", false}, {"©©a", false}}},
		{Registered, []matchCase{{"Marka®", true}, {"®Marka", true}, {"Mar®ka", false}}},
		{Trademark, []matchCase{{"Ürün™", true}, {"™", false}}},
		{Bullet, []matchCase{{"•madde", true}, {"madde•", false}, {"•", false}}},
		{NumberedTitle, []matchCase{{"(1)", true}, {"[2]", true}, {"{3}", true}, {"(1]", false}, {"(a)", false}}},
		{RomanNumeral, []matchCase{
			{"XIV", true}, {"MCMXC", true}, {"X.", true}, {"I", true},
			{"", false}, {".", false}, {"IIII", false}, {"IC", false}, {"x", false},
		}},
		{Percentage, []matchCase{
			{"%50", true}, {"%12,5", true}, {"50%", true}, {"%50'si", true},
			{"%", false}, {"%abc", false},
		}},
		{ThreeOrMore, []matchCase{
			{"-----", true}, {"!!!", true}, {"___", true}, {"]]]]", true}, {"^^^", true}, {"………", true},
			{"!!", false}, {"!?!", false}, {"aaa", false},
		}},
		{Apostrophed, []matchCase{
			{"Ali'nin", true}, {"Türkiye'de", true}, {"B2B'de", true},
			{"1990'da", false}, {"Ali'", false}, {"Ali'nin'ki", false}, {"'nin", false},
		}},
		{DecimalNumber, []matchCase{
			{"1.000.000", true}, {"3,14", true}, {"1,250.50", true}, {"1.000,5", true},
			{"1.2.3", false}, {"12", false}, {"3,", false},
		}},
		{OrdinalNumber, []matchCase{{"3'üncü", true}, {"21'inci", true}, {"3'de", false}}},
		{NumberSuffix, []matchCase{{"1990'da", true}, {"3,5'te", true}, {"1990'", false}, {"'da", false}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()
			runCases(t, tt.name, tt.cases)
		})
	}
}

func TestRomanRejectsEmpty(t *testing.T) {
	t.Parallel()

	if isRoman("") {
		t.Error("isRoman(\"\") = true")
	}
	if !reRoman.MatchString("") {
		t.Fatal("test setup: bare grammar should accept the empty string")
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t)
	names := tbl.Names()
	if len(names) != 23 {
		t.Errorf("len(Names()) = %d, want 23", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestMatchUnknownAndOversized(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t)
	if tbl.Match("no_such_pattern", "x") {
		t.Error("unknown pattern matched")
	}
	if tbl.Match(Hashtag, "#"+strings.Repeat("a", maxMatchBytes)) {
		t.Error("oversized input matched")
	}
}

func TestEmptyLists(t *testing.T) {
	t.Parallel()

	tbl, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New(nil, nil): %v", err)
	}
	if tbl.Match(URL, "google.com") {
		t.Error("URL matched with no known domains")
	}
	if tbl.Match(Currency, "₺100") {
		t.Error("Currency matched with no known symbols")
	}
}

func TestThreeOrMoreExprCompiles(t *testing.T) {
	t.Parallel()

	if _, err := compileBacktracking(threeOrMoreExpr()); err != nil {
		t.Fatalf("three_or_more expression: %v", err)
	}
}

// TestReDoSResistance verifies matchers finish quickly on adversarial input.
func TestReDoSResistance(t *testing.T) {
	t.Parallel()

	tbl := newTestTable(t)
	inputs := []string{
		strings.Repeat("a", 4000) + "'",
		strings.Repeat("a.", 4000),
		strings.Repeat("!", 8000) + "?",
		strings.Repeat("1.", 4000) + "x",
		strings.Repeat("a@", 4000),
	}
	for _, in := range inputs {
		start := time.Now()
		for _, name := range tbl.Names() {
			tbl.Match(name, in)
		}
		if d := time.Since(start); d > 2*time.Second {
			t.Errorf("matching %d-byte input took %v", len(in), d)
		}
	}
}

func BenchmarkMatchURL(b *testing.B) {
	tbl := newTestTable(b)
	for b.Loop() {
		tbl.Match(URL, "https://www.google.com.tr/arama?q=x")
	}
}

func BenchmarkMatchThreeOrMore(b *testing.B) {
	tbl := newTestTable(b)
	for b.Loop() {
		tbl.Match(ThreeOrMore, "--------")
	}
}
