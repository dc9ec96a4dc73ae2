package lexicon

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		WordsFile:         {Data: []byte("merhaba\nİstanbul\nıslak\n\nkitap\r\n")},
		ExceptionsFile:    {Data: []byte("dvd-rom\n")},
		EnglishFile:       {Data: []byte("Hello\n")},
		AbbreviationsFile: {Data: []byte("TBMM\nDr.\n")},
		EmoticonsFile:     {Data: []byte("😀\n❤️\n❤\n")},
		SmileysFile:       {Data: []byte(":)\n:-)\n")},
		DomainsFile:       {Data: []byte("com\n.com.tr\n.COM\n")},
		CurrencyFile:      {Data: []byte("₺\n$\n₺\n")},
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	lex, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := lex.Words.Len(); got != 4 {
		t.Errorf("Words.Len() = %d, want 4", got)
	}

	tests := []struct {
		name string
		fn   func(string) bool
		in   string
		want bool
	}{
		{"word exact", lex.Word, "merhaba", true},
		{"word uppercase", lex.Word, "MERHABA", true},
		{"word dotted capital", lex.Word, "İSTANBUL", true},
		{"word dotless capital", lex.Word, "ISLAK", true},
		{"word plain I is dotless", lex.Word, "ISTANBUL", false},
		{"word missing", lex.Word, "araba", false},
		{"word trailing CR trimmed", lex.Word, "kitap", true},
		{"exception", lex.Exception, "DVD-ROM", true},
		{"english folded", lex.EnglishWord, "hello", true},
		{"abbreviation exact", lex.Abbreviation, "TBMM", true},
		{"abbreviation case sensitive", lex.Abbreviation, "tbmm", false},
		{"abbreviation with dot", lex.Abbreviation, "Dr.", true},
		{"emoticon", lex.Emoticon, "😀", true},
		{"smiley", lex.Smiley, ":-)", true},
		{"smiley not emoticon", lex.Emoticon, ":)", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("lookup(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadDomainsAndCurrencies(t *testing.T) {
	t.Parallel()

	lex, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantDomains := []string{".com.tr", ".com"}
	if len(lex.Domains) != len(wantDomains) {
		t.Fatalf("Domains = %q, want %q", lex.Domains, wantDomains)
	}
	for i := range wantDomains {
		if lex.Domains[i] != wantDomains[i] {
			t.Errorf("Domains[%d] = %q, want %q", i, lex.Domains[i], wantDomains[i])
		}
	}

	wantCur := []string{"₺", "$"}
	if len(lex.Currencies) != len(wantCur) || lex.Currencies[0] != "₺" || lex.Currencies[1] != "$" {
		t.Errorf("Currencies = %q, want %q", lex.Currencies, wantCur)
	}
}

func TestLoadMissingResource(t *testing.T) {
	t.Parallel()

	fsys := testFS()
	delete(fsys, SmileysFile)

	_, err := Load(fsys)
	if err == nil {
		t.Fatal("Load with missing file: want error, got nil")
	}
	if !errors.Is(err, ErrMissingResource) {
		t.Errorf("error %v does not wrap ErrMissingResource", err)
	}
}

func TestLoadDirMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadDir(t.TempDir() + "/nope")
	if !errors.Is(err, ErrMissingResource) {
		t.Errorf("LoadDir on missing dir: got %v, want ErrMissingResource", err)
	}
}

func TestLoadSkipsInvalidUTF8(t *testing.T) {
	t.Parallel()

	fsys := testFS()
	fsys[WordsFile] = &fstest.MapFile{Data: []byte("merhaba\n\xff\xfe\nkitap\n")}

	lex, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := lex.Words.Len(); got != 2 {
		t.Errorf("Words.Len() = %d, want 2 (corrupt line skipped)", got)
	}
}

func TestGlyphAt(t *testing.T) {
	t.Parallel()

	lex, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		in       string
		want     string
		emoticon bool
		ok       bool
	}{
		{":-):)", ":-)", false, true},
		{":)abc", ":)", false, true},
		{"❤️x", "❤️", true, true},
		{"❤x", "❤", true, true},
		{"😀😀", "😀", true, true},
		{"abc", "", false, false},
	}
	for _, tt := range tests {
		g, ok := lex.GlyphAt(tt.in)
		if ok != tt.ok || g.Text != tt.want || g.Emoticon != tt.emoticon {
			t.Errorf("GlyphAt(%q) = (%+v, %v), want (%q, %v, %v)", tt.in, g, ok, tt.want, tt.emoticon, tt.ok)
		}
	}
}

func TestFromListsZeroValue(t *testing.T) {
	t.Parallel()

	lex := FromLists(Lists{})
	if lex.Word("merhaba") || lex.Smiley(":)") || len(lex.Glyphs()) != 0 {
		t.Error("empty lexicon reports members")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	lex, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, w := range []string{"merhaba", "kelime", "biliyorum"} {
		if !lex.Word(w) {
			t.Errorf("embedded word list missing %q", w)
		}
	}
	if !lex.Exception("dvd-rom") {
		t.Error("embedded exceptions missing dvd-rom")
	}
	if lex.Word("x") {
		t.Error("embedded word list must not contain single letter x")
	}
	again, _ := Default()
	if again != lex {
		t.Error("Default returned a different instance on second call")
	}
}
