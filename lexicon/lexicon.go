// Package lexicon loads the static word lists the classifier consults:
// Turkish words, exceptions, English words, abbreviations, emoticons,
// smileys, domain suffixes and currency symbols.
//
// A Lexicon is immutable once built and safe for concurrent use.
package lexicon

import (
	"bufio"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/az-ai-labs/ts-tokenizer/data"
	"github.com/az-ai-labs/ts-tokenizer/internal/trcase"
)

// ErrMissingResource is returned when a required lexicon file cannot be read.
var ErrMissingResource = errors.New("lexicon: missing resource")

const scannerBufSize = 1 << 20 // 1 MB

// Resource file names, relative to the root of the file system passed to Load.
const (
	WordsFile         = "words.txt"
	ExceptionsFile    = "exceptions.txt"
	EnglishFile       = "english.txt"
	AbbreviationsFile = "abbreviations.txt"
	EmoticonsFile     = "emoticons.txt"
	SmileysFile       = "smileys.txt"
	DomainsFile       = "domains.txt"
	CurrencyFile      = "currency_symbols.txt"
)

// Lists holds raw lexicon entries before normalization.
type Lists struct {
	Words         []string
	Exceptions    []string
	English       []string
	Abbreviations []string
	Emoticons     []string
	Smileys       []string
	Domains       []string
	Currencies    []string
}

// resources maps each file to the Lists field it fills.
var resources = [...]struct {
	file  string
	field func(*Lists) *[]string
}{
	{WordsFile, func(l *Lists) *[]string { return &l.Words }},
	{ExceptionsFile, func(l *Lists) *[]string { return &l.Exceptions }},
	{EnglishFile, func(l *Lists) *[]string { return &l.English }},
	{AbbreviationsFile, func(l *Lists) *[]string { return &l.Abbreviations }},
	{EmoticonsFile, func(l *Lists) *[]string { return &l.Emoticons }},
	{SmileysFile, func(l *Lists) *[]string { return &l.Smileys }},
	{DomainsFile, func(l *Lists) *[]string { return &l.Domains }},
	{CurrencyFile, func(l *Lists) *[]string { return &l.Currencies }},
}

// Glyph is one emoticon or smiley sequence.
type Glyph struct {
	Text     string
	Emoticon bool // false for ASCII-art smileys
}

// Lexicon is the loaded, normalized set of lexical resources.
type Lexicon struct {
	Words         Set // Turkish-lowercased
	Exceptions    Set // Turkish-lowercased
	English       Set // Turkish-lowercased
	Abbreviations Set // exact
	Emoticons     Set // exact
	Smileys       Set // exact

	// Domains are lowercase suffixes with a leading dot, longest first.
	Domains []string
	// Currencies are currency symbols in file order.
	Currencies []string

	glyphs      []Glyph
	glyphStarts map[rune]struct{}
}

// FromLists builds a Lexicon from in-memory lists.
func FromLists(l Lists) *Lexicon {
	lex := &Lexicon{
		Words:         newSet(l.Words, fold),
		Exceptions:    newSet(l.Exceptions, fold),
		English:       newSet(l.English, fold),
		Abbreviations: newSet(l.Abbreviations, norm.NFC.String),
		Emoticons:     newSet(l.Emoticons, norm.NFC.String),
		Smileys:       newSet(l.Smileys, norm.NFC.String),
		Domains:       normalizeDomains(l.Domains),
		Currencies:    dedup(l.Currencies, norm.NFC.String),
	}

	for _, e := range lex.Emoticons.Sorted() {
		lex.glyphs = append(lex.glyphs, Glyph{Text: e, Emoticon: true})
	}
	for _, s := range lex.Smileys.Sorted() {
		if !lex.Emoticons.Has(s) {
			lex.glyphs = append(lex.glyphs, Glyph{Text: s})
		}
	}
	sort.SliceStable(lex.glyphs, func(i, j int) bool {
		return len(lex.glyphs[i].Text) > len(lex.glyphs[j].Text)
	})
	lex.glyphStarts = make(map[rune]struct{}, len(lex.glyphs))
	for _, g := range lex.glyphs {
		r, _ := utf8.DecodeRuneInString(g.Text)
		lex.glyphStarts[r] = struct{}{}
	}
	return lex
}

// Load reads every resource file from the root of fsys.
// A missing file yields an error wrapping ErrMissingResource.
func Load(fsys fs.FS) (*Lexicon, error) {
	var l Lists
	for _, r := range resources {
		entries, err := readList(fsys, r.file)
		if err != nil {
			return nil, err
		}
		*r.field(&l) = entries
	}
	return FromLists(l), nil
}

// LoadDir reads the resource files from a directory on disk.
func LoadDir(dir string) (*Lexicon, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingResource, "lexicon directory %s: %v", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrMissingResource, "lexicon path %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

var loadDefault = sync.OnceValues(func() (*Lexicon, error) {
	sub, err := fs.Sub(data.Lexicon, "lexicon")
	if err != nil {
		return nil, errors.Wrap(err, "embedded lexicon")
	}
	return Load(sub)
})

// Default returns the lexicon embedded in the binary. It is loaded once.
func Default() (*Lexicon, error) {
	return loadDefault()
}

// Word reports whether s is in the Turkish word list.
func (l *Lexicon) Word(s string) bool { return l.Words.Has(fold(s)) }

// Exception reports whether s is in the exception list.
func (l *Lexicon) Exception(s string) bool { return l.Exceptions.Has(fold(s)) }

// EnglishWord reports whether s is in the English word list.
func (l *Lexicon) EnglishWord(s string) bool { return l.English.Has(fold(s)) }

// Abbreviation reports whether s is a listed abbreviation, case-sensitively.
func (l *Lexicon) Abbreviation(s string) bool { return l.Abbreviations.Has(s) }

// Emoticon reports whether s is a single listed emoticon.
func (l *Lexicon) Emoticon(s string) bool { return l.Emoticons.Has(s) }

// Smiley reports whether s is a single listed smiley.
func (l *Lexicon) Smiley(s string) bool { return l.Smileys.Has(s) }

// Glyphs returns every emoticon and smiley sequence, longest first.
// The returned slice must not be modified.
func (l *Lexicon) Glyphs() []Glyph { return l.glyphs }

// GlyphAt returns the longest glyph that s starts with.
func (l *Lexicon) GlyphAt(s string) (Glyph, bool) {
	r, _ := utf8.DecodeRuneInString(s)
	if _, ok := l.glyphStarts[r]; !ok {
		return Glyph{}, false
	}
	for _, g := range l.glyphs {
		if strings.HasPrefix(s, g.Text) {
			return g, true
		}
	}
	return Glyph{}, false
}

func fold(s string) string {
	return trcase.ToLower(norm.NFC.String(s))
}

func readList(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingResource, "%s: %v", name, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufSize)

	var entries []string
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			log.Warn().Str("file", name).Int("line", lineNo).Msg("skipping non-UTF-8 lexicon entry")
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return entries, nil
}

func normalizeDomains(domains []string) []string {
	out := dedup(domains, func(d string) string {
		d = strings.ToLower(norm.NFC.String(d))
		if !strings.HasPrefix(d, ".") {
			d = "." + d
		}
		return d
	})
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

func dedup(in []string, normalize func(string) string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = normalize(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
