package charfix

import "strings"

// mojibake repairs encoding artifacts observed in Turkish web corpora.
// Multi-rune sequences come first: comparisons are done in argument order,
// so "Ã¶" must be tried before the bare "Ã".
var mojibake = strings.NewReplacer(
	// UTF-8 decoded as Latin-1 / Windows-1252
	"Ã¶", "ö", "Ã¼", "ü", "Ã§", "ç",
	"Ã–", "Ö", "Ãœ", "Ü", "Ã‡", "Ç",
	"Ã\u0096", "Ö", "Ã\u009c", "Ü", "Ã\u0087", "Ç",
	"Ã¢", "â", "Ã®", "î", "Ã»", "û",
	"ÃŸ", "ş",
	"Ä±", "ı", "Ä°", "İ",
	"ÄŸ", "ğ", "Äž", "Ğ", "Ä\u009f", "ğ", "Ä\u009e", "Ğ",
	"ÅŸ", "ş", "Åž", "Ş", "Å\u009f", "ş", "Å\u009e", "Ş",
	"åÿ", "ş", "s¸", "ş", "Þñ", "ı",

	// Windows-1252 punctuation decoded as Latin-1
	"â€™", "'", "â€˜", "'", "â€œ", "\"", "â€\u009d", "\"",
	"â€š", ",", "â€¦", "...", "â€“", "–", "â€”", "—",

	// Windows-1254 text read as Latin-1
	"þ", "ş", "Þ", "Ş", "ð", "ğ", "Ð", "Ğ", "ý", "ı", "Ý", "İ",

	// OCR and transliteration artifacts
	"ɪ", "ı", "ḡ", "ğ", "ǧ", "ğ", "ș", "ş", "Ș", "Ş", "Ģ", "ş", "Ġ", "İ",
	"ɑ", "a",

	// Cyrillic homoglyphs
	"а", "a", "е", "e", "о", "o",

	// Literal escape sequences left by broken JSON exports
	"\\u011f", "ğ", "\\u011e", "Ğ", "\\u00fc", "ü", "\\u00dc", "Ü",
	"\\u0131", "ı", "\\u0130", "İ", "\\u015f", "ş", "\\u015e", "Ş",
	"\\u00e7", "ç", "\\u00c7", "Ç", "\\u00f6", "ö", "\\u00d6", "Ö",

	"…", "...",
	"Ã", "Ö",
)

// namedEntities decodes HTML entities that show up in scraped Turkish text.
var namedEntities = strings.NewReplacer(
	"&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", "\"", "&apos;", "'",
	"&nbsp;", " ",
	"&Uuml;", "Ü", "&uuml;", "ü", "&Ouml;", "Ö", "&ouml;", "ö",
	"&Ccedil;", "Ç", "&ccedil;", "ç",
	"&Scedil;", "Ş", "&scedil;", "ş", "&Gbreve;", "Ğ", "&gbreve;", "ğ",
	"&Idot;", "İ", "&imath;", "ı", "&inodot;", "ı",
	"&Iuml;", "İ", "&iuml;", "i",
	"&ETH;", "Ğ", "&eth;", "ğ", "&THORN;", "Ş", "&thorn;", "ş",
	"&Acirc;", "Â", "&acirc;", "â", "&Icirc;", "Î", "&icirc;", "î",
	"&Ucirc;", "Û", "&ucirc;", "û",
	"&Auml;", "Ä", "&auml;", "ä", "&szlig;", "ß",
	"&rsquo;", "'", "&lsquo;", "'", "&ldquo;", "\"", "&rdquo;", "\"",
	"&laquo;", "\"", "&raquo;", "\"",
	"&hellip;", "...", "&ndash;", "–", "&mdash;", "—",
)

// quotes collapses quote-like marks to ASCII. Doubled single quotes
// become one double quote and are listed before the single forms.
var quotes = strings.NewReplacer(
	"’’", "\"", "‘‘", "\"", "‘’", "\"", "''", "\"", "``", "\"",
	"“", "\"", "”", "\"", "„", "\"", "‟", "\"", "«", "\"", "»", "\"",
	"″", "\"", "〝", "\"", "〞", "\"", "＂", "\"",
	"‘", "'", "’", "'", "‚", "'", "‛", "'", "‹", "'", "›", "'",
	"´", "'", "`", "'", "ʼ", "'", "ʻ", "'", "′", "'", "＇", "'",
)
