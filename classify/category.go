package classify

import (
	"encoding/json"
	"fmt"
)

// Category is the tag assigned to a token or sub-token.
type Category int

const (
	OOV              Category = iota // matched no rule
	XMLTag                           // whole markup tag, <doc>
	ValidWord                        // Turkish word list entry
	Abbreviation                     // abbreviation list entry, TBMM
	Exception                        // exception list entry, dvd-rom
	EnglishWord                      // English word list entry
	Number                           // digits or a formatted decimal
	Date                             // 29.02.2020
	DateRange                        // 01.01.2020-31.12.2020, 1990-1995
	NumberRange                      // 10-20
	Hour                             // 12:30, 09.15'te
	Email                            // info@example.com
	URL                              // www.example.com.tr
	Mention                          // @user
	Hashtag                          // #konu
	Currency                         // ₺100
	RomanNumeral                     // XIV
	Copyright                        // ©2024
	Registered                       // Marka®
	Trademark                        // Ürün™
	Bullet                           // •madde
	Percentage                       // %50
	NumberedTitle                    // (1)
	OrdinalNumber                    // 3'üncü
	NumberWithSuffix                 // 1990'da
	Smiley                           // :)
	Emoticon                         // 😀
	MultipleSmiley                   // one smiley in a run of glyphs
	MultipleEmoticon                 // one emoticon in a run of glyphs
	Hyphenated                       // ana-baba
	Underscored                      // kız_erkek
	Apostrophed                      // Ali'nin
	OneCharFixed                     // word once a stray mark is removed, bili-yorum
	Punctuation                      // punctuation mark or run
	ThreeOrMore                      // one mark repeated three or more times
	NonLatin                         // letters outside the Turkish/Latin alphabet
	Complex                          // decomposed into several sub-tokens
)

var categoryNames = [...]string{
	OOV:              "OOV",
	XMLTag:           "XMLTag",
	ValidWord:        "ValidWord",
	Abbreviation:     "Abbreviation",
	Exception:        "Exception",
	EnglishWord:      "EnglishWord",
	Number:           "Number",
	Date:             "Date",
	DateRange:        "DateRange",
	NumberRange:      "NumberRange",
	Hour:             "Hour",
	Email:            "Email",
	URL:              "URL",
	Mention:          "Mention",
	Hashtag:          "Hashtag",
	Currency:         "Currency",
	RomanNumeral:     "RomanNumeral",
	Copyright:        "Copyright",
	Registered:       "Registered",
	Trademark:        "Trademark",
	Bullet:           "Bullet",
	Percentage:       "Percentage",
	NumberedTitle:    "NumberedTitle",
	OrdinalNumber:    "OrdinalNumber",
	NumberWithSuffix: "NumberWithSuffix",
	Smiley:           "Smiley",
	Emoticon:         "Emoticon",
	MultipleSmiley:   "MultipleSmiley",
	MultipleEmoticon: "MultipleEmoticon",
	Hyphenated:       "Hyphenated",
	Underscored:      "Underscored",
	Apostrophed:      "Apostrophed",
	OneCharFixed:     "OneCharFixed",
	Punctuation:      "Punctuation",
	ThreeOrMore:      "ThreeOrMore",
	NonLatin:         "NonLatin",
	Complex:          "Complex",
}

var categoryFromName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for i, n := range categoryNames {
		m[n] = Category(i)
	}
	return m
}()

// String returns the category name.
func (c Category) String() string {
	if int(c) >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryFromName[name]
	return c, ok
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// MarshalJSON encodes the category as a JSON string (e.g. "ValidWord").
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "ValidWord") into a Category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := categoryFromName[s]
	if !ok {
		return fmt.Errorf("unknown category: %q", s)
	}
	*c = v
	return nil
}
