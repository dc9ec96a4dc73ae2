// Package data embeds the lexical resources used by the classifier.
package data

import "embed"

// Lexicon holds the line-delimited lexicon files under lexicon/.
//
//go:embed lexicon/*.txt
var Lexicon embed.FS
