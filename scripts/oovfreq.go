//go:build ignore

// oovfreq counts the tokens a corpus leaves out of vocabulary, to find
// candidates for data/lexicon/words.txt. Run from the project root:
//
//	go run scripts/oovfreq.go corpus1.txt [corpus2.txt ...]
//
// Output format: one entry per line, "token frequency\n", sorted descending
// by frequency. Only tokens seen at least minFreq times are written. Review
// the list, then feed the accepted words through cmd/lexgen.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/az-ai-labs/ts-tokenizer/classify"
	"github.com/az-ai-labs/ts-tokenizer/internal/trcase"
	"github.com/az-ai-labs/ts-tokenizer/tokenizer"
)

const (
	outputPath     = "data/oov_freq.txt"
	minFreq        = 5
	cacheSize      = 1 << 18
	scannerBufSize = 4 * 1024 * 1024 // 4 MB, handles very long lines
)

type freqEntry struct {
	token string
	freq  int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[oovfreq] ")

	if len(os.Args) < 2 {
		log.Fatal("usage: go run scripts/oovfreq.go <corpus.txt>...")
	}

	c, err := classify.Default()
	if err != nil {
		log.Fatalf("cannot load lexicon: %v", err)
	}
	tk := tokenizer.New(c, tokenizer.Options{CacheSize: cacheSize})

	// freq tracks lowercased OOV surfaces.
	freq := make(map[string]int)

	for _, path := range os.Args[1:] {
		n, err := processCorpus(tk, path, freq)
		if err != nil {
			log.Printf("warning: skipping corpus %q: %v", path, err)
			continue
		}
		log.Printf("processed %d lines from %s", n, path)
	}

	var entries []freqEntry
	for token, f := range freq {
		if f >= minFreq {
			entries = append(entries, freqEntry{token, f})
		}
	}

	// Sort descending by frequency, then alphabetically for stability.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].freq != entries[j].freq {
			return entries[i].freq > entries[j].freq
		}
		return entries[i].token < entries[j].token
	})

	if err := writeOutput(outputPath, entries); err != nil {
		log.Fatalf("cannot write output: %v", err)
	}
	log.Printf("wrote %d entries to %s", len(entries), outputPath)
}

// processCorpus tokenizes every line of a plain-text corpus and counts the
// OOV sub-tokens. Returns the number of lines processed.
func processCorpus(tk *tokenizer.Tokenizer, path string, freq map[string]int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	buf := make([]byte, scannerBufSize)
	sc.Buffer(buf, scannerBufSize)

	lines := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		for _, tok := range tk.Line(line) {
			if tok.Tag != classify.OOV {
				continue
			}
			freq[trcase.ToLower(tok.Norm)]++
		}
		lines++
		if lines%100_000 == 0 {
			fmt.Fprintf(os.Stderr, "[oovfreq] %s: %d lines processed\n", path, lines)
		}
	}
	return lines, sc.Err()
}

// writeOutput writes sorted frequency entries to path.
func writeOutput(path string, entries []freqEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 4*1024*1024)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s %d\n", e.token, e.freq)
	}
	return bw.Flush()
}
