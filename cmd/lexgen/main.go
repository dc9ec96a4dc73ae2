// Command lexgen turns a raw word list into a lexicon file.
//
// Each input line is repaired with charfix, lowercased with Turkish casing
// rules (unless -keep-case is set), deduplicated and sorted:
//
//	go run ./cmd/lexgen -input raw_words.txt -output data/lexicon/words.txt
//
// Use -keep-case for case-sensitive lists such as abbreviations.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/ts-tokenizer/charfix"
	"github.com/az-ai-labs/ts-tokenizer/internal/trcase"
)

const scannerBufSize = 1 << 20 // 1 MB

// counts summarizes one run.
type counts struct {
	read      int
	skipped   int
	duplicate int
	written   int
}

func main() {
	inputPath := flag.String("input", "", "path to the raw list, one entry per line")
	outputPath := flag.String("output", "", "output path (default stdout)")
	keepCase := flag.Bool("keep-case", false, "keep letter case of entries")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: lexgen -input <file> [-output <file>] [-keep-case]\n")
		os.Exit(1)
	}

	in, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: open input: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	var outFile *os.File
	if *outputPath != "" {
		outFile, err = os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lexgen: create output: %v\n", err)
			os.Exit(1)
		}
		out = outFile
	}

	c, genErr := generate(in, out, *keepCase)

	if err := in.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: close input: %v\n", err)
		os.Exit(1)
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "lexgen: close output: %v\n", err)
			os.Exit(1)
		}
	}
	if genErr != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", genErr)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Lines read:  %d\n", c.read)
	fmt.Fprintf(os.Stderr, "  skipped:   %d\n", c.skipped)
	fmt.Fprintf(os.Stderr, "  duplicate: %d\n", c.duplicate)
	fmt.Fprintf(os.Stderr, "Entries:     %d\n", c.written)
}

// generate reads raw entries from r and writes the sorted lexicon to w.
func generate(r io.Reader, w io.Writer, keepCase bool) (counts, error) {
	var c counts
	scanner := bufio.NewScanner(r)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	seen := make(map[string]struct{})
	for scanner.Scan() {
		c.read++
		entry, ok := normalizeEntry(scanner.Text(), keepCase)
		if !ok {
			c.skipped++
			continue
		}
		if _, dup := seen[entry]; dup {
			c.duplicate++
			continue
		}
		seen[entry] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return c, fmt.Errorf("scan input: %w", err)
	}

	lines := make([]string, 0, len(seen))
	for e := range seen {
		lines = append(lines, e)
	}
	sort.Strings(lines)

	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := fmt.Fprintln(bw, l); err != nil {
			return c, fmt.Errorf("write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return c, fmt.Errorf("flush output: %w", err)
	}
	c.written = len(lines)
	return c, nil
}

// normalizeEntry repairs and folds one raw line. Blank lines, comments
// (leading '#'), invalid UTF-8 and entries containing whitespace are
// rejected.
func normalizeEntry(line string, keepCase bool) (string, bool) {
	if !utf8.ValidString(line) {
		return "", false
	}
	s := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	if s == "" || strings.HasPrefix(s, "#") {
		return "", false
	}
	s = charfix.Fix(s)
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", false
	}
	if !keepCase {
		s = trcase.ToLower(s)
	}
	return s, true
}
