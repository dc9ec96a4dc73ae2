// Command smoketest runs the classifier over a directory of .txt files and
// checks the losslessness and normalization invariants on every field.
//
//	go run ./cmd/smoketest <directory>
//
// Failures are reported on stderr; the summary is printed on stdout.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/az-ai-labs/ts-tokenizer/charfix"
	"github.com/az-ai-labs/ts-tokenizer/classify"
	"github.com/az-ai-labs/ts-tokenizer/tokenizer"
)

const (
	maxWorkers     = 4
	expectedArgs   = 2
	scannerBufSize = 4 << 20 // 4 MB, handles very long lines
	bytesToMBShift = 20
	cacheSize      = 1 << 16
	outlierFactor  = 3
)

type fileRatio struct {
	path   string
	tokens int
	oov    int
	ratio  float64
}

type Stats struct {
	mu             sync.Mutex
	filesScanned   int
	totalBytes     int64
	fields         int
	reconOK        int
	reconFail      int
	unaligned      int
	fixUnstable    int
	oovOutliers    int
	categoryCounts map[classify.Category]int
	fileRatios     []fileRatio
}

type fileState struct {
	path           string
	totalBytes     int64
	fields         int
	reconFail      int
	reconLogged    bool
	unaligned      int
	fixUnstable    int
	categoryCounts map[classify.Category]int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{
		categoryCounts: make(map[classify.Category]int),
	}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	c, err := classify.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}
	tk := tokenizer.New(c, tokenizer.Options{CacheSize: cacheSize})

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(tk, p, stats)
		}(path)
	}

	wg.Wait()

	flagOOVOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func processFile(tk *tokenizer.Tokenizer, path string, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	fmt.Fprintf(os.Stderr, "START %s\n", path)
	fileStart := time.Now()

	state := &fileState{
		path:           path,
		categoryCounts: make(map[classify.Category]int),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64<<10), scannerBufSize)
	for scanner.Scan() {
		line := scanner.Text()
		state.totalBytes += int64(len(line)) + 1
		for _, field := range strings.Fields(line) {
			state.checkField(tk, field)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.totalBytes>>bytesToMBShift)

	mergeFileState(state, stats)
}

// checkField classifies one field and verifies that the sub-tokens
// reconstruct both the raw and the normalized text.
func (fs *fileState) checkField(tk *tokenizer.Tokenizer, field string) {
	fs.fields++
	res := tk.Classify(field)

	var raw, norm strings.Builder
	for _, tok := range res.Tokens {
		fs.categoryCounts[tok.Tag]++
		raw.WriteString(tok.Text)
		norm.WriteString(tok.Norm)
	}

	fixed := charfix.Fix(field)
	if charfix.Fix(fixed) != fixed {
		fs.fixUnstable++
		fmt.Fprintf(os.Stderr, "FIX_UNSTABLE: %s: %q\n", fs.path, field)
	}

	if !res.Aligned {
		fs.unaligned++
		return
	}
	if raw.String() != field || norm.String() != res.Normalized {
		fs.reconFail++
		if !fs.reconLogged {
			logReconstructionFailure(fs.path, field, raw.String())
			fs.reconLogged = true
		}
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.fields += fs.fields
	stats.reconFail += fs.reconFail
	stats.reconOK += fs.fields - fs.reconFail - fs.unaligned
	stats.unaligned += fs.unaligned
	stats.fixUnstable += fs.fixUnstable

	tokens := 0
	for cat, count := range fs.categoryCounts {
		stats.categoryCounts[cat] += count
		tokens += count
	}

	ratio := 0.0
	if tokens > 0 {
		ratio = float64(fs.categoryCounts[classify.OOV]) / float64(tokens)
	}
	stats.fileRatios = append(stats.fileRatios, fileRatio{
		path:   fs.path,
		tokens: tokens,
		oov:    fs.categoryCounts[classify.OOV],
		ratio:  ratio,
	})
}

func logReconstructionFailure(path, original, reconstructed string) {
	pos, got, want := firstDivergence(original, reconstructed)
	fmt.Fprintf(os.Stderr, "RECON_FAIL: %s: %q: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
		path, original, pos, got, want)
}

// flagOOVOutliers computes the median OOV ratio across all files and flags
// any file whose ratio exceeds outlierFactor times the median. Such files
// are usually in another language or badly encoded.
func flagOOVOutliers(stats *Stats) {
	if len(stats.fileRatios) == 0 {
		return
	}

	ratios := make([]float64, len(stats.fileRatios))
	for i, fr := range stats.fileRatios {
		ratios[i] = fr.ratio
	}
	med := computeMedian(ratios)

	for _, fr := range stats.fileRatios {
		if med > 0 && fr.ratio > outlierFactor*med {
			stats.oovOutliers++
			fmt.Fprintf(os.Stderr, "OOV_OUTLIER: %s: %d OOV / %d tokens (ratio %.3f, median %.3f)\n",
				fr.path, fr.oov, fr.tokens, fr.ratio, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Fields:                  %d\n", stats.fields)
	fmt.Printf("Reconstruction OK:       %d\n", stats.reconOK)
	fmt.Printf("Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Printf("Unaligned:               %d\n", stats.unaligned)
	fmt.Printf("CharFix unstable:        %d\n", stats.fixUnstable)
	fmt.Printf("OOV outliers:            %d\n", stats.oovOutliers)
	fmt.Println()

	totalTokens := 0
	for _, count := range stats.categoryCounts {
		totalTokens += count
	}

	fmt.Println("Category distribution:")
	for _, cat := range classify.Categories() {
		if stats.categoryCounts[cat] == 0 {
			continue
		}
		printCategoryStats(cat, stats.categoryCounts, totalTokens)
	}
}

func printCategoryStats(cat classify.Category, counts map[classify.Category]int, total int) {
	count := counts[cat]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-18s %d  (%.1f%%)\n", cat.String()+":", count, percentage)
}
