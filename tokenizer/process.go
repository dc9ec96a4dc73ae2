package tokenizer

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/az-ai-labs/ts-tokenizer/classify"
)

// ErrEmptyInput is returned by Process when the input holds no tokens.
var ErrEmptyInput = errors.New("tokenizer: empty input")

const (
	defaultProgressEvery = 10_000
	scanBufSize          = 64 << 10
	maxLineBytes         = 16 << 20
	queuePerWorker       = 4
)

// ProcessOptions configures Process.
type ProcessOptions struct {
	Format  Format
	Workers int // values below 1 mean one worker

	// Progress, when set, is called from the writing goroutine every
	// ProgressEvery lines with the number of lines written so far.
	Progress      func(lines int)
	ProgressEvery int
}

// Stats summarizes a Process run.
type Stats struct {
	Lines      int
	Tokens     int
	Categories map[classify.Category]int
}

type rendered struct {
	text   string
	blank  bool
	counts map[classify.Category]int
	tokens int
}

type job struct {
	line string
	out  chan rendered
}

// Process reads r line by line, classifies each line on opts.Workers
// goroutines and writes the rendered lines to w in input order.
//
// Cancelling ctx stops reading; lines already queued are dropped and the
// context error is returned.
func (t *Tokenizer) Process(ctx context.Context, r io.Reader, w io.Writer, opts ProcessOptions) (Stats, error) {
	workers := max(opts.Workers, 1)
	every := opts.ProgressEvery
	if every <= 0 {
		every = defaultProgressEvery
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job, workers*queuePerWorker)
	order := make(chan chan rendered, workers*queuePerWorker)

	var readErr error
	go func() {
		defer close(order)
		defer close(jobs)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, scanBufSize), maxLineBytes)
		for sc.Scan() {
			j := job{line: sc.Text(), out: make(chan rendered, 1)}
			select {
			case jobs <- j:
			case <-ctx.Done():
				return
			}
			select {
			case order <- j.out:
			case <-ctx.Done():
				return
			}
		}
		readErr = sc.Err()
	}()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				j.out <- t.render(j.line, opts.Format)
			}
		}()
	}

	bw := bufio.NewWriter(w)
	stats := Stats{Categories: make(map[classify.Category]int)}
	var writeErr error
	for out := range order {
		var res rendered
		select {
		case res = <-out:
		case <-ctx.Done():
			continue
		}
		if writeErr != nil {
			continue
		}
		stats.Lines++
		stats.Tokens += res.tokens
		for cat, n := range res.counts {
			stats.Categories[cat] += n
		}
		if !res.blank || opts.Format.keepsBlankLines() {
			if _, err := bw.WriteString(res.text + "\n"); err != nil {
				writeErr = err
				cancel()
				continue
			}
		}
		if opts.Progress != nil && stats.Lines%every == 0 {
			opts.Progress(stats.Lines)
		}
	}
	wg.Wait()

	if writeErr != nil {
		return stats, errors.Wrap(writeErr, "write output")
	}
	if err := bw.Flush(); err != nil {
		return stats, errors.Wrap(err, "flush output")
	}
	if err := parent.Err(); err != nil {
		return stats, err
	}
	if readErr != nil {
		return stats, errors.Wrap(readErr, "read input")
	}
	if stats.Tokens == 0 {
		return stats, ErrEmptyInput
	}
	return stats, nil
}

func (t *Tokenizer) render(line string, f Format) rendered {
	if strings.TrimSpace(line) == "" {
		return rendered{text: Render(nil, f), blank: true}
	}
	tokens := t.Line(line)
	counts := make(map[classify.Category]int)
	for _, tok := range tokens {
		counts[tok.Tag]++
	}
	return rendered{
		text:   Render(tokens, f),
		blank:  len(tokens) == 0,
		counts: counts,
		tokens: len(tokens),
	}
}
