// Command tstokenizer classifies and segments Turkish text.
//
// Usage:
//
//	tstokenizer [flags] [file]
//	tstokenizer -w -o tagged "Merhaba, dünya!"
//	tstokenizer serve --addr :8080
//
// Without a file argument the text is read from standard input.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/az-ai-labs/ts-tokenizer/classify"
	"github.com/az-ai-labs/ts-tokenizer/internal/config"
	"github.com/az-ai-labs/ts-tokenizer/lexicon"
	"github.com/az-ai-labs/ts-tokenizer/tokenizer"
)

var (
	errNoInput    = errors.New("no input: give a file or pipe text on stdin")
	errWordNoText = errors.New("-w needs the text to classify")
)

// options are the command-line settings shared by all commands.
type options struct {
	configPath string
	cfg        config.Config
	word       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tstokenizer: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "tstokenizer [flags] [file]",
		Short:         "Rule-based Turkish tokenizer and token classifier",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringVar(&opts.cfg.DataDir, "data", opts.cfg.DataDir, "directory with lexicon files (default embedded)")
	pf.IntVar(&opts.cfg.CacheSize, "cache", opts.cfg.CacheSize, "token cache size (0 disables)")
	pf.BoolVarP(&opts.cfg.Verbose, "verbose", "v", opts.cfg.Verbose, "verbose logging and progress")

	f := root.Flags()
	f.StringVarP(&opts.cfg.Output, "output", "o", opts.cfg.Output,
		"output format: "+strings.Join(tokenizer.FormatNames(), ", "))
	f.IntVarP(&opts.cfg.Workers, "workers", "j", opts.cfg.Workers, "number of worker goroutines")
	f.BoolVarP(&opts.word, "word", "w", false, "classify the text given as arguments")

	root.AddCommand(newServeCmd(opts))
	return root
}

// resolve applies the config file under explicitly set flags and sets up
// logging.
func (o *options) resolve(cmd *cobra.Command) error {
	if o.configPath != "" {
		fileCfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("data") {
			o.cfg.DataDir = fileCfg.DataDir
		}
		if !flags.Changed("cache") {
			o.cfg.CacheSize = fileCfg.CacheSize
		}
		if !flags.Changed("verbose") {
			o.cfg.Verbose = fileCfg.Verbose
		}
		if f := flags.Lookup("output"); f == nil || !f.Changed {
			o.cfg.Output = fileCfg.Output
		}
		if f := flags.Lookup("workers"); f == nil || !f.Changed {
			o.cfg.Workers = fileCfg.Workers
		}
		if f := flags.Lookup("addr"); f == nil || !f.Changed {
			o.cfg.Addr = fileCfg.Addr
		}
		o.cfg.MaxTokenBytes = fileCfg.MaxTokenBytes
	}

	level := zerolog.InfoLevel
	if o.cfg.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: !isTerminal(os.Stderr)})

	return o.cfg.Validate()
}

// newTokenizer loads the lexicon and builds the tokenizer.
func (o *options) newTokenizer() (*tokenizer.Tokenizer, error) {
	var (
		lex *lexicon.Lexicon
		err error
	)
	if o.cfg.DataDir == "" {
		lex, err = lexicon.Default()
	} else {
		lex, err = lexicon.LoadDir(o.cfg.DataDir)
	}
	if err != nil {
		return nil, errors.Wrap(err, "load lexicon")
	}
	c, err := classify.New(lex, classify.WithMaxTokenBytes(o.cfg.MaxTokenBytes))
	if err != nil {
		return nil, err
	}
	return tokenizer.New(c, tokenizer.Options{CacheSize: o.cfg.CacheSize}), nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	format, err := opts.cfg.Format()
	if err != nil {
		return err
	}
	t, err := opts.newTokenizer()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if opts.word {
		if len(args) == 0 {
			return errWordNoText
		}
		_, err := fmt.Fprintln(out, t.FormatLine(strings.Join(args, " "), format))
		return err
	}

	in, closeIn, err := openInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	defer closeIn()

	popts := tokenizer.ProcessOptions{Format: format, Workers: opts.cfg.Workers}
	if opts.cfg.Verbose {
		popts.Progress = func(lines int) {
			log.Info().Int("lines", lines).Msg("processing")
		}
	}
	stats, err := t.Process(cmd.Context(), in, out, popts)
	if err != nil {
		return err
	}

	ev := log.Debug().Int("lines", stats.Lines).Int("tokens", stats.Tokens)
	for _, cat := range classify.Categories() {
		if n := stats.Categories[cat]; n > 0 {
			ev = ev.Int(cat.String(), n)
		}
	}
	ev.Msg("done")
	return nil
}

// openInput returns the named file, or stdin when no file is named and
// stdin is not a terminal.
func openInput(stdin io.Reader, args []string) (io.Reader, func(), error) {
	switch len(args) {
	case 0:
		if f, ok := stdin.(*os.File); ok && isTerminal(f) {
			return nil, nil, errNoInput
		}
		return stdin, func() {}, nil
	case 1:
		f, err := os.Open(filepath.Clean(args[0]))
		if err != nil {
			return nil, nil, errors.Wrap(err, "open input")
		}
		return f, func() { _ = f.Close() }, nil
	default:
		return nil, nil, errors.Errorf("expected at most one file, got %d", len(args))
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
