// wsbench generates the same puzzle repeatedly and reports how long it
// takes and how often it fails.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"slices"
	"time"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/generator"
	"github.com/domino14/wordsearch/stats"
	"github.com/domino14/wordsearch/wordlist"
)

// Used when neither a words file nor words are given.
var defaultWords = []string{
	"ability", "able", "about", "above", "accept", "according", "account",
	"across", "act", "action", "activity", "actually", "add", "address",
	"administration", "admit", "adult", "affect", "after", "again", "against",
}

// gatherWords returns the words file's words plus any given on the command
// line, or the default list if there are none. A size in a YAML words file
// applies unless a size was given explicitly.
func gatherWords(cfg *config.Config) ([]string, error) {
	words := cfg.Args()
	if path := cfg.GetString(config.ConfigWordsFile); path != "" {
		list, err := wordlist.Load(cfg, path)
		if err != nil {
			return nil, err
		}
		if list.Size > 0 && !cfg.Supplied(config.ConfigSize) {
			cfg.Set(config.ConfigSize, list.Size)
		}
		words = slices.Concat(list.Words, words)
	}
	if len(words) == 0 {
		return defaultWords, nil
	}
	return words, nil
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, generator.ErrPlacementExhausted):
		return "exhausted"
	case errors.Is(err, generator.ErrConfig), errors.Is(err, wordlist.ErrValidation):
		return "input"
	}
	return "other"
}

// bench runs iterations generations. Each run gets its own seed so the
// timings cover many different grids.
func bench(ctx context.Context, opts generator.Options, words []string, iterations int) (*stats.RunSummary, error) {
	summary := stats.NewRunSummary()
	for i := range iterations {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		o := opts
		if !o.Entropy {
			o.Seed = opts.Seed + uint64(i)
		}
		start := time.Now()
		_, err := generator.New(o).Generate(ctx, words)
		if err != nil {
			if kind := failureKind(err); kind != "exhausted" {
				return summary, err
			}
			summary.Failure(failureKind(err))
			continue
		}
		summary.Success(time.Since(start))
	}
	return summary, nil
}

func report(w io.Writer, summary *stats.RunSummary, size, numWords int) {
	fmt.Fprintf(w, "grid %dx%d, %d words, %d CPUs, %.1f GB memory\n",
		size, size, numWords, runtime.NumCPU(), float64(memory.TotalMemory())/(1<<30))
	summary.Report(w, 95)
	fmt.Fprintln(w)
	if err := summary.WriteHistogram(w, 12, 50); err != nil {
		log.Err(err).Msg("histogram")
	}
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	log.Logger = logger
	ctx := logger.WithContext(context.Background())

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	words, err := gatherWords(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("loading words")
	}
	opts, err := generator.OptionsFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("bad options")
	}

	iterations := cfg.GetInt(config.ConfigIterations)
	log.Info().Int("iterations", iterations).Int("size", opts.Size).Int("words", len(words)).
		Msg("starting-bench")
	summary, err := bench(ctx, opts, words, iterations)
	if err != nil {
		log.Error().Err(err).Msg("bench-aborted")
	}
	report(os.Stdout, summary, opts.Size, len(words))
}
