package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/generator"
	"github.com/domino14/wordsearch/wordlist"
)

const (
	exitOther      = 1
	exitBadInput   = 2
	exitNoPosition = 3
)

func setupLogger(debug bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	return logger
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, generator.ErrConfig), errors.Is(err, wordlist.ErrValidation):
		return exitBadInput
	case errors.Is(err, generator.ErrPlacementExhausted):
		return exitNoPosition
	}
	return exitOther
}

// gatherWords returns the words given on the command line, plus any in the
// words file. A size in a YAML words file applies unless a size was given
// by flag, environment or config file.
func gatherWords(cfg *config.Config) ([]string, error) {
	words := cfg.Args()
	path := cfg.GetString(config.ConfigWordsFile)
	if path == "" {
		return words, nil
	}
	list, err := wordlist.Load(cfg, path)
	if err != nil {
		return nil, err
	}
	if list.Size > 0 && !cfg.Supplied(config.ConfigSize) {
		cfg.Set(config.ConfigSize, list.Size)
	}
	return slices.Concat(list.Words, words), nil
}

func run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	logger := zerolog.Ctx(ctx)

	words, err := gatherWords(cfg)
	if err != nil {
		return err
	}
	opts, err := generator.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	var logFile *os.File
	if path := cfg.GetString(config.ConfigPlacementLog); path != "" {
		logFile, err = os.Create(path)
		if err != nil {
			return err
		}
		defer logFile.Close()
	}

	attempts := uint(1)
	if opts.Entropy {
		attempts = uint(max(cfg.GetInt(config.ConfigAttempts), 1))
	}

	var puzzle *generator.Puzzle
	err = retry.Do(
		func() error {
			// Each attempt logs into its own buffer; only the attempt that
			// succeeds reaches the file.
			var attemptLog bytes.Buffer
			o := opts
			if logFile != nil {
				o.LogStream = &attemptLog
			}
			p, err := generator.New(o).Generate(ctx, words)
			if err != nil {
				return err
			}
			puzzle = p
			if logFile != nil {
				if _, err := attemptLog.WriteTo(logFile); err != nil {
					return err
				}
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(0),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, generator.ErrPlacementExhausted)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.Info().Err(err).Uint("attempt", n+1).Msg("placement-failed-retrying")
		}),
	)
	if err != nil {
		return err
	}

	if cfg.GetBool(config.ConfigShowPlacements) {
		for _, pw := range puzzle.Placed {
			logger.Info().Str("word", pw.Word).Stringer("anchor", pw.Anchor).
				Stringer("dir", pw.Dir).Msg("placement")
		}
	}
	logger.Info().Int("size", puzzle.Size).Int("words", len(puzzle.Placed)).
		Uint64("seed", puzzle.Seed).Msg("generated")
	_, err = io.WriteString(stdout, puzzle.ToDisplayText(cfg.GetString(config.ConfigDelimiter)))
	return err
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitBadInput)
	}
	logger := setupLogger(cfg.GetBool(config.ConfigDebug))
	logger.Debug().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	ctx = logger.WithContext(ctx)

	err := run(ctx, cfg, os.Stdout)
	stop()
	if err != nil {
		logger.Error().Err(err).Msg("generation-failed")
		pprof.StopCPUProfile()
		os.Exit(exitCode(err))
	}
}
