package generator

import (
	"io"
	"runtime"

	"github.com/domino14/wordsearch/board"
	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/wordlist"
)

// Options configures a Generator.
type Options struct {
	Size int
	// Entropy seeds each run from system randomness. Otherwise every run
	// uses Seed and identical inputs give identical grids.
	Entropy bool
	Seed    uint64
	// Workers bounds the goroutines used by the intersection search.
	Workers           int
	Order             wordlist.Order
	Validator         wordlist.Validator
	StrictFreeOverlap bool
	// LogStream, if set, receives a YAML log of every placement.
	LogStream io.Writer
}

func DefaultOptions() Options {
	return Options{
		Size:      15,
		Workers:   runtime.NumCPU(),
		Order:     wordlist.OrderDescending,
		Validator: wordlist.StrictValidator{},
	}
}

// OptionsFromConfig reads generator options from cfg. LogStream is left for
// the caller to set since it usually needs a file opened.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	order, err := wordlist.ParseOrder(cfg.GetString(config.ConfigOrder))
	if err != nil {
		return Options{}, err
	}
	validator, err := wordlist.ValidatorFor(cfg.GetString(config.ConfigValidation))
	if err != nil {
		return Options{}, err
	}
	return Options{
		Size:              cfg.GetInt(config.ConfigSize),
		Entropy:           cfg.GetBool(config.ConfigEntropy),
		Seed:              cfg.GetUint64(config.ConfigSeed),
		Workers:           max(cfg.GetInt(config.ConfigWorkers), 1),
		Order:             order,
		Validator:         validator,
		StrictFreeOverlap: cfg.GetBool(config.ConfigStrictFreeOverlap),
	}, nil
}

func checkConfig(size, numWords int) error {
	if size < board.MinSize {
		return &ConfigError{Size: size, NumWords: numWords,
			Reason: "size must be at least 5"}
	}
	if numWords > size*size {
		return &ConfigError{Size: size, NumWords: numWords,
			Reason: "the number of words must not exceed size squared"}
	}
	return nil
}
