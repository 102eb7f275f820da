package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug             = "debug"
	ConfigSize              = "size"
	ConfigEntropy           = "entropy"
	ConfigSeed              = "seed"
	ConfigWorkers           = "workers"
	ConfigOrder             = "order"
	ConfigValidation        = "validation"
	ConfigStrictFreeOverlap = "strict-free-overlap"
	ConfigDelimiter         = "delimiter"
	ConfigAttempts          = "attempts"
	ConfigPlacementLog      = "placement-log"
	ConfigShowPlacements    = "show-placements"
	ConfigWordsFile         = "words-file"
	ConfigIterations        = "iterations"
	ConfigCPUProfile        = "cpu-profile"
	ConfigFile              = "config-file"
)

// Config wraps a viper instance. Values come from (in decreasing priority)
// command-line flags, WORDSEARCH_* environment variables, an optional config
// file, and the defaults below.
type Config struct {
	*viper.Viper
	args  []string
	flags *pflag.FlagSet
}

const envPrefix = "wordsearch"

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigSize, 15)
	v.SetDefault(ConfigEntropy, false)
	v.SetDefault(ConfigSeed, 0)
	v.SetDefault(ConfigWorkers, runtime.NumCPU())
	v.SetDefault(ConfigOrder, "descending")
	v.SetDefault(ConfigValidation, "strict")
	v.SetDefault(ConfigStrictFreeOverlap, false)
	v.SetDefault(ConfigDelimiter, " ")
	v.SetDefault(ConfigAttempts, 1)
	v.SetDefault(ConfigPlacementLog, "")
	v.SetDefault(ConfigShowPlacements, false)
	v.SetDefault(ConfigWordsFile, "")
	v.SetDefault(ConfigIterations, 100)
	v.SetDefault(ConfigCPUProfile, "")
	v.SetDefault(ConfigFile, "")
}

// DefaultConfig returns a config holding only the defaults (plus anything
// set in the environment).
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	setDefaults(c.Viper)
	c.bindEnv()
	return c
}

func (c *Config) bindEnv() {
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
}

// Load parses args as flags. Positional arguments are kept and returned by
// Args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("wordsearch", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigSize, 15, "grid dimension (minimum 5)")
	fs.Bool(ConfigEntropy, false, "seed the random stream from system entropy instead of -seed")
	fs.Uint64(ConfigSeed, 0, "seed for reproducible generation")
	fs.Int(ConfigWorkers, runtime.NumCPU(), "goroutines used for intersection search")
	fs.String(ConfigOrder, "descending", "word placement order: descending, ascending, longest, input")
	fs.String(ConfigValidation, "strict", "word validation: strict (A-Z only) or contains (any letter)")
	fs.Bool(ConfigStrictFreeOverlap, false, "free placements may not overlap existing letters")
	fs.String(ConfigDelimiter, " ", "separator printed between letters of a row")
	fs.Int(ConfigAttempts, 1, "fresh attempts to make when a word cannot be placed (entropy mode only)")
	fs.String(ConfigPlacementLog, "", "write a YAML log of placement decisions to this file")
	fs.Bool(ConfigShowPlacements, false, "log where each word was placed")
	fs.String(ConfigWordsFile, "", "file to load words from (text, or YAML with size and words)")
	fs.Int(ConfigIterations, 100, "iterations for the benchmark harness")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigFile, "", "optional config file (yaml, json or toml)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	c.flags = fs
	c.bindEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	if cf := c.GetString(ConfigFile); cf != "" {
		c.SetConfigFile(cf)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cf, err)
		}
	}
	return nil
}

// Args returns the positional arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

// Supplied returns whether key was set by a flag, the environment or the
// config file, as opposed to falling back to its default.
func (c *Config) Supplied(key string) bool {
	if c.flags != nil && c.flags.Changed(key) {
		return true
	}
	envName := strings.ToUpper(envPrefix + "_" + strings.ReplaceAll(key, "-", "_"))
	if _, ok := os.LookupEnv(envName); ok {
		return true
	}
	return c.InConfig(key)
}

// SanitizedSettings is meant for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
