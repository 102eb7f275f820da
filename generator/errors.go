package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is matched by every *ConfigError.
	ErrConfig = errors.New("bad generator configuration")
	// ErrPlacementExhausted is matched by every *PlacementExhaustedError.
	ErrPlacementExhausted = errors.New("no room for word")
)

// ConfigError is returned before any other work when the grid is too small
// or there are more words than cells.
type ConfigError struct {
	Size     int
	NumWords int
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bad configuration (size %d, %d words): %s", e.Size, e.NumWords, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// PlacementExhaustedError means no legal position was left for Word. The
// whole generation is abandoned; the caller may retry with a bigger grid or
// fewer words.
type PlacementExhaustedError struct {
	Word string
}

func (e *PlacementExhaustedError) Error() string {
	return fmt.Sprintf("could not find a position for %s on the board", e.Word)
}

func (e *PlacementExhaustedError) Is(target error) bool {
	return target == ErrPlacementExhausted
}
