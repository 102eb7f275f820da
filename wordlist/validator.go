package wordlist

import (
	"fmt"
	"regexp"
)

// A Validator decides whether a normalized word may be hidden in a grid.
type Validator interface {
	Valid(word string) bool
}

var (
	wholeWordRegex = regexp.MustCompile(`^[A-Z]+$`)
	anyLetterRegex = regexp.MustCompile(`[a-zA-Z]+`)
)

// StrictValidator accepts only words made entirely of the letters A-Z.
type StrictValidator struct{}

func (StrictValidator) Valid(word string) bool {
	return wholeWordRegex.MatchString(word)
}

// ContainsValidator accepts any word with at least one ASCII letter in it.
// Words it accepts may put non-letters on the board.
type ContainsValidator struct{}

func (ContainsValidator) Valid(word string) bool {
	return anyLetterRegex.MatchString(word)
}

// ValidatorFor returns the validator registered under name.
func ValidatorFor(name string) (Validator, error) {
	switch name {
	case "", "strict":
		return StrictValidator{}, nil
	case "contains":
		return ContainsValidator{}, nil
	}
	return nil, fmt.Errorf("unknown validation mode %q (want strict or contains)", name)
}
