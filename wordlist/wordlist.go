// Package wordlist turns a raw list of user-supplied words into the
// processing queue for the generator: it normalizes, validates and orders
// them, and loads word lists from disk.
package wordlist

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("invalid word list")

// ValidationError names every offending word of a word list at once.
type ValidationError struct {
	Size     int
	Invalid  []string
	Oversize []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Invalid) > 0 {
		parts = append(parts, fmt.Sprintf("invalid strings: %s",
			strings.Join(e.Invalid, ", ")))
	}
	if len(e.Oversize) > 0 {
		parts = append(parts, fmt.Sprintf("strings longer than grid size %d: %s",
			e.Size, strings.Join(e.Oversize, ", ")))
	}
	return "word list rejected: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Normalize drops empty strings and uppercases the rest.
func Normalize(words []string) []string {
	upper := cases.Upper(language.Und)
	return lo.FilterMap(words, func(w string, _ int) (string, bool) {
		if w == "" {
			return "", false
		}
		return upper.String(w), true
	})
}

// Validate checks every word and reports all violations together. A word
// can be both invalid and oversize; it is then listed under both.
func Validate(words []string, size int, v Validator) error {
	if v == nil {
		v = StrictValidator{}
	}
	verr := &ValidationError{Size: size}
	for _, w := range words {
		if !v.Valid(w) {
			verr.Invalid = append(verr.Invalid, w)
		}
		if utf8.RuneCountInString(w) > size {
			verr.Oversize = append(verr.Oversize, w)
		}
	}
	if len(verr.Invalid) > 0 || len(verr.Oversize) > 0 {
		return verr
	}
	return nil
}

// Order is the policy for the order words are placed in. Words placed
// earlier have more room; the policy changes how the finished grid looks
// but never whether a placement is legal.
type Order int

const (
	// OrderDescending sorts words in reverse alphabetical order.
	OrderDescending Order = iota
	OrderAscending
	// OrderLongestFirst places long words first, breaking ties in reverse
	// alphabetical order.
	OrderLongestFirst
	// OrderInput keeps the caller's order.
	OrderInput
)

var orderNames = map[Order]string{
	OrderDescending:   "descending",
	OrderAscending:    "ascending",
	OrderLongestFirst: "longest",
	OrderInput:        "input",
}

func (o Order) String() string {
	if n, ok := orderNames[o]; ok {
		return n
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder parses an order policy name as printed by Order.String.
func ParseOrder(s string) (Order, error) {
	for o, n := range orderNames {
		if strings.EqualFold(n, s) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown word order %q; valid orders are %s", s,
		strings.Join(slices.Sorted(slices.Values(lo.Values(orderNames))), ", "))
}

// Queue returns a new slice holding words in the order they will be placed.
func Queue(words []string, order Order) []string {
	q := slices.Clone(words)
	switch order {
	case OrderAscending:
		slices.Sort(q)
	case OrderLongestFirst:
		slices.SortStableFunc(q, func(a, b string) int {
			if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
				return lb - la
			}
			return strings.Compare(b, a)
		})
	case OrderInput:
	default:
		slices.Sort(q)
		slices.Reverse(q)
	}
	return q
}

// Catalog normalizes, validates and orders words for a grid of the given
// size. No queue is returned unless every word is acceptable.
func Catalog(words []string, size int, v Validator, order Order) ([]string, error) {
	normalized := Normalize(words)
	if err := Validate(normalized, size, v); err != nil {
		return nil, err
	}
	return Queue(normalized, order), nil
}
