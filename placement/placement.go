// Package placement finds the legal positions for a word on a grid. It
// never modifies the grid; the generator commits the position it picks.
package placement

import (
	"errors"
	"fmt"

	"github.com/domino14/wordsearch/board"
)

// ErrInternalInconsistency is matched by every *InternalInconsistencyError.
var ErrInternalInconsistency = errors.New("internal inconsistency")

// InternalInconsistencyError means the search found the grid and the record
// of placed words disagreeing. It is a bug, never a problem with the input.
type InternalInconsistencyError struct {
	Detail string
}

func (e *InternalInconsistencyError) Error() string {
	return "internal inconsistency: " + e.Detail
}

func (e *InternalInconsistencyError) Is(target error) bool {
	return target == ErrInternalInconsistency
}

// A PlacedWord is a word committed to the grid. It is never moved or
// removed once placed.
type PlacedWord struct {
	Word   string
	Anchor board.Coord
	Dir    board.Direction
}

// CellAt returns the coordinate of the k-th letter.
func (p PlacedWord) CellAt(k int) board.Coord {
	return p.Anchor.Step(p.Dir, k)
}

func (p PlacedWord) String() string {
	return fmt.Sprintf("%s %v %v", p.Word, p.Anchor, p.Dir)
}

// Source records which search produced a candidate.
type Source uint8

const (
	SourceFree Source = iota
	SourceIntersection
)

func (s Source) String() string {
	if s == SourceIntersection {
		return "intersection"
	}
	return "free"
}

// A Candidate is a position proposed for the word being placed.
type Candidate struct {
	Anchor board.Coord
	Dir    board.Direction
	Source Source
	// Via is the index of the placed word an intersection candidate
	// crosses. It is -1 for free candidates.
	Via int
}

func (c Candidate) key() [4]int {
	return [4]int{c.Anchor.X, c.Anchor.Y, c.Dir.DX, c.Dir.DY}
}

// Fits returns whether word can be written at anchor along d: every cell is
// in bounds and either blank or already holds the same letter. With
// strict set, every cell must be blank.
func Fits(g *board.Grid, word []rune, anchor board.Coord, d board.Direction, strict bool) bool {
	if !g.InBounds(anchor) || !g.InBounds(anchor.Step(d, len(word)-1)) {
		return false
	}
	for k, letter := range word {
		existing := g.PlacementAt(anchor.Step(d, k))
		if existing == board.Blank {
			continue
		}
		if strict || existing != letter {
			return false
		}
	}
	return true
}
