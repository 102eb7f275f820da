package board

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/cespare/xxhash"
)

// Blank marks a placement-board cell that no committed word covers.
const Blank = ' '

// Alphabet holds the filler letters for the display board.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MinSize is the smallest grid we will generate.
const MinSize = 5

// A Grid is the main board structure. It holds two boards of the same
// dimension: the placement board tracks only committed word letters, and
// the display board starts out full of random filler letters and becomes
// the rendered puzzle once Overlay is called.
type Grid struct {
	size      int
	placement [][]rune
	display   [][]rune
}

// NewGrid creates a size x size grid. Every display cell is drawn from rng
// (row by row, left to right); every placement cell starts out Blank.
func NewGrid(size int, rng *rand.Rand) *Grid {
	g := &Grid{
		size:      size,
		placement: make([][]rune, size),
		display:   make([][]rune, size),
	}
	for y := 0; y < size; y++ {
		g.placement[y] = make([]rune, size)
		g.display[y] = make([]rune, size)
		for x := 0; x < size; x++ {
			g.placement[y][x] = Blank
			g.display[y][x] = rune(Alphabet[rng.IntN(len(Alphabet))])
		}
	}
	return g
}

// Dim is the dimension of the grid. It is always square.
func (g *Grid) Dim() int {
	return g.size
}

// InBounds returns whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// PlacementAt returns the committed letter at c, or Blank. The caller must
// ensure c is in bounds; an out-of-bounds coordinate is a bug, not a blank.
func (g *Grid) PlacementAt(c Coord) rune {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("placement lookup out of bounds: %v (dim %d)", c, g.size))
	}
	return g.placement[c.Y][c.X]
}

// SetPlacement writes a committed letter into the placement board.
func (g *Grid) SetPlacement(c Coord, letter rune) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("placement write out of bounds: %v (dim %d)", c, g.size))
	}
	g.placement[c.Y][c.X] = letter
}

// DisplayAt returns the letter currently shown at c.
func (g *Grid) DisplayAt(c Coord) rune {
	return g.display[c.Y][c.X]
}

// Overlay copies every non-blank placement cell onto the display board.
func (g *Grid) Overlay() {
	for y := range g.size {
		for x := range g.size {
			if g.placement[y][x] != Blank {
				g.display[y][x] = g.placement[y][x]
			}
		}
	}
}

// Rows returns a copy of the display board, top row first.
func (g *Grid) Rows() [][]rune {
	rows := make([][]rune, g.size)
	for y := range g.size {
		rows[y] = make([]rune, g.size)
		copy(rows[y], g.display[y])
	}
	return rows
}

// ToDisplayText renders the display board one row per line, with letters
// separated by delim.
func (g *Grid) ToDisplayText(delim string) string {
	return RenderRows(g.display, delim)
}

// Fingerprint hashes the rendered display board. Two grids with the same
// letters in the same cells have the same fingerprint.
func (g *Grid) Fingerprint() uint64 {
	return xxhash.Sum64String(g.ToDisplayText(""))
}

// RenderRows renders rows of letters, one row per line.
func RenderRows(rows [][]rune, delim string) string {
	var sb strings.Builder
	letters := make([]string, 0, len(rows))
	for _, row := range rows {
		letters = letters[:0]
		for _, r := range row {
			letters = append(letters, string(r))
		}
		sb.WriteString(strings.Join(letters, delim))
		sb.WriteString("\n")
	}
	return sb.String()
}
