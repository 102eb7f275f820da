// Package generator builds word-search grids. Words are placed one at a
// time; each word either crosses a word that is already down, or goes
// anywhere it fits. There is no backtracking: if some word has nowhere to
// go, the whole run fails.
package generator

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/domino14/wordsearch/board"
	"github.com/domino14/wordsearch/placement"
	"github.com/domino14/wordsearch/wordlist"
)

// A Puzzle is a finished grid along with where each word went.
type Puzzle struct {
	Size int
	// Seed is the seed the random stream was created with. Passing it back
	// with Entropy off reproduces the puzzle.
	Seed   uint64
	Rows   [][]rune
	Placed []placement.PlacedWord

	grid *board.Grid
}

// ToDisplayText renders the grid one row per line.
func (p *Puzzle) ToDisplayText(delim string) string {
	return board.RenderRows(p.Rows, delim)
}

func (p *Puzzle) String() string {
	return p.ToDisplayText(" ")
}

func (p *Puzzle) Fingerprint() uint64 {
	return p.grid.Fingerprint()
}

type Generator struct {
	opts Options
}

func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate is the simplest entry point: a grid of the given size from a
// fixed seed, or from system entropy.
func Generate(ctx context.Context, words []string, entropy bool, size int) (*Puzzle, error) {
	opts := DefaultOptions()
	opts.Size = size
	opts.Entropy = entropy
	return New(opts).Generate(ctx, words)
}

func (g *Generator) Options() Options {
	return g.opts
}

func (g *Generator) newRand() (uint64, *rand.Rand) {
	seed := g.opts.Seed
	if g.opts.Entropy {
		var b [8]byte
		frand.Read(b[:])
		seed = binary.LittleEndian.Uint64(b[:])
	}
	return seed, rand.New(rand.NewPCG(seed, seed))
}

// choose picks where the word goes. An intersection is taken half the time
// there is one; otherwise any free position. These are the only random
// draws made after the grid is filled.
func choose(rng *rand.Rand, word string, inter, free []placement.Candidate) (placement.Candidate, error) {
	if len(inter) > 0 && rng.Float64() < 0.5 {
		return inter[rng.IntN(len(inter))], nil
	}
	if len(free) > 0 {
		return free[rng.IntN(len(free))], nil
	}
	// Only reachable with strict free overlap, where the free search skips
	// every shared cell.
	if len(inter) > 0 {
		return inter[rng.IntN(len(inter))], nil
	}
	return placement.Candidate{}, &PlacementExhaustedError{Word: word}
}

func commit(grid *board.Grid, word string, c placement.Candidate) placement.PlacedWord {
	pw := placement.PlacedWord{Word: word, Anchor: c.Anchor, Dir: c.Dir}
	for k, r := range []rune(word) {
		grid.SetPlacement(pw.CellAt(k), r)
	}
	return pw
}

// Generate places every word and returns the finished puzzle. Nothing is
// returned unless every word was placed.
func (g *Generator) Generate(ctx context.Context, words []string) (*Puzzle, error) {
	logger := zerolog.Ctx(ctx)
	size := g.opts.Size

	if err := checkConfig(size, len(words)); err != nil {
		return nil, err
	}
	queue, err := wordlist.Catalog(words, size, g.opts.Validator, g.opts.Order)
	if err != nil {
		return nil, err
	}

	tstart := time.Now()
	seed, rng := g.newRand()
	grid := board.NewGrid(size, rng)
	placed := make([]placement.PlacedWord, 0, len(queue))
	logger.Debug().Int("size", size).Int("words", len(queue)).Uint64("seed", seed).
		Msg("starting-generation")

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		word := queue[0]

		inter, err := placement.IntersectionSearch(ctx, grid, word, placed, g.opts.Workers)
		if err != nil {
			return nil, fmt.Errorf("searching intersections for %s: %w", word, err)
		}
		free := placement.FreeSearch(grid, word, g.opts.StrictFreeOverlap)

		choice, err := choose(rng, word, inter, free)
		if err != nil {
			logger.Debug().Str("word", word).Int("placed", len(placed)).Msg("placement-exhausted")
			return nil, err
		}
		pw := commit(grid, word, choice)
		placed = append(placed, pw)
		queue = queue[1:]

		logger.Debug().Str("word", word).Stringer("anchor", pw.Anchor).
			Stringer("dir", pw.Dir).Stringer("source", choice.Source).
			Int("intersections", len(inter)).Int("free", len(free)).
			Msg("placed-word")
		if g.opts.LogStream != nil {
			if err := writeLogPlacement(g.opts.LogStream, pw, choice, len(inter), len(free)); err != nil {
				logger.Error().Err(err).Msg("writing placement log")
			}
		}
	}

	grid.Overlay()
	logger.Debug().Dur("elapsed", time.Since(tstart)).Uint64("fingerprint", grid.Fingerprint()).
		Msg("generated-grid")

	return &Puzzle{
		Size:   size,
		Seed:   seed,
		Rows:   grid.Rows(),
		Placed: placed,
		grid:   grid,
	}, nil
}
