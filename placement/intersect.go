package placement

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordsearch/board"
)

// CrossingDirections returns the directions a word may take when it
// crosses a word placed along d. A direction is excluded if either of its
// components matches the same component of d or of its opposite, so a
// horizontal word can only be crossed vertically and vice versa, and a
// diagonal word cannot be crossed at all.
func CrossingDirections(d board.Direction) []board.Direction {
	opp := d.Opposite()
	return lo.Filter(board.Directions[:], func(c board.Direction, _ int) bool {
		return c.DX != d.DX && c.DX != opp.DX && c.DY != d.DY && c.DY != opp.DY
	})
}

// intersectWith finds every position for word that crosses placed at a
// letter the two words share. It only reads from g.
func intersectWith(g *board.Grid, word []rune, placed PlacedWord, via int) ([]Candidate, error) {
	placedLetters := []rune(placed.Word)
	shared := lo.Keyify(lo.Intersect(lo.Uniq(word), placedLetters))
	if len(shared) == 0 {
		return nil, nil
	}
	dirs := CrossingDirections(placed.Dir)
	if len(dirs) == 0 {
		return nil, nil
	}

	var cands []Candidate
	for m, letter := range placedLetters {
		if _, ok := shared[letter]; !ok {
			continue
		}
		cross := placed.CellAt(m)
		if !g.InBounds(cross) || g.PlacementAt(cross) != letter {
			return nil, &InternalInconsistencyError{
				Detail: fmt.Sprintf("placed word %v expects %c at %v", placed, letter, cross),
			}
		}
		for j, wl := range word {
			if wl != letter {
				continue
			}
			for _, d := range dirs {
				anchor := cross.Step(d, -j)
				if !Fits(g, word, anchor, d, false) {
					continue
				}
				cands = append(cands, Candidate{
					Anchor: anchor,
					Dir:    d,
					Source: SourceIntersection,
					Via:    via,
				})
			}
		}
	}
	return cands, nil
}

// IntersectionSearch returns every position for word that crosses one of
// the placed words at a shared letter. Each placed word is scanned on its
// own goroutine (at most workers at a time). g must not be modified until
// the search returns.
//
// The pool is in placed-word order with duplicates removed, regardless of
// how the scans were scheduled, so a seeded draw from it is reproducible.
func IntersectionSearch(ctx context.Context, g *board.Grid, word string,
	placed []PlacedWord, workers int) ([]Candidate, error) {

	if len(placed) == 0 {
		return nil, nil
	}
	letters := []rune(word)
	results := make([][]Candidate, len(placed))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, pw := range placed {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cands, err := intersectWith(g, letters, pw, i)
			if err != nil {
				return err
			}
			results[i] = cands
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return lo.UniqBy(lo.Flatten(results), Candidate.key), nil
}
