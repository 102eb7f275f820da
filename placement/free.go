package placement

import "github.com/domino14/wordsearch/board"

// FreeSearch returns every position for word that fits the grid, whether or
// not it touches a placed word. Cells already holding the same letter may
// be shared unless strict is set.
//
// The pool is ordered by direction (in board.Directions order), then row,
// then column.
func FreeSearch(g *board.Grid, word string, strict bool) []Candidate {
	letters := []rune(word)
	dim := g.Dim()
	var cands []Candidate
	for _, d := range board.Directions {
		for y := 0; y < dim; y++ {
			for x := 0; x < dim; x++ {
				anchor := board.Coord{X: x, Y: y}
				if !Fits(g, letters, anchor, d, strict) {
					continue
				}
				cands = append(cands, Candidate{
					Anchor: anchor,
					Dir:    d,
					Source: SourceFree,
					Via:    -1,
				})
			}
		}
	}
	return cands
}
