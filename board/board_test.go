package board

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0, 0))
}

func TestNewGrid(t *testing.T) {
	is := is.New(t)
	g := NewGrid(7, newRand())
	is.Equal(g.Dim(), 7)
	for y := range 7 {
		for x := range 7 {
			c := Coord{x, y}
			is.Equal(g.PlacementAt(c), Blank)
			is.True(strings.ContainsRune(Alphabet, g.DisplayAt(c)))
		}
	}
}

func TestNewGridReproducible(t *testing.T) {
	is := is.New(t)
	g1 := NewGrid(10, newRand())
	g2 := NewGrid(10, newRand())
	is.Equal(g1.ToDisplayText(" "), g2.ToDisplayText(" "))
	is.Equal(g1.Fingerprint(), g2.Fingerprint())
}

func TestInBounds(t *testing.T) {
	is := is.New(t)
	g := NewGrid(5, newRand())
	is.True(g.InBounds(Coord{0, 0}))
	is.True(g.InBounds(Coord{4, 4}))
	is.True(!g.InBounds(Coord{5, 0}))
	is.True(!g.InBounds(Coord{0, -1}))
}

func TestPlacementOutOfBoundsPanics(t *testing.T) {
	is := is.New(t)
	g := NewGrid(5, newRand())
	defer func() {
		is.True(recover() != nil)
	}()
	g.PlacementAt(Coord{5, 5})
}

func TestOverlay(t *testing.T) {
	is := is.New(t)
	g := NewGrid(5, newRand())
	before := g.Rows()

	g.SetPlacement(Coord{1, 2}, 'Q')
	g.SetPlacement(Coord{2, 2}, 'I')
	// Nothing reaches the display board until the overlay.
	is.Equal(g.Rows(), before)

	g.Overlay()
	after := g.Rows()
	for y := range 5 {
		for x := range 5 {
			switch (Coord{x, y}) {
			case Coord{1, 2}:
				is.Equal(after[y][x], 'Q')
			case Coord{2, 2}:
				is.Equal(after[y][x], 'I')
			default:
				is.Equal(after[y][x], before[y][x])
			}
		}
	}
}

func TestRowsIsACopy(t *testing.T) {
	is := is.New(t)
	g := NewGrid(5, newRand())
	rows := g.Rows()
	orig := rows[0][0]
	rows[0][0] = '#'
	is.Equal(g.DisplayAt(Coord{0, 0}), orig)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	rows := [][]rune{[]rune("ABC"), []rune("DEF"), []rune("GHI")}
	is.Equal(RenderRows(rows, " "), "A B C\nD E F\nG H I\n")
	is.Equal(RenderRows(rows, ""), "ABC\nDEF\nGHI\n")
}

func TestDirections(t *testing.T) {
	is := is.New(t)
	seen := map[Direction]bool{}
	for _, d := range Directions {
		is.True(d.Valid())
		is.True(d.DX != 0 || d.DY != 0)
		is.True(d.Opposite().Valid())
		parsed, err := ParseDirection(d.String())
		is.NoErr(err)
		is.Equal(parsed, d)
		seen[d] = true
	}
	is.Equal(len(seen), 8)
	is.True(!(Direction{0, 0}).Valid())
	is.Equal(Coord{2, 3}.Step(NorthWest, 2), Coord{0, 1})
}

func TestDirectionYAML(t *testing.T) {
	is := is.New(t)
	type entry struct {
		Dir Direction `yaml:"dir"`
	}
	out, err := yaml.Marshal(entry{Dir: SouthWest})
	is.NoErr(err)
	is.Equal(string(out), "dir: SW\n")

	var e entry
	is.NoErr(yaml.Unmarshal(out, &e))
	is.Equal(e.Dir, SouthWest)

	is.True(yaml.Unmarshal([]byte("dir: UP\n"), &e) != nil)
	_, err = yaml.Marshal(entry{Dir: Direction{2, 0}})
	is.True(err != nil)
}

func BenchmarkNewGrid(b *testing.B) {
	rng := newRand()
	for b.Loop() {
		NewGrid(200, rng)
	}
}
