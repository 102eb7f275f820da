package board

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Coord is an (x, y) cell position; x grows to the right, y grows down.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y}
}

// Step returns c moved k steps along d.
func (c Coord) Step(d Direction, k int) Coord {
	return Coord{c.X + k*d.DX, c.Y + k*d.DY}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// A Direction is a unit step a word is read along. Both components are in
// {-1, 0, 1} and they are never both zero.
type Direction struct {
	DX int
	DY int
}

var (
	East      = Direction{1, 0}
	NorthEast = Direction{1, -1}
	North     = Direction{0, -1}
	NorthWest = Direction{-1, -1}
	West      = Direction{-1, 0}
	SouthWest = Direction{-1, 1}
	South     = Direction{0, 1}
	SouthEast = Direction{1, 1}
)

// Directions lists all eight directions. The order is fixed; searches
// iterate it in this order so candidate pools are reproducible.
var Directions = [8]Direction{
	East, NorthEast, North, NorthWest, West, SouthWest, South, SouthEast,
}

var directionNames = map[Direction]string{
	East:      "E",
	NorthEast: "NE",
	North:     "N",
	NorthWest: "NW",
	West:      "W",
	SouthWest: "SW",
	South:     "S",
	SouthEast: "SE",
}

func (d Direction) Opposite() Direction {
	return Direction{-d.DX, -d.DY}
}

// Valid returns whether d is one of the eight Directions.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// ParseDirection is the inverse of Direction.String for valid directions.
func ParseDirection(s string) (Direction, error) {
	for d, n := range directionNames {
		if n == s {
			return d, nil
		}
	}
	return Direction{}, fmt.Errorf("unknown direction %q", s)
}

// MarshalYAML writes a direction by its short name.
func (d Direction) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid direction %v", d)
	}
	return d.String(), nil
}

func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
