package generator

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/domino14/wordsearch/board"
	"github.com/domino14/wordsearch/placement"
)

// LogPlacement is a struct meant for serializing to a log file, for debug
// purposes. Each committed word is written as a one-element YAML list, so
// the whole log reads back as a single list.
type LogPlacement struct {
	Word          string          `yaml:"word"`
	Anchor        board.Coord     `yaml:"anchor"`
	Direction     board.Direction `yaml:"direction"`
	Source        string          `yaml:"source"`
	Intersections int             `yaml:"intersections"`
	Free          int             `yaml:"free"`
}

func writeLogPlacement(w io.Writer, pw placement.PlacedWord, c placement.Candidate, inter, free int) error {
	out, err := yaml.Marshal([]LogPlacement{{
		Word:          pw.Word,
		Anchor:        pw.Anchor,
		Direction:     pw.Dir,
		Source:        c.Source.String(),
		Intersections: inter,
		Free:          free,
	}})
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// ReadPlacementLog reads back a log written through Options.LogStream.
func ReadPlacementLog(r io.Reader) ([]LogPlacement, error) {
	var entries []LogPlacement
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}
