/*
Package format decodes the map data held in Caesar 3, Pharaoh and Zeus
scenarios, saved games and adventures.

Each title is described by a table; how to classify a file and, for every
kind of file, an ordered program of named steps. Steps must run in order as
the offset of every field depends on the lengths of the chunks before it.
*/
package format

import (
	"io"

	"github.com/bodgit/cbmapper/cursor"
)

const (
	minFileSize = 8
	maxMaps     = 5 // Parent city and four colonies
)

type config struct {
	classify func(*cursor.Cursor) (Kind, error)
	programs map[Kind]program
	bases    map[Kind]int64
}

var configs = map[Title]config{
	Caesar3: {
		classify: classifyCaesar3,
		programs: map[Kind]program{
			Scenario:  caesar3Scenario,
			SavedGame: caesar3SavedGame,
		},
	},
	Pharaoh: {
		classify: classifyPharaoh,
		programs: map[Kind]program{
			Scenario:  pharaohScenario,
			SavedGame: pharaohSavedGame,
		},
	},
	Zeus: {
		classify: classifyZeus,
		programs: map[Kind]program{
			Scenario:  zeusScenario,
			SavedGame: zeusSavedGame,
			Adventure: zeusScenario,
		},
		bases: map[Kind]int64{
			Scenario: int64(len(mapsSignature)),
		},
	},
}

// Decoder decodes the files of a single title
type Decoder struct {
	title Title
	codec Codec
	cfg   config
}

// NewDecoder returns a Decoder for t using codec to decompress chunks. A
// nil codec selects PKWare.
func NewDecoder(t Title, codec Codec) *Decoder {
	if codec == nil {
		codec = PKWare
	}
	return &Decoder{
		title: t,
		codec: codec,
		cfg:   configs[t],
	}
}

// Title returns the title the Decoder was created for
func (d *Decoder) Title() Title {
	return d.title
}

// Classify works out what kind of file c holds. The cursor is left at the
// start of the file.
func (d *Decoder) Classify(c *cursor.Cursor) (Kind, error) {
	if d.cfg.classify == nil {
		return 0, &FormatError{Title: d.title, Reason: "unsupported title"}
	}
	if c.Len() < minFileSize {
		return 0, &FormatError{Title: d.title, Reason: "file too short"}
	}
	if _, err := c.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	defer c.Seek(0, io.SeekStart)

	return d.cfg.classify(c)
}

// Locate classifies c and returns the offset of every map it contains
func (d *Decoder) Locate(c *cursor.Cursor) ([]int64, Kind, error) {
	kind, err := d.Classify(c)
	if err != nil {
		return nil, 0, err
	}

	if kind != Adventure {
		return []int64{d.cfg.bases[kind]}, kind, nil
	}

	if _, err := c.Seek(int64(len(adventureSignature)), io.SeekStart); err != nil {
		return nil, 0, err
	}
	defer c.Seek(0, io.SeekStart)

	offsets, err := c.FindAll(mapsSignature)
	if err != nil {
		return nil, 0, err
	}

	// The first marker belongs to the adventure itself
	if len(offsets) < 2 {
		return nil, 0, &FormatError{Title: d.title, Reason: "adventure contains no maps"}
	}
	offsets = offsets[1:]
	if len(offsets) > maxMaps {
		offsets = offsets[:maxMaps]
	}

	return offsets, kind, nil
}

// Decode runs the program for kind starting from base, which should be one
// of the offsets returned by Locate. Nothing is returned unless every step
// succeeds and the map size is valid.
func (d *Decoder) Decode(c *cursor.Cursor, kind Kind, base int64, index int) (*Document, error) {
	p, ok := d.cfg.programs[kind]
	if !ok {
		return nil, &FormatError{Title: d.title, Reason: "unsupported " + kind.String()}
	}

	if _, err := c.Seek(base, io.SeekStart); err != nil {
		return nil, err
	}

	s := &state{
		c:     c,
		codec: d.codec,
		base:  base,
		doc: &Document{
			Title: d.title,
			Kind:  kind,
			Index: index,
		},
	}

	if err := p.run(s); err != nil {
		return nil, err
	}

	if err := s.doc.Validate(); err != nil {
		return nil, err
	}

	return s.doc, nil
}
