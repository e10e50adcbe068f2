package format

import (
	"encoding/binary"
	"io"

	"github.com/bodgit/cbmapper/cursor"
	"github.com/bodgit/cbmapper/grid"
)

// state is everything a step can see while decoding one map
type state struct {
	c     *cursor.Cursor
	codec Codec
	base  int64
	doc   *Document
}

type step struct {
	name string
	run  func(*state) error
}

type program []step

func (p program) run(s *state) error {
	for _, st := range p {
		off := s.c.Offset()
		if err := st.run(s); err != nil {
			return &StepError{
				Title:  s.doc.Title,
				Kind:   s.doc.Kind,
				Step:   st.name,
				Offset: off,
				Err:    err,
			}
		}
	}
	return nil
}

type layer int

const (
	layerBuilding layer = iota
	layerEdge
	layerTerrain
	layerRandom
	layerFertile
	layerScrub
	layerMarble
)

// target allocates the grid for l and returns a setter for it
func (s *state) target(l layer) func(int, int, uint32) {
	max := s.doc.Title.MaxMapSize()

	switch l {
	case layerBuilding, layerTerrain:
		g := grid.New[uint32](max, max)
		if l == layerBuilding {
			s.doc.Building = g
		} else {
			s.doc.Terrain = g
		}
		return g.Set
	}

	g := grid.New[uint8](max, max)
	switch l {
	case layerEdge:
		s.doc.Edge = g
	case layerRandom:
		s.doc.Random = g
	case layerFertile:
		s.doc.Fertile = g
	case layerScrub:
		s.doc.Scrub = g
	case layerMarble:
		s.doc.Marble = g
	}
	return func(x, y int, v uint32) {
		g.Set(x, y, uint8(v))
	}
}

func fill(b *block, set func(int, int, uint32), max, width int) error {
	for y := 0; y < max; y++ {
		for x := 0; x < max; x++ {
			set(x, y, b.read(width))
		}
	}
	return b.end()
}

// seek moves to an offset relative to the start of the map
func seek(name string, offset int64) step {
	return step{name, func(s *state) error {
		_, err := s.c.Seek(s.base+offset, io.SeekStart)
		return err
	}}
}

func skip(name string, n int64) step {
	return step{name, func(s *state) error {
		return s.c.Skip(n)
	}}
}

func skipChunks(name string, n int) step {
	return step{name, func(s *state) error {
		for i := 0; i < n; i++ {
			if _, err := s.c.SkipChunk(); err != nil {
				return err
			}
		}
		return nil
	}}
}

// skipSized skips a block preceded by its length, using fallback if the
// length isn't positive
func skipSized(name string, fallback int64) step {
	return step{name, func(s *state) error {
		length, err := s.c.ReadUint32()
		if err != nil {
			return err
		}
		n := int64(int32(length))
		if n <= 0 {
			n = fallback
		}
		return s.c.Skip(n)
	}}
}

// rawGrid reads an uncompressed grid of width byte cells
func rawGrid(name string, l layer, width int) step {
	return step{name, func(s *state) error {
		max := s.doc.Title.MaxMapSize()
		b, err := readRaw(s.c, max*max*width)
		if err != nil {
			return err
		}
		return fill(b, s.target(l), max, width)
	}}
}

// chunkGrid reads a compressed grid of width byte cells
func chunkGrid(name string, l layer, width int) step {
	return step{name, func(s *state) error {
		max := s.doc.Title.MaxMapSize()
		b, err := readChunk(s.c, s.codec, max*max*width)
		if err != nil {
			return err
		}
		return fill(b, s.target(l), max, width)
	}}
}

// field is a little-endian value within a fixed size record. A zero width
// means the record doesn't have the field.
type field struct {
	offset, width int
}

func (f field) get(rec []byte) uint32 {
	switch f.width {
	case 1:
		return uint32(rec[f.offset])
	case 2:
		return uint32(binary.LittleEndian.Uint16(rec[f.offset:]))
	case 4:
		return binary.LittleEndian.Uint32(rec[f.offset:])
	default:
		return 0
	}
}

type recordLayout struct {
	size     int
	typ      field
	x, y     field
	extent   field
	rotation field
}

func readRecords(s *state, layout recordLayout, count int, fn func([]byte)) error {
	b, err := readChunk(s.c, s.codec, layout.size*count)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		rec := b.take(layout.size)
		if rec == nil {
			break
		}
		fn(rec)
	}
	return b.end()
}

func walkers(name string, layout recordLayout) step {
	return step{name, func(s *state) error {
		count := s.doc.Title.MaxWalkers()
		list := make([]Walker, 0, count)
		if err := readRecords(s, layout, count, func(rec []byte) {
			list = append(list, Walker{
				Type: uint16(layout.typ.get(rec)),
				X:    int(layout.x.get(rec)),
				Y:    int(layout.y.get(rec)),
			})
		}); err != nil {
			return err
		}
		s.doc.Walkers = list
		return nil
	}}
}

func buildings(name string, layout recordLayout) step {
	return step{name, func(s *state) error {
		count := s.doc.Title.MaxBuildings()
		list := make([]Building, 0, count)
		if err := readRecords(s, layout, count, func(rec []byte) {
			b := Building{
				Type:     uint16(layout.typ.get(rec)),
				X:        int(layout.x.get(rec)),
				Y:        int(layout.y.get(rec)),
				Size:     1,
				Rotation: uint8(layout.rotation.get(rec)),
			}
			if layout.extent.width > 0 {
				b.Size = uint8(layout.extent.get(rec))
			}
			list = append(list, b)
		}); err != nil {
			return err
		}
		s.doc.Buildings = list
		return nil
	}}
}

func mapSize(name string) step {
	return step{name, func(s *state) error {
		v, err := s.c.ReadUint32()
		if err != nil {
			return err
		}
		s.doc.MapSize = int(v)
		return nil
	}}
}

// checkSize validates the map size early, before anything that depends on
// it is read
func checkSize(name string) step {
	return step{name, func(s *state) error {
		return s.doc.Validate()
	}}
}

func climate(name string) step {
	return step{name, func(s *state) error {
		v, err := s.c.ReadUint8()
		if err != nil {
			return err
		}
		switch c := Climate(v); c {
		case Central, Northern, Desert:
			s.doc.Climate = c
		default:
			s.doc.Climate = Central
		}
		return nil
	}}
}

// poseidon checks the expansion flag without consuming it
func poseidon(name string) step {
	return step{name, func(s *state) error {
		v, err := s.c.Peek8()
		if err != nil {
			return err
		}
		s.doc.Poseidon = v == 1
		return nil
	}}
}

func discard(name string) step {
	return step{name, func(s *state) error {
		_, err := s.c.ReadUint32()
		return err
	}}
}
