package format

import "github.com/bodgit/cbmapper/grid"

// Walker is an entry from the walker table of a saved game. The coordinates
// are relative to the active region.
type Walker struct {
	Type uint16
	X, Y int
}

// Building is an entry from the building table of a saved game. The
// coordinates are those of the footprint origin relative to the active
// region.
type Building struct {
	Type     uint16
	X, Y     int
	Size     uint8
	Rotation uint8
}

// Document is a single decoded map. Every grid is the title's maximum map
// size square with the active region centred inside it. Grids and tables
// the file doesn't contain are nil.
type Document struct {
	Title    Title
	Kind     Kind
	Index    int // Position within an adventure, 0 is the parent city
	MapSize  int
	Climate  Climate
	Poseidon bool

	Building *grid.Grid[uint32]
	Terrain  *grid.Grid[uint32]
	Edge     *grid.Grid[uint8]
	Random   *grid.Grid[uint8]
	Fertile  *grid.Grid[uint8]
	Scrub    *grid.Grid[uint8]
	Marble   *grid.Grid[uint8]

	Walkers   []Walker
	Buildings []Building
}

// Border returns the offset of the active region within the grids
func (d *Document) Border() int {
	return (d.Title.MaxMapSize() - d.MapSize) / 2
}

// Validate checks the map size fits the grids
func (d *Document) Validate() error {
	max := d.Title.MaxMapSize()
	if d.MapSize <= 0 || d.MapSize > max {
		return &SizeError{
			Title:   d.Title,
			MapSize: int64(d.MapSize),
			Max:     max,
		}
	}
	return nil
}
