package format

import (
	"bytes"

	"github.com/bodgit/cbmapper/cursor"
)

var mapsSignature = []byte("MAPS")

func classifyPharaoh(c *cursor.Cursor) (Kind, error) {
	b, err := c.ReadBytes(len(mapsSignature))
	if err != nil {
		return 0, err
	}
	if bytes.Equal(b, mapsSignature) {
		return Scenario, nil
	}
	return SavedGame, nil
}

var pharaohWalker = recordLayout{
	size: 388,
	typ:  field{10, 2},
	x:    field{20, 2},
	y:    field{22, 2},
}

var pharaohBuilding = recordLayout{
	size:     264,
	extent:   field{3, 1},
	x:        field{6, 2},
	y:        field{8, 2},
	typ:      field{16, 2},
	rotation: field{170, 1},
}

var pharaohScenario = program{
	seek("seek grids", 0x177c),
	rawGrid("building grid", layerBuilding, 4),
	rawGrid("edge grid", layerEdge, 1),
	rawGrid("terrain grid", layerTerrain, 4),
	skip("skip unknown grid", 51984),
	rawGrid("random grid", layerRandom, 1),
	seek("seek map size", 0x99c78),
	mapSize("map size"),
}

var pharaohSavedGame = program{
	seek("seek grids", 0x177c),
	chunkGrid("building grid", layerBuilding, 4),
	chunkGrid("edge grid", layerEdge, 1),
	skipChunks("skip building ids", 1),
	chunkGrid("terrain grid", layerTerrain, 4),
	skipChunks("skip unknown grids", 4),
	rawGrid("random grid", layerRandom, 1),
	skipChunks("skip unknown grids", 5),
	walkers("walkers", pharaohWalker),
	skipChunks("skip unknown chunks", 3),
	skip("skip three ints", 12),
	skipChunks("skip unknown chunk", 1),
	skip("skip unknown", 72),
	buildings("buildings", pharaohBuilding),
	skip("skip unknown", 68),
	skipChunks("skip unknown chunk", 1),
	skip("skip scenario header", 704),
	mapSize("map size"),
}
