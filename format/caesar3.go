package format

import "github.com/bodgit/cbmapper/cursor"

// Scenarios have a zero in the second int
func classifyCaesar3(c *cursor.Cursor) (Kind, error) {
	if _, err := c.ReadUint32(); err != nil {
		return 0, err
	}
	v, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return Scenario, nil
	}
	return SavedGame, nil
}

var caesar3Walker = recordLayout{
	size: 128,
	typ:  field{10, 2},
	x:    field{20, 1},
	y:    field{21, 1},
}

var caesar3Scenario = program{
	rawGrid("building grid", layerBuilding, 2),
	rawGrid("edge grid", layerEdge, 1),
	rawGrid("terrain grid", layerTerrain, 2),
	skip("skip unused zero grid", 26244),
	rawGrid("random grid", layerRandom, 1),
	seek("seek map size", 0x335b4),
	mapSize("map size"),
	seek("seek climate", 0x33ad8),
	climate("climate"),
}

var caesar3SavedGame = program{
	seek("skip header", 8),
	chunkGrid("building grid", layerBuilding, 2),
	chunkGrid("edge grid", layerEdge, 1),
	skipChunks("skip building ids", 1),
	chunkGrid("terrain grid", layerTerrain, 2),
	skipChunks("skip unknown grids", 4),
	rawGrid("random grid", layerRandom, 1),
	skipChunks("skip unknown grids", 5),
	walkers("walkers", caesar3Walker),
	skipSized("skip possibly uncompressed block", 1200),
	skipChunks("skip unknown chunks", 2),
	skip("skip three ints", 12),
	skipChunks("skip unknown chunk", 1),
	skip("skip unknown", 70),
	skipChunks("skip unknown chunk", 1),
	skip("skip unknown", 208),
	skipChunks("skip unknown chunk", 1),
	skip("skip scenario header", 788),
	mapSize("map size"),
	skip("skip scenario settings", 1312),
	climate("climate"),
}
