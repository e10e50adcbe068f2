package format

import (
	"bytes"

	"github.com/bodgit/cbmapper/cursor"
)

var adventureSignature = []byte{0xa7, 0x22, 0x00, 0x00}

func classifyZeus(c *cursor.Cursor) (Kind, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	switch {
	case bytes.Equal(b, mapsSignature):
		return Scenario, nil
	case bytes.Equal(b, adventureSignature):
		return Adventure, nil
	default:
		return SavedGame, nil
	}
}

var zeusWalker = pharaohWalker

var zeusBuilding = recordLayout{
	size:     280,
	extent:   field{3, 1},
	x:        field{6, 2},
	y:        field{8, 2},
	typ:      field{16, 2},
	rotation: field{172, 1},
}

var zeusSavedGame = program{
	seek("seek header", 0x1779),
	skipChunks("skip unknown chunk", 1),
	skip("skip unknown", 8),
	skipChunks("skip unknown chunk", 1),
	skip("skip map information", 188),
	mapSize("map size"),
	checkSize("check map size"),
	skip("skip entry points", 600),
	poseidon("poseidon flag"),
	skip("skip unknown", 1384),
	skipChunks("skip unknown chunk", 1),
	skip("skip unknown", 18609),
	chunkGrid("edge grid", layerEdge, 1),
	skipChunks("skip zero grid", 1),
	chunkGrid("terrain grid", layerTerrain, 4),
	skipChunks("skip unknown grids", 4),
	rawGrid("random grid", layerRandom, 1),
	skipChunks("skip appeal and damage grids", 5),
	walkers("walkers", zeusWalker),
	skipChunks("skip unknown chunks", 3),
	skip("skip unknown", 69),
	buildings("buildings", zeusBuilding),
	skip("skip unknown", 352),
	skipChunks("skip unknown chunk", 1),
	skip("skip unknown", 17974),
	skipChunks("skip unknown chunks", 3),
	skip("skip unknown", 53783),
	rawGrid("fertile grid", layerFertile, 1),
	skip("skip unknown", 16),
	skipChunks("skip unknown chunk", 1),
	rawGrid("marble grid", layerMarble, 1),
	skip("skip unknown", 32),
	skipChunks("skip maintenance grids", 2),
	skip("skip unknown", 39),
	skipChunks("skip unknown grid", 1),
	chunkGrid("scrub grid", layerScrub, 1),
}

// Also used for every map inside an adventure
var zeusScenario = program{
	seek("seek grids", 0x1778),
	skipChunks("skip building grid", 1),
	chunkGrid("edge grid", layerEdge, 1),
	chunkGrid("terrain grid", layerTerrain, 4),
	skipChunks("skip unknown grid", 1),
	discard("skip random marker"),
	rawGrid("random grid", layerRandom, 1),
	skipChunks("skip zero grid", 1),
	skip("skip unknown", 60),
	mapSize("map size"),
	checkSize("check map size"),
	skip("skip unknown", 1984),
	chunkGrid("fertile grid", layerFertile, 1),
	skip("skip unknown", 18628),
	skipChunks("skip unknown chunks", 4),
	skip("skip unknown", 144),
	chunkGrid("scrub grid", layerScrub, 1),
}
