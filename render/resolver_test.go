package render

import (
	"image"
	"testing"

	"github.com/bodgit/cbmapper/format"
	"github.com/stretchr/testify/assert"
)

func TestResolverPure(t *testing.T) {
	for _, title := range []format.Title{format.Caesar3, format.Pharaoh, format.Zeus} {
		r := NewResolver(title, format.Central)
		for terrain := uint32(0); terrain < 0x10000; terrain += 0x101 {
			c := Cell{Terrain: terrain, Random: uint8(terrain), Edge: uint8(terrain >> 8)}
			assert.Equal(t, r.Resolve(c), r.Resolve(c))
		}
	}
}

func TestCaesar3Rules(t *testing.T) {
	p := caesar3Palette(format.Central)

	tables := map[string]struct {
		cell Cell
		rule string
		pair Pair
	}{
		"background": {
			Cell{Terrain: 5},
			"background",
			p.pair(c3Background, 0, c3Background, 0),
		},
		"single house": {
			Cell{Terrain: 0x8, Building: 0xa10, Edge: 64},
			"structure",
			p.pair(c3House, 0, c3House, 1),
		},
		"house corner": {
			Cell{Terrain: 0x8, Building: 0xa10, Edge: 0},
			"structure",
			p.pair(c3House, 2, c3House, 3),
		},
		"house interior": {
			Cell{Terrain: 0x8, Building: 0xa10, Edge: 9, EdgeRight: 10, EdgeBelow: 17},
			"structure",
			p.pair(c3House, 0, c3House, 1),
		},
		"reservoir": {
			Cell{Terrain: 0x8, Building: 0xb2f, Edge: 9},
			"structure",
			p.pair(c3Aqua, 0, c3Aqua, 0),
		},
		"single building": {
			Cell{Terrain: 0x8, Building: 0x300, Edge: 64},
			"structure",
			p.pair(c3Building, 0, c3Building, 1),
		},
		"building interior": {
			Cell{Terrain: 0x8, Building: 0x300, Edge: 9, EdgeRight: 10, EdgeBelow: 17},
			"structure",
			p.pair(c3Building, 2, c3Building, 3),
		},
		"fort ground": {
			Cell{Terrain: 0x8, Building: 0xc69, Random: 3},
			"empty",
			p.pair(c3Empty1, 3, c3Empty2, 3),
		},
		"aqueduct": {
			Cell{Building: 0x2a0},
			"aqueduct",
			p.pair(c3Aqua, 0, c3Aqua, 1),
		},
		"aqueduct over road": {
			Cell{Terrain: 64, Building: 0x2a0},
			"road",
			p.pair(c3Road, 0, c3Road, 1),
		},
		"shrub": {
			Cell{Terrain: 16, Random: 6},
			"tree",
			p.pair(c3Tree1, 2, c3Tree2, 2),
		},
		"elevation": {
			Cell{Terrain: 512, Random: 1},
			"rock",
			p.pair(c3Rock1, 1, c3Rock2, 1),
		},
		"water": {
			Cell{Terrain: 4},
			"water",
			p.pair(c3Water1, 0, c3Water2, 0),
		},
		"fertile": {
			Cell{Terrain: 2048, Random: 7},
			"fertile",
			p.pair(c3Fertile1, 3, c3Fertile2, 3),
		},
		"wall": {
			Cell{Terrain: 0x4000},
			"wall",
			p.pair(c3Wall, 0, c3Wall, 1),
		},
		"empty": {
			Cell{Random: 0xfe},
			"empty",
			p.pair(c3Empty1, 6, c3Empty2, 6),
		},
	}

	r := NewResolver(format.Caesar3, format.Central)
	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, table.rule, r.Rule(table.cell))
			assert.Equal(t, table.pair, r.Resolve(table.cell))
		})
	}
}

func TestCaesar3Climates(t *testing.T) {
	c := Cell{Random: 1}
	central := NewResolver(format.Caesar3, format.Central).Resolve(c)
	northern := NewResolver(format.Caesar3, format.Northern).Resolve(c)
	desert := NewResolver(format.Caesar3, format.Desert).Resolve(c)

	assert.NotEqual(t, central, northern)
	assert.NotEqual(t, central, desert)
	assert.NotEqual(t, northern, desert)

	// Only terrain differs between climates
	road := Cell{Terrain: 64}
	assert.Equal(t, NewResolver(format.Caesar3, format.Central).Resolve(road), NewResolver(format.Caesar3, format.Desert).Resolve(road))
}

func TestPharaohRules(t *testing.T) {
	p := pharaohPalette

	tables := map[string]struct {
		cell Cell
		rule string
		pair Pair
	}{
		"temple complex": {
			Cell{Terrain: 0x8, Building: 0x3dc6},
			"temple complex",
			p.pair(phReligion, 0, phReligion, 1),
		},
		"festival square": {
			Cell{Terrain: 0x8, Building: 0x3739},
			"temple complex",
			p.pair(phReligion, 0, phReligion, 1),
		},
		"temple on road": {
			Cell{Terrain: 0x48, Building: 0x3dc6},
			"road",
			p.pair(phRoad, 0, phRoad, 1),
		},
		"background": {
			Cell{Terrain: 0x80000 | 0x1},
			"background",
			p.pair(phBackground, 0, phBackground, 0),
		},
		"tree": {
			Cell{Terrain: 0x1, Random: 2},
			"tree",
			p.pair(phTree1, 2, phTree2, 2),
		},
		"bridge": {
			Cell{Terrain: 0x44},
			"bridge",
			p.pair(phRoad, 0, phRoad, 1),
		},
		"water": {
			Cell{Terrain: 0x4, Random: 5},
			"water",
			p.pair(phWater1, 1, phWater2, 1),
		},
		"garden": {
			Cell{Terrain: 0x20},
			"garden",
			p.pair(phAesthetics, 1, phAesthetics, 0),
		},
		"plaza": {
			Cell{Terrain: 0x28},
			"garden",
			p.pair(phEntertainment, 1, phEntertainment, 0),
		},
		"irrigation": {
			Cell{Terrain: 0x100},
			"irrigation",
			p.pair(phWater1, 4, phWater2, 4),
		},
		"floodplain": {
			Cell{Terrain: 0x10000, Random: 3},
			"fertile",
			p.pair(phFertile1, 3, phFertile2, 3),
		},
		"dune": {
			Cell{Terrain: 0x2000000},
			"dune",
			p.pair(phDune1, 0, phDune2, 0),
		},
		"marsh": {
			Cell{Terrain: 0x40000, Random: 4},
			"marsh",
			p.pair(phMarsh, 1, phMarsh, 3),
		},
		"wall": {
			Cell{Terrain: 0x800000},
			"wall",
			p.pair(phWall, 0, phWall, 0),
		},
		"tomb chamber": {
			Cell{Terrain: 0x40000000},
			"tomb chamber",
			p.pair(phRoad, 0, phRoad, 1),
		},
		"monument plaza": {
			Cell{Terrain: 0x10000000},
			"monument plaza",
			p.pair(phMonuments, 1, phMonuments, 0),
		},
		"empty": {
			Cell{Random: 5},
			"empty",
			p.pair(phEmpty1, 5, phEmpty2, 5),
		},
	}

	r := NewResolver(format.Pharaoh, format.Central)
	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, table.rule, r.Rule(table.cell))
			assert.Equal(t, table.pair, r.Resolve(table.cell))
		})
	}
}

func TestZeusRules(t *testing.T) {
	p := zeusPalette

	tables := map[string]struct {
		cell Cell
		rule string
		pair Pair
	}{
		"background": {
			Cell{Terrain: 0x80000},
			"background",
			p.pair(zBackground, 0, zBackground, 0),
		},
		"copper": {
			Cell{Terrain: 0x100002, Random: 1},
			"rock",
			p.pair(zCopper1, 1, zCopper2, 1),
		},
		"silver": {
			Cell{Terrain: 0x200002},
			"rock",
			p.pair(zSilver1, 0, zSilver2, 0),
		},
		"cliff": {
			Cell{Terrain: 0x300002, Random: 2},
			"rock",
			p.pair(zRock1, 2, zRock2, 2),
		},
		"sanctuary": {
			Cell{Terrain: 0x10000000},
			"sanctuary",
			p.pair(zSanctuary, 2, zSanctuary, 3),
		},
		"sanctuary building": {
			Cell{Terrain: 0x10000008},
			"building",
			p.pair(zAesthetics, 1, zAesthetics, 0),
		},
		"park": {
			Cell{Terrain: 0x20},
			"park",
			p.pair(zAesthetics, 4, zAesthetics, 5),
		},
		"deep water": {
			Cell{Terrain: 0x4000004, Random: 3},
			"water",
			p.pair(zDeepWater1, 3, zDeepWater2, 3),
		},
		"shallow water": {
			Cell{Terrain: 0x4},
			"water",
			p.pair(zWater1, 0, zWater2, 0),
		},
		"marble": {
			Cell{Terrain: 0x20000, Random: 1, Marble: 255},
			"quarry",
			p.pair(zQuarry1, 1, zQuarry2, 1),
		},
		"worked marble": {
			Cell{Terrain: 0x20000, Marble: 0x64},
			"quarry",
			p.pair(zQuarry1, 2, zQuarry2, 2),
		},
		"exhausted marble": {
			Cell{Terrain: 0x20000, Random: 1},
			"quarry",
			p.pair(zQuarry1, 5, zQuarry2, 5),
		},
		"black marble": {
			Cell{Terrain: 0x120000, Marble: 0x64},
			"quarry",
			p.pair(zQuarry1, 3, zQuarry2, 3),
		},
		"orichalc": {
			Cell{Terrain: 0x300000},
			"orichalc",
			p.pair(zOrichalc1, 0, zOrichalc2, 0),
		},
		"meadow": {
			Cell{Terrain: 0x800, Fertile: 99},
			"meadow",
			p.pair(zFertile1, 3, zFertile2, 3),
		},
		"beach": {
			Cell{Terrain: 0x10080, Random: 6},
			"beach",
			p.pair(zBeach1, 6, zBeach2, 6),
		},
		"light scrub": {
			Cell{Terrain: 0x80, Scrub: 0x30, Random: 0},
			"beach",
			p.pair(zScrub1, 1, zScrub2, 1),
		},
		"heavy scrub": {
			Cell{Terrain: 0x80, Scrub: 0x60, Random: 1},
			"beach",
			p.pair(zScrub1, 4, zScrub2, 4),
		},
		"lava": {
			Cell{Terrain: 0x1000000, Random: 3},
			"lava",
			p.pair(zLava, 1, zLava, 3),
		},
		"empty": {
			Cell{Random: 6},
			"empty",
			p.pair(zEmpty1, 3, zEmpty2, 3),
		},
	}

	r := NewResolver(format.Zeus, format.Central)
	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, table.rule, r.Rule(table.cell))
			assert.Equal(t, table.pair, r.Resolve(table.cell))
		})
	}
}

func TestPaletteOutOfRange(t *testing.T) {
	assert.Equal(t, rgb(0), zeusPalette.colour(zAesthetics, 3))
	assert.Equal(t, rgb(0), zeusPalette.colour(zRoad, 7))
	assert.Equal(t, rgb(0), zeusPalette.colour(family(100), 0))
}

func TestProjectorInjective(t *testing.T) {
	for _, title := range []format.Title{format.Caesar3, format.Zeus} {
		p := NewProjector(title, 40)
		seen := make(map[image.Point]struct{})
		for y := 0; y < 40; y++ {
			for x := 0; x < 40; x++ {
				pt := p.Project(x, y)
				_, ok := seen[pt]
				assert.False(t, ok, "%s: %d,%d", title, x, y)
				seen[pt] = struct{}{}
			}
		}
	}
}

func TestProjector(t *testing.T) {
	assert.Equal(t, image.Pt(9, 0), NewProjector(format.Caesar3, 10).Project(0, 0))
	assert.Equal(t, image.Pt(0, 9), NewProjector(format.Caesar3, 10).Project(0, 9))
	assert.Equal(t, image.Pt(19, -19), NewProjector(format.Pharaoh, 40).Project(0, 0))
	assert.Equal(t, image.Pt(19, 21), NewProjector(format.Zeus, 40).Project(20, 20))
}
