package render

import (
	"image/color"

	"github.com/bodgit/cbmapper/format"
)

// Pair is the colour of the two horizontally adjacent pixels a tile covers
type Pair struct {
	Left, Right color.RGBA
}

// Cell holds everything known about a single tile
type Cell struct {
	Terrain   uint32
	Building  uint32
	Edge      uint8
	EdgeRight uint8 // Edge of the tile at x+1
	EdgeBelow uint8 // Edge of the tile at y+1
	Random    uint8
	Fertile   uint8
	Scrub     uint8
	Marble    uint8
}

type rule struct {
	name   string
	match  func(Cell) bool
	colour func(palette, Cell) Pair
}

func bits(mask uint32) func(Cell) bool {
	return func(c Cell) bool {
		return c.Terrain&mask != 0
	}
}

func fixed(f1 family, n1 int, f2 family, n2 int) func(palette, Cell) Pair {
	return func(p palette, _ Cell) Pair {
		return p.pair(f1, n1, f2, n2)
	}
}

// variant picks the same member from a pair of families using the random
// byte
func variant(f1, f2 family, mask uint8) func(palette, Cell) Pair {
	return func(p palette, c Cell) Pair {
		n := int(c.Random & mask)
		return p.pair(f1, n, f2, n)
	}
}

// marsh uses the first half of the family on the left and the second on
// the right
func marsh(f family) func(palette, Cell) Pair {
	return func(p palette, c Cell) Pair {
		n := int(c.Random&4) >> 2
		return p.pair(f, n, f, n+2)
	}
}

func always(Cell) bool {
	return true
}

// Resolver maps a tile to its pair of colours
type Resolver struct {
	palette palette
	rules   []rule
}

// NewResolver returns a Resolver for the given title. The climate only
// matters for Caesar 3.
func NewResolver(t format.Title, climate format.Climate) *Resolver {
	switch t {
	case format.Caesar3:
		return &Resolver{caesar3Palette(climate), caesar3Rules}
	case format.Pharaoh:
		return &Resolver{pharaohPalette, pharaohRules}
	default:
		return &Resolver{zeusPalette, zeusRules}
	}
}

func (r *Resolver) find(c Cell) *rule {
	for i := range r.rules {
		if r.rules[i].match(c) {
			return &r.rules[i]
		}
	}
	return nil
}

// Resolve returns the colours for c. The first matching rule wins.
func (r *Resolver) Resolve(c Cell) Pair {
	if rl := r.find(c); rl != nil {
		return rl.colour(r.palette, c)
	}
	return Pair{rgb(0), rgb(0)}
}

// Rule returns the name of the rule that matches c
func (r *Resolver) Rule(c Cell) string {
	if rl := r.find(c); rl != nil {
		return rl.name
	}
	return ""
}

func (r *Resolver) colour(f family, n int) color.RGBA {
	return r.palette.colour(f, n)
}

var caesar3Rules = []rule{
	{
		"background",
		func(c Cell) bool { return c.Terrain == 5 },
		fixed(c3Background, 0, c3Background, 0),
	},
	{
		"structure",
		func(c Cell) bool { return c.Terrain&0x8 != 0 && c.Building != 0xc69 },
		caesar3Structure,
	},
	{
		"aqueduct",
		func(c Cell) bool { return c.Terrain&64 == 0 && c.Building >= 0x29c && c.Building < 0x2b8 },
		fixed(c3Aqua, 0, c3Aqua, 1),
	},
	{"tree", bits(1 | 16), variant(c3Tree1, c3Tree2, 3)},
	{"rock", bits(2 | 512), variant(c3Rock1, c3Rock2, 3)},
	{"water", bits(4), variant(c3Water1, c3Water2, 3)},
	{"road", bits(64), fixed(c3Road, 0, c3Road, 1)},
	{"fertile", bits(2048), variant(c3Fertile1, c3Fertile2, 3)},
	{"wall", bits(0x4000), fixed(c3Wall, 0, c3Wall, 1)},
	{"empty", always, variant(c3Empty1, c3Empty2, 7)},
}

func caesar3Structure(p palette, c Cell) Pair {
	e := c.Edge
	top := e < 8
	right := c.EdgeRight != (e&0x3f)+1

	switch {
	case c.Building >= 0xa00 && c.Building <= 0xb06: // Housing
		if e == 64 {
			return p.pair(c3House, 0, c3House, 1)
		}
		l, r := 0, 1
		if e%8 == 0 || c.EdgeBelow&0x3f < e {
			l = 2
		}
		if top || right {
			r = 3
		}
		return p.pair(c3House, l, c3House, r)
	case c.Building == 0xb2f: // Reservoir
		l, r := 0, 0
		if e%8 == 0 || e > 15 {
			l = 1
		}
		if top || e%8 == 2 {
			r = 1
		}
		return p.pair(c3Aqua, l, c3Aqua, r)
	default:
		if e == 64 {
			return p.pair(c3Building, 0, c3Building, 1)
		}
		l, r := 2, 3
		if e%8 == 0 || (e&0x3f)+8 != c.EdgeBelow {
			l = 0
		}
		if top || right {
			r = 1
		}
		return p.pair(c3Building, l, c3Building, r)
	}
}

var pharaohRules = []rule{
	{
		"temple complex",
		func(c Cell) bool {
			return c.Terrain&0x48 == 0x8 &&
				((c.Building >= 0x3dc6 && c.Building <= 0x3ed5) || (c.Building >= 0x3720 && c.Building <= 0x3739))
		},
		fixed(phReligion, 0, phReligion, 1),
	},
	{"background", bits(0x80000), fixed(phBackground, 0, phBackground, 0)},
	{"tree", bits(1), variant(phTree1, phTree2, 3)},
	{"rock", bits(2), variant(phRock1, phRock2, 3)},
	{
		"bridge",
		func(c Cell) bool { return c.Terrain == 0x44 },
		fixed(phRoad, 0, phRoad, 1),
	},
	{"water", bits(4), variant(phWater1, phWater2, 3)},
	{
		"garden",
		bits(0x20),
		func(p palette, c Cell) Pair {
			if c.Terrain&0x8 != 0 {
				return p.pair(phEntertainment, 1, phEntertainment, 0)
			}
			return p.pair(phAesthetics, 1, phAesthetics, 0)
		},
	},
	{"road", bits(0x40), fixed(phRoad, 0, phRoad, 1)},
	{"irrigation", bits(0x100), fixed(phWater1, 4, phWater2, 4)},
	{"fertile", bits(0x800 | 0x10000), variant(phFertile1, phFertile2, 3)},
	{"dune", bits(0x2000000), variant(phDune1, phDune2, 3)},
	{"marsh", bits(0x40000), marsh(phMarsh)},
	{"wall", bits(0x804000), fixed(phWall, 0, phWall, 0)},
	{"tomb chamber", bits(0x40000000), fixed(phRoad, 0, phRoad, 1)},
	{"monument plaza", bits(0x10000000), fixed(phMonuments, 1, phMonuments, 0)},
	{"empty", always, variant(phEmpty1, phEmpty2, 7)},
}

var zeusRules = []rule{
	{"background", bits(0x80000), fixed(zBackground, 0, zBackground, 0)},
	{"tree", bits(1), variant(zTree1, zTree2, 3)},
	{
		"rock",
		bits(2),
		func(p palette, c Cell) Pair {
			switch c.Terrain & 0x300002 {
			case 0x100002:
				return variant(zCopper1, zCopper2, 3)(p, c)
			case 0x200002:
				return variant(zSilver1, zSilver2, 3)(p, c)
			}
			return variant(zRock1, zRock2, 3)(p, c)
		},
	},
	{
		"sanctuary",
		func(c Cell) bool {
			return c.Terrain&0x10000000 != 0 && (c.Terrain&0x8 == 0 || c.Terrain&0x40 != 0)
		},
		fixed(zSanctuary, 2, zSanctuary, 3),
	},
	{"building", bits(0x8), fixed(zAesthetics, 1, zAesthetics, 0)},
	{"park", bits(0x20), fixed(zAesthetics, 4, zAesthetics, 5)},
	{"elevation", bits(0x200), variant(zElevation1, zElevation2, 3)},
	{"road", bits(0x40), fixed(zRoad, 0, zRoad, 1)},
	{
		"water",
		bits(4),
		func(p palette, c Cell) Pair {
			if c.Terrain&0x4000000 != 0 {
				return variant(zDeepWater1, zDeepWater2, 3)(p, c)
			}
			return variant(zWater1, zWater2, 3)(p, c)
		},
	},
	{"quarry", bits(0x20000), zeusQuarry},
	{
		"orichalc",
		func(c Cell) bool { return c.Terrain&0x300000 == 0x300000 },
		variant(zOrichalc1, zOrichalc2, 3),
	},
	{"wall", bits(0x4000), fixed(zWall, 0, zWall, 1)},
	{
		"meadow",
		bits(0x800),
		func(p palette, c Cell) Pair {
			n := int(c.Fertile >> 5)
			return p.pair(zFertile1, n, zFertile2, n)
		},
	},
	{"beach", bits(0x80), zeusBeach},
	{"marsh", bits(0x40000), marsh(zMarsh)},
	{
		"lava",
		bits(0x1000000),
		func(p palette, c Cell) Pair {
			n := int(c.Random % 2)
			return p.pair(zLava, n, zLava, n+2)
		},
	},
	{
		"empty",
		always,
		func(p palette, c Cell) Pair {
			n := int(c.Random>>1) % 4
			return p.pair(zEmpty1, n, zEmpty2, n)
		},
	},
}

func zeusQuarry(p palette, c Cell) Pair {
	var n int
	if c.Terrain&0x100000 != 0 { // Black marble
		switch c.Marble {
		case 255:
			n = 2
		case 0x64:
			n = 3
		default:
			n = 5
		}
	} else {
		n = int(c.Random & 1)
		switch c.Marble {
		case 255:
		case 0x64:
			n += 2
		default:
			n += 4
		}
	}
	return p.pair(zQuarry1, n, zQuarry2, n)
}

func zeusBeach(p palette, c Cell) Pair {
	if c.Terrain&0x10000 != 0 {
		return variant(zBeach1, zBeach2, 7)(p, c)
	}

	n := int(c.Random & 1)
	switch {
	case c.Scrub <= 0x18:
	case c.Scrub <= 0x38:
		n = 1
	case c.Scrub <= 0x48:
		n++
	case c.Scrub <= 0x50:
		n += 2
	default:
		n += 3
	}
	return p.pair(zScrub1, n, zScrub2, n)
}
