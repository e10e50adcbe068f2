package render

import (
	"image/color"

	"github.com/bodgit/cbmapper/format"
)

type family int

// palette holds a handful of colours per family. Missing variants are
// black.
type palette [][]color.RGBA

func (p palette) colour(f family, n int) color.RGBA {
	if int(f) >= len(p) || n < 0 || n >= len(p[f]) {
		return rgb(0)
	}
	return p[f][n]
}

func (p palette) pair(f1 family, n1 int, f2 family, n2 int) Pair {
	return Pair{p.colour(f1, n1), p.colour(f2, n2)}
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

func swatch(v ...uint32) []color.RGBA {
	s := make([]color.RGBA, len(v))
	for i := range v {
		s[i] = rgb(v[i])
	}
	return s
}

const (
	c3Background family = iota
	c3Empty1
	c3Empty2
	c3Tree1
	c3Tree2
	c3Rock1
	c3Rock2
	c3Water1
	c3Water2
	c3Fertile1
	c3Fertile2
	c3Road
	c3Wall
	c3Aqua
	c3House
	c3Building
	c3Sprites
	c3Families
)

// Sprite variants
const (
	c3Wolf = iota
	c3Soldier
	c3Barbarian
	c3Enemy
)

func caesar3Palette(climate format.Climate) palette {
	p := make(palette, c3Families)

	p[c3Background] = swatch(0x0000ff)
	p[c3Road] = swatch(0x8c7b63, 0x9c8a73)
	p[c3Wall] = swatch(0xd6d3ce, 0xc6c3bd)
	p[c3Aqua] = swatch(0x5a9ac6, 0x73aad6)
	p[c3House] = swatch(0xdec38c, 0xefd39c, 0xc6aa73, 0xf7e3ad)
	p[c3Building] = swatch(0xb53829, 0xd64931, 0x9c3021, 0xe75a42)
	p[c3Sprites] = swatch(0x101010, 0x1800ff, 0xf78a00, 0xf70000)

	switch climate {
	case format.Northern:
		p[c3Empty1] = swatch(0x4a6b31, 0x527339, 0x426329, 0x5a7b42, 0x4a6329, 0x527331, 0x395a21, 0x637b42)
		p[c3Empty2] = swatch(0x426329, 0x4a6b31, 0x527339, 0x395a21, 0x5a7339, 0x4a6329, 0x526b31, 0x426331)
		p[c3Tree1] = swatch(0x183010, 0x213818, 0x102808, 0x294121)
		p[c3Tree2] = swatch(0x213818, 0x183010, 0x294121, 0x102808)
		p[c3Rock1] = swatch(0x8c8c8c, 0x7b7b7b, 0x949494, 0x737373)
		p[c3Rock2] = swatch(0x737373, 0x8c8c8c, 0x7b7b7b, 0x949494)
		p[c3Water1] = swatch(0x294a73, 0x21426b, 0x294a73, 0x31527b)
		p[c3Water2] = swatch(0x21426b, 0x294a73, 0x31527b, 0x21426b)
		p[c3Fertile1] = swatch(0x6b7b29, 0x738231, 0x637321, 0x7b8a39)
		p[c3Fertile2] = swatch(0x637321, 0x6b7b29, 0x7b8a39, 0x738231)
	case format.Desert:
		p[c3Empty1] = swatch(0xceb273, 0xd6ba7b, 0xc6aa6b, 0xdec384, 0xceaa6b, 0xd6b273, 0xbda263, 0xe7cb8c)
		p[c3Empty2] = swatch(0xc6aa6b, 0xceb273, 0xd6ba7b, 0xbda263, 0xdeba7b, 0xcea26b, 0xd6b27b, 0xc6aa73)
		p[c3Tree1] = swatch(0x4a6129, 0x526b31, 0x425921, 0x5a7339)
		p[c3Tree2] = swatch(0x526b31, 0x4a6129, 0x5a7339, 0x425921)
		p[c3Rock1] = swatch(0xa58a6b, 0x947b5a, 0xad9273, 0x8c7352)
		p[c3Rock2] = swatch(0x8c7352, 0xa58a6b, 0x947b5a, 0xad9273)
		p[c3Water1] = swatch(0x427394, 0x396b8c, 0x427394, 0x4a7b9c)
		p[c3Water2] = swatch(0x396b8c, 0x427394, 0x4a7b9c, 0x396b8c)
		p[c3Fertile1] = swatch(0x9c9a42, 0xa5a24a, 0x949239, 0xadaa52)
		p[c3Fertile2] = swatch(0x949239, 0x9c9a42, 0xadaa52, 0xa5a24a)
	default:
		p[c3Empty1] = swatch(0x6b8231, 0x738a39, 0x637929, 0x7b9242, 0x6b7931, 0x738231, 0x5a7129, 0x84923a)
		p[c3Empty2] = swatch(0x637929, 0x6b8231, 0x738a39, 0x5a7129, 0x7b8a42, 0x6b7129, 0x738a31, 0x637931)
		p[c3Tree1] = swatch(0x294918, 0x31511a, 0x213810, 0x395921)
		p[c3Tree2] = swatch(0x31511a, 0x294918, 0x395921, 0x213810)
		p[c3Rock1] = swatch(0x948a7b, 0x847b6b, 0x9c9284, 0x7b7363)
		p[c3Rock2] = swatch(0x7b7363, 0x948a7b, 0x847b6b, 0x9c9284)
		p[c3Water1] = swatch(0x395a84, 0x31527b, 0x395a84, 0x425f8c)
		p[c3Water2] = swatch(0x31527b, 0x395a84, 0x425f8c, 0x31527b)
		p[c3Fertile1] = swatch(0x8c9231, 0x94923a, 0x848a29, 0x9c9a42)
		p[c3Fertile2] = swatch(0x848a29, 0x8c9231, 0x9c9a42, 0x94923a)
	}

	return p
}

const (
	phBackground family = iota
	phEmpty1
	phEmpty2
	phTree1
	phTree2
	phRock1
	phRock2
	phWater1
	phWater2
	phFertile1
	phFertile2
	phDune1
	phDune2
	phMarsh
	phRoad
	phWall
	phFood
	phIndustry
	phMilitary
	phReligion
	phEducation
	phHealth
	phEntertainment
	phGovernment
	phSafety
	phMonuments
	phAesthetics
	phHousing
	phSprites
)

// Sprite variants, soldiers and ships share a colour
const (
	phAnimal  = 0
	phSoldier = 1
	phShip    = 1
	phEnemy   = 2
)

var pharaohPalette = palette{
	phBackground:    swatch(0x0000ff),
	phEmpty1:        swatch(0xdeb27b, 0xceb273, 0xefc38c, 0xceaa73, 0xd6aa63, 0xefb273, 0xc6aa73, 0xefba7b),
	phEmpty2:        swatch(0xcea263, 0xd6ba84, 0xceaa7b, 0xefc38c, 0xd6aa73, 0xefba8c, 0xdeba84, 0xe7b28c),
	phTree1:         swatch(0x5a9229, 0x213808, 0x005929, 0x084100),
	phTree2:         swatch(0x4a6129, 0x8c8231, 0x314918, 0x427118),
	phRock1:         swatch(0xcea29c, 0xa5827b, 0xceaa9c, 0x947973),
	phRock2:         swatch(0x846163, 0xbd927b, 0xa5827b, 0xc69a84),
	phWater1:        swatch(0x396163, 0x31595a, 0x31595a, 0x315963, 0x84baff), // Last is irrigation
	phWater2:        swatch(0x31595a, 0x396163, 0x396163, 0x31595a, 0x5282bd),
	phFertile1:      swatch(0x94924a, 0x738a31, 0xad9231, 0x848218),
	phFertile2:      swatch(0x637931, 0xad9221, 0x6b7131, 0xa58a42),
	phDune1:         swatch(0xf7d3ad, 0xf7dbad, 0xe7c39c, 0xefcba5),
	phDune2:         swatch(0xdeba94, 0xf7d3a5, 0xefcba5, 0xf7d3a5),
	phMarsh:         swatch(0x5a9229, 0x42716b, 0x4a6129, 0x5a8a73),
	phRoad:          swatch(0xdecbbd, 0xcec3b5, 0x000000),
	phWall:          swatch(0x000000, 0x000000),
	phFood:          swatch(0x6bb200, 0x7bc300),
	phIndustry:      swatch(0xad0000, 0xc60000),
	phMilitary:      swatch(0xff8a18, 0xffa242),
	phReligion:      swatch(0x6300c6, 0x6300c6),
	phEducation:     swatch(0xffdb00, 0xfff394),
	phHealth:        swatch(0xffffff, 0xffffff),
	phEntertainment: swatch(0x08cbb5, 0x29fbe7),
	phGovernment:    swatch(0xa569ce, 0xa569ce),
	phSafety:        swatch(0x0059bd, 0x0069e7),
	phMonuments:     swatch(0x525152, 0x636163),
	phAesthetics:    swatch(0x008294, 0x73bab5, 0x088a9c, 0x429a84),
	phHousing:       swatch(0xf7d38c, 0xfffbd6, 0xfff3bd, 0xffe3a5),
	phSprites:       swatch(0x000000, 0xf70000, 0x1800ff),
}

const (
	zBackground family = iota
	zEmpty1
	zEmpty2
	zTree1
	zTree2
	zRock1
	zRock2
	zCopper1
	zCopper2
	zSilver1
	zSilver2
	zOrichalc1
	zOrichalc2
	zQuarry1
	zQuarry2
	zElevation1
	zElevation2
	zWater1
	zWater2
	zDeepWater1
	zDeepWater2
	zBeach1
	zBeach2
	zScrub1
	zScrub2
	zMarsh
	zLava
	zFertile1
	zFertile2
	zRoad
	zWall
	zHousingCommon
	zHousingElite
	zHusbandry
	zIndustry
	zDistribution
	zHygiene
	zAdministration
	zCulture
	zSanctuary
	zMilitary
	zAesthetics
	zSprites
)

// Sprite variants
const (
	zHuman = iota
	zSoldier
	zEnemy
	zGod
	zMonster
	zHero
)

var zeusPalette = palette{
	zBackground:     swatch(0x0000ff),
	zEmpty1:         swatch(0xceaa5a, 0xefc38c, 0xd6aa63, 0xe7c363),
	zEmpty2:         swatch(0xceaa52, 0xceaa7b, 0xd6aa73, 0xc6aa52),
	zTree1:          swatch(0x395121, 0x4a6921, 0x6b9a42, 0x426918),
	zTree2:          swatch(0x6b9231, 0x5a8229, 0x394921, 0x395921),
	zRock1:          swatch(0xa5b2c6, 0x7b92a5, 0xa5b2c6, 0x6b829c),
	zRock2:          swatch(0x5a718c, 0x8ca2b5, 0x7b92a5, 0x94a2b5),
	zCopper1:        swatch(0xde7108, 0xe77108, 0xce6908, 0xde7108),
	zCopper2:        swatch(0xce6908, 0xce6908, 0xde7108, 0xce6908),
	zSilver1:        swatch(0x63cbd6, 0x63d3de, 0x5ab2c6, 0x63cbd6),
	zSilver2:        swatch(0x5ab2bd, 0x5ab2bd, 0x63cbd6, 0x5ab2c6),
	zOrichalc1:      swatch(0xef0029, 0xef0029, 0xce0039, 0xef0029),
	zOrichalc2:      swatch(0xce0039, 0xce0039, 0xef0029, 0xce0039),
	zQuarry1:        swatch(0x8c9294, 0x63717b, 0x4a595a, 0x5a6163, 0x5a6163, 0x39494a), // Including black marble
	zQuarry2:        swatch(0x73797b, 0x7b8a8c, 0x63716b, 0x425152, 0x425152, 0x52595a),
	zElevation1:     swatch(0xa5aaad, 0x8c9a9c, 0xa5b2b5, 0x849294),
	zElevation2:     swatch(0x7b8a8c, 0x94a2a5, 0x8c9a9c, 0x9ca2a5),
	zWater1:         swatch(0x317984, 0x317984, 0x317984, 0x316973),
	zWater2:         swatch(0x316973, 0x316973, 0x316973, 0x317984),
	zDeepWater1:     swatch(0x18696b, 0x186973, 0x105963, 0x18696b),
	zDeepWater2:     swatch(0x105963, 0x10595a, 0x18696b, 0x105963),
	zBeach1:         swatch(0xf7d3ad, 0xf7dbad, 0xe7c39c, 0xefcba5, 0xf7d3a5, 0xe7c39c, 0xefcba5, 0xefcba5),
	zBeach2:         swatch(0xdeba94, 0xf7d3a5, 0xefcba5, 0xf7d3a5, 0xf7cba5, 0xf7d3a5, 0xe7cba5, 0xefc39c),
	zScrub1:         swatch(0xc6aa52, 0x9c8a39, 0xad924a, 0x948239, 0x948239),
	zScrub2:         swatch(0xc6a24a, 0xb59a4a, 0x948242, 0x9c8a39, 0x847931),
	zMarsh:          swatch(0x395121, 0x42716b, 0x6b9231, 0x5a8a73),
	zLava:           swatch(0x6b595a, 0x636163, 0x5a494a, 0x525152),
	zFertile1:       swatch(0xb59263, 0xa5716b, 0x946984, 0x7b517b),
	zFertile2:       swatch(0xb58a5a, 0x9c7173, 0x846163, 0x7b5973),
	zRoad:           swatch(0xdecbbd, 0xcec3b5),
	zWall:           swatch(0x000000, 0x000000),
	zHousingCommon:  swatch(0xa54131, 0xce694a, 0x39927b, 0x52c3ad), // Last two are Poseidon
	zHousingElite:   swatch(0xce2808, 0xef4110, 0x9c18bd, 0xbd28d6),
	zHusbandry:      swatch(0x7b7131, 0x8c8a39),
	zIndustry:       swatch(0x9c716b, 0xbd8a84),
	zDistribution:   swatch(0x73baf7, 0xeff3ff),
	zHygiene:        swatch(0x425994, 0x7392ce),
	zAdministration: swatch(0xe7a200, 0xffdb00),
	zCulture:        swatch(0x218273, 0x5ae3d6),
	zSanctuary:      swatch(0xce3021, 0xff5931, 0x636163, 0x525152),
	zMilitary:       swatch(0x424142, 0x73716b),
	zAesthetics:     swatch(0xd6d3d6, 0xefebef, 0xd6d3d6, 0x000000, 0x73bab5, 0x008294), // Last two are parks
	zSprites:        swatch(0x000000, 0xffff00, 0x1800ff, 0x00fb00, 0xff0000, 0x0800ff),
}
