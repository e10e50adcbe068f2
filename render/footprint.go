package render

import (
	"image/color"

	"github.com/bodgit/cbmapper/format"
	cbimage "github.com/bodgit/cbmapper/image"
)

// painter draws tiles onto the minimap
type painter struct {
	doc    *format.Document
	img    *cbimage.Assembler
	proj   Projector
	border int
}

func (p *painter) edge(x, y int) uint8 {
	return p.doc.Edge.Get(p.border+x, p.border+y)
}

func (p *painter) terrain(x, y int) uint32 {
	return p.doc.Terrain.Get(p.border+x, p.border+y)
}

// paint colours tile x, y, relative to the active region
func (p *painter) paint(x, y int, left, right color.RGBA) {
	pt := p.proj.Project(x, y)
	p.img.Set(pt.X, pt.Y, left)
	p.img.Set(pt.X+1, pt.Y, right)
}

// place draws a building footprint. c1 fills the interior and c2 marks the
// top and right edges. Single tiles get c1 and c2 the other way round if
// reverse is set.
func (p *painter) place(x, y, sx, sy int, c1, c2 color.RGBA, reverse bool) {
	single := func(x, y int) {
		if reverse {
			p.paint(x, y, c2, c1)
		} else {
			p.paint(x, y, c1, c2)
		}
	}

	if sx == 1 && sy == 1 {
		single(x, y)
		return
	}

	for dy := 0; dy < sy; dy++ {
		for dx := 0; dx < sx; dx++ {
			e := p.edge(x+dx, y+dy)
			if e == 64 {
				single(x+dx, y+dy)
				continue
			}
			right := c1
			if e < 8 || p.edge(x+dx+1, y+dy) != (e&0x3f)+1 || (sx == 6 && dx == 2) || (sy == 6 && dy == 3) {
				right = c2
			}
			p.paint(x+dx, y+dy, c1, right)
		}
	}
}

// shade draws a square footprint picking one of two colours for each pixel
// based on whether the tile is on the left or bottom edge and whether it is
// on the top or right edge
func (p *painter) shade(x, y, size int, inner, outer [2]color.RGBA) {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			e := p.edge(x+dx, y+dy)
			left, right := inner[0], inner[1]
			if e%8 == 0 || p.edge(x+dx, y+dy+1)&0x3f < e {
				left = outer[0]
			}
			if e < 8 || p.edge(x+dx+1, y+dy) != (e&0x3f)+1 {
				right = outer[1]
			}
			p.paint(x+dx, y+dy, left, right)
		}
	}
}

// gatehouse draws the far tower and the road between the two towers
func (p *painter) gatehouse(b format.Building, c1, c2 color.RGBA, reverse bool) {
	if b.Rotation != 0 {
		p.place(b.X+3, b.Y, 2, 2, c1, c2, reverse)
		p.place(b.X+2, b.Y, 1, 2, c1, c2, reverse)
	} else {
		p.place(b.X, b.Y+3, 2, 2, c1, c2, reverse)
		p.place(b.X, b.Y+2, 2, 1, c1, c2, reverse)
	}
}

// Pharaoh building type to colour family, 0 is not drawn
var pharaohCategories = [256]family{
	// 0x00
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 27, 27, 27, 27, 27, 27,
	27, 27, 27, 27, 27, 27, 27, 27, 27, 27, 27, 27, 27, 27, 22, 22,
	22, 22, 22, 22, 22, 22, 0, 0, 0, 26, 26, 26, 0, 0, 21, 21,
	0, 21, 0, 20, 0, 20, 18, 24, 0, 18, 0, 0, 19, 19, 19, 19,
	// 0x40
	19, 19, 19, 19, 19, 19, 16, 16, 17, 17, 17, 17, 16, 23, 23, 23,
	0, 24, 0, 0, 0, 0, 23, 0, 0, 0, 1, 0, 26, 0, 18, 18,
	0, 0, 0, 15, 17, 17, 16, 16, 16, 16, 17, 17, 17, 17, 17, 17,
	18, 17, 17, 16, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x80
	0, 0, 0, 0, 0, 0, 0, 0, 24, 0, 15, 0, 19, 19, 19, 19,
	19, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 17, 17, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 18, 0, 0,
	0, 17, 17, 17, 21, 18, 18, 25, 23, 0, 0, 23, 23, 23, 0, 0,
	// 0xc0
	0, 0, 16, 17, 16, 0, 0, 16, 0, 0, 18, 17, 17, 18, 21, 25,
	25, 19, 23, 0, 0, 25, 0, 25, 17, 17, 0, 0, 0, 17, 25, 0,
	17, 0, 22, 25, 25, 25, 25, 17, 17, 17, 25, 25, 25, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

func pharaohCategory(t uint16) family {
	if int(t) >= len(pharaohCategories) {
		return 0
	}
	return pharaohCategories[t]
}

func (p *painter) pharaohBuildings(r *Resolver) {
	for _, b := range p.doc.Buildings {
		if b.Type == 0 {
			continue
		}

		cat := pharaohCategory(b.Type)
		if cat == 0 {
			continue
		}
		// Most likely a flooded farm
		if cat != phMonuments && p.terrain(b.X, b.Y)&0x8 != 0x8 {
			continue
		}

		c := func(n int) color.RGBA {
			return r.colour(cat, n)
		}
		size := int(b.Size)

		switch {
		case cat == phHousing && size > 1:
			p.shade(b.X, b.Y, size, [2]color.RGBA{c(3), c(2)}, [2]color.RGBA{c(1), c(0)})
			continue
		case b.Type == 0xd1: // Festival square, drawn with the terrain
			continue
		case b.Type == 0x2a: // Medium statue
			p.place(b.X, b.Y, size, size, c(0), c(0), true)
			continue
		case b.Type == 0x2b: // Large statue
			p.shade(b.X, b.Y, size, [2]color.RGBA{c(0), c(0)}, [2]color.RGBA{c(2), c(3)})
			continue
		case b.Type == 0xe5, b.Type == 0xea, b.Type == 0xeb, b.Type == 0xec: // Tombs
			for dy := 0; dy < size; dy++ {
				for dx := 0; dx < size; dx++ {
					if p.terrain(b.X+dx, b.Y+dy)&0x40000000 == 0 {
						p.paint(b.X+dx, b.Y+dy, c(1), c(0))
					}
				}
			}
			continue
		case b.Type == 0xca:
			p.gatehouse(b, c(0), c(1), true)
		}

		p.place(b.X, b.Y, size, size, c(0), c(1), true)
	}
}

func zeusCategory(t uint16) (family, bool) {
	switch {
	case t <= 0x08:
		return zHousingCommon, true
	case t <= 0x0e:
		return zHousingElite, true
	case t <= 0x19:
		return zAesthetics, true
	case t <= 0x2e:
		return zHusbandry, true
	case t <= 0x38:
		return zIndustry, true
	case t <= 0x49:
		return zDistribution, true
	case t <= 0x4c, t == 0x79, t == 0x7c:
		return zHygiene, true
	case t <= 0x52:
		return zCulture, true
	case t <= 0x63, t == 0x7d:
		return zSanctuary, true
	case t <= 0x73: // Pyramids
		return zAesthetics, true
	case t == 0x75, t == 0x7a, t == 0x7b, t == 0xc7:
		return zAdministration, true
	case t <= 0x81:
		return zAesthetics, true
	case t <= 0x88, t == 0xd4:
		return zMilitary, true
	case t <= 0x98:
		return zAesthetics, true
	case t <= 0xcf:
		return zCulture, true
	case t <= 0xd5:
		return zIndustry, true
	case t <= 0xd9:
		return zHusbandry, true
	}
	return 0, false
}

func (p *painter) zeusBuildings(r *Resolver) {
	for _, b := range p.doc.Buildings {
		if b.Type == 0 {
			continue
		}

		cat, ok := zeusCategory(b.Type)
		if !ok {
			continue
		}

		num := 0
		if p.doc.Poseidon && (cat == zHousingCommon || cat == zHousingElite) {
			num = 2
		}

		sx, sy := int(b.Size), int(b.Size)
		switch b.Type {
		case 0x3f: // Common agora
			switch b.Rotation {
			case 0:
				sx, sy = 1, 6
				b.X += 2
			case 1:
				sx, sy = 6, 1
			case 2:
				sx, sy = 1, 6
			case 3:
				sx, sy = 6, 1
				b.Y += 2
			}
		case 0x40: // Grand agora
			switch b.Rotation {
			case 0:
				sx, sy = 1, 6
				b.X += 2
			case 1:
				sx, sy = 6, 1
				b.Y += 2
			}
		case 0x83:
			p.gatehouse(b, r.colour(cat, 0), r.colour(cat, 1), false)
		}

		p.place(b.X, b.Y, sx, sy, r.colour(cat, num), r.colour(cat, num+1), cat == zAesthetics)
	}
}
