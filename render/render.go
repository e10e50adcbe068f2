/*
Package render draws the minimap for a decoded map.

Every tile is drawn as two horizontally adjacent pixels. Caesar 3 maps are
drawn in full as a diamond on an image twice the map size; Pharaoh and
Zeus maps are drawn on an image the same size as the map, clipping the
corners of the diamond.

Terrain is drawn first, then buildings from the building table of a saved
game and finally any notable walkers.
*/
package render

import (
	"errors"

	"github.com/bodgit/cbmapper/format"
	cbimage "github.com/bodgit/cbmapper/image"
)

var (
	// ErrNoTerrain means the document has no terrain grid to draw
	ErrNoTerrain = errors.New("render: no terrain")
	// ErrTitle means the document is for an unknown title
	ErrTitle = errors.New("render: unsupported title")
)

type style struct {
	region    func(max, border, mapSize int, fn func(x, y int))
	buildings func(*painter, *Resolver)
	sprites   family
	sprite    walkerSprite
}

var styles = map[format.Title]style{
	format.Caesar3: {
		region:  square,
		sprites: c3Sprites,
		sprite:  caesar3Sprite,
	},
	format.Pharaoh: {
		region:    diamond,
		buildings: (*painter).pharaohBuildings,
		sprites:   phSprites,
		sprite:    pharaohSprite,
	},
	format.Zeus: {
		region:    diamond,
		buildings: (*painter).zeusBuildings,
		sprites:   zSprites,
		sprite:    zeusSprite,
	},
}

func cell(doc *format.Document, x, y int) Cell {
	c := Cell{
		Terrain:   doc.Terrain.Get(x, y),
		Building:  doc.Building.Get(x, y),
		Edge:      doc.Edge.Get(x, y),
		EdgeRight: doc.Edge.Get(x+1, y),
		EdgeBelow: doc.Edge.Get(x, y+1),
		Random:    doc.Random.Get(x, y),
		Fertile:   doc.Fertile.Get(x, y),
		Scrub:     doc.Scrub.Get(x, y),
		Marble:    255,
	}
	if doc.Marble != nil {
		c.Marble = doc.Marble.Get(x, y)
	}
	return c
}

// Render draws the minimap for doc
func Render(doc *format.Document) (*cbimage.Assembler, error) {
	s, ok := styles[doc.Title]
	if !ok {
		return nil, ErrTitle
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if doc.Terrain == nil {
		return nil, ErrNoTerrain
	}

	w, h := imageSize(doc.Title, doc.MapSize)
	p := &painter{
		doc:    doc,
		img:    cbimage.NewAssembler(w, h),
		proj:   NewProjector(doc.Title, doc.MapSize),
		border: doc.Border(),
	}
	r := NewResolver(doc.Title, doc.Climate)

	s.region(doc.Title.MaxMapSize(), p.border, doc.MapSize, func(x, y int) {
		c := r.Resolve(cell(doc, x, y))
		p.paint(x-p.border, y-p.border, c.Left, c.Right)
	})

	if s.buildings != nil {
		s.buildings(p, r)
	}

	p.walkers(r, s.sprites, s.sprite)

	return p.img, nil
}
