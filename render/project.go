package render

import (
	"image"

	"github.com/bodgit/cbmapper/format"
)

// Projector maps tile coordinates relative to the active region onto the
// image. Each tile covers the returned pixel and the one to its right.
type Projector struct {
	DX, DY int
}

// NewProjector returns the Projector for a map of the given size
func NewProjector(t format.Title, mapSize int) Projector {
	if t == format.Caesar3 {
		return Projector{DX: mapSize - 1}
	}
	return Projector{
		DX: mapSize/2 - 1,
		DY: 1 - mapSize/2,
	}
}

// Project returns the left pixel of tile x, y
func (p Projector) Project(x, y int) image.Point {
	return image.Pt(x-y+p.DX, x+y+p.DY)
}

// imageSize returns the dimensions of the minimap for a map of the given
// size
func imageSize(t format.Title, mapSize int) (int, int) {
	if t == format.Caesar3 {
		return mapSize * 2, mapSize * 2
	}
	return mapSize, mapSize
}

// square calls fn with the grid coordinates of every tile in the active
// region
func square(_, border, mapSize int, fn func(x, y int)) {
	for y := border; y < border+mapSize; y++ {
		for x := border; x < border+mapSize; x++ {
			fn(x, y)
		}
	}
}

// diamond calls fn with the grid coordinates of the tiles that fit on a
// square minimap once rotated
func diamond(max, border, mapSize int, fn func(x, y int)) {
	half := max / 2
	for y := border; y < border+mapSize; y++ {
		var start, end int
		if y < half {
			start, end = border+half-y-1, half+y+1-border
		} else {
			start, end = border+y-half, 3*half-y-border
		}
		for x := start; x < end; x++ {
			fn(x, y)
		}
	}
}
