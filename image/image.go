/*
Package image assembles indexed minimaps and writes them out.

An Assembler behaves like an image.Paletted whose palette grows as colours
are used. Index 0 is always the opaque black background and every pixel
starts out as the background. Colours are appended to the palette in the
order they are first set so the same sequence of writes always produces
the same palette.

The palette is not limited while drawing. Only when converting to an 8-bit
image is a palette with more than 256 colours reduced, using a median cut
quantizer.
*/
package image

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

const maxColors = 256

// Background is the colour of any pixel that hasn't been set
var Background = color.RGBA{0, 0, 0, 0xff}

// Assembler is an indexed image built up one pixel at a time
type Assembler struct {
	rect    image.Rectangle
	pix     []int
	palette color.Palette
	index   map[color.RGBA]int
}

// NewAssembler returns a w by h Assembler filled with Background
func NewAssembler(w, h int) *Assembler {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Assembler{
		rect:    image.Rect(0, 0, w, h),
		pix:     make([]int, w*h),
		palette: color.Palette{Background},
		index: map[color.RGBA]int{
			Background: 0,
		},
	}
}

func (a *Assembler) offset(x, y int) (int, bool) {
	if !(image.Point{x, y}.In(a.rect)) {
		return 0, false
	}
	return y*a.rect.Dx() + x, true
}

// Set colours the pixel at x, y. Pixels outside of the image are ignored.
func (a *Assembler) Set(x, y int, c color.RGBA) {
	o, ok := a.offset(x, y)
	if !ok {
		return
	}
	i, ok := a.index[c]
	if !ok {
		i = len(a.palette)
		a.palette = append(a.palette, c)
		a.index[c] = i
	}
	a.pix[o] = i
}

// Index returns the palette index of the pixel at x, y
func (a *Assembler) Index(x, y int) int {
	o, ok := a.offset(x, y)
	if !ok {
		return 0
	}
	return a.pix[o]
}

// Palette returns a copy of the colours used so far in first use order
func (a *Assembler) Palette() color.Palette {
	return append(color.Palette(nil), a.palette...)
}

// ColorModel implements image.Image
func (a *Assembler) ColorModel() color.Model {
	return a.Palette()
}

// Bounds implements image.Image
func (a *Assembler) Bounds() image.Rectangle {
	return a.rect
}

// At implements image.Image
func (a *Assembler) At(x, y int) color.Color {
	return a.palette[a.Index(x, y)]
}

// Paletted returns an 8-bit copy of the image. If more than 256 colours
// have been used the palette is quantized down, keeping Background as
// index 0.
func (a *Assembler) Paletted() *image.Paletted {
	if len(a.palette) <= maxColors {
		m := image.NewPaletted(a.rect, a.Palette())
		for i, v := range a.pix {
			m.Pix[i] = uint8(v)
		}
		return m
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(append(make(color.Palette, 0, maxColors), Background), a)

	m := image.NewPaletted(a.rect, p)
	draw.Draw(m, a.rect, a, a.rect.Min, draw.Src)

	return m
}
