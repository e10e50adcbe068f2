package image

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an output image format
type Format int

// Supported formats
const (
	PNG Format = iota
	GIF
	BMP
	TIFF
)

var (
	// ErrUnknownFormat means the name or extension isn't a supported format
	ErrUnknownFormat = errors.New("image: unknown format")
	// ErrScale means the scale factor is less than one
	ErrScale = errors.New("image: invalid scale")
)

var formats = map[Format]struct {
	name       string
	extensions []string
	encode     func(io.Writer, *image.Paletted) error
}{
	PNG: {
		"png",
		[]string{".png"},
		func(w io.Writer, m *image.Paletted) error {
			e := png.Encoder{CompressionLevel: png.BestCompression}
			return e.Encode(w, m)
		},
	},
	GIF: {
		"gif",
		[]string{".gif"},
		func(w io.Writer, m *image.Paletted) error {
			return gif.Encode(w, m, &gif.Options{NumColors: len(m.Palette)})
		},
	},
	BMP: {
		"bmp",
		[]string{".bmp"},
		func(w io.Writer, m *image.Paletted) error {
			return bmp.Encode(w, m)
		},
	},
	TIFF: {
		"tiff",
		[]string{".tiff", ".tif"},
		func(w io.Writer, m *image.Paletted) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		},
	},
}

func (f Format) String() string {
	if v, ok := formats[f]; ok {
		return v.name
	}
	return "unknown"
}

// Extension returns the preferred file extension, including the leading
// dot
func (f Format) Extension() string {
	if v, ok := formats[f]; ok {
		return v.extensions[0]
	}
	return ""
}

// ParseFormat returns the Format with the given name
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(s), ".")
	for f, v := range formats {
		if s == v.name {
			return f, nil
		}
		for _, e := range v.extensions {
			if "."+s == e {
				return f, nil
			}
		}
	}
	return 0, ErrUnknownFormat
}

// FormatFromPath works out the Format from the extension of p
func FormatFromPath(p string) (Format, error) {
	ext := filepath.Ext(p)
	if ext == "" {
		return 0, ErrUnknownFormat
	}
	return ParseFormat(ext)
}

type paletted interface {
	Paletted() *image.Paletted
}

func toPaletted(m image.Image) *image.Paletted {
	switch v := m.(type) {
	case *image.Paletted:
		return v
	case paletted:
		return v.Paletted()
	}

	a := NewAssembler(m.Bounds().Dx(), m.Bounds().Dy())
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			a.Set(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return a.Paletted()
}

// Encode writes m to w in format f
func Encode(w io.Writer, m image.Image, f Format) error {
	v, ok := formats[f]
	if !ok {
		return ErrUnknownFormat
	}
	return v.encode(w, toPaletted(m))
}

// Scale enlarges m by a factor of n using nearest neighbour sampling so
// no new colours are introduced
func Scale(m image.Image, n int) (*image.Paletted, error) {
	if n < 1 {
		return nil, ErrScale
	}

	src := toPaletted(m)
	if n == 1 {
		return src, nil
	}

	b := src.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*n, b.Dy()*n), src.Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return dst, nil
}
