package cbmapper

import (
	"fmt"
	stdimage "image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/cbmapper/cursor"
	"github.com/bodgit/cbmapper/format"
	"github.com/bodgit/cbmapper/image"
	"github.com/bodgit/cbmapper/render"
)

// Map is the result of decoding and rendering one map from a file
type Map struct {
	Index   int // 0 is the parent city of an adventure
	Kind    format.Kind
	Title   format.Title
	MapSize int
	Climate format.Climate
	Image   stdimage.Image // nil if Err is set or the map wasn't rendered
	Err     error
}

type mapFunc func(*format.Document) (*Map, error)

func renderMap(doc *format.Document) (*Map, error) {
	m, err := render.Render(doc)
	if err != nil {
		return nil, err
	}
	return &Map{Image: m}, nil
}

func inspectMap(*format.Document) (*Map, error) {
	return &Map{}, nil
}

func (m *Mapper) process(file string, t format.Title, fn mapFunc) ([]Map, error) {
	f, err := cursor.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := format.NewDecoder(t, format.PKWare)

	offsets, kind, err := d.Locate(f.Cursor())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	m.logger.Printf("%s: %s %s with %d map(s)\n", file, t, kind, len(offsets))

	maps := make([]Map, len(offsets))

	var wg sync.WaitGroup
	wg.Add(len(offsets))
	for i, offset := range offsets {
		go func(i int, offset int64) {
			defer wg.Done()

			maps[i] = Map{Index: i, Kind: kind, Title: t}

			doc, err := d.Decode(f.Cursor(), kind, offset, i)
			if err != nil {
				maps[i].Err = fmt.Errorf("%s: map %d: %w", file, i, err)
				return
			}

			r, err := fn(doc)
			if err != nil {
				maps[i].Err = fmt.Errorf("%s: map %d: %w", file, i, err)
				return
			}

			maps[i].MapSize = doc.MapSize
			maps[i].Climate = doc.Climate
			maps[i].Image = r.Image
		}(i, offset)
	}
	wg.Wait()

	return maps, nil
}

// Render decodes every map in file and draws its minimap. An error is only
// returned if the file can't be read or classified; a map that fails to
// decode has its own Err set without affecting the others.
func (m *Mapper) Render(file string, t format.Title) ([]Map, error) {
	return m.process(file, t, renderMap)
}

// Inspect is like Render but only decodes each map
func (m *Mapper) Inspect(file string, t format.Title) ([]Map, error) {
	return m.process(file, t, inspectMap)
}

// OutputName returns the file name used for the map at index. The parent
// city uses output as is, colonies have "C" and their index inserted before
// the extension.
func OutputName(output string, index int) string {
	if index == 0 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%sC%d%s", strings.TrimSuffix(output, ext), index, ext)
}

func writeImage(file string, m stdimage.Image, opts Options) (err error) {
	if opts.Scale > 1 {
		if m, err = image.Scale(m, opts.Scale); err != nil {
			return err
		}
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return image.Encode(f, m, opts.Format)
}

func firstError(maps []Map) error {
	for _, mp := range maps {
		if mp.Err != nil {
			return mp.Err
		}
	}
	return nil
}

func (m *Mapper) write(maps []Map, output string, opts Options) error {
	for _, mp := range maps {
		if mp.Err != nil {
			m.logger.Println(mp.Err)
			continue
		}
		if mp.Image == nil {
			continue
		}

		name := OutputName(output, mp.Index)
		if err := writeImage(name, mp.Image, opts); err != nil {
			return err
		}
		m.logger.Printf("Wrote %s\n", name)
	}
	return nil
}

// Write writes the image of every map that rendered, see OutputName. The
// first map error is returned once everything else has been written.
func (m *Mapper) Write(maps []Map, output string, opts Options) error {
	if err := m.write(maps, output, opts); err != nil {
		return err
	}
	return firstError(maps)
}
