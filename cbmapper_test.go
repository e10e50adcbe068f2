package cbmapper

import (
	"encoding/binary"
	"errors"
	stdimage "image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/cbmapper/format"
	"github.com/bodgit/cbmapper/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caesar3Scenario(mapsize uint32, climate uint8) []byte {
	const (
		cells      = 162 * 162
		mapsizeOff = 0x335b4
		climateOff = 0x33ad8
	)

	b := make([]byte, climateOff+1)
	// Some water in the terrain grid
	for i := 0; i < 100; i++ {
		binary.LittleEndian.PutUint16(b[cells*3+(81*162+40+i)*2:], 4)
	}
	binary.LittleEndian.PutUint32(b[mapsizeOff:], mapsize)
	b[climateOff] = climate
	return b
}

func writeFile(t *testing.T, name string, b []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o777))
	require.NoError(t, ioutil.WriteFile(name, b, 0o666))
}

func newMapper(catalog *Catalog) *Mapper {
	return New(catalog, log.New(ioutil.Discard, "", 0))
}

func decodePNG(t *testing.T, name string) stdimage.Image {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	m, err := png.Decode(f)
	require.NoError(t, err)
	return m
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "out/city.png", OutputName("out/city.png", 0))
	assert.Equal(t, "out/cityC1.png", OutputName("out/city.png", 1))
	assert.Equal(t, "out/cityC4.gif", OutputName("out/city.gif", 4))
	assert.Equal(t, "cityC2", OutputName("city", 2))
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "valley.map")
	writeFile(t, file, caesar3Scenario(40, 2))

	m := newMapper(nil)

	maps, err := m.Render(file, format.Caesar3)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	require.NoError(t, maps[0].Err)

	assert.Equal(t, 0, maps[0].Index)
	assert.Equal(t, format.Scenario, maps[0].Kind)
	assert.Equal(t, format.Caesar3, maps[0].Title)
	assert.Equal(t, 40, maps[0].MapSize)
	assert.Equal(t, format.Desert, maps[0].Climate)
	assert.Equal(t, stdimage.Rect(0, 0, 80, 80), maps[0].Image.Bounds())

	output := filepath.Join(dir, "valley.png")
	require.NoError(t, m.Write(maps, output, Options{Format: image.PNG, Scale: 2}))
	assert.Equal(t, stdimage.Rect(0, 0, 160, 160), decodePNG(t, output).Bounds())
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "valley.map")
	writeFile(t, file, caesar3Scenario(100, 1))

	maps, err := newMapper(nil).Inspect(file, format.Caesar3)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, 100, maps[0].MapSize)
	assert.Equal(t, format.Northern, maps[0].Climate)
	assert.Nil(t, maps[0].Image)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	m := newMapper(nil)

	_, err := m.Render(filepath.Join(dir, "missing.map"), format.Caesar3)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	short := filepath.Join(dir, "short.map")
	writeFile(t, short, []byte{1, 2, 3})
	_, err = m.Render(short, format.Caesar3)
	var ferr *format.FormatError
	assert.ErrorAs(t, err, &ferr)

	// Bad map size is reported against the map rather than the file
	bad := filepath.Join(dir, "bad.map")
	writeFile(t, bad, caesar3Scenario(163, 0))
	maps, err := m.Render(bad, format.Caesar3)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	var serr *format.SizeError
	assert.ErrorAs(t, maps[0].Err, &serr)

	assert.ErrorAs(t, m.Write(maps, filepath.Join(dir, "bad.png"), Options{}), &serr)
	_, err = os.Stat(filepath.Join(dir, "bad.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")

	writeFile(t, filepath.Join(in, "one.map"), caesar3Scenario(40, 0))
	writeFile(t, filepath.Join(in, "campaign", "two.MAP"), caesar3Scenario(60, 0))
	writeFile(t, filepath.Join(in, ".hidden", "three.map"), caesar3Scenario(40, 0))
	writeFile(t, filepath.Join(in, "readme.txt"), []byte("hello"))

	catalog, err := NewCatalog(filepath.Join(dir, "catalog.db"))
	require.NoError(t, err)
	defer catalog.Close()

	m := newMapper(catalog)
	require.NoError(t, m.Scan(in, out, format.Caesar3, Options{Format: image.PNG, Workers: 2}))

	assert.Equal(t, stdimage.Rect(0, 0, 80, 80), decodePNG(t, filepath.Join(out, "one.png")).Bounds())
	assert.Equal(t, stdimage.Rect(0, 0, 120, 120), decodePNG(t, filepath.Join(out, "campaign", "two.png")).Bounds())

	_, err = os.Stat(filepath.Join(out, ".hidden"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(out, "readme.png"))
	assert.True(t, os.IsNotExist(err))

	// Both files are now in the catalog
	crc, err := crcFile(filepath.Join(in, "campaign", "two.MAP"))
	require.NoError(t, err)
	maps, err := catalog.Find(crc, format.Caesar3)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, 60, maps[0].MapSize)

	// Second pass is served from the catalog
	require.NoError(t, os.RemoveAll(out))
	require.NoError(t, m.Scan(in, out, format.Caesar3, Options{Format: image.PNG}))
	assert.Equal(t, stdimage.Rect(0, 0, 80, 80), decodePNG(t, filepath.Join(out, "one.png")).Bounds())
}

func TestScanIncomplete(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")

	writeFile(t, filepath.Join(in, "good.map"), caesar3Scenario(40, 0))
	writeFile(t, filepath.Join(in, "broken.sav"), []byte{0, 1})

	err := newMapper(nil).Scan(in, out, format.Caesar3, Options{})
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = os.Stat(filepath.Join(out, "good.png"))
	assert.NoError(t, err)
}

func TestCatalog(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "valley.map")
	writeFile(t, file, caesar3Scenario(40, 0))

	catalog, err := NewCatalog(filepath.Join(dir, "catalog.db"))
	require.NoError(t, err)
	defer catalog.Close()

	maps, err := catalog.Find("DEADBEEF", format.Caesar3)
	require.NoError(t, err)
	assert.Nil(t, maps)

	maps, err = newMapper(nil).Render(file, format.Caesar3)
	require.NoError(t, err)

	require.NoError(t, catalog.Add("DEADBEEF", format.Caesar3, maps))
	// Replaces rather than duplicates
	require.NoError(t, catalog.Add("DEADBEEF", format.Caesar3, maps))

	found, err := catalog.Find("DEADBEEF", format.Caesar3)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, format.Scenario, found[0].Kind)
	assert.Equal(t, 40, found[0].MapSize)
	assert.Equal(t, maps[0].Image.Bounds(), found[0].Image.Bounds())
	for _, pt := range []stdimage.Point{{0, 0}, {40, 40}, {79, 79}} {
		assert.Equal(t, color.RGBAModel.Convert(maps[0].Image.At(pt.X, pt.Y)), color.RGBAModel.Convert(found[0].Image.At(pt.X, pt.Y)))
	}

	// Same CRC under a different title is a different source
	found, err = catalog.Find("DEADBEEF", format.Zeus)
	require.NoError(t, err)
	assert.Nil(t, found)

	maps[0].Err = errors.New("broken")
	assert.Error(t, catalog.Add("CAFEBABE", format.Caesar3, maps))
}

func TestScanSameName(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")

	writeFile(t, filepath.Join(in, "rome.map"), caesar3Scenario(40, 0))
	writeFile(t, filepath.Join(in, "rome.sav"), caesar3Scenario(60, 0))
	writeFile(t, filepath.Join(in, "other", "rome.map"), caesar3Scenario(40, 0))

	err := newMapper(nil).Scan(in, out, format.Caesar3, Options{Format: image.PNG, Workers: 4})
	assert.ErrorIs(t, err, ErrIncomplete)

	// Only one of the two wins
	files, err := filepath.Glob(filepath.Join(out, "*"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(out, "rome.png"), filepath.Join(out, "other")}, files)

	_, err = os.Stat(filepath.Join(out, "other", "rome.png"))
	assert.NoError(t, err)
}

func TestOutputsClaim(t *testing.T) {
	o := newOutputs()

	other, ok := o.claim("out/rome.png", "in/rome.map")
	assert.True(t, ok)
	assert.Equal(t, "in/rome.map", other)

	other, ok = o.claim("out/ROME.png", "in/ROME.sav")
	assert.False(t, ok)
	assert.Equal(t, "in/rome.map", other)

	_, ok = o.claim("out/romeC1.png", "in/romeC1.map")
	assert.True(t, ok)
}
