package cursor

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLittleEndian(t *testing.T) {
	c := NewBytes([]byte{0x01, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12})

	b, err := c.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), b)

	s, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), s)

	i, err := c.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), i)

	assert.Equal(t, int64(7), c.Offset())
	assert.Equal(t, int64(0), c.Remaining())
}

func TestReadHighBitValues(t *testing.T) {
	c := NewBytes([]byte{0xff, 0xff, 0xfe, 0xff, 0xff, 0xff})

	s, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xffff), s)

	i, err := c.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xfffffffe), i)
}

func TestTruncated(t *testing.T) {
	c := NewBytes([]byte{0x01, 0x02, 0x03})

	_, err := c.ReadUint16()
	require.NoError(t, err)

	_, err = c.ReadUint32()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncated))

	var te *TruncatedError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, int64(2), te.Offset)
	assert.Equal(t, int64(4), te.Want)
	assert.Equal(t, int64(1), te.Have)

	// A failed read doesn't move the cursor
	assert.Equal(t, int64(2), c.Offset())
}

func TestSeek(t *testing.T) {
	c := NewBytes(make([]byte, 16))

	off, err := c.Seek(10, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(10), off)

	off, err = c.Seek(-4, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(6), off)

	off, err = c.Seek(16, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(16), off)

	_, err = c.Seek(17, io.SeekStart)
	assert.True(t, errors.Is(err, ErrTruncated))

	_, err = c.Seek(-1, io.SeekStart)
	assert.Error(t, err)

	_, err = c.Seek(0, io.SeekEnd)
	assert.Error(t, err)
}

func TestPeek(t *testing.T) {
	c := NewBytes([]byte{0x2a, 0x01})

	v, err := c.Peek8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2a), v)
	assert.Equal(t, int64(0), c.Offset())
}

func TestSkipChunk(t *testing.T) {
	var b bytes.Buffer
	b.Write([]byte{0x03, 0x00, 0x00, 0x00, 0xaa, 0xbb, 0xcc})
	b.Write([]byte{0x05, 0x00, 0x00, 0x00, 0xdd})

	c := NewBytes(b.Bytes())

	n, err := c.SkipChunk()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), n)
	assert.Equal(t, int64(7), c.Offset())

	_, err = c.SkipChunk()
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestReadBytes(t *testing.T) {
	c := NewBytes([]byte("abcdef"))

	b, err := c.ReadBytes(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), b)

	_, err = c.ReadBytes(4)
	assert.True(t, errors.Is(err, ErrTruncated))

	_, err = c.ReadBytes(-1)
	assert.Error(t, err)
}

func TestFindAll(t *testing.T) {
	data := []byte("xxMAPSyyyyMAPSMAPSzz")
	c := NewBytes(data)

	offsets, err := c.FindAll([]byte("MAPS"))
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 14, 18}, offsets)
	assert.Equal(t, int64(0), c.Offset())

	_, err = c.Seek(7, io.SeekStart)
	require.NoError(t, err)

	offsets, err = c.FindAll([]byte("MAPS"))
	require.NoError(t, err)
	assert.Equal(t, []int64{14, 18}, offsets)
}

func TestFindAllAcrossWindows(t *testing.T) {
	data := make([]byte, searchWindow*2+10)
	// The second match straddles a window boundary
	copy(data[searchWindow-2:], "MAPS")
	copy(data[searchWindow*2+2:], "MAPS")

	offsets, err := NewBytes(data).FindAll([]byte("MAPS"))
	require.NoError(t, err)
	assert.Equal(t, []int64{searchWindow + 2, searchWindow*2 + 6}, offsets)
}

func TestOpen(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.bin")
	require.NoError(t, os.WriteFile(name, []byte{0x78, 0x56, 0x34, 0x12}, 0o644))

	f, err := Open(name)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 4, f.Len())

	c1, c2 := f.Cursor(), f.Cursor()

	v, err := c1.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v)

	// Independent positions
	assert.Equal(t, int64(0), c2.Offset())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
