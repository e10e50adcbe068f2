/*
Package cursor implements a little-endian binary cursor over a random access
byte source.

Every read advances the cursor by exactly the number of bytes consumed. Reads
and skips that would run past the end of the source fail with a
*TruncatedError rather than returning partial data.
*/
package cursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// ErrTruncated is matched by every *TruncatedError
var ErrTruncated = errors.New("cursor: truncated input")

// TruncatedError records an attempt to read or skip past the end of the
// input
type TruncatedError struct {
	Offset int64 // Offset of the failed operation
	Want   int64 // Bytes requested
	Have   int64 // Bytes remaining
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("cursor: truncated input at offset %#x: want %d bytes, have %d", e.Offset, e.Want, e.Have)
}

// Is allows errors.Is(err, ErrTruncated)
func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// Cursor tracks a position within an io.ReaderAt. A Cursor is not safe for
// concurrent use, however several cursors may share the same source.
type Cursor struct {
	r    io.ReaderAt
	off  int64
	size int64
	swap [4]byte
}

// New returns a Cursor positioned at the start of r which is size bytes long
func New(r io.ReaderAt, size int64) *Cursor {
	return &Cursor{
		r:    r,
		size: size,
	}
}

// NewBytes returns a Cursor over b
func NewBytes(b []byte) *Cursor {
	return New(bytes.NewReader(b), int64(len(b)))
}

// Offset returns the current absolute position
func (c *Cursor) Offset() int64 {
	return c.off
}

// Len returns the total length of the input
func (c *Cursor) Len() int64 {
	return c.size
}

// Remaining returns the number of unread bytes
func (c *Cursor) Remaining() int64 {
	return c.size - c.off
}

func (c *Cursor) truncated(want int64) error {
	have := c.Remaining()
	if have < 0 {
		have = 0
	}
	return &TruncatedError{
		Offset: c.off,
		Want:   want,
		Have:   have,
	}
}

func (c *Cursor) read(b []byte) error {
	if int64(len(b)) > c.Remaining() {
		return c.truncated(int64(len(b)))
	}
	n, err := c.r.ReadAt(b, c.off)
	if n < len(b) {
		if err == nil || err == io.EOF {
			return c.truncated(int64(len(b)))
		}
		return err
	}
	c.off += int64(n)
	return nil
}

// ReadUint8 reads a single byte
func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.read(c.swap[:1]); err != nil {
		return 0, err
	}
	return c.swap[0], nil
}

// ReadUint16 reads a little-endian 16-bit value
func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.read(c.swap[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(c.swap[:2]), nil
}

// ReadUint32 reads a little-endian 32-bit value
func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.read(c.swap[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(c.swap[:4]), nil
}

// ReadBytes reads exactly n bytes into a new slice
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("cursor: negative read of %d bytes at offset %#x", n, c.off)
	}
	if int64(n) > c.Remaining() {
		return nil, c.truncated(int64(n))
	}
	b := make([]byte, n)
	if err := c.read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Peek8 returns the next byte without advancing
func (c *Cursor) Peek8() (uint8, error) {
	v, err := c.ReadUint8()
	if err != nil {
		return 0, err
	}
	c.off--
	return v, nil
}

// Seek moves the cursor. Only io.SeekStart and io.SeekCurrent are
// supported. Seeking past the end of the input is an error, seeking to
// exactly the end is not.
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = c.off + offset
	default:
		return c.off, errors.New("cursor: invalid whence")
	}
	if abs < 0 {
		return c.off, fmt.Errorf("cursor: negative position %d", abs)
	}
	if abs > c.size {
		return c.off, c.truncated(abs - c.off)
	}
	c.off = abs
	return abs, nil
}

// Skip advances the cursor by n bytes
func (c *Cursor) Skip(n int64) error {
	_, err := c.Seek(n, io.SeekCurrent)
	return err
}

// SkipChunk reads a 32-bit length and advances past that many bytes without
// interpreting them. The length is returned.
func (c *Cursor) SkipChunk() (uint32, error) {
	length, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	if err := c.Skip(int64(length)); err != nil {
		return length, err
	}
	return length, nil
}

const searchWindow = 64 << 10

// FindAll scans from the current offset to the end of the input and returns
// the offset immediately after every non-overlapping occurrence of pattern.
// The cursor position is unchanged.
func (c *Cursor) FindAll(pattern []byte) ([]int64, error) {
	if len(pattern) == 0 {
		return nil, errors.New("cursor: empty pattern")
	}

	var offsets []int64

	buf := make([]byte, searchWindow+len(pattern)-1)
	pos := c.off
	for pos < c.size {
		n := int64(len(buf))
		if n > c.size-pos {
			n = c.size - pos
		}
		if _, err := c.r.ReadAt(buf[:n], pos); err != nil && err != io.EOF {
			return nil, err
		}

		window := buf[:n]
		advance := int64(0)
		for {
			i := bytes.Index(window[advance:], pattern)
			if i < 0 {
				break
			}
			advance += int64(i + len(pattern))
			offsets = append(offsets, pos+advance)
		}

		if pos+n >= c.size {
			break
		}

		// Overlap windows so a match straddling the boundary is not missed
		next := pos + n - int64(len(pattern)-1)
		if next < pos+advance {
			next = pos + advance
		}
		pos = next
	}

	return offsets, nil
}

// File is a memory-mapped input file
type File struct {
	r *mmap.ReaderAt
}

// Open memory-maps the named file
func Open(name string) (*File, error) {
	r, err := mmap.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{r: r}, nil
}

// Cursor returns a new Cursor positioned at the start of the file. Each call
// returns an independent Cursor.
func (f *File) Cursor() *Cursor {
	return New(f.r, int64(f.r.Len()))
}

// Len returns the size of the file
func (f *File) Len() int {
	return f.r.Len()
}

// Close unmaps the file
func (f *File) Close() error {
	return f.r.Close()
}
