package format

import (
	"bytes"
	"io"

	"github.com/JoshVarga/blast"
	"github.com/bodgit/cbmapper/cursor"
)

// Codec decompresses a single chunk, producing at most limit bytes
type Codec interface {
	Decompress(src []byte, limit int) ([]byte, error)
}

// CodecFunc adapts a function to the Codec interface
type CodecFunc func([]byte, int) ([]byte, error)

// Decompress calls f(src, limit)
func (f CodecFunc) Decompress(src []byte, limit int) ([]byte, error) {
	return f(src, limit)
}

func explode(src []byte, limit int) ([]byte, error) {
	r, err := blast.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(io.LimitReader(r, int64(limit)))
}

// PKWare is the DCL implode codec used by all three titles
var PKWare Codec = CodecFunc(explode)

// block is a run of bytes read sequentially. Any read past the end sets a
// sticky error and returns zero, so a whole grid or table can be read
// before checking once.
type block struct {
	off    int64
	length uint32
	data   []byte
	pos    int
	err    error
}

// readChunk consumes a u32 length and exactly that many bytes from c, then
// decompresses no more than limit bytes from them. The cursor is left at
// the end of the chunk even if the codec fails.
func readChunk(c *cursor.Cursor, codec Codec, limit int) (*block, error) {
	off := c.Offset()
	length, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	src, err := c.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}
	data, err := codec.Decompress(src, limit)
	if err != nil {
		return nil, &DecodeError{
			Offset: off,
			Length: length,
			Err:    err,
		}
	}
	if len(data) > limit {
		data = data[:limit]
	}
	return &block{
		off:    off,
		length: length,
		data:   data,
	}, nil
}

// readRaw consumes n uncompressed bytes from c
func readRaw(c *cursor.Cursor, n int) (*block, error) {
	off := c.Offset()
	data, err := c.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return &block{
		off:    off,
		length: uint32(n),
		data:   data,
	}, nil
}

func (b *block) take(n int) []byte {
	if b.err != nil {
		return nil
	}
	if n > len(b.data)-b.pos {
		b.err = &DecodeError{
			Offset: b.off,
			Length: b.length,
			Err:    ErrShortChunk,
		}
		return nil
	}
	p := b.data[b.pos : b.pos+n]
	b.pos += n
	return p
}

func (b *block) uint8() uint8 {
	if p := b.take(1); p != nil {
		return p[0]
	}
	return 0
}

func (b *block) uint16() uint16 {
	if p := b.take(2); p != nil {
		return uint16(p[0]) | uint16(p[1])<<8
	}
	return 0
}

func (b *block) uint32() uint32 {
	if p := b.take(4); p != nil {
		return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
	}
	return 0
}

// read returns the next value of the given width in bytes
func (b *block) read(width int) uint32 {
	switch width {
	case 1:
		return uint32(b.uint8())
	case 2:
		return uint32(b.uint16())
	default:
		return b.uint32()
	}
}

// end returns the first error encountered while reading the block
func (b *block) end() error {
	return b.err
}
