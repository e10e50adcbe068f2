package format

import (
	"errors"
	"fmt"
)

// ErrShortChunk is returned when a chunk decompresses to fewer bytes than
// the decode program needs from it
var ErrShortChunk = errors.New("format: chunk too short")

// FormatError is returned when a file can't be recognised as belonging to
// the expected title
type FormatError struct {
	Title  Title
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format: not a %s file: %s", e.Title, e.Reason)
}

// SizeError is returned when the declared map size can't fit the title's
// grids
type SizeError struct {
	Title   Title
	MapSize int64
	Max     int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("format: invalid %s map size %d, maximum is %d", e.Title, e.MapSize, e.Max)
}

// DecodeError is returned when the codec rejects a chunk or the chunk
// doesn't hold enough data
type DecodeError struct {
	Offset int64  // Offset of the chunk length
	Length uint32 // Compressed length
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("format: bad chunk at offset %#x, length %d: %v", e.Offset, e.Length, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StepError records which step of a decode program failed and where
type StepError struct {
	Title  Title
	Kind   Kind
	Step   string
	Offset int64 // Cursor offset when the step started
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("format: %s %s: %s at offset %#x: %v", e.Title, e.Kind, e.Step, e.Offset, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
