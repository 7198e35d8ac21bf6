package vertexbuf

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vec2101010/internal/compress"
)

var (
	// ErrTruncated is returned when a stream does not hold a whole number
	// of packed vectors.
	ErrTruncated = errors.New("truncated vertex stream")

	// ErrCorruptBlock is returned for damaged compressed blocks.
	ErrCorruptBlock = compress.ErrCorruptBlock

	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError indicates an access outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }
