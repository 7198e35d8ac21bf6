package vec2101010

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidComponent is matched by every error returned from NewStrict.
	ErrInvalidComponent = errors.New("invalid component")

	// ErrShortBuffer is returned when decoding fewer than 4 bytes.
	ErrShortBuffer = errors.New("short buffer: need 4 bytes")
)

// ErrOutOfRange indicates a component that is NaN or outside [0, 1].
type ErrOutOfRange struct {
	Component string
	Value     float32
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("component %s out of range [0, 1]: %v", e.Component, e.Value)
}

// Is reports whether target is ErrInvalidComponent.
func (e *ErrOutOfRange) Is(target error) bool { return target == ErrInvalidComponent }

// NewStrict is like New but rejects NaN and values outside [0, 1] instead
// of clamping them.
func NewStrict(x, y, z, w float32) (Vector, error) {
	for _, c := range [...]struct {
		name  string
		value float32
	}{{"x", x}, {"y", y}, {"z", z}, {"w", w}} {
		if math.IsNaN(float64(c.value)) || c.value < 0 || c.value > 1 {
			return Vector{}, &ErrOutOfRange{Component: c.name, Value: c.value}
		}
	}
	return New(x, y, z, w), nil
}
