package vec2101010

import "math"

// Field layout of the packed word (LSB first).
const (
	xShift = 0
	yShift = 10
	zShift = 20
	wShift = 30

	// maxXYZ is the largest stored level of a 10-bit component.
	maxXYZ = 1<<10 - 1
	// maxW is the largest stored level of the 2-bit component.
	maxW = 1<<2 - 1

	xMask uint32 = maxXYZ << xShift
	yMask uint32 = maxXYZ << yShift
	zMask uint32 = maxXYZ << zShift
	wMask uint32 = maxW << wShift
)

// clamp limits c to [0, 1]. NaN maps to 0.
func clamp(c float32) float32 {
	if !(c > 0) {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// quantize maps a normalized float to an integer level in [0, maxLevel].
//
// The product is taken in float32 and rounded half away from zero.
func quantize(c float32, maxLevel uint32) uint32 {
	return uint32(math.Round(float64(clamp(c) * float32(maxLevel))))
}

// dequantize maps a stored level back to [0, 1].
func dequantize(level, maxLevel uint32) float32 {
	return float32(level) / float32(maxLevel)
}
