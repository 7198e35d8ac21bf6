// Package vec2101010 implements a 32-bit four dimensional vector where the
// first three dimensions take 10 bits each and the last takes 2 bits.
//
// It is useful for representing a color with an alpha, or a normal, where the
// fourth component does not require much precision. The packed layout is
// compatible with the GL_UNSIGNED_INT_2_10_10_10_REV vertex attribute type:
//
//	bits  0-9   x  (0..1023)
//	bits 10-19  y  (0..1023)
//	bits 20-29  z  (0..1023)
//	bits 30-31  w  (0..3)
//
// # Quick Start
//
//	v := vec2101010.New(0.444, 0.555, 0.666, 0.2)
//	v.X()      // ~0.444
//	v.W()      // 1/3: two bits only hold 0, 1/3, 2/3 and 1
//	raw := v.Raw()
//	same := vec2101010.FromRaw(raw)
//
// # Quantization
//
// Inputs are clamped to [0, 1] (NaN maps to 0), scaled by the field maximum
// and rounded to the nearest level, ties away from zero. Reading divides the
// stored level by the field maximum, so the maximum level decodes to exactly
// 1.0.
//
// Use NewStrict to reject out-of-range input instead of clamping it, and the
// vertexbuf package to build whole attribute streams.
package vec2101010
