package vec2101010

import "fmt"

// Vector is a four dimensional 2-10-10-10 vector packed into 4 bytes.
//
// The stored data maps to floating point values from 0.0 to 1.0. Values
// outside this range are clamped on write.
//
// X, Y and Z take 10 bits each. W takes 2 bits and can only hold 0, 1/3, 2/3
// and 1.
//
// The zero value is the vector (0, 0, 0, 0). Vector is a plain value: copies
// are independent and no synchronization is needed unless a single instance
// is shared and mutated.
type Vector struct {
	data uint32
}

// New quantizes x, y, z and w into a packed Vector.
//
// The stored values are a bit off precisely because of the low stored
// precision, especially w.
func New(x, y, z, w float32) Vector {
	return Vector{
		data: quantize(w, maxW)<<wShift |
			quantize(z, maxXYZ)<<zShift |
			quantize(y, maxXYZ)<<yShift |
			quantize(x, maxXYZ)<<xShift,
	}
}

// FromRaw wraps a packed word produced elsewhere, e.g. read back from a
// vertex buffer. Every 32-bit pattern is a valid vector.
func FromRaw(data uint32) Vector {
	return Vector{data: data}
}

// X returns the x component.
func (v Vector) X() float32 {
	return dequantize((v.data&xMask)>>xShift, maxXYZ)
}

// Y returns the y component.
func (v Vector) Y() float32 {
	return dequantize((v.data&yMask)>>yShift, maxXYZ)
}

// Z returns the z component.
func (v Vector) Z() float32 {
	return dequantize((v.data&zMask)>>zShift, maxXYZ)
}

// W returns the w component.
func (v Vector) W() float32 {
	return dequantize((v.data&wMask)>>wShift, maxW)
}

// SetX updates x, leaving y, z and w untouched.
func (v *Vector) SetX(x float32) {
	v.data = v.data&^xMask | quantize(x, maxXYZ)<<xShift
}

// SetY updates y, leaving x, z and w untouched.
func (v *Vector) SetY(y float32) {
	v.data = v.data&^yMask | quantize(y, maxXYZ)<<yShift
}

// SetZ updates z, leaving x, y and w untouched.
func (v *Vector) SetZ(z float32) {
	v.data = v.data&^zMask | quantize(z, maxXYZ)<<zShift
}

// SetW updates w, leaving x, y and z untouched.
func (v *Vector) SetW(w float32) {
	v.data = v.data&^wMask | quantize(w, maxW)<<wShift
}

// SetXYZ updates x, y and z in one pass. Only w survives from the previous
// state; the result equals SetX, SetY and SetZ applied in sequence.
func (v *Vector) SetXYZ(x, y, z float32) {
	v.data = v.data&wMask |
		quantize(z, maxXYZ)<<zShift |
		quantize(y, maxXYZ)<<yShift |
		quantize(x, maxXYZ)<<xShift
}

// Raw returns the packed word, ready to be placed into a buffer expecting
// GL_UNSIGNED_INT_2_10_10_10_REV data.
func (v Vector) Raw() uint32 {
	return v.data
}

// Levels returns the stored integer levels: x, y, z in [0, 1023] and w in
// [0, 3].
func (v Vector) Levels() (x, y, z, w uint32) {
	return (v.data & xMask) >> xShift,
		(v.data & yMask) >> yShift,
		(v.data & zMask) >> zShift,
		(v.data & wMask) >> wShift
}

// Components returns x, y, z and w.
func (v Vector) Components() [4]float32 {
	return [4]float32{v.X(), v.Y(), v.Z(), v.W()}
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("{%v, %v, %v, %v}", v.X(), v.Y(), v.Z(), v.W())
}
