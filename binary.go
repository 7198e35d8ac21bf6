package vec2101010

import "encoding/binary"

// Size is the encoded size of a Vector in bytes.
const Size = 4

// MarshalBinary encodes the packed word as 4 little-endian bytes.
func (v Vector) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, Size))
}

// AppendBinary appends the 4 little-endian bytes of the packed word to b.
func (v Vector) AppendBinary(b []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint32(b, v.data), nil
}

// UnmarshalBinary decodes the first 4 bytes of data as a little-endian
// packed word. Extra bytes are ignored.
func (v *Vector) UnmarshalBinary(data []byte) error {
	if len(data) < Size {
		return ErrShortBuffer
	}
	v.data = binary.LittleEndian.Uint32(data)
	return nil
}

// Encode packs each [x, y, z, w] of src into dst.
// dst must have length >= len(src).
func Encode(dst []Vector, src [][4]float32) {
	for i := range src {
		dst[i] = New(src[i][0], src[i][1], src[i][2], src[i][3])
	}
}

// Decode unpacks each vector of src into dst.
// dst must have length >= len(src).
func Decode(dst [][4]float32, src []Vector) {
	for i := range src {
		dst[i] = src[i].Components()
	}
}
