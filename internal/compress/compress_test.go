package compress

import (
	"bytes"
	"encoding/binary"
	"io"
	"runtime"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vec2101010/testutil"
)

// readOne decodes a single framed block.
func readOne(block []byte, t Type) ([]byte, error) {
	return NewReader(bytes.NewReader(block), t).ReadBlock()
}

func TestBlock_LZ4(t *testing.T) {
	// Test with compressible data (repeated patterns)
	data := bytes.Repeat([]byte("hello world! "), 1000)

	compressed, err := Block(data, LZ4)
	require.NoError(t, err)

	// Should be significantly smaller
	assert.Less(t, len(compressed), len(data)/2, "LZ4 should compress repeated data well")

	decompressed, err := readOne(compressed, LZ4)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestBlock_ZSTD(t *testing.T) {
	data := bytes.Repeat([]byte("hello world! "), 1000)

	compressed, err := Block(data, ZSTD)
	require.NoError(t, err)

	assert.Less(t, len(compressed), len(data)/2, "ZSTD should compress repeated data well")

	decompressed, err := readOne(compressed, ZSTD)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestBlock_Incompressible(t *testing.T) {
	// Random words do not compress; the block is stored raw.
	rng := testutil.NewRNG(4711)
	data := make([]byte, 0, 4096)
	for _, w := range rng.RawWords(1024) {
		data = binary.LittleEndian.AppendUint32(data, w)
	}

	for _, typ := range []Type{None, LZ4, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			block, err := Block(data, typ)
			require.NoError(t, err)
			assert.Equal(t, HeaderSize+len(data), len(block))
			assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(block[4:]))

			got, err := readOne(block, typ)
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestBlock_Empty(t *testing.T) {
	for _, typ := range []Type{None, LZ4, ZSTD} {
		block, err := Block(nil, typ)
		require.NoError(t, err)
		assert.Len(t, block, HeaderSize)

		got, err := readOne(block, typ)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestBlock_UnknownType(t *testing.T) {
	_, err := Block([]byte{1, 2, 3}, Type(9))
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, "unknown(9)", Type(9).String())
}

func TestReadOne_Corrupt(t *testing.T) {
	_, err := readOne([]byte{1, 2, 3}, LZ4)
	assert.ErrorIs(t, err, ErrCorruptBlock)

	data := bytes.Repeat([]byte("abcd"), 512)
	block, err := Block(data, LZ4)
	require.NoError(t, err)

	_, err = readOne(block[:len(block)-1], LZ4)
	assert.ErrorIs(t, err, ErrCorruptBlock)
}

func TestReader(t *testing.T) {
	for _, typ := range []Type{None, LZ4, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			blocks := [][]byte{
				bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04}, 300),
				bytes.Repeat([]byte{0xFF}, 64),
				{0xDE, 0xAD, 0xBE, 0xEF},
			}

			var stream bytes.Buffer
			for _, b := range blocks {
				framed, err := Block(b, typ)
				require.NoError(t, err)
				stream.Write(framed)
			}
			total := int64(stream.Len())

			r := NewReader(&stream, typ)
			for _, want := range blocks {
				got, err := r.ReadBlock()
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			_, err := r.ReadBlock()
			assert.ErrorIs(t, err, io.EOF)
			assert.Equal(t, total, r.BytesRead())
		})
	}
}

func TestReader_Truncated(t *testing.T) {
	framed, err := Block(bytes.Repeat([]byte("vec"), 100), ZSTD)
	require.NoError(t, err)

	t.Run("header", func(t *testing.T) {
		_, err := NewReader(bytes.NewReader(framed[:3]), ZSTD).ReadBlock()
		assert.ErrorIs(t, err, ErrCorruptBlock)
	})

	t.Run("payload", func(t *testing.T) {
		_, err := NewReader(bytes.NewReader(framed[:len(framed)-2]), ZSTD).ReadBlock()
		assert.ErrorIs(t, err, ErrCorruptBlock)
	})

	t.Run("oversized", func(t *testing.T) {
		hdr := make([]byte, HeaderSize)
		binary.LittleEndian.PutUint32(hdr, MaxBlockSize+1)
		_, err := NewReader(bytes.NewReader(hdr), LZ4).ReadBlock()
		assert.ErrorIs(t, err, ErrCorruptBlock)
	})
}

// allocatedDuring reports the bytes allocated while fn runs.
func allocatedDuring(fn func()) uint64 {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	fn()
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc
}

func TestReader_ZSTDUnderstatedSize(t *testing.T) {
	// 64 MiB of zeros compress to a few KiB; the header claims 4 bytes.
	zeros := make([]byte, 64<<20)
	const limit = 32 << 20

	t.Run("frame content size", func(t *testing.T) {
		payload := blockZSTD(zeros)
		require.Less(t, len(payload), 1<<20)
		block := frame(payload, 4)

		var err error
		allocated := allocatedDuring(func() {
			_, err = readOne(block, ZSTD)
		})
		assert.ErrorIs(t, err, ErrCorruptBlock)
		assert.Less(t, allocated, uint64(limit))
	})

	t.Run("streamed frame", func(t *testing.T) {
		// A streaming encoder omits the frame content size.
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = enc.Write(zeros)
		require.NoError(t, err)
		require.NoError(t, enc.Close())

		block := frame(buf.Bytes(), 4)

		allocated := allocatedDuring(func() {
			_, err = readOne(block, ZSTD)
		})
		assert.ErrorIs(t, err, ErrCorruptBlock)
		assert.Less(t, allocated, uint64(limit))
	})

	t.Run("overstated", func(t *testing.T) {
		payload := blockZSTD(bytes.Repeat([]byte("vec"), 1000))
		_, err := readOne(frame(payload, 4000), ZSTD)
		assert.ErrorIs(t, err, ErrCorruptBlock)
	})
}
