// Package compress implements the framed block compression used by
// vertex buffer streams.
//
// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...],
// both sizes little-endian. CompressedSize == 0 means Data is stored raw.
package compress

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type defines the compression algorithm used.
type Type uint8

const (
	// None indicates no compression.
	None Type = 0
	// LZ4 indicates LZ4 block compression (fast, good for hot data).
	LZ4 Type = 1
	// ZSTD indicates ZSTD block compression (better ratio, good for cold data).
	ZSTD Type = 2
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// HeaderSize is the size of a block header in bytes.
const HeaderSize = 8

// MaxBlockSize bounds the uncompressed size accepted when reading a block.
const MaxBlockSize = 64 << 20

var (
	// ErrCorruptBlock is returned for truncated or inconsistent blocks.
	ErrCorruptBlock = errors.New("corrupt block")

	// ErrUnknownType is returned for an unsupported compression type.
	ErrUnknownType = errors.New("unknown compression type")
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxBlockSize),
	)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block compresses data and returns it framed with a header.
// If compression doesn't help (ratio > 0.9) the data is stored raw.
func Block(data []byte, t Type) ([]byte, error) {
	var (
		compressed []byte
		err        error
	)

	switch t {
	case None:
	case LZ4:
		compressed, err = blockLZ4(data)
	case ZSTD:
		compressed = blockZSTD(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}

	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		return frame(data, 0), nil
	}

	return frame(compressed, uint32(len(data))), nil
}

// frame prefixes payload with a header. uncompressed == 0 marks a raw block.
func frame(payload []byte, uncompressed uint32) []byte {
	out := make([]byte, HeaderSize+len(payload))
	if uncompressed == 0 {
		binary.LittleEndian.PutUint32(out[0:], uint32(len(payload)))
		binary.LittleEndian.PutUint32(out[4:], 0)
	} else {
		binary.LittleEndian.PutUint32(out[0:], uncompressed)
		binary.LittleEndian.PutUint32(out[4:], uint32(len(payload)))
	}
	copy(out[HeaderSize:], payload)
	return out
}

func blockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, nil // Incompressible
	}

	return compressed[:n], nil
}

func blockZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

// header is a parsed block header.
type header struct {
	uncompressedSize uint32
	compressedSize   uint32
}

// parseHeader validates a block header against MaxBlockSize.
func parseHeader(b []byte) (header, error) {
	h := header{
		uncompressedSize: binary.LittleEndian.Uint32(b[0:]),
		compressedSize:   binary.LittleEndian.Uint32(b[4:]),
	}
	if h.uncompressedSize > MaxBlockSize {
		return header{}, fmt.Errorf("%w: block of %d bytes exceeds limit", ErrCorruptBlock, h.uncompressedSize)
	}
	if h.compressedSize > MaxBlockSize {
		return header{}, fmt.Errorf("%w: block of %d bytes exceeds limit", ErrCorruptBlock, h.compressedSize)
	}
	return h, nil
}

// payloadSize is the number of bytes following the header.
func (h header) payloadSize() uint32 {
	if h.compressedSize == 0 {
		return h.uncompressedSize
	}
	return h.compressedSize
}

func (h header) decode(payload []byte, t Type) ([]byte, error) {
	if h.compressedSize == 0 {
		return payload, nil
	}

	switch t {
	case LZ4:
		result := make([]byte, h.uncompressedSize)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
		}
		if uint32(n) != h.uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return result, nil

	case ZSTD:
		return h.decodeZSTD(payload)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// decodeZSTD never produces more than uncompressedSize+1 bytes, whatever
// the frame expands to.
func (h header) decodeZSTD(payload []byte) ([]byte, error) {
	var fh zstd.Header
	if err := fh.Decode(payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
	}
	if fh.HasFCS && fh.FrameContentSize != uint64(h.uncompressedSize) {
		return nil, fmt.Errorf("%w: frame holds %d bytes, header claims %d",
			ErrCorruptBlock, fh.FrameContentSize, h.uncompressedSize)
	}

	dec := getZstdDecoder()
	defer putZstdDecoder(dec)

	if err := dec.Reset(bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
	}

	result := make([]byte, h.uncompressedSize)
	if _, err := io.ReadFull(dec, result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
	}

	var extra [1]byte
	if n, _ := io.ReadFull(dec, extra[:]); n != 0 {
		return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
	}
	return result, nil
}

// Reader reads framed blocks from an underlying reader.
type Reader struct {
	r    io.Reader
	t    Type
	hdr  [HeaderSize]byte
	read int64
}

// NewReader creates a reader for blocks compressed with t.
func NewReader(r io.Reader, t Type) *Reader {
	return &Reader{r: r, t: t}
}

// ReadBlock reads and decompresses the next block.
// It returns io.EOF when the stream ends cleanly between blocks.
func (c *Reader) ReadBlock() ([]byte, error) {
	n, err := io.ReadFull(c.r, c.hdr[:])
	c.read += int64(n)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: short header: %w", ErrCorruptBlock, err)
	}

	h, err := parseHeader(c.hdr[:])
	if err != nil {
		return nil, err
	}

	payload := make([]byte, h.payloadSize())
	n, err = io.ReadFull(c.r, payload)
	c.read += int64(n)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: short payload: %w", ErrCorruptBlock, err)
	}

	return h.decode(payload, c.t)
}

// BytesRead returns the total framed bytes consumed from the underlying reader.
func (c *Reader) BytesRead() int64 {
	return c.read
}
