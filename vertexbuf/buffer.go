// Package vertexbuf builds contiguous GL_UNSIGNED_INT_2_10_10_10_REV vertex
// attribute streams out of packed vectors.
//
// Bytes returns the exact memory a graphics API expects: one little-endian
// 32-bit word per vertex. WriteTo and ReadFrom move the same data through an
// io.Writer/io.Reader, optionally framed into LZ4 or ZSTD compressed blocks:
//
//	buf := vertexbuf.New(vertexbuf.WithCompression(vertexbuf.CompressionZSTD))
//	buf.AppendFloats(0.444, 0.555, 0.666, 1)
//	_, err := buf.WriteTo(f)
//
// A Buffer is not safe for concurrent use.
package vertexbuf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vec2101010"
	"github.com/hupe1980/vec2101010/internal/compress"
)

// Buffer is a growable attribute stream of packed vectors.
type Buffer struct {
	data []vec2101010.Vector
	opts options
}

// New creates an empty Buffer.
func New(optFns ...Option) *Buffer {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	opts.logger = opts.logger.WithCompression(opts.compression)

	return &Buffer{opts: opts}
}

// Append adds vectors to the end of the stream.
func (b *Buffer) Append(v ...vec2101010.Vector) {
	b.data = append(b.data, v...)
}

// AppendFloats quantizes and appends one vector.
func (b *Buffer) AppendFloats(x, y, z, w float32) {
	b.data = append(b.data, vec2101010.New(x, y, z, w))
}

// Len returns the number of vectors.
func (b *Buffer) Len() int {
	return len(b.data)
}

// At returns the vector at index i.
func (b *Buffer) At(i int) (vec2101010.Vector, error) {
	if i < 0 || i >= len(b.data) {
		return vec2101010.Vector{}, &IndexError{Index: i, Len: len(b.data)}
	}
	return b.data[i], nil
}

// Set replaces the vector at index i.
func (b *Buffer) Set(i int, v vec2101010.Vector) error {
	if i < 0 || i >= len(b.data) {
		return &IndexError{Index: i, Len: len(b.data)}
	}
	b.data[i] = v
	return nil
}

// Vectors returns the underlying vectors. The slice aliases the buffer and
// is only valid until the next Append.
func (b *Buffer) Vectors() []vec2101010.Vector {
	return b.data
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Bytes returns the stream as little-endian words, 4 bytes per vector.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, len(b.data)*vec2101010.Size)
	for _, v := range b.data {
		out = binary.LittleEndian.AppendUint32(out, v.Raw())
	}
	return out
}

// WriteTo implements io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	blocks, err := b.encode()
	if err != nil {
		b.opts.logger.LogWrite(len(b.data), 0, 0, err)
		return 0, err
	}

	var written int64
	for _, block := range blocks {
		n, err := w.Write(block)
		written += int64(n)
		if err != nil {
			b.opts.logger.LogWrite(len(b.data), len(blocks), written, err)
			return written, err
		}
	}

	b.opts.logger.LogWrite(len(b.data), len(blocks), written, nil)
	return written, nil
}

// encode splits the stream into blocks. Uncompressed streams are a single
// unframed block.
func (b *Buffer) encode() ([][]byte, error) {
	raw := b.Bytes()
	if b.opts.compression == CompressionNone {
		return [][]byte{raw}, nil
	}

	blocks := make([][]byte, (len(raw)+b.opts.blockSize-1)/b.opts.blockSize)

	var g errgroup.Group
	g.SetLimit(b.opts.concurrency)

	for i := range blocks {
		start := i * b.opts.blockSize
		end := min(start+b.opts.blockSize, len(raw))
		g.Go(func() error {
			block, err := compress.Block(raw[start:end], b.opts.compression)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			blocks[i] = block
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

// ReadFrom implements io.ReaderFrom. Decoded vectors are appended; on error
// the buffer is left unchanged.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var (
		raw  []byte
		read int64
		err  error
	)

	if b.opts.compression == CompressionNone {
		var buf bytes.Buffer
		read, err = buf.ReadFrom(r)
		raw = buf.Bytes()
	} else {
		raw, read, err = readBlocks(r, b.opts.compression)
	}

	if err == nil && len(raw)%vec2101010.Size != 0 {
		err = fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(raw)%vec2101010.Size)
	}
	if err != nil {
		b.opts.logger.LogRead(0, read, err)
		return read, err
	}

	count := len(raw) / vec2101010.Size
	b.data = append(b.data, make([]vec2101010.Vector, count)...)
	dst := b.data[len(b.data)-count:]
	for i := range dst {
		dst[i] = vec2101010.FromRaw(binary.LittleEndian.Uint32(raw[i*vec2101010.Size:]))
	}

	b.opts.logger.LogRead(count, read, nil)
	return read, nil
}

func readBlocks(r io.Reader, c Compression) ([]byte, int64, error) {
	br := compress.NewReader(r, c)

	var raw []byte
	for {
		block, err := br.ReadBlock()
		if errors.Is(err, io.EOF) {
			return raw, br.BytesRead(), nil
		}
		if err != nil {
			return nil, br.BytesRead(), err
		}
		raw = append(raw, block...)
	}
}
