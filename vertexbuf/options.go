package vertexbuf

import (
	"github.com/hupe1980/vec2101010"
	"github.com/hupe1980/vec2101010/internal/compress"
)

// Compression selects how WriteTo and ReadFrom frame the stream.
type Compression = compress.Type

const (
	// CompressionNone streams raw little-endian words without framing.
	CompressionNone = compress.None
	// CompressionLZ4 frames the stream into LZ4 compressed blocks.
	CompressionLZ4 = compress.LZ4
	// CompressionZSTD frames the stream into ZSTD compressed blocks.
	CompressionZSTD = compress.ZSTD
)

// DefaultBlockSize is the uncompressed size of a framed block.
const DefaultBlockSize = 256 * 1024

type options struct {
	compression Compression
	blockSize   int
	concurrency int
	logger      *Logger
}

func defaultOptions() options {
	return options{
		compression: CompressionNone,
		blockSize:   DefaultBlockSize,
		concurrency: 1,
		logger:      NoopLogger(),
	}
}

// Option configures a Buffer.
type Option func(*options)

// WithCompression sets the stream compression. Reader and writer must agree.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithBlockSize sets the uncompressed block size for compressed streams.
// It is rounded down to a whole number of vectors; values below one vector
// fall back to DefaultBlockSize.
func WithBlockSize(size int) Option {
	return func(o *options) {
		size -= size % vec2101010.Size
		if size <= 0 || size > compress.MaxBlockSize {
			size = DefaultBlockSize
		}
		o.blockSize = size
	}
}

// WithConcurrency bounds the number of blocks compressed in parallel.
// Values <= 1 compress sequentially.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
