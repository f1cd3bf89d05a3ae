package rigfile

import (
	"fmt"

	"github.com/toonforge/shaderig/errs"
)

// Compression identifies the algorithm applied to a rig library payload.
type Compression uint8

const (
	CompressionNone Compression = 0x1 // CompressionNone stores the payload as-is.
	CompressionZstd Compression = 0x2 // CompressionZstd applies Zstandard compression.
	CompressionS2   Compression = 0x3 // CompressionS2 applies S2 compression.
	CompressionLZ4  Compression = 0x4 // CompressionLZ4 applies LZ4 block compression.
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec compresses and decompresses rig library payloads. Implementations
// are stateless values safe for concurrent use.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// codecFor returns the codec implementing the given compression tag.
func codecFor(c Compression) (Codec, error) {
	switch c {
	case CompressionNone:
		return NoOpCodec{}, nil
	case CompressionZstd:
		return ZstdCodec{}, nil
	case CompressionS2:
		return S2Codec{}, nil
	case CompressionLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownCompression, uint8(c))
	}
}
