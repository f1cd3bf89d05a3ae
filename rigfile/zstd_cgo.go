//go:build gozstd

package rigfile

import (
	"github.com/valyala/gozstd"
)

// Compress compresses the payload with the cgo Zstandard bindings.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses a Zstandard payload with the cgo bindings.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
