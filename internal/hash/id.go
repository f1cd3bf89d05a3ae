package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest is a streaming xxHash64 accumulator used for multi-field
// fingerprints such as packing layout signatures.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty streaming digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString appends a string to the digest.
func (d *Digest) WriteString(s string) {
	_, _ = d.d.WriteString(s)
}

// WriteByte appends a single byte to the digest.
func (d *Digest) WriteByte(b byte) error {
	_, _ = d.d.Write([]byte{b})
	return nil
}

// WriteUint64 appends a 64-bit value to the digest in big-endian order.
func (d *Digest) WriteUint64(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, _ = d.d.Write(buf[:])
}

// Sum64 returns the accumulated hash.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
