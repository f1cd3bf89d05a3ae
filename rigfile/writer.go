package rigfile

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/toonforge/shaderig/errs"
	"github.com/toonforge/shaderig/internal/options"
	"github.com/toonforge/shaderig/rig"
)

type writerConfig struct {
	compression Compression
}

// WriterOption configures Write.
type WriterOption = options.Option[*writerConfig]

// WithCompression selects the payload compression. The default is Zstd.
func WithCompression(c Compression) WriterOption {
	return options.New(func(cfg *writerConfig) error {
		if _, err := codecFor(c); err != nil {
			return err
		}
		cfg.compression = c

		return nil
	})
}

// Write serializes the library to w using the rig library framing. The
// written file is bound to the current packing layout fingerprint.
func Write(w io.Writer, lib *Library, opts ...WriterOption) error {
	cfg := &writerConfig{compression: CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	payload, err := json.Marshal(lib)
	if err != nil {
		return fmt.Errorf("marshal rig library: %w", err)
	}

	codec, err := codecFor(cfg.compression)
	if err != nil {
		return err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress rig library: %w", err)
	}

	header := make([]byte, headerSize)
	copy(header, magic)
	header[offsetVersion] = formatVersion
	header[offsetCompression] = byte(cfg.compression)
	binary.BigEndian.PutUint64(header[offsetFingerprint:], rig.PackingLayout().Fingerprint())
	binary.BigEndian.PutUint64(header[offsetChecksum:], xxhash.Sum64(compressed))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write rig library header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("write rig library payload: %w", err)
	}

	return nil
}

// Read parses a rig library from r, validating magic, version, checksum and
// layout fingerprint before decoding the payload.
func Read(r io.Reader) (*Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rig library: %w", err)
	}
	if len(data) < headerSize || string(data[:len(magic)]) != magic {
		return nil, errs.ErrInvalidMagic
	}

	version := data[offsetVersion]
	if version > formatVersion {
		return nil, fmt.Errorf("%w: file version %d, newest supported %d",
			errs.ErrUnsupportedVersion, version, formatVersion)
	}

	codec, err := codecFor(Compression(data[offsetCompression]))
	if err != nil {
		return nil, err
	}

	fingerprint := binary.BigEndian.Uint64(data[offsetFingerprint:])
	if want := rig.PackingLayout().Fingerprint(); fingerprint != want {
		return nil, fmt.Errorf("%w: file 0x%016x, layout 0x%016x",
			errs.ErrLayoutMismatch, fingerprint, want)
	}

	compressed := data[headerSize:]
	if sum := xxhash.Sum64(compressed); sum != binary.BigEndian.Uint64(data[offsetChecksum:]) {
		return nil, errs.ErrChecksumMismatch
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress rig library: %w", err)
	}

	lib := &Library{}
	if err := json.Unmarshal(payload, lib); err != nil {
		return nil, fmt.Errorf("unmarshal rig library: %w", err)
	}

	return lib, nil
}
