// Package errs defines the sentinel error values shared across shaderig
// packages.
//
// All errors are plain sentinels so callers can classify failures with
// errors.Is. Packages wrap them with fmt.Errorf("%w: ...") to attach
// context without losing the kind.
package errs

import "errors"

// Layout definition errors.
var (
	// ErrChannelOverflow indicates the radix product of the parameters
	// assigned to one transport channel exceeds the exact-integer range of
	// the channel's float type. The layout is unusable; detected when the
	// layout is defined, never at pack time.
	ErrChannelOverflow = errors.New("channel radix product exceeds transport integer range")

	// ErrInvalidDescriptor indicates a parameter descriptor is malformed
	// (empty name, bad range, fewer than two levels, negative channel).
	ErrInvalidDescriptor = errors.New("invalid parameter descriptor")

	// ErrDuplicateParam indicates two descriptors in one layout share a name.
	ErrDuplicateParam = errors.New("duplicate parameter name in layout")

	// ErrEmptyLayout indicates a layout was defined with no descriptors.
	ErrEmptyLayout = errors.New("layout has no parameter descriptors")
)

// Pack/unpack errors.
var (
	// ErrInvalidEnumValue indicates an enum parameter was given a value that
	// is not an ordinal within its declared cardinality.
	ErrInvalidEnumValue = errors.New("enum value out of range")

	// ErrValueCountMismatch indicates Pack was given a value list whose
	// length does not match the layout's descriptor count.
	ErrValueCountMismatch = errors.New("value count does not match layout")

	// ErrChannelCountMismatch indicates Unpack was given the wrong number of
	// transport channels for the layout.
	ErrChannelCountMismatch = errors.New("transport channel count does not match layout")

	// ErrNotInteger indicates a transport channel holds a value that is not
	// a non-negative integer and therefore cannot carry a packed composite.
	ErrNotInteger = errors.New("transport channel is not a non-negative integer")
)

// Interpolation errors.
var (
	// ErrNoSamples indicates pose estimation was invoked with an empty
	// correlation sample set, violating the caller precondition.
	ErrNoSamples = errors.New("no correlation samples")

	// ErrSampleIndexOutOfRange indicates a correlation sample index does not
	// refer to a stored sample.
	ErrSampleIndexOutOfRange = errors.New("correlation sample index out of range")
)

// Rig library persistence errors.
var (
	// ErrInvalidMagic indicates the file does not start with the rig library
	// magic bytes.
	ErrInvalidMagic = errors.New("not a rig library file")

	// ErrUnsupportedVersion indicates the file's format version is newer than
	// this package understands.
	ErrUnsupportedVersion = errors.New("unsupported rig library version")

	// ErrChecksumMismatch indicates the payload checksum does not match,
	// i.e. the file is truncated or corrupted.
	ErrChecksumMismatch = errors.New("rig library checksum mismatch")

	// ErrUnknownCompression indicates the file declares a compression tag
	// this package does not implement.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrLayoutMismatch indicates the file was written against a different
	// packing layout than the one supplied by the reader.
	ErrLayoutMismatch = errors.New("rig library layout fingerprint mismatch")
)
