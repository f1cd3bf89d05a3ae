package layout

import (
	"fmt"
	"math"

	"github.com/toonforge/shaderig/errs"
	"github.com/toonforge/shaderig/internal/hash"
)

// MaxChannelComposite is the largest radix product one transport channel may
// carry. Transport channels are float32 scalars, which represent integers
// exactly only up to 2^24; a larger product would let pack produce a
// composite whose rounding corrupts the digits of unrelated parameters.
const MaxChannelComposite = 1 << 24

// fingerprintVersion is folded into every layout fingerprint. Bump it if the
// canonical descriptor serialization ever changes meaning.
const fingerprintVersion = 1

// Layout is a validated, immutable packing layout: an ordered descriptor
// list plus its channel assignment. The descriptor order is the wire format.
//
// A Layout is safe for concurrent use; nothing mutates it after New returns.
type Layout struct {
	descriptors []Descriptor
	products    []uint64
	fingerprint uint64
}

// New builds and validates a layout with the given number of transport
// channels.
//
// Validation happens here and nowhere else: malformed descriptors return
// ErrInvalidDescriptor, repeated names ErrDuplicateParam, and any channel
// whose radix product exceeds MaxChannelComposite is rejected with
// ErrChannelOverflow rather than silently truncated at pack time.
func New(channelCount int, descriptors ...Descriptor) (*Layout, error) {
	if channelCount < 1 {
		return nil, fmt.Errorf("%w: channel count %d", errs.ErrInvalidDescriptor, channelCount)
	}
	if len(descriptors) == 0 {
		return nil, errs.ErrEmptyLayout
	}

	seen := make(map[string]struct{}, len(descriptors))
	products := make([]uint64, channelCount)
	for i := range products {
		products[i] = 1
	}

	for _, d := range descriptors {
		if err := d.validate(channelCount); err != nil {
			return nil, err
		}
		if _, ok := seen[d.Name]; ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateParam, d.Name)
		}
		seen[d.Name] = struct{}{}

		products[d.Channel] *= d.Radix()
		if products[d.Channel] > MaxChannelComposite {
			return nil, fmt.Errorf("%w: channel %d radix product %d exceeds %d",
				errs.ErrChannelOverflow, d.Channel, products[d.Channel], uint64(MaxChannelComposite))
		}
	}

	l := &Layout{
		descriptors: append([]Descriptor(nil), descriptors...),
		products:    products,
	}
	l.fingerprint = l.computeFingerprint()

	return l, nil
}

// Channels returns the number of transport channels.
func (l *Layout) Channels() int {
	return len(l.products)
}

// ParamCount returns the number of parameters in the layout.
func (l *Layout) ParamCount() int {
	return len(l.descriptors)
}

// Params returns the descriptors in wire order. The returned slice is a
// copy; mutating it does not affect the layout.
func (l *Layout) Params() []Descriptor {
	return append([]Descriptor(nil), l.descriptors...)
}

// Param returns the descriptor at the given wire position.
func (l *Layout) Param(i int) Descriptor {
	return l.descriptors[i]
}

// Lookup returns the descriptor with the given name, if present.
func (l *Layout) Lookup(name string) (Descriptor, bool) {
	for _, d := range l.descriptors {
		if d.Name == name {
			return d, true
		}
	}

	return Descriptor{}, false
}

// ChannelProduct returns the radix product of the parameters assigned to one
// channel. Composites on that channel are always less than this value.
func (l *Layout) ChannelProduct(channel int) uint64 {
	return l.products[channel]
}

// Fingerprint returns a 64-bit hash of the canonical descriptor
// serialization (order, names, kinds, ranges, levels, channel assignment).
//
// Two layouts with equal fingerprints encode and decode identically, so the
// fingerprint is the handshake between an encoder and a regenerated
// arithmetic decoder: persist it next to any packed data and refuse to
// decode when it differs.
func (l *Layout) Fingerprint() uint64 {
	return l.fingerprint
}

func (l *Layout) computeFingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteByte(fingerprintVersion)
	d.WriteByte(byte(len(l.products)))
	for _, desc := range l.descriptors {
		d.WriteString(desc.Name)
		d.WriteByte(byte(desc.Kind))
		d.WriteUint64(boundBits(desc.Min))
		d.WriteUint64(boundBits(desc.Max))
		d.WriteUint64(uint64(desc.Levels))
		d.WriteUint64(uint64(desc.Channel))
	}

	return d.Sum64()
}

// boundBits maps a float bound to stable bits for fingerprinting. Negative
// zero normalizes to zero so equivalent ranges fingerprint identically.
func boundBits(f float64) uint64 {
	if f == 0 {
		return math.Float64bits(0)
	}

	return math.Float64bits(f)
}
