// Package codec multiplexes the quantized parameters of a packing layout
// into a fixed number of float32 transport channels and recovers them again.
//
// Within one channel the codes are combined by mixed-radix positional
// encoding: composite = Σ code_i · Π(radix_j for j < i), iterating the
// layout's descriptors in wire order. The composite integer is written as
// the channel value directly, not normalized, so a downstream evaluator
// restricted to {add, multiply, divide, floor, modulo} can peel each code
// back out with code_i = floor(composite / place_i) mod radix_i. The
// layout's overflow validation guarantees every composite stays within the
// float32 exact-integer range, which makes that arithmetic lossless.
//
// Pack and Unpack are pure functions of the layout and their arguments;
// both are safe for concurrent use.
package codec

import (
	"fmt"
	"math"

	"github.com/toonforge/shaderig/errs"
	"github.com/toonforge/shaderig/layout"
)

// Packer encodes raw parameter values into transport channels according to
// a validated layout.
type Packer struct {
	layout *layout.Layout
}

// NewPacker creates a packer for the given layout.
func NewPacker(l *layout.Layout) *Packer {
	return &Packer{layout: l}
}

// Pack quantizes the raw values (one per descriptor, in wire order) and
// multiplexes the codes into the layout's transport channels.
//
// Returns ErrValueCountMismatch when the value list does not match the
// layout, or ErrInvalidEnumValue when an enum parameter is given a value
// outside its cardinality. On error no partial output is produced.
func (p *Packer) Pack(values []float64) ([]float32, error) {
	if len(values) != p.layout.ParamCount() {
		return nil, fmt.Errorf("%w: layout has %d parameters, got %d values",
			errs.ErrValueCountMismatch, p.layout.ParamCount(), len(values))
	}

	codes := make([]uint32, len(values))
	for i, v := range values {
		code, err := p.layout.Param(i).Quantize(v)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}

	return p.packCodes(codes), nil
}

// PackCodes multiplexes already-quantized codes into transport channels.
// Each code must be within its descriptor's radix.
func (p *Packer) PackCodes(codes []uint32) ([]float32, error) {
	if len(codes) != p.layout.ParamCount() {
		return nil, fmt.Errorf("%w: layout has %d parameters, got %d codes",
			errs.ErrValueCountMismatch, p.layout.ParamCount(), len(codes))
	}
	for i, code := range codes {
		d := p.layout.Param(i)
		if uint64(code) >= d.Radix() {
			return nil, fmt.Errorf("%w: parameter %q code %d, radix %d",
				errs.ErrInvalidEnumValue, d.Name, code, d.Radix())
		}
	}

	return p.packCodes(codes), nil
}

func (p *Packer) packCodes(codes []uint32) []float32 {
	composites := make([]uint64, p.layout.Channels())
	places := make([]uint64, p.layout.Channels())
	for i := range places {
		places[i] = 1
	}

	for i, code := range codes {
		d := p.layout.Param(i)
		composites[d.Channel] += uint64(code) * places[d.Channel]
		places[d.Channel] *= d.Radix()
	}

	channels := make([]float32, len(composites))
	for i, c := range composites {
		channels[i] = float32(c)
	}

	return channels
}

// Unpacker decodes transport channels back into codes and raw values.
type Unpacker struct {
	layout *layout.Layout
}

// NewUnpacker creates an unpacker for the given layout.
func NewUnpacker(l *layout.Layout) *Unpacker {
	return &Unpacker{layout: l}
}

// UnpackCodes recovers the quantized codes from the transport channels.
//
// This stage is lossless: for any channels produced by Pack on the same
// layout, the returned codes equal the packed codes exactly. Returns
// ErrChannelCountMismatch for a wrong channel count and ErrNotInteger when
// a channel does not hold a non-negative integer within the layout's radix
// product.
func (u *Unpacker) UnpackCodes(channels []float32) ([]uint32, error) {
	if len(channels) != u.layout.Channels() {
		return nil, fmt.Errorf("%w: layout has %d channels, got %d",
			errs.ErrChannelCountMismatch, u.layout.Channels(), len(channels))
	}

	composites := make([]uint64, len(channels))
	for i, ch := range channels {
		v := float64(ch)
		if v < 0 || v != math.Trunc(v) || v >= float64(u.layout.ChannelProduct(i)) {
			return nil, fmt.Errorf("%w: channel %d holds %v, expected integer in [0, %d)",
				errs.ErrNotInteger, i, v, u.layout.ChannelProduct(i))
		}
		composites[i] = uint64(v)
	}

	codes := make([]uint32, u.layout.ParamCount())
	places := make([]uint64, len(channels))
	for i := range places {
		places[i] = 1
	}

	for i := 0; i < u.layout.ParamCount(); i++ {
		d := u.layout.Param(i)
		codes[i] = uint32(composites[d.Channel] / places[d.Channel] % d.Radix())
		places[d.Channel] *= d.Radix()
	}

	return codes, nil
}

// Unpack recovers the dequantized raw values from the transport channels,
// in wire order. Continuous parameters come back within one quantization
// step of the originally packed value; enum and bool parameters come back
// exactly.
func (u *Unpacker) Unpack(channels []float32) ([]float64, error) {
	codes, err := u.UnpackCodes(channels)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(codes))
	for i, code := range codes {
		values[i] = u.layout.Param(i).Dequantize(code)
	}

	return values, nil
}
