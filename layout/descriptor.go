package layout

import (
	"fmt"
	"math"

	"github.com/toonforge/shaderig/errs"
)

// Kind identifies how a parameter's raw value maps to an integer code.
type Kind uint8

const (
	KindContinuous Kind = 0x1 // KindContinuous is a bounded float quantized to N levels.
	KindEnum       Kind = 0x2 // KindEnum is an ordinal in [0, cardinality).
	KindBool       Kind = 0x3 // KindBool is a two-level flag.
)

func (k Kind) String() string {
	switch k {
	case KindContinuous:
		return "Continuous"
	case KindEnum:
		return "Enum"
	case KindBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Descriptor describes one logical parameter of a packing layout: its name,
// kind, value range or cardinality, level count, and the transport channel
// it is assigned to.
//
// Descriptors are plain values. They are validated when a Layout is built,
// not when they are constructed, so literals and helper constructors can be
// combined freely.
type Descriptor struct {
	// Name identifies the parameter. Must be unique within a layout.
	Name string
	// Kind selects the quantization rule.
	Kind Kind
	// Min and Max bound continuous values. Unused for enum and bool.
	Min float64
	Max float64
	// Levels is the number of distinguishable codes (the radix). For enums
	// this is the cardinality; for bools it is always 2.
	Levels int
	// Channel is the index of the transport channel carrying this parameter.
	Channel int
}

// Continuous creates a descriptor for a bounded float parameter quantized to
// the given number of levels.
func Continuous(name string, min, max float64, levels, channel int) Descriptor {
	return Descriptor{Name: name, Kind: KindContinuous, Min: min, Max: max, Levels: levels, Channel: channel}
}

// Enum creates a descriptor for an ordinal parameter with the given
// cardinality.
func Enum(name string, cardinality, channel int) Descriptor {
	return Descriptor{Name: name, Kind: KindEnum, Levels: cardinality, Channel: channel}
}

// Bool creates a descriptor for a two-level flag parameter.
func Bool(name string, channel int) Descriptor {
	return Descriptor{Name: name, Kind: KindBool, Levels: 2, Channel: channel}
}

// Radix returns the place-value radix this parameter occupies in its
// channel's mixed-radix composite.
func (d Descriptor) Radix() uint64 {
	return uint64(d.Levels)
}

// Step returns the quantization step of a continuous parameter: the smallest
// value difference its level budget can distinguish. Returns 0 for enum and
// bool descriptors.
func (d Descriptor) Step() float64 {
	if d.Kind != KindContinuous {
		return 0
	}

	return (d.Max - d.Min) / float64(d.Levels-1)
}

// Quantize maps a raw value to the parameter's integer code.
//
// Continuous values are clamped to [Min, Max] before rounding, since
// upstream values may transiently exceed bounds during interactive editing.
// Enum values must be exact ordinals within the declared cardinality;
// anything else returns ErrInvalidEnumValue. Bool treats any nonzero value
// as true.
func (d Descriptor) Quantize(value float64) (uint32, error) {
	switch d.Kind {
	case KindContinuous:
		v := min(max(value, d.Min), d.Max)
		code := math.Round((v - d.Min) / d.Step())

		return uint32(code), nil
	case KindEnum:
		if value != math.Trunc(value) || value < 0 || value >= float64(d.Levels) {
			return 0, fmt.Errorf("%w: parameter %q got %v, cardinality %d",
				errs.ErrInvalidEnumValue, d.Name, value, d.Levels)
		}

		return uint32(value), nil
	case KindBool:
		if value != 0 {
			return 1, nil
		}

		return 0, nil
	default:
		return 0, fmt.Errorf("%w: parameter %q has unknown kind %d", errs.ErrInvalidDescriptor, d.Name, d.Kind)
	}
}

// Dequantize maps an integer code back to a raw value. For continuous
// parameters the result differs from the original input by at most one
// quantization step; enum and bool codes map to their ordinal as a float.
func (d Descriptor) Dequantize(code uint32) float64 {
	if d.Kind == KindContinuous {
		return d.Min + float64(code)*d.Step()
	}

	return float64(code)
}

// validate checks the descriptor's internal consistency against the number
// of channels in the enclosing layout.
func (d Descriptor) validate(channelCount int) error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalidDescriptor)
	}

	switch d.Kind {
	case KindContinuous:
		if !(d.Min < d.Max) {
			return fmt.Errorf("%w: parameter %q range [%v, %v]", errs.ErrInvalidDescriptor, d.Name, d.Min, d.Max)
		}
		if d.Levels < 2 {
			return fmt.Errorf("%w: parameter %q needs at least 2 levels, got %d",
				errs.ErrInvalidDescriptor, d.Name, d.Levels)
		}
	case KindEnum:
		if d.Levels < 1 {
			return fmt.Errorf("%w: parameter %q needs at least 1 enum value, got %d",
				errs.ErrInvalidDescriptor, d.Name, d.Levels)
		}
	case KindBool:
		if d.Levels != 2 {
			return fmt.Errorf("%w: bool parameter %q must have 2 levels, got %d",
				errs.ErrInvalidDescriptor, d.Name, d.Levels)
		}
	default:
		return fmt.Errorf("%w: parameter %q has unknown kind %d", errs.ErrInvalidDescriptor, d.Name, d.Kind)
	}

	if d.Channel < 0 || d.Channel >= channelCount {
		return fmt.Errorf("%w: parameter %q assigned to channel %d of %d",
			errs.ErrInvalidDescriptor, d.Name, d.Channel, channelCount)
	}

	return nil
}
