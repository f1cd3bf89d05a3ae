package rig

import (
	"fmt"

	"github.com/toonforge/shaderig/codec"
	"github.com/toonforge/shaderig/errs"
	"github.com/toonforge/shaderig/internal/hash"
	"github.com/toonforge/shaderig/pose"
)

// BlendMode selects how an effect combines with the base shading. The
// ordinal order is part of the packing layout; renumbering modes is a
// breaking change for every generated decoder.
type BlendMode uint8

const (
	BlendLighten BlendMode = iota
	BlendSubtract
	BlendMultiply
	BlendDarken
	BlendAdd

	// BlendModeCount is the enum cardinality used by the packing layout.
	BlendModeCount = 5
)

func (m BlendMode) String() string {
	switch m {
	case BlendLighten:
		return "Lighten"
	case BlendSubtract:
		return "Subtract"
	case BlendMultiply:
		return "Multiply"
	case BlendDarken:
		return "Darken"
	case BlendAdd:
		return "Add"
	default:
		return "Unknown"
	}
}

// Params are the artist-facing knobs of one effect. All continuous fields
// are bounded as declared by PackingLayout; out-of-range values clamp at
// pack time rather than failing, since transient overshoot is normal during
// interactive editing.
type Params struct {
	Elongation float64   // [0, 1]
	Sharpness  float64   // [0, 1]
	Bulge      float64   // [-1, 1]
	Bend       float64   // [-1, 1]
	Hardness   float64   // [0, 1]
	Mask       float64   // [0, 1], drawn from UI state, not packed
	Mode       BlendMode //
	Clamp      bool      // clamp effect output to [0, 1]
	Spin       int       // [0, 99], rotation of the effect around its center
}

// DefaultParams returns the parameter values a freshly created effect
// starts with.
func DefaultParams() Params {
	return Params{
		Hardness: 0.5,
		Mask:     0.5,
		Mode:     BlendLighten,
		Clamp:    true,
	}
}

// Values returns the packable parameter values in the wire order of
// PackingLayout.
func (p Params) Values() []float64 {
	clamp := 0.0
	if p.Clamp {
		clamp = 1.0
	}

	return []float64{
		p.Elongation,
		p.Sharpness,
		p.Bulge,
		p.Bend,
		p.Hardness,
		float64(p.Mode),
		clamp,
		float64(p.Spin),
	}
}

// ParamsFromValues rebuilds Params from values in PackingLayout wire order,
// e.g. after unpacking transport channels. The Mask field is not part of the
// wire format and keeps its default.
func ParamsFromValues(values []float64) (Params, error) {
	l := PackingLayout()
	if len(values) != l.ParamCount() {
		return Params{}, fmt.Errorf("%w: expected %d values, got %d",
			errs.ErrValueCountMismatch, l.ParamCount(), len(values))
	}

	p := DefaultParams()
	p.Elongation = values[0]
	p.Sharpness = values[1]
	p.Bulge = values[2]
	p.Bend = values[3]
	p.Hardness = values[4]
	p.Mode = BlendMode(values[5])
	p.Clamp = values[6] != 0
	p.Spin = int(values[7])

	return p, nil
}

// Correlation is one named (orientation, pose) anchor stored on an effect.
type Correlation struct {
	Name   string
	Sample pose.Sample
}

// Effect is a single shading rig effect: a name, its parameters, and its
// correlation samples. Not safe for concurrent mutation; the owner
// serializes access.
type Effect struct {
	Name         string
	Params       Params
	correlations []Correlation
}

// NewEffect creates an effect with default parameters and no correlations.
func NewEffect(name string) *Effect {
	return &Effect{Name: name, Params: DefaultParams()}
}

// ID returns the effect's stable 64-bit identifier, the xxHash64 of its
// name.
func (e *Effect) ID() uint64 {
	return hash.ID(e.Name)
}

// AddCorrelation appends a correlation anchor and returns its index.
// Samples are append-only in normal use; indices stay stable until a
// removal.
func (e *Effect) AddCorrelation(name string, orientation pose.Euler, p pose.Pose) int {
	e.correlations = append(e.correlations, Correlation{
		Name:   name,
		Sample: pose.Sample{Orientation: orientation, Pose: p},
	})

	return len(e.correlations) - 1
}

// RemoveCorrelation deletes the correlation at index, shifting later entries
// down one slot.
func (e *Effect) RemoveCorrelation(index int) error {
	if index < 0 || index >= len(e.correlations) {
		return fmt.Errorf("%w: index %d of %d", errs.ErrSampleIndexOutOfRange, index, len(e.correlations))
	}
	e.correlations = append(e.correlations[:index], e.correlations[index+1:]...)

	return nil
}

// CorrelationCount returns the number of stored correlations.
func (e *Effect) CorrelationCount() int {
	return len(e.correlations)
}

// Correlations returns a copy of the stored correlations in index order.
func (e *Effect) Correlations() []Correlation {
	return append([]Correlation(nil), e.correlations...)
}

// Samples returns the correlation samples in index order, ready to hand to
// the interpolator.
func (e *Effect) Samples() []pose.Sample {
	samples := make([]pose.Sample, len(e.correlations))
	for i, c := range e.correlations {
		samples[i] = c.Sample
	}

	return samples
}

// Packed quantizes the effect's parameters and packs them into the three
// transport channels of PackingLayout.
func (e *Effect) Packed() ([]float32, error) {
	return codec.NewPacker(PackingLayout()).Pack(e.Params.Values())
}
