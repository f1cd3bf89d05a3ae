package pose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/toonforge/shaderig/errs"
	"github.com/toonforge/shaderig/internal/options"
)

const (
	// DefaultFalloffExponent is the inverse-distance falloff power p in
	// weight = 1/(distance^p + epsilon).
	DefaultFalloffExponent = 2.0

	// DefaultFalloffEpsilon keeps the falloff finite when the query
	// orientation coincides with a stored sample.
	DefaultFalloffEpsilon = 1e-8

	// degenerateQuatNorm is the blended-quaternion magnitude below which the
	// weighted sum carries no usable direction (opposing rotations cancelled
	// out) and the dominant sample's rotation is used instead.
	degenerateQuatNorm = 1e-9
)

// Interpolator blends correlation samples into a pose estimate using
// inverse-distance weighting in orientation space.
//
// An Interpolator is immutable after construction and safe for concurrent
// use; Estimate touches no shared state.
type Interpolator struct {
	exponent float64
	epsilon  float64
}

// Option configures an Interpolator.
type Option = options.Option[*Interpolator]

// WithFalloffExponent sets the inverse-distance falloff power. Larger values
// localize the blend more tightly around nearby samples. Must be positive.
func WithFalloffExponent(p float64) Option {
	return options.New(func(it *Interpolator) error {
		if !(p > 0) || math.IsInf(p, 1) {
			return fmt.Errorf("falloff exponent must be a positive finite number, got %v", p)
		}
		it.exponent = p

		return nil
	})
}

// WithFalloffEpsilon sets the denominator guard of the falloff. Must be
// positive; it bounds the weight of an exact orientation match.
func WithFalloffEpsilon(eps float64) Option {
	return options.New(func(it *Interpolator) error {
		if !(eps > 0) || math.IsInf(eps, 1) {
			return fmt.Errorf("falloff epsilon must be a positive finite number, got %v", eps)
		}
		it.epsilon = eps

		return nil
	})
}

// NewInterpolator creates an interpolator with the default falloff
// (exponent 2, epsilon 1e-8) unless overridden by options.
func NewInterpolator(opts ...Option) (*Interpolator, error) {
	it := &Interpolator{
		exponent: DefaultFalloffExponent,
		epsilon:  DefaultFalloffEpsilon,
	}
	if err := options.Apply(it, opts...); err != nil {
		return nil, err
	}

	return it, nil
}

// Estimate blends the correlation samples into a pose for the query
// orientation.
//
// Weights follow 1/(distance^p + ε) over the per-axis shortest-arc distance,
// normalized to sum to 1. Position and scale blend linearly; rotation blends
// as a hemisphere-corrected weighted quaternion average. A single sample is
// returned verbatim. An empty sample set violates the caller precondition
// and returns ErrNoSamples.
func (it *Interpolator) Estimate(samples []Sample, query Euler) (Pose, error) {
	switch len(samples) {
	case 0:
		return Pose{}, errs.ErrNoSamples
	case 1:
		return samples[0].Pose, nil
	}

	weights := make([]float64, len(samples))
	total := 0.0
	dominant := 0
	for i, s := range samples {
		d := Distance(s.Orientation, query)
		w := 1 / (math.Pow(d, it.exponent) + it.epsilon)
		weights[i] = w
		total += w
		if w > weights[dominant] {
			dominant = i
		}
	}

	var est Pose
	ref := eulerToQuat(samples[dominant].Pose.Rotation)
	var acc quat.Number
	for i, s := range samples {
		w := weights[i] / total

		est.Position = r3.Add(est.Position, r3.Scale(w, s.Pose.Position))
		est.Scale = r3.Add(est.Scale, r3.Scale(w, s.Pose.Scale))

		q := eulerToQuat(s.Pose.Rotation)
		if quatDot(ref, q) < 0 {
			q = quatScale(-1, q)
		}
		acc = quatAdd(acc, quatScale(w, q))
	}

	norm := math.Sqrt(quatDot(acc, acc))
	if norm < degenerateQuatNorm {
		est.Rotation = samples[dominant].Pose.Rotation
	} else {
		est.Rotation = quatToEuler(quatScale(1/norm, acc))
	}

	return est, nil
}

// Estimate blends samples with the default interpolator configuration. See
// Interpolator.Estimate.
func Estimate(samples []Sample, query Euler) (Pose, error) {
	it := Interpolator{
		exponent: DefaultFalloffExponent,
		epsilon:  DefaultFalloffEpsilon,
	}

	return it.Estimate(samples, query)
}

// Distance returns the angular distance between two orientations: the
// Euclidean norm of the per-axis shortest-arc deltas. Raw Euler subtraction
// would report samples across a wrap boundary as far apart; this does not.
func Distance(a, b Euler) float64 {
	dx := wrapAngle(a[0] - b[0])
	dy := wrapAngle(a[1] - b[1])
	dz := wrapAngle(a[2] - b[2])

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
