// Package shaderig implements the parameter transport for art-directable
// stylized shading rigs: a packing codec that multiplexes effect parameters
// into a few float channels a material graph can decode with elementary
// arithmetic, and a pose-correlation interpolator that drives effect
// controllers from the orientation of a light.
//
// # Parameter packing
//
// A material node graph can receive only a handful of scalar channels and
// can compute only {add, multiply, divide, floor, modulo}. The codec
// quantizes each effect parameter to a fixed level budget and packs the
// codes into three float32 channels with mixed-radix positional encoding,
// keeping every channel composite inside the float32 exact-integer range so
// decoding is lossless:
//
//	effect := rig.NewEffect("SR_Effect_milo_001")
//	effect.Params.Elongation = 0.5
//	effect.Params.Mode = rig.BlendMultiply
//
//	channels, _ := effect.Packed() // 3 float32 transport channels
//
// The matching arithmetic-only decode recipe comes from the graph package:
//
//	plan := graph.NewPlan(shaderig.PackingLayout())
//	for _, expr := range plan.Expressions("ch") {
//	    fmt.Println(expr) // e.g. mod(floor(ch1 / 65536), 5)
//	}
//
// # Pose correlation
//
// Artists store (light orientation, controller pose) correlation samples on
// an effect; every frame the current light orientation is blended across
// the stored samples with inverse-distance weighting in shortest-arc
// orientation space:
//
//	ctrl, _ := rig.NewController(effect)
//	p, ran, err := ctrl.Evaluate(lightRotation)
//
// Custom layouts can be defined with the layout package directly; this
// package re-exports the pieces most integrations need.
package shaderig

import (
	"github.com/toonforge/shaderig/codec"
	"github.com/toonforge/shaderig/internal/hash"
	"github.com/toonforge/shaderig/layout"
	"github.com/toonforge/shaderig/pose"
	"github.com/toonforge/shaderig/rig"
)

// PackingLayout returns the published three-channel layout for the standard
// effect parameter set. See rig.PackingLayout.
func PackingLayout() *layout.Layout {
	return rig.PackingLayout()
}

// NewPacker creates a packer for the standard effect parameter layout.
//
// Use codec.NewPacker directly to pack against a custom layout.
func NewPacker() *codec.Packer {
	return codec.NewPacker(rig.PackingLayout())
}

// NewUnpacker creates an unpacker for the standard effect parameter layout.
func NewUnpacker() *codec.Unpacker {
	return codec.NewUnpacker(rig.PackingLayout())
}

// Pack packs raw parameter values (in the standard layout's wire order)
// into the three transport channels.
func Pack(values []float64) ([]float32, error) {
	return NewPacker().Pack(values)
}

// Unpack recovers dequantized parameter values from the three transport
// channels, in the standard layout's wire order.
func Unpack(channels []float32) ([]float64, error) {
	return NewUnpacker().Unpack(channels)
}

// EstimatePose blends correlation samples into a pose for the query
// orientation using the default falloff. See pose.Estimate for the
// weighting scheme and pose.NewInterpolator for tuning.
func EstimatePose(samples []pose.Sample, query pose.Euler) (pose.Pose, error) {
	return pose.Estimate(samples, query)
}

// EffectID converts an effect name to its stable 64-bit identifier
// (xxHash64), the key under which hosts track per-effect scene state.
func EffectID(name string) uint64 {
	return hash.ID(name)
}
