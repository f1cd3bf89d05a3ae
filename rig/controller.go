package rig

import (
	"github.com/toonforge/shaderig/internal/options"
	"github.com/toonforge/shaderig/pose"
)

// DefaultChangeEpsilon is the driving-rotation movement below which a
// controller reuses its cached pose instead of re-estimating.
const DefaultChangeEpsilon = 1e-5

// Controller evaluates one effect's pose against its driving rotation,
// skipping recomputation when the driver hasn't moved.
//
// The skip is a policy, never a correctness concern: whenever estimation
// does run, the result is exactly what pose.Estimate would return. The
// cached pose and last-seen rotation are plain caller-owned state; a
// Controller must be used from a single evaluation context at a time.
type Controller struct {
	effect  *Effect
	interp  *pose.Interpolator
	epsilon float64

	last    pose.Euler
	hasLast bool
	cached  pose.Pose
}

// ControllerOption configures a Controller.
type ControllerOption = options.Option[*Controller]

// WithChangeEpsilon sets the movement threshold for skipping re-estimation.
// Zero disables the skip entirely.
func WithChangeEpsilon(eps float64) ControllerOption {
	return options.NoError(func(c *Controller) {
		c.epsilon = eps
	})
}

// WithInterpolator replaces the default interpolator.
func WithInterpolator(it *pose.Interpolator) ControllerOption {
	return options.NoError(func(c *Controller) {
		c.interp = it
	})
}

// NewController creates a controller for the given effect.
func NewController(effect *Effect, opts ...ControllerOption) (*Controller, error) {
	it, err := pose.NewInterpolator()
	if err != nil {
		return nil, err
	}

	c := &Controller{
		effect:  effect,
		interp:  it,
		epsilon: DefaultChangeEpsilon,
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Effect returns the controlled effect.
func (c *Controller) Effect() *Effect {
	return c.effect
}

// Evaluate returns the pose for the current driving rotation. The boolean
// reports whether a fresh estimate ran; false means the driver moved less
// than the change epsilon and the cached pose was returned.
//
// Returns ErrNoSamples when the effect has no correlations; callers skip
// such effects, matching the precondition of the interpolator.
func (c *Controller) Evaluate(driving pose.Euler) (pose.Pose, bool, error) {
	if c.hasLast && pose.Distance(driving, c.last) < c.epsilon {
		return c.cached, false, nil
	}

	estimated, err := c.interp.Estimate(c.effect.Samples(), driving)
	if err != nil {
		return pose.Pose{}, false, err
	}

	c.last = driving
	c.hasLast = true
	c.cached = estimated

	return estimated, true, nil
}

// Invalidate drops the cached pose so the next Evaluate always runs a fresh
// estimate. Call after mutating the effect's correlations.
func (c *Controller) Invalidate() {
	c.hasLast = false
}
