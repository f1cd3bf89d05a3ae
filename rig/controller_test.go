package rig

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/toonforge/shaderig/errs"
	"github.com/toonforge/shaderig/pose"
)

func effectWithTwoCorrelations(t *testing.T) *Effect {
	t.Helper()
	e := NewEffect("cheek")
	e.AddCorrelation("front", pose.Euler{0, 0, 0}, pose.Pose{Position: r3.Vec{X: 1}, Scale: r3.Vec{X: 1, Y: 1, Z: 1}})
	e.AddCorrelation("side", pose.Euler{0, 1.5, 0}, pose.Pose{Position: r3.Vec{X: 5}, Scale: r3.Vec{X: 1, Y: 1, Z: 1}})

	return e
}

func TestController_Evaluate_NoCorrelations(t *testing.T) {
	c, err := NewController(NewEffect("empty"))
	require.NoError(t, err)

	_, _, err = c.Evaluate(pose.Euler{})
	require.ErrorIs(t, err, errs.ErrNoSamples)
}

func TestController_Evaluate_SkipsWhenDriverStill(t *testing.T) {
	c, err := NewController(effectWithTwoCorrelations(t))
	require.NoError(t, err)

	first, ran, err := c.Evaluate(pose.Euler{0, 0.7, 0})
	require.NoError(t, err)
	require.True(t, ran)

	// Sub-epsilon wiggle: cached pose, no recompute.
	again, ran, err := c.Evaluate(pose.Euler{0, 0.7 + 1e-7, 0})
	require.NoError(t, err)
	require.False(t, ran)
	require.Equal(t, first, again)
}

func TestController_Evaluate_RecomputesOnMovement(t *testing.T) {
	c, err := NewController(effectWithTwoCorrelations(t))
	require.NoError(t, err)

	first, _, err := c.Evaluate(pose.Euler{0, 0.2, 0})
	require.NoError(t, err)

	second, ran, err := c.Evaluate(pose.Euler{0, 1.3, 0})
	require.NoError(t, err)
	require.True(t, ran)
	require.NotEqual(t, first.Position, second.Position)
}

func TestController_Evaluate_SkipNeverChangesResult(t *testing.T) {
	e := effectWithTwoCorrelations(t)
	c, err := NewController(e, WithChangeEpsilon(0))
	require.NoError(t, err)

	q := pose.Euler{0, 0.7, 0}
	got, ran, err := c.Evaluate(q)
	require.NoError(t, err)
	require.True(t, ran)

	direct, err := pose.Estimate(e.Samples(), q)
	require.NoError(t, err)
	require.Equal(t, direct, got)
}

func TestController_Invalidate(t *testing.T) {
	e := effectWithTwoCorrelations(t)
	c, err := NewController(e)
	require.NoError(t, err)

	q := pose.Euler{0, 0.7, 0}
	stale, _, err := c.Evaluate(q)
	require.NoError(t, err)

	e.AddCorrelation("top", pose.Euler{0, 0.7, 0}, pose.Pose{Position: r3.Vec{X: 9}, Scale: r3.Vec{X: 1, Y: 1, Z: 1}})
	c.Invalidate()

	fresh, ran, err := c.Evaluate(q)
	require.NoError(t, err)
	require.True(t, ran)
	require.NotEqual(t, stale.Position, fresh.Position)
}

func TestController_CustomInterpolator(t *testing.T) {
	it, err := pose.NewInterpolator(pose.WithFalloffExponent(4))
	require.NoError(t, err)

	c, err := NewController(effectWithTwoCorrelations(t), WithInterpolator(it))
	require.NoError(t, err)

	_, ran, err := c.Evaluate(pose.Euler{0, 0.4, 0})
	require.NoError(t, err)
	require.True(t, ran)
}
