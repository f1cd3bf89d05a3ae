package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toonforge/shaderig/errs"
)

func TestDescriptor_Quantize_ContinuousRoundTrip(t *testing.T) {
	d := Continuous("elongation", 0, 1, 256, 0)

	for _, v := range []float64{0, 0.1, 0.25, 0.5, 0.333, 0.999, 1} {
		code, err := d.Quantize(v)
		require.NoError(t, err)
		require.Less(t, code, uint32(256))

		back := d.Dequantize(code)
		require.InDelta(t, v, back, d.Step(), "value %v code %d", v, code)
	}
}

func TestDescriptor_Quantize_ContinuousClampsOutOfRange(t *testing.T) {
	d := Continuous("bulge", -1, 1, 256, 0)

	code, err := d.Quantize(2.5)
	require.NoError(t, err)
	require.Equal(t, uint32(255), code)

	code, err = d.Quantize(-7)
	require.NoError(t, err)
	require.Equal(t, uint32(0), code)
}

func TestDescriptor_Quantize_ContinuousEndpointsExact(t *testing.T) {
	d := Continuous("hardness", 0, 1, 256, 1)

	code, err := d.Quantize(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0), code)
	require.Equal(t, 0.0, d.Dequantize(code))

	code, err = d.Quantize(1)
	require.NoError(t, err)
	require.Equal(t, uint32(255), code)
	require.Equal(t, 1.0, d.Dequantize(code))
}

func TestDescriptor_Quantize_EnumIdentity(t *testing.T) {
	d := Enum("mode", 5, 1)

	for i := 0; i < 5; i++ {
		code, err := d.Quantize(float64(i))
		require.NoError(t, err)
		require.Equal(t, uint32(i), code)
		require.Equal(t, float64(i), d.Dequantize(code))
	}
}

func TestDescriptor_Quantize_EnumRejectsInvalid(t *testing.T) {
	d := Enum("mode", 5, 1)

	for _, v := range []float64{-1, 5, 6, 2.5, math.NaN()} {
		_, err := d.Quantize(v)
		require.ErrorIs(t, err, errs.ErrInvalidEnumValue, "value %v", v)
	}
}

func TestDescriptor_Quantize_Bool(t *testing.T) {
	d := Bool("clamp", 1)

	code, err := d.Quantize(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0), code)

	for _, v := range []float64{1, 0.5, -3} {
		code, err = d.Quantize(v)
		require.NoError(t, err)
		require.Equal(t, uint32(1), code)
	}
}

func TestDescriptor_Step(t *testing.T) {
	require.InDelta(t, 1.0/255.0, Continuous("x", 0, 1, 256, 0).Step(), 1e-15)
	require.InDelta(t, 2.0/255.0, Continuous("x", -1, 1, 256, 0).Step(), 1e-15)
	require.Equal(t, 0.0, Enum("mode", 5, 0).Step())
	require.Equal(t, 0.0, Bool("clamp", 0).Step())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Continuous", KindContinuous.String())
	require.Equal(t, "Enum", KindEnum.String())
	require.Equal(t, "Bool", KindBool.String())
	require.Equal(t, "Unknown", Kind(0x9).String())
}
