package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestDigest_MatchesSumForStrings(t *testing.T) {
	d := NewDigest()
	d.WriteString("elongation")
	require.Equal(t, ID("elongation"), d.Sum64())
}

func TestDigest_Deterministic(t *testing.T) {
	build := func() uint64 {
		d := NewDigest()
		d.WriteString("layout")
		d.WriteByte(0x01)
		d.WriteUint64(256 * 256 * 256)

		return d.Sum64()
	}

	require.Equal(t, build(), build())
}

func TestDigest_OrderSensitive(t *testing.T) {
	a := NewDigest()
	a.WriteString("mode")
	a.WriteString("clamp")

	b := NewDigest()
	b.WriteString("clamp")
	b.WriteString("mode")

	require.NotEqual(t, a.Sum64(), b.Sum64())
}
