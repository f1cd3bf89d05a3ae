package rigfile

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/toonforge/shaderig/errs"
	"github.com/toonforge/shaderig/pose"
	"github.com/toonforge/shaderig/rig"
)

func sampleLibrary(t *testing.T) *Library {
	t.Helper()

	e := rig.NewEffect("SR_Effect_milo_001")
	e.Params.Elongation = 0.4
	e.Params.Mode = rig.BlendMultiply
	e.Params.Spin = 15
	e.AddCorrelation("key", pose.Euler{0, 0.5, 0}, pose.Pose{
		Position: r3.Vec{X: 0.1, Y: 0.2, Z: 0.3},
		Rotation: pose.Euler{0, 0, 0.2},
		Scale:    r3.Vec{X: 1, Y: 1, Z: 1},
	})
	e.AddCorrelation("rim", pose.Euler{0, 2.5, 0}, pose.Pose{
		Position: r3.Vec{X: -0.4},
		Scale:    r3.Vec{X: 1.5, Y: 1.5, Z: 1.5},
	})

	return Snapshot("milo", e)
}

func TestWriteRead_RoundTripAllCompressions(t *testing.T) {
	lib := sampleLibrary(t)

	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, lib, WithCompression(c)))

			got, err := Read(&buf)
			require.NoError(t, err)
			require.Equal(t, lib, got)
		})
	}
}

func TestWriteRead_RestoreRebuildsEffects(t *testing.T) {
	lib := sampleLibrary(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lib))
	got, err := Read(&buf)
	require.NoError(t, err)

	effects := got.Restore()
	require.Len(t, effects, 1)

	e := effects[0]
	require.Equal(t, "SR_Effect_milo_001", e.Name)
	require.Equal(t, rig.BlendMultiply, e.Params.Mode)
	require.Equal(t, 2, e.CorrelationCount())
	require.Equal(t, "key", e.Correlations()[0].Name)
	require.Equal(t, pose.Euler{0, 2.5, 0}, e.Correlations()[1].Sample.Orientation)
}

func TestWrite_DefaultCompressionIsZstd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleLibrary(t)))

	data := buf.Bytes()
	require.Equal(t, byte(CompressionZstd), data[offsetCompression])
}

func TestWrite_RejectsUnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleLibrary(t), WithCompression(Compression(0x7F)))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
	require.Zero(t, buf.Len())
}

func TestRead_InvalidMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a rig library at all......")))
	require.ErrorIs(t, err, errs.ErrInvalidMagic)

	_, err = Read(bytes.NewReader([]byte("SR")))
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestRead_UnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleLibrary(t)))

	data := buf.Bytes()
	data[offsetVersion] = formatVersion + 1

	_, err := Read(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestRead_ChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleLibrary(t)))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xFF

	_, err := Read(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestRead_LayoutMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleLibrary(t)))

	data := buf.Bytes()
	binary.BigEndian.PutUint64(data[offsetFingerprint:], 0xDEADBEEF)

	_, err := Read(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrLayoutMismatch)
}

func TestRead_UnknownCompressionTag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleLibrary(t)))

	data := buf.Bytes()
	data[offsetCompression] = 0x7F

	_, err := Read(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestCompression_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", Compression(0x7F).String())
}

func TestCodecs_RoundTripRawBytes(t *testing.T) {
	payload := bytes.Repeat([]byte(`{"character":"milo","effects":[]}`), 64)

	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			codec, err := codecFor(c)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			got, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}
