package rigfile

// Rig library file framing:
//
//	offset  size  field
//	0       4     magic "SRIG"
//	4       1     format version
//	5       1     compression tag
//	6       2     reserved, zero
//	8       8     packing layout fingerprint (big-endian)
//	16      8     xxHash64 of the compressed payload (big-endian)
//	24      -     payload
//
// The fingerprint binds a saved library to the packing layout it was
// authored against; a reader whose layout differs refuses the file instead
// of silently reinterpreting packed parameters.
const (
	magic = "SRIG"

	// formatVersion is the current file format version. Readers accept this
	// version and older ones.
	formatVersion = 1

	headerSize = 24

	offsetVersion     = 4
	offsetCompression = 5
	offsetFingerprint = 8
	offsetChecksum    = 16
)
