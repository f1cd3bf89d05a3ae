package rigfile

// NoOpCodec bypasses compression. Useful when the library should stay
// human-inspectable on disk, and as a baseline in benchmarks.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// Compress returns the input unchanged. The returned slice shares memory
// with the input.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input unchanged. The returned slice shares memory
// with the input.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
