package rigfile

// ZstdCodec compresses payloads with Zstandard: the best ratio of the
// offered codecs, the default for saved rig libraries.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)
