// Package layout defines the packing layout contract shared by the encoder
// and the downstream arithmetic-only decoder.
//
// A layout is an ordered list of parameter descriptors, each declaring its
// kind (continuous, enum, or bool), value range or cardinality, level count,
// and transport channel assignment. The descriptor order is the wire format:
// encoder and decoder must agree on it byte-for-byte, and the 64-bit
// Fingerprint exists so that agreement can be checked cheaply.
//
// Quantization also lives here: each descriptor knows how to map its raw
// value to an integer code in [0, Levels-1] and back. Validation is front
// loaded. New rejects malformed descriptors and any channel whose radix
// product would exceed the float32 exact-integer range, so that pack and
// unpack never have to re-check the layout.
package layout
