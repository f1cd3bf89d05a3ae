// Package rig holds the controller-side state of a shading rig effect: its
// stylized-shading parameters, its user-curated correlation samples, and the
// per-frame evaluation state that decides when the pose estimate needs to be
// recomputed.
//
// The codec and interpolator underneath are pure; everything stateful lives
// here, owned by whoever owns the Effect. A given Effect and its Controller
// must be mutated from a single evaluation context at a time.
package rig
