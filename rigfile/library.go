// Package rigfile persists rig libraries: the character name, every effect
// with its parameters, and all correlation samples, bound to the packing
// layout fingerprint they were authored against.
//
// The on-disk form is a small framed file: a fixed header carrying the
// layout fingerprint and an xxHash64 payload checksum, followed by a JSON
// payload that may be compressed (Zstd by default; S2, LZ4 and None are
// also available). See format.go for the exact framing.
package rigfile

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/toonforge/shaderig/pose"
	"github.com/toonforge/shaderig/rig"
)

// Library is the serializable form of a character's complete rig setup.
type Library struct {
	Character string         `json:"character"`
	Effects   []EffectRecord `json:"effects"`
}

// EffectRecord is the serializable form of one effect.
type EffectRecord struct {
	Name         string              `json:"name"`
	Params       rig.Params          `json:"params"`
	Correlations []CorrelationRecord `json:"correlations,omitempty"`
}

// CorrelationRecord is the serializable form of one correlation sample.
type CorrelationRecord struct {
	Name        string     `json:"name"`
	Orientation [3]float64 `json:"orientation"`
	Position    [3]float64 `json:"position"`
	Rotation    [3]float64 `json:"rotation"`
	Scale       [3]float64 `json:"scale"`
}

// Snapshot captures a library from live effects.
func Snapshot(character string, effects ...*rig.Effect) *Library {
	lib := &Library{Character: character}
	for _, e := range effects {
		lib.Effects = append(lib.Effects, SnapshotEffect(e))
	}

	return lib
}

// SnapshotEffect captures one effect into its serializable form.
func SnapshotEffect(e *rig.Effect) EffectRecord {
	rec := EffectRecord{Name: e.Name, Params: e.Params}
	for _, c := range e.Correlations() {
		rec.Correlations = append(rec.Correlations, CorrelationRecord{
			Name:        c.Name,
			Orientation: [3]float64(c.Sample.Orientation),
			Position:    vecToArray(c.Sample.Pose.Position),
			Rotation:    [3]float64(c.Sample.Pose.Rotation),
			Scale:       vecToArray(c.Sample.Pose.Scale),
		})
	}

	return rec
}

// Restore rebuilds live effects from the library, in record order.
func (l *Library) Restore() []*rig.Effect {
	effects := make([]*rig.Effect, 0, len(l.Effects))
	for _, rec := range l.Effects {
		effects = append(effects, rec.Effect())
	}

	return effects
}

// Effect rebuilds a live effect from its record.
func (r EffectRecord) Effect() *rig.Effect {
	e := rig.NewEffect(r.Name)
	e.Params = r.Params
	for _, c := range r.Correlations {
		e.AddCorrelation(c.Name, pose.Euler(c.Orientation), pose.Pose{
			Position: arrayToVec(c.Position),
			Rotation: pose.Euler(c.Rotation),
			Scale:    arrayToVec(c.Scale),
		})
	}

	return e
}

func vecToArray(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func arrayToVec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}
