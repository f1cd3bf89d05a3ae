// Package pose implements the orientation/pose math for correlation-based
// shading rigs: given stored (orientation, pose) samples and a query
// orientation, estimate a smoothly blended pose.
//
// Orientations are XYZ Euler angles in radians. Distances between
// orientations use the shortest arc per axis, so samples on either side of
// the 0/2π wrap blend as neighbors rather than as maximally distant.
// Rotations blend through quaternions with hemisphere correction; linear
// Euler blending breaks down across wrap boundaries and gimbal-sensitive
// configurations and is deliberately not offered.
package pose

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Euler holds XYZ Euler angles in radians.
type Euler [3]float64

// X returns the rotation around the X axis.
func (e Euler) X() float64 { return e[0] }

// Y returns the rotation around the Y axis.
func (e Euler) Y() float64 { return e[1] }

// Z returns the rotation around the Z axis.
func (e Euler) Z() float64 { return e[2] }

// Pose is a full transform: position, rotation and per-axis scale.
type Pose struct {
	Position r3.Vec
	Rotation Euler
	Scale    r3.Vec
}

// Sample is one stored correlation anchor: the driving orientation and the
// pose the controller should take when the driver is at that orientation.
type Sample struct {
	Orientation Euler
	Pose        Pose
}
