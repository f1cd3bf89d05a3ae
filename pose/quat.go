package pose

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// eulerToQuat converts XYZ Euler angles to a unit quaternion. The
// composition is qz*qy*qx, matching the XYZ rotation order of Euler.
func eulerToQuat(e Euler) quat.Number {
	cx, sx := math.Cos(e[0]/2), math.Sin(e[0]/2)
	cy, sy := math.Cos(e[1]/2), math.Sin(e[1]/2)
	cz, sz := math.Cos(e[2]/2), math.Sin(e[2]/2)

	return quat.Number{
		Real: cz*cy*cx + sz*sy*sx,
		Imag: cz*cy*sx - sz*sy*cx,
		Jmag: cz*sy*cx + sz*cy*sx,
		Kmag: sz*cy*cx - cz*sy*sx,
	}
}

// quatToEuler converts a unit quaternion back to XYZ Euler angles.
func quatToEuler(q quat.Number) Euler {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	// Clamp guards against |arg| creeping past 1 from rounding.
	sinY := 2 * (w*y - z*x)
	sinY = min(max(sinY, -1), 1)

	return Euler{
		math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y)),
		math.Asin(sinY),
		math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z)),
	}
}

func quatDot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

func quatScale(s float64, q quat.Number) quat.Number {
	return quat.Number{Real: s * q.Real, Imag: s * q.Imag, Jmag: s * q.Jmag, Kmag: s * q.Kmag}
}

func quatAdd(a, b quat.Number) quat.Number {
	return quat.Number{
		Real: a.Real + b.Real,
		Imag: a.Imag + b.Imag,
		Jmag: a.Jmag + b.Jmag,
		Kmag: a.Kmag + b.Kmag,
	}
}

// wrapAngle maps an angle delta onto (-π, π], the shortest arc.
func wrapAngle(d float64) float64 {
	d = math.Mod(d, 2*math.Pi)
	switch {
	case d > math.Pi:
		d -= 2 * math.Pi
	case d <= -math.Pi:
		d += 2 * math.Pi
	}

	return d
}
