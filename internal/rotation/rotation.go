// Package rotation provides time-dependent rotations: a direction cosine
// matrix together with its time derivative, so that position and velocity
// transform together.
package rotation

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Matrix is a row-major 3x3 matrix.
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotX returns the passive (frame) rotation by angle about the x axis.
func RotX(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{{1, 0, 0}, {0, c, s}, {0, -s, c}}
}

// RotY returns the passive rotation by angle about the y axis.
func RotY(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
}

// RotZ returns the passive rotation by angle about the z axis.
func RotZ(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
}

// Skew returns the cross-product matrix [w]x, so that Skew(w)·v = w × v.
func Skew(w r3.Vec) Matrix {
	return Matrix{{0, -w.Z, w.Y}, {w.Z, 0, -w.X}, {-w.Y, w.X, 0}}
}

// Mul returns a·b.
func (a Matrix) Mul(b Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return out
}

func (a Matrix) Add(b Matrix) Matrix {
	for i := range a {
		for j := range a[i] {
			a[i][j] += b[i][j]
		}
	}
	return a
}

func (a Matrix) Scale(f float64) Matrix {
	for i := range a {
		for j := range a[i] {
			a[i][j] *= f
		}
	}
	return a
}

func (a Matrix) Transpose() Matrix {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			a[i][j], a[j][i] = a[j][i], a[i][j]
		}
	}
	return a
}

// Apply returns a·v.
func (a Matrix) Apply(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: a[0][0]*v.X + a[0][1]*v.Y + a[0][2]*v.Z,
		Y: a[1][0]*v.X + a[1][1]*v.Y + a[1][2]*v.Z,
		Z: a[2][0]*v.X + a[2][1]*v.Y + a[2][2]*v.Z,
	}
}

// MaxAbsDiff returns the largest element-wise difference, for tolerance
// checks.
func (a Matrix) MaxAbsDiff(b Matrix) float64 {
	var m float64
	for i := range a {
		for j := range a[i] {
			m = math.Max(m, math.Abs(a[i][j]-b[i][j]))
		}
	}
	return m
}

// Rotation is a direction cosine matrix and its time derivative.
// The zero value is not a rotation; start from Identity or New.
type Rotation struct {
	m  Matrix
	dm Matrix
}

// IdentityRotation leaves states unchanged.
func IdentityRotation() Rotation { return Rotation{m: Identity()} }

// New returns a constant rotation.
func New(m Matrix) Rotation { return Rotation{m: m} }

// WithDerivative pairs m with an explicit derivative.
func WithDerivative(m, dm Matrix) Rotation { return Rotation{m: m, dm: dm} }

// WithAngularVelocity builds the rotation of a frame turning at w, expressed
// in the target frame: dm = -[w]x·m.
func WithAngularVelocity(m Matrix, w r3.Vec) Rotation {
	return Rotation{m: m, dm: Skew(w).Scale(-1).Mul(m)}
}

func (r Rotation) Matrix() Matrix     { return r.m }
func (r Rotation) Derivative() Matrix { return r.dm }

// AngularVelocity recovers w from dm = -[w]x·m.
func (r Rotation) AngularVelocity() r3.Vec {
	s := r.dm.Mul(r.m.Transpose()).Scale(-1)
	return r3.Vec{X: (s[2][1] - s[1][2]) / 2, Y: (s[0][2] - s[2][0]) / 2, Z: (s[1][0] - s[0][1]) / 2}
}

// Compose returns the rotation that applies r first and then next.
func (r Rotation) Compose(next Rotation) Rotation {
	return Rotation{
		m:  next.m.Mul(r.m),
		dm: next.dm.Mul(r.m).Add(next.m.Mul(r.dm)),
	}
}

// Transpose returns the inverse rotation.
func (r Rotation) Transpose() Rotation {
	return Rotation{m: r.m.Transpose(), dm: r.dm.Transpose()}
}

// ApplyPosition rotates a position vector.
func (r Rotation) ApplyPosition(pos r3.Vec) r3.Vec { return r.m.Apply(pos) }

// ApplyState rotates a position and velocity, accounting for the frame's
// rotation rate.
func (r Rotation) ApplyState(pos, vel r3.Vec) (r3.Vec, r3.Vec) {
	return r.m.Apply(pos), r3.Add(r.dm.Apply(pos), r.m.Apply(vel))
}
