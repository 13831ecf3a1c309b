package astrometry

import "math"

// Vector is a Cartesian position in AU tagged with the Time at which it
// is valid. Vectors are plain values and are freely copied.
type Vector struct {
	X, Y, Z float64
	T       Time
}

// Length returns the Euclidean length of the vector in AU.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Sub returns the component-wise difference v - w, keeping v's time tag.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.T}
}

// Add returns the component-wise sum v + w, keeping v's time tag.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.T}
}

// Neg returns the vector pointing the opposite way.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z, v.T}
}

// angleBetween returns the angle between two vectors in degrees.
func angleBetween(v, w Vector) float64 {
	r := v.Length() * w.Length()
	if r == 0 {
		return 0
	}
	dot := (v.X*w.X + v.Y*w.Y + v.Z*w.Z) / r
	if dot <= -1 {
		return 180
	}
	if dot >= 1 {
		return 0
	}
	return radToDeg * math.Acos(dot)
}

// rotationMatrix is a 3x3 orthogonal rotation applied by explicit dot
// products, rows indexed first.
type rotationMatrix [3][3]float64

// rotate applies r to v, preserving the time tag.
func (r rotationMatrix) rotate(v Vector) Vector {
	return Vector{
		X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
		T: v.T,
	}
}

// transpose returns the inverse rotation.
func (r rotationMatrix) transpose() rotationMatrix {
	return rotationMatrix{
		{r[0][0], r[1][0], r[2][0]},
		{r[0][1], r[1][1], r[2][1]},
		{r[0][2], r[1][2], r[2][2]},
	}
}

// spin rotates xyz by angle degrees around the z-axis.
func spin(angle float64, pos [3]float64) [3]float64 {
	angr := angle * degToRad
	c := math.Cos(angr)
	s := math.Sin(angr)
	return [3]float64{
		c*pos[0] + s*pos[1],
		c*pos[1] - s*pos[0],
		pos[2],
	}
}
