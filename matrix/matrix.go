package matrix

import "math"

// Matrix3x3 is a row-major 3x3 matrix.
type Matrix3x3 [9]float64

// Vector3 is a column vector.
type Vector3 [3]float64

// Identity3x3 returns the 3x3 identity matrix.
func Identity3x3() Matrix3x3 {
	return Matrix3x3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Multiply returns m * other.
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	var result Matrix3x3

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i*3+k] * other[k*3+j]
			}
			result[i*3+j] = sum
		}
	}

	return result
}

// Apply returns m * v.
func (m Matrix3x3) Apply(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Scale multiplies every coefficient by s.
func (m Matrix3x3) Scale(s float64) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 9; i++ {
		result[i] = m[i] * s
	}
	return result
}

// Transpose returns the transpose of m.
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Row returns row i (0..2).
func (m Matrix3x3) Row(i int) Vector3 {
	return Vector3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Column returns column j (0..2).
func (m Matrix3x3) Column(j int) Vector3 {
	return Vector3{m[j], m[3+j], m[6+j]}
}

// MaxAbsDiff returns the largest absolute coefficient difference.
func (m Matrix3x3) MaxAbsDiff(other Matrix3x3) float64 {
	d := 0.0
	for i := 0; i < 9; i++ {
		d = math.Max(d, math.Abs(m[i]-other[i]))
	}
	return d
}

// IsIdentity reports whether m is within eps of the identity.
func (m Matrix3x3) IsIdentity(eps float64) bool {
	return m.MaxAbsDiff(Identity3x3()) <= eps
}

// IsFinite reports whether every coefficient is neither NaN nor infinite.
func (m Matrix3x3) IsFinite() bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
