/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package affine2 implements the fixed 2x2 matrix value type used throughout the Gaussian-mixture preparation
// stage (rotation, scaling, transpose, inverse, the A*B*A triple product used for derivatives of an inverse).
// It is grounded on the teacher's general NxN pkg/matrix, specialized to a zero-allocation value type for the
// per-(source, PSF-component) hot loop in pkg/kernel: every preparation pair constructs several of these, so
// heap allocation or a general-size matrix (gonum's mat.Dense, or the teacher's own pkg/matrix) is unaffordable.
package affine2

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// Matrix2x2 is a 2x2 matrix value type, row-major:
//
//	| V11 V12 |
//	| V21 V22 |
type Matrix2x2 struct {
	V11, V12, V21, V22 float64
}

/*****************************************************************************************************************/

// NewFromSlice constructs a Matrix2x2 from a 4-float row-major buffer: [v11, v12, v21, v22].
func NewFromSlice(value []float64) Matrix2x2 {
	return Matrix2x2{
		V11: value[0],
		V12: value[1],
		V21: value[2],
		V22: value[3],
	}
}

/*****************************************************************************************************************/

// New constructs a Matrix2x2 from four scalars, row-major.
func New(v11, v12, v21, v22 float64) Matrix2x2 {
	return Matrix2x2{V11: v11, V12: v12, V21: v21, V22: v22}
}

/*****************************************************************************************************************/

// Identity returns the 2x2 identity matrix.
func Identity() Matrix2x2 {
	return Matrix2x2{V11: 1, V12: 0, V21: 0, V22: 1}
}

/*****************************************************************************************************************/

// Rotation returns the 2x2 rotation matrix for angle theta (radians).
func Rotation(theta float64) Matrix2x2 {
	c := math.Cos(theta)
	s := math.Sin(theta)

	return Matrix2x2{V11: c, V12: -s, V21: s, V22: c}
}

/*****************************************************************************************************************/

// RotationDeriv returns d/dtheta of Rotation(theta).
func RotationDeriv(theta float64) Matrix2x2 {
	c := math.Cos(theta)
	s := math.Sin(theta)

	return Matrix2x2{V11: -s, V12: -c, V21: c, V22: -s}
}

/*****************************************************************************************************************/

// ScaleDiag returns the diagonal scale matrix parameterized by axis-ratio q: diag(sqrt(q), 1/sqrt(q)), the
// convention under which the Sersic-mixture covariance has unit determinant at q=1.
func ScaleDiag(q float64) Matrix2x2 {
	sq := math.Sqrt(q)

	return Matrix2x2{V11: sq, V12: 0, V21: 0, V22: 1 / sq}
}

/*****************************************************************************************************************/

// ScaleDiagDeriv returns d/dq of ScaleDiag(q).
func ScaleDiagDeriv(q float64) Matrix2x2 {
	sq := math.Sqrt(q)

	return Matrix2x2{V11: 0.5 / sq, V12: 0, V21: 0, V22: -0.5 / (sq * q)}
}

/*****************************************************************************************************************/

// Det returns the determinant of m.
func (m Matrix2x2) Det() float64 {
	return m.V11*m.V22 - m.V12*m.V21
}

/*****************************************************************************************************************/

// Trace returns the trace of m.
func (m Matrix2x2) Trace() float64 {
	return m.V11 + m.V22
}

/*****************************************************************************************************************/

// Inv returns the inverse of m, assumed symmetric positive-definite (the caller guarantees this per spec §3 —
// no singularity check is performed on the hot path).
func (m Matrix2x2) Inv() Matrix2x2 {
	invDet := 1.0 / m.Det()

	return Matrix2x2{
		V11: m.V22 * invDet,
		V12: -m.V12 * invDet,
		V21: -m.V21 * invDet,
		V22: m.V11 * invDet,
	}
}

/*****************************************************************************************************************/

// T returns the transpose of m.
func (m Matrix2x2) T() Matrix2x2 {
	return Matrix2x2{V11: m.V11, V12: m.V21, V21: m.V12, V22: m.V22}
}

/*****************************************************************************************************************/

// Mul returns the matrix product m*other.
func (m Matrix2x2) Mul(other Matrix2x2) Matrix2x2 {
	return Matrix2x2{
		V11: m.V11*other.V11 + m.V12*other.V21,
		V12: m.V11*other.V12 + m.V12*other.V22,
		V21: m.V21*other.V11 + m.V22*other.V21,
		V22: m.V21*other.V12 + m.V22*other.V22,
	}
}

/*****************************************************************************************************************/

// Mulf returns m scaled by the scalar s.
func (m Matrix2x2) Mulf(s float64) Matrix2x2 {
	return Matrix2x2{V11: m.V11 * s, V12: m.V12 * s, V21: m.V21 * s, V22: m.V22 * s}
}

/*****************************************************************************************************************/

// Add returns the elementwise sum m+other.
func (m Matrix2x2) Add(other Matrix2x2) Matrix2x2 {
	return Matrix2x2{
		V11: m.V11 + other.V11,
		V12: m.V12 + other.V12,
		V21: m.V21 + other.V21,
		V22: m.V22 + other.V22,
	}
}

/*****************************************************************************************************************/

// Neg returns -m.
func (m Matrix2x2) Neg() Matrix2x2 {
	return Matrix2x2{V11: -m.V11, V12: -m.V12, V21: -m.V21, V22: -m.V22}
}

/*****************************************************************************************************************/

// AAt returns A*A^T, the outer-product form used to build a covariance from a transform matrix.
func (m Matrix2x2) AAt() Matrix2x2 {
	return m.Mul(m.T())
}

/*****************************************************************************************************************/

// ABA returns A*B*A, the triple product used by the inverse-derivative identity dF/dq = -F * dSigma/dq * F
// (spec §4.2 step 7).
func ABA(a, b Matrix2x2) Matrix2x2 {
	return a.Mul(b).Mul(a)
}

/*****************************************************************************************************************/

// Av applies m to the 2-vector v in place: v <- m*v.
func Av(m Matrix2x2, v *[2]float64) {
	x := m.V11*v[0] + m.V12*v[1]
	y := m.V21*v[0] + m.V22*v[1]

	v[0] = x
	v[1] = y
}

/*****************************************************************************************************************/
