/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package affine2

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

/*****************************************************************************************************************/

func almostEqual(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

/*****************************************************************************************************************/

func TestIdentityDetAndTrace(t *testing.T) {
	m := Identity()

	if m.Det() != 1 {
		t.Errorf("Det() = %v; want 1", m.Det())
	}

	if m.Trace() != 2 {
		t.Errorf("Trace() = %v; want 2", m.Trace())
	}
}

/*****************************************************************************************************************/

func TestInvRoundTrip(t *testing.T) {
	m := Matrix2x2{V11: 4, V12: 1, V21: 1, V22: 3}

	inv := m.Inv()

	product := m.Mul(inv)

	if !almostEqual(product.V11, 1, 1e-9) || !almostEqual(product.V22, 1, 1e-9) {
		t.Errorf("m*m.Inv() diagonal = (%v, %v); want (1, 1)", product.V11, product.V22)
	}

	if !almostEqual(product.V12, 0, 1e-9) || !almostEqual(product.V21, 0, 1e-9) {
		t.Errorf("m*m.Inv() off-diagonal = (%v, %v); want (0, 0)", product.V12, product.V21)
	}
}

/*****************************************************************************************************************/

func TestTransposeIsInvolution(t *testing.T) {
	m := Matrix2x2{V11: 1, V12: 2, V21: 3, V22: 4}

	tt := m.T().T()

	if tt != m {
		t.Errorf("T().T() = %+v; want %+v", tt, m)
	}
}

/*****************************************************************************************************************/

func TestAAtIsSymmetric(t *testing.T) {
	m := Matrix2x2{V11: 2, V12: -1, V21: 0.5, V22: 3}

	p := m.AAt()

	if p.V12 != p.V21 {
		t.Errorf("AAt() not symmetric: V12=%v V21=%v", p.V12, p.V21)
	}
}

/*****************************************************************************************************************/

func TestRotationIsOrthonormal(t *testing.T) {
	r := Rotation(math.Pi / 3)

	p := r.Mul(r.T())

	if !almostEqual(p.V11, 1, 1e-9) || !almostEqual(p.V22, 1, 1e-9) {
		t.Errorf("R*R^T diagonal = (%v, %v); want (1, 1)", p.V11, p.V22)
	}

	if !almostEqual(p.V12, 0, 1e-9) || !almostEqual(p.V21, 0, 1e-9) {
		t.Errorf("R*R^T off-diagonal = (%v, %v); want (0, 0)", p.V12, p.V21)
	}

	if !almostEqual(r.Det(), 1, 1e-9) {
		t.Errorf("Det(R) = %v; want 1", r.Det())
	}
}

/*****************************************************************************************************************/

func TestRotationDerivMatchesFiniteDifference(t *testing.T) {
	theta := 0.37
	h := 1e-6

	analytic := RotationDeriv(theta)

	plus := Rotation(theta + h)
	minus := Rotation(theta - h)

	fd := Matrix2x2{
		V11: (plus.V11 - minus.V11) / (2 * h),
		V12: (plus.V12 - minus.V12) / (2 * h),
		V21: (plus.V21 - minus.V21) / (2 * h),
		V22: (plus.V22 - minus.V22) / (2 * h),
	}

	if !almostEqual(analytic.V11, fd.V11, 1e-6) || !almostEqual(analytic.V12, fd.V12, 1e-6) ||
		!almostEqual(analytic.V21, fd.V21, 1e-6) || !almostEqual(analytic.V22, fd.V22, 1e-6) {
		t.Errorf("RotationDeriv() = %+v; finite-difference = %+v", analytic, fd)
	}
}

/*****************************************************************************************************************/

func TestScaleDiagDerivMatchesFiniteDifference(t *testing.T) {
	q := 0.6
	h := 1e-6

	analytic := ScaleDiagDeriv(q)

	plus := ScaleDiag(q + h)
	minus := ScaleDiag(q - h)

	fdV11 := (plus.V11 - minus.V11) / (2 * h)
	fdV22 := (plus.V22 - minus.V22) / (2 * h)

	if !almostEqual(analytic.V11, fdV11, 1e-5) {
		t.Errorf("ScaleDiagDeriv().V11 = %v; finite-difference = %v", analytic.V11, fdV11)
	}

	if !almostEqual(analytic.V22, fdV22, 1e-5) {
		t.Errorf("ScaleDiagDeriv().V22 = %v; finite-difference = %v", analytic.V22, fdV22)
	}
}

/*****************************************************************************************************************/

func TestABA(t *testing.T) {
	a := Matrix2x2{V11: 2, V12: 0, V21: 0, V22: 3}
	b := Identity()

	got := ABA(a, b)
	want := a.Mul(a)

	if got != want {
		t.Errorf("ABA(a, I) = %+v; want a*a = %+v", got, want)
	}
}

/*****************************************************************************************************************/

func TestAv(t *testing.T) {
	m := Matrix2x2{V11: 2, V12: 0, V21: 0, V22: 3}
	v := [2]float64{1, 1}

	Av(m, &v)

	if v[0] != 2 || v[1] != 3 {
		t.Errorf("Av() = %+v; want [2 3]", v)
	}
}

/*****************************************************************************************************************/
