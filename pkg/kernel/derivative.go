/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package kernel

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// ComputeGaussianDerivative accumulates one galaxy's contribution to dchi2_dp at pixel (xp, yp) into out, which
// the caller has already zeroed (spec §4.4). r is the pre-scaled residual, residual*ierr^2, so that summing
// dC/dtheta*r over pixels reproduces -0.5*dchi2/dtheta up to sign. gaussians holds the galaxy's own PSF-component
// ImageGaussians (one galaxy's slice, not the whole band).
func ComputeGaussianDerivative(xp, yp, r float64, gaussians []ImageGaussian, out []float32) {
	for i := range gaussians {
		accumulateComponentDerivative(xp, yp, r, &gaussians[i], out)
	}
}

/*****************************************************************************************************************/

func accumulateComponentDerivative(xp, yp, r float64, g *ImageGaussian, out []float32) {
	dx := xp - float64(g.Xcen)
	dy := yp - float64(g.Ycen)

	fxx := float64(g.Fxx)
	fyy := float64(g.Fyy)
	fxy := float64(g.Fxy)

	vx := fxx*dx + fxy*dy
	vy := fyy*dy + fxy*dx

	arg := dx*vx + dy*vy
	if arg >= MaxExpArg {
		return
	}

	Gp := math.Exp(-0.5 * arg)
	H := 1 + (vx*vx+vy*vy-fxx-fyy)/24

	// rAmpGp stands in for the spec's C/H: C = rAmpGp*H, so C/H == rAmpGp whenever H != 0, and unlike C/H it
	// stays well-defined when H is exactly zero (spec §9 accepts H going negative or zero near pixel edges,
	// undesirable but by design).
	amp := float64(g.Amp)
	rAmpGp := r * amp * Gp
	C := rAmpGp * H

	dC_dA := r * Gp * H
	dC_dx := C*vx - rAmpGp*(fxx*vx+fxy*vy)/12
	dC_dy := C*vy - rAmpGp*(fyy*vy+fxy*vx)/12
	dC_dfxx := -0.5*C*dx*dx - rAmpGp*(1-2*dx*vx)/24
	dC_dfyy := -0.5*C*dy*dy - rAmpGp*(1-2*dy*vy)/24
	dC_dfxy := -C*dx*dy + rAmpGp*(dy*vx+dx*vy)/12

	out[ParamFlux] += float32(float64(g.DA_dFlux) * dC_dA)
	out[ParamRA] += float32(float64(g.Dx_dAlpha)*dC_dx + float64(g.Dy_dAlpha)*dC_dy)
	out[ParamDec] += float32(float64(g.Dx_dDelta)*dC_dx + float64(g.Dy_dDelta)*dC_dy)
	out[ParamQ] += float32(
		float64(g.DA_dQ)*dC_dA + float64(g.DFxx_dQ)*dC_dfxx + float64(g.DFxy_dQ)*dC_dfxy + float64(g.DFyy_dQ)*dC_dfyy,
	)
	out[ParamPA] += float32(
		float64(g.DA_dPA)*dC_dA + float64(g.DFxx_dPA)*dC_dfxx + float64(g.DFxy_dPA)*dC_dfxy + float64(g.DFyy_dPA)*dC_dfyy,
	)
	out[ParamSersic] += float32(float64(g.DA_dSersic) * dC_dA)
	out[ParamRh] += float32(float64(g.DA_dRh) * dC_dA)
}

/*****************************************************************************************************************/
