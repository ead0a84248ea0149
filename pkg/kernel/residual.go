/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package kernel

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// ComputeResidualImage returns data minus the sum of all ImageGaussian model components evaluated at pixel
// (xp, yp), per spec §4.3. Components whose Gaussian exponent argument reaches MaxExpArg (inclusive, so the
// boundary pixel itself contributes zero) are skipped rather than evaluated, both an infinity guard and a speed
// optimization.
func ComputeResidualImage(xp, yp, data float64, gaussians []ImageGaussian) float64 {
	model := 0.0

	for i := range gaussians {
		model += evaluateComponent(xp, yp, &gaussians[i])
	}

	return data - model
}

/*****************************************************************************************************************/

func evaluateComponent(xp, yp float64, g *ImageGaussian) float64 {
	dx := xp - float64(g.Xcen)
	dy := yp - float64(g.Ycen)

	fxx := float64(g.Fxx)
	fyy := float64(g.Fyy)
	fxy := float64(g.Fxy)

	vx := fxx*dx + fxy*dy
	vy := fyy*dy + fxy*dx

	arg := dx*vx + dy*vy
	if arg >= MaxExpArg {
		return 0
	}

	Gp := math.Exp(-0.5 * arg)

	// Second-order pixel-integral correction, the analytic approximation to integrating the Gaussian across a
	// unit pixel without numerical sampling.
	H := 1 + (vx*vx+vy*vy-fxx-fyy)/24

	return float64(g.Amp) * Gp * H
}

/*****************************************************************************************************************/
