/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package kernel

/*****************************************************************************************************************/

import "github.com/forcepho-kernel/gogauss/pkg/affine2"

/*****************************************************************************************************************/

// PSFSourceGaussian is one component of a per-exposure PSF Gaussian mixture, in pixel space, paired with a
// specific Sersic radial bin.
type PSFSourceGaussian struct {
	Amp             float32
	Xcen            float32
	Ycen            float32
	Cxx             float32
	Cxy             float32
	Cyy             float32
	SersicRadiusBin int32
}

/*****************************************************************************************************************/

// Patch is the read-only per-invocation description of one astronomical cutout: all bands, exposures, and
// pixels relevant to a small region of sky (spec §3). The kernel treats it as read-only except for Residual,
// which it writes.
type Patch struct {
	NBands   int32
	NSources int32
	NRadii   int32

	// Per-band index arrays, length NBands:
	BandStart     []int32
	BandN         []int32
	NPSFPerSource []int32

	// Per-exposure index arrays, length = total exposure count:
	ExposureStart []int32
	ExposureN     []int32
	PSFGaussStart []int32
	G             []float32

	// Astrometry, two floats per exposure (x, y) / (ra, dec):
	Crpix []float32
	Crval []float32

	// Per-(exposure, source) 2x2 Jacobians, 4 floats row-major each, flattened exposure-major then source-major.
	D  []float32
	CW []float32

	// Flat pixel arrays, concatenated across exposures:
	Xpix []float32
	Ypix []float32
	Data []float32
	Ierr []float32

	// Residual is output scratch, one entry per pixel, written by ComputeResidualImage via EvaluateProposal.
	Residual []float32

	Rad2     []float32
	PSFGauss []PSFSourceGaussian
}

/*****************************************************************************************************************/

// NExposures returns the total number of exposures described by the patch.
func (p *Patch) NExposures() int {
	return len(p.ExposureStart)
}

/*****************************************************************************************************************/

// DMatrix returns the per-(exposure, source) pixel-scale Jacobian D as a Matrix2x2.
func (p *Patch) DMatrix(exposure, source int) affine2.Matrix2x2 {
	return p.jacobianAt(p.D, exposure, source)
}

/*****************************************************************************************************************/

// CWMatrix returns the per-(exposure, source) world-coordinate Jacobian CW as a Matrix2x2.
func (p *Patch) CWMatrix(exposure, source int) affine2.Matrix2x2 {
	return p.jacobianAt(p.CW, exposure, source)
}

/*****************************************************************************************************************/

func (p *Patch) jacobianAt(flat []float32, exposure, source int) affine2.Matrix2x2 {
	base := 4 * (exposure*int(p.NSources) + source)

	return affine2.Matrix2x2{
		V11: float64(flat[base]),
		V12: float64(flat[base+1]),
		V21: float64(flat[base+2]),
		V22: float64(flat[base+3]),
	}
}

/*****************************************************************************************************************/

// Crpix2 returns the reference pixel (crpix[0], crpix[1]) for an exposure.
func (p *Patch) Crpix2(exposure int) (float64, float64) {
	return float64(p.Crpix[2*exposure]), float64(p.Crpix[2*exposure+1])
}

/*****************************************************************************************************************/

// Crval2 returns the reference sky coordinate (crval[0], crval[1]) for an exposure.
func (p *Patch) Crval2(exposure int) (float64, float64) {
	return float64(p.Crval[2*exposure]), float64(p.Crval[2*exposure+1])
}

/*****************************************************************************************************************/

// Source is one active galaxy: the seven sky parameters used by the gradient, plus the precomputed Sersic
// mixture amplitudes (and their derivatives w.r.t. sersic_n and rh) for each of the patch's radial bins.
type Source struct {
	RA                 float32
	Dec                float32
	Q                  float32 // axis-ratio-squared
	PA                 float32 // position angle
	SersicN            float32
	Rh                 float32
	Fluxes             [MaxBands]float32
	MixtureAmplitudes  [MaxRadii]float32
	DAmplitudeDNSersic [MaxRadii]float32
	DAmplitudeDRh      [MaxRadii]float32
}

/*****************************************************************************************************************/

// PixGaussian is a record of the per-(source, PSF-component) preparation intermediates (spec §3).
// prepareImageGaussian keeps these intermediates in local variables and does not build a PixGaussian, and no
// code in this repository constructs or reads one.
type PixGaussian struct {
	Covar    float64
	ScovarIm affine2.Matrix2x2
	Xcen     float64
	Ycen     float64
	Flux     float64
	Gain     float64
	Amp      float64
	DAmpDN   float64
	DAmpDRh  float64
	CW       affine2.Matrix2x2
	T        affine2.Matrix2x2
	DT_dQ    affine2.Matrix2x2
	DT_dPA   affine2.Matrix2x2
}

/*****************************************************************************************************************/

// ImageGaussian is the compact evaluation record in image-plane coordinates: six Gaussian parameters plus the
// fifteen-entry Jacobian to the seven sky parameters (spec §3, 21 floats total).
type ImageGaussian struct {
	Amp  float32
	Xcen float32
	Ycen float32
	Fxx  float32
	Fyy  float32
	Fxy  float32

	DA_dFlux float32

	Dx_dAlpha float32
	Dy_dAlpha float32
	Dx_dDelta float32
	Dy_dDelta float32

	DA_dQ   float32
	DFxx_dQ float32
	DFyy_dQ float32
	DFxy_dQ float32

	DA_dPA   float32
	DFxx_dPA float32
	DFyy_dPA float32
	DFxy_dPA float32

	DA_dSersic float32
	DA_dRh     float32
}

/*****************************************************************************************************************/

// Accumulator is block-local reduction state: the scalar chi2 and the per-(active source, param) gradient.
type Accumulator struct {
	Chi2    float32
	Dchi2Dp []float32 // length nActive*NParams, row order [galaxy][param]
}

/*****************************************************************************************************************/

// NewAccumulator returns a zeroed Accumulator sized for nActive sources.
func NewAccumulator(nActive int) Accumulator {
	return Accumulator{Dchi2Dp: make([]float32, nActive*NParams)}
}

/*****************************************************************************************************************/

// Response is the per-band kernel output: the chi2 scalar and the gradient vector in [galaxy][param] order.
type Response struct {
	Chi2        float32
	DChi2DParam []float32
}

/*****************************************************************************************************************/
