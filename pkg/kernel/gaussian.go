/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package kernel

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/forcepho-kernel/gogauss/pkg/affine2"
	"github.com/forcepho-kernel/gogauss/pkg/wcs"
)

/*****************************************************************************************************************/

const twoPi = 2 * math.Pi

/*****************************************************************************************************************/

// CreateImageGaussians builds one ImageGaussian per (source, PSF-component) pair of a single band's exposure,
// writing them into out in [source][psf-component] row-major order (spec §4.2). out must already be sized
// nSources*nPSF. The pairs are independent of one another, so construction is fanned out across a worker pool,
// mirroring the teacher's goroutine-per-unit-of-work style generalized from a WaitGroup to an errgroup so a
// malformed pair's error is returned to the caller. The other sources' goroutines are not cancelled and still
// write their slots of out.
func CreateImageGaussians(patch *Patch, proposal []Source, band, exposure int, out []ImageGaussian) error {
	nSources := int(patch.NSources)
	nPSF := int(patch.NPSFPerSource[band])

	if len(out) != nSources*nPSF {
		return fmt.Errorf("kernel: out has length %d, want %d (nSources=%d * nPSF=%d)", len(out), nSources*nPSF, nSources, nPSF)
	}

	psfBase := int(patch.PSFGaussStart[exposure])
	gain := float64(patch.G[exposure])
	crpixX, crpixY := patch.Crpix2(exposure)
	crvalRA, crvalDec := patch.Crval2(exposure)

	var g errgroup.Group

	for source := 0; source < nSources; source++ {
		source := source

		g.Go(func() error {
			src := &proposal[source]

			D := patch.DMatrix(exposure, source)
			CW := patch.CWMatrix(exposure, source)

			for component := 0; component < nPSF; component++ {
				psf := patch.PSFGauss[psfBase+component]

				ig, err := prepareImageGaussian(src, band, D, CW, patch.Rad2, gain, crpixX, crpixY, crvalRA, crvalDec, psf)
				if err != nil {
					return err
				}

				out[source*nPSF+component] = ig
			}

			return nil
		})
	}

	return g.Wait()
}

/*****************************************************************************************************************/

// prepareImageGaussian runs the seven-step per-pair construction of spec §4.2 for one (source, PSF-component)
// pair, given the exposure-level geometry already resolved by the caller.
func prepareImageGaussian(
	src *Source,
	band int,
	D, CW affine2.Matrix2x2,
	rad2 []float32,
	gain, crpixX, crpixY, crvalRA, crvalDec float64,
	psf PSFSourceGaussian,
) (ImageGaussian, error) {
	s := int(psf.SersicRadiusBin)

	if s < 0 || s >= len(rad2) {
		return ImageGaussian{}, fmt.Errorf("kernel: sersic_radius_bin %d out of range [0,%d)", s, len(rad2))
	}

	q := float64(src.Q)
	pa := float64(src.PA)
	flux := float64(src.Fluxes[band])

	// Step 1-2: transform matrix and its derivatives.
	R := affine2.Rotation(pa)
	S := affine2.ScaleDiag(q)
	dRdPA := affine2.RotationDeriv(pa)
	dSdQ := affine2.ScaleDiagDeriv(q)

	T := D.Mul(R).Mul(S)
	dT_dQ := D.Mul(R).Mul(dSdQ)
	dT_dPA := D.Mul(dRdPA).Mul(S)

	// Step 3: sky-plane covariance of this component.
	covar := float64(rad2[s])
	sigmaIm := T.AAt().Mulf(covar)

	// Step 4: total covariance, its inverse, and determinant.
	sigmaPsf := affine2.New(float64(psf.Cxx), float64(psf.Cxy), float64(psf.Cxy), float64(psf.Cyy))
	sigma := sigmaIm.Add(sigmaPsf)

	F := sigma.Inv()
	detF := F.Det()

	// Step 5: image-plane mean.
	raOffset := float64(src.RA) - crvalRA
	decOffset := float64(src.Dec) - crvalDec

	xcen, ycen := wcs.ProjectSkyToPixel(CW, raOffset, decOffset, crpixX, crpixY)
	xcen += float64(psf.Xcen)
	ycen += float64(psf.Ycen)

	// Step 6: amplitude. k1 factors out flux and mixture_amplitudes[s] so that dA/dflux, dA/dsersic, and dA/drh
	// stay well-defined at flux=0 or mixture_amplitudes[s]=0, rather than the literal amp/flux and
	// amp*(d.../a_s) ratios in spec §4.2 step 7, which divide by zero in those cases. dA/dsersic and dA/drh are
	// zero at flux=0; dA/dflux is zero at mixture_amplitudes[s]=0 but not at flux=0.
	aS := float64(src.MixtureAmplitudes[s])
	psfAmp := float64(psf.Amp)

	k1 := gain * psfAmp * math.Sqrt(detF) / twoPi
	amp := flux * aS * k1

	dA_dFlux := aS * k1
	dA_dSersic := flux * k1 * float64(src.DAmplitudeDNSersic[s])
	dA_dRh := flux * k1 * float64(src.DAmplitudeDRh[s])

	// Step 7: covariance/inverse/determinant derivatives w.r.t. q and pa, and the amplitude and F-element
	// partials they feed.
	dSigma_dQ := T.Mul(dT_dQ.T()).Add(dT_dQ.Mul(T.T())).Mulf(covar)
	dSigma_dPA := T.Mul(dT_dPA.T()).Add(dT_dPA.Mul(T.T())).Mulf(covar)

	dF_dQ := affine2.ABA(F, dSigma_dQ).Neg()
	dF_dPA := affine2.ABA(F, dSigma_dPA).Neg()

	dDetF_dQ := detF * sigma.Mul(dF_dQ).Trace()
	dDetF_dPA := detF * sigma.Mul(dF_dPA).Trace()

	dA_dQ := amp * dDetF_dQ / (2 * detF)
	dA_dPA := amp * dDetF_dPA / (2 * detF)

	return ImageGaussian{
		Amp:  float32(amp),
		Xcen: float32(xcen),
		Ycen: float32(ycen),
		Fxx:  float32(F.V11),
		Fyy:  float32(F.V22),
		Fxy:  float32(F.V12),

		DA_dFlux: float32(dA_dFlux),

		Dx_dAlpha: float32(CW.V11),
		Dy_dAlpha: float32(CW.V21),
		Dx_dDelta: float32(CW.V12),
		Dy_dDelta: float32(CW.V22),

		DA_dQ:   float32(dA_dQ),
		DFxx_dQ: float32(dF_dQ.V11),
		DFyy_dQ: float32(dF_dQ.V22),
		DFxy_dQ: float32(dF_dQ.V12),

		DA_dPA:   float32(dA_dPA),
		DFxx_dPA: float32(dF_dPA.V11),
		DFyy_dPA: float32(dF_dPA.V22),
		DFxy_dPA: float32(dF_dPA.V12),

		DA_dSersic: float32(dA_dSersic),
		DA_dRh:     float32(dA_dRh),
	}, nil
}

/*****************************************************************************************************************/
