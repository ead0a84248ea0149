/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package kernel

/*****************************************************************************************************************/

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

/*****************************************************************************************************************/

// EvaluateProposal is the kernel entry point (spec §4.5, §6): one block per band, computing chi2 and the
// per-source gradient for each band in responses. responses must already be sized patch.NBands. Bands are
// independent (no cross-band communication) so they are dispatched across an errgroup, generalizing the
// teacher's WaitGroup-fan-out idiom so that the first band's error is returned. A failing band does not stop
// its siblings: every band runs to completion and writes its own responses slot.
func EvaluateProposal(patch *Patch, proposal []Source, responses []Response) error {
	nActive := len(proposal)
	if nActive > MaxSources {
		return fmt.Errorf("kernel: n_active %d exceeds MaxSources %d", nActive, MaxSources)
	}

	nBands := int(patch.NBands)
	if nBands > MaxBands {
		return fmt.Errorf("kernel: n_bands %d exceeds MaxBands %d", nBands, MaxBands)
	}

	if len(responses) != nBands {
		return fmt.Errorf("kernel: responses has length %d, want %d", len(responses), nBands)
	}

	var g errgroup.Group

	for band := 0; band < nBands; band++ {
		band := band

		g.Go(func() error {
			return evaluateBand(patch, proposal, band, &responses[band])
		})
	}

	return g.Wait()
}

/*****************************************************************************************************************/

// evaluateBand drains a single band's exposures sequentially, accumulating chi2 and per-source gradient into
// resp (spec §4.5 steps 1-3 and final coadd).
func evaluateBand(patch *Patch, proposal []Source, band int, resp *Response) error {
	nActive := len(proposal)
	nPSF := int(patch.NPSFPerSource[band])

	acc := NewAccumulator(nActive)

	bandStart := int(patch.BandStart[band])
	bandN := int(patch.BandN[band])

	gaussians := make([]ImageGaussian, nActive*nPSF)

	for e := bandStart; e < bandStart+bandN; e++ {
		if err := CreateImageGaussians(patch, proposal, band, e, gaussians); err != nil {
			return fmt.Errorf("kernel: band %d exposure %d: %w", band, e, err)
		}

		if err := evaluateExposure(patch, e, nActive, nPSF, gaussians, &acc); err != nil {
			return fmt.Errorf("kernel: band %d exposure %d: %w", band, e, err)
		}
	}

	resp.Chi2 = acc.Chi2
	resp.DChi2DParam = acc.Dchi2Dp

	return nil
}

/*****************************************************************************************************************/

// evaluateExposure stripes one exposure's pixels across a fixed number of workers (WarpWidth, the rewrite's
// stand-in for a warp), each accumulating a private partial chi2 and gradient, then combines the partials in
// worker-index order. The fixed stride and fixed combination order are what make the reduction bit-exact for a
// given worker count, per spec §4.6/§5, even though floating-point addition is not itself associative.
func evaluateExposure(patch *Patch, exposure, nActive, nPSF int, gaussians []ImageGaussian, acc *Accumulator) error {
	pixStart := int(patch.ExposureStart[exposure])
	pixN := int(patch.ExposureN[exposure])

	if pixN == 0 {
		return nil
	}

	nWorkers := WarpWidth
	if pixN < nWorkers {
		nWorkers = pixN
	}

	partialChi2 := make([]float64, nWorkers)
	partialGrad := make([][]float32, nWorkers)

	var g errgroup.Group

	for w := 0; w < nWorkers; w++ {
		w := w

		g.Go(func() error {
			localChi2 := 0.0
			localGrad := make([]float32, nActive*NParams)

			for p := pixStart + w; p < pixStart+pixN; p += nWorkers {
				xp := float64(patch.Xpix[p])
				yp := float64(patch.Ypix[p])
				data := float64(patch.Data[p])
				ierr := float64(patch.Ierr[p])

				residual := ComputeResidualImage(xp, yp, data, gaussians)
				patch.Residual[p] = float32(residual)

				chi := residual * ierr
				localChi2 += chi * chi

				r2 := residual * ierr * ierr

				for gal := 0; gal < nActive; gal++ {
					galGaussians := gaussians[gal*nPSF : (gal+1)*nPSF]
					out := localGrad[gal*NParams : (gal+1)*NParams]
					ComputeGaussianDerivative(xp, yp, r2, galGaussians, out)
				}
			}

			partialChi2[w] = localChi2
			partialGrad[w] = localGrad

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for w := 0; w < nWorkers; w++ {
		acc.Chi2 += float32(partialChi2[w])

		for i := range acc.Dchi2Dp {
			acc.Dchi2Dp[i] += partialGrad[w][i]
		}
	}

	return nil
}

/*****************************************************************************************************************/
