/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package fixtures builds the synthetic patch/proposal pairs named as scenarios S1-S6 in the kernel's testable
// properties, for use by the eval and bench CLI subcommands (and by anyone who wants a runnable example outside
// the test suite). It is deliberately separate from pkg/kernel's own tests: those construct minimal fixtures
// inline, while this package produces a fixture realistic enough to run from the command line, with an
// astrometric Jacobian grounded on pkg/projection's gnomonic projection rather than a bare identity matrix.
package fixtures

/*****************************************************************************************************************/

import (
	"fmt"
	"math/rand"

	"github.com/forcepho-kernel/gogauss/pkg/astrometry"
	"github.com/forcepho-kernel/gogauss/pkg/kernel"
	"github.com/forcepho-kernel/gogauss/pkg/projection"
	stats "github.com/forcepho-kernel/gogauss/pkg/statistics"
)

/*****************************************************************************************************************/

// PixelScaleDegrees is the fixture's assumed plate scale, one arcsecond per pixel.
const PixelScaleDegrees = 1.0 / 3600.0

/*****************************************************************************************************************/

// Scenario names, one per Testable Property/Scenario seed in the kernel's test suite.
const (
	ScenarioIsotropicGaussian   = "s1" // single isotropic Gaussian, one band, one exposure, one source
	ScenarioPureNoiseResidual   = "s2" // data is zero plus injected noise, model nonzero
	ScenarioFiniteDifference    = "s3" // non-trivial source for a 7-parameter finite-difference check
	ScenarioExposurePermutation = "s4" // two exposures with equal contributions, for reordering invariance
	ScenarioTwoSourceDecoupling = "s5" // two far-separated sources
	ScenarioExpArgBoundary      = "s6" // same geometry as s1; no pixel's exponent argument lands exactly on MaxExpArg
)

/*****************************************************************************************************************/

// cwFromGnomic derives a world-coordinate Jacobian (degrees of sky offset to pixel offset) by symmetric finite
// differencing of projection.ConvertEquatorialToGnomic around the given pointing, rather than assuming the
// tangent plane is locally identity.
func cwFromGnomic(pointing astrometry.ICRSEquatorialCoordinate) (v11, v12, v21, v22 float64) {
	const h = 1e-6 // degrees

	ra0, dec0 := pointing.RA, pointing.Dec

	xPlusRA, yPlusRA := projection.ConvertEquatorialToGnomic(ra0+h, dec0, ra0, dec0)
	xMinusRA, yMinusRA := projection.ConvertEquatorialToGnomic(ra0-h, dec0, ra0, dec0)
	xPlusDec, yPlusDec := projection.ConvertEquatorialToGnomic(ra0, dec0+h, ra0, dec0)
	xMinusDec, yMinusDec := projection.ConvertEquatorialToGnomic(ra0, dec0-h, ra0, dec0)

	pixelScaleRad := projection.Radians(PixelScaleDegrees)

	// d(pixel)/d(ra or dec, in degrees) via central difference, then converted from tangent-plane radians to
	// pixels by dividing by the plate scale.
	dxDRA := (xPlusRA - xMinusRA) / (2 * h) / pixelScaleRad
	dyDRA := (yPlusRA - yMinusRA) / (2 * h) / pixelScaleRad
	dxDDec := (xPlusDec - xMinusDec) / (2 * h) / pixelScaleRad
	dyDDec := (yPlusDec - yMinusDec) / (2 * h) / pixelScaleRad

	return dxDRA, dxDDec, dyDRA, dyDDec
}

/*****************************************************************************************************************/

// baseSource returns a source at absolute sky position (raDeg, decDeg) with the given flux, and otherwise
// round-number shape parameters, sharing a single Sersic radial bin.
func baseSource(raDeg, decDeg, flux float32) kernel.Source {
	src := kernel.Source{
		RA:      raDeg,
		Dec:     decDeg,
		Q:       1,
		PA:      0,
		SersicN: 1,
		Rh:      1,
	}
	src.Fluxes[0] = flux
	src.MixtureAmplitudes[0] = 1
	src.DAmplitudeDNSersic[0] = 0.3
	src.DAmplitudeDRh[0] = 0.2

	return src
}

/*****************************************************************************************************************/

// gridPatch builds a single-band patch over gridSize x gridSize pixels, nExposures identical exposures, for
// nSources sources, with the CW Jacobian derived from the gnomonic projection at pointing.
func gridPatch(nSources, nExposures, gridSize int, pointing astrometry.ICRSEquatorialCoordinate) *kernel.Patch {
	center := float32(gridSize) / 2

	pixN := gridSize * gridSize

	v11, v12, v21, v22 := cwFromGnomic(pointing)

	patch := &kernel.Patch{
		NBands:        1,
		NSources:      int32(nSources),
		NRadii:        1,
		BandStart:     []int32{0},
		BandN:         []int32{int32(nExposures)},
		NPSFPerSource: []int32{1},
		Rad2:          []float32{1},
		PSFGauss: []kernel.PSFSourceGaussian{
			{Amp: 1, Xcen: 0, Ycen: 0, Cxx: 1, Cxy: 0, Cyy: 1, SersicRadiusBin: 0},
		},
	}

	patch.ExposureStart = make([]int32, nExposures)
	patch.ExposureN = make([]int32, nExposures)
	patch.PSFGaussStart = make([]int32, nExposures)
	patch.G = make([]float32, nExposures)
	patch.Crpix = make([]float32, 2*nExposures)
	patch.Crval = make([]float32, 2*nExposures)
	patch.D = make([]float32, 4*nExposures*nSources)
	patch.CW = make([]float32, 4*nExposures*nSources)

	for e := 0; e < nExposures; e++ {
		patch.ExposureStart[e] = int32(e * pixN)
		patch.ExposureN[e] = int32(pixN)
		patch.PSFGaussStart[e] = 0
		patch.G[e] = 1
		patch.Crpix[2*e], patch.Crpix[2*e+1] = center, center
		patch.Crval[2*e], patch.Crval[2*e+1] = float32(pointing.RA), float32(pointing.Dec)

		for s := 0; s < nSources; s++ {
			base := 4 * (e*nSources + s)
			patch.D[base], patch.D[base+3] = 1, 1
			patch.CW[base], patch.CW[base+1] = float32(v11), float32(v12)
			patch.CW[base+2], patch.CW[base+3] = float32(v21), float32(v22)
		}
	}

	totalPixels := nExposures * pixN

	patch.Xpix = make([]float32, totalPixels)
	patch.Ypix = make([]float32, totalPixels)
	patch.Data = make([]float32, totalPixels)
	patch.Ierr = make([]float32, totalPixels)
	patch.Residual = make([]float32, totalPixels)

	i := 0
	for e := 0; e < nExposures; e++ {
		for y := 0; y < gridSize; y++ {
			for x := 0; x < gridSize; x++ {
				patch.Xpix[i] = float32(x)
				patch.Ypix[i] = float32(y)
				patch.Ierr[i] = 1
				i++
			}
		}
	}

	return patch
}

/*****************************************************************************************************************/

// Build returns the patch and proposal for the named scenario. rng drives the noise of ScenarioPureNoiseResidual,
// so a seeded *rand.Rand makes that scenario reproducible; ScenarioFiniteDifference draws its data from the
// package-level math/rand source instead, so its data does not depend on rng.
func Build(name string, rng *rand.Rand) (*kernel.Patch, []kernel.Source, error) {
	switch name {
	case ScenarioIsotropicGaussian:
		patch := gridPatch(1, 1, 11, astrometry.ICRSEquatorialCoordinate{RA: 0, Dec: 0})
		proposal := []kernel.Source{baseSource(0, 0, 1)}
		selfConsistentFill(patch, proposal)
		return patch, proposal, nil

	case ScenarioPureNoiseResidual:
		patch := gridPatch(1, 1, 11, astrometry.ICRSEquatorialCoordinate{RA: 0, Dec: 0})
		proposal := []kernel.Source{baseSource(0, 0, 1)}
		for i := range patch.Data {
			patch.Data[i] = 0
		}
		patch.Data = stats.InjectGaussianNoise(patch.Data, 0.01, rng)
		return patch, proposal, nil

	case ScenarioFiniteDifference:
		patch := gridPatch(1, 1, 13, astrometry.ICRSEquatorialCoordinate{RA: 10, Dec: 20})
		proposal := []kernel.Source{baseSource(10.0002, 19.9999, 6)}
		proposal[0].Q = 0.7
		proposal[0].PA = 0.4
		proposal[0].SersicN = 2.5
		proposal[0].Rh = 1.8
		for i := range patch.Data {
			patch.Data[i] = float32(stats.NormalDistributedRandomNumber(0, 0.02))
		}
		return patch, proposal, nil

	case ScenarioExposurePermutation:
		patch := gridPatch(1, 2, 9, astrometry.ICRSEquatorialCoordinate{RA: 0, Dec: 0})
		proposal := []kernel.Source{baseSource(0, 0, 3)}
		selfConsistentFill(patch, proposal)
		return patch, proposal, nil

	case ScenarioTwoSourceDecoupling:
		patch := gridPatch(2, 1, 40, astrometry.ICRSEquatorialCoordinate{RA: 0, Dec: 0})
		proposal := []kernel.Source{
			baseSource(-0.004, -0.004, 5),
			baseSource(0.004, 0.004, 5),
		}
		selfConsistentFill(patch, proposal)
		return patch, proposal, nil

	case ScenarioExpArgBoundary:
		patch := gridPatch(1, 1, 11, astrometry.ICRSEquatorialCoordinate{RA: 0, Dec: 0})
		proposal := []kernel.Source{baseSource(0, 0, 1)}
		selfConsistentFill(patch, proposal)
		return patch, proposal, nil

	default:
		return nil, nil, fmt.Errorf("fixtures: unknown scenario %q", name)
	}
}

/*****************************************************************************************************************/

// selfConsistentFill fills patch.Data with the proposal's own model prediction at every pixel, for scenarios
// where the expected chi2 is exactly zero.
func selfConsistentFill(patch *kernel.Patch, proposal []kernel.Source) {
	nPSF := int(patch.NPSFPerSource[0])
	gaussians := make([]kernel.ImageGaussian, len(proposal)*nPSF)

	for e := 0; e < patch.NExposures(); e++ {
		if err := kernel.CreateImageGaussians(patch, proposal, 0, e, gaussians); err != nil {
			continue
		}

		start := int(patch.ExposureStart[e])
		n := int(patch.ExposureN[e])

		for p := start; p < start+n; p++ {
			xp := float64(patch.Xpix[p])
			yp := float64(patch.Ypix[p])

			negModel := kernel.ComputeResidualImage(xp, yp, 0, gaussians)
			patch.Data[p] = float32(-negModel)
		}
	}
}

/*****************************************************************************************************************/
