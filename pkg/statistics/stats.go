/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package stats

/*****************************************************************************************************************/

import (
	"math"
	"math/rand"
)

/*****************************************************************************************************************/

// NormalDistributedRandomNumber generates a normally distributed random number.
// mean: the mean of the distribution.
// stdDev: the standard deviation of the distribution.
func NormalDistributedRandomNumber(mean, stdDev float64) float64 {
	return rand.NormFloat64()*stdDev + mean
}

/*****************************************************************************************************************/

// InjectGaussianNoise adds independent, normally distributed noise (mean 0, standard deviation sigma) to every
// entry of data, returning a new slice. Used by internal/fixtures to build the S2 pure-noise-residual scenario
// and other synthetic test patches.
func InjectGaussianNoise(data []float32, sigma float64, rng *rand.Rand) []float32 {
	out := make([]float32, len(data))

	for i, v := range data {
		noise := rng.NormFloat64() * sigma
		out[i] = v + float32(noise)
	}

	return out
}

/*****************************************************************************************************************/

// ReducedChiSquare returns chi2 normalized by the degrees of freedom (pixel count minus free parameters), the
// standard diagnostic for judging goodness-of-fit independent of sample size. Used by the bench CLI subcommand
// to summarize a kernel run; dof <= 0 returns +Inf rather than dividing by zero or a negative count.
func ReducedChiSquare(chi2 float64, pixelCount, freeParameterCount int) float64 {
	dof := pixelCount - freeParameterCount

	if dof <= 0 {
		return math.Inf(1)
	}

	return chi2 / float64(dof)
}

/*****************************************************************************************************************/
