/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package kernel implements the per-patch likelihood-and-gradient evaluator: Gaussian-mixture preparation
// (CreateImageGaussians), per-pixel residual and derivative evaluation (ComputeResidualImage,
// ComputeGaussianDerivative), and the accumulator/driver (EvaluateProposal) that ties them together per band.
// The kernel is a pure, stateless function of its inputs (Patch, Proposal) — it has no error-return channel of
// its own beyond boundary validation at EvaluateProposal's entry point.
package kernel

/*****************************************************************************************************************/

// Compile-time caps. NParams is entangled with the 21-float ImageGaussian layout and ComputeGaussianDerivative;
// changing it requires synchronized edits to both.
const (
	MaxBands   = 30
	MaxSources = 30
	NParams    = 7
	MaxRadii   = 10
	NumAccums  = 1

	// MaxExpArg bounds the Gaussian exponent argument; components beyond it are skipped rather than evaluated,
	// an infinity guard and a speed optimization whose numerical consequence is within modeling tolerance
	// (exp(-18) ~= 1.5e-8).
	MaxExpArg = 36.0

	// WarpWidth is the CUDA source's lockstep lane width. It has no hardware meaning on a CPU rewrite; it is
	// kept as a named constant because it sets the number of pixel-striping workers in evaluateExposure, whose
	// partial sums are combined in worker-index order, and that fixed count and order are what make results
	// bit-for-bit reproducible (spec §4.6, §5 ordering guarantees).
	WarpWidth = 32
)

/*****************************************************************************************************************/

// Parameter indices into a per-source NParams-length gradient slice, in the row order spec §6 mandates.
const (
	ParamFlux = iota
	ParamRA
	ParamDec
	ParamQ
	ParamPA
	ParamSersic
	ParamRh
)

/*****************************************************************************************************************/
