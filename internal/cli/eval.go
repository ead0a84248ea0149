/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cli

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/observerly/sidera/pkg/humanize"
	"github.com/spf13/cobra"

	"github.com/forcepho-kernel/gogauss/internal/fixtures"
	"github.com/forcepho-kernel/gogauss/pkg/kernel"
)

/*****************************************************************************************************************/

var evalScenario string

/*****************************************************************************************************************/

// EvalCommand runs a single kernel evaluation over a named synthetic scenario and prints the per-band chi2 and
// gradient, the same response the sampler consumes.
var EvalCommand = &cobra.Command{
	Use:   "eval [patch-file proposal-file]",
	Short: "evaluate the forward-model kernel over a patch/proposal file pair or a named synthetic scenario",
	Long: "evaluate the forward-model kernel and print its chi2/gradient response, either over the flat patch/" +
		"proposal buffers of spec §6 decoded from the given file pair, or, with no arguments, over a named " +
		"synthetic scenario (s1-s6)",
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		patch, proposal, err := loadPatchAndProposal(args, evalScenario)
		if err != nil {
			fmt.Println("failed to load patch/proposal:", err)
			cmd.Usage()
			return
		}

		responses := make([]kernel.Response, patch.NBands)
		if err := kernel.EvaluateProposal(patch, proposal, responses); err != nil {
			fmt.Println("kernel evaluation failed:", err)
			return
		}

		for i, src := range proposal {
			fmt.Printf(
				"source %d: ra=%s dec=%s flux=%.4f\n",
				i,
				humanize.FormatDecimalToDMS(float64(src.RA), "%s%d %d %.2f"),
				humanize.FormatDecimalToDMS(float64(src.Dec), "%s%d %d %.2f"),
				src.Fluxes[0],
			)
		}

		for band, resp := range responses {
			fmt.Printf("band %d: chi2 = %.6f\n", band, resp.Chi2)

			for i := 0; i < len(proposal); i++ {
				grad := resp.DChi2DParam[i*kernel.NParams : (i+1)*kernel.NParams]
				fmt.Printf(
					"  source %d gradient: flux=%.6g ra=%.6g dec=%.6g q=%.6g pa=%.6g n=%.6g rh=%.6g\n",
					i, grad[kernel.ParamFlux], grad[kernel.ParamRA], grad[kernel.ParamDec],
					grad[kernel.ParamQ], grad[kernel.ParamPA], grad[kernel.ParamSersic], grad[kernel.ParamRh],
				)
			}
		}
	},
}

/*****************************************************************************************************************/

func init() {
	EvalCommand.Flags().StringVarP(
		&evalScenario,
		"scenario",
		"s",
		fixtures.ScenarioIsotropicGaussian,
		"the synthetic scenario to evaluate (s1-s6)",
	)
}

/*****************************************************************************************************************/
