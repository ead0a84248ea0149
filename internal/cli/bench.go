/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cli

/*****************************************************************************************************************/

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	gonumstat "gonum.org/v1/gonum/stat"

	"github.com/forcepho-kernel/gogauss/internal/fixtures"
	"github.com/forcepho-kernel/gogauss/internal/history"
	"github.com/forcepho-kernel/gogauss/pkg/kernel"
	stats "github.com/forcepho-kernel/gogauss/pkg/statistics"
)

/*****************************************************************************************************************/

var (
	benchScenario string
	benchRuns     int
	benchDBPath   string
)

/*****************************************************************************************************************/

// BenchCommand repeatedly evaluates the kernel over a named scenario, timing each run and recording it to a
// local SQLite run ledger (internal/history), then prints the mean duration and reduced chi-square.
var BenchCommand = &cobra.Command{
	Use:   "bench [patch-file proposal-file]",
	Short: "benchmark the forward-model kernel over a patch/proposal file pair or a named synthetic scenario",
	Long: "run the kernel repeatedly, recording timing and chi2 history, either over the flat patch/proposal " +
		"buffers of spec §6 decoded from the given file pair, or, with no arguments, over a named synthetic " +
		"scenario (s1-s6)",
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		patch, proposal, err := loadPatchAndProposal(args, benchScenario)
		if err != nil {
			fmt.Println("failed to load patch/proposal:", err)
			cmd.Usage()
			return
		}

		label := benchScenario
		if len(args) == 2 {
			label = args[0]
		}

		ledger, err := history.Open(benchDBPath)
		if err != nil {
			fmt.Println("failed to open run history:", err)
			return
		}
		defer ledger.Close()

		responses := make([]kernel.Response, patch.NBands)

		durationsMs := make([]float64, 0, benchRuns)
		var lastChi2 float64

		for i := 0; i < benchRuns; i++ {
			start := time.Now()

			if err := kernel.EvaluateProposal(patch, proposal, responses); err != nil {
				fmt.Println("kernel evaluation failed:", err)
				return
			}

			elapsed := time.Since(start)
			durationsMs = append(durationsMs, float64(elapsed.Microseconds())/1000)

			var chi2 float64
			for _, resp := range responses {
				chi2 += float64(resp.Chi2)
			}
			lastChi2 = chi2

			if _, err := ledger.Record(label, len(responses), chi2, elapsed); err != nil {
				fmt.Println("failed to record run:", err)
				return
			}
		}

		pixelCount := len(patch.Xpix)
		freeParams := len(proposal) * kernel.NParams

		meanMs, stddevMs := gonumstat.MeanStdDev(durationsMs, nil)

		fmt.Printf(
			"%s: %d runs, mean %.3fms (stddev %.3fms), last chi2 = %.6f, reduced chi2 = %.6f\n",
			label,
			benchRuns,
			meanMs,
			stddevMs,
			lastChi2,
			stats.ReducedChiSquare(lastChi2, pixelCount, freeParams),
		)
	},
}

/*****************************************************************************************************************/

func init() {
	BenchCommand.Flags().StringVarP(&benchScenario, "scenario", "s", fixtures.ScenarioIsotropicGaussian, "the synthetic scenario to benchmark (s1-s6)")
	BenchCommand.Flags().IntVarP(&benchRuns, "runs", "n", 10, "number of kernel evaluations to time")
	BenchCommand.Flags().StringVar(&benchDBPath, "db", "./gogauss-bench.sqlite", "path to the run-history SQLite database")
}

/*****************************************************************************************************************/
