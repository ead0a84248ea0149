/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cli

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/spf13/cobra"

	"github.com/forcepho-kernel/gogauss/internal/fixtures"
	"github.com/forcepho-kernel/gogauss/pkg/fov"
	"github.com/forcepho-kernel/gogauss/pkg/kernel"
)

/*****************************************************************************************************************/

var (
	renderScenario string
	renderOutPath  string
)

/*****************************************************************************************************************/

// RenderCommand evaluates the kernel over a named scenario and writes a grayscale PNG of the residual image
// (data minus model) for the scenario's first band/exposure, for visual sanity-checking of a fit.
var RenderCommand = &cobra.Command{
	Use:   "render [patch-file proposal-file [out.png]]",
	Short: "render the residual image of a patch/proposal file pair or a named synthetic scenario to a PNG file",
	Long: "evaluate the kernel and render Patch.Residual to a PNG file, either over the flat patch/proposal " +
		"buffers of spec §6 decoded from the given file pair (with an optional third out.png path), or, with " +
		"no arguments, over a named synthetic scenario (s1-s6)",
	Args: cobra.MaximumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		outPath := renderOutPath
		decodeArgs := args
		if len(args) == 3 {
			outPath = args[2]
			decodeArgs = args[:2]
		}

		patch, proposal, err := loadPatchAndProposal(decodeArgs, renderScenario)
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

		gridSize := int(math.Round(math.Sqrt(float64(patch.ExposureN[0]))))
		if gridSize == 0 {
			fmt.Println("scenario has no pixels to render")
			return
		}

		// GetRadialExtent sizes the field-of-view annotation circle the same way the teacher's plate-solver
		// tooling sizes its star/quad annotation circles, given a nominal one-arcsecond pixel scale: converted
		// back to pixels, it is the radius of the circle drawn over the residual image below.
		extentDegrees := fov.GetRadialExtent(float64(gridSize), float64(gridSize), fov.PixelScale{
			X: fixtures.PixelScaleDegrees,
			Y: fixtures.PixelScaleDegrees,
		})
		fovRadiusPixels := extentDegrees / fixtures.PixelScaleDegrees
		fmt.Printf("field of view: %.6f degrees radial extent\n", extentDegrees)

		minVal, maxVal := float32(math.Inf(1)), float32(math.Inf(-1))
		for _, v := range patch.Residual[:patch.ExposureN[0]] {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		if maxVal == minVal {
			maxVal = minVal + 1
		}

		dc := gg.NewContext(gridSize, gridSize)

		for p := 0; p < int(patch.ExposureN[0]); p++ {
			x := int(patch.Xpix[p])
			y := int(patch.Ypix[p])

			normalized := (patch.Residual[p] - minVal) / (maxVal - minVal)
			dc.SetRGB(float64(normalized), float64(normalized), float64(normalized))
			dc.SetPixel(x, y)
		}

		// Annotate the field-of-view radius computed above, the same DrawCircle/SetLineWidth/Stroke idiom the
		// teacher uses to annotate matched stars and quads over a rendered image.
		dc.SetRGB(1, 0, 0)
		dc.DrawCircle(float64(gridSize)/2, float64(gridSize)/2, fovRadiusPixels)
		dc.SetLineWidth(1)
		dc.Stroke()

		if err := dc.SavePNG(outPath); err != nil {
			fmt.Println("failed to save PNG:", err)
			return
		}

		fmt.Println("wrote residual image to", outPath)
	},
}

/*****************************************************************************************************************/

func init() {
	RenderCommand.Flags().StringVarP(&renderScenario, "scenario", "s", fixtures.ScenarioIsotropicGaussian, "the synthetic scenario to render (s1-s6)")
	RenderCommand.Flags().StringVarP(&renderOutPath, "out", "o", "./residual.png", "output PNG file path")
}

/*****************************************************************************************************************/
