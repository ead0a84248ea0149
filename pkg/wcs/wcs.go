/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package wcs

/*****************************************************************************************************************/

import "github.com/forcepho-kernel/gogauss/pkg/affine2"

/*****************************************************************************************************************/

// ProjectSkyToPixel maps a sky-plane offset (ra-crval[0], dec-crval[1]) into image-plane pixel coordinates,
// using the per-(exposure, source) world-coordinate Jacobian CW and the exposure's reference pixel crpix.
// This mirrors the teacher's CRPIX/CRVAL/CD affine algebra, inverted: instead of a single per-image CD matrix
// taking pixel offsets to a sky position, CW here takes a sky offset to a pixel offset (spec §4.2 step 5).
func ProjectSkyToPixel(cw affine2.Matrix2x2, raOffset, decOffset, crpixX, crpixY float64) (x, y float64) {
	x = crpixX + cw.V11*raOffset + cw.V12*decOffset
	y = crpixY + cw.V21*raOffset + cw.V22*decOffset

	return x, y
}

/*****************************************************************************************************************/
