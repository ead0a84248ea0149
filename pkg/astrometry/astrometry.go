/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package astrometry

/*****************************************************************************************************************/

// ICRSEquatorialCoordinate represents a position on the sky in the International Celestial Reference System,
// expressed as right ascension and declination, both in degrees.
type ICRSEquatorialCoordinate struct {
	RA  float64
	Dec float64
}

/*****************************************************************************************************************/
