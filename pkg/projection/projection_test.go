/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

/*****************************************************************************************************************/

// Helper function to compare two float64 numbers within a tolerance
func floatEquals(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

/*****************************************************************************************************************/

// TestConvertEquatorialToGnomicStandardCase tests a standard projection scenario
func TestConvertEquatorialToGnomicStandardCase(t *testing.T) {
	ra := 10.0   // degrees
	dec := 20.0  // degrees
	ra0 := 10.0  // degrees
	dec0 := 20.0 // degrees

	expectedX := 0.0
	expectedY := 0.0

	x, y := ConvertEquatorialToGnomic(ra, dec, ra0, dec0)

	if !floatEquals(x, expectedX, 1e-6) || !floatEquals(y, expectedY, 1e-6) {
		t.Errorf("Standard Case Failed: Expected (%f, %f), Got (%f, %f)", expectedX, expectedY, x, y)
	}
}

/*****************************************************************************************************************/

// TestConvertEquatorialToGnomicZeroDivision tests the edge case where cosalt1 is effectively zero
func TestConvertEquatorialToGnomicZeroDivision(t *testing.T) {
	// Choose ra and dec such that cosalt1 ≈ 0, e.g. dec = 90 degrees (North Pole) and dec0 = 0 degrees:
	ra := 0.0   // degrees
	dec := 90.0 // degrees (North Pole)
	ra0 := 0.0  // degrees
	dec0 := 0.0 // degrees

	expectedX := 0.0
	expectedY := 0.0

	x, y := ConvertEquatorialToGnomic(ra, dec, ra0, dec0)

	if !floatEquals(x, expectedX, 1e-6) || !floatEquals(y, expectedY, 1e-6) {
		t.Errorf("Zero Division Case Failed: Expected (%f, %f), Got (%f, %f)", expectedX, expectedY, x, y)
	}
}

/*****************************************************************************************************************/

// TestConvertEquatorialToGnomicSameCoordinates tests when input coordinates are the same as reference
func TestConvertEquatorialToGnomicSameCoordinates(t *testing.T) {
	ra := 150.0   // degrees
	dec := -30.0  // degrees
	ra0 := 150.0  // degrees
	dec0 := -30.0 // degrees

	expectedX := 0.0
	expectedY := 0.0

	x, y := ConvertEquatorialToGnomic(ra, dec, ra0, dec0)

	if !floatEquals(x, expectedX, 1e-6) || !floatEquals(y, expectedY, 1e-6) {
		t.Errorf("Same Coordinates Case Failed: Expected (%f, %f), Got (%f, %f)", expectedX, expectedY, x, y)
	}
}

/*****************************************************************************************************************/

// TestConvertEquatorialToGnomicFiveDegreeOffset tests a point offset by 5 degrees in both RA and Dec from the
// reference point
func TestConvertEquatorialToGnomicFiveDegreeOffset(t *testing.T) {
	ra := 10.0   // degrees
	dec := 20.0  // degrees
	ra0 := 15.0  // degrees
	dec0 := 25.0 // degrees

	// Manually calculate expected x and y using the projection formula:
	raRad := ra * math.Pi / 180
	decRad := dec * math.Pi / 180
	ra0Rad := ra0 * math.Pi / 180
	dec0Rad := dec0 * math.Pi / 180

	cosalt1 := math.Sin(dec0Rad)*math.Sin(decRad) + math.Cos(dec0Rad)*math.Cos(decRad)*math.Cos(raRad-ra0Rad)
	expectedX := math.Cos(decRad) * math.Sin(raRad-ra0Rad) / cosalt1
	expectedY := (math.Cos(dec0Rad)*math.Sin(decRad) - math.Sin(dec0Rad)*math.Cos(decRad)*math.Cos(raRad-ra0Rad)) / cosalt1

	x, y := ConvertEquatorialToGnomic(ra, dec, ra0, dec0)

	if !floatEquals(x, expectedX, 1e-6) || !floatEquals(y, expectedY, 1e-6) {
		t.Errorf("Five Degree Offset Case Failed:Expected (%f, %f), Got (%f, %f)", expectedX, expectedY, x, y)
	}
}

/*****************************************************************************************************************/
