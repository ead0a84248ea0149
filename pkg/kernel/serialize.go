/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package kernel

/*****************************************************************************************************************/

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

/*****************************************************************************************************************/

var byteOrder = binary.LittleEndian

/*****************************************************************************************************************/

// EncodePatch serializes a Patch to the flat buffer layout of spec §6: a small fixed header (n_bands, n_sources,
// n_radii, plus the exposure/pixel/psf-gaussian counts needed to size what follows), then the per-band index
// arrays, the per-exposure index arrays, the flat pixel arrays, the PSF-Gaussian array, the per-(exposure,
// source) Jacobian arrays, and rad2.
func EncodePatch(patch *Patch) ([]byte, error) {
	nExposures := int32(patch.NExposures())
	nPixels := int32(len(patch.Xpix))
	nPSFGauss := int32(len(patch.PSFGauss))

	buf := new(bytes.Buffer)

	header := []int32{patch.NBands, patch.NSources, patch.NRadii, nExposures, nPixels, nPSFGauss}

	fields := []any{
		header,
		patch.BandStart, patch.BandN, patch.NPSFPerSource,
		patch.ExposureStart, patch.ExposureN, patch.PSFGaussStart, patch.G,
		patch.Crpix, patch.Crval,
		patch.Xpix, patch.Ypix, patch.Data, patch.Ierr, patch.Residual,
		patch.PSFGauss,
		patch.D, patch.CW,
		patch.Rad2,
	}

	for _, f := range fields {
		if err := binary.Write(buf, byteOrder, f); err != nil {
			return nil, fmt.Errorf("kernel: encode patch: %w", err)
		}
	}

	return buf.Bytes(), nil
}

/*****************************************************************************************************************/

// DecodePatch deserializes a Patch from the layout written by EncodePatch.
func DecodePatch(data []byte) (*Patch, error) {
	r := bytes.NewReader(data)

	var header [6]int32
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return nil, fmt.Errorf("kernel: decode patch header: %w", err)
	}

	nBands, nSources, nRadii := header[0], header[1], header[2]
	nExposures, nPixels, nPSFGauss := int(header[3]), int(header[4]), int(header[5])

	patch := &Patch{NBands: nBands, NSources: nSources, NRadii: nRadii}

	int32Slices := []*[]int32{
		&patch.BandStart, &patch.BandN, &patch.NPSFPerSource,
	}
	for _, s := range int32Slices {
		*s = make([]int32, nBands)
	}

	exposureInt32Slices := []*[]int32{
		&patch.ExposureStart, &patch.ExposureN, &patch.PSFGaussStart,
	}
	for _, s := range exposureInt32Slices {
		*s = make([]int32, nExposures)
	}

	patch.G = make([]float32, nExposures)
	patch.Crpix = make([]float32, 2*nExposures)
	patch.Crval = make([]float32, 2*nExposures)
	patch.D = make([]float32, 4*nExposures*int(nSources))
	patch.CW = make([]float32, 4*nExposures*int(nSources))
	patch.Xpix = make([]float32, nPixels)
	patch.Ypix = make([]float32, nPixels)
	patch.Data = make([]float32, nPixels)
	patch.Ierr = make([]float32, nPixels)
	patch.Residual = make([]float32, nPixels)
	patch.Rad2 = make([]float32, nRadii)
	patch.PSFGauss = make([]PSFSourceGaussian, nPSFGauss)

	fields := []any{
		patch.BandStart, patch.BandN, patch.NPSFPerSource,
		patch.ExposureStart, patch.ExposureN, patch.PSFGaussStart, patch.G,
		patch.Crpix, patch.Crval,
		patch.Xpix, patch.Ypix, patch.Data, patch.Ierr, patch.Residual,
		patch.PSFGauss,
		patch.D, patch.CW,
		patch.Rad2,
	}

	for _, f := range fields {
		if err := binary.Read(r, byteOrder, f); err != nil {
			return nil, fmt.Errorf("kernel: decode patch body: %w", err)
		}
	}

	return patch, nil
}

/*****************************************************************************************************************/

// EncodeProposal serializes a Proposal (a Source slice) per spec §6: an int32 count followed by n_active
// fixed-layout Source records.
func EncodeProposal(sources []Source) ([]byte, error) {
	buf := new(bytes.Buffer)

	if err := binary.Write(buf, byteOrder, int32(len(sources))); err != nil {
		return nil, fmt.Errorf("kernel: encode proposal count: %w", err)
	}

	if err := binary.Write(buf, byteOrder, sources); err != nil {
		return nil, fmt.Errorf("kernel: encode proposal: %w", err)
	}

	return buf.Bytes(), nil
}

/*****************************************************************************************************************/

// DecodeProposal deserializes a Proposal from the layout written by EncodeProposal.
func DecodeProposal(data []byte) ([]Source, error) {
	r := bytes.NewReader(data)

	var count int32
	if err := binary.Read(r, byteOrder, &count); err != nil {
		return nil, fmt.Errorf("kernel: decode proposal count: %w", err)
	}

	sources := make([]Source, count)
	if err := binary.Read(r, byteOrder, sources); err != nil {
		return nil, fmt.Errorf("kernel: decode proposal: %w", err)
	}

	return sources, nil
}

/*****************************************************************************************************************/

// EncodeResponse serializes a single band's Response per spec §6: chi2 followed by n_active*NPARAMS gradient
// floats in [galaxy][param] row order.
func EncodeResponse(resp Response) ([]byte, error) {
	buf := new(bytes.Buffer)

	if err := binary.Write(buf, byteOrder, resp.Chi2); err != nil {
		return nil, fmt.Errorf("kernel: encode response chi2: %w", err)
	}

	if err := binary.Write(buf, byteOrder, resp.DChi2DParam); err != nil {
		return nil, fmt.Errorf("kernel: encode response gradient: %w", err)
	}

	return buf.Bytes(), nil
}

/*****************************************************************************************************************/

// DecodeResponse deserializes a Response from the layout written by EncodeResponse.
func DecodeResponse(data []byte) (Response, error) {
	r := bytes.NewReader(data)

	var resp Response

	if err := binary.Read(r, byteOrder, &resp.Chi2); err != nil {
		return Response{}, fmt.Errorf("kernel: decode response chi2: %w", err)
	}

	// The gradient fills the rest of the buffer, one 4-byte float per entry.
	resp.DChi2DParam = make([]float32, r.Len()/4)
	if err := binary.Read(r, byteOrder, resp.DChi2DParam); err != nil {
		return Response{}, fmt.Errorf("kernel: decode response gradient: %w", err)
	}

	return resp, nil
}

/*****************************************************************************************************************/
