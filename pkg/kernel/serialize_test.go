/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package kernel

/*****************************************************************************************************************/

import (
	"reflect"
	"testing"
)

/*****************************************************************************************************************/

// TestPatchRoundTrip covers the §8 round-trip property for Patch: encode then decode is the identity.
func TestPatchRoundTrip(t *testing.T) {
	patch := buildPatch(2, 7)
	proposal := []Source{testSource(0, 0, 4), testSource(1, -1, 2)}
	selfConsistentData(t, patch, proposal)

	encoded, err := EncodePatch(patch)
	if err != nil {
		t.Fatalf("EncodePatch() error: %v", err)
	}

	decoded, err := DecodePatch(encoded)
	if err != nil {
		t.Fatalf("DecodePatch() error: %v", err)
	}

	if !reflect.DeepEqual(patch, decoded) {
		t.Errorf("round-tripped patch does not match original\ngot:  %+v\nwant: %+v", decoded, patch)
	}
}

/*****************************************************************************************************************/

// TestProposalRoundTrip covers the §8 round-trip property for Proposal.
func TestProposalRoundTrip(t *testing.T) {
	proposal := []Source{testSource(0, 0, 4), testSource(1, -1, 2), testSource(-2, 3, 0)}

	encoded, err := EncodeProposal(proposal)
	if err != nil {
		t.Fatalf("EncodeProposal() error: %v", err)
	}

	decoded, err := DecodeProposal(encoded)
	if err != nil {
		t.Fatalf("DecodeProposal() error: %v", err)
	}

	if !reflect.DeepEqual(proposal, decoded) {
		t.Errorf("round-tripped proposal does not match original\ngot:  %+v\nwant: %+v", decoded, proposal)
	}
}

/*****************************************************************************************************************/

// TestResponseRoundTrip covers the §8 round-trip property for Response.
func TestResponseRoundTrip(t *testing.T) {
	patch := buildPatch(1, 9)
	proposal := []Source{testSource(0.2, -0.1, 5)}

	resp := chi2AndGradient(t, patch, proposal)

	encoded, err := EncodeResponse(resp)
	if err != nil {
		t.Fatalf("EncodeResponse() error: %v", err)
	}

	decoded, err := DecodeResponse(encoded)
	if err != nil {
		t.Fatalf("DecodeResponse() error: %v", err)
	}

	if !reflect.DeepEqual(resp, decoded) {
		t.Errorf("round-tripped response does not match original\ngot:  %+v\nwant: %+v", decoded, resp)
	}
}

/*****************************************************************************************************************/
