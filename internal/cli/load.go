/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cli

/*****************************************************************************************************************/

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/forcepho-kernel/gogauss/internal/fixtures"
	"github.com/forcepho-kernel/gogauss/pkg/kernel"
)

/*****************************************************************************************************************/

// loadPatchAndProposal resolves a Patch and Proposal for eval/bench/render: given two positional file paths, it
// reads and decodes the flat buffers of spec §6 via kernel.DecodePatch/DecodeProposal; given none, it falls back
// to building the named synthetic scenario, for quick ad-hoc runs without first encoding a fixture to disk.
func loadPatchAndProposal(args []string, scenario string) (*kernel.Patch, []kernel.Source, error) {
	if len(args) == 0 {
		return fixtures.Build(scenario, rand.New(rand.NewSource(1)))
	}

	if len(args) != 2 {
		return nil, nil, fmt.Errorf("expected a patch-file and proposal-file, got %d argument(s)", len(args))
	}

	patchBytes, err := os.ReadFile(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("reading patch file %q: %w", args[0], err)
	}

	proposalBytes, err := os.ReadFile(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("reading proposal file %q: %w", args[1], err)
	}

	patch, err := kernel.DecodePatch(patchBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding patch file %q: %w", args[0], err)
	}

	proposal, err := kernel.DecodeProposal(proposalBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding proposal file %q: %w", args[1], err)
	}

	return patch, proposal, nil
}

/*****************************************************************************************************************/
