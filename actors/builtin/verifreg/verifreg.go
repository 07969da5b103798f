// Package verifreg carries the subset of the verified registry's external
// interface the market actor depends on: allocation requests travel as the
// operator data of a datacap transfer, and allocation IDs come back in the
// transfer's recipient data.
package verifreg

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
)

type AllocationID uint64

// NoAllocationID is the zero allocation ID, marking an unverified deal.
const NoAllocationID = AllocationID(0)

type ClaimID uint64

// AllocationRequest requests a datacap allocation for a piece of data to be
// stored by a provider.
type AllocationRequest struct {
	Provider   abi.ActorID
	Data       cid.Cid
	Size       abi.PaddedPieceSize
	TermMin    abi.ChainEpoch
	TermMax    abi.ChainEpoch
	Expiration abi.ChainEpoch
}

// ClaimExtensionRequest requests an extension to the term of an existing
// claim.
type ClaimExtensionRequest struct {
	Provider abi.ActorID
	Claim    ClaimID
	TermMax  abi.ChainEpoch
}

// AllocationRequests is the operator data payload of a datacap transfer to
// the verified registry.
type AllocationRequests struct {
	Allocations []AllocationRequest
	Extensions  []ClaimExtensionRequest
}

// FailCode associates an exit code with the index of a failed batch item.
type FailCode struct {
	Idx  uint64
	Code exitcode.ExitCode
}

// BatchReturn reports the success or failure of each item in a batch.
type BatchReturn struct {
	SuccessCount uint64
	FailCodes    []FailCode
}

// AllocationsResponse is the recipient data returned by the verified
// registry for a datacap transfer carrying allocation requests.
type AllocationsResponse struct {
	AllocationResults BatchReturn
	ExtensionResults  BatchReturn
	NewAllocations    []AllocationID
}
