package market

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/market-actors/actors/builtin/verifreg"
	"github.com/filecoin-project/market-actors/actors/util/adt"
)

// ErrDealExpired distinguishes a deal whose on-chain data has already been
// cleaned up from one that never existed.
const ErrDealExpired = exitcode.ExitCode(32)

type WithdrawBalanceParams struct {
	ProviderOrClientAddress addr.Address
	Amount                  abi.TokenAmount
}

type WithdrawBalanceReturn struct {
	AmountWithdrawn abi.TokenAmount
}

type GetBalanceReturn struct {
	Balance abi.TokenAmount
	Locked  abi.TokenAmount
}

type PublishStorageDealsParams struct {
	Deals []ClientDealProposal
}

type PublishStorageDealsReturn struct {
	IDs        []abi.DealID
	ValidDeals bitfield.BitField
}

// MarketNotifyDealParams is sent to a deal's client after its deal has been
// published: the serialized proposal and the ID it was assigned.
type MarketNotifyDealParams struct {
	Proposal []byte
	DealID   abi.DealID
}

type VerifyDealsForActivationParams struct {
	Sectors []SectorDeals
}

type SectorDeals struct {
	SectorType   abi.RegisteredSealProof
	SectorExpiry abi.ChainEpoch
	DealIDs      []abi.DealID
}

type VerifyDealsForActivationReturn struct {
	Sectors []SectorDealData
}

// SectorDealData carries the unsealed data commitment for a sector's deals,
// nil when the sector has no deals.
type SectorDealData struct {
	CommD *cid.Cid
}

type ActivateDealsParams struct {
	DealIDs      []abi.DealID
	SectorExpiry abi.ChainEpoch
}

type ActivateDealsResult struct {
	NonVerifiedDealSpace big.Int
	VerifiedInfos        []VerifiedDealInfo
}

type VerifiedDealInfo struct {
	Client       abi.ActorID
	AllocationID verifreg.AllocationID
	Data         cid.Cid
	Size         abi.PaddedPieceSize
}

type OnMinerSectorsTerminateParams struct {
	Epoch   abi.ChainEpoch
	DealIDs []abi.DealID
}

type ComputeDataCommitmentParams struct {
	Inputs []*SectorDataSpec
}

type SectorDataSpec struct {
	DealIDs    []abi.DealID
	SectorType abi.RegisteredSealProof
}

type ComputeDataCommitmentReturn struct {
	CommDs []cbg.CborCid
}

// DealQueryParams identifies a deal for the read-only getters. Serializes
// transparently as the bare deal ID.
type DealQueryParams struct {
	ID abi.DealID
}

type GetDealDataCommitmentReturn struct {
	Data cid.Cid
	Size abi.PaddedPieceSize
}

// GetDealTermReturn reports a deal's start epoch and duration.
type GetDealTermReturn struct {
	Start    abi.ChainEpoch
	Duration abi.ChainEpoch
}

// GetDealActivationReturn reports a deal's activation and termination
// epochs, -1 where the event has not happened.
type GetDealActivationReturn struct {
	Activated  abi.ChainEpoch
	Terminated abi.ChainEpoch
}

// The remaining getter returns serialize transparently as their single
// field.
type GetDealClientReturn struct {
	Client abi.ActorID
}

type GetDealProviderReturn struct {
	Provider abi.ActorID
}

type GetDealLabelReturn struct {
	Label DealLabel
}

type GetDealTotalPriceReturn struct {
	TotalPrice abi.TokenAmount
}

type GetDealClientCollateralReturn struct {
	Collateral abi.TokenAmount
}

type GetDealProviderCollateralReturn struct {
	Collateral abi.TokenAmount
}

type GetDealVerifiedReturn struct {
	Verified bool
}

// ProposalsAmtBitwidth and StatesAmtBitwidth match the on-chain layout.
const (
	ProposalsAmtBitwidth = 5
	StatesAmtBitwidth    = 6
)

// DealArray is an AMT of DealProposal indexed by deal ID.
type DealArray struct {
	*adt.Array
}

func AsDealProposalArray(s adt.Store, r cid.Cid) (*DealArray, error) {
	a, err := adt.AsArray(s, r, ProposalsAmtBitwidth)
	if err != nil {
		return nil, err
	}
	return &DealArray{a}, nil
}

func (t *DealArray) Get(id abi.DealID) (*DealProposal, bool, error) {
	var value DealProposal
	found, err := t.Array.Get(uint64(id), &value)
	return &value, found, err
}

func (t *DealArray) Set(k abi.DealID, value *DealProposal) error {
	return t.Array.Set(uint64(k), value)
}

func (t *DealArray) Delete(id abi.DealID) error {
	return t.Array.Delete(uint64(id))
}

// DealMetaArray is an AMT of DealState indexed by deal ID.
type DealMetaArray struct {
	*adt.Array
}

func AsDealStateArray(s adt.Store, r cid.Cid) (*DealMetaArray, error) {
	dsa, err := adt.AsArray(s, r, StatesAmtBitwidth)
	if err != nil {
		return nil, err
	}
	return &DealMetaArray{dsa}, nil
}

func (t *DealMetaArray) Get(id abi.DealID) (*DealState, bool, error) {
	var value DealState
	found, err := t.Array.Get(uint64(id), &value)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return &DealState{
			SectorStartEpoch: EpochUndefined,
			LastUpdatedEpoch: EpochUndefined,
			SlashEpoch:       EpochUndefined,
		}, false, nil
	}
	return &value, true, nil
}

func (t *DealMetaArray) Set(k abi.DealID, value *DealState) error {
	return t.Array.Set(uint64(k), value)
}

func (t *DealMetaArray) Delete(id abi.DealID) error {
	return t.Array.Delete(uint64(id))
}
