package market

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/market-actors/actors/builtin"
	"github.com/filecoin-project/market-actors/actors/builtin/verifreg"
	"github.com/filecoin-project/market-actors/actors/util/adt"
)

type DealSummary struct {
	Provider         addr.Address
	StartEpoch       abi.ChainEpoch
	EndEpoch         abi.ChainEpoch
	SectorStartEpoch abi.ChainEpoch
	LastUpdatedEpoch abi.ChainEpoch
	SlashEpoch       abi.ChainEpoch
}

type StateSummary struct {
	Deals                map[abi.DealID]*DealSummary
	PendingProposalCount uint64
	DealStateCount       uint64
	LockTableCount       uint64
	DealOpEpochCount     uint64
	DealOpCount          uint64
	ClaimIdToDealId      map[verifreg.AllocationID]abi.DealID
}

// CheckStateInvariants checks the market state is internally consistent,
// accumulating messages for any violation found.
func CheckStateInvariants(st *State, store adt.Store, balance abi.TokenAmount, currEpoch abi.ChainEpoch) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}

	acc.Require(
		st.TotalClientLockedCollateral.GreaterThanEqual(big.Zero()),
		"negative total client locked collateral: %v", st.TotalClientLockedCollateral)
	acc.Require(
		st.TotalProviderLockedCollateral.GreaterThanEqual(big.Zero()),
		"negative total provider locked collateral: %v", st.TotalProviderLockedCollateral)
	acc.Require(
		st.TotalClientStorageFee.GreaterThanEqual(big.Zero()),
		"negative total client storage fee: %v", st.TotalClientStorageFee)

	// Proposals
	proposalCids := make(map[cid.Cid]struct{})
	maxDealID := int64(-1)
	proposalStats := make(map[abi.DealID]*DealSummary)
	expectedDealOps := make(map[abi.DealID]struct{})
	totalProposalCollateral := abi.NewTokenAmount(0)

	if proposals, err := AsDealProposalArray(store, st.Proposals); err != nil {
		acc.Addf("error loading proposals: %v", err)
	} else {
		var proposal DealProposal
		err = proposals.ForEach(&proposal, func(dealID int64) error {
			pcid, err := proposal.Cid()
			if err != nil {
				return err
			}

			if proposal.StartEpoch >= currEpoch {
				expectedDealOps[abi.DealID(dealID)] = struct{}{}
			}

			// The same proposal can't appear twice.
			_, found := proposalCids[pcid]
			acc.Require(!found, "duplicate proposal found for deal id %d", dealID)

			proposalCids[pcid] = struct{}{}
			if dealID > maxDealID {
				maxDealID = dealID
			}
			proposalStats[abi.DealID(dealID)] = &DealSummary{
				Provider:         proposal.Provider,
				StartEpoch:       proposal.StartEpoch,
				EndEpoch:         proposal.EndEpoch,
				SectorStartEpoch: EpochUndefined,
				LastUpdatedEpoch: EpochUndefined,
				SlashEpoch:       EpochUndefined,
			}

			totalProposalCollateral = big.Sum(totalProposalCollateral, proposal.ClientCollateral, proposal.ProviderCollateral)

			acc.Require(proposal.Client.Protocol() == addr.ID, "client address for deal %d is not an ID address", dealID)
			acc.Require(proposal.Provider.Protocol() == addr.ID, "provider address for deal %d is not an ID address", dealID)

			return nil
		})
		acc.RequireNoError(err, "error iterating proposals")
	}

	// next id is higher than any existing deal
	acc.Require(int64(st.NextID) > maxDealID, "next id, %d, is not greater than highest id in proposals, %d", st.NextID, maxDealID)

	// Deal states
	dealStateCount := uint64(0)
	claimIdToDealId := make(map[verifreg.AllocationID]abi.DealID)
	if dealStates, err := AsDealStateArray(store, st.States); err != nil {
		acc.Addf("error loading deal states: %v", err)
	} else {
		var dealState DealState
		err = dealStates.Array.ForEach(&dealState, func(dealID int64) error {
			acc.Require(dealState.SectorStartEpoch >= 0, "deal %d state start epoch undefined: %v", dealID, dealState)

			delete(expectedDealOps, abi.DealID(dealID))

			stats, found := proposalStats[abi.DealID(dealID)]
			if !found {
				acc.Addf("deal proposal %d for deal state not found", dealID)
			} else {
				stats.SectorStartEpoch = dealState.SectorStartEpoch
				stats.LastUpdatedEpoch = dealState.LastUpdatedEpoch
				stats.SlashEpoch = dealState.SlashEpoch

				acc.Require(dealState.SectorStartEpoch >= stats.StartEpoch,
					"deal %d activated at %d before start epoch %d", dealID, dealState.SectorStartEpoch, stats.StartEpoch)
				acc.Require(dealState.LastUpdatedEpoch == EpochUndefined || dealState.LastUpdatedEpoch >= dealState.SectorStartEpoch,
					"deal %d updated at %d before activation %d", dealID, dealState.LastUpdatedEpoch, dealState.SectorStartEpoch)
			}
			acc.Require(dealState.LastUpdatedEpoch == EpochUndefined || dealState.LastUpdatedEpoch <= currEpoch,
				"deal %d last updated epoch %d after current %d", dealID, dealState.LastUpdatedEpoch, currEpoch)
			acc.Require(dealState.SlashEpoch == EpochUndefined || dealState.SlashEpoch <= currEpoch,
				"deal %d slashed at %d after current %d", dealID, dealState.SlashEpoch, currEpoch)

			if dealState.VerifiedClaim != verifreg.NoAllocationID {
				_, found := claimIdToDealId[dealState.VerifiedClaim]
				acc.Require(!found, "duplicate verified claim id %d for deal %d", dealState.VerifiedClaim, dealID)
				claimIdToDealId[dealState.VerifiedClaim] = abi.DealID(dealID)
			}

			dealStateCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating deal states")
	}

	// Pending proposals
	pendingProposalCount := uint64(0)
	if pendingProposals, err := adt.AsSet(store, st.PendingProposals, adt.DefaultHamtBitwidth); err != nil {
		acc.Addf("error loading pending proposals: %v", err)
	} else {
		err = pendingProposals.ForEach(func(key string) error {
			proposalCID, err := cid.Parse([]byte(key))
			if err != nil {
				return err
			}

			_, found := proposalCids[proposalCID]
			acc.Require(found, "pending proposal with cid %v not found within proposals", proposalCID)

			pendingProposalCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating pending proposals")
	}

	// Pending allocations
	if pendingAllocations, err := adt.AsMap(store, st.PendingDealAllocationIDs, PendingAllocationsMapBitwidth); err != nil {
		acc.Addf("error loading pending allocations: %v", err)
	} else {
		var allocID cbg.CborInt
		err = pendingAllocations.ForEach(&allocID, func(key string) error {
			dealID, err := abi.ParseUIntKey(key)
			if err != nil {
				return err
			}

			_, found := proposalStats[abi.DealID(dealID)]
			acc.Require(found, "pending allocation %d for deal %d without proposal", allocID, dealID)
			return nil
		})
		acc.RequireNoError(err, "error iterating pending allocations")
	}

	// Escrow table and locked table
	lockTableCount := uint64(0)
	escrowTotal := abi.NewTokenAmount(0)
	if escrowTable, err := adt.AsBalanceTable(store, st.EscrowTable); err != nil {
		acc.Addf("error loading escrow table: %v", err)
	} else if lockTable, err := adt.AsBalanceTable(store, st.LockedTable); err != nil {
		acc.Addf("error loading locked table: %v", err)
	} else {
		var lockedAmount abi.TokenAmount
		err = (*adt.Map)(lockTable).ForEach(&lockedAmount, func(key string) error {
			lockedAddr, err := addr.NewFromBytes([]byte(key))
			if err != nil {
				return err
			}

			escrowAmount, err := escrowTable.Get(lockedAddr)
			if err != nil {
				return err
			}

			acc.Require(lockedAmount.GreaterThanEqual(big.Zero()), "negative locked amount %v for %v", lockedAmount, lockedAddr)
			acc.Require(lockedAmount.LessThanEqual(escrowAmount),
				"locked funds %v for %v exceed escrow %v", lockedAmount, lockedAddr, escrowAmount)

			lockTableCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating locked table")

		lockedTotal, err := lockTable.Total()
		acc.RequireNoError(err, "error totaling locked table")
		statsTotal := big.Sum(st.TotalClientLockedCollateral, st.TotalProviderLockedCollateral, st.TotalClientStorageFee)
		acc.Require(lockedTotal.Equals(statsTotal),
			"locked total %v does not match sum of stats %v", lockedTotal, statsTotal)

		escrowTotal, err = escrowTable.Total()
		acc.RequireNoError(err, "error totaling escrow table")
		acc.Require(escrowTotal.LessThanEqual(balance),
			"escrow total %v exceeds actor balance %v", escrowTotal, balance)
	}

	// Deal ops by epoch
	dealOpEpochCount := uint64(0)
	dealOpCount := uint64(0)
	if dealOps, err := adt.AsSetMultimap(store, st.DealOpsByEpoch, adt.DefaultHamtBitwidth, adt.DefaultHamtBitwidth); err != nil {
		acc.Addf("error loading deal ops: %v", err)
	} else {
		seenEpochs := make(map[abi.ChainEpoch]struct{})
		err = dealOps.ForAll(func(key abi.Keyer, dealID uint64) error {
			epochInt, err := abi.ParseIntKey(key.Key())
			if err != nil {
				return err
			}
			epoch := abi.ChainEpoch(epochInt)
			if _, seen := seenEpochs[epoch]; !seen {
				seenEpochs[epoch] = struct{}{}
				dealOpEpochCount++
			}

			_, found := proposalStats[abi.DealID(dealID)]
			acc.Require(found, "deal op found for deal id %d with missing proposal at epoch %d", dealID, epoch)

			delete(expectedDealOps, abi.DealID(dealID))
			dealOpCount++
			return nil
		})
		acc.RequireNoError(err, "error iterating deal ops")
	}

	acc.Require(len(expectedDealOps) == 0, "missing deal ops for proposals: %v", expectedDealOps)

	return &StateSummary{
		Deals:                proposalStats,
		PendingProposalCount: pendingProposalCount,
		DealStateCount:       dealStateCount,
		LockTableCount:       lockTableCount,
		DealOpEpochCount:     dealOpEpochCount,
		DealOpCount:          dealOpCount,
		ClaimIdToDealId:      claimIdToDealId,
	}, acc
}
