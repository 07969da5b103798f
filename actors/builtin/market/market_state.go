package market

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/market-actors/actors/builtin"
	"github.com/filecoin-project/market-actors/actors/builtin/verifreg"
	"github.com/filecoin-project/market-actors/actors/util/adt"
)

// PendingAllocationsMapBitwidth is the hamt bitwidth of the deal-to-
// allocation map.
const PendingAllocationsMapBitwidth = adt.DefaultHamtBitwidth

type State struct {
	// Proposals are deals that have been proposed and not yet cleaned up
	// after expiry or termination. AMT[DealID]DealProposal.
	Proposals cid.Cid
	// States contains deal states for all deals that have been activated.
	// AMT[DealID]DealState.
	States cid.Cid

	// PendingProposals tracks fingerprints of deals published but not yet
	// activated or cleaned up. Set[DealCid].
	PendingProposals cid.Cid

	// EscrowTable holds total funds deposited per participant.
	EscrowTable cid.Cid

	// LockedTable holds the subset of escrow committed to deals.
	// Invariant: 0 <= locked[addr] <= escrow[addr].
	LockedTable cid.Cid

	// NextID is the ID to assign to the next published deal. Never reused.
	NextID abi.DealID

	// DealOpsByEpoch queues deal IDs by the epoch of their next settlement.
	// SetMultimap: ChainEpoch -> Set[DealID].
	DealOpsByEpoch cid.Cid
	LastCron       abi.ChainEpoch

	// TotalClientLockedCollateral is the sum of locked client collateral.
	TotalClientLockedCollateral abi.TokenAmount
	// TotalProviderLockedCollateral is the sum of locked provider
	// collateral.
	TotalProviderLockedCollateral abi.TokenAmount
	// TotalClientStorageFee is the sum of locked, not yet disbursed storage
	// fees.
	TotalClientStorageFee abi.TokenAmount

	// PendingDealAllocationIDs maps deal IDs to verified allocation IDs for
	// deals published but not yet activated. HAMT[DealID]AllocationID.
	PendingDealAllocationIDs cid.Cid
}

func ConstructState(store adt.Store) (*State, error) {
	emptyProposalsArrayCid, err := adt.StoreEmptyArray(store, ProposalsAmtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty proposals array: %w", err)
	}
	emptyStatesArrayCid, err := adt.StoreEmptyArray(store, StatesAmtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty states array: %w", err)
	}
	emptyPendingProposalsMapCid, err := adt.StoreEmptyMap(store, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty pending proposals map: %w", err)
	}
	emptyDealOpsHamtCid, err := adt.StoreEmptySetMultimap(store, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty multiset: %w", err)
	}
	emptyBalanceTableCid, err := adt.StoreEmptyBalanceTable(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty balance table: %w", err)
	}
	emptyPendingAllocationsMapCid, err := adt.StoreEmptyMap(store, PendingAllocationsMapBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty pending allocations map: %w", err)
	}

	return &State{
		Proposals:        emptyProposalsArrayCid,
		States:           emptyStatesArrayCid,
		PendingProposals: emptyPendingProposalsMapCid,
		EscrowTable:      emptyBalanceTableCid,
		LockedTable:      emptyBalanceTableCid,
		NextID:           abi.DealID(0),
		DealOpsByEpoch:   emptyDealOpsHamtCid,
		LastCron:         EpochUndefined,

		TotalClientLockedCollateral:   abi.NewTokenAmount(0),
		TotalProviderLockedCollateral: abi.NewTokenAmount(0),
		TotalClientStorageFee:         abi.NewTokenAmount(0),

		PendingDealAllocationIDs: emptyPendingAllocationsMapCid,
	}, nil
}

////////////////////////////////////////////////////////////////////////////////
// Deal state operations
////////////////////////////////////////////////////////////////////////////////

// updatePendingDealState settles one scheduled deal at the given epoch.
// Returns the amount slashed (burned later by the caller), the epoch at
// which the deal should next be scheduled (epochUndefined if none), and
// whether the deal's proposal and state should be deleted.
func (m *marketStateMutation) updatePendingDealState(rt Runtime, dealID abi.DealID, state *DealState, deal *DealProposal, epoch abi.ChainEpoch) (abi.TokenAmount, abi.ChainEpoch, bool) {
	amountSlashed := abi.NewTokenAmount(0)

	everUpdated := state.LastUpdatedEpoch != EpochUndefined
	everSlashed := state.SlashEpoch != EpochUndefined

	// A deal is only scheduled after activation.
	builtin.RequireState(rt, !everUpdated || (state.LastUpdatedEpoch <= epoch), "deal updated at future epoch %d", state.LastUpdatedEpoch)

	// This would be the case that the first callback somehow triggers before it is scheduled to
	// This is expected not to be able to happen
	if deal.StartEpoch > epoch {
		return amountSlashed, EpochUndefined, false
	}

	paymentEndEpoch := deal.EndEpoch
	if everSlashed {
		builtin.RequireState(rt, epoch >= state.SlashEpoch, "current epoch less than deal slash epoch %d", state.SlashEpoch)
		builtin.RequireState(rt, state.SlashEpoch <= deal.EndEpoch, "deal slash epoch %d after deal end %d", state.SlashEpoch, deal.EndEpoch)
		paymentEndEpoch = state.SlashEpoch
	} else if epoch < paymentEndEpoch {
		paymentEndEpoch = epoch
	}

	paymentStartEpoch := deal.StartEpoch
	if everUpdated && state.LastUpdatedEpoch > paymentStartEpoch {
		paymentStartEpoch = state.LastUpdatedEpoch
	}

	numEpochsElapsed := paymentEndEpoch - paymentStartEpoch

	if numEpochsElapsed > 0 {
		// Process deal payment for the elapsed epochs.
		totalPayment := big.Mul(big.NewInt(int64(numEpochsElapsed)), deal.StoragePricePerEpoch)

		// the transferred amount can't exceed the total payment, considering both gas cost and the slashed amount
		err := m.transferBalance(deal.Client, deal.Provider, totalPayment)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to transfer %v from %v to %v",
			totalPayment, deal.Client, deal.Provider)
	}

	if everSlashed {
		// Unlock client collateral and remaining storage fee
		paymentRemaining, err := dealGetPaymentRemaining(deal, state.SlashEpoch)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to compute remaining payment")

		// Unlock remaining storage fee
		err = m.unlockBalance(deal.Client, paymentRemaining, ClientStorageFee)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to unlock remaining client storage fee")

		// Unlock client collateral
		err = m.unlockBalance(deal.Client, deal.ClientCollateral, ClientCollateral)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to unlock client collateral")

		// slash provider collateral
		amountSlashed = deal.ProviderCollateral
		err = m.slashBalance(deal.Provider, amountSlashed, ProviderCollateral)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "slashing balance")

		return amountSlashed, EpochUndefined, true
	}

	if epoch >= deal.EndEpoch {
		m.processDealExpired(rt, deal, state)
		return amountSlashed, EpochUndefined, true
	}

	// The deal continues: it must next be visited at its own slot of the
	// update cycle.
	next := NextUpdateEpoch(dealID, DealUpdatesInterval, epoch+1)

	return amountSlashed, next, false
}

// processDealInitTimedOut handles a deal that was scheduled but never
// activated by its start epoch. The client's locked funds come back in
// full; the provider forfeits collateral.
// The caller deletes the proposal, pending entry and allocation.
func (m *marketStateMutation) processDealInitTimedOut(rt Runtime, deal *DealProposal) abi.TokenAmount {
	err := m.unlockBalance(deal.Client, deal.TotalStorageFee(), ClientStorageFee)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failure unlocking client storage fee")

	err = m.unlockBalance(deal.Client, deal.ClientCollateral, ClientCollateral)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failure unlocking client collateral")

	amountSlashed := CollateralPenaltyForDealActivationMissed(deal.ProviderCollateral)
	amountRemaining := big.Sub(deal.ProviderBalanceRequirement(), amountSlashed)

	err = m.slashBalance(deal.Provider, amountSlashed, ProviderCollateral)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to slash balance")

	err = m.unlockBalance(deal.Provider, amountRemaining, ProviderCollateral)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to unlock deal provider balance")

	return amountSlashed
}

// processDealExpired releases all remaining locks when a deal reaches its
// end epoch with full payment. The caller deletes the proposal and state.
func (m *marketStateMutation) processDealExpired(rt Runtime, deal *DealProposal, state *DealState) {
	builtin.RequireState(rt, state.SectorStartEpoch != EpochUndefined, "start sector epoch undefined")

	err := m.unlockBalance(deal.Provider, deal.ProviderCollateral, ProviderCollateral)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed unlocking deal provider balance")

	err = m.unlockBalance(deal.Client, deal.ClientCollateral, ClientCollateral)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed unlocking deal client balance")
}

func (m *marketStateMutation) generateStorageDealID() abi.DealID {
	ret := m.nextDealID
	m.nextDealID = m.nextDealID + abi.DealID(1)
	return ret
}

////////////////////////////////////////////////////////////////////////////////
// Balance table operations
////////////////////////////////////////////////////////////////////////////////

// BalanceLockingReason distinguishes which state total a lock or unlock
// adjusts.
type BalanceLockingReason int

const (
	ClientCollateral BalanceLockingReason = iota
	ClientStorageFee
	ProviderCollateral
)

// balanceCovered checks whether an additional hypothetical lock would stay
// within the party's escrow, without mutating anything.
func (m *marketStateMutation) balanceCovered(addr addr.Address, amount abi.TokenAmount) (bool, error) {
	escrowBalance, err := m.escrowTable.Get(addr)
	if err != nil {
		return false, xerrors.Errorf("failed to get escrow balance: %w", err)
	}
	lockedBalance, err := m.lockedTable.Get(addr)
	if err != nil {
		return false, xerrors.Errorf("failed to get locked balance: %w", err)
	}
	return big.Add(lockedBalance, amount).LessThanEqual(escrowBalance), nil
}

func (m *marketStateMutation) maybeLockBalance(addr addr.Address, amount abi.TokenAmount) error {
	if amount.LessThan(big.Zero()) {
		return xerrors.Errorf("cannot lock negative amount %v", amount)
	}

	prevLocked, err := m.lockedTable.Get(addr)
	if err != nil {
		return xerrors.Errorf("failed to get locked balance: %w", err)
	}
	escrowBalance, err := m.escrowTable.Get(addr)
	if err != nil {
		return xerrors.Errorf("failed to get escrow balance: %w", err)
	}
	if big.Add(prevLocked, amount).GreaterThan(escrowBalance) {
		return exitcode.ErrInsufficientFunds.Wrapf("insufficient balance to lock %v for addr %v: escrow balance %v < prev locked %v + amount %v",
			amount, addr, escrowBalance, prevLocked, amount)
	}

	if err := m.lockedTable.Add(addr, amount); err != nil {
		return xerrors.Errorf("failed to add locked balance: %w", err)
	}
	return nil
}

// lockClientAndProviderBalances locks the balance requirements of both
// parties to a newly published deal.
func (m *marketStateMutation) lockClientAndProviderBalances(proposal *DealProposal) error {
	if err := m.maybeLockBalance(proposal.Client, proposal.ClientBalanceRequirement()); err != nil {
		return xerrors.Errorf("failed to lock client funds: %w", err)
	}
	if err := m.maybeLockBalance(proposal.Provider, proposal.ProviderBalanceRequirement()); err != nil {
		return xerrors.Errorf("failed to lock provider funds: %w", err)
	}

	m.totalClientLockedCollateral = big.Add(m.totalClientLockedCollateral, proposal.ClientCollateral)
	m.totalClientStorageFee = big.Add(m.totalClientStorageFee, proposal.TotalStorageFee())
	m.totalProviderLockedCollateral = big.Add(m.totalProviderLockedCollateral, proposal.ProviderCollateral)
	return nil
}

func (m *marketStateMutation) unlockBalance(addr addr.Address, amount abi.TokenAmount, lockReason BalanceLockingReason) error {
	if amount.LessThan(big.Zero()) {
		return xerrors.Errorf("unlock negative amount %v", amount)
	}

	err := m.lockedTable.MustSubtract(addr, amount)
	if err != nil {
		return xerrors.Errorf("subtracting from locked balance: %w", err)
	}

	switch lockReason {
	case ClientCollateral:
		m.totalClientLockedCollateral = big.Sub(m.totalClientLockedCollateral, amount)
	case ClientStorageFee:
		m.totalClientStorageFee = big.Sub(m.totalClientStorageFee, amount)
	case ProviderCollateral:
		m.totalProviderLockedCollateral = big.Sub(m.totalProviderLockedCollateral, amount)
	}
	return nil
}

// transferBalance moves an amount from one party's locked escrow to
// another's unlocked escrow.
func (m *marketStateMutation) transferBalance(fromAddr addr.Address, toAddr addr.Address, amount abi.TokenAmount) error {
	if amount.LessThan(big.Zero()) {
		return xerrors.Errorf("transfer negative amount %v", amount)
	}
	if err := m.escrowTable.MustSubtract(fromAddr, amount); err != nil {
		return xerrors.Errorf("subtract from escrow: %w", err)
	}
	if err := m.unlockBalance(fromAddr, amount, ClientStorageFee); err != nil {
		return xerrors.Errorf("subtract from locked: %w", err)
	}
	if err := m.escrowTable.Add(toAddr, amount); err != nil {
		return xerrors.Errorf("add to escrow: %w", err)
	}
	return nil
}

// slashBalance removes an amount from a party's escrow and lock at once;
// the caller is responsible for burning it.
func (m *marketStateMutation) slashBalance(addr addr.Address, amount abi.TokenAmount, reason BalanceLockingReason) error {
	if amount.LessThan(big.Zero()) {
		return xerrors.Errorf("negative amount to slash: %v", amount)
	}
	if err := m.escrowTable.MustSubtract(addr, amount); err != nil {
		return xerrors.Errorf("subtract from escrow: %w", err)
	}
	return m.unlockBalance(addr, amount, reason)
}

////////////////////////////////////////////////////////////////////////////////
// Method utility functions
////////////////////////////////////////////////////////////////////////////////

func dealGetPaymentRemaining(deal *DealProposal, slashEpoch abi.ChainEpoch) (abi.TokenAmount, error) {
	if slashEpoch > deal.EndEpoch {
		return big.Zero(), xerrors.Errorf("deal slash epoch %d after end epoch %d", slashEpoch, deal.EndEpoch)
	}

	// Payments are always for start -> end epoch irrespective of when the deal is slashed.
	if slashEpoch < deal.StartEpoch {
		slashEpoch = deal.StartEpoch
	}

	durationRemaining := deal.EndEpoch - slashEpoch
	if durationRemaining < 0 {
		return big.Zero(), xerrors.Errorf("deal remaining duration negative: %d", durationRemaining)
	}

	return big.Mul(big.NewInt(int64(durationRemaining)), deal.StoragePricePerEpoch), nil
}

////////////////////////////////////////////////////////////////////////////////
// State mutation
////////////////////////////////////////////////////////////////////////////////

// MarketStateMutationPermission is the mutation permission on a state field.
type MarketStateMutationPermission int

const (
	// Invalid means NO permission
	Invalid MarketStateMutationPermission = iota
	// ReadOnlyPermission allows reading but not mutating the field
	ReadOnlyPermission
	// WritePermission allows mutating the field
	WritePermission
)

// marketStateMutation stages mutations of the market state. Loaded
// substructures are flushed back to the state on commitState according to
// their permissions.
type marketStateMutation struct {
	st    *State
	store adt.Store

	proposalPermit MarketStateMutationPermission
	dealProposals  *DealArray

	statePermit MarketStateMutationPermission
	dealStates  *DealMetaArray

	escrowPermit MarketStateMutationPermission
	escrowTable  *adt.BalanceTable

	pendingPermit MarketStateMutationPermission
	pendingDeals  *adt.Set

	dpePermit    MarketStateMutationPermission
	dealsByEpoch *adt.SetMultimap

	lockedPermit                  MarketStateMutationPermission
	lockedTable                   *adt.BalanceTable
	totalClientLockedCollateral   abi.TokenAmount
	totalProviderLockedCollateral abi.TokenAmount
	totalClientStorageFee         abi.TokenAmount

	allocPermit              MarketStateMutationPermission
	pendingDealAllocationIDs *adt.Map

	nextDealID abi.DealID
}

func (s *State) mutator(store adt.Store) *marketStateMutation {
	return &marketStateMutation{st: s, store: store}
}

func (m *marketStateMutation) build() (*marketStateMutation, error) {
	if m.proposalPermit != Invalid {
		proposals, err := AsDealProposalArray(m.store, m.st.Proposals)
		if err != nil {
			return nil, xerrors.Errorf("failed to load deal proposals: %w", err)
		}
		m.dealProposals = proposals
	}

	if m.statePermit != Invalid {
		states, err := AsDealStateArray(m.store, m.st.States)
		if err != nil {
			return nil, xerrors.Errorf("failed to load deal states: %w", err)
		}
		m.dealStates = states
	}

	if m.lockedPermit != Invalid {
		lt, err := adt.AsBalanceTable(m.store, m.st.LockedTable)
		if err != nil {
			return nil, xerrors.Errorf("failed to load locked table: %w", err)
		}
		m.lockedTable = lt
		m.totalClientLockedCollateral = m.st.TotalClientLockedCollateral.Copy()
		m.totalClientStorageFee = m.st.TotalClientStorageFee.Copy()
		m.totalProviderLockedCollateral = m.st.TotalProviderLockedCollateral.Copy()
	}

	if m.escrowPermit != Invalid {
		et, err := adt.AsBalanceTable(m.store, m.st.EscrowTable)
		if err != nil {
			return nil, xerrors.Errorf("failed to load escrow table: %w", err)
		}
		m.escrowTable = et
	}

	if m.pendingPermit != Invalid {
		pending, err := adt.AsSet(m.store, m.st.PendingProposals, adt.DefaultHamtBitwidth)
		if err != nil {
			return nil, xerrors.Errorf("failed to load pending proposals set: %w", err)
		}
		m.pendingDeals = pending
	}

	if m.dpePermit != Invalid {
		dbe, err := adt.AsSetMultimap(m.store, m.st.DealOpsByEpoch, adt.DefaultHamtBitwidth, adt.DefaultHamtBitwidth)
		if err != nil {
			return nil, xerrors.Errorf("failed to load deal ops by epoch: %w", err)
		}
		m.dealsByEpoch = dbe
	}

	if m.allocPermit != Invalid {
		allocs, err := adt.AsMap(m.store, m.st.PendingDealAllocationIDs, PendingAllocationsMapBitwidth)
		if err != nil {
			return nil, xerrors.Errorf("failed to load pending allocations map: %w", err)
		}
		m.pendingDealAllocationIDs = allocs
	}

	m.nextDealID = m.st.NextID

	return m, nil
}

func (m *marketStateMutation) withDealProposals(permit MarketStateMutationPermission) *marketStateMutation {
	m.proposalPermit = permit
	return m
}

func (m *marketStateMutation) withDealStates(permit MarketStateMutationPermission) *marketStateMutation {
	m.statePermit = permit
	return m
}

func (m *marketStateMutation) withEscrowTable(permit MarketStateMutationPermission) *marketStateMutation {
	m.escrowPermit = permit
	return m
}

func (m *marketStateMutation) withLockedTable(permit MarketStateMutationPermission) *marketStateMutation {
	m.lockedPermit = permit
	return m
}

func (m *marketStateMutation) withPendingProposals(permit MarketStateMutationPermission) *marketStateMutation {
	m.pendingPermit = permit
	return m
}

func (m *marketStateMutation) withDealsByEpoch(permit MarketStateMutationPermission) *marketStateMutation {
	m.dpePermit = permit
	return m
}

func (m *marketStateMutation) withPendingAllocations(permit MarketStateMutationPermission) *marketStateMutation {
	m.allocPermit = permit
	return m
}

func (m *marketStateMutation) commitState() error {
	var err error
	if m.proposalPermit == WritePermission {
		if m.st.Proposals, err = m.dealProposals.Root(); err != nil {
			return xerrors.Errorf("failed to flush deal proposals: %w", err)
		}
	}

	if m.statePermit == WritePermission {
		if m.st.States, err = m.dealStates.Root(); err != nil {
			return xerrors.Errorf("failed to flush deal states: %w", err)
		}
	}

	if m.lockedPermit == WritePermission {
		if m.st.LockedTable, err = m.lockedTable.Root(); err != nil {
			return xerrors.Errorf("failed to flush locked table: %w", err)
		}
		m.st.TotalClientLockedCollateral = m.totalClientLockedCollateral.Copy()
		m.st.TotalProviderLockedCollateral = m.totalProviderLockedCollateral.Copy()
		m.st.TotalClientStorageFee = m.totalClientStorageFee.Copy()
	}

	if m.escrowPermit == WritePermission {
		if m.st.EscrowTable, err = m.escrowTable.Root(); err != nil {
			return xerrors.Errorf("failed to flush escrow table: %w", err)
		}
	}

	if m.pendingPermit == WritePermission {
		if m.st.PendingProposals, err = m.pendingDeals.Root(); err != nil {
			return xerrors.Errorf("failed to flush pending deals: %w", err)
		}
	}

	if m.dpePermit == WritePermission {
		if m.st.DealOpsByEpoch, err = m.dealsByEpoch.Root(); err != nil {
			return xerrors.Errorf("failed to flush deals by epoch: %w", err)
		}
	}

	if m.allocPermit == WritePermission {
		if m.st.PendingDealAllocationIDs, err = m.pendingDealAllocationIDs.Root(); err != nil {
			return xerrors.Errorf("failed to flush pending allocations: %w", err)
		}
	}

	m.st.NextID = m.nextDealID
	return nil
}

// getPendingAllocation reads the allocation ID recorded for a deal, zero if
// none.
func (m *marketStateMutation) getPendingAllocation(dealID abi.DealID) (verifreg.AllocationID, error) {
	var allocID cbg.CborInt
	found, err := m.pendingDealAllocationIDs.Get(abi.UIntKey(uint64(dealID)), &allocID)
	if err != nil {
		return verifreg.NoAllocationID, xerrors.Errorf("failed to get pending allocation for deal %d: %w", dealID, err)
	}
	if !found {
		return verifreg.NoAllocationID, nil
	}
	return verifreg.AllocationID(allocID), nil
}

// removePendingAllocation removes and returns the allocation ID recorded
// for a deal, zero if none.
func (m *marketStateMutation) removePendingAllocation(dealID abi.DealID) (verifreg.AllocationID, error) {
	allocID, err := m.getPendingAllocation(dealID)
	if err != nil {
		return verifreg.NoAllocationID, err
	}
	if allocID != verifreg.NoAllocationID {
		if _, err := m.pendingDealAllocationIDs.TryDelete(abi.UIntKey(uint64(dealID))); err != nil {
			return verifreg.NoAllocationID, xerrors.Errorf("failed to remove pending allocation for deal %d: %w", dealID, err)
		}
	}
	return allocID, nil
}
