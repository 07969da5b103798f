package market

import (
	"bytes"
	"sort"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/market-actors/actors/builtin"
	"github.com/filecoin-project/market-actors/actors/builtin/account"
	"github.com/filecoin-project/market-actors/actors/builtin/datacap"
	"github.com/filecoin-project/market-actors/actors/builtin/miner"
	"github.com/filecoin-project/market-actors/actors/builtin/power"
	"github.com/filecoin-project/market-actors/actors/builtin/reward"
	"github.com/filecoin-project/market-actors/actors/builtin/verifreg"
	"github.com/filecoin-project/market-actors/actors/runtime"
	"github.com/filecoin-project/market-actors/actors/util/adt"
)

type Actor struct{}

type Runtime = runtime.Runtime

func (a Actor) Exports() map[abi.MethodNum]interface{} {
	return map[abi.MethodNum]interface{}{
		builtin.MethodsMarket.Constructor:                       a.Constructor,
		builtin.MethodsMarket.AddBalance:                        a.AddBalance,
		builtin.MethodsMarket.AddBalanceExported:                a.AddBalance,
		builtin.MethodsMarket.WithdrawBalance:                   a.WithdrawBalance,
		builtin.MethodsMarket.WithdrawBalanceExported:           a.WithdrawBalance,
		builtin.MethodsMarket.PublishStorageDeals:               a.PublishStorageDeals,
		builtin.MethodsMarket.PublishStorageDealsExported:       a.PublishStorageDeals,
		builtin.MethodsMarket.VerifyDealsForActivation:          a.VerifyDealsForActivation,
		builtin.MethodsMarket.ActivateDeals:                     a.ActivateDeals,
		builtin.MethodsMarket.OnMinerSectorsTerminate:           a.OnMinerSectorsTerminate,
		builtin.MethodsMarket.ComputeDataCommitment:             a.ComputeDataCommitment,
		builtin.MethodsMarket.CronTick:                          a.CronTick,
		builtin.MethodsMarket.GetBalanceExported:                a.GetBalance,
		builtin.MethodsMarket.GetDealDataCommitmentExported:     a.GetDealDataCommitment,
		builtin.MethodsMarket.GetDealClientExported:             a.GetDealClient,
		builtin.MethodsMarket.GetDealProviderExported:           a.GetDealProvider,
		builtin.MethodsMarket.GetDealLabelExported:              a.GetDealLabel,
		builtin.MethodsMarket.GetDealTermExported:               a.GetDealTerm,
		builtin.MethodsMarket.GetDealTotalPriceExported:         a.GetDealTotalPrice,
		builtin.MethodsMarket.GetDealClientCollateralExported:   a.GetDealClientCollateral,
		builtin.MethodsMarket.GetDealProviderCollateralExported: a.GetDealProviderCollateral,
		builtin.MethodsMarket.GetDealVerifiedExported:           a.GetDealVerified,
		builtin.MethodsMarket.GetDealActivationExported:         a.GetDealActivation,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.StorageMarketActorCodeID
}

func (a Actor) IsSingleton() bool {
	return true
}

func (a Actor) State() cbor.Er {
	return new(State)
}

var _ runtime.VMActor = Actor{}

////////////////////////////////////////////////////////////////////////////////
// Actor methods
////////////////////////////////////////////////////////////////////////////////

func (a Actor) Constructor(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	st, err := ConstructState(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create state")
	rt.StateCreate(st)
	return nil
}

// Deposits the received value into the balance held in escrow for the named
// party.
func (a Actor) AddBalance(rt Runtime, providerOrClientAddress *addr.Address) *abi.EmptyValue {
	msgValue := rt.ValueReceived()
	builtin.RequireParam(rt, msgValue.GreaterThan(big.Zero()), "balance to add must be greater than zero")

	rt.ValidateImmediateCallerAcceptAny()

	nominal, _, _ := escrowAddress(rt, *providerOrClientAddress)

	var st State
	rt.StateTransaction(&st, func() {
		msm, err := st.mutator(adt.AsStore(rt)).withEscrowTable(WritePermission).
			withLockedTable(WritePermission).build()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load state")

		err = msm.escrowTable.Add(nominal, msgValue)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to add balance to escrow table")

		err = msm.commitState()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush state")
	})
	return nil
}

// Attempt to withdraw the specified amount from the balance held in escrow.
// If less than the specified amount is available, yields the entire
// available balance.
func (a Actor) WithdrawBalance(rt Runtime, params *WithdrawBalanceParams) *WithdrawBalanceReturn {
	if params.Amount.LessThan(big.Zero()) {
		rt.Abortf(exitcode.ErrIllegalArgument, "negative amount %v", params.Amount)
	}

	nominal, recipient, approvedCallers := escrowAddress(rt, params.ProviderOrClientAddress)
	// for providers -> only corresponding owner or worker can withdraw
	// for clients -> only the client i.e the recipient can withdraw
	rt.ValidateImmediateCallerIs(approvedCallers...)

	amountExtracted := abi.NewTokenAmount(0)
	var st State
	rt.StateTransaction(&st, func() {
		msm, err := st.mutator(adt.AsStore(rt)).withEscrowTable(WritePermission).
			withLockedTable(WritePermission).build()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load state")

		// The withdrawable amount might be slightly less than nominal
		// depending on whether or not all relevant entries have been
		// processed by cron.
		minBalance, err := msm.lockedTable.Get(nominal)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get locked balance")

		ex, err := msm.escrowTable.SubtractWithMinimum(nominal, params.Amount, minBalance)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to subtract from escrow table")

		err = msm.commitState()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush state")

		amountExtracted = ex
	})

	code := rt.Send(recipient, builtin.MethodSend, nil, amountExtracted, &builtin.Discard{})
	builtin.RequireSuccess(rt, code, "failed to send funds")

	return &WithdrawBalanceReturn{AmountWithdrawn: amountExtracted}
}

// Returns the escrow balance and locked amount for an address.
func (a Actor) GetBalance(rt Runtime, acct *addr.Address) *GetBalanceReturn {
	rt.ValidateImmediateCallerAcceptAny()
	nominal, ok := rt.ResolveAddress(*acct)
	builtin.RequireParam(rt, ok, "failed to resolve address %v", acct)

	var st State
	rt.StateReadonly(&st)
	store := adt.AsStore(rt)

	balances, err := adt.AsBalanceTable(store, st.EscrowTable)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load escrow table")
	locks, err := adt.AsBalanceTable(store, st.LockedTable)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load locked table")

	balance, err := balances.Get(nominal)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get escrow balance")
	locked, err := locks.Get(nominal)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get locked balance")

	return &GetBalanceReturn{
		Balance: balance,
		Locked:  locked,
	}
}

// validDeal is a deal that survived validation, with its fingerprint and any
// datacap allocation obtained for it.
type validDeal struct {
	index      int
	proposal   DealProposal
	cid        cid.Cid
	allocation verifreg.AllocationID
}

// Publish a new set of storage deals that are not yet included in a sector.
func (a Actor) PublishStorageDeals(rt Runtime, params *PublishStorageDealsParams) *PublishStorageDealsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	builtin.RequireParam(rt, len(params.Deals) > 0, "empty deals parameter")

	// All deals should have the same provider, so get the provider's
	// control addresses just once.
	providerRaw := params.Deals[0].Proposal.Provider
	provider, ok := rt.ResolveAddress(providerRaw)
	if !ok {
		rt.Abortf(exitcode.ErrNotFound, "failed to resolve provider address %v", providerRaw)
	}

	codeID, ok := rt.GetActorCodeCID(provider)
	builtin.RequireParam(rt, ok, "no code ID for address %v", provider)
	if !codeID.Equals(builtin.StorageMinerActorCodeID) {
		rt.Abortf(exitcode.ErrIllegalArgument, "deal provider is not a storage miner actor")
	}

	caller := rt.Caller()
	_, worker, controllers := requestMinerControlAddrs(rt, provider)
	callerOk := caller == worker
	for _, controller := range controllers {
		if callerOk {
			break
		}
		callerOk = caller == controller
	}
	if !callerOk {
		rt.Abortf(exitcode.ErrForbidden, "caller %v is not worker or control address of provider %v", caller, provider)
	}

	baselinePower := requestCurrentBaselinePower(rt)
	networkRawPower := requestCurrentNetworkPower(rt)

	// First pass: stateless validation, done before entering the state
	// transaction because client authentication re-enters through Send.
	// Validation failures drop the single proposal, never the batch.
	var st State
	rt.StateReadonly(&st)
	msm, err := st.mutator(adt.AsStore(rt)).withEscrowTable(ReadOnlyPermission).
		withLockedTable(ReadOnlyPermission).withPendingProposals(ReadOnlyPermission).build()
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load state")

	curEpoch := rt.CurrEpoch()
	proposalCidLookup := make(map[cid.Cid]struct{})
	totalClientLockup := make(map[addr.Address]abi.TokenAmount)
	totalProviderLockup := abi.NewTokenAmount(0)

	// Remaining datacap budget per client, queried lazily once per client.
	datacapBudget := make(map[addr.Address]abi.TokenAmount)
	// Allocation requests grouped by client, in deal order; and the deals
	// awaiting the resulting allocation IDs.
	allocRequests := make(map[addr.Address][]verifreg.AllocationRequest)
	allocDealIdxs := make(map[addr.Address][]int)
	var clientsWithAllocs []addr.Address

	validDeals := make([]*validDeal, 0, len(params.Deals))
	validInputBf := bitfield.New()

	for di, deal := range params.Deals {
		if err := validateDeal(rt, deal, networkRawPower, baselinePower); err != nil {
			rt.Log(rtt.INFO, "invalid deal %d: %s", di, err)
			continue
		}

		if deal.Proposal.Provider != provider && deal.Proposal.Provider != providerRaw {
			rt.Log(rtt.INFO, "invalid deal %d: cannot publish deals from multiple providers in one batch", di)
			continue
		}

		client, ok := rt.ResolveAddress(deal.Proposal.Client)
		if !ok {
			rt.Log(rtt.INFO, "invalid deal %d: failed to resolve client address %v", di, deal.Proposal.Client)
			continue
		}

		// Drop deals with insufficient escrow to cover the whole batch so
		// far.
		clientLockup, found := totalClientLockup[client]
		if !found {
			clientLockup = abi.NewTokenAmount(0)
		}
		clientLockup = big.Add(clientLockup, deal.Proposal.ClientBalanceRequirement())
		clientBalanceOk, err := msm.balanceCovered(client, clientLockup)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check client balance coverage")
		if !clientBalanceOk {
			rt.Log(rtt.INFO, "invalid deal %d: insufficient client funds to cover proposal cost", di)
			continue
		}

		providerLockup := big.Add(totalProviderLockup, deal.Proposal.ProviderCollateral)
		providerBalanceOk, err := msm.balanceCovered(provider, providerLockup)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check provider balance coverage")
		if !providerBalanceOk {
			rt.Log(rtt.INFO, "invalid deal %d: insufficient provider funds to cover proposal cost", di)
			continue
		}

		// Normalise provider and client addresses in the proposal stored on
		// chain. Must happen after signature verification and before taking
		// the fingerprint.
		deal.Proposal.Provider = provider
		deal.Proposal.Client = client

		pcid, err := deal.Proposal.Cid()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to take cid of proposal %d", di)

		// Check for duplicates within the batch and against pending deals
		// from prior messages.
		dupInState, err := msm.pendingDeals.Has(abi.CidKey(pcid))
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check for existence of deal proposal")
		_, dupInMessage := proposalCidLookup[pcid]
		if dupInState || dupInMessage {
			rt.Log(rtt.INFO, "invalid deal %d: cannot publish duplicate deal proposal", di)
			continue
		}

		// For verified deals, debit the client's datacap budget; the actual
		// transfer of datacap to the registry happens after validation, in
		// one batch per client.
		if deal.Proposal.VerifiedDeal {
			budget, ok := datacapBudget[client]
			if !ok {
				budget = requestDatacapBalance(rt, client)
			}
			required := datacap.BalanceOf(deal.Proposal.PieceSize)
			if required.GreaterThan(budget) {
				rt.Log(rtt.INFO, "invalid deal %d: insufficient datacap %v for verified deal of size %v", di, budget, deal.Proposal.PieceSize)
				continue
			}
			datacapBudget[client] = big.Sub(budget, required)
			if _, seen := allocRequests[client]; !seen {
				clientsWithAllocs = append(clientsWithAllocs, client)
			}
			allocRequests[client] = append(allocRequests[client], allocationRequestForDeal(&deal.Proposal, curEpoch))
			allocDealIdxs[client] = append(allocDealIdxs[client], len(validDeals))
		}

		totalClientLockup[client] = clientLockup
		totalProviderLockup = providerLockup
		proposalCidLookup[pcid] = struct{}{}
		validDeals = append(validDeals, &validDeal{
			index:      di,
			proposal:   deal.Proposal,
			cid:        pcid,
			allocation: verifreg.NoAllocationID,
		})
		validInputBf.Set(uint64(di))
	}

	validDealCount, err := validInputBf.Count()
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to count valid deals")
	builtin.RequireState(rt, validDealCount == uint64(len(validDeals)), "%d valid deals but valid deal count %d", len(validDeals), validDealCount)
	if validDealCount == 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "all deal proposals invalid")
	}

	// Transfer datacap from each client with accepted verified deals to the
	// registry, one transfer per client carrying all of that client's
	// allocation requests. The budget was confirmed above, so a failure
	// here means the collaborator protocol was violated.
	for _, client := range clientsWithAllocs {
		reqs := allocRequests[client]
		allocIDs := transferDataCap(rt, client, reqs)
		builtin.RequireState(rt, len(allocIDs) == len(reqs), "expected %d allocation IDs for client %v, got %d", len(reqs), client, len(allocIDs))
		for i, vdIdx := range allocDealIdxs[client] {
			validDeals[vdIdx].allocation = allocIDs[i]
		}
	}

	// All accepted deals are committed in one atomic transaction. Failures
	// here are invariant violations, not soft rejections: every expected
	// invalid condition was filtered above.
	var newDealIds []abi.DealID
	rt.StateTransaction(&st, func() {
		msm, err := st.mutator(adt.AsStore(rt)).withPendingProposals(WritePermission).
			withDealProposals(WritePermission).withDealsByEpoch(WritePermission).
			withEscrowTable(WritePermission).withLockedTable(WritePermission).
			withPendingAllocations(WritePermission).build()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load state")

		for _, vd := range validDeals {
			err := msm.lockClientAndProviderBalances(&vd.proposal)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to lock balance")

			id := msm.generateStorageDealID()

			err = msm.pendingDeals.Put(abi.CidKey(vd.cid))
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to set pending deal")

			err = msm.dealProposals.Set(id, &vd.proposal)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to set deal")

			if vd.allocation != verifreg.NoAllocationID {
				allocID := cbg.CborInt(vd.allocation)
				err = msm.pendingDealAllocationIDs.Put(abi.UIntKey(uint64(id)), &allocID)
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to set pending allocation")
			}

			// The first settlement epoch is the deal's own slot of the
			// update cycle at or after its start.
			processEpoch := NextUpdateEpoch(id, DealUpdatesInterval, vd.proposal.StartEpoch)
			err = msm.dealsByEpoch.Put(abi.IntKey(int64(processEpoch)), uint64(id))
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to set deal ops by epoch")

			newDealIds = append(newDealIds, id)
		}

		err = msm.commitState()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush state")
	})

	// Notify each deal's client that its deal is on chain. A client that
	// cannot be notified aborts the whole publish: deals must not be
	// finalized behind a client's back.
	for i, vd := range validDeals {
		buf := new(bytes.Buffer)
		err := vd.proposal.MarshalCBOR(buf)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to serialize proposal %d", vd.index)

		code := rt.Send(
			vd.proposal.Client,
			builtin.MarketNotifyDeal,
			&MarketNotifyDealParams{
				Proposal: buf.Bytes(),
				DealID:   newDealIds[i],
			},
			abi.NewTokenAmount(0),
			&builtin.Discard{},
		)
		builtin.RequireSuccess(rt, code, "failed to notify deal client %v", vd.proposal.Client)
	}

	return &PublishStorageDealsReturn{IDs: newDealIds, ValidDeals: validInputBf}
}

// Verify that a given set of storage deals is valid for sectors about to be
// pre-committed, and return the unsealed data commitment for each sector's
// deals.
func (a Actor) VerifyDealsForActivation(rt Runtime, params *VerifyDealsForActivationParams) *VerifyDealsForActivationReturn {
	rt.ValidateImmediateCallerType(builtin.StorageMinerActorCodeID)
	minerAddr := rt.Caller()
	currEpoch := rt.CurrEpoch()

	var st State
	rt.StateReadonly(&st)
	store := adt.AsStore(rt)

	proposals, err := AsDealProposalArray(store, st.Proposals)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load deal proposals")

	sectorData := make([]SectorDealData, len(params.Sectors))
	for i, sector := range params.Sectors {
		sectorSize, err := sector.SectorType.SectorSize()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "sector size unknown for sector type %v", sector.SectorType)

		// Pass the current epoch as the activation epoch: the real epoch
		// isn't known yet, but a deal too late to activate now is already
		// doomed.
		_, _, err = validateDealsForActivation(proposals, sector.DealIDs, minerAddr, sector.SectorExpiry, currEpoch, &sectorSize)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to validate deal proposals for activation")

		if len(sector.DealIDs) > 0 {
			commd := computeDataCommitment(rt, proposals, sector.SectorType, sector.DealIDs)
			sectorData[i] = SectorDealData{CommD: &commd}
		}
	}

	return &VerifyDealsForActivationReturn{Sectors: sectorData}
}

// Activate a set of deals, returning the combined deal space and extra info
// for verified deals. All-or-nothing: one invalid deal fails the batch.
func (a Actor) ActivateDeals(rt Runtime, params *ActivateDealsParams) *ActivateDealsResult {
	rt.ValidateImmediateCallerType(builtin.StorageMinerActorCodeID)
	minerAddr := rt.Caller()
	currEpoch := rt.CurrEpoch()

	var st State
	rt.StateReadonly(&st)
	proposals, err := AsDealProposalArray(adt.AsStore(rt), st.Proposals)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load deal proposals")

	nonVerifiedSpace, _, err := validateDealsForActivation(proposals, params.DealIDs, minerAddr, params.SectorExpiry, currEpoch, nil)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to validate deal proposals for activation")

	var verifiedInfos []VerifiedDealInfo
	rt.StateTransaction(&st, func() {
		msm, err := st.mutator(adt.AsStore(rt)).withDealStates(WritePermission).
			withPendingProposals(ReadOnlyPermission).withDealProposals(ReadOnlyPermission).
			withPendingAllocations(WritePermission).build()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load state")

		for _, dealID := range params.DealIDs {
			// This construction could be replaced with a single "update
			// deal state" state method, possibly batched over all deal ids
			// at once.
			_, found, err := msm.dealStates.Get(dealID)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get state for deal_id %d", dealID)
			if found {
				rt.Abortf(exitcode.ErrIllegalArgument, "deal %d already activated", dealID)
			}

			proposal, found, err := msm.dealProposals.Get(dealID)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get proposal for deal_id %d", dealID)
			if !found {
				rt.Abortf(exitcode.ErrNotFound, "no such deal_id: %d", dealID)
			}

			propc, err := proposal.Cid()
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to calculate proposal CID")

			// Confirm the deal is in the pending proposals set. It is
			// removed from that set later, during cron.
			has, err := msm.pendingDeals.Has(abi.CidKey(propc))
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get pending proposal %v", propc)
			if !has {
				rt.Abortf(exitcode.ErrIllegalState, "tried to activate deal that was not in the pending set (%s)", propc)
			}

			// Extract and remove any verified allocation ID for the
			// pending deal.
			allocation, err := msm.removePendingAllocation(dealID)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to remove pending allocation for deal %d", dealID)

			if allocation != verifreg.NoAllocationID {
				clientID, err := addr.IDFromAddress(proposal.Client)
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "client %v is not an ID address", proposal.Client)
				verifiedInfos = append(verifiedInfos, VerifiedDealInfo{
					Client:       abi.ActorID(clientID),
					AllocationID: allocation,
					Data:         proposal.PieceCID,
					Size:         proposal.PieceSize,
				})
			}

			err = msm.dealStates.Set(dealID, &DealState{
				SectorStartEpoch: currEpoch,
				LastUpdatedEpoch: EpochUndefined,
				SlashEpoch:       EpochUndefined,
				VerifiedClaim:    allocation,
			})
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to set deal state %d", dealID)
		}

		err = msm.commitState()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush state")
	})

	return &ActivateDealsResult{
		NonVerifiedDealSpace: nonVerifiedSpace,
		VerifiedInfos:        verifiedInfos,
	}
}

// Terminate a set of deals in response to their containing sector being
// terminated. Deals are only marked here; slashing provider collateral and
// releasing client funds happens in the next cron tick.
func (a Actor) OnMinerSectorsTerminate(rt Runtime, params *OnMinerSectorsTerminateParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.StorageMinerActorCodeID)
	minerAddr := rt.Caller()

	var st State
	rt.StateTransaction(&st, func() {
		msm, err := st.mutator(adt.AsStore(rt)).withDealStates(WritePermission).
			withDealProposals(ReadOnlyPermission).build()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load deal states")

		for _, dealID := range params.DealIDs {
			deal, found, err := msm.dealProposals.Get(dealID)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get deal proposal %d", dealID)
			// The deal may have expired and been deleted before the sector
			// is terminated. Nothing to do, but continue execution for the
			// other deals.
			if !found {
				rt.Log(rtt.INFO, "couldn't find deal %d", dealID)
				continue
			}
			builtin.RequireState(rt, deal.Provider == minerAddr, "caller %v is not the provider %v of deal %d", minerAddr, deal.Provider, dealID)

			// do not slash expired deals
			if deal.EndEpoch <= params.Epoch {
				rt.Log(rtt.INFO, "deal %d expired, not slashing", dealID)
				continue
			}

			state, found, err := msm.dealStates.Get(dealID)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get deal state %v", dealID)
			// A deal with a proposal but no state is not activated, but
			// then it should not be part of a sector that is terminating.
			builtin.RequireParam(rt, found, "no state for deal %v", dealID)

			// If a deal is already slashed, terminating it is a no-op.
			if state.SlashEpoch != EpochUndefined {
				rt.Log(rtt.INFO, "deal %d already slashed", dealID)
				continue
			}

			state.SlashEpoch = params.Epoch
			err = msm.dealStates.Set(dealID, state)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to set deal state %v", dealID)
		}

		err = msm.commitState()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush state")
	})
	return nil
}

// Computes the unsealed sector CID for the deals of each input sector.
func (a Actor) ComputeDataCommitment(rt Runtime, params *ComputeDataCommitmentParams) *ComputeDataCommitmentReturn {
	rt.ValidateImmediateCallerType(builtin.StorageMinerActorCodeID)

	var st State
	rt.StateReadonly(&st)
	proposals, err := AsDealProposalArray(adt.AsStore(rt), st.Proposals)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load deal proposals")

	commDs := make([]cbg.CborCid, len(params.Inputs))
	for i, commInput := range params.Inputs {
		commd := computeDataCommitment(rt, proposals, commInput.SectorType, commInput.DealIDs)
		commDs[i] = cbg.CborCid(commd)
	}

	return &ComputeDataCommitmentReturn{
		CommDs: commDs,
	}
}

func (a Actor) CronTick(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.CronActorAddr)
	amountSlashed := big.Zero()

	var st State
	rt.StateTransaction(&st, func() {
		updatesNeeded := make(map[abi.ChainEpoch][]abi.DealID)

		msm, err := st.mutator(adt.AsStore(rt)).withDealStates(WritePermission).
			withLockedTable(WritePermission).withEscrowTable(WritePermission).
			withDealsByEpoch(WritePermission).withDealProposals(WritePermission).
			withPendingProposals(WritePermission).withPendingAllocations(WritePermission).build()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load state")

		// Walk every epoch since the last tick; a missed invocation never
		// skips a scheduled deal.
		for i := st.LastCron + 1; i <= rt.CurrEpoch(); i++ {
			var extractedDealIDs []abi.DealID
			err = msm.dealsByEpoch.ForEach(abi.IntKey(int64(i)), func(dealID uint64) error {
				extractedDealIDs = append(extractedDealIDs, abi.DealID(dealID))
				return nil
			})
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to extract deal IDs")
			sort.Slice(extractedDealIDs, func(i, j int) bool { return extractedDealIDs[i] < extractedDealIDs[j] })

			for _, dealID := range extractedDealIDs {
				deal, found, err := msm.dealProposals.Get(dealID)
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get deal_id %d", dealID)
				if !found {
					rt.Abortf(exitcode.ErrNotFound, "proposal doesn't exist (%d)", dealID)
				}

				dcid, err := deal.Cid()
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to calculate cid for proposal %d", dealID)

				state, found, err := msm.dealStates.Get(dealID)
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get deal state")

				// Deal has been published but not activated yet: check for
				// timeout.
				if !found {
					builtin.RequireState(rt, rt.CurrEpoch() >= deal.StartEpoch, "deal %d processed before start epoch %d", dealID, deal.StartEpoch)

					slashed := msm.processDealInitTimedOut(rt, deal)
					if !slashed.IsZero() {
						amountSlashed = big.Add(amountSlashed, slashed)
					}

					// Delete the proposal (but not state, which doesn't
					// exist), the pending fingerprint and any allocation.
					err = msm.dealProposals.Delete(dealID)
					builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete deal proposal %d", dealID)

					err = msm.pendingDeals.Delete(abi.CidKey(dcid))
					builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete pending proposal %v", dcid)

					_, err = msm.removePendingAllocation(dealID)
					builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete pending allocation for deal %d", dealID)
					continue
				}

				// The deal was activated after publish; the pending
				// fingerprint is cleared on its first settlement.
				if state.LastUpdatedEpoch == EpochUndefined {
					err = msm.pendingDeals.Delete(abi.CidKey(dcid))
					builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete pending proposal %v", dcid)
				}

				slashAmount, nextEpoch, removeDeal := msm.updatePendingDealState(rt, dealID, state, deal, rt.CurrEpoch())
				builtin.RequireState(rt, !slashAmount.LessThan(big.Zero()), "computed negative slash amount %v for deal %d", slashAmount, dealID)

				if removeDeal {
					builtin.RequireState(rt, nextEpoch == EpochUndefined, "removed deal %d should have no scheduled epoch (got %d)", dealID, nextEpoch)
					amountSlashed = big.Add(amountSlashed, slashAmount)

					// Delete proposal and state simultaneously.
					err = msm.dealStates.Delete(dealID)
					builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete deal state %d", dealID)
					err = msm.dealProposals.Delete(dealID)
					builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete deal proposal %d", dealID)
				} else {
					builtin.RequireState(rt, nextEpoch > rt.CurrEpoch(), "continuing deal %d next epoch %d should be in the future", dealID, nextEpoch)
					builtin.RequireState(rt, slashAmount.IsZero(), "continuing deal %d should not be slashed", dealID)

					state.LastUpdatedEpoch = rt.CurrEpoch()
					err = msm.dealStates.Set(dealID, state)
					builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to set deal state")

					updatesNeeded[nextEpoch] = append(updatesNeeded[nextEpoch], dealID)
				}
			}

			err = msm.dealsByEpoch.RemoveAll(abi.IntKey(int64(i)))
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to delete deal ops for epoch %v", i)
		}

		// Reschedule continuing deals in deterministic epoch order.
		futureEpochs := make([]abi.ChainEpoch, 0, len(updatesNeeded))
		for epoch := range updatesNeeded {
			futureEpochs = append(futureEpochs, epoch)
		}
		sort.Slice(futureEpochs, func(i, j int) bool { return futureEpochs[i] < futureEpochs[j] })
		for _, epoch := range futureEpochs {
			for _, dealID := range updatesNeeded[epoch] {
				err = msm.dealsByEpoch.Put(abi.IntKey(int64(epoch)), uint64(dealID))
				builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to reinsert deal IDs for epoch %v", epoch)
			}
		}

		msm.st.LastCron = rt.CurrEpoch()

		err = msm.commitState()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush state")
	})

	// One burn for the whole batch.
	if !amountSlashed.IsZero() {
		e := rt.Send(builtin.BurntFundsActorAddr, builtin.MethodSend, nil, amountSlashed, &builtin.Discard{})
		builtin.RequireSuccess(rt, e, "expected send to burnt funds actor to succeed")
	}

	return nil
}

////////////////////////////////////////////////////////////////////////////////
// Read-only deal getters
////////////////////////////////////////////////////////////////////////////////

// Returns the data commitment and size of a deal proposal. This is
// available after the deal is published, whether or not it is activated,
// and up until some undefined period after it is terminated.
func (a Actor) GetDealDataCommitment(rt Runtime, params *DealQueryParams) *GetDealDataCommitmentReturn {
	rt.ValidateImmediateCallerAcceptAny()
	found := getProposal(rt, params.ID)
	return &GetDealDataCommitmentReturn{Data: found.PieceCID, Size: found.PieceSize}
}

func (a Actor) GetDealClient(rt Runtime, params *DealQueryParams) *GetDealClientReturn {
	rt.ValidateImmediateCallerAcceptAny()
	found := getProposal(rt, params.ID)
	clientID, err := addr.IDFromAddress(found.Client)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "client %v is not an ID address", found.Client)
	return &GetDealClientReturn{Client: abi.ActorID(clientID)}
}

func (a Actor) GetDealProvider(rt Runtime, params *DealQueryParams) *GetDealProviderReturn {
	rt.ValidateImmediateCallerAcceptAny()
	found := getProposal(rt, params.ID)
	providerID, err := addr.IDFromAddress(found.Provider)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "provider %v is not an ID address", found.Provider)
	return &GetDealProviderReturn{Provider: abi.ActorID(providerID)}
}

func (a Actor) GetDealLabel(rt Runtime, params *DealQueryParams) *GetDealLabelReturn {
	rt.ValidateImmediateCallerAcceptAny()
	found := getProposal(rt, params.ID)
	return &GetDealLabelReturn{Label: found.Label}
}

func (a Actor) GetDealTerm(rt Runtime, params *DealQueryParams) *GetDealTermReturn {
	rt.ValidateImmediateCallerAcceptAny()
	found := getProposal(rt, params.ID)
	return &GetDealTermReturn{Start: found.StartEpoch, Duration: found.Duration()}
}

func (a Actor) GetDealTotalPrice(rt Runtime, params *DealQueryParams) *GetDealTotalPriceReturn {
	rt.ValidateImmediateCallerAcceptAny()
	found := getProposal(rt, params.ID)
	return &GetDealTotalPriceReturn{TotalPrice: found.TotalStorageFee()}
}

func (a Actor) GetDealClientCollateral(rt Runtime, params *DealQueryParams) *GetDealClientCollateralReturn {
	rt.ValidateImmediateCallerAcceptAny()
	found := getProposal(rt, params.ID)
	return &GetDealClientCollateralReturn{Collateral: found.ClientCollateral}
}

func (a Actor) GetDealProviderCollateral(rt Runtime, params *DealQueryParams) *GetDealProviderCollateralReturn {
	rt.ValidateImmediateCallerAcceptAny()
	found := getProposal(rt, params.ID)
	return &GetDealProviderCollateralReturn{Collateral: found.ProviderCollateral}
}

// Note that the source of truth for verified allocations and claims is the
// verified registry actor, not this flag.
func (a Actor) GetDealVerified(rt Runtime, params *DealQueryParams) *GetDealVerifiedReturn {
	rt.ValidateImmediateCallerAcceptAny()
	found := getProposal(rt, params.ID)
	return &GetDealVerifiedReturn{Verified: found.VerifiedDeal}
}

// Fetches activation state for a deal, distinguishing "not yet activated"
// (undefined epochs), "activated/terminated" (real epochs), "cleaned up"
// (ErrDealExpired), and "never existed" (ErrNotFound).
func (a Actor) GetDealActivation(rt Runtime, params *DealQueryParams) *GetDealActivationReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)
	store := adt.AsStore(rt)

	states, err := AsDealStateArray(store, st.States)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load deal states")
	state, found, err := states.Get(params.ID)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get deal state %d", params.ID)
	if found {
		// If state exists, the deal has been activated. It may also have
		// completed or been terminated, but not yet been cleaned up.
		return &GetDealActivationReturn{
			Activated:  state.SectorStartEpoch,
			Terminated: state.SlashEpoch,
		}
	}

	proposals, err := AsDealProposalArray(store, st.Proposals)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load deal proposals")
	_, found, err = proposals.Get(params.ID)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get deal proposal %d", params.ID)
	if found {
		// Published but not activated.
		return &GetDealActivationReturn{
			Activated:  EpochUndefined,
			Terminated: EpochUndefined,
		}
	}

	if params.ID < st.NextID {
		// The deal ID has been used, so it must have been cleaned up.
		rt.Abortf(ErrDealExpired, "deal %d expired", params.ID)
	}
	rt.Abortf(exitcode.ErrNotFound, "no such deal %d", params.ID)
	return nil
}

func getProposal(rt Runtime, id abi.DealID) *DealProposal {
	var st State
	rt.StateReadonly(&st)

	proposals, err := AsDealProposalArray(adt.AsStore(rt), st.Proposals)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load deal proposals")
	proposal, found, err := proposals.Get(id)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get deal proposal %d", id)
	if !found {
		if id < st.NextID {
			rt.Abortf(ErrDealExpired, "deal %d expired", id)
		}
		rt.Abortf(exitcode.ErrNotFound, "no such deal %d", id)
	}
	return proposal
}

////////////////////////////////////////////////////////////////////////////////
// Helper functions
////////////////////////////////////////////////////////////////////////////////

// Resolves a provider or client address to the canonical form against which
// a balance is held, and the designated recipient and set of authorized
// callers for withdrawals.
func escrowAddress(rt Runtime, address addr.Address) (nominal addr.Address, recipient addr.Address, approved []addr.Address) {
	resolved, ok := rt.ResolveAddress(address)
	builtin.RequireParam(rt, ok, "failed to resolve address %v", address)

	codeID, ok := rt.GetActorCodeCID(resolved)
	builtin.RequireParam(rt, ok, "no code for address %v", resolved)

	if codeID.Equals(builtin.StorageMinerActorCodeID) {
		// Storage miner actor entry; implied funds recipient is the associated owner address.
		ownerAddr, workerAddr, _ := requestMinerControlAddrs(rt, resolved)
		return resolved, ownerAddr, []addr.Address{ownerAddr, workerAddr}
	}

	return resolved, resolved, []addr.Address{resolved}
}

func requestMinerControlAddrs(rt Runtime, minerAddr addr.Address) (owner addr.Address, worker addr.Address, controlAddrs []addr.Address) {
	var addrs miner.GetControlAddressesReturn
	code := rt.Send(minerAddr, builtin.MethodsMiner.ControlAddresses, nil, abi.NewTokenAmount(0), &addrs)
	builtin.RequireSuccess(rt, code, "failed fetching control addresses")
	return addrs.Owner, addrs.Worker, addrs.ControlAddrs
}

// Requests the current epoch target block reward from the reward actor.
func requestCurrentBaselinePower(rt Runtime) abi.StoragePower {
	var ret reward.ThisEpochRewardReturn
	code := rt.Send(builtin.RewardActorAddr, builtin.MethodsReward.ThisEpochReward, nil, big.Zero(), &ret)
	builtin.RequireSuccess(rt, code, "failed to check epoch baseline power")
	return ret.ThisEpochBaselinePower
}

// Requests the current network total raw byte power from the power actor.
func requestCurrentNetworkPower(rt Runtime) abi.StoragePower {
	var pwr power.CurrentTotalPowerReturn
	code := rt.Send(builtin.StoragePowerActorAddr, builtin.MethodsPower.CurrentTotalPower, nil, big.Zero(), &pwr)
	builtin.RequireSuccess(rt, code, "failed to check current power")
	return pwr.RawBytePower
}

// Requests a client's current datacap token balance.
func requestDatacapBalance(rt Runtime, client addr.Address) abi.TokenAmount {
	var balance abi.TokenAmount
	code := rt.Send(builtin.DatacapActorAddr, builtin.MethodsDatacap.BalanceExported, &client, big.Zero(), &balance)
	builtin.RequireSuccess(rt, code, "failed to query datacap balance of %v", client)
	return balance
}

// Transfers datacap from a client to the verified registry, carrying a
// batch of allocation requests. Returns the allocation IDs created by the
// registry.
func transferDataCap(rt Runtime, client addr.Address, reqs []verifreg.AllocationRequest) []verifreg.AllocationID {
	datacapRequired := big.Zero()
	for _, req := range reqs {
		datacapRequired = big.Add(datacapRequired, datacap.BalanceOf(req.Size))
	}

	operatorData := new(bytes.Buffer)
	err := (&verifreg.AllocationRequests{Allocations: reqs}).MarshalCBOR(operatorData)
	builtin.RequireNoErr(rt, err, exitcode.ErrSerialization, "failed to serialize allocation requests")

	params := &datacap.TransferFromParams{
		From:         client,
		To:           builtin.VerifiedRegistryActorAddr,
		Amount:       datacapRequired,
		OperatorData: operatorData.Bytes(),
	}
	var ret datacap.TransferFromReturn
	code := rt.Send(builtin.DatacapActorAddr, builtin.MethodsDatacap.TransferFromExported, params, big.Zero(), &ret)
	builtin.RequireSuccess(rt, code, "failed to transfer datacap from client %v", client)

	var response verifreg.AllocationsResponse
	err = response.UnmarshalCBOR(bytes.NewReader(ret.RecipientData))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to decode allocations response")
	return response.NewAllocations
}

// allocationRequestForDeal builds the allocation request backing a verified
// deal.
func allocationRequestForDeal(proposal *DealProposal, currEpoch abi.ChainEpoch) verifreg.AllocationRequest {
	providerID, err := addr.IDFromAddress(proposal.Provider)
	if err != nil {
		// The provider was resolved to ID form during validation.
		panic(err)
	}
	termMin := proposal.Duration()
	termMax := termMin + MarketDefaultAllocationTermBuffer
	if termMax > MaximumVerifiedAllocationTerm {
		termMax = MaximumVerifiedAllocationTerm
	}
	expiration := currEpoch + MaximumVerifiedAllocationExpiration
	if proposal.StartEpoch < expiration {
		expiration = proposal.StartEpoch
	}
	return verifreg.AllocationRequest{
		Provider:   abi.ActorID(providerID),
		Data:       proposal.PieceCID,
		Size:       proposal.PieceSize,
		TermMin:    termMin,
		TermMax:    termMax,
		Expiration: expiration,
	}
}

// validateDealsForActivation checks a batch of deals against a sector's
// properties, returning the non-verified and verified deal space. If
// sectorSize is provided, the deals' combined size must fit it.
func validateDealsForActivation(proposals *DealArray, dealIDs []abi.DealID, minerAddr addr.Address,
	sectorExpiry, sectorActivation abi.ChainEpoch, sectorSize *abi.SectorSize) (big.Int, big.Int, error) {

	seenDealIDs := make(map[abi.DealID]struct{}, len(dealIDs))
	dealSpace := big.Zero()
	verifiedDealSpace := big.Zero()
	for _, dealID := range dealIDs {
		if _, seen := seenDealIDs[dealID]; seen {
			return big.Int{}, big.Int{}, exitcode.ErrIllegalArgument.Wrapf("deal ID %d present multiple times", dealID)
		}
		seenDealIDs[dealID] = struct{}{}

		proposal, found, err := proposals.Get(dealID)
		if err != nil {
			return big.Int{}, big.Int{}, xerrors.Errorf("failed to load deal %d: %w", dealID, err)
		}
		if !found {
			return big.Int{}, big.Int{}, exitcode.ErrNotFound.Wrapf("no such deal %d", dealID)
		}
		if err = validateDealCanActivate(proposal, minerAddr, sectorExpiry, sectorActivation); err != nil {
			return big.Int{}, big.Int{}, xerrors.Errorf("cannot activate deal %d: %w", dealID, err)
		}

		if proposal.VerifiedDeal {
			verifiedDealSpace = big.Add(verifiedDealSpace, big.NewIntUnsigned(uint64(proposal.PieceSize)))
		} else {
			dealSpace = big.Add(dealSpace, big.NewIntUnsigned(uint64(proposal.PieceSize)))
		}
	}
	if sectorSize != nil {
		totalDealSpace := big.Add(dealSpace, verifiedDealSpace)
		if totalDealSpace.GreaterThan(big.NewIntUnsigned(uint64(*sectorSize))) {
			return big.Int{}, big.Int{}, exitcode.ErrIllegalArgument.Wrapf("deals too large to fit in sector %v > %v", totalDealSpace, *sectorSize)
		}
	}
	return dealSpace, verifiedDealSpace, nil
}

func validateDealCanActivate(proposal *DealProposal, minerAddr addr.Address, sectorExpiration, sectorActivation abi.ChainEpoch) error {
	if proposal.Provider != minerAddr {
		return exitcode.ErrForbidden.Wrapf("proposal has provider %v, must be %v", proposal.Provider, minerAddr)
	}
	if sectorActivation > proposal.StartEpoch {
		return exitcode.ErrIllegalArgument.Wrapf("proposal start epoch %d has already elapsed at %d", proposal.StartEpoch, sectorActivation)
	}
	if proposal.EndEpoch > sectorExpiration {
		return exitcode.ErrIllegalArgument.Wrapf("proposal expiration %d exceeds sector expiration %d", proposal.EndEpoch, sectorExpiration)
	}
	return nil
}

func computeDataCommitment(rt Runtime, proposals *DealArray, sectorType abi.RegisteredSealProof, dealIDs []abi.DealID) cid.Cid {
	pieces := make([]abi.PieceInfo, 0, len(dealIDs))
	for _, dealID := range dealIDs {
		deal, found, err := proposals.Get(dealID)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to get deal %d", dealID)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "proposal doesn't exist (%d)", dealID)
		}
		pieces = append(pieces, abi.PieceInfo{
			PieceCID: deal.PieceCID,
			Size:     deal.PieceSize,
		})
	}
	commd, err := rt.ComputeUnsealedSectorCID(sectorType, pieces)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to compute unsealed sector CID")
	return commd
}

// validateDeal runs every check on a proposal that needs no market state:
// client signature authentication (a cross-actor call), well-formedness,
// and the policy bounds. A failure rejects only this proposal.
func validateDeal(rt Runtime, deal ClientDealProposal, networkRawPower, baselinePower abi.StoragePower) error {
	if err := dealProposalIsInternallyValid(rt, deal); err != nil {
		return err
	}

	proposal := deal.Proposal

	if proposal.Label.Length() > DealMaxLabelSize {
		return xerrors.Errorf("deal label can be at most %d bytes, is %d", DealMaxLabelSize, proposal.Label.Length())
	}

	if err := proposal.PieceSize.Validate(); err != nil {
		return xerrors.Errorf("proposal piece size is invalid: %w", err)
	}

	if !proposal.PieceCID.Defined() {
		return xerrors.Errorf("proposal PieceCID undefined")
	}

	if proposal.PieceCID.Prefix() != PieceCIDPrefix {
		return xerrors.Errorf("proposal PieceCID had wrong prefix")
	}

	if proposal.EndEpoch <= proposal.StartEpoch {
		return xerrors.Errorf("proposal end before proposal start")
	}

	if rt.CurrEpoch() > proposal.StartEpoch {
		return xerrors.Errorf("deal start epoch has already elapsed")
	}

	minDuration, maxDuration := DealDurationBounds(proposal.PieceSize)
	if proposal.Duration() < minDuration || proposal.Duration() > maxDuration {
		return xerrors.Errorf("deal duration out of bounds")
	}

	minPrice, maxPrice := DealPricePerEpochBounds(proposal.PieceSize, proposal.Duration())
	if proposal.StoragePricePerEpoch.LessThan(minPrice) || proposal.StoragePricePerEpoch.GreaterThan(maxPrice) {
		return xerrors.Errorf("storage price out of bounds")
	}

	minProviderCollateral, maxProviderCollateral := DealProviderCollateralBounds(proposal.PieceSize, proposal.VerifiedDeal,
		networkRawPower, baselinePower, rt.TotalFilCircSupply())
	if proposal.ProviderCollateral.LessThan(minProviderCollateral) || proposal.ProviderCollateral.GreaterThan(maxProviderCollateral) {
		return xerrors.Errorf("provider collateral out of bounds")
	}

	minClientCollateral, maxClientCollateral := DealClientCollateralBounds(proposal.PieceSize, proposal.Duration())
	if proposal.ClientCollateral.LessThan(minClientCollateral) || proposal.ClientCollateral.GreaterThan(maxClientCollateral) {
		return xerrors.Errorf("client collateral out of bounds")
	}
	return nil
}

// dealProposalIsInternallyValid asks the client actor to authenticate the
// client's signature over the proposal bytes.
func dealProposalIsInternallyValid(rt Runtime, deal ClientDealProposal) error {
	buf := bytes.Buffer{}
	if err := deal.Proposal.MarshalCBOR(&buf); err != nil {
		return xerrors.Errorf("failed to serialize proposal: %w", err)
	}

	code := rt.Send(
		deal.Proposal.Client,
		builtin.MethodsAccount.AuthenticateMessageExported,
		&account.AuthenticateMessageParams{
			Signature: deal.ClientSignature.Data,
			Message:   buf.Bytes(),
		},
		abi.NewTokenAmount(0),
		&builtin.Discard{},
	)
	if !code.IsSuccess() {
		return xerrors.Errorf("proposal authentication failed: exit code %d", code)
	}
	return nil
}
