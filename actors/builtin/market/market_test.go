package market_test

import (
	"bytes"
	"strings"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/crypto"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/market-actors/actors/builtin"
	"github.com/filecoin-project/market-actors/actors/builtin/account"
	"github.com/filecoin-project/market-actors/actors/builtin/datacap"
	"github.com/filecoin-project/market-actors/actors/builtin/market"
	"github.com/filecoin-project/market-actors/actors/builtin/miner"
	"github.com/filecoin-project/market-actors/actors/builtin/power"
	"github.com/filecoin-project/market-actors/actors/builtin/reward"
	"github.com/filecoin-project/market-actors/actors/builtin/verifreg"
	"github.com/filecoin-project/market-actors/actors/util/adt"
	"github.com/filecoin-project/market-actors/support/mock"
	tutil "github.com/filecoin-project/market-actors/support/testing"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, market.Actor{})
}

func TestMarketActor(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	provider := tutil.NewIDAddr(t, 102)
	worker := tutil.NewIDAddr(t, 103)
	client := tutil.NewIDAddr(t, 104)

	t.Run("simple construction", func(t *testing.T) {
		actor := market.Actor{}
		receiver := tutil.NewIDAddr(t, 100)
		builder := mock.NewBuilder(receiver).
			WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)

		rt := builder.Build(t)

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		ret := rt.Call(actor.Constructor, nil).(*abi.EmptyValue)
		assert.Nil(t, ret)
		rt.Verify()

		store := rt.AdtStore()

		var state market.State
		rt.GetState(&state)

		assert.Equal(t, market.EpochUndefined, state.LastCron)
		assert.Equal(t, abi.DealID(0), state.NextID)
		assert.True(t, state.TotalClientLockedCollateral.IsZero())
		assert.True(t, state.TotalProviderLockedCollateral.IsZero())
		assert.True(t, state.TotalClientStorageFee.IsZero())

		proposals, err := market.AsDealProposalArray(store, state.Proposals)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), proposals.Length())
	})

	t.Run("add balance for client", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)

		amount := abi.NewTokenAmount(20)
		h.addParticipantFunds(rt, client, amount)

		h.assertEscrowBalance(rt, client, amount)
		h.assertLockedBalance(rt, client, big.Zero())
		h.checkState(rt)
	})

	t.Run("add balance for provider credits the miner actor", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)

		amount := abi.NewTokenAmount(1000)
		h.addProviderFunds(rt, amount)

		h.assertEscrowBalance(rt, provider, amount)
		h.checkState(rt)
	})

	t.Run("add balance rejects zero value", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)

		rt.SetCaller(client, builtin.AccountActorCodeID)
		rt.SetReceived(big.Zero())
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.AddBalance, &client)
		})
		rt.Verify()
	})

	t.Run("withdraw client balance", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		h.addParticipantFunds(rt, client, abi.NewTokenAmount(20))

		h.withdrawClientBalance(rt, client, abi.NewTokenAmount(5), abi.NewTokenAmount(5))

		h.assertEscrowBalance(rt, client, abi.NewTokenAmount(15))
		h.checkState(rt)
	})

	t.Run("withdraw more than escrow yields entire balance", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		h.addParticipantFunds(rt, client, abi.NewTokenAmount(20))

		h.withdrawClientBalance(rt, client, abi.NewTokenAmount(100), abi.NewTokenAmount(20))

		h.assertEscrowBalance(rt, client, big.Zero())
		h.checkState(rt)
	})

	t.Run("withdraw negative amount is rejected", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		h.addParticipantFunds(rt, client, abi.NewTokenAmount(20))

		params := market.WithdrawBalanceParams{
			ProviderOrClientAddress: client,
			Amount:                  abi.NewTokenAmount(-1),
		}
		rt.SetCaller(client, builtin.AccountActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.WithdrawBalance, &params)
		})
		rt.Verify()
	})

	t.Run("withdraw provider balance pays the owner", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		h.addProviderFunds(rt, abi.NewTokenAmount(100))

		withdrawal := abi.NewTokenAmount(40)
		rt.SetCaller(worker, builtin.AccountActorCodeID)
		h.expectProviderControlAddresses(rt)
		rt.ExpectValidateCallerAddr(owner, worker)
		rt.ExpectSend(owner, builtin.MethodSend, nil, withdrawal, nil, exitcode.Ok)

		params := market.WithdrawBalanceParams{
			ProviderOrClientAddress: provider,
			Amount:                  withdrawal,
		}
		ret := rt.Call(h.WithdrawBalance, &params).(*market.WithdrawBalanceReturn)
		rt.Verify()

		assert.Equal(t, withdrawal, ret.AmountWithdrawn)
		h.assertEscrowBalance(rt, provider, abi.NewTokenAmount(60))
		h.checkState(rt)
	})

	t.Run("withdraw is limited by locked funds", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		h.publishDeals(rt, deal)

		// Everything is locked, so nothing can leave.
		h.withdrawClientBalance(rt, client, abi.NewTokenAmount(100), big.Zero())
		h.checkState(rt)
	})

	t.Run("get balance", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		h.addParticipantFunds(rt, client, abi.NewTokenAmount(25))

		rt.SetCaller(client, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.GetBalance, &client).(*market.GetBalanceReturn)
		rt.Verify()

		assert.Equal(t, abi.NewTokenAmount(25), ret.Balance)
		assert.True(t, ret.Locked.IsZero())
	})
}

func TestPublishStorageDeals(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	provider := tutil.NewIDAddr(t, 102)
	worker := tutil.NewIDAddr(t, 103)
	client := tutil.NewIDAddr(t, 104)

	t.Run("publish a deal", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)

		dealIDs := h.publishDeals(rt, deal)
		require.Len(t, dealIDs, 1)

		proposal := h.getDealProposal(rt, dealIDs[0])
		assert.True(t, proposal.PieceCID.Equals(deal.Proposal.PieceCID))
		assert.Equal(t, client, proposal.Client)
		assert.Equal(t, provider, proposal.Provider)

		// Client and provider funds are locked.
		h.assertLockedBalance(rt, client, deal.Proposal.ClientBalanceRequirement())
		h.assertLockedBalance(rt, provider, deal.Proposal.ProviderCollateral)

		// The deal is scheduled at its own slot of the update cycle.
		var st market.State
		rt.GetState(&st)
		scheduled := market.NextUpdateEpoch(dealIDs[0], market.DealUpdatesInterval, proposal.StartEpoch)
		h.assertDealOpAt(rt, scheduled, dealIDs[0])

		h.checkState(rt)
	})

	t.Run("assigns sequential deal ids", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal1 := h.generateDealAndAddFunds(rt, client, 10000)
		deal2 := h.generateDealAndAddFunds(rt, client, 10050)

		dealIDs := h.publishDeals(rt, deal1, deal2)
		require.Len(t, dealIDs, 2)
		assert.Equal(t, dealIDs[0]+1, dealIDs[1])
		h.checkState(rt)
	})

	t.Run("drops an invalid deal and keeps the rest", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		goodDeal := h.generateDealAndAddFunds(rt, client, 10000)
		badDeal := h.generateDealAndAddFunds(rt, client, 10050)
		badDeal.Proposal.EndEpoch = badDeal.Proposal.StartEpoch // zero duration

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)
		h.expectQueryNetworkInfo(rt)
		h.expectAuthenticate(rt, goodDeal, exitcode.Ok)
		h.expectAuthenticate(rt, badDeal, exitcode.Ok)

		var st market.State
		rt.GetState(&st)
		h.expectNotify(rt, goodDeal.Proposal, st.NextID, exitcode.Ok)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{goodDeal, badDeal}}
		ret := rt.Call(h.PublishStorageDeals, &params).(*market.PublishStorageDealsReturn)
		rt.Verify()

		require.Len(t, ret.IDs, 1)
		valid, err := ret.ValidDeals.All(2)
		require.NoError(t, err)
		assert.Equal(t, []uint64{0}, valid)
		h.checkState(rt)
	})

	t.Run("drops a deal with a failed signature authentication", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		goodDeal := h.generateDealAndAddFunds(rt, client, 10000)
		badDeal := h.generateDealAndAddFunds(rt, client, 10050)

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)
		h.expectQueryNetworkInfo(rt)
		h.expectAuthenticate(rt, goodDeal, exitcode.Ok)
		h.expectAuthenticate(rt, badDeal, exitcode.ErrForbidden)

		var st market.State
		rt.GetState(&st)
		h.expectNotify(rt, goodDeal.Proposal, st.NextID, exitcode.Ok)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{goodDeal, badDeal}}
		ret := rt.Call(h.PublishStorageDeals, &params).(*market.PublishStorageDealsReturn)
		rt.Verify()

		require.Len(t, ret.IDs, 1)
		h.checkState(rt)
	})

	t.Run("drops duplicate deals in a batch", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)
		h.expectQueryNetworkInfo(rt)
		h.expectAuthenticate(rt, deal, exitcode.Ok)
		h.expectAuthenticate(rt, deal, exitcode.Ok)

		var st market.State
		rt.GetState(&st)
		h.expectNotify(rt, deal.Proposal, st.NextID, exitcode.Ok)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{deal, deal}}
		ret := rt.Call(h.PublishStorageDeals, &params).(*market.PublishStorageDealsReturn)
		rt.Verify()

		require.Len(t, ret.IDs, 1)
		valid, err := ret.ValidDeals.All(2)
		require.NoError(t, err)
		assert.Equal(t, []uint64{0}, valid)
		h.checkState(rt)
	})

	t.Run("drops a deal the client cannot afford", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		funded := h.generateDealAndAddFunds(rt, client, 10000)
		// A second deal with no additional client funds behind it.
		unfunded := h.generateDealProposal(client, 10050)
		h.addProviderFunds(rt, unfunded.Proposal.ProviderCollateral)

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)
		h.expectQueryNetworkInfo(rt)
		h.expectAuthenticate(rt, funded, exitcode.Ok)
		h.expectAuthenticate(rt, unfunded, exitcode.Ok)

		var st market.State
		rt.GetState(&st)
		h.expectNotify(rt, funded.Proposal, st.NextID, exitcode.Ok)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{funded, unfunded}}
		ret := rt.Call(h.PublishStorageDeals, &params).(*market.PublishStorageDealsReturn)
		rt.Verify()

		require.Len(t, ret.IDs, 1)
		h.checkState(rt)
	})

	t.Run("fails when all deals are invalid", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		deal.Proposal.EndEpoch = deal.Proposal.StartEpoch

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)
		h.expectQueryNetworkInfo(rt)
		h.expectAuthenticate(rt, deal, exitcode.Ok)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{deal}}
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.PublishStorageDeals, &params)
		})
		rt.Verify()
	})

	t.Run("fails when caller is not worker or control address", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)

		rando := tutil.NewIDAddr(t, 555)
		rt.SetCaller(rando, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{deal}}
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.PublishStorageDeals, &params)
		})
		rt.Verify()
	})

	t.Run("fails when provider is not a storage miner actor", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		deal.Proposal.Provider = client

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{deal}}
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.PublishStorageDeals, &params)
		})
		rt.Verify()
	})

	t.Run("aborts when client notification fails", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)
		h.expectQueryNetworkInfo(rt)
		h.expectAuthenticate(rt, deal, exitcode.Ok)

		var st market.State
		rt.GetState(&st)
		h.expectNotify(rt, deal.Proposal, st.NextID, exitcode.ErrIllegalArgument)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{deal}}
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.PublishStorageDeals, &params)
		})
		rt.Verify()
	})
}

func TestPublishVerifiedDeals(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	provider := tutil.NewIDAddr(t, 102)
	worker := tutil.NewIDAddr(t, 103)
	client := tutil.NewIDAddr(t, 104)

	t.Run("publishes a verified deal with one datacap transfer", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		deal.Proposal.VerifiedDeal = true

		allocationID := verifreg.AllocationID(42)

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)
		h.expectQueryNetworkInfo(rt)
		h.expectAuthenticate(rt, deal, exitcode.Ok)
		h.expectDatacapBalance(rt, client, datacap.BalanceOf(deal.Proposal.PieceSize))
		h.expectDatacapTransfer(rt, client, []market.DealProposal{deal.Proposal}, []verifreg.AllocationID{allocationID}, exitcode.Ok)

		var st market.State
		rt.GetState(&st)
		dealID := st.NextID
		h.expectNotify(rt, deal.Proposal, dealID, exitcode.Ok)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{deal}}
		ret := rt.Call(h.PublishStorageDeals, &params).(*market.PublishStorageDealsReturn)
		rt.Verify()

		require.Len(t, ret.IDs, 1)
		assert.Equal(t, allocationID, h.getPendingAllocation(rt, ret.IDs[0]))
		h.checkState(rt)
	})

	t.Run("drops a verified deal beyond the client's datacap", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal1 := h.generateDealAndAddFunds(rt, client, 10000)
		deal1.Proposal.VerifiedDeal = true
		deal2 := h.generateDealAndAddFunds(rt, client, 10050)
		deal2.Proposal.VerifiedDeal = true

		allocationID := verifreg.AllocationID(7)

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)
		h.expectQueryNetworkInfo(rt)
		h.expectAuthenticate(rt, deal1, exitcode.Ok)
		// The balance is queried once and covers only the first deal.
		h.expectDatacapBalance(rt, client, datacap.BalanceOf(deal1.Proposal.PieceSize))
		h.expectAuthenticate(rt, deal2, exitcode.Ok)
		h.expectDatacapTransfer(rt, client, []market.DealProposal{deal1.Proposal}, []verifreg.AllocationID{allocationID}, exitcode.Ok)

		var st market.State
		rt.GetState(&st)
		h.expectNotify(rt, deal1.Proposal, st.NextID, exitcode.Ok)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{deal1, deal2}}
		ret := rt.Call(h.PublishStorageDeals, &params).(*market.PublishStorageDealsReturn)
		rt.Verify()

		require.Len(t, ret.IDs, 1)
		valid, err := ret.ValidDeals.All(2)
		require.NoError(t, err)
		assert.Equal(t, []uint64{0}, valid)
		h.checkState(rt)
	})

	t.Run("fails when the registry returns the wrong allocation count", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		deal.Proposal.VerifiedDeal = true

		rt.SetCaller(worker, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		h.expectProviderControlAddresses(rt)
		h.expectQueryNetworkInfo(rt)
		h.expectAuthenticate(rt, deal, exitcode.Ok)
		h.expectDatacapBalance(rt, client, datacap.BalanceOf(deal.Proposal.PieceSize))
		h.expectDatacapTransfer(rt, client, []market.DealProposal{deal.Proposal}, nil, exitcode.Ok)

		params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{deal}}
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.PublishStorageDeals, &params)
		})
		rt.Verify()
	})
}

func TestActivateDeals(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	provider := tutil.NewIDAddr(t, 102)
	worker := tutil.NewIDAddr(t, 103)
	client := tutil.NewIDAddr(t, 104)

	sectorExpiry := abi.ChainEpoch(10000 + 600*builtin.EpochsInDay)

	t.Run("activates a published deal", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)

		currEpoch := abi.ChainEpoch(5000)
		rt.SetEpoch(currEpoch)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		state := h.getDealState(rt, dealIDs[0])
		assert.Equal(t, currEpoch, state.SectorStartEpoch)
		assert.Equal(t, market.EpochUndefined, state.LastUpdatedEpoch)
		assert.Equal(t, market.EpochUndefined, state.SlashEpoch)
		h.checkState(rt)
	})

	t.Run("activating twice fails", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)

		h.activateDeals(rt, sectorExpiry, dealIDs...)

		rt.SetCaller(provider, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.ActivateDeals, &market.ActivateDealsParams{DealIDs: dealIDs, SectorExpiry: sectorExpiry})
		})
		rt.Verify()
	})

	t.Run("unknown deal fails", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)

		rt.SetCaller(provider, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.ActivateDeals, &market.ActivateDealsParams{DealIDs: []abi.DealID{99}, SectorExpiry: sectorExpiry})
		})
		rt.Verify()
	})

	t.Run("wrong provider fails", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)

		otherMiner := tutil.NewIDAddr(t, 555)
		rt.SetAddressActorType(otherMiner, builtin.StorageMinerActorCodeID)
		rt.SetCaller(otherMiner, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.ActivateDeals, &market.ActivateDealsParams{DealIDs: dealIDs, SectorExpiry: sectorExpiry})
		})
		rt.Verify()
	})

	t.Run("activating a verified deal claims its allocation", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		deal.Proposal.VerifiedDeal = true
		allocationID := verifreg.AllocationID(42)
		dealIDs := h.publishVerifiedDeal(rt, deal, allocationID)

		rt.SetCaller(provider, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		ret := rt.Call(h.ActivateDeals, &market.ActivateDealsParams{DealIDs: dealIDs, SectorExpiry: sectorExpiry}).(*market.ActivateDealsResult)
		rt.Verify()

		require.Len(t, ret.VerifiedInfos, 1)
		assert.Equal(t, allocationID, ret.VerifiedInfos[0].AllocationID)
		assert.Equal(t, abi.ActorID(104), ret.VerifiedInfos[0].Client)
		assert.True(t, ret.NonVerifiedDealSpace.IsZero())

		state := h.getDealState(rt, dealIDs[0])
		assert.Equal(t, allocationID, state.VerifiedClaim)
		assert.Equal(t, verifreg.NoAllocationID, h.getPendingAllocation(rt, dealIDs[0]))
		h.checkState(rt)
	})
}

func TestOnMinerSectorsTerminate(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	provider := tutil.NewIDAddr(t, 102)
	worker := tutil.NewIDAddr(t, 103)
	client := tutil.NewIDAddr(t, 104)

	sectorExpiry := abi.ChainEpoch(10000 + 600*builtin.EpochsInDay)

	t.Run("marks deals as slashed", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		terminateEpoch := abi.ChainEpoch(11000)
		rt.SetEpoch(terminateEpoch)
		h.terminateDeals(rt, terminateEpoch, dealIDs...)

		state := h.getDealState(rt, dealIDs[0])
		assert.Equal(t, terminateEpoch, state.SlashEpoch)
		h.checkState(rt)
	})

	t.Run("termination is idempotent", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		rt.SetEpoch(11000)
		h.terminateDeals(rt, 11000, dealIDs...)
		h.terminateDeals(rt, 12000, dealIDs...)

		// The first termination epoch sticks.
		state := h.getDealState(rt, dealIDs[0])
		assert.Equal(t, abi.ChainEpoch(11000), state.SlashEpoch)
		h.checkState(rt)
	})

	t.Run("missing deals are ignored", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		rt.SetEpoch(11000)
		h.terminateDeals(rt, 11000, dealIDs[0], abi.DealID(500))
		h.checkState(rt)
	})

	t.Run("expired deals are not slashed", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		endEpoch := deal.Proposal.EndEpoch
		rt.SetEpoch(endEpoch + 1)
		h.terminateDeals(rt, endEpoch+1, dealIDs...)

		state := h.getDealState(rt, dealIDs[0])
		assert.Equal(t, market.EpochUndefined, state.SlashEpoch)
		h.checkState(rt)
	})

	t.Run("fails for deals of another provider", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		otherMiner := tutil.NewIDAddr(t, 555)
		rt.SetAddressActorType(otherMiner, builtin.StorageMinerActorCodeID)
		rt.SetCaller(otherMiner, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.OnMinerSectorsTerminate, &market.OnMinerSectorsTerminateParams{Epoch: 11000, DealIDs: dealIDs})
		})
		rt.Verify()
	})

	t.Run("fails for a published but never activated deal", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)

		rt.SetCaller(provider, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.OnMinerSectorsTerminate, &market.OnMinerSectorsTerminateParams{Epoch: 11000, DealIDs: dealIDs})
		})
		rt.Verify()
	})
}

func TestVerifyDealsForActivation(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	provider := tutil.NewIDAddr(t, 102)
	worker := tutil.NewIDAddr(t, 103)
	client := tutil.NewIDAddr(t, 104)

	sectorExpiry := abi.ChainEpoch(10000 + 600*builtin.EpochsInDay)
	sectorType := abi.RegisteredSealProof_StackedDrg8MiBV1_1

	t.Run("returns the unsealed CID for a sector with deals", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)

		commD := tutil.MakeCID("commd", &market.PieceCIDPrefix)
		rt.SetCaller(provider, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		rt.ExpectComputeUnsealedSectorCID(sectorType, []abi.PieceInfo{
			{PieceCID: deal.Proposal.PieceCID, Size: deal.Proposal.PieceSize},
		}, commD, nil)

		params := market.VerifyDealsForActivationParams{Sectors: []market.SectorDeals{
			{SectorType: sectorType, SectorExpiry: sectorExpiry, DealIDs: dealIDs},
		}}
		ret := rt.Call(h.VerifyDealsForActivation, &params).(*market.VerifyDealsForActivationReturn)
		rt.Verify()

		require.Len(t, ret.Sectors, 1)
		require.NotNil(t, ret.Sectors[0].CommD)
		assert.True(t, commD.Equals(*ret.Sectors[0].CommD))
	})

	t.Run("a sector with no deals has no commitment", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)

		rt.SetCaller(provider, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		params := market.VerifyDealsForActivationParams{Sectors: []market.SectorDeals{
			{SectorType: sectorType, SectorExpiry: sectorExpiry},
		}}
		ret := rt.Call(h.VerifyDealsForActivation, &params).(*market.VerifyDealsForActivationReturn)
		rt.Verify()

		require.Len(t, ret.Sectors, 1)
		assert.Nil(t, ret.Sectors[0].CommD)
	})

	t.Run("fails when deals exceed sector expiry", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)

		rt.SetCaller(provider, builtin.StorageMinerActorCodeID)
		rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
		params := market.VerifyDealsForActivationParams{Sectors: []market.SectorDeals{
			{SectorType: sectorType, SectorExpiry: deal.Proposal.EndEpoch - 1, DealIDs: dealIDs},
		}}
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.VerifyDealsForActivation, &params)
		})
		rt.Verify()
	})
}

func TestCronTick(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	provider := tutil.NewIDAddr(t, 102)
	worker := tutil.NewIDAddr(t, 103)
	client := tutil.NewIDAddr(t, 104)

	startEpoch := abi.ChainEpoch(10000)
	sectorExpiry := startEpoch + 600*builtin.EpochsInDay

	t.Run("an empty tick only updates the cron marker", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)

		rt.SetEpoch(100)
		h.cronTick(rt)

		var st market.State
		rt.GetState(&st)
		assert.Equal(t, abi.ChainEpoch(100), st.LastCron)
		h.checkState(rt)
	})

	t.Run("a deal not activated by its start is timed out", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, startEpoch)
		dealIDs := h.publishDeals(rt, deal)

		scheduled := market.NextUpdateEpoch(dealIDs[0], market.DealUpdatesInterval, startEpoch)
		rt.SetEpoch(scheduled)
		rt.ExpectSend(builtin.BurntFundsActorAddr, builtin.MethodSend, nil, deal.Proposal.ProviderCollateral, nil, exitcode.Ok)
		h.cronTick(rt)

		// Client funds are released in full; the provider forfeits collateral.
		h.assertEscrowBalance(rt, client, deal.Proposal.ClientBalanceRequirement())
		h.assertLockedBalance(rt, client, big.Zero())
		h.assertEscrowBalance(rt, provider, big.Zero())
		h.assertDealDeleted(rt, dealIDs[0])
		h.checkState(rt)
	})

	t.Run("an active deal pays the provider each settlement", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, startEpoch)
		dealIDs := h.publishDeals(rt, deal)

		rt.SetEpoch(5000)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		settlement := market.NextUpdateEpoch(dealIDs[0], market.DealUpdatesInterval, startEpoch)
		rt.SetEpoch(settlement)
		h.cronTick(rt)

		payment := big.Mul(big.NewInt(int64(settlement-startEpoch)), deal.Proposal.StoragePricePerEpoch)
		h.assertEscrowBalance(rt, provider, big.Add(deal.Proposal.ProviderCollateral, payment))
		h.assertEscrowBalance(rt, client, big.Sub(deal.Proposal.ClientBalanceRequirement(), payment))

		state := h.getDealState(rt, dealIDs[0])
		assert.Equal(t, settlement, state.LastUpdatedEpoch)

		// Rescheduled at its own slot of the next cycle.
		next := market.NextUpdateEpoch(dealIDs[0], market.DealUpdatesInterval, settlement+1)
		h.assertDealOpAt(rt, next, dealIDs[0])
		h.checkState(rt)
	})

	t.Run("a slashed deal burns provider collateral and is removed", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, startEpoch)
		dealIDs := h.publishDeals(rt, deal)

		rt.SetEpoch(5000)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		slashEpoch := abi.ChainEpoch(11000)
		rt.SetEpoch(slashEpoch)
		h.terminateDeals(rt, slashEpoch, dealIDs...)

		settlement := market.NextUpdateEpoch(dealIDs[0], market.DealUpdatesInterval, startEpoch)
		rt.SetEpoch(settlement)
		rt.ExpectSend(builtin.BurntFundsActorAddr, builtin.MethodSend, nil, deal.Proposal.ProviderCollateral, nil, exitcode.Ok)
		h.cronTick(rt)

		// Payment covers start through the slash epoch, the rest of the
		// client's funds come back.
		payment := big.Mul(big.NewInt(int64(slashEpoch-startEpoch)), deal.Proposal.StoragePricePerEpoch)
		h.assertEscrowBalance(rt, provider, payment)
		h.assertEscrowBalance(rt, client, big.Sub(deal.Proposal.ClientBalanceRequirement(), payment))
		h.assertLockedBalance(rt, client, big.Zero())
		h.assertDealDeleted(rt, dealIDs[0])
		h.checkState(rt)
	})

	t.Run("an expired deal pays in full and returns collateral", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, startEpoch)
		dealIDs := h.publishDeals(rt, deal)

		rt.SetEpoch(5000)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		rt.SetEpoch(deal.Proposal.EndEpoch + 1)
		h.cronTick(rt)

		totalFee := deal.Proposal.TotalStorageFee()
		h.assertEscrowBalance(rt, provider, big.Add(deal.Proposal.ProviderCollateral, totalFee))
		h.assertEscrowBalance(rt, client, deal.Proposal.ClientCollateral)
		h.assertLockedBalance(rt, client, big.Zero())
		h.assertLockedBalance(rt, provider, big.Zero())
		h.assertDealDeleted(rt, dealIDs[0])
		h.checkState(rt)
	})

	t.Run("a missed tick catches up on the next one", func(t *testing.T) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, startEpoch)
		dealIDs := h.publishDeals(rt, deal)

		rt.SetEpoch(5000)
		h.activateDeals(rt, sectorExpiry, dealIDs...)

		// Jump far past the scheduled settlement epoch; the walk from
		// LastCron still visits it.
		settlement := market.NextUpdateEpoch(dealIDs[0], market.DealUpdatesInterval, startEpoch)
		late := settlement + 500
		rt.SetEpoch(late)
		h.cronTick(rt)

		payment := big.Mul(big.NewInt(int64(late-startEpoch)), deal.Proposal.StoragePricePerEpoch)
		h.assertEscrowBalance(rt, provider, big.Add(deal.Proposal.ProviderCollateral, payment))

		var st market.State
		rt.GetState(&st)
		assert.Equal(t, late, st.LastCron)
		h.checkState(rt)
	})
}

func TestDealQueries(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	provider := tutil.NewIDAddr(t, 102)
	worker := tutil.NewIDAddr(t, 103)
	client := tutil.NewIDAddr(t, 104)

	setupWithDeal := func(t *testing.T) (*mock.Runtime, *marketActorTestHarness, market.ClientDealProposal, abi.DealID) {
		rt, h := basicMarketSetup(t, owner, provider, worker, client)
		deal := h.generateDealAndAddFunds(rt, client, 10000)
		dealIDs := h.publishDeals(rt, deal)
		return rt, h, deal, dealIDs[0]
	}

	t.Run("proposal fields", func(t *testing.T) {
		rt, h, deal, dealID := setupWithDeal(t)
		params := market.DealQueryParams{ID: dealID}

		rt.ExpectValidateCallerAny()
		dc := rt.Call(h.GetDealDataCommitment, &params).(*market.GetDealDataCommitmentReturn)
		assert.True(t, dc.Data.Equals(deal.Proposal.PieceCID))
		assert.Equal(t, deal.Proposal.PieceSize, dc.Size)

		rt.ExpectValidateCallerAny()
		cl := rt.Call(h.GetDealClient, &params).(*market.GetDealClientReturn)
		assert.Equal(t, abi.ActorID(104), cl.Client)

		rt.ExpectValidateCallerAny()
		pr := rt.Call(h.GetDealProvider, &params).(*market.GetDealProviderReturn)
		assert.Equal(t, abi.ActorID(102), pr.Provider)

		rt.ExpectValidateCallerAny()
		lb := rt.Call(h.GetDealLabel, &params).(*market.GetDealLabelReturn)
		assert.Equal(t, deal.Proposal.Label, lb.Label)

		rt.ExpectValidateCallerAny()
		term := rt.Call(h.GetDealTerm, &params).(*market.GetDealTermReturn)
		assert.Equal(t, deal.Proposal.StartEpoch, term.Start)
		assert.Equal(t, deal.Proposal.Duration(), term.Duration)

		rt.ExpectValidateCallerAny()
		price := rt.Call(h.GetDealTotalPrice, &params).(*market.GetDealTotalPriceReturn)
		assert.Equal(t, deal.Proposal.TotalStorageFee(), price.TotalPrice)

		rt.ExpectValidateCallerAny()
		cc := rt.Call(h.GetDealClientCollateral, &params).(*market.GetDealClientCollateralReturn)
		assert.Equal(t, deal.Proposal.ClientCollateral, cc.Collateral)

		rt.ExpectValidateCallerAny()
		pc := rt.Call(h.GetDealProviderCollateral, &params).(*market.GetDealProviderCollateralReturn)
		assert.Equal(t, deal.Proposal.ProviderCollateral, pc.Collateral)

		rt.ExpectValidateCallerAny()
		vf := rt.Call(h.GetDealVerified, &params).(*market.GetDealVerifiedReturn)
		assert.False(t, vf.Verified)
		rt.Verify()
	})

	t.Run("activation state transitions", func(t *testing.T) {
		rt, h, deal, dealID := setupWithDeal(t)
		params := market.DealQueryParams{ID: dealID}

		rt.ExpectValidateCallerAny()
		act := rt.Call(h.GetDealActivation, &params).(*market.GetDealActivationReturn)
		assert.Equal(t, market.EpochUndefined, act.Activated)
		assert.Equal(t, market.EpochUndefined, act.Terminated)

		sectorExpiry := deal.Proposal.EndEpoch + builtin.EpochsInDay
		rt.SetEpoch(5000)
		h.activateDeals(rt, sectorExpiry, dealID)

		rt.ExpectValidateCallerAny()
		act = rt.Call(h.GetDealActivation, &params).(*market.GetDealActivationReturn)
		assert.Equal(t, abi.ChainEpoch(5000), act.Activated)
		assert.Equal(t, market.EpochUndefined, act.Terminated)
		rt.Verify()
	})

	t.Run("a cleaned-up deal reports expired, an unknown one not found", func(t *testing.T) {
		rt, h, deal, dealID := setupWithDeal(t)

		// Time the deal out so its state is removed.
		scheduled := market.NextUpdateEpoch(dealID, market.DealUpdatesInterval, deal.Proposal.StartEpoch)
		rt.SetEpoch(scheduled)
		rt.ExpectSend(builtin.BurntFundsActorAddr, builtin.MethodSend, nil, deal.Proposal.ProviderCollateral, nil, exitcode.Ok)
		h.cronTick(rt)

		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(market.ErrDealExpired, func() {
			rt.Call(h.GetDealActivation, &market.DealQueryParams{ID: dealID})
		})

		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.GetDealActivation, &market.DealQueryParams{ID: abi.DealID(999)})
		})

		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(market.ErrDealExpired, func() {
			rt.Call(h.GetDealClient, &market.DealQueryParams{ID: dealID})
		})
		rt.Verify()
	})
}

///// Test harness /////

type marketActorTestHarness struct {
	market.Actor
	t testing.TB

	owner    addr.Address
	provider addr.Address
	worker   addr.Address
	client   addr.Address

	networkRawPower abi.StoragePower
	baselinePower   abi.StoragePower
}

func basicMarketSetup(t *testing.T, owner, provider, worker, client addr.Address) (*mock.Runtime, *marketActorTestHarness) {
	builder := mock.NewBuilder(builtin.StorageMarketActorAddr).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID).
		WithActorType(owner, builtin.AccountActorCodeID).
		WithActorType(worker, builtin.AccountActorCodeID).
		WithActorType(provider, builtin.StorageMinerActorCodeID).
		WithActorType(client, builtin.AccountActorCodeID)

	rt := builder.Build(t)

	h := &marketActorTestHarness{
		t:               t,
		owner:           owner,
		provider:        provider,
		worker:          worker,
		client:          client,
		networkRawPower: abi.NewStoragePower(1 << 50),
		baselinePower:   abi.NewStoragePower(1 << 50),
	}
	h.constructAndVerify(rt)
	return rt, h
}

func (h *marketActorTestHarness) constructAndVerify(rt *mock.Runtime) {
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	ret := rt.Call(h.Constructor, nil)
	assert.Nil(h.t, ret.(*abi.EmptyValue))
	rt.Verify()
}

func (h *marketActorTestHarness) addParticipantFunds(rt *mock.Runtime, address addr.Address, amount abi.TokenAmount) {
	rt.SetReceived(amount)
	rt.SetCaller(address, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	rt.Call(h.AddBalance, &address)
	rt.Verify()
	rt.SetBalance(big.Add(rt.Balance(), amount))
	rt.SetReceived(big.Zero())
}

func (h *marketActorTestHarness) addProviderFunds(rt *mock.Runtime, amount abi.TokenAmount) {
	rt.SetReceived(amount)
	rt.SetCaller(h.owner, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	h.expectProviderControlAddresses(rt)
	rt.Call(h.AddBalance, &h.provider)
	rt.Verify()
	rt.SetBalance(big.Add(rt.Balance(), amount))
	rt.SetReceived(big.Zero())
}

func (h *marketActorTestHarness) withdrawClientBalance(rt *mock.Runtime, client addr.Address, requested, expectedWithdrawn abi.TokenAmount) {
	rt.SetCaller(client, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAddr(client)
	rt.ExpectSend(client, builtin.MethodSend, nil, expectedWithdrawn, nil, exitcode.Ok)

	params := market.WithdrawBalanceParams{ProviderOrClientAddress: client, Amount: requested}
	ret := rt.Call(h.WithdrawBalance, &params).(*market.WithdrawBalanceReturn)
	rt.Verify()

	assert.Equal(h.t, expectedWithdrawn, ret.AmountWithdrawn)
}

func (h *marketActorTestHarness) generateDealProposal(client addr.Address, startEpoch abi.ChainEpoch) market.ClientDealProposal {
	pieceCid := tutil.MakeCID("1", &market.PieceCIDPrefix)
	label, err := market.NewLabelFromString("deal label")
	require.NoError(h.t, err)

	proposal := market.DealProposal{
		PieceCID:             pieceCid,
		PieceSize:            abi.PaddedPieceSize(2048),
		Client:               client,
		Provider:             h.provider,
		Label:                label,
		StartEpoch:           startEpoch,
		EndEpoch:             startEpoch + 200*builtin.EpochsInDay,
		StoragePricePerEpoch: abi.NewTokenAmount(10),
		ProviderCollateral:   abi.NewTokenAmount(100),
		ClientCollateral:     abi.NewTokenAmount(25),
	}
	return market.ClientDealProposal{
		Proposal:        proposal,
		ClientSignature: crypto.Signature{Type: crypto.SigTypeBLS, Data: []byte("does not matter")},
	}
}

func (h *marketActorTestHarness) generateDealAndAddFunds(rt *mock.Runtime, client addr.Address, startEpoch abi.ChainEpoch) market.ClientDealProposal {
	deal := h.generateDealProposal(client, startEpoch)
	h.addParticipantFunds(rt, client, deal.Proposal.ClientBalanceRequirement())
	h.addProviderFunds(rt, deal.Proposal.ProviderCollateral)
	return deal
}

func (h *marketActorTestHarness) expectProviderControlAddresses(rt *mock.Runtime) {
	rt.ExpectSend(h.provider, builtin.MethodsMiner.ControlAddresses, nil, big.Zero(),
		&miner.GetControlAddressesReturn{Owner: h.owner, Worker: h.worker}, exitcode.Ok)
}

func (h *marketActorTestHarness) expectQueryNetworkInfo(rt *mock.Runtime) {
	rt.ExpectSend(builtin.RewardActorAddr, builtin.MethodsReward.ThisEpochReward, nil, big.Zero(),
		&reward.ThisEpochRewardReturn{ThisEpochBaselinePower: h.baselinePower}, exitcode.Ok)
	rt.ExpectSend(builtin.StoragePowerActorAddr, builtin.MethodsPower.CurrentTotalPower, nil, big.Zero(),
		&power.CurrentTotalPowerReturn{RawBytePower: h.networkRawPower}, exitcode.Ok)
}

func (h *marketActorTestHarness) expectAuthenticate(rt *mock.Runtime, deal market.ClientDealProposal, code exitcode.ExitCode) {
	buf := new(bytes.Buffer)
	require.NoError(h.t, deal.Proposal.MarshalCBOR(buf))
	rt.ExpectSend(deal.Proposal.Client, builtin.MethodsAccount.AuthenticateMessageExported,
		&account.AuthenticateMessageParams{Signature: deal.ClientSignature.Data, Message: buf.Bytes()},
		big.Zero(), nil, code)
}

func (h *marketActorTestHarness) expectDatacapBalance(rt *mock.Runtime, client addr.Address, balance abi.TokenAmount) {
	rt.ExpectSend(builtin.DatacapActorAddr, builtin.MethodsDatacap.BalanceExported, &client, big.Zero(), &balance, exitcode.Ok)
}

func (h *marketActorTestHarness) expectDatacapTransfer(rt *mock.Runtime, client addr.Address, proposals []market.DealProposal, allocationIDs []verifreg.AllocationID, code exitcode.ExitCode) {
	amount := big.Zero()
	reqs := make([]verifreg.AllocationRequest, 0, len(proposals))
	for i := range proposals {
		amount = big.Add(amount, datacap.BalanceOf(proposals[i].PieceSize))
		reqs = append(reqs, h.allocationRequest(rt, &proposals[i]))
	}

	operatorData := new(bytes.Buffer)
	require.NoError(h.t, (&verifreg.AllocationRequests{Allocations: reqs}).MarshalCBOR(operatorData))

	recipientData := new(bytes.Buffer)
	require.NoError(h.t, (&verifreg.AllocationsResponse{NewAllocations: allocationIDs}).MarshalCBOR(recipientData))

	rt.ExpectSend(builtin.DatacapActorAddr, builtin.MethodsDatacap.TransferFromExported,
		&datacap.TransferFromParams{
			From:         client,
			To:           builtin.VerifiedRegistryActorAddr,
			Amount:       amount,
			OperatorData: operatorData.Bytes(),
		},
		big.Zero(),
		&datacap.TransferFromReturn{RecipientData: recipientData.Bytes()},
		code)
}

func (h *marketActorTestHarness) allocationRequest(rt *mock.Runtime, proposal *market.DealProposal) verifreg.AllocationRequest {
	providerID, err := addr.IDFromAddress(proposal.Provider)
	require.NoError(h.t, err)

	termMax := proposal.Duration() + market.MarketDefaultAllocationTermBuffer
	if termMax > market.MaximumVerifiedAllocationTerm {
		termMax = market.MaximumVerifiedAllocationTerm
	}
	expiration := rt.Epoch() + market.MaximumVerifiedAllocationExpiration
	if proposal.StartEpoch < expiration {
		expiration = proposal.StartEpoch
	}
	return verifreg.AllocationRequest{
		Provider:   abi.ActorID(providerID),
		Data:       proposal.PieceCID,
		Size:       proposal.PieceSize,
		TermMin:    proposal.Duration(),
		TermMax:    termMax,
		Expiration: expiration,
	}
}

func (h *marketActorTestHarness) expectNotify(rt *mock.Runtime, proposal market.DealProposal, dealID abi.DealID, code exitcode.ExitCode) {
	buf := new(bytes.Buffer)
	require.NoError(h.t, proposal.MarshalCBOR(buf))
	rt.ExpectSend(proposal.Client, builtin.MarketNotifyDeal,
		&market.MarketNotifyDealParams{Proposal: buf.Bytes(), DealID: dealID},
		big.Zero(), nil, code)
}

func (h *marketActorTestHarness) publishDeals(rt *mock.Runtime, deals ...market.ClientDealProposal) []abi.DealID {
	rt.SetCaller(h.worker, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	h.expectProviderControlAddresses(rt)
	h.expectQueryNetworkInfo(rt)

	for _, deal := range deals {
		h.expectAuthenticate(rt, deal, exitcode.Ok)
	}

	var st market.State
	rt.GetState(&st)
	for i, deal := range deals {
		h.expectNotify(rt, deal.Proposal, st.NextID+abi.DealID(i), exitcode.Ok)
	}

	params := market.PublishStorageDealsParams{Deals: deals}
	ret := rt.Call(h.PublishStorageDeals, &params).(*market.PublishStorageDealsReturn)
	rt.Verify()

	require.Len(h.t, ret.IDs, len(deals))
	return ret.IDs
}

func (h *marketActorTestHarness) publishVerifiedDeal(rt *mock.Runtime, deal market.ClientDealProposal, allocationID verifreg.AllocationID) []abi.DealID {
	rt.SetCaller(h.worker, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	h.expectProviderControlAddresses(rt)
	h.expectQueryNetworkInfo(rt)
	h.expectAuthenticate(rt, deal, exitcode.Ok)
	h.expectDatacapBalance(rt, deal.Proposal.Client, datacap.BalanceOf(deal.Proposal.PieceSize))
	h.expectDatacapTransfer(rt, deal.Proposal.Client, []market.DealProposal{deal.Proposal}, []verifreg.AllocationID{allocationID}, exitcode.Ok)

	var st market.State
	rt.GetState(&st)
	h.expectNotify(rt, deal.Proposal, st.NextID, exitcode.Ok)

	params := market.PublishStorageDealsParams{Deals: []market.ClientDealProposal{deal}}
	ret := rt.Call(h.PublishStorageDeals, &params).(*market.PublishStorageDealsReturn)
	rt.Verify()

	require.Len(h.t, ret.IDs, 1)
	return ret.IDs
}

func (h *marketActorTestHarness) activateDeals(rt *mock.Runtime, sectorExpiry abi.ChainEpoch, dealIDs ...abi.DealID) {
	rt.SetCaller(h.provider, builtin.StorageMinerActorCodeID)
	rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
	rt.Call(h.ActivateDeals, &market.ActivateDealsParams{DealIDs: dealIDs, SectorExpiry: sectorExpiry})
	rt.Verify()
}

func (h *marketActorTestHarness) terminateDeals(rt *mock.Runtime, epoch abi.ChainEpoch, dealIDs ...abi.DealID) {
	rt.SetCaller(h.provider, builtin.StorageMinerActorCodeID)
	rt.ExpectValidateCallerType(builtin.StorageMinerActorCodeID)
	rt.Call(h.OnMinerSectorsTerminate, &market.OnMinerSectorsTerminateParams{Epoch: epoch, DealIDs: dealIDs})
	rt.Verify()
}

func (h *marketActorTestHarness) cronTick(rt *mock.Runtime) {
	rt.SetCaller(builtin.CronActorAddr, builtin.CronActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.CronActorAddr)
	rt.Call(h.CronTick, nil)
	rt.Verify()
}

func (h *marketActorTestHarness) getDealProposal(rt *mock.Runtime, dealID abi.DealID) *market.DealProposal {
	var st market.State
	rt.GetState(&st)
	proposals, err := market.AsDealProposalArray(rt.AdtStore(), st.Proposals)
	require.NoError(h.t, err)
	proposal, found, err := proposals.Get(dealID)
	require.NoError(h.t, err)
	require.True(h.t, found)
	return proposal
}

func (h *marketActorTestHarness) getDealState(rt *mock.Runtime, dealID abi.DealID) *market.DealState {
	var st market.State
	rt.GetState(&st)
	states, err := market.AsDealStateArray(rt.AdtStore(), st.States)
	require.NoError(h.t, err)
	state, found, err := states.Get(dealID)
	require.NoError(h.t, err)
	require.True(h.t, found)
	return state
}

func (h *marketActorTestHarness) getPendingAllocation(rt *mock.Runtime, dealID abi.DealID) verifreg.AllocationID {
	var st market.State
	rt.GetState(&st)
	allocations, err := adt.AsMap(rt.AdtStore(), st.PendingDealAllocationIDs, market.PendingAllocationsMapBitwidth)
	require.NoError(h.t, err)

	var allocID cbg.CborInt
	found, err := allocations.Get(abi.UIntKey(uint64(dealID)), &allocID)
	require.NoError(h.t, err)
	if !found {
		return verifreg.NoAllocationID
	}
	return verifreg.AllocationID(allocID)
}

func (h *marketActorTestHarness) assertEscrowBalance(rt *mock.Runtime, address addr.Address, expected abi.TokenAmount) {
	var st market.State
	rt.GetState(&st)
	escrow, err := adt.AsBalanceTable(rt.AdtStore(), st.EscrowTable)
	require.NoError(h.t, err)
	actual, err := escrow.Get(address)
	require.NoError(h.t, err)
	assert.True(h.t, expected.Equals(actual), "escrow balance expected %v, actual %v", expected, actual)
}

func (h *marketActorTestHarness) assertLockedBalance(rt *mock.Runtime, address addr.Address, expected abi.TokenAmount) {
	var st market.State
	rt.GetState(&st)
	locked, err := adt.AsBalanceTable(rt.AdtStore(), st.LockedTable)
	require.NoError(h.t, err)
	actual, err := locked.Get(address)
	require.NoError(h.t, err)
	assert.True(h.t, expected.Equals(actual), "locked balance expected %v, actual %v", expected, actual)
}

func (h *marketActorTestHarness) assertDealDeleted(rt *mock.Runtime, dealID abi.DealID) {
	var st market.State
	rt.GetState(&st)

	proposals, err := market.AsDealProposalArray(rt.AdtStore(), st.Proposals)
	require.NoError(h.t, err)
	_, found, err := proposals.Get(dealID)
	require.NoError(h.t, err)
	assert.False(h.t, found)

	states, err := market.AsDealStateArray(rt.AdtStore(), st.States)
	require.NoError(h.t, err)
	_, found, err = states.Get(dealID)
	require.NoError(h.t, err)
	assert.False(h.t, found)
}

func (h *marketActorTestHarness) assertDealOpAt(rt *mock.Runtime, epoch abi.ChainEpoch, dealID abi.DealID) {
	var st market.State
	rt.GetState(&st)
	dealOps, err := adt.AsSetMultimap(rt.AdtStore(), st.DealOpsByEpoch, adt.DefaultHamtBitwidth, adt.DefaultHamtBitwidth)
	require.NoError(h.t, err)

	found := false
	err = dealOps.ForEach(abi.IntKey(int64(epoch)), func(id uint64) error {
		if abi.DealID(id) == dealID {
			found = true
		}
		return nil
	})
	require.NoError(h.t, err)
	assert.True(h.t, found, "deal %d not scheduled at epoch %d", dealID, epoch)
}

func (h *marketActorTestHarness) checkState(rt *mock.Runtime) {
	var st market.State
	rt.GetState(&st)
	_, msgs := market.CheckStateInvariants(&st, rt.AdtStore(), rt.Balance(), rt.Epoch())
	assert.True(h.t, msgs.IsEmpty(), strings.Join(msgs.Messages(), "\n"))
}
