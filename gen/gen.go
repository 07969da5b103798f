package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/market-actors/actors/builtin"
	"github.com/filecoin-project/market-actors/actors/builtin/account"
	"github.com/filecoin-project/market-actors/actors/builtin/datacap"
	"github.com/filecoin-project/market-actors/actors/builtin/market"
	"github.com/filecoin-project/market-actors/actors/builtin/miner"
	"github.com/filecoin-project/market-actors/actors/builtin/power"
	"github.com/filecoin-project/market-actors/actors/builtin/reward"
	"github.com/filecoin-project/market-actors/actors/builtin/verifreg"
)

// DealLabel, DealQueryParams and the single-field getter returns carry
// hand-written encoders and are deliberately absent here.
func main() {
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/cbor_gen.go", "builtin",
		builtin.FilterEstimate{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/account/cbor_gen.go", "account",
		account.AuthenticateMessageParams{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/miner/cbor_gen.go", "miner",
		miner.GetControlAddressesReturn{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/power/cbor_gen.go", "power",
		power.CurrentTotalPowerReturn{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/reward/cbor_gen.go", "reward",
		reward.ThisEpochRewardReturn{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/verifreg/cbor_gen.go", "verifreg",
		verifreg.AllocationRequest{},
		verifreg.ClaimExtensionRequest{},
		verifreg.AllocationRequests{},
		verifreg.FailCode{},
		verifreg.BatchReturn{},
		verifreg.AllocationsResponse{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/datacap/cbor_gen.go", "datacap",
		datacap.TransferFromParams{},
		datacap.TransferFromReturn{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/market/cbor_gen.go", "market",
		market.State{},
		market.DealProposal{},
		market.ClientDealProposal{},
		market.DealState{},
		market.WithdrawBalanceParams{},
		market.WithdrawBalanceReturn{},
		market.GetBalanceReturn{},
		market.PublishStorageDealsParams{},
		market.PublishStorageDealsReturn{},
		market.MarketNotifyDealParams{},
		market.VerifyDealsForActivationParams{},
		market.SectorDeals{},
		market.VerifyDealsForActivationReturn{},
		market.SectorDealData{},
		market.ActivateDealsParams{},
		market.ActivateDealsResult{},
		market.VerifiedDealInfo{},
		market.OnMinerSectorsTerminateParams{},
		market.ComputeDataCommitmentParams{},
		market.SectorDataSpec{},
		market.ComputeDataCommitmentReturn{},
		market.GetDealDataCommitmentReturn{},
		market.GetDealTermReturn{},
		market.GetDealActivationReturn{},
	); err != nil {
		panic(err)
	}
}
