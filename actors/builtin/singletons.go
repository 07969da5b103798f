package builtin

import (
	addr "github.com/filecoin-project/go-address"
)

// Addresses of singleton actors, instantiated in the genesis state tree.
var (
	SystemActorAddr           = mustMakeAddress(0)
	InitActorAddr             = mustMakeAddress(1)
	RewardActorAddr           = mustMakeAddress(2)
	CronActorAddr             = mustMakeAddress(3)
	StoragePowerActorAddr     = mustMakeAddress(4)
	StorageMarketActorAddr    = mustMakeAddress(5)
	VerifiedRegistryActorAddr = mustMakeAddress(6)
	DatacapActorAddr          = mustMakeAddress(7)
	// Distinguished account for the destination of all burnt funds.
	BurntFundsActorAddr = mustMakeAddress(99)
)

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	if err != nil {
		panic(err)
	}
	return address
}
