package builtin

import (
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// Identifiers for builtin actor code, used by the runtime to resolve the type
// of an actor at an address. Computed as raw CIDs over the identity hash of
// the actor name, the same scheme the genesis state tree uses.
var (
	SystemActorCodeID           = makeBuiltin("fil/9/system")
	InitActorCodeID             = makeBuiltin("fil/9/init")
	CronActorCodeID             = makeBuiltin("fil/9/cron")
	AccountActorCodeID          = makeBuiltin("fil/9/account")
	StoragePowerActorCodeID     = makeBuiltin("fil/9/storagepower")
	StorageMinerActorCodeID     = makeBuiltin("fil/9/storageminer")
	StorageMarketActorCodeID    = makeBuiltin("fil/9/storagemarket")
	PaymentChannelActorCodeID   = makeBuiltin("fil/9/paymentchannel")
	MultisigActorCodeID         = makeBuiltin("fil/9/multisig")
	RewardActorCodeID           = makeBuiltin("fil/9/reward")
	VerifiedRegistryActorCodeID = makeBuiltin("fil/9/verifiedregistry")
	DatacapActorCodeID          = makeBuiltin("fil/9/datacap")
)

// CallerTypesSignable is the set of actor code types that can sign messages
// and so stand behind a deal client or an escrow owner.
var CallerTypesSignable = []cid.Cid{AccountActorCodeID, MultisigActorCodeID}

// IsPrincipal reports whether the code belongs to an actor that can be the
// counterparty of a storage deal on the client side.
func IsPrincipal(code cid.Cid) bool {
	for _, c := range CallerTypesSignable {
		if c.Equals(code) {
			return true
		}
	}
	return false
}

func makeBuiltin(name string) cid.Cid {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	c, err := builder.Sum([]byte(name))
	if err != nil {
		panic(err)
	}
	return c
}
