package mock

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/network"
	cid "github.com/ipfs/go-cid"
)

// Builder accumulates configuration for a mock runtime, then builds it.
type Builder struct {
	ctx               context.Context
	epoch             abi.ChainEpoch
	networkVersion    network.Version
	receiver          addr.Address
	caller            addr.Address
	callerType        cid.Cid
	balance           abi.TokenAmount
	valueReceived     abi.TokenAmount
	idAddresses       map[addr.Address]addr.Address
	actorCodeCIDs     map[addr.Address]cid.Cid
	circulatingSupply abi.TokenAmount
}

func NewBuilder(receiver addr.Address) Builder {
	return Builder{
		ctx:               context.Background(),
		epoch:             0,
		networkVersion:    network.VersionMax,
		receiver:          receiver,
		caller:            addr.Undef,
		callerType:        cid.Undef,
		balance:           big.Zero(),
		valueReceived:     big.Zero(),
		idAddresses:       make(map[addr.Address]addr.Address),
		actorCodeCIDs:     make(map[addr.Address]cid.Cid),
		circulatingSupply: big.Zero(),
	}
}

func (b Builder) WithNetworkVersion(version network.Version) Builder {
	b.networkVersion = version
	return b
}

func (b Builder) WithEpoch(epoch abi.ChainEpoch) Builder {
	b.epoch = epoch
	return b
}

func (b Builder) WithCaller(address addr.Address, code cid.Cid) Builder {
	b.caller = address
	b.callerType = code
	return b
}

func (b Builder) WithBalance(balance, received abi.TokenAmount) Builder {
	b.balance = balance
	b.valueReceived = received
	return b
}

func (b Builder) WithActorType(address addr.Address, code cid.Cid) Builder {
	b.actorCodeCIDs[address] = code
	return b
}

// Build instantiates the mock runtime with the accumulated configuration.
func (b Builder) Build(t testing.TB) *Runtime {
	m := Runtime{
		ctx:               b.ctx,
		epoch:             b.epoch,
		networkVersion:    b.networkVersion,
		receiver:          b.receiver,
		caller:            b.caller,
		callerType:        b.callerType,
		balance:           b.balance,
		valueReceived:     b.valueReceived,
		idAddresses:       make(map[addr.Address]addr.Address),
		actorCodeCIDs:     make(map[addr.Address]cid.Cid),
		circulatingSupply: b.circulatingSupply,

		store: make(map[cid.Cid][]byte),
		t:     t,
	}
	for k, v := range b.idAddresses {
		m.idAddresses[k] = v
	}
	for k, v := range b.actorCodeCIDs {
		m.actorCodeCIDs[k] = v
	}
	if b.caller != addr.Undef {
		m.actorCodeCIDs[b.caller] = b.callerType
	}
	return &m
}
