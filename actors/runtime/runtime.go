package runtime

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/network"
	"github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"
)

// Runtime is the interface through which actor code interacts with the
// machine executing it. Message execution is single-threaded and
// deterministic; an actor's state may only change inside StateTransaction,
// and a nested Send observes the committed state from the enclosing
// transaction. Re-entrant calls back into the same actor are therefore safe
// exactly when every mutation is completed by a transaction before Send is
// invoked.
type Runtime interface {
	// Information about the network this execution belongs to.
	NetworkVersion() network.Version

	// The epoch of the block this message is executing in.
	CurrEpoch() abi.ChainEpoch

	// The address of the immediate caller, always an ID address.
	Caller() addr.Address

	// The address of the actor receiving the message, always an ID address.
	Receiver() addr.Address

	// The value attached to the message being processed.
	ValueReceived() abi.TokenAmount

	// The balance of the receiver, including ValueReceived.
	CurrentBalance() abi.TokenAmount

	// Validation of the immediate caller. Exactly one validation must be
	// performed per method invocation, before any state access.
	ValidateImmediateCallerAcceptAny()
	ValidateImmediateCallerIs(addrs ...addr.Address)
	ValidateImmediateCallerType(types ...cid.Cid)

	// Resolves an address to its canonical ID form, if the target actor
	// exists in the state tree.
	ResolveAddress(address addr.Address) (addr.Address, bool)

	// The code CID of the actor at the given address.
	GetActorCodeCID(addr addr.Address) (cid.Cid, bool)

	// Sends a message to another actor, returning its result. The receiver's
	// exit code is returned rather than propagated; callers decide whether a
	// failure is fatal.
	Send(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, out cbor.Er) exitcode.ExitCode

	// Halts execution with the given exit code and message. Never returns.
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})

	// State handle operations.
	StateCreate(obj cbor.Marshaler)
	StateReadonly(obj cbor.Unmarshaler)
	// StateTransaction runs f with the actor's state loaded into obj, then
	// commits obj back atomically. Mutations outside f are lost.
	StateTransaction(obj cbor.Er, f func())

	// Direct IPLD store access, for objects hanging off the state root.
	StoreGet(c cid.Cid, o cbor.Unmarshaler) bool
	StorePut(x cbor.Marshaler) cid.Cid

	// The total circulating FIL supply at the current epoch.
	TotalFilCircSupply() abi.TokenAmount

	// Computes the unsealed sector CID (CommD) for a set of deal pieces.
	ComputeUnsealedSectorCID(reg abi.RegisteredSealProof, pieces []abi.PieceInfo) (cid.Cid, error)

	// Log writes a message at the given level to the node's log. Has no
	// effect on chain state.
	Log(level rt.LogLevel, msg string, args ...interface{})
}

// VMActor is the interface all builtin actor implementations satisfy.
// Method numbers above the FRC-0042 boundary are calculated from the
// exported method name.
type VMActor interface {
	// Exports maps method numbers to method implementations.
	Exports() map[abi.MethodNum]interface{}

	// Code returns the code ID for this actor.
	Code() cid.Cid

	// State returns a new zero-valued instance of this actor's state.
	State() cbor.Er
}
