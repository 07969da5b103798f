package mock

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/network"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/market-actors/actors/builtin"
	"github.com/filecoin-project/market-actors/actors/runtime"
	"github.com/filecoin-project/market-actors/actors/util/adt"
)

var log = logging.Logger("mockrt")

// Runtime is a test double of the VM runtime. Calls to methods of the
// runtime interface check against expectations set by the test, and fail
// the test on mismatch.
type Runtime struct {
	// Execution context
	ctx               context.Context
	epoch             abi.ChainEpoch
	networkVersion    network.Version
	receiver          addr.Address
	caller            addr.Address
	callerType        cid.Cid
	valueReceived     abi.TokenAmount
	idAddresses       map[addr.Address]addr.Address
	actorCodeCIDs     map[addr.Address]cid.Cid
	circulatingSupply abi.TokenAmount

	// Actor state
	state   cid.Cid
	balance abi.TokenAmount

	// VM implementation
	inCall        bool
	store         map[cid.Cid][]byte
	inTransaction bool

	// Expectations
	t                              testing.TB
	expectValidateCallerAny        bool
	expectValidateCallerAddr       []addr.Address
	expectValidateCallerType       []cid.Cid
	expectSends                    []*expectedMessage
	expectComputeUnsealedSectorCID []*expectComputeUnsealedSectorCID
}

var _ runtime.Runtime = &Runtime{}

type expectedMessage struct {
	// Expected parameters
	to     addr.Address
	method abi.MethodNum
	params cbor.Marshaler
	value  abi.TokenAmount

	// Result to return
	sendReturn cbor.Er
	exitCode   exitcode.ExitCode
}

func (m *expectedMessage) Equal(to addr.Address, method abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount) bool {
	paramsMatch := reflect.DeepEqual(m.params, params)
	return m.to == to && m.method == method && m.value.Equals(value) && paramsMatch
}

func (m *expectedMessage) String() string {
	return fmt.Sprintf("to: %v method: %v value: %v params: %v sendReturn: %v exitCode: %v", m.to, m.method, m.value, m.params, m.sendReturn, m.exitCode)
}

type expectComputeUnsealedSectorCID struct {
	reg    abi.RegisteredSealProof
	pieces []abi.PieceInfo

	cid cid.Cid
	err error
}

///// Implementation of the runtime API /////

func (rt *Runtime) NetworkVersion() network.Version {
	return rt.networkVersion
}

func (rt *Runtime) CurrEpoch() abi.ChainEpoch {
	rt.requireInCall()
	return rt.epoch
}

func (rt *Runtime) Caller() addr.Address {
	rt.requireInCall()
	return rt.caller
}

func (rt *Runtime) Receiver() addr.Address {
	rt.requireInCall()
	return rt.receiver
}

func (rt *Runtime) ValueReceived() abi.TokenAmount {
	rt.requireInCall()
	return rt.valueReceived
}

func (rt *Runtime) CurrentBalance() abi.TokenAmount {
	rt.requireInCall()
	return rt.balance
}

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	rt.requireInCall()
	if !rt.expectValidateCallerAny {
		rt.failTest("unexpected validate-caller-any")
	}
	rt.expectValidateCallerAny = false
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...addr.Address) {
	rt.requireInCall()
	rt.checkArgument(len(addrs) > 0, "addrs must be non-empty")
	// Check and clear expectations.
	if len(rt.expectValidateCallerAddr) == 0 {
		rt.failTest("unexpected validate caller addrs")
		return
	}
	if !reflect.DeepEqual(rt.expectValidateCallerAddr, addrs) {
		rt.failTest("unexpected validate caller addrs %v, expected %+v", addrs, rt.expectValidateCallerAddr)
		return
	}
	defer func() {
		rt.expectValidateCallerAddr = nil
	}()

	for _, expected := range addrs {
		if rt.caller == expected {
			return
		}
	}
	rt.abort(exitcode.SysErrForbidden, "caller address %v forbidden, allowed: %v", rt.caller, addrs)
}

func (rt *Runtime) ValidateImmediateCallerType(types ...cid.Cid) {
	rt.requireInCall()
	rt.checkArgument(len(types) > 0, "types must be non-empty")
	if len(rt.expectValidateCallerType) == 0 {
		rt.failTest("unexpected validate caller code")
	}
	if !reflect.DeepEqual(rt.expectValidateCallerType, types) {
		rt.failTest("unexpected validate caller code %v, expected %+v", types, rt.expectValidateCallerType)
	}
	defer func() {
		rt.expectValidateCallerType = nil
	}()

	for _, expected := range types {
		if rt.callerType.Equals(expected) {
			return
		}
	}
	rt.abort(exitcode.SysErrForbidden, "caller type %v forbidden, allowed: %v", rt.callerType, types)
}

func (rt *Runtime) ResolveAddress(address addr.Address) (addr.Address, bool) {
	rt.requireInCall()
	if address.Protocol() == addr.ID {
		return address, true
	}
	resolved, ok := rt.idAddresses[address]
	return resolved, ok
}

func (rt *Runtime) GetActorCodeCID(address addr.Address) (cid.Cid, bool) {
	rt.requireInCall()
	ret, ok := rt.actorCodeCIDs[address]
	return ret, ok
}

func (rt *Runtime) Send(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, out cbor.Er) exitcode.ExitCode {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectSends) == 0 {
		rt.failTest("unexpected send to: %v method: %v, value: %v, params: %v", toAddr, methodNum, value, params)
		return exitcode.Ok
	}
	expectedMsg := rt.expectSends[0]

	if !expectedMsg.Equal(toAddr, methodNum, params, value) {
		rt.failTest("unexpected send\n"+
			"          to: %s method: %d value: %v params: %v\n"+
			"expected  %s", toAddr, methodNum, value, params, rt.expectSends[0])
	}

	if value.GreaterThan(rt.balance) {
		rt.Abortf(exitcode.SysErrInsufficientFunds, "cannot send value: %v exceeds balance: %v", value, rt.balance)
	}

	// pop the expectedMessage from the queue and modify the mockrt balance to reflect the send.
	defer func() {
		rt.expectSends = rt.expectSends[1:]
		rt.balance = big.Sub(rt.balance, value)
	}()

	// populate the output argument
	if expectedMsg.sendReturn != nil {
		buf := new(bytes.Buffer)
		err := expectedMsg.sendReturn.MarshalCBOR(buf)
		if err != nil {
			rt.failTestNow("error serializing expected send return: %v", err)
		}
		err = out.UnmarshalCBOR(buf)
		if err != nil {
			rt.failTestNow("error deserializing send return bytes to output param: %v", err)
		}
	}
	return expectedMsg.exitCode
}

func (rt *Runtime) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	rt.requireInCall()
	rt.abort(errExitCode, msg, args...)
}

func (rt *Runtime) StateCreate(obj cbor.Marshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed")
	}
	rt.state = rt.StorePut(obj)
}

func (rt *Runtime) StateReadonly(st cbor.Unmarshaler) {
	found := rt.StoreGet(rt.state, st)
	if !found {
		panic("actor state not found")
	}
}

func (rt *Runtime) StateTransaction(st cbor.Er, f func()) {
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nested transaction")
	}
	rt.StateReadonly(st)
	rt.inTransaction = true
	defer func() { rt.inTransaction = false }()
	f()
	rt.state = rt.StorePut(st)
}

func (rt *Runtime) StoreGet(c cid.Cid, o cbor.Unmarshaler) bool {
	data, found := rt.store[c]
	if found {
		err := o.UnmarshalCBOR(bytes.NewReader(data))
		if err != nil {
			rt.Abortf(exitcode.ErrSerialization, "failed to unmarshal cbor object %v", err)
		}
	}
	return found
}

func (rt *Runtime) StorePut(o cbor.Marshaler) cid.Cid {
	buf := new(bytes.Buffer)
	err := o.MarshalCBOR(buf)
	if err != nil {
		rt.Abortf(exitcode.ErrSerialization, "failed to marshal cbor object %v", err)
	}
	data := buf.Bytes()
	key, err := abi.CidBuilder.Sum(data)
	if err != nil {
		rt.Abortf(exitcode.ErrSerialization, "failed to compute cid %v", err)
	}
	rt.store[key] = data
	return key
}

func (rt *Runtime) TotalFilCircSupply() abi.TokenAmount {
	rt.requireInCall()
	return rt.circulatingSupply
}

func (rt *Runtime) ComputeUnsealedSectorCID(reg abi.RegisteredSealProof, pieces []abi.PieceInfo) (cid.Cid, error) {
	rt.requireInCall()
	if len(rt.expectComputeUnsealedSectorCID) == 0 {
		rt.failTestNow("unexpected ComputeUnsealedSectorCID call")
	}
	exp := rt.expectComputeUnsealedSectorCID[0]
	defer func() {
		rt.expectComputeUnsealedSectorCID = rt.expectComputeUnsealedSectorCID[1:]
	}()

	if exp.reg != reg {
		rt.failTest("unexpected ComputeUnsealedSectorCID proof, expected: %v, got: %v", exp.reg, reg)
	}
	if !reflect.DeepEqual(exp.pieces, pieces) {
		rt.failTest("unexpected ComputeUnsealedSectorCID pieces, expected: %v, got: %v", exp.pieces, pieces)
	}
	return exp.cid, exp.err
}

func (rt *Runtime) Log(level rtt.LogLevel, msg string, args ...interface{}) {
	switch level {
	case rtt.DEBUG:
		log.Debugf(msg, args...)
	case rtt.INFO:
		log.Infof(msg, args...)
	case rtt.WARN:
		log.Warnf(msg, args...)
	case rtt.ERROR:
		log.Errorf(msg, args...)
	}
}

///// Expectation methods /////

func (rt *Runtime) ExpectValidateCallerAny() {
	rt.expectValidateCallerAny = true
}

func (rt *Runtime) ExpectValidateCallerAddr(addrs ...addr.Address) {
	rt.require(len(addrs) > 0, "addrs must be non-empty")
	rt.expectValidateCallerAddr = addrs[:]
}

func (rt *Runtime) ExpectValidateCallerType(types ...cid.Cid) {
	rt.require(len(types) > 0, "types must be non-empty")
	rt.expectValidateCallerType = types[:]
}

func (rt *Runtime) ExpectSend(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, ret cbor.Er, exitCode exitcode.ExitCode) {
	// Adapt nil to Discard as encoding matter of convenience for the caller.
	if ret == nil {
		ret = &builtin.Discard{}
	}
	rt.expectSends = append(rt.expectSends, &expectedMessage{
		to:         toAddr,
		method:     methodNum,
		params:     params,
		value:      value,
		sendReturn: ret,
		exitCode:   exitCode,
	})
}

func (rt *Runtime) ExpectComputeUnsealedSectorCID(reg abi.RegisteredSealProof, pieces []abi.PieceInfo, cid cid.Cid, err error) {
	rt.expectComputeUnsealedSectorCID = append(rt.expectComputeUnsealedSectorCID, &expectComputeUnsealedSectorCID{
		reg, pieces, cid, err,
	})
}

// ExpectAbort runs a function expecting it to exit with the given code,
// and asserts that it does.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	rt.ExpectAbortContainsMessage(expected, "", f)
}

// ExpectAbortContainsMessage is like ExpectAbort but also checks that the
// abort message contains the given substring.
func (rt *Runtime) ExpectAbortContainsMessage(expected exitcode.ExitCode, substr string, f func()) {
	rt.t.Helper()
	prevState := rt.state

	defer func() {
		rt.t.Helper()
		r := recover()
		if r == nil {
			rt.failTest("expected abort with code %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.failTest("abort expected code %v, actual %v %s", expected, a.code, a.msg)
		}
		if substr != "" {
			if !contains(a.msg, substr) {
				rt.failTest("abort expected message '%v' but got '%v'", substr, a.msg)
			}
		}

		// Roll back state change.
		rt.state = prevState
	}()
	f()
}

func (rt *Runtime) Verify() {
	rt.t.Helper()
	if rt.expectValidateCallerAny {
		rt.failTest("missing expected validate caller any")
	}
	if rt.expectValidateCallerAddr != nil {
		rt.failTest("missing expected validate caller address %v", rt.expectValidateCallerAddr)
	}
	if rt.expectValidateCallerType != nil {
		rt.failTest("missing expected validate caller type %v", rt.expectValidateCallerType)
	}
	if len(rt.expectSends) > 0 {
		rt.failTest("missing expected send %v", rt.expectSends)
	}
	if len(rt.expectComputeUnsealedSectorCID) > 0 {
		rt.failTest("missing expected ComputeUnsealedSectorCID")
	}

	rt.Reset()
}

// Reset clears all unfulfilled expectations.
func (rt *Runtime) Reset() {
	rt.expectValidateCallerAny = false
	rt.expectValidateCallerAddr = nil
	rt.expectValidateCallerType = nil
	rt.expectSends = nil
	rt.expectComputeUnsealedSectorCID = nil
}

///// Mutation methods for tests /////

func (rt *Runtime) SetCaller(address addr.Address, actorType cid.Cid) {
	rt.caller = address
	rt.callerType = actorType
	rt.actorCodeCIDs[address] = actorType
}

func (rt *Runtime) SetAddressActorType(address addr.Address, actorType cid.Cid) {
	rt.actorCodeCIDs[address] = actorType
}

// AddIDAddress registers a resolution from a pubkey-style address to an ID
// address.
func (rt *Runtime) AddIDAddress(src addr.Address, target addr.Address) {
	rt.require(target.Protocol() == addr.ID, "target must be ID address")
	rt.idAddresses[src] = target
}

func (rt *Runtime) SetEpoch(epoch abi.ChainEpoch) {
	rt.epoch = epoch
}

func (rt *Runtime) Epoch() abi.ChainEpoch {
	return rt.epoch
}

func (rt *Runtime) SetNetworkVersion(v network.Version) {
	rt.networkVersion = v
}

func (rt *Runtime) SetReceived(amt abi.TokenAmount) {
	rt.valueReceived = amt
}

func (rt *Runtime) SetBalance(amt abi.TokenAmount) {
	rt.balance = amt
}

func (rt *Runtime) Balance() abi.TokenAmount {
	return rt.balance
}

func (rt *Runtime) SetCirculatingSupply(amt abi.TokenAmount) {
	rt.circulatingSupply = amt
}

func (rt *Runtime) GetState(o cbor.Unmarshaler) {
	found := rt.StoreGet(rt.state, o)
	if !found {
		rt.failTestNow("can't find state at root %v", rt.state)
	}
}

func (rt *Runtime) ReplaceState(o cbor.Marshaler) {
	rt.state = rt.StorePut(o)
}

func (rt *Runtime) AdtStore() adt.Store {
	return adt.AsStore(rt)
}

func (rt *Runtime) StateRoot() cid.Cid {
	return rt.state
}

///// Method invocation /////

// Call invokes an exported actor method on the mock runtime.
// Aborts propagate as panics; tests assert them with ExpectAbort.
func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	meth := reflect.ValueOf(method)
	rt.verifyExportedMethodType(meth)

	// There's no validation between the method and its parameters, the caller must provide the correct arguments.
	rt.inCall = true
	defer func() { rt.inCall = false }()

	var arg reflect.Value
	if params != nil {
		arg = reflect.ValueOf(params)
	} else {
		arg = reflect.ValueOf(&abi.EmptyValue{})
	}
	ret := meth.Call([]reflect.Value{reflect.ValueOf(rt), arg})
	return ret[0].Interface()
}

func (rt *Runtime) verifyExportedMethodType(meth reflect.Value) {
	rt.t.Helper()
	t := meth.Type()
	rt.require(t.Kind() == reflect.Func, "%v is not a function", meth)
	rt.require(t.NumIn() == 2, "exported method %v must have two parameters", meth)

	// Check first parameter is of type runtime.Runtime
	rt.require(t.In(0) == reflect.TypeOf((*runtime.Runtime)(nil)).Elem(), "exported method first parameter must be runtime")

	// Check second parameter is a pointer implementing the marshaler interfaces
	rt.require(t.In(1).Kind() == reflect.Ptr, "exported method second parameter must be pointer to params")
	paramT := t.In(1)
	marshaler := reflect.TypeOf((*cbor.Marshaler)(nil)).Elem()
	unmarshaler := reflect.TypeOf((*cbor.Unmarshaler)(nil)).Elem()
	rt.require(paramT.Implements(marshaler), "exported method second parameter must be CBOR marshaler")
	rt.require(paramT.Implements(unmarshaler), "exported method second parameter must be CBOR unmarshaler")

	rt.require(t.NumOut() == 1, "exported method must return a single value")
	rt.require(t.Out(0).Kind() == reflect.Ptr, "exported method must return a pointer")
	retT := t.Out(0)
	rt.require(retT.Implements(marshaler), "exported method return value must be CBOR marshaler")
	rt.require(retT.Implements(unmarshaler), "exported method return value must be CBOR unmarshaler")
}

///// Internals /////

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

func (rt *Runtime) abort(code exitcode.ExitCode, msg string, args ...interface{}) {
	panic(abort{code, fmt.Sprintf(msg, args...)})
}

func (rt *Runtime) requireInCall() {
	rt.require(rt.inCall, "invalid runtime invocation outside of method call")
}

func (rt *Runtime) checkArgument(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.abort(exitcode.SysErrorIllegalArgument, msg, args...)
	}
}

func (rt *Runtime) require(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.failTestNow(msg, args...)
	}
}

func (rt *Runtime) failTest(msg string, args ...interface{}) {
	rt.t.Helper()
	rt.t.Errorf(msg, args...)
}

func (rt *Runtime) failTestNow(msg string, args ...interface{}) {
	rt.t.Helper()
	rt.t.Fatalf(msg, args...)
}

func contains(haystack, needle string) bool {
	return bytes.Contains([]byte(haystack), []byte(needle))
}

///// Sanity checks on actor exports /////

// CheckActorExports asserts the declared exports of an actor are
// well-formed: every method has the expected shape and the constructor is
// present at method number 1.
func CheckActorExports(t *testing.T, act runtime.VMActor) {
	exports := act.Exports()
	require.NotEmpty(t, exports)

	_, found := exports[builtin.MethodConstructor]
	assert.True(t, found, "actor does not export a constructor")

	for num, m := range exports {
		rt := Runtime{t: t}
		rt.verifyExportedMethodType(reflect.ValueOf(m))
		assert.NotNil(t, m, "method %d is nil", num)
	}
}
