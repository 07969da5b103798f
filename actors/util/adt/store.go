package adt

import (
	"context"

	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"
)

// Store defines an interface required to back the ADTs in this package.
type Store interface {
	Context() context.Context
	ipldcbor.IpldStore
}

// Runtime is the subset of the actor runtime the ADTs need for storage.
type Runtime interface {
	StoreGet(c cid.Cid, o cbor.Unmarshaler) bool
	StorePut(x cbor.Marshaler) cid.Cid
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})
}

// AsStore allows a runtime to satisfy the adt.Store interface.
func AsStore(rt Runtime) Store {
	return rtStore{rt}
}

type rtStore struct {
	Runtime
}

var _ Store = &rtStore{}

func (r rtStore) Context() context.Context {
	return context.TODO()
}

func (r rtStore) Get(_ context.Context, c cid.Cid, out interface{}) error {
	o, ok := out.(cbor.Unmarshaler)
	if !ok {
		r.Abortf(exitcode.ErrSerialization, "object does not implement CBOR Unmarshaler")
	}
	if !r.StoreGet(c, o) {
		r.Abortf(exitcode.ErrNotFound, "not found")
	}
	return nil
}

func (r rtStore) Put(_ context.Context, x interface{}) (cid.Cid, error) {
	m, ok := x.(cbor.Marshaler)
	if !ok {
		r.Abortf(exitcode.ErrSerialization, "object does not implement CBOR Marshaler")
	}
	return r.StorePut(m), nil
}

// WrapStore adapts a vanilla IPLD store as an ADT store.
func WrapStore(ctx context.Context, store ipldcbor.IpldStore) Store {
	return &wstore{
		ctx:       ctx,
		IpldStore: store,
	}
}

type wstore struct {
	ctx context.Context
	ipldcbor.IpldStore
}

var _ Store = &wstore{}

func (s *wstore) Context() context.Context {
	return s.ctx
}
