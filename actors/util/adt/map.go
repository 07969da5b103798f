package adt

import (
	"bytes"
	"crypto/sha256"

	hamt "github.com/filecoin-project/go-hamt-ipld/v3"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	cid "github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// DefaultHamtBitwidth is the default branching factor exponent for HAMTs.
const DefaultHamtBitwidth = 5

// DefaultHamtOptions specifies the hash function chain HAMTs use.
var DefaultHamtOptions = []hamt.Option{
	hamt.UseHashFunction(func(input []byte) []byte {
		res := sha256.Sum256(input)
		return res[:]
	}),
}

// Map stores key-value pairs in a HAMT.
type Map struct {
	lastCid cid.Cid
	root    *hamt.Node
	store   Store
}

// AsMap interprets a store as a HAMT-based map with root `r`.
func AsMap(s Store, root cid.Cid, bitwidth int) (*Map, error) {
	options := append(DefaultHamtOptions, hamt.UseTreeBitWidth(bitwidth))
	nd, err := hamt.LoadNode(s.Context(), s, root, options...)
	if err != nil {
		return nil, xerrors.Errorf("failed to load hamt node: %w", err)
	}
	return &Map{
		lastCid: root,
		root:    nd,
		store:   s,
	}, nil
}

// MakeEmptyMap creates a new map backed by an empty HAMT.
func MakeEmptyMap(s Store, bitwidth int) (*Map, error) {
	options := append(DefaultHamtOptions, hamt.UseTreeBitWidth(bitwidth))
	nd, err := hamt.NewNode(s, options...)
	if err != nil {
		return nil, err
	}
	return &Map{
		lastCid: cid.Undef,
		root:    nd,
		store:   s,
	}, nil
}

// StoreEmptyMap creates and stores a new empty map, returning its CID.
func StoreEmptyMap(s Store, bitwidth int) (cid.Cid, error) {
	m, err := MakeEmptyMap(s, bitwidth)
	if err != nil {
		return cid.Undef, err
	}
	return m.Root()
}

// Root returns the root cid of the underlying HAMT.
func (m *Map) Root() (cid.Cid, error) {
	if err := m.root.Flush(m.store.Context()); err != nil {
		return cid.Undef, xerrors.Errorf("failed to flush map root: %w", err)
	}
	c, err := m.store.Put(m.store.Context(), m.root)
	if err != nil {
		return cid.Undef, xerrors.Errorf("writing map root object: %w", err)
	}
	m.lastCid = c
	return c, nil
}

// Put adds value `v` with key `k` to the hamt store.
func (m *Map) Put(k abi.Keyer, v cbor.Marshaler) error {
	if err := m.root.Set(m.store.Context(), k.Key(), v); err != nil {
		return xerrors.Errorf("failed to put key %v value %v in map: %w", k, v, err)
	}
	return nil
}

// Get retrieves the value at `k` into `out`, if the `k` is present.
func (m *Map) Get(k abi.Keyer, out cbor.Unmarshaler) (bool, error) {
	found, err := m.root.Find(m.store.Context(), k.Key(), out)
	if err != nil {
		return false, xerrors.Errorf("failed to get key %v in map: %w", k, err)
	}
	return found, nil
}

// Has checks if a key exists in the map.
func (m *Map) Has(k abi.Keyer) (bool, error) {
	found, err := m.root.Find(m.store.Context(), k.Key(), nil)
	if err != nil {
		return false, xerrors.Errorf("failed to check key %v in map: %w", k, err)
	}
	return found, nil
}

// TryDelete removes the value at `k` from the hamt store, if it exists.
func (m *Map) TryDelete(k abi.Keyer) (bool, error) {
	found, err := m.root.Delete(m.store.Context(), k.Key())
	if err != nil {
		return false, xerrors.Errorf("failed to delete key %v in map: %w", k, err)
	}
	return found, nil
}

// Delete removes the value at `k` from the hamt store, expecting it to exist.
func (m *Map) Delete(k abi.Keyer) error {
	found, err := m.root.Delete(m.store.Context(), k.Key())
	if err != nil {
		return xerrors.Errorf("failed to delete key %v in map: %w", k, err)
	} else if !found {
		return xerrors.Errorf("no such key %v to delete in map", k)
	}
	return nil
}

// ForEach iterates all entries in the map, deserializing each value into
// `out` and calling fn with the corresponding key. Iteration halts if fn
// returns an error.
func (m *Map) ForEach(out cbor.Unmarshaler, fn func(key string) error) error {
	return m.root.ForEach(m.store.Context(), func(k string, val *cbg.Deferred) error {
		if out != nil {
			if deferred, ok := out.(*cbg.Deferred); ok {
				*deferred = *val
			} else if err := out.UnmarshalCBOR(bytes.NewReader(val.Raw)); err != nil {
				return err
			}
		}
		return fn(k)
	})
}

// CollectKeys collects all keys from the map into a slice of strings.
func (m *Map) CollectKeys() (out []string, err error) {
	err = m.ForEach(nil, func(key string) error {
		out = append(out, key)
		return nil
	})
	return
}
