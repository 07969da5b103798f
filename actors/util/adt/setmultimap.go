package adt

import (
	"github.com/filecoin-project/go-state-types/abi"
	cid "github.com/ipfs/go-cid"
	typegen "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// SetMultimap is a hamt of hamts, ie a multimap with unordered values.
type SetMultimap struct {
	mp            *Map
	store         Store
	innerBitwidth int
}

// AsSetMultimap interprets a store as a HAMT-based map of HAMT-based sets
// with root `r`.
func AsSetMultimap(s Store, r cid.Cid, outerBitwidth, innerBitwidth int) (*SetMultimap, error) {
	m, err := AsMap(s, r, outerBitwidth)
	if err != nil {
		return nil, err
	}
	return &SetMultimap{mp: m, store: s, innerBitwidth: innerBitwidth}, nil
}

// MakeEmptySetMultimap creates a new map backed by an empty HAMT.
func MakeEmptySetMultimap(s Store, bitwidth int) (*SetMultimap, error) {
	m, err := MakeEmptyMap(s, bitwidth)
	if err != nil {
		return nil, err
	}
	return &SetMultimap{mp: m, store: s, innerBitwidth: bitwidth}, nil
}

// StoreEmptySetMultimap creates and stores a new empty multimap, returning
// its CID.
func StoreEmptySetMultimap(s Store, bitwidth int) (cid.Cid, error) {
	mm, err := MakeEmptySetMultimap(s, bitwidth)
	if err != nil {
		return cid.Undef, err
	}
	return mm.Root()
}

// Root returns the root cid of the underlying HAMT.
func (mm *SetMultimap) Root() (cid.Cid, error) {
	return mm.mp.Root()
}

// Put adds `v` to the set associated with `key`.
func (mm *SetMultimap) Put(key abi.Keyer, v uint64) error {
	// Load the hamt under key, or initialize a new empty one if not found.
	set, found, err := mm.get(key)
	if err != nil {
		return err
	}
	if !found {
		set, err = MakeEmptySet(mm.store, mm.innerBitwidth)
		if err != nil {
			return err
		}
	}

	if err = set.Put(abi.UIntKey(v)); err != nil {
		return xerrors.Errorf("failed to add value to set %v: %w", key, err)
	}

	src, err := set.Root()
	if err != nil {
		return xerrors.Errorf("failed to flush set root: %w", err)
	}
	newSetRoot := typegen.CborCid(src)
	err = mm.mp.Put(key, &newSetRoot)
	if err != nil {
		return xerrors.Errorf("failed to store set under key %v: %w", key, err)
	}
	return nil
}

// RemoveAll removes all values for `key`.
func (mm *SetMultimap) RemoveAll(key abi.Keyer) error {
	if _, err := mm.mp.TryDelete(key); err != nil {
		return xerrors.Errorf("failed to delete set key %v: %w", key, err)
	}
	return nil
}

// ForEach iterates over all values for `key`.
func (mm *SetMultimap) ForEach(key abi.Keyer, fn func(v uint64) error) error {
	set, found, err := mm.get(key)
	if err != nil {
		return err
	}
	if found {
		return set.ForEach(func(k string) error {
			v, err := abi.ParseUIntKey(k)
			if err != nil {
				return err
			}
			return fn(v)
		})
	}
	return nil
}

// ForAll iterates over every key and each of its values.
func (mm *SetMultimap) ForAll(fn func(k abi.Keyer, v uint64) error) error {
	var setRoot typegen.CborCid
	return mm.mp.ForEach(&setRoot, func(k string) error {
		set, err := AsSet(mm.store, cid.Cid(setRoot), mm.innerBitwidth)
		if err != nil {
			return err
		}
		return set.ForEach(func(sk string) error {
			v, err := abi.ParseUIntKey(sk)
			if err != nil {
				return err
			}
			return fn(rawStringKey(k), v)
		})
	})
}

func (mm *SetMultimap) get(key abi.Keyer) (*Set, bool, error) {
	var setRoot typegen.CborCid
	found, err := mm.mp.Get(key, &setRoot)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load set key %v: %w", key, err)
	}
	var set *Set
	if found {
		set, err = AsSet(mm.store, cid.Cid(setRoot), mm.innerBitwidth)
		if err != nil {
			return nil, false, err
		}
	}
	return set, found, nil
}

// rawStringKey passes a pre-encoded map key through the Keyer interface.
type rawStringKey string

func (s rawStringKey) Key() string {
	return string(s)
}
