package adt

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"
)

// BalanceTable is a specialization of a map of addresses to (positive) token
// amounts. Absent keys implicitly have a balance of zero; entries are pruned
// when they reach zero.
type BalanceTable Map

// BalanceTableBitwidth is the hamt bitwidth for balance tables.
const BalanceTableBitwidth = DefaultHamtBitwidth

// AsBalanceTable interprets a store as a balance table with root `r`.
func AsBalanceTable(s Store, r cid.Cid) (*BalanceTable, error) {
	m, err := AsMap(s, r, BalanceTableBitwidth)
	if err != nil {
		return nil, err
	}
	return (*BalanceTable)(m), nil
}

// StoreEmptyBalanceTable creates and stores a new empty balance table,
// returning its CID.
func StoreEmptyBalanceTable(s Store) (cid.Cid, error) {
	return StoreEmptyMap(s, BalanceTableBitwidth)
}

// Root returns the root cid of the underlying HAMT.
func (t *BalanceTable) Root() (cid.Cid, error) {
	return (*Map)(t).Root()
}

// Get returns the balance for a key, zero if they have no balance.
func (t *BalanceTable) Get(key addr.Address) (abi.TokenAmount, error) {
	var value abi.TokenAmount
	found, err := (*Map)(t).Get(abi.AddrKey(key), &value)
	if !found || err != nil {
		value = big.Zero()
	}
	return value, err
}

// Add adds an amount to a balance, requiring the resulting balance to be
// non-negative. A balance reaching exactly zero is removed from the table.
func (t *BalanceTable) Add(key addr.Address, value abi.TokenAmount) error {
	prev, err := t.Get(key)
	if err != nil {
		return err
	}
	sum := big.Add(prev, value)
	switch {
	case sum.LessThan(big.Zero()):
		return xerrors.Errorf("negative balance for %v adding %v to %v", key, value, prev)
	case sum.IsZero():
		_, err = (*Map)(t).TryDelete(abi.AddrKey(key))
		return err
	default:
		return (*Map)(t).Put(abi.AddrKey(key), &sum)
	}
}

// SubtractWithMinimum subtracts up to the specified amount from a balance,
// without reducing the balance below some minimum. Returns the amount
// subtracted, which may be less than requested.
func (t *BalanceTable) SubtractWithMinimum(key addr.Address, req abi.TokenAmount, floor abi.TokenAmount) (abi.TokenAmount, error) {
	prev, err := t.Get(key)
	if err != nil {
		return big.Zero(), err
	}
	available := big.Max(big.Zero(), big.Sub(prev, floor))
	sub := big.Min(available, req)
	if sub.Sign() > 0 {
		err = t.Add(key, sub.Neg())
		if err != nil {
			return big.Zero(), err
		}
	}
	return sub, nil
}

// MustSubtract subtracts the given amount from a balance, failing if the
// balance is insufficient.
func (t *BalanceTable) MustSubtract(key addr.Address, req abi.TokenAmount) error {
	prev, err := t.Get(key)
	if err != nil {
		return err
	}
	if req.GreaterThan(prev) {
		return xerrors.New("couldn't subtract the requested amount")
	}
	return t.Add(key, req.Neg())
}

// Total returns the total balance held by this BalanceTable.
func (t *BalanceTable) Total() (abi.TokenAmount, error) {
	total := big.Zero()
	var cur abi.TokenAmount
	err := (*Map)(t).ForEach(&cur, func(key string) error {
		total = big.Add(total, cur)
		return nil
	})
	return total, err
}
