package adt_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/market-actors/actors/util/adt"
	"github.com/filecoin-project/market-actors/support/ipld"
)

func newBalanceTable(t *testing.T) *adt.BalanceTable {
	store := ipld.NewADTStore(context.Background())
	emptyMap, err := adt.StoreEmptyBalanceTable(store)
	require.NoError(t, err)
	bt, err := adt.AsBalanceTable(store, emptyMap)
	require.NoError(t, err)
	return bt
}

func mustIDAddr(t *testing.T, id uint64) addr.Address {
	a, err := addr.NewIDAddress(id)
	require.NoError(t, err)
	return a
}

func TestBalanceTableGetAbsent(t *testing.T) {
	bt := newBalanceTable(t)
	bal, err := bt.Get(mustIDAddr(t, 100))
	require.NoError(t, err)
	assert.Equal(t, big.Zero(), bal)
}

func TestBalanceTableAdd(t *testing.T) {
	bt := newBalanceTable(t)
	a := mustIDAddr(t, 100)

	require.NoError(t, bt.Add(a, abi.NewTokenAmount(10)))
	require.NoError(t, bt.Add(a, abi.NewTokenAmount(20)))
	bal, err := bt.Get(a)
	require.NoError(t, err)
	assert.Equal(t, abi.NewTokenAmount(30), bal)

	// A negative add below zero fails and changes nothing.
	err = bt.Add(a, abi.NewTokenAmount(-31))
	require.Error(t, err)
	bal, err = bt.Get(a)
	require.NoError(t, err)
	assert.Equal(t, abi.NewTokenAmount(30), bal)

	// Subtracting to exactly zero prunes the entry.
	require.NoError(t, bt.Add(a, abi.NewTokenAmount(-30)))
	bal, err = bt.Get(a)
	require.NoError(t, err)
	assert.Equal(t, big.Zero(), bal)

	root, err := bt.Root()
	require.NoError(t, err)
	empty, err := adt.StoreEmptyBalanceTable(ipld.NewADTStore(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, empty, root)
}

func TestBalanceTableSubtractWithMinimum(t *testing.T) {
	a := mustIDAddr(t, 100)

	t.Run("subtract available above floor", func(t *testing.T) {
		bt := newBalanceTable(t)
		require.NoError(t, bt.Add(a, abi.NewTokenAmount(10)))

		sub, err := bt.SubtractWithMinimum(a, abi.NewTokenAmount(4), abi.NewTokenAmount(5))
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(4), sub)
		bal, err := bt.Get(a)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(6), bal)
	})

	t.Run("subtract clamps at floor", func(t *testing.T) {
		bt := newBalanceTable(t)
		require.NoError(t, bt.Add(a, abi.NewTokenAmount(10)))

		sub, err := bt.SubtractWithMinimum(a, abi.NewTokenAmount(20), abi.NewTokenAmount(5))
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(5), sub)
		bal, err := bt.Get(a)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(5), bal)
	})

	t.Run("balance at floor yields nothing", func(t *testing.T) {
		bt := newBalanceTable(t)
		require.NoError(t, bt.Add(a, abi.NewTokenAmount(5)))

		sub, err := bt.SubtractWithMinimum(a, abi.NewTokenAmount(2), abi.NewTokenAmount(10))
		require.NoError(t, err)
		assert.Equal(t, big.Zero(), sub)
		bal, err := bt.Get(a)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(5), bal)
	})
}

func TestBalanceTableMustSubtract(t *testing.T) {
	bt := newBalanceTable(t)
	a := mustIDAddr(t, 100)
	require.NoError(t, bt.Add(a, abi.NewTokenAmount(10)))

	require.Error(t, bt.MustSubtract(a, abi.NewTokenAmount(11)))
	require.NoError(t, bt.MustSubtract(a, abi.NewTokenAmount(10)))
	bal, err := bt.Get(a)
	require.NoError(t, err)
	assert.Equal(t, big.Zero(), bal)
}

func TestBalanceTableTotal(t *testing.T) {
	bt := newBalanceTable(t)
	total, err := bt.Total()
	require.NoError(t, err)
	assert.Equal(t, big.Zero(), total)

	require.NoError(t, bt.Add(mustIDAddr(t, 100), abi.NewTokenAmount(10)))
	require.NoError(t, bt.Add(mustIDAddr(t, 101), abi.NewTokenAmount(20)))
	require.NoError(t, bt.Add(mustIDAddr(t, 100), abi.NewTokenAmount(3)))

	total, err = bt.Total()
	require.NoError(t, err)
	assert.Equal(t, abi.NewTokenAmount(33), total)
}
