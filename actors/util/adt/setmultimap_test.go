package adt_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/market-actors/actors/util/adt"
	"github.com/filecoin-project/market-actors/support/ipld"
)

func TestSetMultimap(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	mm, err := adt.MakeEmptySetMultimap(store, adt.DefaultHamtBitwidth)
	require.NoError(t, err)

	epoch := abi.IntKey(600)
	require.NoError(t, mm.Put(epoch, 1))
	require.NoError(t, mm.Put(epoch, 2))
	require.NoError(t, mm.Put(epoch, 2)) // idempotent
	require.NoError(t, mm.Put(abi.IntKey(601), 3))

	var seen []uint64
	require.NoError(t, mm.ForEach(epoch, func(v uint64) error {
		seen = append(seen, v)
		return nil
	}))
	assert.ElementsMatch(t, []uint64{1, 2}, seen)

	// Absent key iterates nothing.
	require.NoError(t, mm.ForEach(abi.IntKey(999), func(v uint64) error {
		t.Fatalf("unexpected value %d", v)
		return nil
	}))

	require.NoError(t, mm.RemoveAll(epoch))
	require.NoError(t, mm.ForEach(epoch, func(v uint64) error {
		t.Fatalf("unexpected value %d after removal", v)
		return nil
	}))

	// The other key is untouched.
	seen = nil
	require.NoError(t, mm.ForEach(abi.IntKey(601), func(v uint64) error {
		seen = append(seen, v)
		return nil
	}))
	assert.Equal(t, []uint64{3}, seen)

	// Root round-trips.
	root, err := mm.Root()
	require.NoError(t, err)
	mm2, err := adt.AsSetMultimap(store, root, adt.DefaultHamtBitwidth, adt.DefaultHamtBitwidth)
	require.NoError(t, err)
	seen = nil
	require.NoError(t, mm2.ForEach(abi.IntKey(601), func(v uint64) error {
		seen = append(seen, v)
		return nil
	}))
	assert.Equal(t, []uint64{3}, seen)
}
