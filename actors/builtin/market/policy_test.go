package market_test

import (
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"

	"github.com/filecoin-project/market-actors/actors/builtin"
	"github.com/filecoin-project/market-actors/actors/builtin/market"
)

func TestNextUpdateEpoch(t *testing.T) {
	const interval = int64(100)

	t.Run("stays within one interval of the earliest epoch", func(t *testing.T) {
		for _, dealID := range []abi.DealID{0, 1, 42, 99, 100, 101, 1000000} {
			for _, earliest := range []abi.ChainEpoch{0, 1, 99, 100, 101, 12345} {
				next := market.NextUpdateEpoch(dealID, interval, earliest)
				assert.GreaterOrEqual(t, next, earliest)
				assert.Less(t, int64(next-earliest), interval)
			}
		}
	})

	t.Run("lands on the deal's slot", func(t *testing.T) {
		for _, dealID := range []abi.DealID{0, 1, 42, 99, 100, 101} {
			next := market.NextUpdateEpoch(dealID, interval, 1234)
			assert.Equal(t, int64(uint64(dealID)%uint64(interval)), int64(next)%interval)
		}
	})

	t.Run("returns the earliest epoch when it is already on the slot", func(t *testing.T) {
		assert.Equal(t, abi.ChainEpoch(200), market.NextUpdateEpoch(0, interval, 200))
		assert.Equal(t, abi.ChainEpoch(242), market.NextUpdateEpoch(42, interval, 242))
	})

	t.Run("consecutive updates are one interval apart", func(t *testing.T) {
		first := market.NextUpdateEpoch(7, interval, 500)
		second := market.NextUpdateEpoch(7, interval, first+1)
		assert.Equal(t, interval, int64(second-first))
	})

	t.Run("distinct deals spread across distinct epochs", func(t *testing.T) {
		seen := make(map[abi.ChainEpoch]abi.DealID)
		for id := abi.DealID(0); id < abi.DealID(interval); id++ {
			next := market.NextUpdateEpoch(id, interval, 1000)
			prev, clash := seen[next]
			assert.False(t, clash, "deals %d and %d share epoch %d", prev, id, next)
			seen[next] = id
		}
	})
}

func TestDealClientCollateralBounds(t *testing.T) {
	min, max := market.DealClientCollateralBounds(abi.PaddedPieceSize(2048), abi.ChainEpoch(100))
	assert.True(t, min.IsZero())
	assert.Equal(t, builtin.TotalFilecoin, max)
}

func TestDealProviderCollateralBounds(t *testing.T) {
	pieceSize := abi.PaddedPieceSize(2048)
	power := abi.NewStoragePower(1 << 50)

	t.Run("zero circulating supply yields a zero floor", func(t *testing.T) {
		min, _ := market.DealProviderCollateralBounds(pieceSize, false, power, power, abi.NewTokenAmount(0))
		assert.True(t, min.IsZero())
	})

	t.Run("floor scales with circulating supply", func(t *testing.T) {
		supply := abi.NewTokenAmount(1e18)
		small, _ := market.DealProviderCollateralBounds(pieceSize, false, power, power, supply)
		large, _ := market.DealProviderCollateralBounds(pieceSize, false, power, power, big.Mul(supply, big.NewInt(100)))
		assert.True(t, large.GreaterThanEqual(small))
	})

	t.Run("the ceiling is the total supply", func(t *testing.T) {
		_, max := market.DealProviderCollateralBounds(pieceSize, false, power, power, abi.NewTokenAmount(1e18))
		assert.Equal(t, builtin.TotalFilecoin, max)
	})
}
