package market

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/filecoin-project/market-actors/actors/builtin"
)

// DealUpdatesInterval is the number of epochs between payment and other
// state processing for deals. Deal IDs are spread across the interval by
// NextUpdateEpoch.
const DealUpdatesInterval = builtin.EpochsInDay

// DealMaxLabelSize is the maximum size of a deal label, in bytes.
const DealMaxLabelSize = 256

// MarketDefaultAllocationTermBuffer is the amount of slack a verified
// allocation's maximum term gets beyond the deal's own duration.
const MarketDefaultAllocationTermBuffer = 90 * builtin.EpochsInDay

// MaximumVerifiedAllocationTerm bounds the term of any requested allocation.
const MaximumVerifiedAllocationTerm = 5 * builtin.EpochsInYear

// MaximumVerifiedAllocationExpiration bounds how far in the future a
// requested allocation may remain claimable.
const MaximumVerifiedAllocationExpiration = 60 * builtin.EpochsInDay

// ProviderCollateralSupplyTarget is the fraction of circulating supply
// backing the network's total provider deal collateral.
var ProviderCollateralSupplyTarget = builtin.BigFrac{
	Numerator:   big.NewInt(1),
	Denominator: big.NewInt(100),
}

// DealDurationBounds returns the minimum and maximum deal duration.
func DealDurationBounds(_ abi.PaddedPieceSize) (min abi.ChainEpoch, max abi.ChainEpoch) {
	return 180 * builtin.EpochsInDay, 540 * builtin.EpochsInDay
}

func DealPricePerEpochBounds(_ abi.PaddedPieceSize, _ abi.ChainEpoch) (min abi.TokenAmount, max abi.TokenAmount) {
	return abi.NewTokenAmount(0), builtin.TotalFilecoin
}

// DealProviderCollateralBounds returns the minimum collateral a provider
// must pledge for a deal: the piece's share of network power applied to the
// collateral supply target.
func DealProviderCollateralBounds(pieceSize abi.PaddedPieceSize, verified bool,
	networkRawPower, baselinePower abi.StoragePower,
	networkCirculatingSupply abi.TokenAmount) (min, max abi.TokenAmount) {

	lockTargetNum := big.Mul(ProviderCollateralSupplyTarget.Numerator, networkCirculatingSupply)
	lockTargetDenom := ProviderCollateralSupplyTarget.Denominator
	powerShareNum := big.NewIntUnsigned(uint64(pieceSize))
	powerShareDenom := big.Max(big.Max(networkRawPower, baselinePower), powerShareNum)

	num := big.Mul(lockTargetNum, powerShareNum)
	denom := big.Mul(lockTargetDenom, powerShareDenom)
	minCollateral := big.Div(num, denom)
	return minCollateral, builtin.TotalFilecoin
}

func DealClientCollateralBounds(_ abi.PaddedPieceSize, _ abi.ChainEpoch) (min abi.TokenAmount, max abi.TokenAmount) {
	return abi.NewTokenAmount(0), builtin.TotalFilecoin
}

// CollateralPenaltyForDealActivationMissed is the penalty for a deal not
// being activated by its start epoch: all of the provider's collateral.
func CollateralPenaltyForDealActivationMissed(providerCollateral abi.TokenAmount) abi.TokenAmount {
	return providerCollateral
}

// NextUpdateEpoch returns the smallest epoch e >= earliest such that
// e mod interval == id mod interval. Sequential deal IDs thus land on
// distinct epochs of the interval cycle, spreading cron load evenly without
// any shared scheduling state.
func NextUpdateEpoch(id abi.DealID, interval int64, earliest abi.ChainEpoch) abi.ChainEpoch {
	offset := int64(uint64(id) % uint64(interval))
	rem := int64(earliest) % interval

	if rem <= offset {
		return earliest + abi.ChainEpoch(offset-rem)
	}
	return earliest + abi.ChainEpoch(interval-rem+offset)
}
