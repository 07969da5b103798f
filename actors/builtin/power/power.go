// Package power carries the subset of the power actor's external interface
// invoked by the market actor.
package power

import (
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/market-actors/actors/builtin"
)

// CurrentTotalPowerReturn is the result of the power actor's
// CurrentTotalPower method. Deal collateral bounds read the raw byte power.
type CurrentTotalPowerReturn struct {
	RawBytePower            abi.StoragePower
	QualityAdjPower         abi.StoragePower
	PledgeCollateral        abi.TokenAmount
	QualityAdjPowerSmoothed builtin.FilterEstimate
}
