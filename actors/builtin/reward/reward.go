// Package reward carries the subset of the reward actor's external interface
// invoked by the market actor.
package reward

import (
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/market-actors/actors/builtin"
)

// ThisEpochRewardReturn is the result of the reward actor's ThisEpochReward
// method. Deal collateral bounds read the baseline power.
type ThisEpochRewardReturn struct {
	ThisEpochRewardSmoothed builtin.FilterEstimate
	ThisEpochBaselinePower  abi.StoragePower
}
