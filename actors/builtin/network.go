package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
)

// Chain timing. An epoch lasts 30 seconds on mainnet.
const (
	EpochDurationSeconds = 30
	SecondsInHour        = 60 * 60
	SecondsInDay         = 24 * SecondsInHour
	EpochsInHour         = SecondsInHour / EpochDurationSeconds
	EpochsInDay          = 24 * EpochsInHour
	EpochsInYear         = 365 * EpochsInDay
)

// The maximum supply of Filecoin that will ever exist, in attoFIL.
var TotalFilecoin = big.Mul(big.NewInt(2_000_000_000), big.NewInt(1e18))

// BigFrac is an unreduced fraction of big integers.
type BigFrac struct {
	Numerator   big.Int
	Denominator big.Int
}

// Epoch at which the chain began; deals cannot start before it.
const GenesisEpoch = abi.ChainEpoch(0)
