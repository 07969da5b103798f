// Package datacap carries the subset of the datacap token's FRC-46 interface
// invoked by the market actor.
package datacap

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
)

// TokenPrecision is the number of datacap token units per byte of piece
// size.
var TokenPrecision = big.NewInt(1_000_000_000_000_000_000)

// BalanceOf converts a piece size into the datacap token amount it consumes.
func BalanceOf(size abi.PaddedPieceSize) abi.TokenAmount {
	return big.Mul(big.NewIntUnsigned(uint64(size)), TokenPrecision)
}

// TransferFromParams is the FRC-46 operator transfer request. OperatorData
// is opaque to the token and forwarded to the receiver hook.
type TransferFromParams struct {
	From         addr.Address
	To           addr.Address
	Amount       abi.TokenAmount
	OperatorData []byte
}

// TransferFromReturn reports the post-transfer balances and the receiver
// hook's response.
type TransferFromReturn struct {
	FromBalance   abi.TokenAmount
	ToBalance     abi.TokenAmount
	Allowance     abi.TokenAmount
	RecipientData []byte
}
