package builtin

import (
	"github.com/filecoin-project/go-state-types/big"
)

// FilterEstimate is an alpha-beta filter state, carried on the wire by the
// reward and power actors. Only the position estimate is read here.
type FilterEstimate struct {
	PositionEstimate big.Int // Q.128 fixed point
	VelocityEstimate big.Int // Q.128 fixed point
}

// Estimate returns the filter's current position projected to an integer.
func (fe *FilterEstimate) Estimate() big.Int {
	return big.Rsh(fe.PositionEstimate, 128)
}
