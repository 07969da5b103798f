// Package miner carries the subset of the miner actor's external interface
// invoked by the market actor.
package miner

import (
	addr "github.com/filecoin-project/go-address"
)

// GetControlAddressesReturn is the result of the miner ControlAddresses
// method: the addresses authorized to act for the miner.
type GetControlAddressesReturn struct {
	Owner        addr.Address
	Worker       addr.Address
	ControlAddrs []addr.Address
}
