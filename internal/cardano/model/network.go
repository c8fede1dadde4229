// Package model defines domain models for Cardano chain synchronization.
package model

import "fmt"

// Network identifies the Cardano network being followed.
type Network string

var (
	Mainnet Network = "mainnet"
	Preprod Network = "preprod"
	Preview Network = "preview"
)

// Magic returns the protocol network magic for the network.
func (n Network) Magic() (uint32, error) {
	switch n {
	case Mainnet:
		return 764824073, nil
	case Preprod:
		return 1, nil
	case Preview:
		return 2, nil
	default:
		return 0, fmt.Errorf("unknown network %q", n)
	}
}
