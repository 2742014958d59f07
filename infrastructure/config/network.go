package config

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/addrvalidator/netparams"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet bool   `long:"testnet" description:"Validate addresses for the test network"`
	Network string `long:"network" description:"Name of the network to validate addresses for (mainnet or testnet)"`

	ActiveNetParams *netparams.Params
}

// ResolveNetwork parses the network command line argument and sets NetParams accordingly.
// It returns error if conflicting networks were selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// default net is main net
	networkFlags.ActiveNetParams = &netparams.MainnetParams

	if networkFlags.Network != "" {
		params, err := netparams.ParamsByName(networkFlags.Network)
		if err != nil {
			return err
		}
		networkFlags.ActiveNetParams = params
	}

	if networkFlags.Testnet {
		if networkFlags.ActiveNetParams != &netparams.TestnetParams && networkFlags.Network != "" {
			err := errors.Errorf("--testnet cannot be used together with --network=%s. "+
				"Please choose only one network", networkFlags.Network)
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return err
		}
		networkFlags.ActiveNetParams = &netparams.TestnetParams
	}

	return nil
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *netparams.Params {
	return networkFlags.ActiveNetParams
}

// IsTestnet returns whether the resolved network is the test network.
func (networkFlags *NetworkFlags) IsTestnet() bool {
	return networkFlags.ActiveNetParams == &netparams.TestnetParams
}
