// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import (
	"strings"

	"github.com/pkg/errors"
)

// Params defines a Bitcoin network by the address parameters that differ
// between networks. They are used to tell apart addresses intended for
// one network from those intended for another.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Base58Prefixes lists the leading characters a Base58Check address
	// (pay-to-pubkey-hash or pay-to-script-hash) may start with.
	Base58Prefixes string

	// Bech32Prefix is the human-readable part of segwit addresses.
	Bech32Prefix string

	// Bech32PrefixBytes is Bech32Prefix expanded into the 5-bit values
	// that are mixed into the bech32 checksum: the high bits of every
	// character, a zero separator, then the low bits of every character.
	Bech32PrefixBytes []byte
}

// HasBase58Prefix returns whether c is a leading character of a Base58Check
// address on this network.
func (p *Params) HasBase58Prefix(c byte) bool {
	return strings.IndexByte(p.Base58Prefixes, c) >= 0
}

// MainnetParams defines the network parameters for the main Bitcoin network.
var MainnetParams = Params{
	Name:              "mainnet",
	Base58Prefixes:    "13", // pubkey hash, script hash
	Bech32Prefix:      "bc",
	Bech32PrefixBytes: []byte{0x03, 0x03, 0x00, 0x02, 0x03},
}

// TestnetParams defines the network parameters for the test Bitcoin network.
var TestnetParams = Params{
	Name:              "testnet",
	Base58Prefixes:    "mn2", // pubkey hash (m or n), script hash
	Bech32Prefix:      "tb",
	Bech32PrefixBytes: []byte{0x03, 0x03, 0x00, 0x14, 0x02},
}

// ErrUnknownNetwork describes an error where the requested network name
// does not match any known network.
var ErrUnknownNetwork = errors.New("unknown network")

// ParamsByName returns the parameters of the network with the given name.
func ParamsByName(name string) (*Params, error) {
	switch strings.ToLower(name) {
	case MainnetParams.Name:
		return &MainnetParams, nil
	case TestnetParams.Name:
		return &TestnetParams, nil
	default:
		return nil, errors.Wrapf(ErrUnknownNetwork, "network %q", name)
	}
}
