// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"strings"

	"github.com/kaspanet/addrvalidator/netparams"
	"github.com/kaspanet/addrvalidator/util/base58"
	"github.com/kaspanet/addrvalidator/util/bech32"
	"github.com/pkg/errors"
)

// base58Prefixes are the leading characters of Base58Check addresses on
// all known networks.
const base58Prefixes = "13mn2"

var (
	// ErrUnknownFormat describes an address that is neither Base58Check nor
	// bech32 encoded.
	ErrUnknownFormat = errors.New("unknown address format")

	// ErrWrongNetwork describes an address of a known format that belongs
	// to another network.
	ErrWrongNetwork = errors.New("address belongs to another network")
)

// IsValidAddress returns whether address is a valid Bitcoin address on the
// main network, or on the test network if testnet is set.
func IsValidAddress(address string, testnet bool) bool {
	params := &netparams.MainnetParams
	if testnet {
		params = &netparams.TestnetParams
	}
	return IsValid(address, params)
}

// IsValid returns whether address is a valid Base58Check or bech32 address
// on the network described by params. It never fails: every malformed input
// is reported as invalid.
func IsValid(address string, params *netparams.Params) bool {
	err := validate(address, params)
	if err != nil {
		log.Tracef("Address %q is invalid on %s: %s", address, params.Name, err)
		return false
	}
	return true
}

func validate(address string, params *netparams.Params) error {
	if address == "" {
		return errors.Wrap(ErrUnknownFormat, "empty address")
	}

	if strings.IndexByte(base58Prefixes, address[0]) >= 0 {
		if !params.HasBase58Prefix(address[0]) {
			return errors.Wrapf(ErrWrongNetwork, "leading character %q", address[0])
		}
		_, _, err := base58.CheckDecode(address)
		return err
	}

	if len(address) >= 2 {
		prefix := strings.ToLower(address[:2])
		if prefix == netparams.MainnetParams.Bech32Prefix || prefix == netparams.TestnetParams.Bech32Prefix {
			if prefix != params.Bech32Prefix {
				return errors.Wrapf(ErrWrongNetwork, "prefix %q", address[:2])
			}
			return bech32.Validate(address, params)
		}
	}

	return errors.Wrapf(ErrUnknownFormat, "leading character %q", address[0])
}
