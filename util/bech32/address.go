// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"bytes"
	"strings"

	"github.com/kaspanet/addrvalidator/netparams"
	"github.com/pkg/errors"
)

const (
	separator = '1'

	checksumLength = 6

	// p2wpkhAddressLength and p2wshAddressLength are the lengths of segwit
	// version 0 addresses carrying a 20-byte and a 32-byte program.
	p2wpkhAddressLength = 42
	p2wshAddressLength  = 62
)

var (
	// ErrInvalidLength indicates an address whose length is not one of the
	// segwit version 0 address lengths.
	ErrInvalidLength = errors.New("invalid bech32 address length")

	// ErrInvalidSeparator indicates an address that does not split into a
	// non-empty prefix and payload around exactly one separator.
	ErrInvalidSeparator = errors.New("invalid separator")

	// ErrMixedCase indicates an address mixing upper and lower case.
	ErrMixedCase = errors.New("mixed case")

	// ErrWrongPrefix indicates a prefix belonging to another network.
	ErrWrongPrefix = errors.New("wrong prefix")

	// ErrChecksumMismatch indicates a checksum that does not match the
	// prefix and witness program.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// SplitAddress splits address around its separator into the human-readable
// prefix and the data payload.
func SplitAddress(address string) (prefix, payload string, err error) {
	if strings.Count(address, string(separator)) != 1 {
		return "", "", errors.Wrapf(ErrInvalidSeparator, "address must contain exactly one '%c'", separator)
	}
	i := strings.IndexByte(address, separator)
	prefix, payload = address[:i], address[i+1:]
	if prefix == "" || payload == "" {
		return "", "", errors.Wrap(ErrInvalidSeparator, "empty prefix or payload")
	}
	return prefix, payload, nil
}

// CheckCasing returns whether prefix and payload share the case of the first
// prefix character. The first payload character is not checked.
func CheckCasing(prefix, payload string) bool {
	if prefix == "" {
		return false
	}
	wrongCase := isUpper
	if isUpper(prefix[0]) {
		wrongCase = isLower
	}

	for i := 1; i < len(prefix); i++ {
		if wrongCase(prefix[i]) {
			return false
		}
	}
	for i := 1; i < len(payload); i++ {
		if wrongCase(payload[i]) {
			return false
		}
	}
	return true
}

// VerifyChecksum returns whether the last six values are the checksum of
// prefixBytes followed by the values before them.
func VerifyChecksum(prefixBytes, values []byte) bool {
	if len(values) < checksumLength {
		return false
	}
	program := values[:len(values)-checksumLength]

	checksumInput := make([]byte, 0, len(prefixBytes)+len(program)+checksumLength)
	checksumInput = append(checksumInput, prefixBytes...)
	checksumInput = append(checksumInput, program...)
	checksumInput = append(checksumInput, make([]byte, checksumLength)...)
	mod := Polymod(checksumInput)

	// 30 bits fit in 5 bytes, which regroup into 8 values. The checksum is
	// the low 6 of them.
	modBytes := []byte{0, byte(mod >> 24), byte(mod >> 16), byte(mod >> 8), byte(mod)}
	groups, err := ConvertBits(modBytes, 8, 5, true)
	if err != nil {
		return false
	}
	return bytes.Equal(groups[len(groups)-checksumLength:], values[len(program):])
}

// Validate runs a segwit version 0 address through the whole bech32
// validation sequence for the given network.
func Validate(address string, params *netparams.Params) error {
	if len(address) != p2wpkhAddressLength && len(address) != p2wshAddressLength {
		return errors.Wrapf(ErrInvalidLength, "got %d characters", len(address))
	}

	prefix, payload, err := SplitAddress(address)
	if err != nil {
		return err
	}

	if !CheckCasing(prefix, payload) {
		return ErrMixedCase
	}

	if toLowerString(prefix) != params.Bech32Prefix {
		return errors.Wrapf(ErrWrongPrefix, "got %q, want %q on %s",
			prefix, params.Bech32Prefix, params.Name)
	}

	values, err := Rebase32To5(payload)
	if err != nil {
		return err
	}

	if !VerifyChecksum(params.Bech32PrefixBytes, values) {
		return ErrChecksumMismatch
	}
	return nil
}
