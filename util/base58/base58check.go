// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"

	"github.com/kaspanet/addrvalidator/util/hashes"
	"github.com/pkg/errors"
)

const (
	// ChecksumSize is the number of trailing checksum bytes.
	ChecksumSize = 4

	// HashSize is the size of the hash carried by an address.
	HashSize = 20

	// PayloadSize is the size of a decoded Base58Check address.
	PayloadSize = 1 + HashSize + ChecksumSize
)

var (
	// ErrInvalidLength indicates a decoded address that is not PayloadSize
	// bytes long.
	ErrInvalidLength = errors.New("invalid decoded address length")

	// ErrChecksumMismatch indicates that the embedded checksum does not
	// match the double sha256 of the version and hash.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// checksum returns the first four bytes of sha256^2 of input.
func checksum(input []byte) []byte {
	return hashes.DoubleHashB(input)[:ChecksumSize]
}

// VerifyChecksum returns whether payload is a PayloadSize-byte value whose
// last four bytes are the checksum of the bytes before them.
func VerifyChecksum(payload []byte) bool {
	if len(payload) != PayloadSize {
		return false
	}
	versionAndHash := payload[:PayloadSize-ChecksumSize]
	return bytes.Equal(checksum(versionAndHash), payload[PayloadSize-ChecksumSize:])
}

// CheckDecode decodes a Base58Check address and verifies its length and
// checksum, returning the version byte and the hash.
func CheckDecode(s string) (version byte, hash []byte, err error) {
	decoded, err := Decode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) != PayloadSize {
		return 0, nil, errors.Wrapf(ErrInvalidLength, "got %d bytes, want %d",
			len(decoded), PayloadSize)
	}
	if !VerifyChecksum(decoded) {
		return 0, nil, ErrChecksumMismatch
	}
	return decoded[0], decoded[1 : PayloadSize-ChecksumSize], nil
}

// CheckEncode prepends a version byte and appends a four byte checksum.
func CheckEncode(input []byte, version byte) string {
	b := make([]byte, 0, 1+len(input)+ChecksumSize)
	b = append(b, version)
	b = append(b, input...)
	b = append(b, checksum(b)...)
	return Encode(b)
}
