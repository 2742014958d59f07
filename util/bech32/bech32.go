// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"github.com/pkg/errors"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const invalidValue = 255

var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// charsetRev maps a lower case charset character to its 5-bit value.
var charsetRev = func() [256]byte {
	var rev [256]byte
	for i := range rev {
		rev[i] = invalidValue
	}
	for i := 0; i < len(charset); i++ {
		rev[charset[i]] = byte(i)
	}
	return rev
}()

var (
	// ErrInvalidCharacter indicates a character outside of the bech32 charset.
	ErrInvalidCharacter = errors.New("invalid bech32 character")

	// ErrInvalidByte indicates a value wider than the declared bit width.
	ErrInvalidByte = errors.New("invalid byte")

	// ErrInvalidPadding indicates leftover bits that may not be dropped.
	ErrInvalidPadding = errors.New("invalid padding")
)

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func toLower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

func toLowerString(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = toLower(s[i])
	}
	return string(b)
}

// Rebase32To5 maps every character of payload, regardless of its case, to
// its 5-bit value in the charset.
func Rebase32To5(payload string) ([]byte, error) {
	values := make([]byte, len(payload))
	for i := 0; i < len(payload); i++ {
		value := charsetRev[toLower(payload[i])]
		if value == invalidValue {
			return nil, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", payload[i], i)
		}
		values[i] = value
	}
	return values, nil
}

// Polymod calculates the BCH checksum of a sequence of 5-bit values. The
// result is XORed with 1, so a correctly checksummed sequence gives 0.
func Polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk ^ 1
}

// ConvertBits regroups a byte slice whose elements are fromBits wide into
// elements toBits wide. With pad set, a trailing partial group is padded
// with zero bits; otherwise leftover bits must be fewer than fromBits and
// all zero.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint8
	maxv := uint32(1)<<toBits - 1
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1

	regrouped := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	for i, value := range data {
		if value>>fromBits != 0 {
			return nil, errors.Wrapf(ErrInvalidByte, "%#x at position %d exceeds %d bits",
				value, i, fromBits)
		}
		acc = (acc<<fromBits | uint32(value)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxv))
		}
	}

	if pad {
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits || acc<<(toBits-bits)&maxv != 0 {
		return nil, errors.Wrapf(ErrInvalidPadding, "%d leftover bits", bits)
	}

	return regrouped, nil
}
