// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"math/big"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var bigRadix = big.NewInt(58)

var (
	// ErrInvalidCharacter indicates a symbol outside of the base58 alphabet.
	ErrInvalidCharacter = errors.New("invalid base58 character")

	// ErrInvalidInputType indicates input that is not ASCII text.
	ErrInvalidInputType = errors.New("input is not ASCII text")
)

// Decode decodes a modified base58 string to a byte slice. Each leading '1'
// becomes a leading zero byte, the remainder is read as a big-endian base58
// number.
func Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return nil, errors.Wrapf(ErrInvalidInputType, "byte %#x at position %d", s[i], i)
		}
	}

	numZeros := 0
	for numZeros < len(s) && s[numZeros] == alphabetIdx0 {
		numZeros++
	}

	answer := big.NewInt(0)
	scratch := new(big.Int)
	for i := numZeros; i < len(s); i++ {
		digit := b58[s[i]]
		if digit == invalidDigit {
			return nil, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", s[i], i)
		}
		scratch.SetInt64(int64(digit))
		answer.Mul(answer, bigRadix)
		answer.Add(answer, scratch)
	}

	tmpval := answer.Bytes()
	decoded := make([]byte, numZeros+len(tmpval))
	copy(decoded[numZeros:], tmpval)

	return decoded, nil
}

// Encode encodes a byte slice to a modified base58 string. It is the exact
// inverse of Decode.
func Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)
	mod := new(big.Int)

	answer := make([]byte, 0, len(b)*138/100+1)
	for x.Sign() > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	// leading zero bytes
	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabetIdx0)
	}

	// reverse
	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}

	return string(answer)
}
