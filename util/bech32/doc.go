// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides a Go implementation of the bech32 format used by
segwit version 0 Bitcoin addresses.

Bech32 strings consist of a human-readable prefix, followed by the
separator 1, then a checksummed data part encoded using the 32 characters
"qpzry9x8gf2tvdw0s3jn54khce6mua7l". The last six characters of the data part
are the checksum.

More info: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
*/
package bech32
