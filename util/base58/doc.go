// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides an API for working with Base58Check encoded Bitcoin
addresses.

Base58 encodes binary data into a 58 character alphabet that omits the
visually ambiguous characters 0 (zero), O (capital o), I (capital i) and
l (lower case L). Every leading zero byte is represented by a leading '1'.

Base58Check appends the first four bytes of sha256(sha256(v)) to a version
byte and a 20-byte hash, so a legacy address always decodes to exactly 25
bytes:

	version (1) | hash160 (20) | checksum (4)
*/
package base58
