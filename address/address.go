// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - record addresses and their deterministic derivation
//
// Every record in the store is identified by a 32 byte address.  Root
// records (cruxes, wallets) use caller supplied identities; sub-records
// are addressed by derivation from a role tag and the addresses of
// their logical owners.  Address equality against a fresh derivation is
// the sole authorization binding of a record to its owner chain.
package address

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/cruxforum/challengerd/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - the identity of one record cell
type Address [Length]byte

// Zero - the all zero address, used as the "unset" value
var Zero Address

// NewFromSeed - make an address from arbitrary seed bytes
//
// used for fresh identities (wallets, crux records, challenge seeds)
func NewFromSeed(seed []byte) Address {
	return Address(sha3.Sum256(seed))
}

// FromBytes - convert a raw byte slice to an address
func FromBytes(buffer []byte) (Address, error) {
	var a Address
	if Length != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - convert the base58 text form back to an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Zero, fault.ErrInvalidAddressLength
	}
	return FromBytes(buffer)
}

// IsZero - check for the unset address
func (a Address) IsZero() bool {
	return bytes.Equal(a[:], Zero[:])
}

// Bytes - the raw byte form
func (a Address) Bytes() []byte {
	return a[:]
}

// String - base58 text form for use by the fmt package (for %s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - tagged text form for use by the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + base58.Encode(a[:]) + ">"
}

// MarshalText - base58 string for the encoding packages
func (a Address) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(a[:])), nil
}

// UnmarshalText - parse a base58 string from the encoding packages
func (a *Address) UnmarshalText(s []byte) error {
	parsed, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = parsed
	return nil
}
