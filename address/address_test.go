// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/fault"
)

func TestNewFromSeed(t *testing.T) {
	one := address.NewFromSeed([]byte("alpha"))
	two := address.NewFromSeed([]byte("alpha"))
	three := address.NewFromSeed([]byte("beta"))

	assert.Equal(t, one, two, "same seed must give same address")
	assert.NotEqual(t, one, three, "different seeds must differ")
	assert.False(t, one.IsZero())
	assert.True(t, address.Zero.IsZero())
}

func TestBase58RoundTrip(t *testing.T) {
	a := address.NewFromSeed([]byte("round trip"))

	s := a.String()
	back, err := address.FromBase58(s)
	assert.NoError(t, err)
	assert.Equal(t, a, back)

	_, err = address.FromBase58("!!! not base58 !!!")
	assert.Equal(t, fault.ErrInvalidAddressLength, err)

	// valid base58 of the wrong length
	_, err = address.FromBase58("2g")
	assert.Equal(t, fault.ErrInvalidAddressLength, err)
}

func TestMarshalText(t *testing.T) {
	a := address.NewFromSeed([]byte("text"))

	text, err := a.MarshalText()
	assert.NoError(t, err)

	var back address.Address
	err = back.UnmarshalText(text)
	assert.NoError(t, err)
	assert.Equal(t, a, back)
}

// re-deriving with identical inputs yields the identical address and
// disambiguator
func TestDeriveIdempotent(t *testing.T) {
	crux := address.NewFromSeed([]byte("crux"))
	owner := address.NewFromSeed([]byte("owner"))

	first, firstBump := address.Derive(address.RoleUserProfile, crux, owner)
	second, secondBump := address.Derive(address.RoleUserProfile, crux, owner)

	assert.Equal(t, first, second)
	assert.Equal(t, firstBump, secondBump)
}

func TestDeriveDistinct(t *testing.T) {
	crux := address.NewFromSeed([]byte("crux"))
	other := address.NewFromSeed([]byte("other crux"))
	owner := address.NewFromSeed([]byte("owner"))

	profile, _ := address.Derive(address.RoleUserProfile, crux, owner)
	otherProfile, _ := address.Derive(address.RoleUserProfile, other, owner)
	treasury, _ := address.Derive(address.RoleTreasury, crux)
	authority, _ := address.Derive(address.RoleAuthority, crux)

	assert.NotEqual(t, profile, otherProfile, "different parents must differ")
	assert.NotEqual(t, treasury, authority, "different roles must differ")
	assert.NotEqual(t, profile, treasury)
}

// a derived address never equals a seed-built one for the same bytes
func TestDeriveDomainSeparation(t *testing.T) {
	crux := address.NewFromSeed([]byte("crux"))

	derivedAddress, _ := address.Derive(address.RoleTreasury, crux)
	seedAddress := address.NewFromSeed(append([]byte(address.RoleTreasury), crux[:]...))

	assert.NotEqual(t, derivedAddress, seedAddress)
}
