// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"time"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/sha3"
)

// Role - the tag naming the kind of sub-record being derived
type Role string

// all derivable sub-record roles
const (
	RoleAuthority   Role = "authority"
	RoleTreasury    Role = "treasury"
	RoleUserProfile Role = "user_profile"
	RoleChallenge   Role = "challenge"
	RoleSubmission  Role = "submission"
)

// domain separator so derived addresses can never collide with
// seed-built ones
const derivationContext = "challengerd-derive-v1"

const (
	cacheExpiration = 2 * time.Minute
	cacheCleanup    = 1 * time.Minute
)

// derivation is pure, so memoising results is safe
var deriveCache = cache.New(cacheExpiration, cacheCleanup)

type derived struct {
	address Address
	bump    uint8
}

// Derive - deterministic sub-record address for a role and its parents
//
// The bump disambiguator counts down from 255 until the candidate
// digest is acceptable; re-deriving with identical inputs always
// returns the identical address and bump.
func Derive(role Role, parents ...Address) (Address, uint8) {

	key := cacheKey(role, parents)
	if hit, ok := deriveCache.Get(key); ok {
		d := hit.(derived)
		return d.address, d.bump
	}

	for bump := 255; bump >= 0; bump -= 1 {
		h := sha3.New256()
		h.Write([]byte(derivationContext))
		h.Write([]byte(role))
		for _, parent := range parents {
			h.Write(parent[:])
		}
		h.Write([]byte{byte(bump)})

		var candidate Address
		copy(candidate[:], h.Sum(nil))

		// candidates ending in a zero byte are skipped so that a
		// bump is genuinely part of the scheme
		if 0 != candidate[Length-1] {
			deriveCache.Set(key, derived{address: candidate, bump: uint8(bump)}, cacheExpiration)
			return candidate, uint8(bump)
		}
	}

	// 256 successive rejected digests cannot happen with an
	// unbroken hash
	panic("address.Derive: no acceptable digest")
}

func cacheKey(role Role, parents []Address) string {
	buffer := make([]byte, 0, len(role)+1+len(parents)*Length)
	buffer = append(buffer, []byte(role)...)
	buffer = append(buffer, 0x00)
	for _, parent := range parents {
		buffer = append(buffer, parent[:]...)
	}
	return string(buffer)
}
