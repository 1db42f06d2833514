// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package records - typed record layouts and their binary packing
//
// Each persisted record is a varint tag followed by its fields in
// struct order; dynamic fields (category set, title, url) are length
// prefixed.  The packed byte size is the size used for the reserve
// calculation at the record's last (re)allocation.
package records

import (
	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/category"
)

// TagType - the record type discriminator
type TagType uint64

// record tags
const (
	NullTag        TagType = iota
	CruxTag        TagType = iota
	UserProfileTag TagType = iota
	ChallengeTag   TagType = iota
	SubmissionTag  TagType = iota
)

// LatestCruxVersion - schema version stamped into new crux records
const LatestCruxVersion uint16 = 1

// MaxTextLength - limit on title and content url fields (characters)
const MaxTextLength = 256

// Packed - a packed record ready for the store
type Packed []byte

// Record - generic packable record
type Record interface {
	Pack() (Packed, error)
}

// CruxFees - fee schedule charged into the crux treasury
type CruxFees struct {
	ProfileFee    uint64
	SubmissionFee uint64
}

// CruxCounts - live sub-record counters
type CruxCounts struct {
	Profiles    uint64
	Challenges  uint64
	Submissions uint64
}

// Crux - the root tenant record
type Crux struct {
	Version       uint16
	Manager       address.Address
	Authority     address.Address
	AuthoritySeed address.Address
	AuthorityBump uint8
	Treasury      address.Address
	Fees          CruxFees
	Counts        CruxCounts
}

// UserProfile - one user's profile inside a crux
type UserProfile struct {
	Owner          address.Address
	Crux           address.Address
	CreatedAt      uint64
	LastEngagement uint64
	Submitted      uint64
	Completed      uint64
	Reputation     uint64
	DisplayMedia   address.Address
	IsModerator    bool
}

// Challenge - a moderator-posted content record
type Challenge struct {
	Crux        address.Address
	Seed        address.Address
	PostedAt    uint64
	ExpiresAt   uint64
	Categories  []category.Category
	Title       string
	ContentURL  string
	ContentHash address.Address
	Reputation  uint64
}

// Submission - one profile's answer to a challenge
type Submission struct {
	Challenge      address.Address
	Profile        address.Address
	ContentURL     string
	ContentHash    address.Address
	State          State
	LastEngagement uint64
}
