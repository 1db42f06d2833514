// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package forum

import (
	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/arith"
	"github.com/cruxforum/challengerd/category"
	"github.com/cruxforum/challengerd/fault"
	"github.com/cruxforum/challengerd/records"
	"github.com/cruxforum/challengerd/storage"
)

// ChallengeParams - caller-supplied challenge content
type ChallengeParams struct {
	Categories  []category.Category
	Title       string
	ContentURL  string
	ContentHash address.Address
	ExpiresAt   uint64
	Reputation  uint64
}

// CreateChallenge - post a challenge, moderator only
//
// the challenge is keyed by an arbitrary caller-supplied seed so one
// crux can hold any number of challenges; the moderator's wallet pays
// the reserve for the packed size
func CreateChallenge(cruxAddress address.Address, moderator address.Address, moderatorProfile address.Address, seed address.Address, challengeAddress address.Address, params ChallengeParams) error {
	if err := checkInitialised(); nil != err {
		return err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Discard()

	crux, err := readCrux(trx, cruxAddress)
	if nil != err {
		return err
	}
	profile, err := readModeratorProfile(trx, cruxAddress, moderator, moderatorProfile)
	if nil != err {
		return err
	}
	if err := checkDerived(challengeAddress, address.RoleChallenge, cruxAddress, seed); nil != err {
		return err
	}

	now := nowTS()
	if params.ExpiresAt <= now {
		return fault.ErrInvalidExpiryTime
	}

	challenge := &records.Challenge{
		Crux:        cruxAddress,
		Seed:        seed,
		PostedAt:    now,
		ExpiresAt:   params.ExpiresAt,
		Categories:  params.Categories,
		Title:       params.Title,
		ContentURL:  params.ContentURL,
		ContentHash: params.ContentHash,
		Reputation:  params.Reputation,
	}
	payload, err := challenge.Pack()
	if nil != err {
		return err
	}
	if err := trx.CreateCell(challengeAddress, payload, moderator); nil != err {
		return err
	}

	crux.Counts.Challenges, err = arith.TryAdd(crux.Counts.Challenges, 1)
	if nil != err {
		return err
	}
	if err := writeCrux(trx, cruxAddress, crux); nil != err {
		return err
	}

	profile.LastEngagement = now
	if err := writeProfile(trx, moderatorProfile, profile); nil != err {
		return err
	}

	globalData.log.Infof("challenge %s posted in crux %s", challengeAddress, cruxAddress)
	return trx.Commit()
}

// EditChallenge - overwrite a challenge's content, moderator only
//
// a larger packed size requires the moderator to pay the reserve
// difference into the record before it grows in place
func EditChallenge(cruxAddress address.Address, moderator address.Address, moderatorProfile address.Address, seed address.Address, challengeAddress address.Address, params ChallengeParams) error {
	if err := checkInitialised(); nil != err {
		return err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Discard()

	profile, err := readModeratorProfile(trx, cruxAddress, moderator, moderatorProfile)
	if nil != err {
		return err
	}
	if err := checkDerived(challengeAddress, address.RoleChallenge, cruxAddress, seed); nil != err {
		return err
	}
	challenge, err := readChallenge(trx, challengeAddress)
	if nil != err {
		return err
	}
	if challenge.Crux != cruxAddress || challenge.Seed != seed {
		return fault.ErrAddressMismatch
	}

	now := nowTS()
	if params.ExpiresAt <= now {
		return fault.ErrInvalidExpiryTime
	}

	challenge.ExpiresAt = params.ExpiresAt
	challenge.Categories = params.Categories
	challenge.Title = params.Title
	challenge.ContentURL = params.ContentURL
	challenge.ContentHash = params.ContentHash
	challenge.Reputation = params.Reputation

	payload, err := challenge.Pack()
	if nil != err {
		return err
	}
	if err := growCell(trx, challengeAddress, moderator, payload); nil != err {
		return err
	}

	profile.LastEngagement = now
	if err := writeProfile(trx, moderatorProfile, profile); nil != err {
		return err
	}

	globalData.log.Infof("challenge %s edited", challengeAddress)
	return trx.Commit()
}

// DeleteChallenge - destroy a challenge, moderator only
//
// the reserve goes to the receiver and the crux challenge counter is
// decremented; dependent submissions are left to their own deletion
// paths
func DeleteChallenge(cruxAddress address.Address, moderator address.Address, moderatorProfile address.Address, seed address.Address, challengeAddress address.Address, receiver address.Address) error {
	if err := checkInitialised(); nil != err {
		return err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Discard()

	crux, err := readCrux(trx, cruxAddress)
	if nil != err {
		return err
	}
	profile, err := readModeratorProfile(trx, cruxAddress, moderator, moderatorProfile)
	if nil != err {
		return err
	}
	if err := checkDerived(challengeAddress, address.RoleChallenge, cruxAddress, seed); nil != err {
		return err
	}
	challenge, err := readChallenge(trx, challengeAddress)
	if nil != err {
		return err
	}
	if challenge.Crux != cruxAddress || challenge.Seed != seed {
		return fault.ErrAddressMismatch
	}

	if err := trx.CloseCell(challengeAddress, receiver); nil != err {
		return err
	}

	crux.Counts.Challenges, err = arith.TrySub(crux.Counts.Challenges, 1)
	if nil != err {
		return err
	}
	if err := writeCrux(trx, cruxAddress, crux); nil != err {
		return err
	}

	profile.LastEngagement = nowTS()
	if err := writeProfile(trx, moderatorProfile, profile); nil != err {
		return err
	}

	globalData.log.Infof("challenge %s closed", challengeAddress)
	return trx.Commit()
}
