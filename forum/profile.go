// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package forum

import (
	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/arith"
	"github.com/cruxforum/challengerd/fault"
	"github.com/cruxforum/challengerd/records"
	"github.com/cruxforum/challengerd/storage"
)

// CreateProfile - allocate a user profile inside a crux
//
// the crux's profile fee, if non-zero, moves from the owner's wallet
// into the treasury; the owner also pays the profile's reserve
func CreateProfile(cruxAddress address.Address, treasury address.Address, owner address.Address, profileAddress address.Address) error {
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
	if err := checkDerived(treasury, address.RoleTreasury, cruxAddress); nil != err {
		return err
	}
	if crux.Treasury != treasury {
		return fault.ErrAddressMismatch
	}
	if err := checkDerived(profileAddress, address.RoleUserProfile, cruxAddress, owner); nil != err {
		return err
	}

	if crux.Fees.ProfileFee > 0 {
		if err := trx.Transfer(owner, treasury, crux.Fees.ProfileFee); nil != err {
			return err
		}
	}

	now := nowTS()
	profile := &records.UserProfile{
		Owner:          owner,
		Crux:           cruxAddress,
		CreatedAt:      now,
		LastEngagement: now,
	}
	payload, err := profile.Pack()
	if nil != err {
		return err
	}
	if err := trx.CreateCell(profileAddress, payload, owner); nil != err {
		return err
	}

	crux.Counts.Profiles, err = arith.TryAdd(crux.Counts.Profiles, 1)
	if nil != err {
		return err
	}
	if err := writeCrux(trx, cruxAddress, crux); nil != err {
		return err
	}

	globalData.log.Infof("profile %s created for owner %s in crux %s", profileAddress, owner, cruxAddress)
	return trx.Commit()
}

// EditProfile - update the displayed media reference, owner only
func EditProfile(cruxAddress address.Address, owner address.Address, profileAddress address.Address, displayMedia address.Address) error {
	if err := checkInitialised(); nil != err {
		return err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Discard()

	if err := checkDerived(profileAddress, address.RoleUserProfile, cruxAddress, owner); nil != err {
		return err
	}
	profile, err := readProfile(trx, profileAddress)
	if nil != err {
		return err
	}
	if profile.Owner != owner {
		return fault.ErrNotProfileOwner
	}

	profile.DisplayMedia = displayMedia
	profile.LastEngagement = nowTS()
	if err := writeProfile(trx, profileAddress, profile); nil != err {
		return err
	}

	return trx.Commit()
}

// AddModerator - set the moderator flag on a profile, manager only
//
// gated on the supplied profile address matching the derivation for
// the named owner
func AddModerator(manager address.Address, cruxAddress address.Address, profileOwner address.Address, profileAddress address.Address) error {
	return setModerator(manager, cruxAddress, profileOwner, profileAddress, true)
}

// RemoveModerator - clear the moderator flag, manager only
func RemoveModerator(manager address.Address, cruxAddress address.Address, profileOwner address.Address, profileAddress address.Address) error {
	return setModerator(manager, cruxAddress, profileOwner, profileAddress, false)
}

func setModerator(manager address.Address, cruxAddress address.Address, profileOwner address.Address, profileAddress address.Address, flag bool) error {
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
	if crux.Manager != manager {
		return fault.ErrNotCruxManager
	}
	if err := checkDerived(profileAddress, address.RoleUserProfile, cruxAddress, profileOwner); nil != err {
		return err
	}

	profile, err := readProfile(trx, profileAddress)
	if nil != err {
		return err
	}

	profile.IsModerator = flag
	if err := writeProfile(trx, profileAddress, profile); nil != err {
		return err
	}

	globalData.log.Infof("profile %s moderator flag now %t", profileAddress, flag)
	return trx.Commit()
}

// DeleteProfile - destroy a profile, owner only
//
// the profile's reserve is forfeited to the receiver and the crux
// profile counter decremented
func DeleteProfile(cruxAddress address.Address, owner address.Address, profileAddress address.Address, receiver address.Address) error {
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
	if err := checkDerived(profileAddress, address.RoleUserProfile, cruxAddress, owner); nil != err {
		return err
	}
	profile, err := readProfile(trx, profileAddress)
	if nil != err {
		return err
	}
	if profile.Owner != owner {
		return fault.ErrNotProfileOwner
	}

	if err := trx.CloseCell(profileAddress, receiver); nil != err {
		return err
	}

	crux.Counts.Profiles, err = arith.TrySub(crux.Counts.Profiles, 1)
	if nil != err {
		return err
	}
	if err := writeCrux(trx, cruxAddress, crux); nil != err {
		return err
	}

	globalData.log.Infof("profile %s closed, crux %s has %d profiles", profileAddress, cruxAddress, crux.Counts.Profiles)
	return trx.Commit()
}
