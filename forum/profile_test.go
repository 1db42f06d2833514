// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package forum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/fault"
	"github.com/cruxforum/challengerd/forum"
	"github.com/cruxforum/challengerd/records"
	"github.com/cruxforum/challengerd/storage"
)

func TestCreateProfile(t *testing.T) {
	f := newCrux(t, "profile-crux", records.CruxFees{ProfileFee: 100})

	owner := fundWallet(t, "profile-owner", 10_000)
	profileAddress, _ := address.Derive(address.RoleUserProfile, f.crux, owner)

	treasuryBefore := walletBalance(t, f.treasury)
	ownerBefore := walletBalance(t, owner)

	require.NoError(t, forum.CreateProfile(f.crux, f.treasury, owner, profileAddress))

	profile := loadProfile(t, profileAddress)
	assert.Equal(t, owner, profile.Owner)
	assert.Equal(t, f.crux, profile.Crux)
	assert.Equal(t, testNow(), profile.CreatedAt)
	assert.Equal(t, testNow(), profile.LastEngagement)
	assert.False(t, profile.IsModerator)
	assert.Zero(t, profile.Submitted)
	assert.Zero(t, profile.Completed)
	assert.Zero(t, profile.Reputation)

	assert.Equal(t, uint64(1), loadCrux(t, f.crux).Counts.Profiles)
	assert.Equal(t, treasuryBefore+100, walletBalance(t, f.treasury))

	// owner paid the fee plus the profile's reserve
	reserve, _, err := storage.ReadCellDirect(profileAddress)
	require.NoError(t, err)
	assert.Equal(t, ownerBefore-100-reserve, walletBalance(t, owner))
}

func TestCreateProfileWrongAddress(t *testing.T) {
	f := newCrux(t, "profile-wrong-crux", records.CruxFees{})
	owner := fundWallet(t, "profile-wrong-owner", 10_000)

	bogus := address.NewFromSeed([]byte("anywhere"))
	err := forum.CreateProfile(f.crux, f.treasury, owner, bogus)
	assert.Equal(t, fault.ErrAddressMismatch, err)
}

func TestCreateProfileCannotAffordFee(t *testing.T) {
	f := newCrux(t, "profile-poor-crux", records.CruxFees{ProfileFee: 1_000_000})
	owner := fundWallet(t, "profile-poor-owner", 10)
	profileAddress, _ := address.Derive(address.RoleUserProfile, f.crux, owner)

	err := forum.CreateProfile(f.crux, f.treasury, owner, profileAddress)
	assert.Equal(t, fault.ErrInsufficientFunds, err)

	// failed operation leaves nothing behind
	assert.Zero(t, loadCrux(t, f.crux).Counts.Profiles)
	_, _, err = storage.ReadCellDirect(profileAddress)
	assert.Equal(t, fault.ErrRecordNotFound, err)
}

func TestEditProfile(t *testing.T) {
	f := newCrux(t, "edit-profile-crux", records.CruxFees{})
	owner, profileAddress := newProfile(t, f, "edit-profile-owner")

	media := address.NewFromSeed([]byte("avatar hash"))
	require.NoError(t, forum.EditProfile(f.crux, owner, profileAddress, media))
	assert.Equal(t, media, loadProfile(t, profileAddress).DisplayMedia)

	stranger := fundWallet(t, "edit-profile-stranger", 1000)
	err := forum.EditProfile(f.crux, stranger, profileAddress, media)
	assert.Equal(t, fault.ErrAddressMismatch, err)
}

func TestModeratorFlag(t *testing.T) {
	f := newCrux(t, "mod-crux", records.CruxFees{})
	owner, profileAddress := newProfile(t, f, "mod-owner")

	require.NoError(t, forum.AddModerator(f.manager, f.crux, owner, profileAddress))
	assert.True(t, loadProfile(t, profileAddress).IsModerator)

	require.NoError(t, forum.RemoveModerator(f.manager, f.crux, owner, profileAddress))
	assert.False(t, loadProfile(t, profileAddress).IsModerator)

	stranger := fundWallet(t, "mod-stranger", 1000)
	err := forum.AddModerator(stranger, f.crux, owner, profileAddress)
	assert.Equal(t, fault.ErrNotCruxManager, err)
}

func TestDeleteProfile(t *testing.T) {
	f := newCrux(t, "del-profile-crux", records.CruxFees{})
	owner, profileAddress := newProfile(t, f, "del-profile-owner")
	assert.Equal(t, uint64(1), loadCrux(t, f.crux).Counts.Profiles)

	receiver := fundWallet(t, "del-profile-receiver", 0)
	before := walletBalance(t, receiver)

	require.NoError(t, forum.DeleteProfile(f.crux, owner, profileAddress, receiver))

	assert.Zero(t, loadCrux(t, f.crux).Counts.Profiles)
	assert.True(t, walletBalance(t, receiver) > before, "receiver collects the reserve")
	_, _, err := storage.ReadCellDirect(profileAddress)
	assert.Equal(t, fault.ErrRecordNotFound, err)
}

func TestDeleteProfileNotOwner(t *testing.T) {
	f := newCrux(t, "del-stranger-crux", records.CruxFees{})
	_, profileAddress := newProfile(t, f, "del-stranger-owner")

	stranger := fundWallet(t, "del-stranger", 1000)
	err := forum.DeleteProfile(f.crux, stranger, profileAddress, stranger)
	assert.Equal(t, fault.ErrAddressMismatch, err)
}
