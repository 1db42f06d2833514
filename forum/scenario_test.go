// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package forum_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/fault"
	"github.com/cruxforum/challengerd/forum"
	"github.com/cruxforum/challengerd/records"
	"github.com/cruxforum/challengerd/storage"
)

// full lifecycle: a crux is opened, members join and pay fees, a
// moderator posts a challenge, a member answers and is rewarded, the
// treasury is drained and finally every record is closed again
func TestForumLifecycle(t *testing.T) {
	fees := records.CruxFees{ProfileFee: 100, SubmissionFee: 40}
	f := newCrux(t, "life", fees)

	// manager grants themselves a profile and the moderator flag
	modOwner, modProfile := newProfile(t, f, "life-moderator")
	require.NoError(t, forum.AddModerator(f.manager, f.crux, modOwner, modProfile))

	// an ordinary member joins, fee flows into the treasury
	memberBefore := uint64(5_000_000)
	member := fundWallet(t, "life-member", memberBefore)
	memberProfile, _ := address.Derive(address.RoleUserProfile, f.crux, member)
	require.NoError(t, forum.CreateProfile(f.crux, f.treasury, member, memberProfile))

	crux := loadCrux(t, f.crux)
	assert.Equal(t, uint64(2), crux.Counts.Profiles)
	assert.Equal(t, storage.ReserveForSize(0)+2*fees.ProfileFee, walletBalance(t, f.treasury))

	// an ordinary member cannot post challenges
	badSeed := address.NewFromSeed([]byte("life-bad-seed"))
	badChallenge, _ := address.Derive(address.RoleChallenge, f.crux, badSeed)
	err := forum.CreateChallenge(f.crux, member, memberProfile, badSeed, badChallenge, defaultChallengeParams(10))
	assert.Equal(t, fault.ErrProfileIsNotModerator, err)

	seed, challenge := newChallenge(t, f, modOwner, modProfile, "life-challenge", 500)

	// the member answers and pays the submission fee
	submission := newSubmission(t, f, member, memberProfile, seed, challenge, "life-answer")
	assert.Equal(t, storage.ReserveForSize(0)+2*fees.ProfileFee+fees.SubmissionFee, walletBalance(t, f.treasury))

	// moderation completes the submission and credits the member
	require.NoError(t, forum.EvaluateSubmission(f.crux, modOwner, modProfile, member, memberProfile, seed, challenge, submission, records.StateCompleted))
	profile := loadProfile(t, memberProfile)
	assert.Equal(t, uint64(1), profile.Submitted)
	assert.Equal(t, uint64(1), profile.Completed)
	assert.Equal(t, uint64(500), profile.Reputation)

	// no late answers after expiry
	testClock.Add(2 * 86400 * time.Second)
	lateMember, lateProfile := newProfile(t, f, "life-late-member")
	lateSubmission, _ := address.Derive(address.RoleSubmission, challenge, lateProfile)
	err = forum.CreateSubmission(f.crux, f.treasury, lateMember, lateProfile, seed, challenge, lateSubmission, "https://forum.example/answers/life-late", address.NewFromSeed([]byte("life late")))
	assert.Equal(t, fault.ErrChallengeExpired, err)

	// manager drains everything above the treasury's reserve
	payoutTarget := fundWallet(t, "life-payout", 0)
	expected := 3*fees.ProfileFee + fees.SubmissionFee
	require.NoError(t, forum.PayoutFromTreasury(f.manager, f.crux, f.treasury, payoutTarget))
	assert.Equal(t, expected, walletBalance(t, payoutTarget))
	assert.Equal(t, storage.ReserveForSize(0), walletBalance(t, f.treasury))

	// teardown refuses while children are live
	err = forum.CloseCrux(f.manager, f.crux, f.treasury, f.manager)
	assert.Equal(t, fault.ErrNotAllRecordsClosed, err)

	require.NoError(t, forum.DeleteSubmissionByModerator(f.crux, modOwner, modProfile, member, memberProfile, seed, challenge, submission, member))
	require.NoError(t, forum.DeleteChallenge(f.crux, modOwner, modProfile, seed, challenge, modOwner))
	require.NoError(t, forum.DeleteProfile(f.crux, member, memberProfile, member))
	require.NoError(t, forum.DeleteProfile(f.crux, lateMember, lateProfile, lateMember))
	require.NoError(t, forum.DeleteProfile(f.crux, modOwner, modProfile, modOwner))

	crux = loadCrux(t, f.crux)
	assert.Equal(t, records.CruxCounts{}, crux.Counts)

	require.NoError(t, forum.CloseCrux(f.manager, f.crux, f.treasury, f.manager))
	_, _, err = storage.ReadCellDirect(f.crux)
	assert.Equal(t, fault.ErrRecordNotFound, err)
}
