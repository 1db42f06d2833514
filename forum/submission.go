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

// CreateSubmission - answer a challenge, profile owner only
//
// refused once the challenge has expired; the crux's submission fee,
// if non-zero, moves from the owner's wallet into the treasury
func CreateSubmission(cruxAddress address.Address, treasury address.Address, owner address.Address, profileAddress address.Address, seed address.Address, challengeAddress address.Address, submissionAddress address.Address, contentURL string, contentHash address.Address) error {
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
	profile, err := readProfile(trx, profileAddress)
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
	if err := checkDerived(submissionAddress, address.RoleSubmission, challengeAddress, profileAddress); nil != err {
		return err
	}

	now := nowTS()
	if now >= challenge.ExpiresAt {
		return fault.ErrChallengeExpired
	}

	if crux.Fees.SubmissionFee > 0 {
		if err := trx.Transfer(owner, treasury, crux.Fees.SubmissionFee); nil != err {
			return err
		}
	}

	submission := &records.Submission{
		Challenge:      challengeAddress,
		Profile:        profileAddress,
		ContentURL:     contentURL,
		ContentHash:    contentHash,
		State:          records.StatePending,
		LastEngagement: now,
	}
	payload, err := submission.Pack()
	if nil != err {
		return err
	}
	if err := trx.CreateCell(submissionAddress, payload, owner); nil != err {
		return err
	}

	crux.Counts.Submissions, err = arith.TryAdd(crux.Counts.Submissions, 1)
	if nil != err {
		return err
	}
	if err := writeCrux(trx, cruxAddress, crux); nil != err {
		return err
	}

	profile.Submitted, err = arith.TryAdd(profile.Submitted, 1)
	if nil != err {
		return err
	}
	profile.LastEngagement = now
	if err := writeProfile(trx, profileAddress, profile); nil != err {
		return err
	}

	globalData.log.Infof("submission %s created for challenge %s", submissionAddress, challengeAddress)
	return trx.Commit()
}

// EditSubmission - replace the submitted content, owner only
//
// always resets the state to pending (re-submission); a larger packed
// size requires the owner to top up the record's reserve first
func EditSubmission(cruxAddress address.Address, owner address.Address, profileAddress address.Address, seed address.Address, challengeAddress address.Address, submissionAddress address.Address, newContentURL string, newContentHash address.Address) error {
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
	if err := checkDerived(challengeAddress, address.RoleChallenge, cruxAddress, seed); nil != err {
		return err
	}
	challenge, err := readChallenge(trx, challengeAddress)
	if nil != err {
		return err
	}
	if err := checkDerived(submissionAddress, address.RoleSubmission, challengeAddress, profileAddress); nil != err {
		return err
	}
	submission, err := readSubmission(trx, submissionAddress)
	if nil != err {
		return err
	}

	now := nowTS()
	if now >= challenge.ExpiresAt {
		return fault.ErrChallengeExpired
	}

	submission.ContentURL = newContentURL
	submission.ContentHash = newContentHash
	submission.State = records.StatePending
	submission.LastEngagement = now

	payload, err := submission.Pack()
	if nil != err {
		return err
	}
	if err := growCell(trx, submissionAddress, owner, payload); nil != err {
		return err
	}

	profile.LastEngagement = now
	if err := writeProfile(trx, profileAddress, profile); nil != err {
		return err
	}

	globalData.log.Infof("submission %s edited", submissionAddress)
	return trx.Commit()
}

// EvaluateSubmission - assign a terminal state, moderator only
//
// a completed submission also credits the owning profile with the
// challenge's reputation award; re-evaluation is refused so an award
// can never be paid twice
func EvaluateSubmission(cruxAddress address.Address, moderator address.Address, moderatorProfile address.Address, profileOwner address.Address, profileAddress address.Address, seed address.Address, challengeAddress address.Address, submissionAddress address.Address, newState records.State) error {
	if err := checkInitialised(); nil != err {
		return err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Discard()

	modProfile, err := readModeratorProfile(trx, cruxAddress, moderator, moderatorProfile)
	if nil != err {
		return err
	}
	if err := checkDerived(profileAddress, address.RoleUserProfile, cruxAddress, profileOwner); nil != err {
		return err
	}
	profile, err := readProfile(trx, profileAddress)
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
	if err := checkDerived(submissionAddress, address.RoleSubmission, challengeAddress, profileAddress); nil != err {
		return err
	}
	submission, err := readSubmission(trx, submissionAddress)
	if nil != err {
		return err
	}

	if !newState.IsTerminal() {
		return fault.ErrInvalidSubmissionState
	}
	if submission.State.IsTerminal() {
		return fault.ErrAlreadyEvaluated
	}

	now := nowTS()
	submission.State = newState
	submission.LastEngagement = now
	payload, err := submission.Pack()
	if nil != err {
		return err
	}
	if err := trx.WriteCell(submissionAddress, payload); nil != err {
		return err
	}

	if records.StateCompleted == newState {
		profile.Completed, err = arith.TryAdd(profile.Completed, 1)
		if nil != err {
			return err
		}
		profile.Reputation, err = arith.TryAdd(profile.Reputation, challenge.Reputation)
		if nil != err {
			return err
		}
		if err := writeProfile(trx, profileAddress, profile); nil != err {
			return err
		}
	}

	modProfile.LastEngagement = now
	if err := writeProfile(trx, moderatorProfile, modProfile); nil != err {
		return err
	}

	globalData.log.Infof("submission %s evaluated %s", submissionAddress, newState)
	return trx.Commit()
}

// DeleteSubmission - destroy a submission, owner only
//
// refused once the submission is completed; the reserve goes to the
// receiver and both submission counters are decremented
func DeleteSubmission(cruxAddress address.Address, owner address.Address, profileAddress address.Address, seed address.Address, challengeAddress address.Address, submissionAddress address.Address, receiver address.Address) error {
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
	if err := checkDerived(submissionAddress, address.RoleSubmission, challengeAddress, profileAddress); nil != err {
		return err
	}
	if err := checkDerived(challengeAddress, address.RoleChallenge, cruxAddress, seed); nil != err {
		return err
	}
	submission, err := readSubmission(trx, submissionAddress)
	if nil != err {
		return err
	}
	if records.StateCompleted == submission.State {
		return fault.ErrSubmissionCompleted
	}

	return closeSubmission(trx, cruxAddress, profileAddress, profile, submissionAddress, receiver)
}

// DeleteSubmissionByModerator - destroy any submission, moderator only
//
// used for moderation removal; no state restriction
func DeleteSubmissionByModerator(cruxAddress address.Address, moderator address.Address, moderatorProfile address.Address, profileOwner address.Address, profileAddress address.Address, seed address.Address, challengeAddress address.Address, submissionAddress address.Address, receiver address.Address) error {
	if err := checkInitialised(); nil != err {
		return err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Discard()

	if _, err := readModeratorProfile(trx, cruxAddress, moderator, moderatorProfile); nil != err {
		return err
	}
	if err := checkDerived(profileAddress, address.RoleUserProfile, cruxAddress, profileOwner); nil != err {
		return err
	}
	profile, err := readProfile(trx, profileAddress)
	if nil != err {
		return err
	}
	if err := checkDerived(challengeAddress, address.RoleChallenge, cruxAddress, seed); nil != err {
		return err
	}
	if err := checkDerived(submissionAddress, address.RoleSubmission, challengeAddress, profileAddress); nil != err {
		return err
	}
	if _, err := readSubmission(trx, submissionAddress); nil != err {
		return err
	}

	return closeSubmission(trx, cruxAddress, profileAddress, profile, submissionAddress, receiver)
}

// common tail of both deletion paths: close the cell and rebalance
// the counters
func closeSubmission(trx *storage.Transaction, cruxAddress address.Address, profileAddress address.Address, profile *records.UserProfile, submissionAddress address.Address, receiver address.Address) error {
	crux, err := readCrux(trx, cruxAddress)
	if nil != err {
		return err
	}

	if err := trx.CloseCell(submissionAddress, receiver); nil != err {
		return err
	}

	crux.Counts.Submissions, err = arith.TrySub(crux.Counts.Submissions, 1)
	if nil != err {
		return err
	}
	if err := writeCrux(trx, cruxAddress, crux); nil != err {
		return err
	}

	profile.Submitted, err = arith.TrySub(profile.Submitted, 1)
	if nil != err {
		return err
	}
	profile.LastEngagement = nowTS()
	if err := writeProfile(trx, profileAddress, profile); nil != err {
		return err
	}

	globalData.log.Infof("submission %s closed", submissionAddress)
	return trx.Commit()
}
