// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/fault"
)

// append helpers for the packed byte stream

func appendUvarint(buffer []byte, value uint64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], value)
	return append(buffer, scratch[:n]...)
}

func appendAddress(buffer []byte, a address.Address) []byte {
	return append(buffer, a[:]...)
}

func appendString(buffer []byte, s string) []byte {
	buffer = appendUvarint(buffer, uint64(len(s)))
	return append(buffer, s...)
}

func appendBool(buffer []byte, b bool) []byte {
	if b {
		return append(buffer, 0x01)
	}
	return append(buffer, 0x00)
}

// checkText - shared title/url validation
//
// limits are counted in characters, not bytes
func checkText(texts ...string) error {
	for _, text := range texts {
		if 0 == len(text) {
			return fault.ErrInvalidStringInput
		}
		if utf8.RuneCountInString(text) > MaxTextLength {
			return fault.ErrTitleOrURLTooLong
		}
	}
	return nil
}

// Pack - Varint64(tag) followed by fields in struct order
func (crux *Crux) Pack() (Packed, error) {
	message := appendUvarint(nil, uint64(CruxTag))
	message = appendUvarint(message, uint64(crux.Version))
	message = appendAddress(message, crux.Manager)
	message = appendAddress(message, crux.Authority)
	message = appendAddress(message, crux.AuthoritySeed)
	message = append(message, crux.AuthorityBump)
	message = appendAddress(message, crux.Treasury)
	message = appendUvarint(message, crux.Fees.ProfileFee)
	message = appendUvarint(message, crux.Fees.SubmissionFee)
	message = appendUvarint(message, crux.Counts.Profiles)
	message = appendUvarint(message, crux.Counts.Challenges)
	message = appendUvarint(message, crux.Counts.Submissions)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
func (profile *UserProfile) Pack() (Packed, error) {
	message := appendUvarint(nil, uint64(UserProfileTag))
	message = appendAddress(message, profile.Owner)
	message = appendAddress(message, profile.Crux)
	message = appendUvarint(message, profile.CreatedAt)
	message = appendUvarint(message, profile.LastEngagement)
	message = appendUvarint(message, profile.Submitted)
	message = appendUvarint(message, profile.Completed)
	message = appendUvarint(message, profile.Reputation)
	message = appendAddress(message, profile.DisplayMedia)
	message = appendBool(message, profile.IsModerator)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
//
// the category set is preceded by its count; title and url are length
// prefixed and validated here so no malformed record can be stored
func (challenge *Challenge) Pack() (Packed, error) {
	if err := checkText(challenge.Title, challenge.ContentURL); nil != err {
		return nil, err
	}
	for _, c := range challenge.Categories {
		if !c.IsValid() {
			return nil, fault.ErrInvalidCategory
		}
	}

	message := appendUvarint(nil, uint64(ChallengeTag))
	message = appendAddress(message, challenge.Crux)
	message = appendAddress(message, challenge.Seed)
	message = appendUvarint(message, challenge.PostedAt)
	message = appendUvarint(message, challenge.ExpiresAt)
	message = appendUvarint(message, uint64(len(challenge.Categories)))
	for _, c := range challenge.Categories {
		message = appendUvarint(message, c.Uint64())
	}
	message = appendString(message, challenge.Title)
	message = appendString(message, challenge.ContentURL)
	message = appendAddress(message, challenge.ContentHash)
	message = appendUvarint(message, challenge.Reputation)
	return message, nil
}

// Pack - Varint64(tag) followed by fields in struct order
func (submission *Submission) Pack() (Packed, error) {
	if err := checkText(submission.ContentURL); nil != err {
		return nil, err
	}
	if !submission.State.IsValid() {
		return nil, fault.ErrInvalidSubmissionState
	}

	message := appendUvarint(nil, uint64(SubmissionTag))
	message = appendAddress(message, submission.Challenge)
	message = appendAddress(message, submission.Profile)
	message = appendString(message, submission.ContentURL)
	message = appendAddress(message, submission.ContentHash)
	message = appendUvarint(message, submission.State.Uint64())
	message = appendUvarint(message, submission.LastEngagement)
	return message, nil
}
