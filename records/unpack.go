// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"encoding/binary"
	"math"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/category"
	"github.com/cruxforum/challengerd/fault"
)

// unpacker - sequential field reader over a packed record
//
// the first failed read sticks; callers check err once at the end
type unpacker struct {
	buffer []byte
	n      int
	err    error
}

func (u *unpacker) uvarint() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := binary.Uvarint(u.buffer[u.n:])
	if n <= 0 {
		u.err = fault.ErrCannotDecodeRecord
		return 0
	}
	u.n += n
	return value
}

func (u *unpacker) address() address.Address {
	if nil != u.err {
		return address.Zero
	}
	if u.n+address.Length > len(u.buffer) {
		u.err = fault.ErrCannotDecodeRecord
		return address.Zero
	}
	a, err := address.FromBytes(u.buffer[u.n : u.n+address.Length])
	if nil != err {
		u.err = fault.ErrCannotDecodeRecord
		return address.Zero
	}
	u.n += address.Length
	return a
}

func (u *unpacker) byte() byte {
	if nil != u.err {
		return 0
	}
	if u.n >= len(u.buffer) {
		u.err = fault.ErrCannotDecodeRecord
		return 0
	}
	b := u.buffer[u.n]
	u.n += 1
	return b
}

func (u *unpacker) bool() bool {
	return 0 != u.byte()
}

func (u *unpacker) string() string {
	length := u.uvarint()
	if nil != u.err {
		return ""
	}
	if length > uint64(len(u.buffer)-u.n) {
		u.err = fault.ErrCannotDecodeRecord
		return ""
	}
	s := string(u.buffer[u.n : u.n+int(length)])
	u.n += int(length)
	return s
}

// Unpack - turn a packed byte slice back into a typed record
//
// the second return value is the number of bytes consumed
func (record Packed) Unpack() (Record, int, error) {

	u := &unpacker{buffer: record}

	switch tag := TagType(u.uvarint()); tag {

	case CruxTag:
		version := u.uvarint()
		if version > math.MaxUint16 {
			return nil, 0, fault.ErrCannotDecodeRecord
		}
		r := &Crux{
			Version:       uint16(version),
			Manager:       u.address(),
			Authority:     u.address(),
			AuthoritySeed: u.address(),
			AuthorityBump: u.byte(),
			Treasury:      u.address(),
		}
		r.Fees.ProfileFee = u.uvarint()
		r.Fees.SubmissionFee = u.uvarint()
		r.Counts.Profiles = u.uvarint()
		r.Counts.Challenges = u.uvarint()
		r.Counts.Submissions = u.uvarint()
		if nil != u.err {
			return nil, 0, u.err
		}
		return r, u.n, nil

	case UserProfileTag:
		r := &UserProfile{
			Owner:          u.address(),
			Crux:           u.address(),
			CreatedAt:      u.uvarint(),
			LastEngagement: u.uvarint(),
			Submitted:      u.uvarint(),
			Completed:      u.uvarint(),
			Reputation:     u.uvarint(),
			DisplayMedia:   u.address(),
			IsModerator:    u.bool(),
		}
		if nil != u.err {
			return nil, 0, u.err
		}
		return r, u.n, nil

	case ChallengeTag:
		r := &Challenge{
			Crux:      u.address(),
			Seed:      u.address(),
			PostedAt:  u.uvarint(),
			ExpiresAt: u.uvarint(),
		}
		count := u.uvarint()
		if nil != u.err || count > uint64(len(record)) {
			return nil, 0, fault.ErrCannotDecodeRecord
		}
		r.Categories = make([]category.Category, count)
		for i := uint64(0); i < count; i += 1 {
			c, err := category.FromUint64(u.uvarint())
			if nil != u.err {
				return nil, 0, u.err
			}
			if nil != err {
				return nil, 0, err
			}
			r.Categories[i] = c
		}
		r.Title = u.string()
		r.ContentURL = u.string()
		r.ContentHash = u.address()
		r.Reputation = u.uvarint()
		if nil != u.err {
			return nil, 0, u.err
		}
		return r, u.n, nil

	case SubmissionTag:
		r := &Submission{
			Challenge:  u.address(),
			Profile:    u.address(),
			ContentURL: u.string(),
		}
		r.ContentHash = u.address()
		state, err := StateFromUint64(u.uvarint())
		if nil != u.err {
			return nil, 0, u.err
		}
		if nil != err {
			return nil, 0, err
		}
		r.State = state
		r.LastEngagement = u.uvarint()
		if nil != u.err {
			return nil, 0, u.err
		}
		return r, u.n, nil

	default:
		return nil, 0, fault.ErrCannotDecodeRecord
	}
}

// UnpackCrux - unpack and require a crux record
func UnpackCrux(packed Packed) (*Crux, error) {
	record, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	crux, ok := record.(*Crux)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return crux, nil
}

// UnpackUserProfile - unpack and require a user profile record
func UnpackUserProfile(packed Packed) (*UserProfile, error) {
	record, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	profile, ok := record.(*UserProfile)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return profile, nil
}

// UnpackChallenge - unpack and require a challenge record
func UnpackChallenge(packed Packed) (*Challenge, error) {
	record, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	challenge, ok := record.(*Challenge)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return challenge, nil
}

// UnpackSubmission - unpack and require a submission record
func UnpackSubmission(packed Packed) (*Submission, error) {
	record, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	submission, ok := record.(*Submission)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return submission, nil
}
