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

// shared load/store helpers
//
// every operation funnels its record access through these so that an
// address is only ever read after it has been derivation-checked

func checkInitialised() error {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	return nil
}

// reject a supplied sub-record address that does not re-derive from
// its claimed owner chain
func checkDerived(supplied address.Address, role address.Role, parents ...address.Address) error {
	expected, _ := address.Derive(role, parents...)
	if expected != supplied {
		return fault.ErrAddressMismatch
	}
	return nil
}

func readCrux(trx *storage.Transaction, cruxAddress address.Address) (*records.Crux, error) {
	_, payload, err := trx.ReadCell(cruxAddress)
	if nil != err {
		return nil, err
	}
	return records.UnpackCrux(payload)
}

func writeCrux(trx *storage.Transaction, cruxAddress address.Address, crux *records.Crux) error {
	payload, err := crux.Pack()
	if nil != err {
		return err
	}
	return trx.WriteCell(cruxAddress, payload)
}

func readProfile(trx *storage.Transaction, profileAddress address.Address) (*records.UserProfile, error) {
	_, payload, err := trx.ReadCell(profileAddress)
	if nil != err {
		return nil, err
	}
	return records.UnpackUserProfile(payload)
}

func writeProfile(trx *storage.Transaction, profileAddress address.Address, profile *records.UserProfile) error {
	payload, err := profile.Pack()
	if nil != err {
		return err
	}
	return trx.WriteCell(profileAddress, payload)
}

func readChallenge(trx *storage.Transaction, challengeAddress address.Address) (*records.Challenge, error) {
	_, payload, err := trx.ReadCell(challengeAddress)
	if nil != err {
		return nil, err
	}
	return records.UnpackChallenge(payload)
}

func readSubmission(trx *storage.Transaction, submissionAddress address.Address) (*records.Submission, error) {
	_, payload, err := trx.ReadCell(submissionAddress)
	if nil != err {
		return nil, err
	}
	return records.UnpackSubmission(payload)
}

// load the moderator's own profile and require the moderator flag
func readModeratorProfile(trx *storage.Transaction, cruxAddress address.Address, moderator address.Address, suppliedProfile address.Address) (*records.UserProfile, error) {
	if err := checkDerived(suppliedProfile, address.RoleUserProfile, cruxAddress, moderator); nil != err {
		return nil, err
	}
	profile, err := readProfile(trx, suppliedProfile)
	if nil != err {
		return nil, err
	}
	if !profile.IsModerator {
		return nil, fault.ErrProfileIsNotModerator
	}
	return profile, nil
}

// grow a record cell in place
//
// if the new payload is larger than the stored one the payer first
// tops the cell's balance up to the reserve for the new size; smaller
// payloads are written without refund
func growCell(trx *storage.Transaction, cellAddress address.Address, payer address.Address, payload []byte) error {
	footprint, ok := trx.Footprint(cellAddress)
	if !ok {
		return fault.ErrRecordNotFound
	}

	if len(payload) > footprint {
		balance, _ := trx.Balance(cellAddress)
		required := storage.ReserveForSize(len(payload))
		if required > balance {
			topUp, err := arith.TrySub(required, balance)
			if nil != err {
				return err
			}
			if err := trx.Transfer(payer, cellAddress, topUp); nil != err {
				return err
			}
		}
	}

	return trx.WriteCell(cellAddress, payload)
}
