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

// CreateCrux - allocate a crux and its treasury
//
// the crux address is a fresh caller-picked identity; the manager's
// wallet pays both reserves.  Fails if the address is already in use.
func CreateCrux(manager address.Address, cruxAddress address.Address, fees records.CruxFees) error {
	if err := checkInitialised(); nil != err {
		return err
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Discard()

	authority, authorityBump := address.Derive(address.RoleAuthority, cruxAddress)
	treasury, _ := address.Derive(address.RoleTreasury, cruxAddress)

	crux := &records.Crux{
		Version:       records.LatestCruxVersion,
		Manager:       manager,
		Authority:     authority,
		AuthoritySeed: cruxAddress,
		AuthorityBump: authorityBump,
		Treasury:      treasury,
		Fees:          fees,
	}
	payload, err := crux.Pack()
	if nil != err {
		return err
	}

	if err := trx.CreateCell(cruxAddress, payload, manager); nil != err {
		return err
	}
	if err := trx.CreateCell(treasury, nil, manager); nil != err {
		return err
	}

	globalData.log.Infof("crux %s created by manager %s", cruxAddress, manager)
	return trx.Commit()
}

// UpdateCruxFees - overwrite the fee schedule, manager only
func UpdateCruxFees(manager address.Address, cruxAddress address.Address, newFees records.CruxFees) error {
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

	crux.Fees = newFees
	if err := writeCrux(trx, cruxAddress, crux); nil != err {
		return err
	}

	globalData.log.Infof("crux %s fees now profile=%d submission=%d", cruxAddress, newFees.ProfileFee, newFees.SubmissionFee)
	return trx.Commit()
}

// PayoutFromTreasury - transfer everything above the treasury's
// reserve to a receiver, manager only
//
// fails with underflow when there is nothing to pay
func PayoutFromTreasury(manager address.Address, cruxAddress address.Address, treasury address.Address, receiver address.Address) error {
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
	if err := checkDerived(treasury, address.RoleTreasury, cruxAddress); nil != err {
		return err
	}
	if crux.Treasury != treasury {
		return fault.ErrAddressMismatch
	}

	balance, ok := trx.Balance(treasury)
	if !ok {
		return fault.ErrRecordNotFound
	}
	footprint, _ := trx.Footprint(treasury)

	amount, err := arith.TrySub(balance, storage.ReserveForSize(footprint))
	if nil != err {
		return err
	}
	if 0 == amount {
		// already at the reserve, nothing to pay
		return fault.ErrUnderflow
	}

	if err := trx.Transfer(treasury, receiver, amount); nil != err {
		return err
	}

	globalData.log.Infof("%d paid out from treasury of crux %s to %s", amount, cruxAddress, receiver)
	return trx.Commit()
}

// CloseCrux - destroy the crux and its treasury, manager only
//
// refused while any profile, challenge or submission is still live;
// both reserves go to the receiver
func CloseCrux(manager address.Address, cruxAddress address.Address, treasury address.Address, receiver address.Address) error {
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
	if err := checkDerived(treasury, address.RoleTreasury, cruxAddress); nil != err {
		return err
	}
	if crux.Treasury != treasury {
		return fault.ErrAddressMismatch
	}

	counts := crux.Counts
	if counts.Profiles > 0 || counts.Challenges > 0 || counts.Submissions > 0 {
		return fault.ErrNotAllRecordsClosed
	}

	if err := trx.CloseCell(treasury, receiver); nil != err {
		return err
	}
	if err := trx.CloseCell(cruxAddress, receiver); nil != err {
		return err
	}

	globalData.log.Infof("crux %s closed", cruxAddress)
	return trx.Commit()
}
