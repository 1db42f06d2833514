// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/forum"
	"github.com/cruxforum/challengerd/records"
)

func runCruxCreate(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	manager, err := addressFlag(c, "manager")
	if nil != err {
		return err
	}
	cruxAddress, err := addressFlag(c, "crux")
	if nil != err {
		return err
	}
	fees := records.CruxFees{
		ProfileFee:    c.Uint64("profile-fee"),
		SubmissionFee: c.Uint64("submission-fee"),
	}

	if err := forum.CreateCrux(manager, cruxAddress, fees); nil != err {
		return err
	}

	authority, _ := address.Derive(address.RoleAuthority, cruxAddress)
	treasury, _ := address.Derive(address.RoleTreasury, cruxAddress)
	return printJson(m.w, map[string]string{
		"crux":      cruxAddress.String(),
		"authority": authority.String(),
		"treasury":  treasury.String(),
	})
}

func runCruxFees(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	manager, err := addressFlag(c, "manager")
	if nil != err {
		return err
	}
	cruxAddress, err := addressFlag(c, "crux")
	if nil != err {
		return err
	}
	fees := records.CruxFees{
		ProfileFee:    c.Uint64("profile-fee"),
		SubmissionFee: c.Uint64("submission-fee"),
	}

	if err := forum.UpdateCruxFees(manager, cruxAddress, fees); nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"crux": cruxAddress.String(),
		"fees": fees,
	})
}

func runCruxPayout(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	manager, err := addressFlag(c, "manager")
	if nil != err {
		return err
	}
	cruxAddress, err := addressFlag(c, "crux")
	if nil != err {
		return err
	}
	receiver, err := addressFlag(c, "receiver")
	if nil != err {
		return err
	}
	treasury, _ := address.Derive(address.RoleTreasury, cruxAddress)

	if err := forum.PayoutFromTreasury(manager, cruxAddress, treasury, receiver); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"crux":     cruxAddress.String(),
		"receiver": receiver.String(),
	})
}

func runCruxClose(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	manager, err := addressFlag(c, "manager")
	if nil != err {
		return err
	}
	cruxAddress, err := addressFlag(c, "crux")
	if nil != err {
		return err
	}
	receiver, err := addressFlag(c, "receiver")
	if nil != err {
		return err
	}
	treasury, _ := address.Derive(address.RoleTreasury, cruxAddress)

	if err := forum.CloseCrux(manager, cruxAddress, treasury, receiver); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"closed": cruxAddress.String(),
	})
}
