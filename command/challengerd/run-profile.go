// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/forum"
)

func runProfileCreate(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	cruxAddress, err := addressFlag(c, "crux")
	if nil != err {
		return err
	}
	owner, err := addressFlag(c, "owner")
	if nil != err {
		return err
	}
	treasury, _ := address.Derive(address.RoleTreasury, cruxAddress)
	profileAddress, _ := address.Derive(address.RoleUserProfile, cruxAddress, owner)

	if err := forum.CreateProfile(cruxAddress, treasury, owner, profileAddress); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"profile": profileAddress.String(),
		"owner":   owner.String(),
	})
}

func runProfileEdit(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	cruxAddress, err := addressFlag(c, "crux")
	if nil != err {
		return err
	}
	owner, err := addressFlag(c, "owner")
	if nil != err {
		return err
	}
	media, err := addressFlag(c, "media")
	if nil != err {
		return err
	}
	profileAddress, _ := address.Derive(address.RoleUserProfile, cruxAddress, owner)

	if err := forum.EditProfile(cruxAddress, owner, profileAddress, media); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"profile": profileAddress.String(),
	})
}

func runGrantModerator(c *cli.Context) error {
	return runModeratorFlag(c, forum.AddModerator)
}

func runRevokeModerator(c *cli.Context) error {
	return runModeratorFlag(c, forum.RemoveModerator)
}

func runModeratorFlag(c *cli.Context, change func(address.Address, address.Address, address.Address, address.Address) error) error {
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
	owner, err := addressFlag(c, "owner")
	if nil != err {
		return err
	}
	profileAddress, _ := address.Derive(address.RoleUserProfile, cruxAddress, owner)

	if err := change(manager, cruxAddress, owner, profileAddress); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"profile": profileAddress.String(),
	})
}

func runProfileDelete(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	cruxAddress, err := addressFlag(c, "crux")
	if nil != err {
		return err
	}
	owner, err := addressFlag(c, "owner")
	if nil != err {
		return err
	}
	receiver, err := addressFlag(c, "receiver")
	if nil != err {
		return err
	}
	profileAddress, _ := address.Derive(address.RoleUserProfile, cruxAddress, owner)

	if err := forum.DeleteProfile(cruxAddress, owner, profileAddress, receiver); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"closed": profileAddress.String(),
	})
}
