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

// derive all record addresses on the submission path
func submissionChain(cruxAddress address.Address, owner address.Address, seed address.Address) (profile address.Address, challenge address.Address, submission address.Address) {
	profile, _ = address.Derive(address.RoleUserProfile, cruxAddress, owner)
	challenge, _ = address.Derive(address.RoleChallenge, cruxAddress, seed)
	submission, _ = address.Derive(address.RoleSubmission, challenge, profile)
	return
}

func runSubmissionCreate(c *cli.Context) error {
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
	seed, err := addressFlag(c, "seed")
	if nil != err {
		return err
	}
	hash, err := addressFlag(c, "hash")
	if nil != err {
		return err
	}

	treasury, _ := address.Derive(address.RoleTreasury, cruxAddress)
	profile, challenge, submission := submissionChain(cruxAddress, owner, seed)

	if err := forum.CreateSubmission(cruxAddress, treasury, owner, profile, seed, challenge, submission, c.String("url"), hash); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"submission": submission.String(),
	})
}

func runSubmissionEdit(c *cli.Context) error {
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
	seed, err := addressFlag(c, "seed")
	if nil != err {
		return err
	}
	hash, err := addressFlag(c, "hash")
	if nil != err {
		return err
	}

	profile, challenge, submission := submissionChain(cruxAddress, owner, seed)

	if err := forum.EditSubmission(cruxAddress, owner, profile, seed, challenge, submission, c.String("url"), hash); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"submission": submission.String(),
	})
}

func runSubmissionEvaluate(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	cruxAddress, err := addressFlag(c, "crux")
	if nil != err {
		return err
	}
	moderator, err := addressFlag(c, "moderator")
	if nil != err {
		return err
	}
	owner, err := addressFlag(c, "owner")
	if nil != err {
		return err
	}
	seed, err := addressFlag(c, "seed")
	if nil != err {
		return err
	}
	newState, err := records.StateFromString(c.String("state"))
	if nil != err {
		return err
	}

	moderatorProfile, _ := address.Derive(address.RoleUserProfile, cruxAddress, moderator)
	profile, challenge, submission := submissionChain(cruxAddress, owner, seed)

	if err := forum.EvaluateSubmission(cruxAddress, moderator, moderatorProfile, owner, profile, seed, challenge, submission, newState); nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"submission": submission.String(),
		"state":      newState,
	})
}

func runSubmissionDelete(c *cli.Context) error {
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
	seed, err := addressFlag(c, "seed")
	if nil != err {
		return err
	}
	receiver, err := addressFlag(c, "receiver")
	if nil != err {
		return err
	}

	profile, challenge, submission := submissionChain(cruxAddress, owner, seed)

	if err := forum.DeleteSubmission(cruxAddress, owner, profile, seed, challenge, submission, receiver); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"closed": submission.String(),
	})
}

func runSubmissionRemove(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	cruxAddress, err := addressFlag(c, "crux")
	if nil != err {
		return err
	}
	moderator, err := addressFlag(c, "moderator")
	if nil != err {
		return err
	}
	owner, err := addressFlag(c, "owner")
	if nil != err {
		return err
	}
	seed, err := addressFlag(c, "seed")
	if nil != err {
		return err
	}
	receiver, err := addressFlag(c, "receiver")
	if nil != err {
		return err
	}

	moderatorProfile, _ := address.Derive(address.RoleUserProfile, cruxAddress, moderator)
	profile, challenge, submission := submissionChain(cruxAddress, owner, seed)

	if err := forum.DeleteSubmissionByModerator(cruxAddress, moderator, moderatorProfile, owner, profile, seed, challenge, submission, receiver); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"closed": submission.String(),
	})
}
