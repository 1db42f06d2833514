// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/category"
	"github.com/cruxforum/challengerd/forum"
)

// assemble the content parameters shared by post and edit
func challengeParams(c *cli.Context) (forum.ChallengeParams, error) {

	categoryArgs := c.StringSlice("category")
	if 0 == len(categoryArgs) {
		return forum.ChallengeParams{}, fmt.Errorf("at least one category is required")
	}
	categories := make([]category.Category, len(categoryArgs))
	for i, s := range categoryArgs {
		parsed, err := category.FromString(s)
		if nil != err {
			return forum.ChallengeParams{}, fmt.Errorf("category: %q error: %s", s, err)
		}
		categories[i] = parsed
	}

	hash, err := addressFlag(c, "hash")
	if nil != err {
		return forum.ChallengeParams{}, err
	}

	return forum.ChallengeParams{
		Categories:  categories,
		Title:       c.String("title"),
		ContentURL:  c.String("url"),
		ContentHash: hash,
		ExpiresAt:   c.Uint64("expires"),
		Reputation:  c.Uint64("reputation"),
	}, nil
}

func runChallengePost(c *cli.Context) error {
	return runChallengeContent(c, forum.CreateChallenge)
}

func runChallengeEdit(c *cli.Context) error {
	return runChallengeContent(c, forum.EditChallenge)
}

func runChallengeContent(c *cli.Context, apply func(address.Address, address.Address, address.Address, address.Address, address.Address, forum.ChallengeParams) error) error {
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
	seed, err := addressFlag(c, "seed")
	if nil != err {
		return err
	}
	params, err := challengeParams(c)
	if nil != err {
		return err
	}

	moderatorProfile, _ := address.Derive(address.RoleUserProfile, cruxAddress, moderator)
	challengeAddress, _ := address.Derive(address.RoleChallenge, cruxAddress, seed)

	if err := apply(cruxAddress, moderator, moderatorProfile, seed, challengeAddress, params); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"challenge": challengeAddress.String(),
	})
}

func runChallengeDelete(c *cli.Context) error {
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
	seed, err := addressFlag(c, "seed")
	if nil != err {
		return err
	}
	receiver, err := addressFlag(c, "receiver")
	if nil != err {
		return err
	}

	moderatorProfile, _ := address.Derive(address.RoleUserProfile, cruxAddress, moderator)
	challengeAddress, _ := address.Derive(address.RoleChallenge, cruxAddress, seed)

	if err := forum.DeleteChallenge(cruxAddress, moderator, moderatorProfile, seed, challengeAddress, receiver); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{
		"closed": challengeAddress.String(),
	})
}
