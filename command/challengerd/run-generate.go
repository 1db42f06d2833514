// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/cruxforum/challengerd/address"
)

// fresh random wallet address, derived from a random UUID so the seed
// can be noted down and the address re-generated later
func runGenerate(c *cli.Context) error {

	seed, err := uuid.NewRandom()
	if nil != err {
		return err
	}
	wallet := address.NewFromSeed(seed[:])

	if c.GlobalBool("verbose") {
		fmt.Fprintf(c.App.ErrWriter, "seed: %s\n", seed)
	}

	return printJson(c.App.Writer, map[string]string{
		"seed":   seed.String(),
		"wallet": wallet.String(),
	})
}

// re-derive any record address from its owner chain
func runDerive(c *cli.Context) error {

	var role address.Role
	switch strings.ToLower(c.String("role")) {
	case "authority":
		role = address.RoleAuthority
	case "treasury":
		role = address.RoleTreasury
	case "profile":
		role = address.RoleUserProfile
	case "challenge":
		role = address.RoleChallenge
	case "submission":
		role = address.RoleSubmission
	default:
		return fmt.Errorf("role: %q is not supported", c.String("role"))
	}

	parentArgs := c.StringSlice("parent")
	if 0 == len(parentArgs) {
		return fmt.Errorf("at least one parent address is required")
	}
	parents := make([]address.Address, len(parentArgs))
	for i, s := range parentArgs {
		a, err := address.FromBase58(s)
		if nil != err {
			return fmt.Errorf("parent: %q error: %s", s, err)
		}
		parents[i] = a
	}

	derived, bump := address.Derive(role, parents...)
	return printJson(c.App.Writer, map[string]interface{}{
		"address": derived.String(),
		"bump":    bump,
	})
}
