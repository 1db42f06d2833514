// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/cruxforum/challengerd/records"
	"github.com/cruxforum/challengerd/storage"
)

// local faucet, only meaningful on a private ledger
func runDeposit(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	wallet, err := addressFlag(c, "wallet")
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("amount must be non-zero")
	}

	trx, err := storage.NewTransaction()
	if nil != err {
		return err
	}
	defer trx.Discard()
	if err := trx.Deposit(wallet, amount); nil != err {
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}

	balance, _, err := storage.ReadCellDirect(wallet)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]interface{}{
		"wallet":  wallet.String(),
		"balance": balance,
	})
}

// dump any cell: balance plus the decoded record if one is stored
func runShow(c *cli.Context) error {
	m, teardown, err := setup(c)
	if nil != err {
		return err
	}
	defer teardown()

	target, err := addressFlag(c, "address")
	if nil != err {
		return err
	}

	balance, payload, err := storage.ReadCellDirect(target)
	if nil != err {
		return err
	}

	result := map[string]interface{}{
		"address": target.String(),
		"balance": balance,
	}

	if 0 == len(payload) {
		result["type"] = "wallet"
	} else {
		record, _, err := records.Packed(payload).Unpack()
		if nil != err {
			return err
		}
		result["record"] = record
	}

	if m.verbose {
		fmt.Fprintf(m.e, "payload: %d bytes\n", len(payload))
	}
	return printJson(m.w, result)
}
