// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package forum - the tenant-scoped content and reputation engine
//
// Operations resolve every record address against its derivation,
// load records from the cell store, adjust counters and balances
// through checked arithmetic and commit all mutations atomically.
// A failed operation performs zero persistent mutation.
package forum

import (
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/bitmark-inc/logger"

	"github.com/cruxforum/challengerd/fault"
)

// globals for this module
var globalData struct {
	sync.RWMutex
	log         *logger.L
	clk         clock.Clock
	initialised bool
}

// Initialise - start up the forum engine
//
// a nil clock selects the wall clock; tests inject a mock
func Initialise(clk clock.Clock) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if nil == clk {
		clk = clock.New()
	}

	globalData.log = logger.New("forum")
	globalData.clk = clk
	globalData.initialised = true

	globalData.log.Info("initialised")
	return nil
}

// Finalise - shut down the forum engine
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()
	globalData.log = nil
	globalData.clk = nil
	globalData.initialised = false
}

// current time as a unix timestamp
func nowTS() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return uint64(globalData.clk.Now().Unix())
}
