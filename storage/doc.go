// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the persistent record cell store
//
// Every record lives in one cell keyed by its address.  A cell is an
// 8 byte big endian balance followed by the packed record payload;
// plain wallets and the treasury are cells with an empty payload.
//
// All mutation happens inside a Transaction: pending writes overlay
// the database for reads and are committed as a single leveldb batch,
// so a failed operation leaves no partial state.  The transaction
// lock serialises overlapping operations.
package storage
