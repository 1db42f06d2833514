// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// reserve schedule
//
// a cell must keep at least this balance to remain persisted; the
// schedule is flat-plus-linear in the payload byte size
const (
	reserveBase    uint64 = 2048
	reservePerByte uint64 = 16
)

// ReserveForSize - minimum balance a cell of the given payload size
// must hold
//
// pure function; payload sizes are bounded well below any overflow
func ReserveForSize(size int) uint64 {
	return reserveBase + uint64(size)*reservePerByte
}
