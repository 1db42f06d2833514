// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package arith - checked unsigned arithmetic
//
// Every counter and balance mutation in the system is routed through
// these operations so that overflow and underflow always surface as
// errors instead of wrapping.
package arith

import (
	"math"

	"github.com/cruxforum/challengerd/fault"
)

// TryAdd - checked addition of two unsigned 64 bit values
func TryAdd(a uint64, b uint64) (uint64, error) {
	if b > math.MaxUint64-a {
		return 0, fault.ErrOverflow
	}
	return a + b, nil
}

// TrySub - checked subtraction, fails if b exceeds a
func TrySub(a uint64, b uint64) (uint64, error) {
	if b > a {
		return 0, fault.ErrUnderflow
	}
	return a - b, nil
}
