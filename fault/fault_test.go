// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/cruxforum/challengerd/fault"
)

var (
	errArithmeticOne    = fault.ArithmeticError("arithmetic one")
	errAuthorizationOne = fault.AuthorizationError("authorization one")
	errExistsOne        = fault.ExistsError("exists one")
	errInvalidOne       = fault.InvalidError("invalid one")
	errInvariantOne     = fault.InvariantError("invariant one")
	errNotFoundOne      = fault.NotFoundError("not found one")
	errProcessOne       = fault.ProcessError("process one")
	errResourceOne      = fault.ResourceError("resource one")
)

// test that each error class is detected by exactly its own predicate
func TestClassification(t *testing.T) {
	errorList := []struct {
		err           error
		arithmetic    bool
		authorization bool
		exists        bool
		invalid       bool
		invariant     bool
		notFound      bool
		process       bool
		resource      bool
	}{
		{errArithmeticOne, true, false, false, false, false, false, false, false},
		{errAuthorizationOne, false, true, false, false, false, false, false, false},
		{errExistsOne, false, false, true, false, false, false, false, false},
		{errInvalidOne, false, false, false, true, false, false, false, false},
		{errInvariantOne, false, false, false, false, true, false, false, false},
		{errNotFoundOne, false, false, false, false, false, true, false, false},
		{errProcessOne, false, false, false, false, false, false, true, false},
		{errResourceOne, false, false, false, false, false, false, false, true},
		{fault.ErrOverflow, true, false, false, false, false, false, false, false},
		{fault.ErrUnderflow, true, false, false, false, false, false, false, false},
		{fault.ErrAddressMismatch, false, true, false, false, false, false, false, false},
		{fault.ErrProfileIsNotModerator, false, true, false, false, false, false, false, false},
		{fault.ErrNotAllRecordsClosed, false, false, false, false, true, false, false, false},
		{fault.ErrInsufficientFunds, false, false, false, false, false, false, false, true},
	}

	for i, item := range errorList {
		if fault.IsErrArithmetic(item.err) != item.arithmetic {
			t.Errorf("%d: arithmetic misclassified: %q", i, item.err)
		}
		if fault.IsErrAuthorization(item.err) != item.authorization {
			t.Errorf("%d: authorization misclassified: %q", i, item.err)
		}
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: exists misclassified: %q", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid misclassified: %q", i, item.err)
		}
		if fault.IsErrInvariant(item.err) != item.invariant {
			t.Errorf("%d: invariant misclassified: %q", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found misclassified: %q", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: process misclassified: %q", i, item.err)
		}
		if fault.IsErrResource(item.err) != item.resource {
			t.Errorf("%d: resource misclassified: %q", i, item.err)
		}
	}
}
