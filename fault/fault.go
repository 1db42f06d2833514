// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type AuthorizationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ResourceError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressMismatch        = AuthorizationError("record address does not match its derivation")
	ErrAlreadyEvaluated       = InvariantError("submission already evaluated")
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrCannotDecodeRecord     = ProcessError("cannot decode record")
	ErrChallengeExpired       = InvalidError("challenge has expired")
	ErrInsufficientFunds      = ResourceError("insufficient funds")
	ErrInvalidAddressLength   = InvalidError("address length is invalid")
	ErrInvalidCategory        = InvalidError("category is invalid")
	ErrInvalidExpiryTime      = InvalidError("expiry time is not in the future")
	ErrInvalidStringInput     = InvalidError("string input is empty")
	ErrInvalidSubmissionState = InvalidError("submission state is invalid")
	ErrNotAllRecordsClosed    = InvariantError("crux still owns live records")
	ErrNotCruxManager         = AuthorizationError("caller is not the crux manager")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrNotProfileOwner        = AuthorizationError("caller is not the profile owner")
	ErrOverflow               = ArithmeticError("unsigned overflow")
	ErrProfileIsNotModerator  = AuthorizationError("profile is not a moderator")
	ErrRecordAlreadyExists    = ExistsError("record already exists")
	ErrRecordNotFound         = NotFoundError("record not found")
	ErrSubmissionCompleted    = InvariantError("completed submission cannot be modified")
	ErrTitleOrURLTooLong      = InvalidError("title or url is too long")
	ErrUnderflow              = ArithmeticError("unsigned underflow")
	ErrWrongRecordTag         = InvalidError("record tag is wrong")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string    { return string(e) }
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e InvariantError) Error() string     { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e ResourceError) Error() string      { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool    { _, ok := e.(ArithmeticError); return ok }
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool     { _, ok := e.(InvariantError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrResource(e error) bool      { _, ok := e.(ResourceError); return ok }
