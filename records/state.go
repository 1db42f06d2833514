// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"fmt"
	"strings"

	"github.com/cruxforum/challengerd/fault"
)

// State - submission state enumeration
//
// Pending is the initial state; Completed and Rejected are terminal
// and may only be assigned by an evaluator.
type State uint64

// possible submission states
const (
	StateNothing   State = iota // this must be the first value
	StatePending   State = iota
	StateCompleted State = iota
	StateRejected  State = iota
	stateMaximum   State = iota // this must be the last value
)

// internal conversion
func stateToString(s State) ([]byte, error) {
	switch s {
	case StateNothing:
		return []byte{}, nil
	case StatePending:
		return []byte("pending"), nil
	case StateCompleted:
		return []byte("completed"), nil
	case StateRejected:
		return []byte("rejected"), nil
	default:
		return []byte{}, fault.ErrInvalidSubmissionState
	}
}

// StateFromString - parse a submission state symbol
func StateFromString(in string) (State, error) {
	switch strings.ToLower(in) {
	case "pending":
		return StatePending, nil
	case "completed":
		return StateCompleted, nil
	case "rejected":
		return StateRejected, nil
	default:
		return StateNothing, fault.ErrInvalidSubmissionState
	}
}

// StateFromUint64 - convert a stored numeric value, validating range
func StateFromUint64(n uint64) (State, error) {
	s := State(n)
	if !s.IsValid() {
		return StateNothing, fault.ErrInvalidSubmissionState
	}
	return s, nil
}

// Uint64 - numeric value for storage
func (state State) Uint64() uint64 {
	return uint64(state)
}

// String - convert a state to its string symbol
func (state State) String() string {
	s, err := stateToString(state)
	if nil != err {
		panic(fmt.Sprintf("invalid submission state enumeration: %d", state))
	}
	return string(s)
}

// GoString - show enum value and symbol, for debugging
func (state State) GoString() string {
	return fmt.Sprintf("<State#%d:%q>", uint64(state), state.String())
}

// MarshalText - for the encoding packages
func (state State) MarshalText() ([]byte, error) {
	return stateToString(state)
}

// UnmarshalText - for the encoding packages
func (state *State) UnmarshalText(s []byte) error {
	parsed, err := StateFromString(string(s))
	if nil != err {
		return err
	}
	*state = parsed
	return nil
}

// IsValid - valid state, StateNothing is not considered as valid
func (state State) IsValid() bool {
	return state > StateNothing && state < stateMaximum
}

// IsTerminal - evaluator-assigned states admit no further transition
func (state State) IsTerminal() bool {
	return StateCompleted == state || StateRejected == state
}
