// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrFieldMismatch signals a binary operation between elements of
	// different fields.  Operators panic with a *MismatchError, which matches
	// this value under errors.Is.
	ErrFieldMismatch = errors.New("field mismatch")
	// ErrDivisionByZero signals an attempt to invert the additive identity.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotPrime signals a modulus which does not define a prime field.
	ErrNotPrime = errors.New("modulus is not prime")
	// ErrOutOfRange signals a value which is not a residue of the modulus,
	// i.e. it does not lie in [0, modulus).
	ErrOutOfRange = errors.New("value out of range for modulus")
	// ErrZeroModulus signals modular arithmetic with a modulus of zero.
	ErrZeroModulus = errors.New("modulus is zero")
	// ErrNegativeExponent signals a negative exponent passed to PowBig.
	ErrNegativeExponent = errors.New("negative exponent")
)

// MismatchError describes a binary operation attempted on two elements whose
// moduli differ.  Moduli are held in decimal so that elements of any width can
// report them.
type MismatchError struct {
	// Op names the attempted operation (e.g. "add").
	Op string
	// Left and Right are the moduli of the two operands.
	Left, Right string
}

// NewMismatchError constructs a mismatch error for two 64-bit moduli.
func NewMismatchError(op string, left, right uint64) *MismatchError {
	return &MismatchError{op, strconv.FormatUint(left, 10), strconv.FormatUint(right, 10)}
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot %s elements of different fields (modulus %s vs %s)", e.Op, e.Left, e.Right)
}

// Is reports whether target is ErrFieldMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrFieldMismatch
}
