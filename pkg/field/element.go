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
	"fmt"
	"math/big"

	log "github.com/sirupsen/logrus"
)

// Element is a residue of a prime-order field, held together with the modulus
// which defines that field.  Elements are immutable values: every operation
// returns a fresh element and leaves its operands untouched.
//
// Binary operations require both operands to belong to the same field (i.e. to
// share a modulus) and panic with a *MismatchError otherwise.  The value is
// expected to lie in [0, modulus) and the modulus to be prime.  Neither is
// checked by New; results of operations on elements violating this are
// unspecified.  Use NewChecked where inputs are untrusted.
type Element struct {
	value   uint64
	modulus uint64
}

// New constructs an element with the given value in the field of the given
// modulus.  The pair is stored as given.
func New(value, modulus uint64) Element {
	return Element{value, modulus}
}

// NewChecked constructs an element, first confirming that modulus is prime and
// that value is a residue of it.
func NewChecked(value, modulus uint64) (Element, error) {
	if !IsPrime(modulus) {
		log.Debugf("rejecting modulus %d: not prime", modulus)
		return Element{}, fmt.Errorf("%w: %d", ErrNotPrime, modulus)
	} else if value >= modulus {
		log.Debugf("rejecting value %d: not below modulus %d", value, modulus)
		return Element{}, fmt.Errorf("%w: %d >= %d", ErrOutOfRange, value, modulus)
	}
	//
	return Element{value, modulus}, nil
}

// Zero returns the additive identity of the field with the given modulus.
func Zero(modulus uint64) Element {
	return Element{0, modulus}
}

// One returns the multiplicative identity of the field with the given modulus.
func One(modulus uint64) Element {
	return Element{1 % modulus, modulus}
}

// Value returns the residue held by this element.
func (x Element) Value() uint64 {
	return x.value
}

// Modulus returns the modulus of the field this element belongs to.
func (x Element) Modulus() uint64 {
	return x.modulus
}

// InField checks whether y belongs to the same field as x.
func (x Element) InField(y Element) bool {
	return x.modulus == y.modulus
}

// Equals checks whether x and y hold the same value in the same field.
func (x Element) Equals(y Element) bool {
	return x == y
}

// IsZero checks whether this is the additive identity.
func (x Element) IsZero() bool {
	return x.value == 0
}

// IsOne checks whether this is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.value == 1
}

func (x Element) String() string {
	return fmt.Sprintf("FieldElement_%d(%d)", x.modulus, x.value)
}

// Add x + y
func (x Element) Add(y Element) Element {
	x.mustMatch("add", y)
	//
	return Element{addMod(x.value, y.value, x.modulus), x.modulus}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	x.mustMatch("subtract", y)
	//
	return Element{subMod(x.value, y.value, x.modulus), x.modulus}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	x.mustMatch("multiply", y)
	//
	return Element{mulMod(x.value, y.value, x.modulus), x.modulus}
}

// Div x / y, computed as x * y⁻¹.  Panics with ErrDivisionByZero when y is
// zero.
func (x Element) Div(y Element) Element {
	x.mustMatch("divide", y)
	//
	return Element{mulMod(x.value, y.Inverse().value, x.modulus), x.modulus}
}

// Inverse x⁻¹, computed via Fermat's little theorem as x^(p-2).  This relies
// on the modulus being prime.  Panics with ErrDivisionByZero when x is zero.
func (x Element) Inverse() Element {
	if x.value%x.modulus == 0 {
		panic(ErrDivisionByZero)
	}
	//
	return Element{ModPow(x.value, x.modulus-2, x.modulus), x.modulus}
}

// Neg -x
func (x Element) Neg() Element {
	return Element{subMod(0, x.value, x.modulus), x.modulus}
}

// Double 2x
func (x Element) Double() Element {
	return Element{addMod(x.value, x.value, x.modulus), x.modulus}
}

// Square x²
func (x Element) Square() Element {
	return Element{mulMod(x.value, x.value, x.modulus), x.modulus}
}

// Pow x^n.  The exponent is used as given, not reduced modulo p-1.
func (x Element) Pow(n uint64) Element {
	return Element{ModPow(x.value, n, x.modulus), x.modulus}
}

// PowBig x^n for an exponent of any width.  Panics with ErrNegativeExponent
// when n < 0.
func (x Element) PowBig(n *big.Int) Element {
	if n.Sign() < 0 {
		panic(ErrNegativeExponent)
	}
	//
	return Element{modPowBig(x.value, n, x.modulus), x.modulus}
}

func (x Element) mustMatch(op string, y Element) {
	if x.modulus != y.modulus {
		panic(NewMismatchError(op, x.modulus, y.modulus))
	}
}
