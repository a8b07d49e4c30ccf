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
package u256

import (
	"fmt"

	"github.com/consensys/go-primefield/pkg/field"
	"github.com/holiman/uint256"
	log "github.com/sirupsen/logrus"
)

// Number of Miller-Rabin rounds used when validating a modulus.
const primalityRounds = 20

// Element is a residue of a prime-order field whose modulus fits in 256 bits,
// such as the base or scalar fields of the common elliptic curves.  It follows
// the same contract as field.Element: elements are immutable values, binary
// operations panic with a *field.MismatchError across fields, and division by
// zero panics with field.ErrDivisionByZero.
type Element struct {
	value   uint256.Int
	modulus uint256.Int
}

// New constructs an element with the given value in the field of the given
// modulus.  Both are copied and stored as given, without validation.
func New(value, modulus *uint256.Int) Element {
	return Element{*value, *modulus}
}

// FromDecimal constructs an element from decimal strings.  Like New, it does
// not check that the modulus is prime or that the value is in range.
func FromDecimal(value, modulus string) (Element, error) {
	v, err := uint256.FromDecimal(value)
	if err != nil {
		return Element{}, fmt.Errorf("invalid value %q: %w", value, err)
	}
	//
	m, err := uint256.FromDecimal(modulus)
	if err != nil {
		return Element{}, fmt.Errorf("invalid modulus %q: %w", modulus, err)
	}
	//
	return New(v, m), nil
}

// NewChecked constructs an element, first confirming that the modulus is
// (probably) prime and that the value is a residue of it.
func NewChecked(value, modulus *uint256.Int) (Element, error) {
	if !modulus.ToBig().ProbablyPrime(primalityRounds) {
		log.Debugf("rejecting modulus %s: not prime", modulus.Dec())
		return Element{}, fmt.Errorf("%w: %s", field.ErrNotPrime, modulus.Dec())
	} else if !value.Lt(modulus) {
		log.Debugf("rejecting value %s: not below modulus %s", value.Dec(), modulus.Dec())
		return Element{}, fmt.Errorf("%w: %s >= %s", field.ErrOutOfRange, value.Dec(), modulus.Dec())
	}
	//
	return New(value, modulus), nil
}

// Value returns a copy of the residue held by this element.
func (x Element) Value() *uint256.Int {
	return x.value.Clone()
}

// Modulus returns a copy of the modulus of this element's field.
func (x Element) Modulus() *uint256.Int {
	return x.modulus.Clone()
}

// InField checks whether y belongs to the same field as x.
func (x Element) InField(y Element) bool {
	return x.modulus.Eq(&y.modulus)
}

// Equals checks whether x and y hold the same value in the same field.
func (x Element) Equals(y Element) bool {
	return x.value.Eq(&y.value) && x.modulus.Eq(&y.modulus)
}

// IsZero checks whether this is the additive identity.
func (x Element) IsZero() bool {
	return x.value.IsZero()
}

// IsOne checks whether this is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.value.IsUint64() && x.value.Uint64() == 1
}

// ZeroOf returns the additive identity of x's field.
func (x Element) ZeroOf() Element {
	return Element{uint256.Int{}, x.modulus}
}

// OneOf returns the multiplicative identity of x's field.
func (x Element) OneOf() Element {
	var one uint256.Int
	//
	one.Mod(uint256.NewInt(1), &x.modulus)
	//
	return Element{one, x.modulus}
}

func (x Element) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", x.modulus.Dec(), x.value.Dec())
}

// Add x + y
func (x Element) Add(y Element) Element {
	x.mustMatch("add", y)
	//
	var res uint256.Int
	//
	res.AddMod(&x.value, &y.value, &x.modulus)
	//
	return Element{res, x.modulus}
}

// Sub x - y, computed as x + (p - y) so that nothing wraps below zero.
func (x Element) Sub(y Element) Element {
	x.mustMatch("subtract", y)
	//
	return Element{subMod(&x.value, &y.value, &x.modulus), x.modulus}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	x.mustMatch("multiply", y)
	//
	var res uint256.Int
	//
	res.MulMod(&x.value, &y.value, &x.modulus)
	//
	return Element{res, x.modulus}
}

// Div x / y, computed as x * y⁻¹.  Panics with field.ErrDivisionByZero when y
// is zero.
func (x Element) Div(y Element) Element {
	x.mustMatch("divide", y)
	//
	inv := y.Inverse()
	//
	return x.Mul(inv)
}

// Inverse x⁻¹ via Fermat's little theorem, i.e. x^(p-2).  Panics with
// field.ErrDivisionByZero when x is zero.
func (x Element) Inverse() Element {
	var r uint256.Int
	// Zero modulus reduces to zero here as well
	if r.Mod(&x.value, &x.modulus).IsZero() {
		panic(field.ErrDivisionByZero)
	}
	//
	exp := new(uint256.Int).SubUint64(&x.modulus, 2)
	//
	return Element{*ModPow(&x.value, exp, &x.modulus), x.modulus}
}

// Neg -x
func (x Element) Neg() Element {
	return Element{subMod(new(uint256.Int), &x.value, &x.modulus), x.modulus}
}

// Pow x^n.  The exponent is used as given, not reduced modulo p-1.
func (x Element) Pow(n *uint256.Int) Element {
	return Element{*ModPow(&x.value, n, &x.modulus), x.modulus}
}

func (x Element) mustMatch(op string, y Element) {
	if !x.modulus.Eq(&y.modulus) {
		panic(&field.MismatchError{Op: op, Left: x.modulus.Dec(), Right: y.modulus.Dec()})
	}
}
