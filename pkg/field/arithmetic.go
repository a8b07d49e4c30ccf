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

import "fmt"

// Arithmetic captures the operations shared by field elements of every width
// in this module, such that generic algorithms can be written once over them.
type Arithmetic[E any] interface {
	fmt.Stringer
	// Add x+y
	Add(y E) E
	// Sub x-y
	Sub(y E) E
	// Mul x*y
	Mul(y E) E
	// Div x/y
	Div(y E) E
	// Inverse x⁻¹, panicking when x = 0.
	Inverse() E
	// Neg -x
	Neg() E
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Equals checks for the same value in the same field.
	Equals(y E) bool
	// ZeroOf returns the additive identity of this element's field.
	ZeroOf() E
	// OneOf returns the multiplicative identity of this element's field.
	OneOf() E
}

// ZeroOf returns the additive identity of x's field.
func (x Element) ZeroOf() Element {
	return Zero(x.modulus)
}

// OneOf returns the multiplicative identity of x's field.
func (x Element) OneOf() Element {
	return One(x.modulus)
}

// BatchInvert inverts every element of s in place, at the cost of a single
// inversion plus three multiplications per element (Montgomery's trick).
// Zero entries are left as zero.  All elements must belong to the same field.
func BatchInvert[E Arithmetic[E]](s []E) {
	if len(s) == 0 {
		return
	}
	//
	var (
		n   = len(s)
		one = s[0].OneOf()
		// identifies entries which are zero
		isZero = make([]bool, n)
		// m[i] = s[i] * s[i+1] * ...
		m = make([]E, n)
	)
	//
	for i := n - 1; i >= 0; i-- {
		if isZero[i] = s[i].IsZero(); isZero[i] {
			s[i] = one
		}
		//
		if i == n-1 {
			m[i] = s[i]
		} else {
			m[i] = m[i+1].Mul(s[i])
		}
	}
	// inv = s[0]⁻¹ * s[1]⁻¹ * ...
	inv := m[0].Inverse()
	//
	for i := range n - 1 {
		// inv = s[i]⁻¹ * s[i+1]⁻¹ * ...
		next := inv.Mul(s[i])
		s[i] = inv.Mul(m[i+1])
		inv = next
		// inv = s[i+1]⁻¹ * s[i+2]⁻¹ * ...
	}
	//
	s[n-1] = inv
	//
	for i, z := range isZero {
		if z {
			s[i] = s[i].ZeroOf()
		}
	}
}

// Evaluate computes c[0] + c[1]x + c[2]x² + ... by Horner's rule.  The
// coefficients must belong to the same field as x.  Panics if there are no
// coefficients.
func Evaluate[E Arithmetic[E]](coefficients []E, x E) E {
	if len(coefficients) == 0 {
		panic("cannot evaluate an empty polynomial")
	}
	//
	acc := coefficients[len(coefficients)-1]
	//
	for i := len(coefficients) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(coefficients[i])
	}
	//
	return acc
}
