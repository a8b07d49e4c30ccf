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
	"math/big"
	"math/bits"
)

// ModPow computes base^exponent mod modulus by binary (square-and-multiply)
// exponentiation, walking the exponent from its least-significant bit.  Every
// intermediate product is formed at 128 bits before reduction.  A modulus of 1
// yields 0, since every integer is congruent to 0 in that ring.
func ModPow(base, exponent, modulus uint64) uint64 {
	switch modulus {
	case 0:
		panic(ErrZeroModulus)
	case 1:
		return 0
	}
	//
	var acc uint64 = 1
	//
	base %= modulus
	//
	for exponent > 0 {
		if exponent&1 == 1 {
			acc = mulMod(acc, base, modulus)
		}
		//
		base = mulMod(base, base, modulus)
		exponent >>= 1
	}
	//
	return acc
}

// modPowBig is ModPow for an exponent of arbitrary width.  The exponent must be
// non-negative.
func modPowBig(base uint64, exponent *big.Int, modulus uint64) uint64 {
	switch modulus {
	case 0:
		panic(ErrZeroModulus)
	case 1:
		return 0
	}
	//
	var (
		acc uint64 = 1
		n          = exponent.BitLen()
	)
	//
	base %= modulus
	//
	for i := range n {
		if exponent.Bit(i) == 1 {
			acc = mulMod(acc, base, modulus)
		}
		// No need to square past the top bit
		if i+1 < n {
			base = mulMod(base, base, modulus)
		}
	}
	//
	return acc
}

// mulMod returns a*b mod m using the full 128-bit product.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	//
	return bits.Rem64(hi, lo, m)
}

// addMod returns a+b mod m, keeping the carry out of the 64-bit sum.
func addMod(a, b, m uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	//
	return bits.Rem64(carry, sum, m)
}

// subMod returns a-b mod m as a + (m - b) mod m, so the result never wraps
// below zero.
func subMod(a, b, m uint64) uint64 {
	return addMod(a, m-b%m, m)
}
