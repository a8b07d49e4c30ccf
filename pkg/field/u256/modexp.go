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
	"github.com/consensys/go-primefield/pkg/field"
	"github.com/holiman/uint256"
)

// ModPow computes base^exponent mod modulus by square-and-multiply over the
// bits of the exponent, least-significant first.  Products are reduced through
// MulMod, which keeps the full 512-bit intermediate.  A modulus of 1 yields 0.
func ModPow(base, exponent, modulus *uint256.Int) *uint256.Int {
	if modulus.IsZero() {
		panic(field.ErrZeroModulus)
	} else if modulus.IsUint64() && modulus.Uint64() == 1 {
		return new(uint256.Int)
	}
	//
	var (
		acc = uint256.NewInt(1)
		b   = new(uint256.Int).Mod(base, modulus)
		n   = exponent.BitLen()
	)
	//
	for i := range n {
		if (exponent[i/64]>>(i%64))&1 == 1 {
			acc.MulMod(acc, b, modulus)
		}
		// No need to square past the top bit
		if i+1 < n {
			b.MulMod(b, b, modulus)
		}
	}
	//
	return acc
}

// subMod returns a-b mod m as a + (m - (b mod m)) mod m.  AddMod carries the
// 257th bit, so this is safe for any modulus.
func subMod(a, b, m *uint256.Int) uint256.Int {
	var neg, res uint256.Int
	//
	neg.Mod(b, m)
	neg.Sub(m, &neg)
	res.AddMod(a, &neg, m)
	//
	return res
}
