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
	"testing"

	"github.com/consensys/go-primefield/pkg/util/assert"
)

// Composites include strong pseudoprimes to several of the smaller witnesses,
// and Carmichael numbers.
var COMPOSITES = []uint64{
	0, 1, 4, 9, 561, 8211, 1729,
	3215031751,
	4759123141,
	2152302898747,
	3474749660383,
	341550071728321,
	3825123056546413051,
	69418916488692231,
	1391821019477845399,
	2128090164445538166,
	16344437384279108147,
	17364939545239290576,
	18446744073709551615,
}

func Test_IsPrime_01(t *testing.T) {
	for _, p := range SMALL_PRIMES {
		assert.True(t, IsPrime(p), "%d is prime", p)
	}
	//
	for _, p := range LARGE_PRIMES {
		assert.True(t, IsPrime(p), "%d is prime", p)
	}
	//
	for _, c := range COMPOSITES {
		assert.False(t, IsPrime(c), "%d is composite", c)
	}
}

func Test_IsPrime_02(t *testing.T) {
	// Agree with big.Int on everything below 2¹⁶.
	for n := range uint64(1 << 16) {
		expected := new(big.Int).SetUint64(n).ProbablyPrime(0)
		assert.Equal(t, expected, IsPrime(n), "primality of %d", n)
	}
}

func Test_NewChecked_01(t *testing.T) {
	x, err := NewChecked(5, 31)
	assert.NoError(t, err)
	assert.Equal(t, New(5, 31), x)
	//
	_, err = NewChecked(5, 33)
	assert.ErrorIs(t, err, ErrNotPrime)
	_, err = NewChecked(0, 1)
	assert.ErrorIs(t, err, ErrNotPrime)
	_, err = NewChecked(31, 31)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = NewChecked(18446744073709551557, 18446744073709551557)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
