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

import "math/bits"

// witnesses for Miller-Rabin which together are exact for every n < 2⁶⁴.
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime determines whether n is prime, using a deterministic Miller-Rabin
// test.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	// Small primes and their multiples
	for _, w := range witnesses {
		if n == w {
			return true
		} else if n%w == 0 {
			return false
		}
	}
	// Write n-1 = d * 2^s with d odd
	s := bits.TrailingZeros64(n - 1)
	d := (n - 1) >> s
	//
	for _, w := range witnesses {
		if !millerRabin(w, d, s, n) {
			return false
		}
	}
	//
	return true
}

// millerRabin checks whether n is a strong probable prime to base a.
func millerRabin(a, d uint64, s int, n uint64) bool {
	x := ModPow(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	//
	for range s - 1 {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	//
	return false
}
