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
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-primefield/pkg/util/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = Arithmetic[Element](Element{})
}

func TestBatchInvert(t *testing.T) {
	const p = 2147483647
	//
	s := make([]Element, 1000)
	sInv := make([]Element, len(s))
	scratch := make([]Element, len(s))

	for i := range s {
		// getting a zero with considerable probability
		s[i] = New(rand.Uint64N(p)%(p/2+1)*uint64(rand.IntN(2)), p)
		//
		if s[i].IsZero() {
			sInv[i] = s[i]
		} else {
			sInv[i] = s[i].Inverse()
		}

		copy(scratch[:i], s)
		BatchInvert(scratch[:i])

		for j := range i {
			assert.Equal(t, sInv[j], scratch[j], "on slice %v, at index %d", s[:i], j)
		}
	}
}

func TestBatchInvert_AllZero(t *testing.T) {
	s := []Element{Zero(7), Zero(7), Zero(7)}
	BatchInvert(s)
	assert.Equal(t, []Element{Zero(7), Zero(7), Zero(7)}, s)
	//
	BatchInvert([]Element{})
}

func TestEvaluate(t *testing.T) {
	// 3 + 2x + x² at x = 4 over F13 is 27 = 1.
	c := []Element{New(3, 13), New(2, 13), New(1, 13)}
	assert.Equal(t, New(1, 13), Evaluate(c, New(4, 13)))
	assert.Equal(t, New(3, 13), Evaluate(c, Zero(13)))
	assert.Equal(t, New(5, 13), Evaluate(c[:1], New(4, 13)).Add(New(2, 13)))
	assert.Panics(t, ErrFieldMismatch, func() { Evaluate(c, New(4, 11)) })
}

func TestIdentities(t *testing.T) {
	x := New(5, 31)
	assert.Equal(t, Zero(31), x.ZeroOf())
	assert.Equal(t, One(31), x.OneOf())
	assert.Equal(t, x, x.Mul(x.OneOf()).Add(x.ZeroOf()))
}
