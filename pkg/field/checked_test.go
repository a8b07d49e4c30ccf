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
	"testing"

	"github.com/consensys/go-primefield/pkg/util/assert"
)

func Test_Checked_01(t *testing.T) {
	a, b := New(5, 31), New(18, 31)
	//
	r, err := CheckedAdd(a, b)
	assert.NoError(t, err)
	assert.Equal(t, New(23, 31), r)
	r, err = CheckedSub(a, b)
	assert.NoError(t, err)
	assert.Equal(t, New(18, 31), r)
	r, err = CheckedMul(a, b)
	assert.NoError(t, err)
	assert.Equal(t, New(28, 31), r)
	r, err = CheckedDiv(a, b)
	assert.NoError(t, err)
	assert.Equal(t, New(2, 31), r)
}

func Test_Checked_02(t *testing.T) {
	a, b := New(5, 31), New(5, 37)
	//
	for _, op := range []func(Element, Element) (Element, error){CheckedAdd, CheckedSub, CheckedMul, CheckedDiv} {
		r, err := op(a, b)
		assert.ErrorIs(t, err, ErrFieldMismatch)
		assert.Equal(t, Element{}, r)
		//
		var mismatch *MismatchError
		assert.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "31", mismatch.Left)
		assert.Equal(t, "37", mismatch.Right)
	}
}

func Test_Checked_03(t *testing.T) {
	_, err := CheckedDiv(One(31), Zero(31))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.True(t, IsFieldError(err))
}

func Test_Checked_04(t *testing.T) {
	// Panics unrelated to field arithmetic pass straight through.
	defer func() {
		assert.Equal(t, "boom", recover())
	}()

	_, _ = Recover(func() Element { panic("boom") })
	t.Fatal("unreachable")
}

func Test_Checked_05(t *testing.T) {
	r, err := Recover(func() Element {
		return New(3, 7).Sub(New(5, 7)).Pow(2)
	})
	assert.NoError(t, err)
	assert.Equal(t, New(4, 7), r)
	assert.False(t, IsFieldError(errors.New("other")))
}
