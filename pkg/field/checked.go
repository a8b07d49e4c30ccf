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

	log "github.com/sirupsen/logrus"
)

// CheckedAdd is x.Add(y), reporting a field mismatch as an error.
func CheckedAdd(x, y Element) (Element, error) {
	return Recover(func() Element { return x.Add(y) })
}

// CheckedSub is x.Sub(y), reporting a field mismatch as an error.
func CheckedSub(x, y Element) (Element, error) {
	return Recover(func() Element { return x.Sub(y) })
}

// CheckedMul is x.Mul(y), reporting a field mismatch as an error.
func CheckedMul(x, y Element) (Element, error) {
	return Recover(func() Element { return x.Mul(y) })
}

// CheckedDiv is x.Div(y), reporting a field mismatch or a zero divisor as an
// error.
func CheckedDiv(x, y Element) (Element, error) {
	return Recover(func() Element { return x.Div(y) })
}

// Recover runs fn and converts any panic it raises with one of this package's
// errors into an error result.  Any other panic is propagated unchanged.
func Recover[T any](fn func() T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !IsFieldError(e) {
				panic(r)
			}
			//
			log.Debugf("field operation failed: %v", e)
			//
			err = e
		}
	}()
	//
	return fn(), nil
}

// IsFieldError checks whether err arises from misuse of field arithmetic.
func IsFieldError(err error) bool {
	return errors.Is(err, ErrFieldMismatch) ||
		errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrZeroModulus) ||
		errors.Is(err, ErrNegativeExponent)
}
