package assert

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.  Values implementing an
// Equals method on their own type are compared with it, so field elements of
// any width can be checked directly.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) || methodEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)
	fail(t, msg)
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if condition {
		return
	}

	t.Errorf("condition is false")
	fail(t, msg)
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if !condition {
		return
	}

	t.Errorf("condition is true")
	fail(t, msg)
}

// NoError errors if err is non-nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()

	if err == nil {
		return
	}

	t.Errorf("unexpected error: %v", err)
	fail(t, msg)
}

// ErrorIs errors unless err matches target under errors.Is.
func ErrorIs(t *testing.T, err, target error, msg ...any) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Errorf("expected error %q, actual: %v", target, err)
	fail(t, msg)
}

// Panics errors unless fn panics with an error matching target under
// errors.Is.
func Panics(t *testing.T, target error, fn func(), msg ...any) {
	t.Helper()

	r := recovered(fn)
	if err, ok := r.(error); ok && errors.Is(err, target) {
		return
	} else if r == nil {
		t.Errorf("expected panic %q, but none occurred", target)
	} else {
		t.Errorf("expected panic %q, actual: %v", target, r)
	}

	fail(t, msg)
}

func recovered(fn func()) (r any) {
	defer func() {
		r = recover()
	}()

	fn()

	return nil
}

func fail(t *testing.T, msg []any) {
	t.Helper()

	if len(msg) != 0 {
		t.Errorf(fmt.Sprint(msg[0]), msg[1:]...)
	}

	t.FailNow()
}

// methodEqual returns whether expected has a method Equals accepting actual's
// type and reporting true.
func methodEqual(expected, actual any) bool {
	if expected == nil || actual == nil {
		return false
	}

	m := reflect.ValueOf(expected).MethodByName("Equals")
	if !m.IsValid() || m.Type().NumIn() != 1 || m.Type().NumOut() != 1 ||
		m.Type().In(0) != reflect.TypeOf(actual) || m.Type().Out(0).Kind() != reflect.Bool {
		return false
	}

	return m.Call([]reflect.Value{reflect.ValueOf(actual)})[0].Bool()
}

// intEqual returns whether expected and actual are both integers and whether they are equal
// if that is the case.
func intEqual(expected, actual any) bool {
	a, aInt64 := asInt64(expected)
	b, bInt64 := asInt64(actual)

	if aInt64 != bInt64 {
		return false
	}

	if aInt64 {
		return a == b
	}

	x, aUint64 := expected.(uint64)
	y, bUint64 := actual.(uint64)

	if !aUint64 || !bUint64 {
		return false
	}

	return x == y
}

// asInt64 tries to convert x to an int64 and specifies if the conversion was successful or
// if x only can be expressed as a uint64
func asInt64(x any) (int64, bool) {
	if y, ok := x.(uint64); ok && y > math.MaxInt64 {
		return 0, false
	}

	switch x := x.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}

	return 0, false
}
