package assert

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// allowUnexported permits structural comparison of values whose types have
// unexported fields.
var allowUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal errors if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if intEqual(expected, actual) || cmp.Equal(expected, actual, allowUnexported) {
		return
	}

	t.Errorf("expected: %v, actual: %v (-expected +actual)\n%s", expected, actual,
		cmp.Diff(expected, actual, allowUnexported))

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// Equivalent errors if actual is not equivalent to expected, as determined by
// the Equals method of its type.  This is appropriate for values whose
// structural representation is not canonical.
func Equivalent[T interface {
	Equals(T) bool
	String() string
}](t *testing.T, expected, actual T, msg ...any) {
	t.Helper()

	if expected.Equals(actual) {
		return
	}

	t.Errorf("expected: %s, actual: %s", expected.String(), actual.String())

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// ErrorIs errors if err does not match target (in the sense of errors.Is).
func ErrorIs(t *testing.T, err, target error) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Errorf("expected error %v, actual: %v", target, err)
	t.FailNow()
}

// ErrorContains errors if err is nil, or its message does not contain the given
// text.
func ErrorContains(t *testing.T, err error, text string) {
	t.Helper()

	if err != nil && strings.Contains(err.Error(), text) {
		return
	}

	t.Errorf("expected error containing %q, actual: %v", text, err)
	t.FailNow()
}

// NoError errors if err is not nil.
func NoError(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		return
	}

	t.Errorf("unexpected error: %v", err)
	t.FailNow()
}

// Panics errors if fn does not panic, otherwise returning the recovered value.
func Panics(t *testing.T, fn func()) (recovered any) {
	t.Helper()

	defer func() {
		if recovered = recover(); recovered == nil {
			t.Errorf("expected panic")
			t.FailNow()
		}
	}()
	//
	fn()
	//
	return nil
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

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if condition {
		return
	}

	t.Errorf("condition is false")

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if !condition {
		return
	}

	t.Errorf("condition is true")

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}
