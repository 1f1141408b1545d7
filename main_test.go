// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars_test

import (
	"reflect"
	"testing"
)

// assertEqual checks expected and actual values for (deep) equality.
func assertEqual(t *testing.T, expected, actual any) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("expected '%+v', but got '%+v'", expected, actual)

		return false
	}

	return true
}

// assertTrue checks that actual is true.
func assertTrue(t *testing.T, actual bool) bool {
	t.Helper()
	if !actual {
		t.Error("expected 'true', but got 'false'")

		return false
	}

	return true
}

// assertFalse checks that actual is false.
func assertFalse(t *testing.T, actual bool) bool {
	t.Helper()
	if actual {
		t.Error("expected 'false', but got 'true'")

		return false
	}

	return true
}

// assertNil checks that actual is nil.
func assertNil(t *testing.T, actual any) bool {
	t.Helper()
	if !isNil(actual) {
		t.Errorf("expected 'nil', but got '%+v'", actual)

		return false
	}

	return true
}

// assertNotNil checks that actual is not nil.
func assertNotNil(t *testing.T, actual any) bool {
	t.Helper()
	if isNil(actual) {
		t.Error("expected not nil value, but got 'nil'")

		return false
	}

	return true
}

// isNil also covers a nil wrapped in a non-nil interface.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	reflValue := reflect.ValueOf(value)
	switch reflValue.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return reflValue.IsNil()
	default:
		return false
	}
}
