// Package testutil provides shared assertions and fixture positions for the
// chess-rules-go tests.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(tb testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	tb.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(tb, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(tb testing.TB, err error, msgAndArgs ...interface{}) {
	tb.Helper()
	if err != nil {
		fail(tb, msgAndArgs, "unexpected error: %v", err)
	}
}

// RequireNoError stops the test if err is not nil.
func RequireNoError(tb testing.TB, err error, msgAndArgs ...interface{}) {
	tb.Helper()
	if err != nil {
		fail(tb, msgAndArgs, "unexpected error: %v", err)
		tb.FailNow()
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(tb testing.TB, err error, msgAndArgs ...interface{}) {
	tb.Helper()
	if err == nil {
		fail(tb, msgAndArgs, "expected error but got nil")
	}
}

// AssertErrorIs fails unless err matches target with errors.Is.
func AssertErrorIs(tb testing.TB, err, target error, msgAndArgs ...interface{}) {
	tb.Helper()
	if !errors.Is(err, target) {
		fail(tb, msgAndArgs, "error %v is not %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(tb testing.TB, got, substr string, msgAndArgs ...interface{}) {
	tb.Helper()
	if !strings.Contains(got, substr) {
		fail(tb, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(tb testing.TB, got, substr string, msgAndArgs ...interface{}) {
	tb.Helper()
	if strings.Contains(got, substr) {
		fail(tb, msgAndArgs, "%q should not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(tb testing.TB, condition bool, msgAndArgs ...interface{}) {
	tb.Helper()
	if !condition {
		fail(tb, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(tb testing.TB, condition bool, msgAndArgs ...interface{}) {
	tb.Helper()
	if condition {
		fail(tb, msgAndArgs, "expected false but got true")
	}
}

// AssertNil fails if got is not nil.
// It handles both untyped nil and typed nil (e.g., (*int)(nil)).
func AssertNil(tb testing.TB, got interface{}, msgAndArgs ...interface{}) {
	tb.Helper()
	if !isNil(got) {
		fail(tb, msgAndArgs, "expected nil but got %v", got)
	}
}

// AssertNotNil fails if got is nil.
func AssertNotNil(tb testing.TB, got interface{}, msgAndArgs ...interface{}) {
	tb.Helper()
	if isNil(got) {
		fail(tb, msgAndArgs, "expected non-nil value but got nil")
	}
}

func fail(tb testing.TB, msgAndArgs []interface{}, format string, args ...interface{}) {
	tb.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	tb.Error(text)
}

// isNil checks if a value is nil, handling both untyped and typed nils.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
