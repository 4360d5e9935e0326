// Package testutil provides test harness helpers the standard runner lacks:
// panic expectations matched by message and ignored-by-default tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// RunIgnoredEnv is the environment variable that enables ignored tests.
const RunIgnoredEnv = "RUN_IGNORED_TESTS"

// TestingT is the subset of *testing.T the assertions report through.
type TestingT interface {
	Errorf(format string, args ...any)
	Helper()
}

// AssertPanicContains asserts that fn panics and that the panic message
// contains substr. Runtime errors, error values and strings are matched by
// their text; other values by their fmt representation.
func AssertPanicContains(t TestingT, substr string, fn func(), msgAndArgs ...any) bool {
	t.Helper()

	didPanic, msg := capturePanic(fn)
	if !didPanic {
		return assert.Fail(t, fmt.Sprintf("func should panic with a message containing %q", substr), msgAndArgs...)
	}
	return assert.Contains(t, msg, substr, msgAndArgs...)
}

func capturePanic(fn func()) (didPanic bool, msg string) {
	didPanic = true

	defer func() {
		if !didPanic {
			return
		}
		switch v := recover().(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			msg = fmt.Sprint(v)
		}
	}()

	fn()
	didPanic = false
	return
}

// RunIgnored reports whether RUN_IGNORED_TESTS is set to a true value.
func RunIgnored() bool {
	v := viper.New()
	if err := v.BindEnv(RunIgnoredEnv); err != nil {
		return false
	}
	return v.GetBool(RunIgnoredEnv)
}

// SkipUnlessIgnored skips the calling test unless ignored tests were requested.
func SkipUnlessIgnored(t testing.TB) {
	t.Helper()
	if !RunIgnored() {
		t.Skipf("ignored; set %s=true to run", RunIgnoredEnv)
	}
}
