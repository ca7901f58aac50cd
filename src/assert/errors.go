package assert

import "errors"

// NilErr checks that `val` is nil. Causes a fatal error otherwise.
func NilErr(t TestingFatalf, val error, msgAndArgs ...any) {
	t.Helper()

	if val == nil {
		return
	}

	t.Fatalf("expected nil but got `%s`%s", val, fromMsgAndArgs(msgAndArgs...))
}

// NotNilErr checks that `val` is not nil. Causes a fatal error otherwise.
func NotNilErr(t TestingFatalf, val error, msgAndArgs ...any) {
	t.Helper()

	if val != nil {
		return
	}

	t.Fatalf("unexpected nil%s", fromMsgAndArgs(msgAndArgs...))
}

// ErrorIs checks that `target` is in the chain of `err` as reported by errors.Is.
// Causes a fatal error otherwise.
func ErrorIs(t TestingFatalf, err, target error, msgAndArgs ...any) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("expected error `%v` to be `%v`%s", err, target, fromMsgAndArgs(msgAndArgs...))
}
