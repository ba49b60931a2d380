package assert

import "errors"

// ErrorIs checks that errors.Is(err, target) holds. Causes a fatal error otherwise.
func ErrorIs(t TestingFatalf, err, target error, msgAndArgs ...any) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("expected error `%v` but got `%v`%s",
		target, err, fromMsgAndArgs(msgAndArgs...),
	)
}
