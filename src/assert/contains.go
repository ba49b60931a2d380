package assert

import "strings"

// Contains checks that `s` contains `substr` and fails the test if it does not.
func Contains(t TestingErrf, s, substr string, msgAndArgs ...any) {
	t.Helper()

	if strings.Contains(s, substr) {
		return
	}

	t.Errorf("`%s` not found in:\n%s%s", substr, s, fromMsgAndArgs(msgAndArgs...))
}
