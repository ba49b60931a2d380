package assert

import "fmt"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . TestingErrf

// TestingErrf is a testing type which can report errors without stopping the
// test, such as testing.T and testing.B.
type TestingErrf interface {
	Errorf(format string, args ...any)
	Helper()
}

//counterfeiter:generate . TestingFatalf

// TestingFatalf is a testing type which can stop the test, such as testing.T.
type TestingFatalf interface {
	Fatalf(format string, args ...any)
	Helper()
}

func fromMsgAndArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	fmtStr, ok := msgAndArgs[0].(string)
	if !ok {
		panic("The first argument in msgAndArgs must be a string format value.")
	}

	return fmt.Sprintf(" ("+fmtStr+")", msgAndArgs[1:]...)
}
