package assert_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/ironsmile/brainz/src/assert"
	"github.com/ironsmile/brainz/src/assert/assertfakes"
)

// TestErrorIs makes sure that ErrorIs follows wrapped errors.
func TestErrorIs(t *testing.T) {
	fakeTf := &assertfakes.FakeTestingFatalf{}
	wrapped := fmt.Errorf("reading: %w", io.EOF)

	assert.ErrorIs(fakeTf, wrapped, io.EOF)
	if fakeTf.FatalfCallCount() != 0 {
		t.Fatalf("unexpected Fatalf() call for wrapped error")
	}
	if fakeTf.HelperCallCount() != 1 {
		t.Fatalf("testing.T.Helper() not called")
	}

	assert.ErrorIs(fakeTf, wrapped, io.ErrUnexpectedEOF)
	if fakeTf.FatalfCallCount() != 1 {
		t.Fatalf("expected Fatalf() to be called but it was not")
	}

	assert.ErrorIs(fakeTf, nil, io.EOF)
	if fakeTf.FatalfCallCount() != 2 {
		t.Fatalf("expected Fatalf() to be called for nil error")
	}
}

// TestContains checks the substring assertion.
func TestContains(t *testing.T) {
	fakeT := &assertfakes.FakeTestingErrf{}

	assert.Contains(fakeT, "Showing 5 of 12 total releases", "5 of 12")
	if fakeT.ErrorfCallCount() != 0 {
		t.Errorf("expected Errorf not to be called for a present substring")
	}

	assert.Contains(fakeT, "Showing 5 of 12 total releases", "OK Computer", "in %s", "output")
	if fakeT.ErrorfCallCount() != 1 {
		t.Fatalf("expected Errorf to be called for a missing substring")
	}

	format, args := fakeT.ErrorfArgsForCall(0)
	if msg := fmt.Sprintf(format, args...); msg == "" {
		t.Errorf("expected a non-empty error message")
	}
}
