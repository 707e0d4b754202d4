package kernel

import "testing"

func TestKernelError(t *testing.T) {
	err := &Error{
		Module:  "console",
		Message: "probe failed",
	}

	if err.Error() != err.Message {
		t.Fatalf("expected err.Error() to return %q; got %q", err.Message, err.Error())
	}

	var asError error = err
	if asError.Error() != err.Message {
		t.Fatalf("expected the error interface value to return %q; got %q", err.Message, asError.Error())
	}
}
