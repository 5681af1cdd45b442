package graphics

import (
	"errors"
	"testing"
)

func TestFail(t *testing.T) {
	if Fail("draw", nil) != nil {
		t.Fatal("Fail with nil error should return nil")
	}

	cause := errors.New("GL_INVALID_OPERATION")
	err := Fail("draw", cause)

	var be *BackendError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BackendError, got %T", err)
	}
	if be.Op != "draw" {
		t.Errorf("Op = %q, want draw", be.Op)
	}
	if !errors.Is(err, cause) {
		t.Error("BackendError should unwrap to its cause")
	}
	if got, want := err.Error(), "draw failed: GL_INVALID_OPERATION"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFailKeepsExistingBackendError(t *testing.T) {
	inner := Fail("upload vertex buffer", errors.New("GL_OUT_OF_MEMORY"))
	outer := Fail("upload vertex buffer", inner)
	if outer != inner {
		t.Fatalf("Fail re-wrapped a BackendError: %v", outer)
	}
	if got, want := outer.Error(), "upload vertex buffer failed: GL_OUT_OF_MEMORY"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
