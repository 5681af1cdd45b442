package graphics

import (
	"errors"
	"fmt"
)

// BackendError reports a failed call into the rendering backend. There is no
// recovery path for it; callers propagate it to the top-level handler.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Fail wraps err as a BackendError for op. A nil err yields nil, and an err
// that already carries a BackendError is returned unchanged.
func Fail(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}
