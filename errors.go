package plotter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout reports a split with non positive row or column
	// counts, an empty ratio list or a negative ratio.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrNoCoordinateMapping reports a logical space primitive drawn on an
	// area without an attached coordinate mapping.
	ErrNoCoordinateMapping = errors.New("no coordinate mapping attached")
)

// BackendError wraps an unrecoverable error returned by a backend
// operation. The cause is propagated verbatim.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func backendError(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{
		Op:  op,
		Err: err,
	}
}
