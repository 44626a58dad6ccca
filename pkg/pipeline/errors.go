package pipeline

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrPipelineMustBeSet = errors.New("p must be set")
	ErrStepMustBeSet     = errors.New("step must be set")
	ErrRunFnMustBeSet    = errors.New("step run function must be set")
)

// StatusError carries the exit status of a failed external command so the
// whole run can terminate with the same code.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Status)
	}

	return e.Err.Error()
}

func (e *StatusError) Unwrap() error { return e.Err }

// Status extracts the exit status recorded in err. It returns fallback when
// err carries none.
func Status(err error, fallback int) int {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr.Status
	}

	return fallback
}
