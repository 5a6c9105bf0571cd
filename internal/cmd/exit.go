package cmd

import (
	"errors"

	"github.com/dedene/metricool-cli/internal/api"
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// ExitCode maps an Execute error to a process status: 0 for nil, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return api.ExitSuccess
	}

	var ee *ExitError
	if errors.As(err, &ee) && ee != nil && ee.Code == 0 {
		return api.ExitSuccess
	}

	return api.ExitError
}
