package cli

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1 // validation ran and found errors
	ExitFault  = 2 // config, filesystem or usage error
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE
// handlers. Silent errors are not printed.
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an Execute error onto a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFault
}

func validationFailed() error {
	return &ExitError{Code: ExitFailed, Silent: true}
}
