package cli

import (
	"errors"
	"io/fs"
)

// Exit codes for csift.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a failed run or a nonzero program result.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel categories commands attach to their errors so the process
// exit code can be derived at the top level.
var (
	errUsage      = errors.New("invalid usage")
	errConfigLoad = errors.New("failed to load configuration")
	errInternal   = errors.New("internal error")
)

// ExitCodeFromError determines the exit code for a command error. A
// ProgramExitError carries the evaluated program's own status; other
// errors are classified onto the codes above.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var progErr *ProgramExitError
	if errors.As(err, &progErr) {
		return progErr.Code
	}

	switch {
	case errors.Is(err, errUsage):
		return ExitInvalidUsage
	case errors.Is(err, errConfigLoad):
		return ExitConfigError
	case errors.Is(err, errInternal):
		return ExitInternalError
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIOError
	}

	return ExitFailure
}
