package cli

import "errors"

// Exit codes for gomdhilite, following sysexits conventions.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitUsageError indicates invalid command-line usage.
	ExitUsageError = 64

	// ExitThemeError indicates theme file errors.
	ExitThemeError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel categories commands wrap their failures in so the process
// exit code can be derived from the error chain.
var (
	// ErrUsage marks command-line usage errors.
	ErrUsage = errors.New("invalid usage")

	// ErrTheme marks theme loading or validation errors.
	ErrTheme = errors.New("theme error")

	// ErrIO marks file read and write errors.
	ErrIO = errors.New("io error")
)

// ExitCode maps an error returned by command execution to a process
// exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrTheme):
		return ExitThemeError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
