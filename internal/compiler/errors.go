package compiler

import "fmt"

// CompilationError is returned when the compiler process ran but
// exited non-zero. ExitCode carries the child's exit code, Output the
// captured stderr.
type CompilationError struct {
	ExitCode int
	Output   string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compiler exited with code %d", e.ExitCode)
}
