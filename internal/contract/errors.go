package contract

import (
	"errors"
	"fmt"
)

// LookupOp names the kind of repository query that failed.
type LookupOp string

// Repository queries that can fail.
const (
	MessageLookup LookupOp = "message"
	HistoryLookup LookupOp = "history"
)

// ExitCoder is an error that carries an explicit process exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

// LookupError reports that the repository could not be queried: the working
// directory is not a repository, the reference is invalid or git itself failed.
// It is never retried.
type LookupError struct {
	Op  LookupOp
	Ref string
	Err error
}

var _ ExitCoder = &LookupError{} // Compile-time check

func (e *LookupError) Error() string {
	var msg string
	switch e.Op {
	case HistoryLookup:
		msg = "could not retrieve recent commits. Ensure you are in a Git repository with at least one commit"
	default:
		msg = fmt.Sprintf("could not retrieve commit message for %s. Ensure you are in a Git repository and the reference is valid", e.Ref)
	}
	if e.Err == nil {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *LookupError) Unwrap() error { return e.Err }

// ExitCode implements ExitCoder.
func (e *LookupError) ExitCode() int { return 1 }

// IsLookupError reports whether err is or wraps a *LookupError.
func IsLookupError(err error) bool {
	var le *LookupError
	return errors.As(err, &le)
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
// A nil error maps to 0.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) && ec.ExitCode() > 0 {
		return ec.ExitCode()
	}
	return 1
}
