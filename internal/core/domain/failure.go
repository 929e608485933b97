package domain

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a build invocation failed.
type FailureKind int

const (
	// FailureUsage covers bad or missing command line arguments and unreadable inputs.
	FailureUsage FailureKind = iota + 1
	// FailureResolution covers interpreter location and requirement resolution.
	FailureResolution
	// FailureAddEntry covers sources, resources and distributions that cannot be added.
	FailureAddEntry
	// FailureFinalize covers errors while writing or publishing the archive.
	FailureFinalize
)

// Exit codes reported by the pexwrap binary.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
	// ExitCannotSetupInterpreter matches the code pex reports for interpreter setup failures.
	ExitCannotSetupInterpreter = 102
)

func (k FailureKind) String() string {
	switch k {
	case FailureUsage:
		return "usage"
	case FailureResolution:
		return "resolution"
	case FailureAddEntry:
		return "add-entry"
	case FailureFinalize:
		return "finalize"
	default:
		return "unknown"
	}
}

// BuildError is the single failure type surfaced by the orchestrator.
// Entry names the offending manifest entry, requirement or path when there is one.
type BuildError struct {
	Kind  FailureKind
	Entry string
	Cause error
}

// NewUsageError wraps cause as a usage failure.
func NewUsageError(cause error) *BuildError {
	return &BuildError{Kind: FailureUsage, Cause: cause}
}

// NewResolutionError wraps cause as an interpreter resolution failure for the given requirement.
func NewResolutionError(requirement string, cause error) *BuildError {
	return &BuildError{Kind: FailureResolution, Entry: requirement, Cause: cause}
}

// NewAddEntryError wraps cause as a failure to add the named entry.
func NewAddEntryError(entry string, cause error) *BuildError {
	return &BuildError{Kind: FailureAddEntry, Entry: entry, Cause: cause}
}

// NewFinalizeError wraps cause as a failure to write the archive.
func NewFinalizeError(cause error) *BuildError {
	return &BuildError{Kind: FailureFinalize, Cause: cause}
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case FailureAddEntry:
		return fmt.Sprintf("Failed to add %s: %v", e.Entry, e.Cause)
	case FailureResolution:
		if e.Entry != "" {
			return fmt.Sprintf("%s %s: %v", ErrCannotSetupInterpreter.Error(), e.Entry, e.Cause)
		}
		return e.Cause.Error()
	case FailureFinalize:
		return fmt.Sprintf("failed to finalize archive: %v", e.Cause)
	default:
		return e.Cause.Error()
	}
}

// Message returns the message of this link without the cause chain.
func (e *BuildError) Message() string {
	switch e.Kind {
	case FailureAddEntry:
		return "Failed to add " + e.Entry
	case FailureResolution:
		if e.Entry != "" {
			return ErrCannotSetupInterpreter.Error() + " " + e.Entry
		}
		return "interpreter resolution failed"
	case FailureFinalize:
		return "failed to finalize archive"
	default:
		return "invalid usage"
	}
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// ExitCode maps an error returned by a build invocation to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		return ExitFailure
	}

	switch buildErr.Kind {
	case FailureUsage:
		return ExitUsage
	case FailureResolution:
		return ExitCannotSetupInterpreter
	default:
		return ExitFailure
	}
}
