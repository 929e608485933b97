package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pexwrap/internal/core/domain"
)

func TestBuildError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such file or directory")

	tests := []struct {
		name    string
		err     *domain.BuildError
		message string
		kind    string
	}{
		{
			name:    "usage",
			err:     domain.NewUsageError(errors.New("'output' positional argument is required")),
			message: "'output' positional argument is required",
			kind:    "usage",
		},
		{
			name:    "resolution",
			err:     domain.NewResolutionError("setuptools>=2.2,<20", cause),
			message: domain.ErrCannotSetupInterpreter.Error() + " setuptools>=2.2,<20: no such file or directory",
			kind:    "resolution",
		},
		{
			name:    "resolution without requirement",
			err:     domain.NewResolutionError("", cause),
			message: "no such file or directory",
			kind:    "resolution",
		},
		{
			name:    "add entry",
			err:     domain.NewAddEntryError("/src/foo.py", cause),
			message: "Failed to add /src/foo.py: no such file or directory",
			kind:    "add-entry",
		},
		{
			name:    "finalize",
			err:     domain.NewFinalizeError(cause),
			message: "failed to finalize archive: no such file or directory",
			kind:    "finalize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, tt.kind, tt.err.Kind.String())
			assert.NotEmpty(t, tt.err.Message())
			assert.Equal(t, tt.err.Cause, errors.Unwrap(tt.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	assert.Equal(t, domain.ExitSuccess, domain.ExitCode(nil))
	assert.Equal(t, domain.ExitFailure, domain.ExitCode(cause))
	assert.Equal(t, domain.ExitUsage, domain.ExitCode(domain.NewUsageError(cause)))
	assert.Equal(t, domain.ExitCannotSetupInterpreter, domain.ExitCode(domain.NewResolutionError("six", cause)))
	assert.Equal(t, domain.ExitFailure, domain.ExitCode(domain.NewAddEntryError("x", cause)))
	assert.Equal(t, domain.ExitFailure, domain.ExitCode(domain.NewFinalizeError(cause)))

	wrapped := fmt.Errorf("run: %w", domain.NewResolutionError("six", cause))
	assert.Equal(t, 102, domain.ExitCode(wrapped))
	assert.Equal(t, "unknown", domain.FailureKind(0).String())
}
