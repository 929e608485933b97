package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pexwrap/internal/core/domain"
)

func TestBuildState_Sequence(t *testing.T) {
	t.Parallel()

	state := domain.NewBuildState()
	assert.Equal(t, domain.PhaseInit, state.Phase())

	for _, next := range []domain.BuildPhase{
		domain.PhaseManifestParsed,
		domain.PhaseInterpreterResolved,
		domain.PhaseTargetPopulated,
		domain.PhaseFinalized,
	} {
		require.NoError(t, state.Advance(next))
		assert.Equal(t, next, state.Phase())
	}

	assert.True(t, state.Phase().IsTerminal())
	require.Error(t, state.Advance(domain.PhaseFailed))
}

func TestBuildState_RejectsSkipsAndRegressions(t *testing.T) {
	t.Parallel()

	state := domain.NewBuildState()

	err := state.Advance(domain.PhaseInterpreterResolved)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidTransition.Error())
	assert.Equal(t, domain.PhaseInit, state.Phase())

	require.NoError(t, state.Advance(domain.PhaseManifestParsed))
	require.Error(t, state.Advance(domain.PhaseInit))
	require.Error(t, state.Advance(domain.PhaseManifestParsed))
	require.Error(t, state.Advance(domain.PhaseFailed))
}

func TestBuildState_Fail(t *testing.T) {
	t.Parallel()

	reason := errors.New("boom")

	state := domain.NewBuildState()
	require.NoError(t, state.Advance(domain.PhaseManifestParsed))
	state.Fail(reason)

	assert.Equal(t, domain.PhaseFailed, state.Phase())
	assert.Equal(t, reason, state.Reason())
	require.Error(t, state.Advance(domain.PhaseInterpreterResolved))

	state.Fail(errors.New("second"))
	assert.Equal(t, reason, state.Reason())

	finished := domain.NewBuildState()
	for _, next := range []domain.BuildPhase{
		domain.PhaseManifestParsed,
		domain.PhaseInterpreterResolved,
		domain.PhaseTargetPopulated,
		domain.PhaseFinalized,
	} {
		require.NoError(t, finished.Advance(next))
	}
	finished.Fail(reason)
	assert.Equal(t, domain.PhaseFinalized, finished.Phase())
	assert.NoError(t, finished.Reason())
}

func TestBuildPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "init", domain.PhaseInit.String())
	assert.Equal(t, "manifest-parsed", domain.PhaseManifestParsed.String())
	assert.Equal(t, "interpreter-resolved", domain.PhaseInterpreterResolved.String())
	assert.Equal(t, "target-populated", domain.PhaseTargetPopulated.String())
	assert.Equal(t, "finalized", domain.PhaseFinalized.String())
	assert.Equal(t, "failed", domain.PhaseFailed.String())
	assert.Equal(t, "unknown", domain.BuildPhase(42).String())
}
