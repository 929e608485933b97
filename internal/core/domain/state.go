package domain

import "go.trai.ch/zerr"

// BuildPhase is a state of the build orchestrator.
type BuildPhase int

// Build phases in the order they are entered.
const (
	PhaseInit BuildPhase = iota
	PhaseManifestParsed
	PhaseInterpreterResolved
	PhaseTargetPopulated
	PhaseFinalized
	PhaseFailed
)

func (p BuildPhase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseManifestParsed:
		return "manifest-parsed"
	case PhaseInterpreterResolved:
		return "interpreter-resolved"
	case PhaseTargetPopulated:
		return "target-populated"
	case PhaseFinalized:
		return "finalized"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition is possible.
func (p BuildPhase) IsTerminal() bool {
	return p == PhaseFinalized || p == PhaseFailed
}

// BuildState tracks the strictly sequential progress of a build.
type BuildState struct {
	phase  BuildPhase
	reason error
}

// NewBuildState returns a state machine in the init phase.
func NewBuildState() *BuildState {
	return &BuildState{phase: PhaseInit}
}

// Phase returns the current phase.
func (s *BuildState) Phase() BuildPhase {
	return s.phase
}

// Reason returns the failure reason once the state is failed.
func (s *BuildState) Reason() error {
	return s.reason
}

// Advance moves to next, which must be the direct successor of the current phase.
func (s *BuildState) Advance(next BuildPhase) error {
	if next == PhaseFailed || s.phase.IsTerminal() || next != s.phase+1 {
		err := zerr.With(ErrInvalidTransition, "from", s.phase.String())
		return zerr.With(err, "to", next.String())
	}
	s.phase = next
	return nil
}

// Fail moves to the failed phase and records reason. A terminal state is left unchanged.
func (s *BuildState) Fail(reason error) {
	if s.phase.IsTerminal() {
		return
	}
	s.phase = PhaseFailed
	s.reason = reason
}
