// Package python identifies interpreter binaries by running them.
package python

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
)

// identityScript prints "<implementation> <major> <minor> <patch>" on python 2.6+ and 3.x.
const identityScript = "import platform, sys; " +
	"print('%s %d %d %d' % ((platform.python_implementation(),) + tuple(sys.version_info[:3])))"

var _ ports.InterpreterProber = (*Prober)(nil)

// Prober implements ports.InterpreterProber using os/exec.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Identify runs binary with a probe script and parses the reported identity.
func (p *Prober) Identify(ctx context.Context, binary string) (domain.Identity, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, binary, "-c", identityScript) //nolint:gosec // binary is the requested interpreter
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stderr = io.MultiWriter(&stderr, vertex.Stderr())
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		probeErr := zerr.With(zerr.Wrap(err, domain.ErrInterpreterProbeFailed.Error()), "binary", binary)
		probeErr = zerr.With(probeErr, "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			probeErr = zerr.With(probeErr, "stderr", msg)
		}
		return domain.Identity{}, probeErr
	}

	identity, err := domain.ParseIdentity(firstLine(stdout.String()))
	if err != nil {
		return domain.Identity{}, zerr.With(zerr.Wrap(err, domain.ErrInterpreterProbeFailed.Error()), "binary", binary)
	}
	return identity, nil
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
