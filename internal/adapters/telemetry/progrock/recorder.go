// Package progrock records build phases as progrock vertices.
package progrock

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry. Every update lands on an in-memory tape that
// backs Summary, and on any journals opened since.
type Recorder struct {
	tape  *progrock.Tape
	sinks *sinks
	rec   *progrock.Recorder
}

// New creates a Recorder with an empty tape and no journal.
func New() *Recorder {
	tape := progrock.NewTape()
	s := &sinks{writers: []progrock.Writer{tape}}
	return &Recorder{
		tape:  tape,
		sinks: s,
		rec:   progrock.NewRecorder(s),
	}
}

// Record starts a vertex identified by the digest of name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Journal writes every following update to path as JSON lines.
func (r *Recorder) Journal(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJournalCreateFailed.Error()), "path", path)
	}

	journal, err := progrock.CreateJournal(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJournalCreateFailed.Error()), "path", path)
	}
	r.sinks.add(journal)
	return nil
}

// Summary counts the vertices on the tape.
func (r *Recorder) Summary() ports.Summary {
	return ports.Summary{
		Total:    r.tape.TotalCount(),
		Cached:   r.tape.CachedCount(),
		Errored:  r.tape.ErroredCount(),
		Duration: r.tape.Duration(),
	}
}

// Close closes the tape and every journal.
func (r *Recorder) Close() error {
	return r.sinks.Close()
}

// sinks fans updates out to a list of writers that can grow while recording.
type sinks struct {
	mu      sync.Mutex
	writers []progrock.Writer
}

func (s *sinks) add(w progrock.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writers = append(s.writers, w)
}

func (s *sinks) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progrock.MultiWriter(s.writers).WriteStatus(update)
}

func (s *sinks) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progrock.MultiWriter(s.writers).Close()
}
