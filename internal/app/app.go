// Package app implements the application layer for pexwrap.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
)

// App drives a single archive build from manifest to published output.
type App struct {
	locator   ports.BinaryLocator
	prober    ports.InterpreterProber
	resolver  ports.InterpreterResolver
	repos     ports.RepositoryFactory
	builder   ports.ArchiveBuilder
	paths     ports.PathResolver
	publisher ports.Publisher
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	locator ports.BinaryLocator,
	prober ports.InterpreterProber,
	resolver ports.InterpreterResolver,
	repos ports.RepositoryFactory,
	builder ports.ArchiveBuilder,
	paths ports.PathResolver,
	publisher ports.Publisher,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		locator:   locator,
		prober:    prober,
		resolver:  resolver,
		repos:     repos,
		builder:   builder,
		paths:     paths,
		publisher: publisher,
		logger:    logger,
		telemetry: telemetry,
	}
}

// BuildRequest describes one invocation.
type BuildRequest struct {
	Options domain.BuildOptions
	Output  string
	// ManifestPath is read when set, Stdin otherwise.
	ManifestPath string
	Stdin        io.Reader
}

// Build runs the build phases in order. Every returned error is a *domain.BuildError
// except for invalid phase transitions.
func (a *App) Build(ctx context.Context, req BuildRequest) (err error) {
	state := domain.NewBuildState()
	defer func() {
		if err != nil {
			state.Fail(err)
			a.logger.Info(fmt.Sprintf("build %s", state.Phase()))
		}
		a.logSummary()
	}()

	if req.Output == "" {
		return domain.NewUsageError(domain.ErrOutputRequired)
	}
	if req.Options.Journal != "" {
		if err := a.telemetry.Journal(req.Options.Journal); err != nil {
			return domain.NewUsageError(err)
		}
	}

	manifest, err := a.readManifest(ctx, req)
	if err != nil {
		return err
	}
	if err := a.advance(state, domain.PhaseManifestParsed); err != nil {
		return err
	}

	repo := a.repos.New(req.Options)

	interp, err := a.setupInterpreter(ctx, req.Options, repo)
	if err != nil {
		return err
	}
	if err := a.advance(state, domain.PhaseInterpreterResolved); err != nil {
		return err
	}

	target, err := a.populate(ctx, req.Options, manifest, repo, interp)
	if target != nil {
		defer func() {
			if closeErr := target.Close(); closeErr != nil {
				a.logger.Warn(fmt.Sprintf("failed to remove build directory: %v", closeErr))
			}
		}()
	}
	if err != nil {
		return err
	}
	if err := a.advance(state, domain.PhaseTargetPopulated); err != nil {
		return err
	}

	if err := a.finalize(ctx, req.Output, target); err != nil {
		return err
	}
	return a.advance(state, domain.PhaseFinalized)
}

func (a *App) logSummary() {
	summary := a.telemetry.Summary()
	if summary.Total == 0 {
		return
	}
	a.logger.Info(fmt.Sprintf("%d steps recorded (%d cached, %d failed) in %s",
		summary.Total, summary.Cached, summary.Errored, summary.Duration.Round(time.Millisecond)))
}

func (a *App) advance(state *domain.BuildState, next domain.BuildPhase) error {
	if err := state.Advance(next); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("build %s", next))
	return nil
}

func (a *App) readManifest(ctx context.Context, req BuildRequest) (domain.Manifest, error) {
	_, vertex := a.telemetry.Record(ctx, "parse manifest")

	var (
		data []byte
		err  error
	)
	if req.ManifestPath != "" {
		data, err = os.ReadFile(req.ManifestPath)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", req.ManifestPath)
		}
	} else {
		data, err = io.ReadAll(req.Stdin)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", "<stdin>")
		}
	}
	if err != nil {
		vertex.Complete(err)
		return nil, domain.NewUsageError(err)
	}

	manifest := domain.ParseManifest(domain.UnwrapQuotes(string(data)))
	vertex.Complete(nil)
	return manifest, nil
}

// setupInterpreter locates the interpreter and resolves the utility requirement chain.
// Each step starts from the handle produced by the previous one.
func (a *App) setupInterpreter(
	ctx context.Context,
	opts domain.BuildOptions,
	repo ports.Repository,
) (*domain.Interpreter, error) {
	ctx, vertex := a.telemetry.Record(ctx, "setup interpreter")

	interp, err := a.interpreter(ctx, opts)
	if err != nil {
		vertex.Complete(err)
		return nil, domain.NewResolutionError("", err)
	}

	resolverOpts := ports.ResolverOptions{CacheDir: opts.InterpreterCacheDir(), Repository: repo}
	for _, requirement := range opts.Requirements() {
		stepCtx, step := a.telemetry.Record(ctx, "resolve "+requirement)
		next, err := a.resolver.Resolve(stepCtx, resolverOpts, interp, requirement)
		if err == nil && next == nil {
			err = domain.ErrRequirementNotFound
		}
		step.Complete(err)
		if err != nil {
			vertex.Complete(err)
			return nil, domain.NewResolutionError(requirement, err)
		}
		interp = next
	}

	vertex.Complete(nil)
	return interp, nil
}

func (a *App) interpreter(ctx context.Context, opts domain.BuildOptions) (*domain.Interpreter, error) {
	binary, err := a.locator.Locate(opts.Python, opts.SearchPath)
	if err != nil {
		return nil, err
	}

	identity, err := a.prober.Identify(ctx, binary)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("using interpreter %s (%s)", binary, identity))
	return domain.NewInterpreter(binary, identity, opts.PinnedExtras()), nil
}

// populate creates the target and adds every manifest entry to it. A non-nil target is
// returned whenever one was created so the caller can remove it.
func (a *App) populate(
	ctx context.Context,
	opts domain.BuildOptions,
	manifest domain.Manifest,
	repo ports.Repository,
	interp *domain.Interpreter,
) (ports.BuildTarget, error) {
	ctx, vertex := a.telemetry.Record(ctx, "populate archive")

	target, err := a.createTarget(ctx, opts, manifest, repo, interp)
	if err != nil {
		vertex.Complete(err)
		return target, err
	}

	vertex.Complete(nil)
	return target, nil
}

func (a *App) createTarget(
	ctx context.Context,
	opts domain.BuildOptions,
	manifest domain.Manifest,
	repo ports.Repository,
	interp *domain.Interpreter,
) (ports.BuildTarget, error) {
	requirements := manifest.Section(domain.SectionRequirements).Keys()
	resolverOpts := ports.ResolverOptions{CacheDir: opts.CacheDir(), Repository: repo}

	target, err := a.builder.BuildPex(ctx, requirements, opts, resolverOpts, interp)
	if err != nil {
		return nil, domain.NewAddEntryError(domain.SectionRequirements, err)
	}

	target.SetZipSafe(opts.ZipSafe)
	target.SetEntryPoint(opts.EntryPoint)

	if err := target.AddBootstrap(opts.BootstrapFiles); err != nil {
		return target, domain.NewAddEntryError("bootstrap", err)
	}

	for _, entry := range manifest.Section(domain.SectionModules).Entries() {
		if err := a.addPath(entry, target.AddSource); err != nil {
			return target, err
		}
	}

	for _, entry := range manifest.Section(domain.SectionResources).Entries() {
		if err := a.addPath(entry, target.AddResource); err != nil {
			return target, err
		}
	}

	for _, location := range manifest.Section(domain.SectionPrebuiltLibraries).Keys() {
		if err := target.AddDistLocation(location); err != nil {
			return target, domain.NewAddEntryError(location, err)
		}
	}

	if native := manifest.Section(domain.SectionNativeLibraries); len(native) > 0 {
		a.logger.Warn(fmt.Sprintf("ignoring %d %s entries: native libraries are not bundled",
			len(native), domain.SectionNativeLibraries))
	}

	return target, nil
}

// addPath dereferences the entry's source and adds it at the entry's destination.
func (a *App) addPath(entry domain.Entry, add func(path, dest string) error) error {
	src, err := a.paths.Dereference(entry.Value)
	if err != nil {
		return domain.NewAddEntryError(entry.Value, err)
	}
	if err := add(src, entry.Key); err != nil {
		return domain.NewAddEntryError(entry.Value, err)
	}
	return nil
}

func (a *App) finalize(ctx context.Context, output string, target ports.BuildTarget) error {
	_, vertex := a.telemetry.Record(ctx, "finalize archive")

	if err := a.publisher.Publish(output, target.Build); err != nil {
		vertex.Complete(err)
		return domain.NewFinalizeError(err)
	}

	vertex.Complete(nil)
	a.logger.Info(fmt.Sprintf("wrote %s", output))
	return nil
}
