package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pexwrap/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pexwrap/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/pexwrap/internal/adapters/interpreter"        //nolint:depguard // Wired in app layer
	"go.trai.ch/pexwrap/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pexwrap/internal/adapters/pex"                //nolint:depguard // Wired in app layer
	"go.trai.ch/pexwrap/internal/adapters/python"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pexwrap/internal/adapters/repository"         //nolint:depguard // Wired in app layer
	"go.trai.ch/pexwrap/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/pexwrap/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.LocatorNodeID,
			python.NodeID,
			interpreter.NodeID,
			repository.NodeID,
			pex.NodeID,
			fs.ResolverNodeID,
			fs.PublisherNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	locator, err := graft.Dep[ports.BinaryLocator](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.InterpreterProber](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InterpreterResolver](ctx)
	if err != nil {
		return nil, err
	}

	repos, err := graft.Dep[ports.RepositoryFactory](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.ArchiveBuilder](ctx)
	if err != nil {
		return nil, err
	}

	paths, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	publisher, err := graft.Dep[ports.Publisher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(locator, prober, resolver, repos, builder, paths, publisher, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
		Telemetry:    telemetry,
	}, nil
}
