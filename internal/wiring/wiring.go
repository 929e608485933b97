// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pexwrap/internal/adapters/cas"
	_ "go.trai.ch/pexwrap/internal/adapters/config"
	_ "go.trai.ch/pexwrap/internal/adapters/fs"
	_ "go.trai.ch/pexwrap/internal/adapters/interpreter"
	_ "go.trai.ch/pexwrap/internal/adapters/logger"
	_ "go.trai.ch/pexwrap/internal/adapters/pex"
	_ "go.trai.ch/pexwrap/internal/adapters/python"
	_ "go.trai.ch/pexwrap/internal/adapters/repository"
	_ "go.trai.ch/pexwrap/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/pexwrap/internal/app"
)
