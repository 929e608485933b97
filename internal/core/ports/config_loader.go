package ports

import "go.trai.ch/pexwrap/internal/core/domain"

// ConfigLoader defines the interface for loading build options from a config file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the default options overlaid with the file at path.
	// A missing file is only an error when explicit is true.
	Load(path string, explicit bool) (domain.BuildOptions, error)
}
