package ports

import "go.trai.ch/sourcerer/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path. An empty path selects the default
	// file in the working directory and falls back to defaults when it is absent.
	Load(path string) (*domain.Config, error)
}
