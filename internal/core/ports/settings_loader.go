package ports

import "github.com/gracelang/mason/internal/core/domain"

// SettingsLoader defines the interface for loading project settings.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load discovers mason.yaml by walking up from cwd and returns the
	// resolved settings. When no file exists it returns defaults
	// anchored at cwd, not an error.
	Load(cwd string) (*domain.Settings, error)

	// Validate checks the discovered settings file against the schema
	// and returns its path. It fails when no file exists.
	Validate(cwd string) (string, error)
}
