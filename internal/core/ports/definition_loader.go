package ports

import "go.trai.ch/livecheck/internal/core/domain"

// DefinitionLoader defines the interface for loading package definitions.
//
//go:generate mockgen -source=definition_loader.go -destination=mocks/mock_definition_loader.go -package=mocks
type DefinitionLoader interface {
	// Load reads the package definition at path and returns it with its livecheck block finalized.
	Load(path string) (*domain.Formula, error)
}
