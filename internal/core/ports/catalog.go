package ports

import (
	"context"

	"go.trai.ch/sourcerer/internal/core/domain"
)

// CatalogLoader loads the project catalog produced by the cataloging phase.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogLoader interface {
	// Load reads the catalog at path and resolves relative locations against mountRoot.
	Load(ctx context.Context, path, mountRoot string) (*domain.Catalog, error)
}
