package ports

import (
	"context"

	"go.trai.ch/sourcerer/internal/core/domain"
)

// IndexService is the client side of the indexing service's import handler.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type IndexService interface {
	FullImport(ctx context.Context, req domain.ImportRequest) (*domain.ImportStatus, error)
	Status(ctx context.Context) (*domain.ImportStatus, error)
	Abort(ctx context.Context) (*domain.ImportStatus, error)
}

// IndexServiceProvider builds a client for the configured indexing service.
type IndexServiceProvider func(settings domain.IndexSettings) (IndexService, error)
