// Package catalog loads the project catalog from its JSON file.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.CatalogLoader.
type Loader struct{}

// NewLoader creates a new catalog Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load streams the catalog object at path so that large catalogs are never held
// twice in memory.
func (l *Loader) Load(ctx context.Context, path, mountRoot string) (*domain.Catalog, error) {
	// #nosec G304 -- path is chosen by the operator
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	records, err := decode(ctx, f, mountRoot)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return domain.NewCatalog(records)
}

func decode(ctx context.Context, r io.Reader, mountRoot string) ([]domain.ProjectRecord, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var records []domain.ProjectRecord
	for dec.More() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tok, err := dec.Token()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrCatalogParseFailed.Error())
		}
		id, _ := tok.(string)

		var dto ProjectDTO
		if err := dec.Decode(&dto); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogParseFailed.Error()), "project", id)
		}
		records = append(records, dto.toDomain(id, mountRoot))
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return records, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return zerr.Wrap(err, domain.ErrCatalogParseFailed.Error())
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return domain.WithMeta(domain.ErrCatalogParseFailed, "expected", string(want))
	}
	return nil
}

func resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) || root == "" {
		return p
	}
	return filepath.Join(root, p)
}
