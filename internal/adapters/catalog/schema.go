package catalog

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/zerr"
)

// ProjectDTO is one entry of the catalog file.
type ProjectDTO struct {
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Encoding      string          `json:"encoding"`
	Depends       []DependencyDTO `json:"depends"`
	PropertyFile  PropertyFileDTO `json:"property_file"`
	ProvidedBuild bool            `json:"provided_build"`
}

// PropertyFileDTO locates the project sources.
type PropertyFileDTO struct {
	IsZipped      bool   `json:"iszipped"`
	SourcererPath string `json:"sourcererpath"`
}

// DependencyDTO is the (name, path, hash, managed, locator) tuple.
// Path and hash may be null.
type DependencyDTO struct {
	Name    string
	Path    string
	Hash    string
	Managed bool
	Locator string
}

// UnmarshalJSON decodes the five-element array form.
func (d *DependencyDTO) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 5 {
		return domain.WithMeta(domain.ErrInvalidDependency, "elements", len(raw))
	}

	fields := []any{&d.Name, &d.Path, &d.Hash, &d.Managed, &d.Locator}
	for i, f := range fields {
		if bytes.Equal(raw[i], []byte("null")) {
			continue
		}
		if err := json.Unmarshal(raw[i], f); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidDependency.Error()), "element", i)
		}
	}
	return nil
}

func (p *ProjectDTO) toDomain(id, mountRoot string) domain.ProjectRecord {
	deps := make([]domain.Dependency, 0, len(p.Depends))
	for _, d := range p.Depends {
		deps = append(deps, domain.Dependency{
			Name:    d.Name,
			Path:    d.Path,
			Hash:    d.Hash,
			Managed: d.Managed,
			Locator: d.Locator,
		})
	}

	var desc string
	if p.Description != nil {
		desc = *p.Description
	}

	return domain.ProjectRecord{
		ID:            id,
		Name:          p.Name,
		Description:   desc,
		Encoding:      p.Encoding,
		SourcePath:    resolve(mountRoot, p.PropertyFile.SourcererPath),
		Archived:      p.PropertyFile.IsZipped,
		ProvidedBuild: p.ProvidedBuild,
		MountRoot:     mountRoot,
		Dependencies:  deps,
	}
}
