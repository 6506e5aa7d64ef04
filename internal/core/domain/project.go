package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultEncoding is the source encoding used when a project does not declare one.
const DefaultEncoding = "utf8"

// Dependency is a resolved build dependency of a project.
type Dependency struct {
	Name string
	// Path is the resolved path or coordinate reported by the cataloging phase.
	Path string
	Hash string
	// Managed marks a repository coordinate resolved by the dependency manager.
	Managed bool
	// Locator is a managed dependency reference and a mount-relative jar
	// location otherwise. Managed references are either an org:name:rev
	// coordinate or a complete <dependency .../> manifest element.
	Locator string
}

// Coordinate is a managed dependency coordinate.
type Coordinate struct {
	Org  string
	Name string
	Rev  string
}

// Declaration returns the locator of a managed dependency when it is already a
// manifest element.
func (d Dependency) Declaration() (string, bool) {
	decl := strings.TrimSpace(d.Locator)
	if !strings.HasPrefix(decl, "<dependency") {
		return "", false
	}
	return decl, true
}

// Coordinate parses the locator of a managed dependency.
func (d Dependency) Coordinate() (Coordinate, error) {
	parts := strings.Split(d.Locator, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Coordinate{}, WithMeta(ErrInvalidCoordinate, "locator", d.Locator)
	}
	return Coordinate{Org: parts[0], Name: parts[1], Rev: parts[2]}, nil
}

// JarPath returns the classpath entry of an unmanaged dependency below mountRoot.
func (d Dependency) JarPath(mountRoot string) string {
	loc := d.Locator
	if !filepath.IsAbs(loc) {
		loc = filepath.Join(mountRoot, loc)
	}
	if strings.HasSuffix(loc, ".jar") {
		return loc
	}
	return filepath.Join(loc, JarFileName)
}

// ProjectRecord is one catalog entry. It is immutable once the catalog is built.
type ProjectRecord struct {
	ID          string
	Name        string
	Description string
	Encoding    string
	// SourcePath holds either content.zip or a content directory.
	SourcePath string
	Archived   bool
	// ProvidedBuild marks projects that ship their own build descriptor.
	ProvidedBuild bool
	// MountRoot resolves unmanaged dependency locators.
	MountRoot    string
	Dependencies []Dependency
}

// Validate checks the record invariants enforced at catalog load time.
func (p *ProjectRecord) Validate() error {
	if p.ID == "" {
		return WithMeta(ErrInvalidProject, "reason", "empty id")
	}
	if p.SourcePath == "" {
		return zerr.With(WithMeta(ErrInvalidProject, "reason", "empty source path"), "project", p.ID)
	}
	for i, dep := range p.Dependencies {
		if dep.Locator == "" {
			err := WithMeta(ErrInvalidDependency, "index", i)
			return zerr.With(err, "project", p.ID)
		}
	}
	return nil
}

// UniqueDependencies returns the dependency list with duplicate tuples removed,
// in first-seen order.
func (p *ProjectRecord) UniqueDependencies() []Dependency {
	seen := make(map[Dependency]struct{}, len(p.Dependencies))
	out := make([]Dependency, 0, len(p.Dependencies))
	for _, d := range p.Dependencies {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// SourceEncoding returns the declared encoding or DefaultEncoding.
func (p *ProjectRecord) SourceEncoding() string {
	if p.Encoding == "" {
		return DefaultEncoding
	}
	return p.Encoding
}

// Catalog is the read-only set of projects available for compilation.
type Catalog struct {
	records map[string]ProjectRecord
	ids     []string
}

// NewCatalog validates the records and builds a catalog with ids in sorted order.
func NewCatalog(records []ProjectRecord) (*Catalog, error) {
	c := &Catalog{
		records: make(map[string]ProjectRecord, len(records)),
		ids:     make([]string, 0, len(records)),
	}
	for i := range records {
		rec := records[i]
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.records[rec.ID]; exists {
			return nil, WithMeta(ErrDuplicateProject, "project", rec.ID)
		}
		c.records[rec.ID] = rec
		c.ids = append(c.ids, rec.ID)
	}
	slices.Sort(c.ids)
	return c, nil
}

// IDs returns the project ids in sorted order.
func (c *Catalog) IDs() []string {
	return slices.Clone(c.ids)
}

// Get returns the record for id.
func (c *Catalog) Get(id string) (ProjectRecord, bool) {
	rec, ok := c.records[id]
	return rec, ok
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.ids)
}
