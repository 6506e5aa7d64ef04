// Package descriptor renders the dependency manifest and build descriptor of a project.
package descriptor

import (
	"bytes"
	"embed"
	"encoding/xml"
	"strings"
	"text/template"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var _ ports.DescriptorRenderer = (*Renderer)(nil)

// Renderer renders ivy.xml and build.xml from embedded templates.
type Renderer struct {
	manifest   *template.Template
	descriptor *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{"xml": escape}

	manifest, err := template.New("ivy.xml.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/ivy.xml.tmpl")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest template")
	}
	descriptor, err := template.New("build.xml.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/build.xml.tmpl")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse descriptor template")
	}

	return &Renderer{manifest: manifest, descriptor: descriptor}, nil
}

// managed is one manifest entry. Raw holds a declaration passed through as is.
type managed struct {
	domain.Coordinate
	Raw string
}

type view struct {
	Name        string
	Description string
	Encoding    string
	Managed     []managed
	Jars        []string
}

// Render produces the manifest and descriptor texts for project.
// Duplicate dependencies are rendered once.
func (r *Renderer) Render(project *domain.ProjectRecord) (domain.BuildFiles, error) {
	v := view{
		Name:        project.Name,
		Description: project.Description,
		Encoding:    project.SourceEncoding(),
	}

	for _, dep := range project.UniqueDependencies() {
		if !dep.Managed {
			v.Jars = append(v.Jars, dep.JarPath(project.MountRoot))
			continue
		}
		if decl, ok := dep.Declaration(); ok {
			v.Managed = append(v.Managed, managed{Raw: decl})
			continue
		}
		coord, err := dep.Coordinate()
		if err != nil {
			return domain.BuildFiles{}, domain.WithMeta(err, "project", project.ID)
		}
		v.Managed = append(v.Managed, managed{Coordinate: coord})
	}

	var manifest, descriptor bytes.Buffer
	if err := r.manifest.Execute(&manifest, v); err != nil {
		return domain.BuildFiles{}, zerr.With(zerr.Wrap(err, "failed to render manifest"), "project", project.ID)
	}
	if err := r.descriptor.Execute(&descriptor, v); err != nil {
		return domain.BuildFiles{}, zerr.With(zerr.Wrap(err, "failed to render descriptor"), "project", project.ID)
	}

	return domain.BuildFiles{
		Manifest:   manifest.String(),
		Descriptor: descriptor.String(),
	}, nil
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
