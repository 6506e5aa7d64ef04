// Package workspace stages projects into per-worker build directories.
package workspace

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/sourcerer/internal/adapters/fs"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceManager = (*Manager)(nil)

// Manager implements ports.WorkspaceManager on the host file system.
type Manager struct {
	renderer ports.DescriptorRenderer
	walker   *fs.Walker
}

// NewManager creates a workspace manager.
func NewManager(renderer ports.DescriptorRenderer, walker *fs.Walker) *Manager {
	return &Manager{renderer: renderer, walker: walker}
}

// Reset deletes the directory tree at path if present and recreates it empty.
func (m *Manager) Reset(path string) error {
	parent := osfs.New(filepath.Dir(path))
	name := filepath.Base(path)

	if err := util.RemoveAll(parent, name); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWorkspaceResetFailed.Error()), "path", path)
	}
	if err := parent.MkdirAll(name, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWorkspaceResetFailed.Error()), "path", path)
	}
	return nil
}

// Remove deletes the workspace at path.
func (m *Manager) Remove(path string) error {
	parent := osfs.New(filepath.Dir(path))
	if err := util.RemoveAll(parent, filepath.Base(path)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWorkspaceResetFailed.Error()), "path", path)
	}
	return nil
}

// Materialize stages the project sources into path and writes the generated
// manifest and descriptor next to them. Projects that ship their own build
// file get no generated descriptors.
func (m *Manager) Materialize(ctx context.Context, project *domain.ProjectRecord, path string) (domain.BuildFiles, error) {
	dst := osfs.New(path)

	if project.Archived {
		archive := filepath.Join(project.SourcePath, domain.ArchiveFileName)
		if err := extract(ctx, archive, dst); err != nil {
			return domain.BuildFiles{}, domain.WithMeta(err, "project", project.ID)
		}
	} else {
		content := filepath.Join(project.SourcePath, domain.ContentDirName)
		if err := m.copyTree(ctx, content, dst); err != nil {
			return domain.BuildFiles{}, domain.WithMeta(err, "project", project.ID)
		}
	}

	if project.ProvidedBuild {
		return domain.BuildFiles{}, nil
	}

	files, err := m.renderer.Render(project)
	if err != nil {
		return domain.BuildFiles{}, err
	}
	if err := writeDescriptor(dst, domain.ManifestFileName, files.Manifest); err != nil {
		return domain.BuildFiles{}, domain.WithMeta(err, "project", project.ID)
	}
	if err := writeDescriptor(dst, domain.DescriptorFileName, files.Descriptor); err != nil {
		return domain.BuildFiles{}, domain.WithMeta(err, "project", project.ID)
	}
	return files, nil
}

func writeDescriptor(dst billy.Filesystem, name, text string) error {
	if err := util.WriteFile(dst, name, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDescriptorWriteFailed.Error()), "file", name)
	}
	return nil
}

// copyTree copies the content directory into dst. A file is copied only when
// the destination is missing or older than the source, and keeps the source
// modification time. A missing content directory leaves dst empty.
func (m *Manager) copyTree(ctx context.Context, content string, dst billy.Filesystem) error {
	info, err := os.Stat(content)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceCopyFailed.Error()), "path", content)
	}
	if !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "content is not a directory"), "path", content)
	}

	src := osfs.New(content)
	for entry, err := range m.walker.Walk(src, ".") {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrSourceCopyFailed.Error()), "path", content)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if entry.Info.IsDir() {
			if err := dst.MkdirAll(entry.Path, domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrSourceCopyFailed.Error()), "file", entry.Path)
			}
			continue
		}
		if !entry.Info.Mode().IsRegular() {
			continue
		}

		if existing, err := dst.Stat(entry.Path); err == nil && !entry.Info.ModTime().After(existing.ModTime()) {
			continue
		}
		if err := copyFile(src, dst, entry.Path, entry.Info); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrSourceCopyFailed.Error()), "file", entry.Path)
		}
		// billy has no Chtimes; timestamps go through the host path.
		target := filepath.Join(dst.Root(), filepath.FromSlash(entry.Path))
		if err := os.Chtimes(target, entry.Info.ModTime(), entry.Info.ModTime()); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrSourceCopyFailed.Error()), "file", entry.Path)
		}
	}
	return nil
}

func copyFile(src, dst billy.Filesystem, name string, info os.FileInfo) (err error) {
	in, err := src.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := dst.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
