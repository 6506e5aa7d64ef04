package workspace

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/zerr"
)

// extract unpacks the zip archive into dst. Entries that would land outside
// dst are rejected.
func extract(ctx context.Context, archive string, dst billy.Filesystem) error {
	r, err := zip.OpenReader(archive)
	if errors.Is(err, zip.ErrInsecurePath) {
		_ = r.Close()
		return domain.WithMeta(domain.ErrUnsafeArchiveEntry, "path", archive)
	}
	if errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "path", archive)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error()), "path", archive)
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		name, err := entryName(f.Name)
		if err != nil {
			return zerr.With(err, "path", archive)
		}
		if name == "" {
			continue
		}

		if f.FileInfo().IsDir() {
			if err := dst.MkdirAll(name, domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error()), "entry", f.Name)
			}
			continue
		}
		if !f.Mode().IsRegular() {
			continue
		}

		if err := extractFile(f, dst, name); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error()), "entry", f.Name)
		}
	}
	return nil
}

// entryName cleans a zip entry name. It returns an empty name for the archive root.
func entryName(raw string) (string, error) {
	name := strings.ReplaceAll(raw, "\\", "/")
	if path.IsAbs(name) {
		return "", domain.WithMeta(domain.ErrUnsafeArchiveEntry, "entry", raw)
	}
	name = path.Clean(name)
	if name == ".." || strings.HasPrefix(name, "../") {
		return "", domain.WithMeta(domain.ErrUnsafeArchiveEntry, "entry", raw)
	}
	if name == "." {
		return "", nil
	}
	return name, nil
}

func extractFile(f *zip.File, dst billy.Filesystem, name string) (err error) {
	if dir := path.Dir(name); dir != "." {
		if err := dst.MkdirAll(dir, domain.DirPerm); err != nil {
			return err
		}
	}

	in, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	perm := f.Mode().Perm()
	if perm == 0 {
		perm = domain.FilePerm
	}
	out, err := dst.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
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
