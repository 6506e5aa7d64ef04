// Package fs provides file system adapters for walking trees and hashing.
package fs

import (
	"iter"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
)

// Entry is one node yielded by the walker.
type Entry struct {
	// Path is relative to the walk root, using forward slashes.
	Path string
	Info os.FileInfo
}

// Walker walks billy filesystems.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields every directory and file below root in lexical order, parents
// before their children. Iteration stops at the first read error, which is
// yielded with an empty entry.
func (w *Walker) Walk(fsys billy.Filesystem, root string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		w.walk(fsys, root, "", yield)
	}
}

func (w *Walker) walk(fsys billy.Filesystem, root, rel string, yield func(Entry, error) bool) bool {
	infos, err := fsys.ReadDir(path.Join(root, rel))
	if err != nil {
		yield(Entry{}, err)
		return false
	}

	for _, info := range infos {
		child := path.Join(rel, info.Name())
		if !yield(Entry{Path: child, Info: info}, nil) {
			return false
		}
		if info.IsDir() {
			if !w.walk(fsys, root, child, yield) {
				return false
			}
		}
	}
	return true
}
