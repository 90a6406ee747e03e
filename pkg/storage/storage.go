// Package storage walks and transfers a camera's on-board filesystem.
// Folder layout, naming and error reporting are whatever the camera's
// driver exposes; nothing here second-guesses it.
package storage

import (
	"io"
	"path"
	"time"
)

// FileInfo is what the camera reports about one file. Zero fields mean the
// driver did not report that attribute.
type FileInfo struct {
	Size    int64
	MIME    string
	ModTime time.Time
	Width   int
	Height  int
}

// FileSystem is the slice of a camera session this package needs. It is
// satisfied by the tether driver's storage view.
type FileSystem interface {
	ListFolders(folder string) ([]string, error)
	ListFiles(folder string) ([]string, error)
	Stat(folder, name string) (FileInfo, error)
	Download(folder, name string, w io.Writer) (int64, error)
	Remove(folder, name string) error
}

// WalkFunc is called once per file. Returning an error aborts the walk.
type WalkFunc func(folder, name string, info FileInfo) error

// Walk visits every file under root depth-first, files before subfolders,
// in the order the camera lists them.
func Walk(fs FileSystem, root string, fn WalkFunc) error {
	files, err := fs.ListFiles(root)
	if err != nil {
		return err
	}
	for _, name := range files {
		info, err := fs.Stat(root, name)
		if err != nil {
			return err
		}
		if err := fn(root, name, info); err != nil {
			return err
		}
	}

	folders, err := fs.ListFolders(root)
	if err != nil {
		return err
	}
	for _, sub := range folders {
		if err := Walk(fs, path.Join(root, sub), fn); err != nil {
			return err
		}
	}
	return nil
}
