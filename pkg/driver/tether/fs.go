package tether

import (
	"io"

	"github.com/rickardholmberg/spiggot/pkg/gphoto2"
	"github.com/rickardholmberg/spiggot/pkg/storage"
)

// cameraFS views an open camera session as a storage.FileSystem.
type cameraFS struct {
	cam *gphoto2.Camera
}

func (fs *cameraFS) ListFolders(folder string) ([]string, error) {
	return fs.cam.ListFolders(folder)
}

func (fs *cameraFS) ListFiles(folder string) ([]string, error) {
	return fs.cam.ListFiles(folder)
}

func (fs *cameraFS) Stat(folder, name string) (storage.FileInfo, error) {
	info, err := fs.cam.FileInfo(folder, name)
	if err != nil {
		return storage.FileInfo{}, err
	}
	return storage.FileInfo{
		Size:    info.Size,
		MIME:    info.MIME,
		ModTime: info.ModTime,
		Width:   info.Width,
		Height:  info.Height,
	}, nil
}

func (fs *cameraFS) Download(folder, name string, w io.Writer) (int64, error) {
	return fs.cam.DownloadFile(folder, name, w)
}

func (fs *cameraFS) Remove(folder, name string) error {
	return fs.cam.DeleteFile(folder, name)
}
