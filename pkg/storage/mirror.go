package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rickardholmberg/spiggot/internal/logging"
)

var logger = logging.NewLogger("storage")

// SyncStats summarizes a Mirror run.
type SyncStats struct {
	Downloaded int
	Skipped    int
	Bytes      int64
}

// Mirror copies every file under root on the camera into destDir,
// preserving the folder layout. A local file whose size matches the
// camera's is left alone, so interrupted runs can be resumed. Downloads go
// through a temp file and rename, so a crash never leaves a half-written
// image in place.
func Mirror(fs FileSystem, root, destDir string) (SyncStats, error) {
	var stats SyncStats

	err := Walk(fs, root, func(folder, name string, info FileInfo) error {
		rel := strings.TrimPrefix(strings.TrimPrefix(folder, root), "/")
		dir := filepath.Join(destDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		dest := filepath.Join(dir, name)
		if st, err := os.Stat(dest); err == nil && info.Size > 0 && st.Size() == info.Size {
			logger.Debugf("skip %s/%s: already mirrored", folder, name)
			stats.Skipped++
			return nil
		}

		n, err := download(fs, folder, name, dest)
		if err != nil {
			return fmt.Errorf("download %s/%s: %w", folder, name, err)
		}
		logger.Infof("downloaded %s/%s (%d bytes)", folder, name, n)
		if !info.ModTime.IsZero() {
			// Keep the capture time on the local copy.
			_ = os.Chtimes(dest, info.ModTime, info.ModTime)
		}

		stats.Downloaded++
		stats.Bytes += n
		return nil
	})
	return stats, err
}

func download(fs FileSystem, folder, name, dest string) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+name+".*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := fs.Download(folder, name, tmp)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, err
	}
	return n, os.Rename(tmp.Name(), dest)
}
