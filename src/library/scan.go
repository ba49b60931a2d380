package library

import (
	"log"
	"os"
	"sort"
	"time"

	"github.com/spf13/afero"
)

// FindMedia returns the paths of all supported media files under `root`, sorted.
// When `root` is a file it is returned as long as it is supported. Directories
// which cannot be read are logged and skipped.
func FindMedia(fs afero.Fs, root string) ([]string, error) {
	st, err := fs.Stat(root)
	if err != nil {
		return nil, err
	}

	if !st.IsDir() {
		if !IsSupportedFormat(root) {
			return nil, ErrorNotSupported{path: root}
		}
		return []string{root}, nil
	}

	start := time.Now()
	defer func() {
		log.Printf("Walking %s took %s", root, time.Since(start))
	}()

	var found []string
	walkFunc := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Println(err)
			return nil
		}

		if !info.IsDir() && IsSupportedFormat(path) {
			found = append(found, path)
		}

		return nil
	}

	if err := afero.Walk(fs, root, walkFunc); err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}

// AlbumKey returns a key which is the same for all files of the same album.
// Files without a release ID are grouped by their release artist and album name.
func AlbumKey(mf *MediaFile) string {
	if mf.ReleaseID != "" {
		return mf.ReleaseID
	}
	return mf.ReleaseArtist() + "\x00" + mf.Album
}
