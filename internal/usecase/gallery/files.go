package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
)

// extPriority decides which file wins when several share a base name.
var extPriority = map[string]int{
	".jpg":  0,
	".jpeg": 1,
	".png":  2,
	".webp": 3,
	".tif":  4,
	".tiff": 5,
}

// originalExts are tried in order when looking for the original of a derivative.
var originalExts = []string{".jpg", ".jpeg", ".png", ".tif", ".tiff"}

func isImage(name string) bool {
	_, ok := extPriority[strings.ToLower(filepath.Ext(name))]
	return ok
}

func baseID(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ListImages returns the image files of dir, one per id, sorted by id.
// Dot-files and non-regular files are skipped.
func ListImages(dir string) ([]string, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	chosen := make(map[string]string)
	for _, de := range dirents {
		name := de.Name()
		if strings.HasPrefix(name, ".") || !de.IsRegular() || !isImage(name) {
			continue
		}
		id := baseID(name)
		if cur, ok := chosen[id]; !ok || preferFile(name, cur) {
			chosen[id] = name
		}
	}

	ids := make([]string, 0, len(chosen))
	for id := range chosen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	files := make([]string, len(ids))
	for i, id := range ids {
		files[i] = chosen[id]
	}
	return files, nil
}

func preferFile(a, b string) bool {
	pa := extPriority[strings.ToLower(filepath.Ext(a))]
	pb := extPriority[strings.ToLower(filepath.Ext(b))]
	if pa != pb {
		return pa < pb
	}
	return a < b
}

// findOriginal returns the file name of the first existing original for id.
func findOriginal(dir, id string) string {
	if dir == "" {
		return ""
	}
	for _, ext := range originalExts {
		name := id + ext
		st, err := os.Stat(filepath.Join(dir, name))
		if err == nil && st.Mode().IsRegular() {
			return name
		}
	}
	return ""
}

func dirExists(dir string) bool {
	st, err := os.Stat(dir)
	return err == nil && st.IsDir()
}

func samePath(a, b string) bool {
	ca, err1 := filepath.Abs(a)
	cb, err2 := filepath.Abs(b)
	if err1 != nil || err2 != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return ca == cb
}
