package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// VideoExt is appended to output filenames that lack it.
const VideoExt = ".mp4"

// CutPrefix prefixes the filename of a clip derived from a source video.
const CutPrefix = "cut_"

// EnsureDir creates the directory (and any parents) if it does not exist.
// Safe to call repeatedly.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// NormalizeName appends the video extension to name unless it already ends
// with it. "clip" becomes "clip.mp4"; "clip.mp4" is unchanged.
func NormalizeName(name string) string {
	if strings.HasSuffix(name, VideoExt) {
		return name
	}
	return name + VideoExt
}

// CutName returns the derived filename for a clip cut from name.
func CutName(name string) string {
	return CutPrefix + name
}

// Exists reports whether path exists on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileSize returns the size of the file at path in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
