package aelpath

import (
	"os"
	"path/filepath"
	"strings"
)

// FileName is a reference to a launchable file or asset on the local filesystem. It is
// a value type; nothing is touched on disk until Exists or Stat is called.
type FileName struct {
	path string
}

func NewFileName(path string) FileName {
	return FileName{path: path}
}

func (f FileName) Path() string {
	return f.path
}

func (f FileName) IsEmpty() bool {
	return f.path == ""
}

// Base returns the last element of the path, including the extension.
func (f FileName) Base() string {
	if f.path == "" {
		return ""
	}

	return filepath.Base(f.path)
}

// Stem returns the base name without its extension, "Super Mario Bros.nes" becomes
// "Super Mario Bros".
func (f FileName) Stem() string {
	base := f.Base()
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ext returns the lower-cased extension including the leading dot.
func (f FileName) Ext() string {
	return strings.ToLower(filepath.Ext(f.path))
}

func (f FileName) Dir() string {
	if f.path == "" {
		return ""
	}

	return filepath.Dir(f.path)
}

func (f FileName) Join(elem ...string) FileName {
	return FileName{path: filepath.Join(append([]string{f.path}, elem...)...)}
}

func (f FileName) Stat() (os.FileInfo, error) {
	return os.Stat(f.path)
}

// Exists returns true only when the path exists and is a regular file.
func (f FileName) Exists() bool {
	if f.path == "" {
		return false
	}

	fi, err := os.Stat(f.path)
	if err != nil {
		return false
	}

	return fi.Mode().IsRegular()
}

func (f FileName) String() string {
	return f.path
}
