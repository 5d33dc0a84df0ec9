package server

import (
	"os"
	"path"
	"path/filepath"
)

// FileSystem implements access to files. The elements in a file path are
// separated by slash ('/', U+002F) characters, regardless of host
// operating system convention.
type FileSystem interface {
	// ReadFile reads the file named by filename and returns the contents.
	ReadFile(name string) ([]byte, error)
}

// Dir implements FileSystem using the native file system restricted to a
// specific directory tree.
//
// While the FileSystem.ReadFile method takes '/'-separated paths,
// a Dir's string value is a filename on the native file system,
// not a URL, so it is separated by filepath.Separator,
// which isn't necessarily '/'.
//
// An empty Dir is treated as "."
type Dir string

// ReadFile reads the file named by filename and returns the contents.
// Names are cleaned as if rooted, so ".." cannot leave the directory.
func (d Dir) ReadFile(name string) ([]byte, error) {
	dir := string(d)
	if dir == "" {
		dir = "."
	}
	fullname := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name)))
	return os.ReadFile(fullname)
}
