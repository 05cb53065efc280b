package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem exposes the filesystem operations required by workspace services.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Lstat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, permissions fs.FileMode) error
	Symlink(sourcePath string, linkPath string) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, permissions fs.FileMode) error
	Abs(path string) (string, error)
}

// OSFileSystem implements FileSystem using operating system facilities.
type OSFileSystem struct{}

// NewOSFileSystem constructs an OS-backed FileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat reports file metadata following symbolic links.
func (fileSystem *OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Lstat reports file metadata without following symbolic links.
func (fileSystem *OSFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// ReadDir lists directory entries.
func (fileSystem *OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// MkdirAll creates the directory path along with any missing parents.
func (fileSystem *OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// Symlink creates a symbolic link pointing at sourcePath.
func (fileSystem *OSFileSystem) Symlink(sourcePath string, linkPath string) error {
	return os.Symlink(sourcePath, linkPath)
}

// ReadFile returns the contents of the named file.
func (fileSystem *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes content to the named file, creating it when necessary.
func (fileSystem *OSFileSystem) WriteFile(path string, content []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, content, permissions)
}

// Abs converts the supplied path into an absolute path.
func (fileSystem *OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}
