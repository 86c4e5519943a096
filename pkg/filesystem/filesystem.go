package fs

import (
	"io"
	"os"
)

// FileSystemAPI is the subset of the file system the CLI touches: input
// files are opened read-only and the output file is created or truncated.
type FileSystemAPI interface {
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
}

// OSFileSystem is the real implementation of the file system
type OSFileSystem struct{}

func (fs *OSFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (fs *OSFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}
