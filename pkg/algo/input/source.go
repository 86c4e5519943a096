package input

import (
	"fmt"
	"io"

	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
	fs "github.com/trigg3rX/algo-cli/pkg/filesystem"
)

// StdinPath selects standard input wherever a file path is expected.
const StdinPath = "-"

// Source is either literal data from the command line or a path to read.
type Source struct {
	literal string
	path    string
	isFile  bool
}

func LiteralSource(data string) Source {
	return Source{literal: data}
}

func FileSource(path string) Source {
	return Source{path: path, isFile: true}
}

func (s Source) IsFile() bool {
	return s.isFile
}

func (s Source) IsStdin() bool {
	return s.isFile && s.path == StdinPath
}

func (s Source) String() string {
	if !s.isFile {
		return "literal data"
	}
	if s.IsStdin() {
		return "standard input"
	}
	return s.path
}

// Reader resolves sources to bytes. Standard input is read at most once.
type Reader struct {
	fs        fs.FileSystemAPI
	stdin     io.Reader
	stdinRead bool
}

func NewReader(fsys fs.FileSystemAPI, stdin io.Reader) *Reader {
	if fsys == nil {
		fsys = &fs.OSFileSystem{}
	}
	return &Reader{fs: fsys, stdin: stdin}
}

// ReadAll returns the full content of src. Open and read failures are I/O
// errors and are never retried.
func (r *Reader) ReadAll(src Source) ([]byte, error) {
	if !src.isFile {
		return []byte(src.literal), nil
	}

	if src.IsStdin() {
		if r.stdinRead {
			return nil, apperrors.NewIOError(apperrors.ErrReadingInput, fmt.Errorf("standard input already consumed"))
		}
		r.stdinRead = true
		if r.stdin == nil {
			return []byte{}, nil
		}
		return readAll(r.stdin)
	}

	f, err := r.fs.Open(src.path)
	if err != nil {
		return nil, apperrors.NewIOError(fmt.Sprintf(apperrors.ErrOpeningFile, src.path), err)
	}
	defer func() { _ = f.Close() }()

	return readAll(f)
}

func readAll(rd io.Reader) ([]byte, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, apperrors.NewIOError(apperrors.ErrReadingInput, err)
	}
	return data, nil
}
