package render

import (
	"io"

	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
	fs "github.com/trigg3rX/algo-cli/pkg/filesystem"
)

var newline = []byte{'\n'}

// Sink is the destination of the rendered result: a file created for this
// invocation or standard output.
type Sink struct {
	w      io.Writer
	closer io.Closer
	path   string
}

// OpenSink creates or truncates path, or wraps stdout when path is empty.
func OpenSink(fsys fs.FileSystemAPI, path string, stdout io.Writer) (*Sink, error) {
	if path == "" {
		return &Sink{w: stdout}, nil
	}
	if fsys == nil {
		fsys = &fs.OSFileSystem{}
	}

	f, err := fsys.Create(path)
	if err != nil {
		return nil, apperrors.NewIOError(apperrors.ErrCreatingFile, err)
	}
	return &Sink{w: f, closer: f, path: path}, nil
}

// IsFile reports whether the sink writes to a file rather than stdout.
func (s *Sink) IsFile() bool {
	return s.path != ""
}

func (s *Sink) Path() string {
	return s.path
}

func (s *Sink) Write(p []byte) error {
	if _, err := s.w.Write(p); err != nil {
		return apperrors.NewIOError(apperrors.ErrWritingOutput, err)
	}
	return nil
}

// Writeln writes p followed by a single newline.
func (s *Sink) Writeln(p []byte) error {
	if err := s.Write(p); err != nil {
		return err
	}
	return s.Write(newline)
}

// Close releases the output file. It is a no-op for stdout and safe to call
// more than once.
func (s *Sink) Close() error {
	if s.closer == nil {
		return nil
	}
	closer := s.closer
	s.closer = nil
	s.w = io.Discard
	if err := closer.Close(); err != nil {
		return apperrors.NewIOError(apperrors.ErrWritingOutput, err)
	}
	return nil
}
