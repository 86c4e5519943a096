package fs

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// MockFileSystem is an in-memory file system for tests.
type MockFileSystem struct {
	mu           sync.Mutex
	files        map[string][]byte
	openResult   func(string) (io.ReadCloser, error)
	createResult func(string) (io.WriteCloser, error)
	opened       []string
}

// NewMockFileSystem creates a new mock file system
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
	}
}

func (fs *MockFileSystem) Open(name string) (io.ReadCloser, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.opened = append(fs.opened, name)
	if fs.openResult != nil {
		return fs.openResult(name)
	}
	content, exists := fs.files[name]
	if !exists {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (fs *MockFileSystem) Create(name string) (io.WriteCloser, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.createResult != nil {
		return fs.createResult(name)
	}
	fs.files[name] = []byte{}
	return &mockFile{fs: fs, name: name}, nil
}

// AddFile stores content under filename, replacing any previous content.
func (fs *MockFileSystem) AddFile(filename string, content []byte) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[filename] = append([]byte(nil), content...)
}

// File returns the current content of filename.
func (fs *MockFileSystem) File(filename string) ([]byte, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	content, exists := fs.files[filename]
	return append([]byte(nil), content...), exists
}

// Opened lists every path passed to Open, in call order.
func (fs *MockFileSystem) Opened() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.opened...)
}

// SetOpenResultFunc overrides Open, e.g. to inject permission errors.
func (fs *MockFileSystem) SetOpenResultFunc(fn func(string) (io.ReadCloser, error)) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.openResult = fn
}

// SetCreateResultFunc overrides Create, e.g. to return a failing writer.
func (fs *MockFileSystem) SetCreateResultFunc(fn func(string) (io.WriteCloser, error)) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.createResult = fn
}

// mockFile appends every write to the owning file system's entry.
type mockFile struct {
	fs     *MockFileSystem
	name   string
	closed bool
}

func (f *mockFile) Write(p []byte) (int, error) {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	if f.closed {
		return 0, os.ErrClosed
	}
	f.fs.files[f.name] = append(f.fs.files[f.name], p...)
	return len(p), nil
}

func (f *mockFile) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	if f.closed {
		return os.ErrClosed
	}
	f.closed = true
	return nil
}

// FailingWriter fails every Write with Err and records Close calls.
type FailingWriter struct {
	Err    error
	Closed bool
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	return 0, w.Err
}

func (w *FailingWriter) Close() error {
	w.Closed = true
	return nil
}
