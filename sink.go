package certgen

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sink accepts encoded output images. Implementations must be safe for
// concurrent Write calls: all workers share one sink.
type Sink interface {
	Write(name string, data []byte) error
}

// DirSink writes each output as an individual file under a directory.
type DirSink struct {
	dir string
}

// NewDirSink creates a sink rooted at dir. The directory is created on
// first write if needed.
func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

// Write stores data at dir/name, creating parent directories as needed.
func (s *DirSink) Write(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	// #nosec G306 -- output images are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// ZipSink bundles all outputs into a single ZIP archive. The underlying
// zip writer is not concurrent-safe, so writes are serialized.
type ZipSink struct {
	mu     sync.Mutex
	zw     *zip.Writer
	closed bool
}

// NewZipSink creates a sink writing a ZIP stream to w.
func NewZipSink(w io.Writer) *ZipSink {
	return &ZipSink{zw: zip.NewWriter(w)}
}

// Write adds one archive entry named name containing data.
func (s *ZipSink) Write(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}

	f, err := s.zw.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// Close flushes the archive central directory. Further writes fail with
// ErrSinkClosed. Safe to call more than once.
func (s *ZipSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.zw.Close()
}
