package mmap

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// File is a read-only view of a data file.
//
// Regular files are memory mapped. Anything else, such as a pipe or
// /dev/stdin, is read into memory once so callers see the same API.
type File struct {
	name   string
	data   []byte
	mapped bool
	closed atomic.Bool
	unmap  func() error
}

// Open opens the file at path for reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if !fi.Mode().IsRegular() {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return &File{name: path, data: data}, nil
	}

	size := fi.Size()
	if size == 0 {
		return &File{name: path, mapped: true}, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, size)
	}

	data, unmap, err := mapFile(f, int(size))
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}
	return &File{name: path, data: data, mapped: true, unmap: unmap}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.name }

// Mapped reports whether the contents are memory mapped rather than copied.
func (f *File) Mapped() bool { return f.mapped }

// Len returns the file size in bytes.
func (f *File) Len() int64 { return int64(len(f.data)) }

// Data returns the file contents. The slice must not be used after Close.
func (f *File) Data() ([]byte, error) {
	if f.closed.Load() {
		return nil, ErrClosed
	}
	return f.data, nil
}

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if f.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrNegativeOffset
	}
	if off >= int64(len(f.data)) {
		return 0, io.EOF
	}

	n := copy(p, f.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Advise passes an access hint to the kernel. It is a no-op for files that
// are not mapped.
func (f *File) Advise(a Advice) error {
	if f.closed.Load() {
		return ErrClosed
	}
	if !f.mapped || len(f.data) == 0 {
		return nil
	}
	return advise(f.data, a)
}

// Close releases the mapping. Calling it again has no effect.
func (f *File) Close() error {
	if f.closed.Swap(true) {
		return nil
	}
	f.data = nil
	if f.unmap != nil {
		return f.unmap()
	}
	return nil
}
