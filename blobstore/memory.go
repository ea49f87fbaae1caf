package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps blobs in a map. It is safe for concurrent use and is
// meant for tests and small in-process pipelines.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]*memBlob
	now   func() time.Time
}

var _ BlobStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string]*memBlob{}, now: time.Now}
}

func (m *MemoryStore) lookup(name string) (*memBlob, error) {
	m.mu.RLock()
	b, ok := m.blobs[name]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("mem://%s: %w", name, ErrNotFound)
	}
	return b, nil
}

// publish replaces name with data. The slice must not be modified afterwards.
func (m *MemoryStore) publish(name string, data []byte) {
	b := &memBlob{data: data, modTime: m.now()}

	m.mu.Lock()
	m.blobs[name] = b
	m.mu.Unlock()
}

func (m *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	b, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (m *MemoryStore) Stat(_ context.Context, name string) (Info, error) {
	b, err := m.lookup(name)
	if err != nil {
		return Info{}, err
	}
	return Info{Size: b.Size(), ModTime: b.modTime}, nil
}

func (m *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	m.publish(name, slices.Clone(data))
	return nil
}

// Create buffers writes and publishes them on Close.
func (m *MemoryStore) Create(_ context.Context, name string) (WritableBlob, error) {
	return &memWriter{store: m, name: name}, nil
}

func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	delete(m.blobs, name)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.blobs))
	for name := range m.blobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// Bytes returns a copy of the blob stored under name.
func (m *MemoryStore) Bytes(name string) ([]byte, bool) {
	b, err := m.lookup(name)
	if err != nil {
		return nil, false
	}
	return slices.Clone(b.data), true
}

// memBlob is immutable once published, so handles share it.
type memBlob struct {
	data    []byte
	modTime time.Time
}

func (b *memBlob) Size() int64 { return int64(len(b.data)) }

func (b *memBlob) Close() error { return nil }

func (b *memBlob) Bytes() ([]byte, error) { return b.data, nil }

func (b *memBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	return bytes.NewReader(b.data).ReadAt(p, off)
}

func (b *memBlob) ReadRange(_ context.Context, off, length int64) (io.ReadCloser, error) {
	return io.NopCloser(io.NewSectionReader(bytes.NewReader(b.data), off, max(length, 0))), nil
}

type memWriter struct {
	store *MemoryStore
	name  string
	buf   []byte
	done  bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.done {
		return 0, io.ErrClosedPipe
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *memWriter) Sync() error { return nil }

func (w *memWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true

	if w.buf == nil {
		w.buf = []byte{}
	}
	w.store.publish(w.name, w.buf)
	return nil
}

// Abort drops the buffered data. A later Close is a no-op.
func (w *memWriter) Abort() error {
	w.done = true
	w.buf = nil
	return nil
}
