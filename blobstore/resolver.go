package blobstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
)

var (
	// ErrUnsupportedScheme is returned for a URI whose scheme has no factory.
	ErrUnsupportedScheme = errors.New("blobstore: unsupported scheme")
	// ErrInvalidURI is returned for a URI without a bucket or blob name.
	ErrInvalidURI = errors.New("blobstore: invalid URI")
)

// Factory opens the store for one bucket of a scheme.
type Factory func(ctx context.Context, bucket string) (BlobStore, error)

// StaticFactory returns a factory that serves store for every bucket.
func StaticFactory(store BlobStore) Factory {
	return func(context.Context, string) (BlobStore, error) {
		return store, nil
	}
}

// Resolver maps locations to stores. Stores built by factories are cached
// per scheme and bucket. A Resolver is safe for concurrent use.
type Resolver struct {
	mu        sync.Mutex
	factories map[string]Factory
	stores    map[string]BlobStore
}

// NewResolver returns a resolver that serves local paths and file:// URIs.
func NewResolver() *Resolver {
	return &Resolver{
		factories: make(map[string]Factory),
		stores:    make(map[string]BlobStore),
	}
}

// Register installs the factory for a URI scheme such as "s3" or "minio".
func (r *Resolver) Register(scheme string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scheme = strings.ToLower(scheme)
	r.factories[scheme] = f
	for key := range r.stores {
		if strings.HasPrefix(key, scheme+"://") {
			delete(r.stores, key)
		}
	}
}

// Resolve returns the store holding location and the blob name within it.
//
// Plain paths and file:// URIs resolve to a LocalStore rooted at the parent
// directory. For "scheme://bucket/key" the registered factory for scheme
// provides the store for bucket and key is the blob name.
func (r *Resolver) Resolve(ctx context.Context, location string) (BlobStore, string, error) {
	scheme, rest, ok := strings.Cut(location, "://")
	if !ok || isWindowsDrive(scheme) {
		return localFor(location)
	}

	scheme = strings.ToLower(scheme)
	if scheme == "file" {
		u, err := url.Parse(location)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %v", ErrInvalidURI, location, err)
		}
		return localFor(filepath.FromSlash(u.Path))
	}

	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidURI, location)
	}

	store, err := r.store(ctx, scheme, bucket)
	if err != nil {
		return nil, "", err
	}
	return store, key, nil
}

func (r *Resolver) store(ctx context.Context, scheme, bucket string) (BlobStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cacheKey := scheme + "://" + bucket
	if s, ok := r.stores[cacheKey]; ok {
		return s, nil
	}

	f, ok := r.factories[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
	s, err := f(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("blobstore: open %s: %w", cacheKey, err)
	}
	r.stores[cacheKey] = s
	return s, nil
}

func localFor(path string) (BlobStore, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("%w: empty path", ErrInvalidURI)
	}
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return NewLocalStore(dir), name, nil
}

// isWindowsDrive reports whether s looks like the drive letter of "C://x".
func isWindowsDrive(s string) bool {
	return len(s) == 1 && (s[0] >= 'a' && s[0] <= 'z' || s[0] >= 'A' && s[0] <= 'Z')
}
