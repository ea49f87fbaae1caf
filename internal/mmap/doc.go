// Package mmap gives the local blob store zero-copy access to source files.
//
//	f, err := mmap.Open("data/cad.json")
//	if err != nil { ... }
//	defer f.Close()
//
//	_ = f.Advise(mmap.Sequential)
//	data, _ := f.Data()
//
// Regular files are mapped read-only: mmap(2) plus madvise(2) on Unix,
// CreateFileMapping and MapViewOfFile on Windows, where Advise does nothing.
// Pipes and devices cannot be mapped and are read into memory instead, so
// "/dev/stdin" works as a source.
//
// A File may be read concurrently. Data and ReadAt fail with ErrClosed after
// Close.
package mmap
