package mmap

import "errors"

// Advice tells the kernel how a mapped file is going to be read.
type Advice uint8

const (
	Normal Advice = iota
	// Sequential suits a single front-to-back scan, the way sources are parsed.
	Sequential
	// WillNeed asks for read-ahead of the whole file.
	WillNeed
	// DontNeed lets the kernel drop the cached pages.
	DontNeed
)

var (
	// ErrClosed is returned when a closed File is accessed.
	ErrClosed = errors.New("mmap: file is closed")
	// ErrNegativeOffset is returned by ReadAt for offsets below zero.
	ErrNegativeOffset = errors.New("mmap: negative offset")
	// ErrTooLarge is returned for files that do not fit the address space.
	ErrTooLarge = errors.New("mmap: file too large to map")
)
