package blobstore

import (
	"errors"
	"io"
	"sync"
)

// ErrAborted is the error an upload's reader sees after Abort.
var ErrAborted = errors.New("blobstore: upload aborted")

// StreamUpload returns a WritableBlob that pipes writes into put, which
// runs in its own goroutine and must consume the reader until EOF or error.
// Close waits for put and returns its error. Abort fails the reader with
// ErrAborted so that put can discard the partial object.
func StreamUpload(put func(io.Reader) error) WritableBlob {
	pr, pw := io.Pipe()
	u := &streamUpload{pw: pw, done: make(chan error, 1)}

	go func() {
		err := put(pr)
		_ = pr.CloseWithError(err)
		u.done <- err
	}()

	return u
}

type streamUpload struct {
	pw   *io.PipeWriter
	done chan error

	mu     sync.Mutex
	closed bool
	err    error
}

func (u *streamUpload) Write(p []byte) (int, error) {
	u.mu.Lock()
	closed := u.closed
	u.mu.Unlock()

	if closed {
		return 0, io.ErrClosedPipe
	}
	return u.pw.Write(p)
}

// Sync is a no-op; nothing is durable before Close.
func (u *streamUpload) Sync() error { return nil }

func (u *streamUpload) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return u.err
	}
	u.closed = true

	_ = u.pw.Close()
	u.err = <-u.done
	return u.err
}

func (u *streamUpload) Abort() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil
	}
	u.closed = true

	_ = u.pw.CloseWithError(ErrAborted)
	<-u.done
	u.err = ErrAborted
	return nil
}
