package mmap

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "neos.csv")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestOpen(t *testing.T) {
	content := []byte("pdes,name\n433,Eros\n")
	path := writeFile(t, content)

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, f.Mapped())
	assert.Equal(t, path, f.Name())
	assert.Equal(t, int64(len(content)), f.Len())
	require.NoError(t, f.Advise(Sequential))
	require.NoError(t, f.Advise(DontNeed))

	data, err := f.Data()
	require.NoError(t, err)
	assert.Equal(t, content, data)

	all, err := io.ReadAll(io.NewSectionReader(f, 0, f.Len()))
	require.NoError(t, err)
	assert.Equal(t, content, all)
}

func TestFile_ReadAt(t *testing.T) {
	f, err := Open(writeFile(t, []byte("pdes,name\n433,Eros\n")))
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 4)
	n, err := f.ReadAt(buf, 10)
	require.NoError(t, err)
	assert.Equal(t, "433,", string(buf[:n]))

	buf = make([]byte, 10)
	n, err = f.ReadAt(buf, 14)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "Eros\n", string(buf[:n]))

	n, err = f.ReadAt(buf, 100)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	_, err = f.ReadAt(buf, -1)
	assert.ErrorIs(t, err, ErrNegativeOffset)
}

func TestFile_Close(t *testing.T) {
	f, err := Open(writeFile(t, []byte("x")))
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	_, err = f.Data()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = f.ReadAt(make([]byte, 1), 0)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, f.Advise(Sequential), ErrClosed)
}

func TestOpen_Empty(t *testing.T) {
	f, err := Open(writeFile(t, nil))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, int64(0), f.Len())
	require.NoError(t, f.Advise(Sequential))
	data, err := f.Data()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOpen_Device(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no /dev/null")
	}

	f, err := Open("/dev/null")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, f.Mapped())
	assert.Equal(t, int64(0), f.Len())
	assert.NoError(t, f.Advise(Sequential))
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
